//go:build !windows

package logrotee

import (
	"os/exec"
	"syscall"
)

// shellCommand runs command with /bin/sh in its own process group,
// so that a terminal interrupt aimed at the pipeline does not reach it.
func shellCommand(command string) *exec.Cmd {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd
}
