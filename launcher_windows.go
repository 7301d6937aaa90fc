package logrotee

import (
	"os/exec"
	"syscall"
)

// shellCommand runs command with cmd.exe in a new process group.
// CmdLine is passed verbatim so the template keeps its own quoting.
func shellCommand(command string) *exec.Cmd {
	cmd := exec.Command("cmd")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:       "cmd /C " + command,
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
	return cmd
}
