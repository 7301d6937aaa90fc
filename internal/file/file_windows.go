package file

import (
	"os"

	"github.com/kei2100/filesharedelete"
)

// OpenFile opens the named file with FILE_SHARE_DELETE,
// so that chunks can be renamed while other processes are reading them.
func OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return filesharedelete.OpenFile(name, flag, perm)
}
