package file

import (
	"os"
	"sync"
)

// AppendFlag is the flag set used to open a live log file
const AppendFlag = os.O_WRONLY | os.O_CREATE | os.O_APPEND

// Handle is a file that can be closed more than once; only the first Close reaches the OS.
type Handle struct {
	once sync.Once
	err  error
	*os.File
}

// OpenAppend opens name for appending, creating it when missing
func OpenAppend(name string, perm os.FileMode) (*Handle, error) {
	f, err := OpenFile(name, AppendFlag, perm)
	if err != nil {
		return nil, err
	}
	return &Handle{File: f}, nil
}

// Close closes the underlying file once and returns the result of that close on every call
func (h *Handle) Close() error {
	h.once.Do(func() {
		h.err = h.File.Close()
	})
	return h.err
}
