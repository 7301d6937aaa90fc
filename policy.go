package logrotee

import "math"

// FileState holds the state of the live file after a write
type FileState struct {
	// bytes written since the live file was opened
	Size int64
	// whether the last chunk written ended with '\n'
	Terminated bool
}

// PolicyFunc is a type of rotate policy function
type PolicyFunc func(fileState FileState) bool

// NeedRotate reports whether need rotate
func (f PolicyFunc) NeedRotate(fileState FileState) bool {
	return f(fileState)
}

// OverflowCap returns the size at which a live file is rotated even in the middle of a line.
// It is chunkSize * 1.2, rounded up, and saturates at math.MaxInt64.
func OverflowCap(chunkSize int64) int64 {
	extra := chunkSize / 5
	if chunkSize%5 != 0 {
		extra++
	}
	if chunkSize > math.MaxInt64-extra {
		return math.MaxInt64
	}
	return chunkSize + extra
}

// LineBoundaryPolicy returns the size based rotate policy that prefers line boundaries.
// Once chunkSize is reached the file is rotated after the next complete line,
// or right away when OverflowCap(chunkSize) is reached.
func LineBoundaryPolicy(chunkSize int64) PolicyFunc {
	hardCap := OverflowCap(chunkSize)
	return func(fileState FileState) bool {
		if fileState.Size < chunkSize {
			return false
		}
		return fileState.Terminated || fileState.Size >= hardCap
	}
}
