// Package line splits an input stream into the chunks handed to the rotation engine.
package line

import (
	"bufio"
	"io"
)

// DefaultBufferSize is the size of the read buffer, which is also the longest chunk Next returns
const DefaultBufferSize = 4096

// Source reads an input stream chunk by chunk.
// A chunk ends with '\n', or is as long as the read buffer, or is the tail of the stream.
type Source struct {
	r   *bufio.Reader
	eof bool
}

// NewSource creates a Source reading from r. A size <= 0 selects DefaultBufferSize.
func NewSource(r io.Reader, size int) *Source {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Source{r: bufio.NewReaderSize(r, size)}
}

// Next returns the next chunk, or io.EOF when the stream is exhausted.
// The returned slice is only valid until the next call.
func (s *Source) Next() ([]byte, error) {
	if s.eof {
		return nil, io.EOF
	}
	b, err := s.r.ReadSlice('\n')
	switch err {
	case nil, bufio.ErrBufferFull:
		return b, nil
	case io.EOF:
		s.eof = true
		if len(b) == 0 {
			return nil, io.EOF
		}
		return b, nil
	default:
		return b, err
	}
}
