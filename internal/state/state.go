package state

// State of the rotation engine.
// It is touched from a single goroutine only, so nothing here is atomic.
type State struct {
	// bytes written to the live file since it was opened
	bytes int64
	// next numeric suffix, always in [0, ring)
	seq  int
	ring int
}

// NewState creates a State with the given ring size. A ring size below 1 behaves as 1.
func NewState(ring int) *State {
	if ring < 1 {
		ring = 1
	}
	return &State{ring: ring}
}

// Bytes returns the bytes written to the live file
func (s *State) Bytes() int64 {
	return s.bytes
}

// AddBytes adds n to the byte counter and returns the new value
func (s *State) AddBytes(n int) int64 {
	s.bytes += int64(n)
	return s.bytes
}

// ResetBytes zeroes the byte counter after a rotation
func (s *State) ResetBytes() {
	s.bytes = 0
}

// Sequence returns the next numeric suffix without consuming it
func (s *State) Sequence() int {
	return s.seq
}

// Ring returns the ring size
func (s *State) Ring() int {
	return s.ring
}

// NextSequence returns the next numeric suffix and advances it, wrapping to 0 at the ring size
func (s *State) NextSequence() int {
	n := s.seq
	s.seq++
	if s.seq >= s.ring {
		s.seq = 0
	}
	return n
}
