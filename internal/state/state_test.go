package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_NextSequence(t *testing.T) {
	t.Parallel()

	tt := []struct {
		ring int
		want []int
	}{
		{ring: 3, want: []int{0, 1, 2, 0, 1, 2, 0}},
		{ring: 2, want: []int{0, 1, 0, 1, 0}},
		{ring: 1, want: []int{0, 0, 0}},
		{ring: 0, want: []int{0, 0, 0}},
		{ring: -5, want: []int{0, 0}},
	}
	for i, te := range tt {
		te := te
		t.Run(fmt.Sprintf("#%d", i), func(t *testing.T) {
			s := NewState(te.ring)
			got := make([]int, 0, len(te.want))
			for range te.want {
				got = append(got, s.NextSequence())
				assert.GreaterOrEqual(t, s.Sequence(), 0)
				assert.Less(t, s.Sequence(), s.Ring())
			}
			assert.Equal(t, te.want, got)
		})
	}
}

func TestState_Bytes(t *testing.T) {
	t.Parallel()

	s := NewState(3)
	assert.Equal(t, int64(4), s.AddBytes(4))
	assert.Equal(t, int64(4), s.AddBytes(0))
	assert.Equal(t, int64(9), s.AddBytes(5))
	assert.Equal(t, int64(9), s.Bytes())

	s.ResetBytes()
	assert.Zero(t, s.Bytes())
}
