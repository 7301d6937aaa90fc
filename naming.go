package logrotee

import (
	"crypto/rand"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/kei2100/logrotee/internal/state"
	"github.com/kei2100/logrotee/logger"
)

// DateLayout formats chunk names in date mode. Names sort lexically in time order.
const DateLayout = "2006-01-02T15-04-05.000000000"

// Namer computes the name of the next chunk
type Namer interface {
	NextName() string
}

// numericNamer names chunks base.0 ... base.N-1 and recycles them.
//   e.g. base "log", ring 2
//   - log.0 | log.1 | log.0 (log.0 and log.0.gz removed first) | ...
type numericNamer struct {
	base   string
	suffix string
	st     *state.State
}

func formatRotatedPath(path string, num int) string {
	return fmt.Sprintf("%s.%d", path, num)
}

func (n *numericNamer) NextName() string {
	name := formatRotatedPath(n.base, n.st.NextSequence())
	evict(name)
	if n.suffix != "" {
		evict(name + n.suffix)
	}
	return name
}

func evict(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Printf("rotate: failed to remove %s: %+v", path, err)
	}
}

// dateNamer names chunks after the rotation time. Nothing is evicted.
type dateNamer struct {
	base    string
	suffix  string
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

func newDateNamer(base, suffix string, now func() time.Time) *dateNamer {
	return &dateNamer{
		base:    base,
		suffix:  suffix,
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (n *dateNamer) NextName() string {
	t := n.now().UTC()
	name := n.base + "." + t.Format(DateLayout)
	if !exists(name) && !exists(name+n.suffix) {
		return name
	}
	id, err := ulid.New(ulid.Timestamp(t), n.entropy)
	if err != nil {
		// the entropy source only fails when the monotonic counter overflows within one millisecond
		logger.Printf("rotate: failed to generate a unique suffix for %s: %+v", name, err)
		return name
	}
	return name + "." + id.String()
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
