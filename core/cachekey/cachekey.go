package cachekey

import (
	"fmt"
	"math/rand"
	"os"
	"regexp"
	"time"
)

// idPattern is the canonical identifier format: minute-resolution
// timestamp, process id, zero-padded 4-digit random suffix.
var idPattern = regexp.MustCompile(`^\d{8}-\d{4}-\d+-\d{4}$`)

// ID is a validated cache identifier. It names the directory slot a cached
// upload lives under and is fixed for the lifetime of an upload session.
type ID string

// String returns the textual form of the identifier.
func (id ID) String() string { return string(id) }

// Parse validates a raw identifier string against the canonical format.
// Identifiers arrive embedded in client-supplied cache names, so a
// mismatch is treated as a tampered or corrupted token.
func Parse(raw string) (ID, error) {
	if !idPattern.MatchString(raw) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, raw)
	}
	return ID(raw), nil
}

// Generator produces cache identifiers from an injectable clock, process
// id, and random source. The zero-argument constructor wires the real
// process state; tests override individual sources via options.
type Generator struct {
	now  func() time.Time
	pid  func() int
	rand func(n int) int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides the time source used for the timestamp segment.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// WithPID overrides the process id source.
func WithPID(pid func() int) GeneratorOption {
	return func(g *Generator) {
		g.pid = pid
	}
}

// WithRand overrides the random source. The function receives the
// exclusive upper bound and must return a value in [0, n).
func WithRand(rand func(n int) int) GeneratorOption {
	return func(g *Generator) {
		g.rand = rand
	}
}

// NewGenerator creates a generator backed by the system clock, the current
// process id, and math/rand.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		now:  time.Now,
		pid:  os.Getpid,
		rand: rand.Intn,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a fresh identifier. Uniqueness is best-effort: the
// minute timestamp and pid narrow the window, the random suffix is the
// only tiebreaker inside it.
func (g *Generator) Generate() ID {
	return ID(fmt.Sprintf("%s-%d-%04d", g.now().Format("20060102-1504"), g.pid(), g.rand(10000)))
}
