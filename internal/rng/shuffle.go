package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
)

// Shuffler applies a uniform random permutation of n elements through swap.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffle permutes s in place
func Shuffle[T any](sh Shuffler, s []T) {
	sh.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}

// New returns a ChaCha8 generator seeded from the operating system
func New() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("rng: seeding from crypto/rand: %w", err))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeeded returns a reproducible generator for the given seed
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewFromReader draws every 64-bit value from r, e.g. a hardware entropy
// device. Reads through the returned generator are serialized, so r must
// not be handed to a second source. A failed read panics since
// rand.Source has no error path.
func NewFromReader(r io.Reader) *rand.Rand {
	return rand.New(&readerSource{r: r})
}

type readerSource struct {
	mu  sync.Mutex
	r   io.Reader
	buf [8]byte
}

func (s *readerSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		panic(fmt.Errorf("rng: reading entropy: %w", err))
	}
	return binary.BigEndian.Uint64(s.buf[:])
}

// Locked wraps a Shuffler so one generator can be shared by several decks
type Locked struct {
	mu sync.Mutex
	s  Shuffler
}

func NewLocked(s Shuffler) *Locked {
	if l, ok := s.(*Locked); ok {
		return l
	}
	return &Locked{s: s}
}

func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.s.Shuffle(n, swap)
}
