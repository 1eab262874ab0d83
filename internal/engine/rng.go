package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Rand is the single source of randomness the core consumes. It is a required
// field wherever a roll happens, so tests always decide determinism.
type Rand interface {
	// Intn returns a value in [0, n). n is always > 0.
	Intn(n int) int
}

// NewSeededRand returns a reproducible Rand for the given seed.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewCryptoSeed generates a high-entropy seed for NewSeededRand.
func NewCryptoSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SequenceRand replays a fixed queue of Intn results. Values are reduced into
// [0, n); once the queue is drained every call returns 0.
type SequenceRand struct {
	queue []int
}

// NewSequenceRand prepares a deterministic sequence of results.
func NewSequenceRand(values ...int) *SequenceRand {
	q := make([]int, len(values))
	copy(q, values)
	return &SequenceRand{queue: q}
}

// Intn pops the next queued value.
func (r *SequenceRand) Intn(n int) int {
	if n <= 0 || len(r.queue) == 0 {
		return 0
	}
	v := r.queue[0]
	r.queue = r.queue[1:]
	return ((v % n) + n) % n
}

// Remaining reports how many queued values are left.
func (r *SequenceRand) Remaining() int {
	return len(r.queue)
}

// rollReflectHeal rolls uniformly over [1, level].
func rollReflectHeal(rng Rand, level int) int {
	lo, hi := ReflectHealRange(level)
	return lo + rng.Intn(hi-lo+1)
}
