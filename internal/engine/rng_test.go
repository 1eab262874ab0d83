package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceRand(t *testing.T) {
	r := NewSequenceRand(3, 7, -1)
	assert.Equal(t, 3, r.Remaining())
	assert.Equal(t, 3, r.Intn(5))
	assert.Equal(t, 2, r.Intn(5), "values wrap into range")
	assert.Equal(t, 4, r.Intn(5), "negative values wrap into range")
	assert.Equal(t, 0, r.Intn(5), "drained queue returns 0")
	assert.Equal(t, 0, r.Remaining())
}

func TestSeededRandIsReproducible(t *testing.T) {
	a, b := NewSeededRand(7), NewSeededRand(7)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestNewCryptoSeed(t *testing.T) {
	_, err := NewCryptoSeed()
	assert.NoError(t, err)
}

func TestRollReflectHeal(t *testing.T) {
	assert.Equal(t, 1, rollReflectHeal(NewSequenceRand(0), 5))
	assert.Equal(t, 5, rollReflectHeal(NewSequenceRand(4), 5))
	assert.Equal(t, 1, rollReflectHeal(NewSequenceRand(9), 1))
}
