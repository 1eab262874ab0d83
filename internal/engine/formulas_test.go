package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIlluminateDamageExamples(t *testing.T) {
	assert.Equal(t, 10, IlluminateDamage(5))
	assert.Equal(t, 33, IlluminateDamage(20))
	assert.Equal(t, 4, IlluminateDamage(1))
	assert.Equal(t, 4, IlluminateDamage(0), "level floors at 1")
	assert.Equal(t, 4, IlluminateDamage(-3), "level floors at 1")
}

func TestIlluminateDamageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		level := rapid.IntRange(1, 10_000).Draw(t, "level")
		want := 3 + int(float64(level)*1.5)
		if got := IlluminateDamage(level); got != want {
			t.Fatalf("IlluminateDamage(%d) = %d, want %d", level, got, want)
		}
	})
}

func TestEmbraceDamageExamples(t *testing.T) {
	assert.Equal(t, 3, EmbraceDamage(6))
	assert.Equal(t, 2, EmbraceDamage(5))
	assert.Equal(t, 1, EmbraceDamage(1))
	assert.Equal(t, 1, EmbraceDamage(0))
}

func TestEmbraceDamageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sp := rapid.IntRange(0, 10_000).Draw(t, "sp")
		want := sp / 2
		if want < 1 {
			want = 1
		}
		if got := EmbraceDamage(sp); got != want {
			t.Fatalf("EmbraceDamage(%d) = %d, want %d", sp, got, want)
		}
	})
}

func TestShadowDamageExamples(t *testing.T) {
	assert.Equal(t, 5, Defense(10))
	assert.Equal(t, 3, ShadowDamage(10))
	assert.Equal(t, 8, ShadowDamage(0))
	assert.Equal(t, 1, ShadowDamage(100), "damage never drops below 1")
}

func TestShadowDamageProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lp := rapid.IntRange(0, 1_000).Draw(t, "lp")
		defense := int(float64(lp) * 0.5)
		if got := Defense(lp); got != defense {
			t.Fatalf("Defense(%d) = %d, want %d", lp, got, defense)
		}
		want := BaseShadowDamage - defense
		if want < 1 {
			want = 1
		}
		if got := ShadowDamage(lp); got != want {
			t.Fatalf("ShadowDamage(%d) = %d, want %d", lp, got, want)
		}
		if got := shadowAttackDamage(BaseShadowDamage, lp, 1, 1); got != want {
			t.Fatalf("neutral multipliers changed damage: %d != %d", got, want)
		}
	})
}

func TestShadowAttackDamageModifiers(t *testing.T) {
	// lp 10 -> defense 5; halved defense -> 2; 8 - 2 = 6
	assert.Equal(t, 6, shadowAttackDamage(BaseShadowDamage, 10, 0.5, 1))
	// 3 * 1.5 = 4.5 -> 4
	assert.Equal(t, 4, shadowAttackDamage(BaseShadowDamage, 10, 1, 1.5))
	assert.Equal(t, 1, shadowAttackDamage(BaseShadowDamage, 10, 1, 0))
}

func TestActionCostAndDescription(t *testing.T) {
	assert.Equal(t, Cost{LP: 2}, ActionCost(ActionIlluminate, 0))
	assert.Equal(t, Cost{SP: 3}, ActionCost(ActionReflect, 0))
	assert.Equal(t, Cost{Energy: 4}, ActionCost(ActionEndure, 4))
	assert.Equal(t, Cost{}, ActionCost(ActionEndure, -1))
	assert.Equal(t, Cost{SP: 5}, ActionCost(ActionEmbrace, 0))
	assert.Equal(t, Cost{}, ActionCost(Action("DANCE"), 0))

	for _, a := range Actions() {
		assert.NotEmpty(t, ActionDescription(a), a)
	}
	assert.Empty(t, ActionDescription(Action("DANCE")))
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction(" illuminate ")
	assert.True(t, ok)
	assert.Equal(t, ActionIlluminate, a)

	_, ok = ParseAction("surrender")
	assert.False(t, ok, "surrender is not a combat action")
}

func TestReflectHealRange(t *testing.T) {
	lo, hi := ReflectHealRange(7)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 7, hi)

	lo, hi = ReflectHealRange(0)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 1, hi)
}
