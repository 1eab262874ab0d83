package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestProcessStatusEffects(t *testing.T) {
	s := testSession()
	s.StatusEffects = StatusEffects{
		DamageMultiplier:    1.5,
		DamageReduction:     0.5,
		HealingBlocked:      2,
		LPGenerationBlocked: 1,
		SkipNextTurn:        true,
		ConsecutiveEndures:  2,
	}
	s.Enemy.Ability("question").CurrentCooldown = 3

	next := ProcessStatusEffects(s)
	assert.Equal(t, StatusEffects{
		DamageMultiplier:    1,
		DamageReduction:     1,
		HealingBlocked:      1,
		LPGenerationBlocked: 0,
		SkipNextTurn:        true,
		ConsecutiveEndures:  2,
	}, next.StatusEffects)
	assert.Equal(t, 2, next.Enemy.Ability("question").CurrentCooldown)
	assert.Equal(t, 0, next.Enemy.Ability("erode").CurrentCooldown)
	assert.Equal(t, 3, s.Enemy.Ability("question").CurrentCooldown, "input untouched")
}

func TestProcessStatusEffectsIdempotentAtZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := testSession()
		s.StatusEffects.SkipNextTurn = rapid.Bool().Draw(t, "skip")
		s.StatusEffects.ConsecutiveEndures = rapid.IntRange(0, 10).Draw(t, "endures")
		rounds := rapid.IntRange(1, 5).Draw(t, "rounds")

		next := s
		for i := 0; i < rounds; i++ {
			next = ProcessStatusEffects(next)
		}
		if next.StatusEffects != s.StatusEffects {
			t.Fatalf("status changed: %+v -> %+v", s.StatusEffects, next.StatusEffects)
		}
		for _, a := range next.Enemy.Abilities {
			if a.CurrentCooldown != 0 {
				t.Fatalf("cooldown %s went to %d", a.ID, a.CurrentCooldown)
			}
		}
	})
}

func TestProcessStatusEffectsNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := testSession()
		s.StatusEffects.HealingBlocked = rapid.IntRange(0, 6).Draw(t, "healing")
		s.StatusEffects.LPGenerationBlocked = rapid.IntRange(0, 6).Draw(t, "lp")
		for i := 0; i < 8; i++ {
			s = ProcessStatusEffects(s)
			if s.StatusEffects.HealingBlocked < 0 || s.StatusEffects.LPGenerationBlocked < 0 {
				t.Fatalf("negative countdown: %+v", s.StatusEffects)
			}
		}
		if s.StatusEffects.HealingBlocked != 0 || s.StatusEffects.LPGenerationBlocked != 0 {
			t.Fatalf("countdowns did not expire: %+v", s.StatusEffects)
		}
	})
}
