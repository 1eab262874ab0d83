package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanPerformAction(t *testing.T) {
	t.Run("illuminate needs 2 LP", func(t *testing.T) {
		s := testSession()
		s.Resources.LP = 1
		before := s.Clone()

		res := CanPerformAction(ActionIlluminate, s, ActionContext{})
		assert.Equal(t, ValidationResult{CanPerform: false, Reason: ReasonNotEnoughLP}, res)
		assert.Equal(t, before, s, "validation must not touch the session")

		s.Resources.LP = 2
		assert.True(t, CanPerformAction(ActionIlluminate, s, ActionContext{}).CanPerform)
	})

	t.Run("reflect needs 3 SP", func(t *testing.T) {
		s := testSession()
		s.Resources.SP = 2
		assert.Equal(t, ReasonNotEnoughSP, CanPerformAction(ActionReflect, s, ActionContext{}).Reason)
		s.Resources.SP = 3
		assert.True(t, CanPerformAction(ActionReflect, s, ActionContext{}).CanPerform)
	})

	t.Run("embrace needs 5 SP", func(t *testing.T) {
		s := testSession()
		s.Resources.SP = 4
		assert.Equal(t, ReasonNotEnoughSP, CanPerformAction(ActionEmbrace, s, ActionContext{}).Reason)
		s.Resources.SP = 5
		assert.True(t, CanPerformAction(ActionEmbrace, s, ActionContext{}).CanPerform)
	})

	t.Run("endure is free by default", func(t *testing.T) {
		s := testSession()
		s.PlayerEnergy = 0
		assert.True(t, CanPerformAction(ActionEndure, s, ActionContext{}).CanPerform)
	})

	t.Run("endure checks configured energy cost", func(t *testing.T) {
		s := testSession()
		s.PlayerEnergy = 3
		res := CanPerformAction(ActionEndure, s, ActionContext{EndureCost: 5})
		assert.Equal(t, ReasonNotEnoughEnergy, res.Reason)
		assert.False(t, res.CanPerform)
	})

	t.Run("unknown action", func(t *testing.T) {
		res := CanPerformAction(Action("DANCE"), testSession(), ActionContext{})
		assert.Equal(t, ReasonUnknownAction, res.Reason)
	})
}

func TestExecuteIlluminate(t *testing.T) {
	s := testSession()
	res := ExecuteAction(ActionIlluminate, s, testOptions(NewSequenceRand()))

	assert.Equal(t, 10, res.Damage)
	assert.Equal(t, 8, res.Session.Resources.LP)
	assert.Equal(t, 30, res.Session.Enemy.CurrentHP)
	assert.Equal(t, "-2 LP, 10 damage", res.LogEntry.Effect)
	assert.Equal(t, ActorPlayer, res.LogEntry.Actor)
	assert.Equal(t, 1, res.LogEntry.Turn)

	// original untouched
	assert.Equal(t, 10, s.Resources.LP)
	assert.Equal(t, 40, s.Enemy.CurrentHP)
	assert.Empty(t, s.Log)
}

func TestExecuteIlluminateFloorsEnemyHP(t *testing.T) {
	s := testSession()
	s.Enemy.CurrentHP = 4
	res := ExecuteAction(ActionIlluminate, s, testOptions(NewSequenceRand()))
	assert.Equal(t, 0, res.Session.Enemy.CurrentHP)
}

func TestExecuteReflect(t *testing.T) {
	t.Run("heals and grants LP", func(t *testing.T) {
		s := testSession()
		s.PlayerHealth = 50
		res := ExecuteAction(ActionReflect, s, testOptions(NewSequenceRand(2)))

		assert.Equal(t, 2, res.Session.Resources.SP)
		assert.Equal(t, 11, res.Session.Resources.LP)
		assert.Equal(t, 3, res.HealthHeal)
		assert.Equal(t, 53, res.Session.PlayerHealth)
		assert.Equal(t, "-3 SP, +1 LP, +3 health", res.LogEntry.Effect)
	})

	t.Run("heal capped at max health", func(t *testing.T) {
		s := testSession()
		s.PlayerHealth = 99
		res := ExecuteAction(ActionReflect, s, testOptions(NewSequenceRand(4)))
		assert.Equal(t, 100, res.Session.PlayerHealth)
		assert.Equal(t, 1, res.HealthHeal)
	})

	t.Run("healing blocked still consumes the roll", func(t *testing.T) {
		s := testSession()
		s.PlayerHealth = 50
		s.StatusEffects.HealingBlocked = 2
		rng := NewSequenceRand(4, 1)
		res := ExecuteAction(ActionReflect, s, testOptions(rng))
		assert.Equal(t, 0, res.HealthHeal)
		assert.Equal(t, 50, res.Session.PlayerHealth)
		assert.Equal(t, 1, rng.Remaining())
	})

	t.Run("lp generation blocked", func(t *testing.T) {
		s := testSession()
		s.StatusEffects.LPGenerationBlocked = 1
		res := ExecuteAction(ActionReflect, s, testOptions(NewSequenceRand(0)))
		assert.Equal(t, 10, res.Session.Resources.LP)
		assert.Contains(t, res.LogEntry.Effect, "+0 LP")
	})
}

func TestReflectHealBoundsObserved(t *testing.T) {
	rng := NewSeededRand(42)
	const level = 6
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		s := testSession()
		s.PlayerHealth = 10
		res := ExecuteAction(ActionReflect, s, ActionOptions{PlayerLevel: level, Rand: rng})
		require.GreaterOrEqual(t, res.HealthHeal, 1)
		require.LessOrEqual(t, res.HealthHeal, level)
		seen[res.HealthHeal] = true
	}
	assert.True(t, seen[1], "lower bound never rolled")
	assert.True(t, seen[level], "upper bound never rolled")
}

func TestExecuteEndure(t *testing.T) {
	t.Run("free endure", func(t *testing.T) {
		s := testSession()
		res := ExecuteAction(ActionEndure, s, testOptions(NewSequenceRand()))
		assert.Equal(t, 11, res.Session.Resources.LP)
		assert.Equal(t, 100, res.Session.PlayerEnergy)
		assert.Equal(t, 1, res.Session.StatusEffects.ConsecutiveEndures)
		assert.Equal(t, "+1 LP, -0 energy", res.LogEntry.Effect)
	})

	t.Run("configured energy cost", func(t *testing.T) {
		s := testSession()
		opts := testOptions(NewSequenceRand())
		opts.EndureCost = 15
		res := ExecuteAction(ActionEndure, s, opts)
		assert.Equal(t, 85, res.Session.PlayerEnergy)
		assert.Equal(t, 15, res.EnergyCost)
	})

	t.Run("streak resets on another action", func(t *testing.T) {
		s := testSession()
		opts := testOptions(NewSequenceRand())
		s = ExecuteAction(ActionEndure, s, opts).Session
		s = ExecuteAction(ActionEndure, s, opts).Session
		assert.Equal(t, 2, s.StatusEffects.ConsecutiveEndures)
		s = ExecuteAction(ActionIlluminate, s, opts).Session
		assert.Equal(t, 0, s.StatusEffects.ConsecutiveEndures)
		assert.Equal(t, 2, s.PreferredActions[ActionEndure])
		assert.Equal(t, 1, s.PreferredActions[ActionIlluminate])
	})
}

func TestExecuteEmbrace(t *testing.T) {
	s := testSession()
	s.Resources.SP = 6
	res := ExecuteAction(ActionEmbrace, s, testOptions(NewSequenceRand()))
	assert.Equal(t, 3, res.Damage)
	assert.Equal(t, 0, res.Session.Resources.SP)
	assert.Equal(t, 37, res.Session.Enemy.CurrentHP)
	assert.Equal(t, "-6 SP, 3 damage", res.LogEntry.Effect)
}

func TestExecuteUnknownAction(t *testing.T) {
	s := testSession()
	res := ExecuteAction(Action("DANCE"), s, testOptions(NewSequenceRand()))
	assert.True(t, res.LogEntry.IsZero())
	assert.Equal(t, s, res.Session)
	assert.Zero(t, res.Damage)
}

func TestExecuteUnvalidatedActionClamps(t *testing.T) {
	s := testSession()
	s.Resources.LP = 1
	res := ExecuteAction(ActionIlluminate, s, testOptions(NewSequenceRand()))
	assert.Equal(t, 0, res.Session.Resources.LP)

	s.Resources.SP = 1
	res = ExecuteAction(ActionReflect, s, testOptions(NewSequenceRand(0)))
	assert.Equal(t, 0, res.Session.Resources.SP)
}

func TestEndToEndScenario(t *testing.T) {
	s := testSession()
	opts := testOptions(NewSequenceRand())
	startHP := s.Enemy.CurrentHP

	r1 := ExecuteAction(ActionIlluminate, s, opts)
	require.Equal(t, 8, r1.Session.Resources.LP)
	require.Equal(t, startHP-10, r1.Session.Enemy.CurrentHP)

	require.Equal(t, 5, r1.Session.Resources.SP)
	r2 := ExecuteAction(ActionEmbrace, r1.Session, opts)
	assert.Equal(t, 2, r2.Damage)
	assert.Equal(t, 0, r2.Session.Resources.SP)
	assert.Equal(t, startHP-12, r2.Session.Enemy.CurrentHP)

	var player []LogEntry
	for _, e := range r2.Session.Log {
		if e.Actor == ActorPlayer {
			player = append(player, e)
		}
	}
	require.Len(t, player, 2)
	assert.Equal(t, string(ActionIlluminate), player[0].Action)
	assert.Equal(t, string(ActionEmbrace), player[1].Action)
	assert.LessOrEqual(t, player[0].Turn, player[1].Turn)
}

func TestRejectedActionLeavesStateUnchanged(t *testing.T) {
	s := testSession()
	s.Resources.LP = 1
	snapshot := s.Clone()

	executed := false
	if v := CanPerformAction(ActionIlluminate, s, ActionContext{}); v.CanPerform {
		s = ExecuteAction(ActionIlluminate, s, testOptions(NewSequenceRand())).Session
		executed = true
	} else {
		assert.Equal(t, "Not enough Light Points", v.Reason)
	}
	assert.False(t, executed)
	assert.Equal(t, snapshot, s)
}

func TestConsumeSkippedTurn(t *testing.T) {
	s := testSession()
	_, ok := ConsumeSkippedTurn(s)
	assert.False(t, ok)

	s.StatusEffects.SkipNextTurn = true
	s.StatusEffects.ConsecutiveEndures = 3
	res, ok := ConsumeSkippedTurn(s)
	require.True(t, ok)
	assert.False(t, res.Session.StatusEffects.SkipNextTurn)
	assert.Equal(t, 0, res.Session.StatusEffects.ConsecutiveEndures)
	assert.Equal(t, string(ActionSkip), res.LogEntry.Action)
	assert.Len(t, res.Session.Log, 1)
	assert.True(t, s.StatusEffects.SkipNextTurn, "input untouched")
}

func TestSurrender(t *testing.T) {
	res := Surrender(testSession())
	assert.True(t, res.Session.Surrendered)
	assert.False(t, res.Session.IsPlayerTurn)
	assert.Equal(t, string(ActionSurrender), res.LogEntry.Action)

	end := CheckCombatEnd(res.Session)
	assert.True(t, end.IsEnded)
	assert.False(t, end.Victory)
}
