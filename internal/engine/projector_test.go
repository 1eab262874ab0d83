package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectorBuild(t *testing.T) {
	s := testSession()
	s.PlayerHealth = 50
	opts := testOptions(NewSequenceRand(3))

	s = ExecuteAction(ActionIlluminate, s, opts).Session
	s = RunAntagonistTurn(s, AntagonistOptions{}).Session
	s = ExecuteAction(ActionReflect, s, opts).Session
	s = Surrender(s).Session

	sum := NewProjector().Build(s.Log)
	assert.Equal(t, 2, sum.Turns)
	assert.Equal(t, map[string]int{"ILLUMINATE": 1, "REFLECT": 1}, sum.PlayerActions)
	assert.Equal(t, map[string]int{"Erode Confidence": 1}, sum.AbilitiesUsed)
	assert.Equal(t, 10, sum.DamageDealt)
	// LP 8 drained to 5 -> defense 2 -> 6 damage
	assert.Equal(t, 6, sum.DamageTaken)
	assert.Equal(t, 4, sum.Healing)
	assert.True(t, sum.Surrendered)
	assert.Zero(t, sum.SkippedTurns)
}

func TestProjectorSkippedTurns(t *testing.T) {
	entries := []LogEntry{
		{Turn: 1, Actor: ActorPlayer, Action: string(ActionSkip), Effect: "turn skipped"},
		{Turn: 1, Actor: ActorShadow, Action: LabelDesperateStrike, Effect: "9 damage"},
	}
	sum := NewProjector().Build(entries)
	assert.Equal(t, 1, sum.SkippedTurns)
	assert.Equal(t, 9, sum.DamageTaken)
	assert.Empty(t, sum.PlayerActions)
}

func TestProjectorEmpty(t *testing.T) {
	sum := NewProjector().Build(nil)
	assert.Zero(t, sum.Turns)
	assert.NotNil(t, sum.PlayerActions)
	assert.NotNil(t, sum.AbilitiesUsed)
}

func TestEffectAmount(t *testing.T) {
	assert.Equal(t, 10, effectAmount("-2 LP, 10 damage", "damage"))
	assert.Equal(t, 3, effectAmount("-3 SP, +1 LP, +3 health", "health"))
	assert.Equal(t, 0, effectAmount("-3 SP, +1 LP, +3 health", "damage"))
	assert.Equal(t, 0, effectAmount("", "damage"))
}
