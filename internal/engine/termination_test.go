package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCombatEnd(t *testing.T) {
	tests := []struct {
		name        string
		enemyHP     int
		health      int
		surrendered bool
		ended       bool
		victory     bool
	}{
		{"ongoing", 10, 10, false, false, false},
		{"enemy defeated", 0, 10, false, true, true},
		{"player defeated", 10, 0, false, true, false},
		{"both defeated favours victory", 0, 0, false, true, true},
		{"surrender", 10, 10, true, true, false},
		{"victory beats surrender", 0, 10, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSession()
			s.Enemy.CurrentHP = tt.enemyHP
			s.PlayerHealth = tt.health
			s.Surrendered = tt.surrendered

			res := CheckCombatEnd(s)
			assert.Equal(t, tt.ended, res.IsEnded)
			assert.Equal(t, tt.victory, res.Victory)
			if tt.ended {
				assert.NotEmpty(t, res.Reason)
			} else {
				assert.Empty(t, res.Reason)
			}
		})
	}
}

func TestCheckCombatEndVictoryNamesEnemy(t *testing.T) {
	s := testSession()
	s.Enemy.CurrentHP = 0
	assert.Contains(t, CheckCombatEnd(s).Reason, s.Enemy.Name)
}

func TestCheckCombatEndWithoutEnemy(t *testing.T) {
	s := NewSession(nil, testPlayer())
	assert.False(t, CheckCombatEnd(s).IsEnded)
}
