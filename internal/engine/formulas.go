package engine

import "math"

// Combat constants.
const (
	IlluminateLPCost = 2
	ReflectSPCost    = 3
	EmbraceSPCost    = 5

	IlluminateBaseDamage = 3
	ReflectLPGain        = 1
	EndureLPGain         = 1

	// BaseShadowDamage is the antagonist's basic attack before the player's defense.
	BaseShadowDamage = 8
	// DesperateBonusDamage is added to the basic attack once the antagonist is
	// at or below DesperateHPPercent of its maximum HP.
	DesperateBonusDamage = 3
	DesperateHPPercent   = 30

	ShadowSPGain = 1
	MaxShadowSP  = 10
)

// Cost is the resource price of an action.
type Cost struct {
	LP     int `json:"lp"`
	SP     int `json:"sp"`
	Energy int `json:"energy"`
}

// effectiveLevel floors the player level at 1.
func effectiveLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}

// IlluminateDamage returns 3 + floor(level * 1.5).
func IlluminateDamage(level int) int {
	return IlluminateBaseDamage + effectiveLevel(level)*3/2
}

// EmbraceDamage returns max(1, floor(sp / 2)).
func EmbraceDamage(sp int) int {
	return max(1, max(0, sp)/2)
}

// Defense returns floor(lp * 0.5).
func Defense(lp int) int {
	return max(0, lp) / 2
}

// ShadowDamage returns the basic attack damage against a player holding lp
// Light Points: max(1, BaseShadowDamage - Defense(lp)).
func ShadowDamage(lp int) int {
	return max(1, BaseShadowDamage-Defense(lp))
}

// ReflectHealRange returns the inclusive bounds of Reflect's heal roll.
func ReflectHealRange(level int) (int, int) {
	return 1, effectiveLevel(level)
}

// shadowAttackDamage applies the round's status multipliers to the basic
// attack. reduction scales the player's defense, multiplier the final damage.
// With both at 1 the result equals max(1, base - Defense(lp)).
func shadowAttackDamage(base, lp int, reduction, multiplier float64) int {
	defense := int(math.Floor(float64(Defense(lp)) * nonNegative(reduction)))
	raw := max(1, base-defense)
	return max(1, int(math.Floor(float64(raw)*nonNegative(multiplier))))
}

func nonNegative(f float64) float64 {
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	return f
}

// ActionCost returns what an action spends. endureCost is the configured
// energy price of Endure.
func ActionCost(action Action, endureCost int) Cost {
	switch action {
	case ActionIlluminate:
		return Cost{LP: IlluminateLPCost}
	case ActionReflect:
		return Cost{SP: ReflectSPCost}
	case ActionEndure:
		return Cost{Energy: max(0, endureCost)}
	case ActionEmbrace:
		return Cost{SP: EmbraceSPCost}
	}
	return Cost{}
}

// ActionDescription returns a short human-readable explanation of an action.
func ActionDescription(action Action) string {
	switch action {
	case ActionIlluminate:
		return "Spend 2 LP to shine light on the shadow, dealing 3 + 1.5x your level in damage."
	case ActionReflect:
		return "Spend 3 SP to turn inward: gain 1 LP and recover between 1 and your level in health."
	case ActionEndure:
		return "Hold steady and gain 1 LP."
	case ActionEmbrace:
		return "Release all SP (5 or more) to accept the shadow, dealing half your SP in damage."
	case ActionSurrender:
		return "Step back from the encounter. It ends without victory."
	}
	return ""
}
