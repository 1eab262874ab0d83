package engine

// testTemplate returns a manifestation covering several effect families.
func testTemplate() Manifestation {
	return Manifestation{
		ID:          "doubt",
		Name:        "The Whisper of Doubt",
		Category:    "self-doubt",
		Description: "A voice that questions every step.",
		MaxHP:       40,
		Abilities: []Ability{
			{ID: "erode", Name: "Erode Confidence", Cooldown: 2, Effect: Effect{Kind: EffectDrain, Amount: 3}},
			{ID: "question", Name: "Endless Questions", Cooldown: 3, Effect: Effect{Kind: EffectDrainBlock, Amount: 2, Duration: 2}},
		},
		SignatureAbility: "question",
		NarrativeInsight: "Doubt is a sign you care.",
		VictoryReward:    VictoryReward{LP: 3, SP: 1, Title: "Quiet Confidence"},
	}
}

func testFactory() *Factory {
	return NewFactory(testTemplate())
}

func testPlayer() Player {
	return Player{
		Level:     5,
		MaxHealth: 100,
		MaxEnergy: 100,
		Health:    100,
		Energy:    100,
		Resources: Resources{LP: 10, SP: 5},
	}
}

func testSession() Session {
	return NewSession(testFactory().CreateManifestation("doubt"), testPlayer())
}

func testOptions(rng Rand) ActionOptions {
	return ActionOptions{PlayerLevel: 5, Rand: rng}
}
