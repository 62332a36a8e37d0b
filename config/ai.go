package config

// AIConfigData holds tuning for NPC decision making
type AIConfigData struct {
	// DualStrikeArchetypes swing twice: every attack issued by the attack
	// state is followed by a queued Skill2 request on the same foe.
	DualStrikeArchetypes map[CharacterType]bool

	// ChainTertiary additionally queues Skill3 after the Skill2 follow-up
	// for dual-strike archetypes. Off by default.
	ChainTertiary bool
}

// AI holds NPC AI configuration
var AI AIConfigData

func init() {
	AI = AIConfigData{
		DualStrikeArchetypes: map[CharacterType]bool{
			CharacterImpBoss: true,
		},
		ChainTertiary: false,
	}
}

// IsDualStrike reports whether c is configured to swing twice.
func (a *AIConfigData) IsDualStrike(c CharacterType) bool {
	return a.DualStrikeArchetypes[c]
}
