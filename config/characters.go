package config

import (
	"fmt"
	"image/color"
)

// CharacterType is the archetype of a character
type CharacterType int

const (
	CharacterTank CharacterType = iota
	CharacterArcher
	CharacterMage
	CharacterRogue
	CharacterImp
	CharacterImpBoss
	CharacterCount // Must be last
)

var characterTypeNames = map[CharacterType]string{
	CharacterTank:    "Tank",
	CharacterArcher:  "Archer",
	CharacterMage:    "Mage",
	CharacterRogue:   "Rogue",
	CharacterImp:     "Imp",
	CharacterImpBoss: "ImpBoss",
}

func (c CharacterType) String() string {
	if name, ok := characterTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CharacterType(%d)", int(c))
}

// ParseCharacterType is the inverse of String.
func ParseCharacterType(name string) (CharacterType, error) {
	for c, n := range characterTypeNames {
		if n == name {
			return c, nil
		}
	}
	return CharacterCount, fmt.Errorf("unknown character type %q", name)
}

// Faction decides who is hostile to whom.
type Faction int

const (
	FactionHeroes Faction = iota
	FactionMonsters
)

// Hostile reports whether f attacks other.
func (f Faction) Hostile(other Faction) bool {
	return f != other
}

// CharacterClass is the static combat data of a character
type CharacterClass struct {
	Type    CharacterType
	Faction Faction
	IsNPC   bool // Driven by the AI controller

	// Skills; Skill1 is always the base attack
	Skill1 ActionType
	Skill2 ActionType // ActionNone if absent
	Skill3 ActionType // ActionNone if absent

	BaseHP      int
	Speed       float64 // Pixels per second while chasing
	DetectRange float64 // Distance at which NPCs notice hostiles

	// Dimensions
	CollisionWidth  int
	CollisionHeight int

	// Visual
	Color color.RGBA
}

// Classes is keyed by CharacterType. LoadCatalog replaces entries from YAML.
var Classes map[CharacterType]*CharacterClass

func init() {
	Classes = map[CharacterType]*CharacterClass{
		CharacterTank: {
			Type: CharacterTank, Faction: FactionHeroes,
			Skill1: ActionTankBaseAttack, Skill2: ActionShieldUp,
			BaseHP: 160, Speed: 70, DetectRange: 160,
			CollisionWidth: 20, CollisionHeight: 28, Color: Blue,
		},
		CharacterArcher: {
			Type: CharacterArcher, Faction: FactionHeroes,
			Skill1: ActionArcherBaseAttack, Skill2: ActionArcherVolley,
			BaseHP: 90, Speed: 90, DetectRange: 240,
			CollisionWidth: 16, CollisionHeight: 24, Color: LightGreen,
		},
		CharacterMage: {
			Type: CharacterMage, Faction: FactionHeroes,
			Skill1: ActionMageBaseAttack, Skill2: ActionMageFireball,
			BaseHP: 80, Speed: 80, DetectRange: 220,
			CollisionWidth: 16, CollisionHeight: 24, Color: LightBlue,
		},
		CharacterRogue: {
			Type: CharacterRogue, Faction: FactionHeroes,
			Skill1: ActionRogueBaseAttack, Skill2: ActionRogueStealth,
			BaseHP: 100, Speed: 110, DetectRange: 180,
			CollisionWidth: 16, CollisionHeight: 24, Color: Purple,
		},
		CharacterImp: {
			Type: CharacterImp, Faction: FactionMonsters, IsNPC: true,
			Skill1: ActionImpBaseAttack,
			BaseHP: 40, Speed: 60, DetectRange: 200,
			CollisionWidth: 14, CollisionHeight: 18, Color: LightRed,
		},
		CharacterImpBoss: {
			Type: CharacterImpBoss, Faction: FactionMonsters, IsNPC: true,
			Skill1: ActionImpBossBaseAttack, Skill2: ActionImpBossSecondSwing, Skill3: ActionImpBossTrample,
			BaseHP: 400, Speed: 50, DetectRange: 320,
			CollisionWidth: 32, CollisionHeight: 40, Color: Magenta,
		},
	}
}
