package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameData is a catalog plus the character classes that reference it.
type GameData struct {
	Actions *ActionCatalog
	Classes map[CharacterType]*CharacterClass
}

// DefaultGameData returns the built-in data.
func DefaultGameData() *GameData {
	return &GameData{Actions: Actions, Classes: Classes}
}

// Validate checks that every configured skill exists in the catalog.
func (g *GameData) Validate() error {
	for t := CharacterType(0); t < CharacterCount; t++ {
		class, ok := g.Classes[t]
		if !ok {
			continue
		}
		for _, skill := range []ActionType{class.Skill1, class.Skill2, class.Skill3} {
			if skill == ActionNone {
				continue
			}
			if _, ok := g.Actions.Get(skill); !ok {
				return fmt.Errorf("class %s skill %s: %w", t, skill, ErrUnknownAction)
			}
		}
		if class.Skill1 == ActionNone {
			return fmt.Errorf("class %s has no base attack", t)
		}
	}
	return nil
}

// Apply makes g the live game data. Class data is copied in place so
// characters holding a class pointer see the new values.
func (g *GameData) Apply() {
	Actions = g.Actions
	for t, c := range g.Classes {
		if live, ok := Classes[t]; ok {
			*live = *c
			continue
		}
		copied := *c
		Classes[t] = &copied
	}
}

// --- YAML loading ---

type actionEntry struct {
	Type            string   `yaml:"type"`
	Name            string   `yaml:"name"`
	Logic           string   `yaml:"logic"`
	Range           float64  `yaml:"range"`
	Amount          float64  `yaml:"amount"`
	ExecTime        float64  `yaml:"exec_time"`
	Duration        float64  `yaml:"duration"`
	Anim            string   `yaml:"anim"`
	Anim2           string   `yaml:"anim2"`
	ReactAnim       string   `yaml:"react_anim"`
	Spawns          []string `yaml:"spawns"`
	ProjectileSpeed float64  `yaml:"projectile_speed"`
}

type classEntry struct {
	Type        string   `yaml:"type"`
	Skill1      string   `yaml:"skill1"`
	Skill2      string   `yaml:"skill2"`
	Skill3      string   `yaml:"skill3"`
	BaseHP      *int     `yaml:"base_hp"`
	Speed       *float64 `yaml:"speed"`
	DetectRange *float64 `yaml:"detect_range"`
}

type gameDataFile struct {
	Actions []actionEntry `yaml:"actions"`
	Classes []classEntry  `yaml:"classes"`
}

// LoadGameData reads a YAML catalog file. Classes not mentioned in the file
// keep their built-in definition.
func LoadGameData(path string) (*GameData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game data: %w", err)
	}
	return ParseGameData(raw)
}

// ParseGameData decodes and validates YAML game data.
func ParseGameData(raw []byte) (*GameData, error) {
	var f gameDataFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse game data yaml: %w", err)
	}

	descs := make([]ActionDescription, 0, len(f.Actions))
	for i := range f.Actions {
		e := &f.Actions[i]
		t, err := ParseActionType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		logic, err := ParseActionLogic(e.Logic)
		if err != nil {
			return nil, fmt.Errorf("actions[%d] %s: %w", i, e.Type, err)
		}
		descs = append(descs, ActionDescription{
			Type:            t,
			Name:            e.Name,
			Logic:           logic,
			Range:           e.Range,
			Amount:          e.Amount,
			ExecTimeSeconds: e.ExecTime,
			DurationSeconds: e.Duration,
			Anim:            e.Anim,
			Anim2:           e.Anim2,
			ReactAnim:       e.ReactAnim,
			Spawns:          e.Spawns,
			ProjectileSpeed: e.ProjectileSpeed,
		})
	}

	data := &GameData{
		Actions: NewActionCatalog(descs...),
		Classes: make(map[CharacterType]*CharacterClass, len(Classes)),
	}
	for t, c := range Classes {
		copied := *c
		data.Classes[t] = &copied
	}

	for i := range f.Classes {
		e := &f.Classes[i]
		t, err := ParseCharacterType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("classes[%d]: %w", i, err)
		}
		class, ok := data.Classes[t]
		if !ok {
			return nil, fmt.Errorf("classes[%d]: no built-in class %s", i, t)
		}
		if class.Skill1, err = parseSkill(e.Skill1, class.Skill1); err != nil {
			return nil, fmt.Errorf("classes[%d] skill1: %w", i, err)
		}
		if class.Skill2, err = parseSkill(e.Skill2, class.Skill2); err != nil {
			return nil, fmt.Errorf("classes[%d] skill2: %w", i, err)
		}
		if class.Skill3, err = parseSkill(e.Skill3, class.Skill3); err != nil {
			return nil, fmt.Errorf("classes[%d] skill3: %w", i, err)
		}
		if e.BaseHP != nil {
			class.BaseHP = *e.BaseHP
		}
		if e.Speed != nil {
			class.Speed = *e.Speed
		}
		if e.DetectRange != nil {
			class.DetectRange = *e.DetectRange
		}
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}
	return data, nil
}

// parseSkill keeps the current value when name is empty.
func parseSkill(name string, current ActionType) (ActionType, error) {
	if name == "" {
		return current, nil
	}
	return ParseActionType(name)
}
