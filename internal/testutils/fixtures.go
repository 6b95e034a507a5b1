package testutils

import (
	"github.com/KirkDiggler/storyforge/internal/entities"
)

// NewTestCharacter creates a normalized character profile with sane
// mid-game stats for use in tests.
func NewTestCharacter(id string) *entities.CharacterProfile {
	c := &entities.CharacterProfile{
		ID:            id,
		Name:          "Test Hero",
		Class:         "wanderer",
		Level:         1,
		BaseMaxHealth: 50,
		BaseMaxMana:   20,
		BaseAttributes: map[entities.Attribute]int{
			entities.AttributeStrength:     10,
			entities.AttributeDexterity:    10,
			entities.AttributeConstitution: 10,
			entities.AttributeIntelligence: 10,
			entities.AttributeWisdom:       10,
			entities.AttributeCharisma:     10,
		},
		ExperienceToNextLevel: 100,
	}
	entities.NormalizeCharacter(c)
	c.MaxHealth = 70
	c.Health = c.MaxHealth
	c.MaxMana = 35
	c.Mana = c.MaxMana
	return c
}

// NewTestParticipant creates a combat participant of the given type
// with predictable stats.
func NewTestParticipant(id string, ptype entities.ParticipantType) *entities.CombatParticipant {
	return &entities.CombatParticipant{
		ID:              id,
		Name:            id,
		Type:            ptype,
		Health:          100,
		MaxHealth:       100,
		Mana:            50,
		MaxMana:         50,
		Attack:          20,
		Defense:         10,
		Speed:           15,
		Accuracy:        12,
		Evasion:         10,
		CritChance:      10,
		CritMultiplier:  1.5,
		ActionPoints:    3,
		MaxActionPoints: 3,
		StatusEffects:   []*entities.StatusEffect{},
		Skills:          []*entities.CombatSkill{},
		Items:           []*entities.CombatItem{},
	}
}

// NewTestSkillTree creates a small two-tier tree: one free-standing
// tier-1 node and a tier-2 node requiring it.
func NewTestSkillTree() *entities.SkillTree {
	return &entities.SkillTree{
		ID:   "tree-1",
		Name: "Test Tree",
		Nodes: []*entities.SkillTreeNode{
			{ID: "node-1", Name: "First Step", Tier: 1, Cost: 1},
			{ID: "node-2", Name: "Second Step", Tier: 2, Cost: 2, Prerequisites: []string{"node-1"}},
		},
	}
}
