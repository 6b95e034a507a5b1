package progression

//go:generate mockgen -destination=mock/mock_service.go -package=mockprogression -source=service.go

import (
	"github.com/KirkDiggler/storyforge/internal/entities"
)

// Service defines the character progression engine. Every method is a
// pure state transformer: inputs are never mutated, updated copies are
// returned.
type Service interface {
	// XPToNextLevel returns the experience required to advance past the
	// given level
	XPToNextLevel(level int) (int, error)

	// TotalXPForLevel returns the cumulative experience required to
	// reach the given level from level 1
	TotalXPForLevel(level int) (int, error)

	// CheckLevelUp reports whether the character has banked enough
	// experience for the next level
	CheckLevelUp(character *entities.CharacterProfile) bool

	// PointsForLevel returns the progression point rewards granted on
	// reaching the given level
	PointsForLevel(level int) entities.ProgressionPoints

	// ProcessLevelUp applies every pending level-up in one call,
	// carrying excess experience forward exactly
	ProcessLevelUp(character *entities.CharacterProfile) (*LevelUpResult, error)

	// AllocateAttributePoint adds allocated points to one attribute's
	// progression delta. Point pool deduction is the caller's concern.
	AllocateAttributePoint(progression entities.AttributeProgression, attr entities.Attribute, points int) (entities.AttributeProgression, error)

	// CalculateDerivedStats recomputes every derived stat from base
	// attributes plus progression deltas
	CalculateDerivedStats(character *entities.CharacterProfile) entities.DerivedStats

	// ApplyDerivedStats recomputes derived stats onto a copy of the
	// character and re-clamps vitals
	ApplyDerivedStats(character *entities.CharacterProfile) *entities.CharacterProfile

	// NodeUnlocked reports whether a skill node is visible for purchase,
	// with a tagged reason when it is not
	NodeUnlocked(node *entities.SkillTreeNode, purchased []string, character *entities.CharacterProfile) (bool, SkipReason)

	// CanPurchaseNode reports whether a purchase would succeed
	CanPurchaseNode(node *entities.SkillTreeNode, purchased []string, availablePoints int, character *entities.CharacterProfile) bool

	// PurchaseNode buys a skill node, appending it and deducting its
	// cost atomically
	PurchaseNode(character *entities.CharacterProfile, nodeID string, tree *entities.SkillTree) (*entities.CharacterProfile, error)

	// AvailableSpecializations filters a catalog down to the entries
	// the character could activate, reporting why each other entry was
	// excluded
	AvailableSpecializations(character *entities.CharacterProfile, all []*entities.Specialization) ([]*entities.Specialization, []SkippedEntry)

	// ActivateSpecialization activates a specialization, spending one
	// specialization point
	ActivateSpecialization(character *entities.CharacterProfile, specializationID string, all []*entities.Specialization) (*entities.CharacterProfile, error)
}

// LevelUpResult summarizes a ProcessLevelUp call
type LevelUpResult struct {
	// Character is the updated profile
	Character *entities.CharacterProfile

	// LevelsGained is how many levels were crossed in this call
	LevelsGained int

	// PointsAwarded accumulates the rewards from every level crossed
	PointsAwarded entities.ProgressionPoints

	// MilestoneLevels lists the crossed levels divisible by 10
	MilestoneLevels []int
}

// SkipReason tags why reference data was excluded rather than used.
// Malformed entries are skipped and logged, never fatal.
type SkipReason string

const (
	SkipNone                SkipReason = ""
	SkipMalformed           SkipReason = "malformed"
	SkipLevelTooLow         SkipReason = "level_too_low"
	SkipMissingPrerequisite SkipReason = "missing_prerequisite"
	SkipAlreadyActive       SkipReason = "already_active"
	SkipExclusiveConflict   SkipReason = "exclusive_conflict"
)

// SkippedEntry records one excluded catalog entry and why
type SkippedEntry struct {
	ID     string
	Reason SkipReason
}

type service struct{}

// ServiceConfig holds configuration for the service
type ServiceConfig struct{}

// NewService creates a new progression service
func NewService(cfg *ServiceConfig) Service {
	return &service{}
}
