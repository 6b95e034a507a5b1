package progression

import (
	"log"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
)

// AvailableSpecializations filters a catalog down to what the character
// could activate right now. Malformed entries are logged and skipped;
// every exclusion carries a tagged reason so callers can surface it.
func (s *service) AvailableSpecializations(character *entities.CharacterProfile, all []*entities.Specialization) ([]*entities.Specialization, []SkippedEntry) {
	available := []*entities.Specialization{}
	skipped := []SkippedEntry{}

	if character == nil {
		return available, skipped
	}

	for _, spec := range all {
		if !spec.Valid() {
			id := ""
			if spec != nil {
				id = spec.ID
			}
			log.Printf("WARN: skipping malformed specialization %q (missing id or unlock level)", id)
			skipped = append(skipped, SkippedEntry{ID: id, Reason: SkipMalformed})
			continue
		}

		if character.Level < spec.UnlockLevel {
			skipped = append(skipped, SkippedEntry{ID: spec.ID, Reason: SkipLevelTooLow})
			continue
		}

		if character.HasActiveSpecialization(spec.ID) {
			skipped = append(skipped, SkippedEntry{ID: spec.ID, Reason: SkipAlreadyActive})
			continue
		}

		if s.conflictsWithActive(character, spec, all) {
			skipped = append(skipped, SkippedEntry{ID: spec.ID, Reason: SkipExclusiveConflict})
			continue
		}

		available = append(available, spec)
	}

	return available, skipped
}

// conflictsWithActive checks exclusivity symmetrically: a conflict
// exists when the candidate lists an active specialization, or an
// active one lists the candidate.
func (s *service) conflictsWithActive(character *entities.CharacterProfile, candidate *entities.Specialization, all []*entities.Specialization) bool {
	for _, active := range character.ActiveSpecializations {
		if candidate.Excludes(active.SpecializationID) {
			return true
		}
		for _, other := range all {
			if other.Valid() && other.ID == active.SpecializationID && other.Excludes(candidate.ID) {
				return true
			}
		}
	}
	return false
}

// ActivateSpecialization activates a catalog entry, spending exactly
// one specialization point.
func (s *service) ActivateSpecialization(character *entities.CharacterProfile, specializationID string, all []*entities.Specialization) (*entities.CharacterProfile, error) {
	if character == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}

	var target *entities.Specialization
	for _, spec := range all {
		if spec != nil && spec.ID == specializationID {
			target = spec
			break
		}
	}
	if target == nil {
		return nil, apperr.NotFoundf("specialization %q not found", specializationID).
			WithMeta("specialization_id", specializationID)
	}

	available, _ := s.AvailableSpecializations(character, all)
	if !containsSpec(available, specializationID) {
		return nil, apperr.NotAvailablef("specialization %q is not available to this character", specializationID).
			WithMeta("specialization_id", specializationID)
	}

	if character.ProgressionPoints.Specialization < 1 {
		return nil, apperr.InsufficientPointsf("activating %q requires 1 specialization point", specializationID)
	}

	out := entities.NormalizeCharacter(character.Clone())
	out.ActiveSpecializations = append(out.ActiveSpecializations, entities.ActiveSpecialization{
		SpecializationID: target.ID,
		ProgressionLevel: 1,
	})
	out.ProgressionPoints.Specialization--
	return out, nil
}

func containsSpec(specs []*entities.Specialization, id string) bool {
	for _, spec := range specs {
		if spec != nil && spec.ID == id {
			return true
		}
	}
	return false
}
