package progression

import (
	"log"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
)

// NodeUnlocked reports whether a node is visible for purchase. Skill
// trees are externally authored, so a structurally invalid node is
// treated as locked and logged rather than raised.
func (s *service) NodeUnlocked(node *entities.SkillTreeNode, purchased []string, character *entities.CharacterProfile) (bool, SkipReason) {
	if !node.Valid() {
		id := ""
		if node != nil {
			id = node.ID
		}
		log.Printf("WARN: skipping malformed skill node %q (missing id or tier < 1)", id)
		return false, SkipMalformed
	}
	if character == nil || character.Level < node.Tier {
		return false, SkipLevelTooLow
	}

	for _, prereq := range node.Prerequisites {
		if !containsID(purchased, prereq) {
			return false, SkipMissingPrerequisite
		}
	}

	return true, SkipNone
}

// CanPurchaseNode reports whether a purchase would succeed: not already
// owned, unlocked, and affordable.
func (s *service) CanPurchaseNode(node *entities.SkillTreeNode, purchased []string, availablePoints int, character *entities.CharacterProfile) bool {
	if !node.Valid() {
		return false
	}
	if containsID(purchased, node.ID) {
		return false
	}
	if unlocked, _ := s.NodeUnlocked(node, purchased, character); !unlocked {
		return false
	}
	return availablePoints >= node.Cost
}

// PurchaseNode buys a node from the tree. The purchase is atomic: the
// node id is appended and the skill pool deducted together, or nothing
// changes.
func (s *service) PurchaseNode(character *entities.CharacterProfile, nodeID string, tree *entities.SkillTree) (*entities.CharacterProfile, error) {
	if character == nil {
		return nil, apperr.InvalidArgument("character cannot be nil")
	}

	node := tree.Node(nodeID)
	if node == nil {
		return nil, apperr.NodeNotFoundf("skill node %q not found in tree", nodeID).
			WithMeta("node_id", nodeID)
	}

	if !s.CanPurchaseNode(node, character.PurchasedSkillNodes, character.ProgressionPoints.Skill, character) {
		return nil, apperr.PurchaseNotAllowedf("skill node %q cannot be purchased", nodeID).
			WithMeta("node_id", nodeID)
	}

	out := entities.NormalizeCharacter(character.Clone())
	out.PurchasedSkillNodes = append(out.PurchasedSkillNodes, node.ID)
	out.ProgressionPoints.Skill -= node.Cost
	return out, nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
