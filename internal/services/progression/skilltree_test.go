package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/storyforge/internal/entities"
	apperr "github.com/KirkDiggler/storyforge/internal/errors"
	"github.com/KirkDiggler/storyforge/internal/services/progression"
	"github.com/KirkDiggler/storyforge/internal/testutils"
)

func TestNodeUnlocked(t *testing.T) {
	svc := newService()
	tree := testutils.NewTestSkillTree()

	c := testutils.NewTestCharacter("c1")
	c.Level = 1

	unlocked, reason := svc.NodeUnlocked(tree.Node("node-1"), nil, c)
	assert.True(t, unlocked)
	assert.Equal(t, progression.SkipNone, reason)

	// Tier 2 requires level 2 and the prerequisite.
	unlocked, reason = svc.NodeUnlocked(tree.Node("node-2"), nil, c)
	assert.False(t, unlocked)
	assert.Equal(t, progression.SkipLevelTooLow, reason)

	c.Level = 2
	unlocked, reason = svc.NodeUnlocked(tree.Node("node-2"), nil, c)
	assert.False(t, unlocked)
	assert.Equal(t, progression.SkipMissingPrerequisite, reason)

	unlocked, reason = svc.NodeUnlocked(tree.Node("node-2"), []string{"node-1"}, c)
	assert.True(t, unlocked)
	assert.Equal(t, progression.SkipNone, reason)
}

func TestNodeUnlocked_MalformedNode(t *testing.T) {
	svc := newService()
	c := testutils.NewTestCharacter("c1")

	// Externally authored data can be broken; that is a skip, not a
	// failure.
	unlocked, reason := svc.NodeUnlocked(&entities.SkillTreeNode{Name: "no id", Tier: 1}, nil, c)
	assert.False(t, unlocked)
	assert.Equal(t, progression.SkipMalformed, reason)

	unlocked, reason = svc.NodeUnlocked(&entities.SkillTreeNode{ID: "bad-tier", Tier: 0}, nil, c)
	assert.False(t, unlocked)
	assert.Equal(t, progression.SkipMalformed, reason)

	unlocked, reason = svc.NodeUnlocked(nil, nil, c)
	assert.False(t, unlocked)
	assert.Equal(t, progression.SkipMalformed, reason)
}

func TestCanPurchaseNode(t *testing.T) {
	svc := newService()
	tree := testutils.NewTestSkillTree()
	c := testutils.NewTestCharacter("c1")

	node := tree.Node("node-1")

	assert.True(t, svc.CanPurchaseNode(node, nil, 1, c))
	assert.False(t, svc.CanPurchaseNode(node, nil, 0, c), "insufficient points")
	assert.False(t, svc.CanPurchaseNode(node, []string{"node-1"}, 5, c), "already purchased")
}

func TestPurchaseNode(t *testing.T) {
	svc := newService()
	tree := testutils.NewTestSkillTree()

	c := testutils.NewTestCharacter("c1")
	c.ProgressionPoints.Skill = 3

	updated, err := svc.PurchaseNode(c, "node-1", tree)
	require.NoError(t, err)

	assert.Contains(t, updated.PurchasedSkillNodes, "node-1")
	assert.Equal(t, 2, updated.ProgressionPoints.Skill, "deducts exactly the node cost")

	// Input untouched.
	assert.NotContains(t, c.PurchasedSkillNodes, "node-1")
	assert.Equal(t, 3, c.ProgressionPoints.Skill)
}

func TestPurchaseNode_Failures(t *testing.T) {
	svc := newService()
	tree := testutils.NewTestSkillTree()

	c := testutils.NewTestCharacter("c1")
	c.Level = 2
	c.ProgressionPoints.Skill = 10

	_, err := svc.PurchaseNode(c, "missing", tree)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNodeNotFound))

	// Tier-2 node without its prerequisite purchased.
	_, err = svc.PurchaseNode(c, "node-2", tree)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodePurchaseNotAllowed))

	// Already purchased.
	c.PurchasedSkillNodes = []string{"node-1"}
	_, err = svc.PurchaseNode(c, "node-1", tree)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodePurchaseNotAllowed))

	// Insufficient points.
	c.ProgressionPoints.Skill = 1
	_, err = svc.PurchaseNode(c, "node-2", tree)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodePurchaseNotAllowed))
}

func TestPurchaseNode_PrerequisiteChain(t *testing.T) {
	svc := newService()
	tree := testutils.NewTestSkillTree()

	c := testutils.NewTestCharacter("c1")
	c.Level = 2
	c.ProgressionPoints.Skill = 5

	first, err := svc.PurchaseNode(c, "node-1", tree)
	require.NoError(t, err)

	second, err := svc.PurchaseNode(first, "node-2", tree)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"node-1", "node-2"}, second.PurchasedSkillNodes)
	assert.Equal(t, 2, second.ProgressionPoints.Skill)
}
