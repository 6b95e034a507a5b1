package entities

// SkillTreeNode is one purchasable node in a skill tree. Nodes are
// externally authored reference data and may be malformed; consumers
// must treat a structurally invalid node as locked, not as an error.
type SkillTreeNode struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Tier          int      `json:"tier"`
	Cost          int      `json:"cost"`
	Prerequisites []string `json:"prerequisites"`
}

// Valid reports whether the node is structurally usable
func (n *SkillTreeNode) Valid() bool {
	return n != nil && n.ID != "" && n.Tier >= 1
}

// SkillTree is a directed acyclic graph of skill nodes. Tier-1 nodes
// have no prerequisites; every prerequisite of a higher-tier node must
// be purchased before that node unlocks.
type SkillTree struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	Nodes []*SkillTreeNode `json:"nodes"`
}

// Node returns the node with the given id, or nil if absent
func (t *SkillTree) Node(id string) *SkillTreeNode {
	if t == nil {
		return nil
	}
	for _, n := range t.Nodes {
		if n != nil && n.ID == id {
			return n
		}
	}
	return nil
}
