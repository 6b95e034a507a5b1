package entities

// Specialization is a selectable character build path. Entries come
// from externally authored catalogs and may be malformed.
type Specialization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// UnlockLevel is the minimum character level; zero or negative marks
	// the entry malformed.
	UnlockLevel int `json:"unlock_level"`

	// ExclusiveWith lists specialization ids that cannot be active at
	// the same time as this one. Exclusivity is symmetric: either side
	// listing the other blocks both.
	ExclusiveWith []string `json:"exclusive_with"`
}

// Valid reports whether the catalog entry is structurally usable
func (s *Specialization) Valid() bool {
	return s != nil && s.ID != "" && s.UnlockLevel >= 1
}

// Excludes reports whether this specialization lists the given id as exclusive
func (s *Specialization) Excludes(id string) bool {
	for _, other := range s.ExclusiveWith {
		if other == id {
			return true
		}
	}
	return false
}
