package filter

// State is the free-text search plus per-field constraints driving a filtered view.
type State struct {
	Search      string                `json:"search"`
	Constraints map[string]Constraint `json:"constraints,omitempty"`
}

// With returns a copy of s with field constrained by c.
func (s State) With(field string, c Constraint) State {
	out := State{Search: s.Search, Constraints: make(map[string]Constraint, len(s.Constraints)+1)}
	for k, v := range s.Constraints {
		out.Constraints[k] = v
	}
	out.Constraints[field] = c
	return out
}

// IsUnconstrained reports whether s matches every record.
func (s State) IsUnconstrained() bool {
	if s.Search != "" {
		return false
	}
	for _, c := range s.Constraints {
		if !c.IsUnconstrained() {
			return false
		}
	}
	return true
}
