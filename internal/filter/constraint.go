package filter

import (
	"encoding/json"
	"fmt"
)

type constraintKind int

const (
	kindUnconstrained constraintKind = iota
	kindEqualTo
	kindRange
)

// Constraint is the selection on a single filter field. The zero value is
// Unconstrained, so a missing entry in State.Constraints imposes nothing.
type Constraint struct {
	kind  constraintKind
	value string
	min   *float64
	max   *float64
}

// Unconstrained matches every value.
func Unconstrained() Constraint {
	return Constraint{}
}

// EqualTo selects records whose field satisfies the field's comparison mode
// against value.
func EqualTo(value string) Constraint {
	return Constraint{kind: kindEqualTo, value: value}
}

// Range selects records whose numeric field lies within [lo, hi]. Either
// bound may be nil. A range with no bounds is Unconstrained.
func Range(lo, hi *float64) Constraint {
	if lo == nil && hi == nil {
		return Unconstrained()
	}
	return Constraint{kind: kindRange, min: lo, max: hi}
}

// IsUnconstrained reports whether the constraint imposes nothing.
func (c Constraint) IsUnconstrained() bool {
	return c.kind == kindUnconstrained
}

// Value returns the EqualTo value.
func (c Constraint) Value() (string, bool) {
	return c.value, c.kind == kindEqualTo
}

// Bounds returns the Range bounds.
func (c Constraint) Bounds() (lo, hi *float64, ok bool) {
	return c.min, c.max, c.kind == kindRange
}

func (c Constraint) String() string {
	switch c.kind {
	case kindEqualTo:
		return fmt.Sprintf("= %q", c.value)
	case kindRange:
		return fmt.Sprintf("in [%s, %s]", boundString(c.min), boundString(c.max))
	}
	return "*"
}

func boundString(b *float64) string {
	if b == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *b)
}

// constraintJSON is the stored form of a constraint, used by saved presets.
type constraintJSON struct {
	Kind  string   `json:"kind"`
	Value string   `json:"value,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

func (c Constraint) MarshalJSON() ([]byte, error) {
	out := constraintJSON{Kind: "unconstrained"}
	switch c.kind {
	case kindEqualTo:
		out = constraintJSON{Kind: "equal_to", Value: c.value}
	case kindRange:
		out = constraintJSON{Kind: "range", Min: c.min, Max: c.max}
	}
	return json.Marshal(out)
}

func (c *Constraint) UnmarshalJSON(data []byte) error {
	var in constraintJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	switch in.Kind {
	case "", "unconstrained":
		*c = Unconstrained()
	case "equal_to":
		*c = EqualTo(in.Value)
	case "range":
		*c = Range(in.Min, in.Max)
	default:
		return fmt.Errorf("unknown constraint kind %q", in.Kind)
	}
	return nil
}
