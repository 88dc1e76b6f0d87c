package step

import (
	"encoding/json"
	"math"
)

// JSON has no Infinity; unreached distances travel as null, the same value
// a browser's JSON.stringify produces for them.

// Finite returns a pointer to v, or nil when v is infinite or NaN.
func Finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// orInf dereferences p, mapping nil to +Inf.
func orInf(p *float64) float64 {
	if p == nil {
		return math.Inf(1)
	}
	return *p
}

// orNull maps "" to a nil pointer.
func orNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MarshalJSON adds a stateKind discriminator next to the payload.
func (s Step) MarshalJSON() ([]byte, error) {
	type alias Step
	out := struct {
		alias
		StateKind string `json:"stateKind,omitempty"`
	}{alias: alias(s)}
	if s.State != nil {
		out.StateKind = s.State.StateKind()
	}
	return json.Marshal(out)
}

// MarshalJSON encodes +Inf as null.
func (d Distances) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	out := make(map[string]*float64, len(d))
	for k, v := range d {
		out[k] = Finite(v)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes null as +Inf.
func (d *Distances) UnmarshalJSON(b []byte) error {
	var in map[string]*float64
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if in == nil {
		*d = nil
		return nil
	}
	out := make(Distances, len(in))
	for k, v := range in {
		out[k] = orInf(v)
	}
	*d = out
	return nil
}

// MarshalJSON encodes a missing predecessor as null.
func (p Predecessors) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	out := make(map[string]*string, len(p))
	for k, v := range p {
		out[k] = orNull(v)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes null as "".
func (p *Predecessors) UnmarshalJSON(b []byte) error {
	var in map[string]*string
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if in == nil {
		*p = nil
		return nil
	}
	out := make(Predecessors, len(in))
	for k, v := range in {
		if v != nil {
			out[k] = *v
		} else {
			out[k] = ""
		}
	}
	*p = out
	return nil
}

// MarshalJSON encodes +Inf cells as null.
func (m Matrix) MarshalJSON() ([]byte, error) {
	out := make([][]*float64, len(m))
	for i, row := range m {
		out[i] = make([]*float64, len(row))
		for j, v := range row {
			out[i][j] = Finite(v)
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes null cells as +Inf.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var in [][]*float64
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	out := make(Matrix, len(in))
	for i, row := range in {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = orInf(v)
		}
	}
	*m = out
	return nil
}

// MarshalJSON encodes empty hops as null.
func (m NextMatrix) MarshalJSON() ([]byte, error) {
	out := make([][]*string, len(m))
	for i, row := range m {
		out[i] = make([]*string, len(row))
		for j, v := range row {
			out[i][j] = orNull(v)
		}
	}
	return json.Marshal(out)
}

// MarshalJSON encodes an infinite old distance as null.
func (u PathUpdate) MarshalJSON() ([]byte, error) {
	type alias PathUpdate
	return json.Marshal(struct {
		alias
		OldDistance *float64 `json:"oldDistance"`
		NewDistance *float64 `json:"newDistance"`
	}{
		alias:       alias(u),
		OldDistance: Finite(u.OldDistance),
		NewDistance: Finite(u.NewDistance),
	})
}
