package ir

import (
	"bytes"
	"encoding/json"
)

// Description is the description of a method. A method with both a summary
// and a description carries two literals in that order; one with only one
// of them carries a single literal.
//
// A single-element Description encodes as a bare literal object, anything
// longer as an array.
type Description []Literal[string]

// MarshalJSON implements json.Marshaler.
func (d Description) MarshalJSON() ([]byte, error) {
	if len(d) == 1 {
		return json.Marshal(d[0])
	}
	return json.Marshal([]Literal[string](d))
}

// UnmarshalJSON accepts either encoding produced by MarshalJSON.
func (d *Description) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var one Literal[string]
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*d = Description{one}
		return nil
	}
	var many []Literal[string]
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*d = many
	return nil
}

// Text joins the description values with a blank line.
func (d Description) Text() string {
	var buf bytes.Buffer
	for i, l := range d {
		if i > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(l.Value)
	}
	return buf.String()
}
