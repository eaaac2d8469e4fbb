package domain

import (
	"encoding/json"
	"strconv"
)

// FlexID tolerates identifiers emitted either as JSON strings or as
// JSON numbers, normalizing both to a string.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler. Numeric-looking IDs round-trip
// as numbers.
func (f FlexID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(f), 10, 64); err == nil {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

// PropositionItem is one legislative proposition as returned by the
// Brado API. Fields are optional on the wire.
type PropositionItem struct {
	ID      FlexID `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Sigla   string `json:"sigla,omitempty"`
}

// PropositionsResponse wraps a propositions listing.
type PropositionsResponse struct {
	Items []PropositionItem `json:"items"`
}
