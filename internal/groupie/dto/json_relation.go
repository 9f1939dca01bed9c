package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/handiism/groupie-tracker/internal/model"
)

// JSONRelation is the wire form of one /api/relation entry.
//
// datesLocations is decoded token by token so that the slug order of the
// document survives into model.Relation.Order.
type JSONRelation struct {
	ID             model.ArtistID
	DatesLocations map[string][]string
	Order          []string
}

// UnmarshalJSON decodes {"id": ..., "datesLocations": {...}}.
//
// A datesLocations value that is not an object (a string, null) decodes to
// an empty mapping. Non-string dates are kept in their textual form.
func (jr *JSONRelation) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             model.ArtistID  `json:"id"`
		DatesLocations json.RawMessage `json:"datesLocations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	dates, order, err := decodeOrderedDates(raw.DatesLocations)
	if err != nil {
		return fmt.Errorf("datesLocations: %w", err)
	}

	jr.ID = raw.ID
	jr.DatesLocations = dates
	jr.Order = order
	return nil
}

// ToRelation converts JSONRelation to a model.Relation.
func (jr *JSONRelation) ToRelation() model.Relation {
	return model.Relation{
		ID:             jr.ID,
		DatesLocations: jr.DatesLocations,
		Order:          jr.Order,
	}
}

// ToRelations converts a decoded slice.
func ToRelations(in []JSONRelation) []model.Relation {
	out := make([]model.Relation, 0, len(in))
	for i := range in {
		out = append(out, in[i].ToRelation())
	}
	return out
}

func decodeOrderedDates(raw json.RawMessage) (map[string][]string, []string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return map[string][]string{}, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}

	out := make(map[string][]string)
	var order []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		slug, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected key %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, nil, err
		}

		if _, dup := out[slug]; !dup {
			order = append(order, slug)
		}
		out[slug] = decodeDateList(value)
	}

	return out, order, nil
}

// decodeDateList accepts an array of strings, a mixed array, or a single
// scalar.
func decodeDateList(raw json.RawMessage) []string {
	var dates []string
	if err := json.Unmarshal(raw, &dates); err == nil {
		return dates
	}

	var mixed []interface{}
	if err := json.Unmarshal(raw, &mixed); err == nil {
		out := make([]string, 0, len(mixed))
		for _, v := range mixed {
			if v == nil {
				continue
			}
			out = append(out, fmt.Sprint(v))
		}
		return out
	}

	var scalar interface{}
	if err := json.Unmarshal(raw, &scalar); err == nil && scalar != nil {
		return []string{fmt.Sprint(scalar)}
	}
	return nil
}
