package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shape classifies the top-level JSON of a collection response.
type Shape int

const (
	// ShapeUnknown is anything the collection decoder does not accept.
	ShapeUnknown Shape = iota

	// ShapeArray is a bare JSON array.
	ShapeArray

	// ShapeIndex is an object wrapping the array under "index".
	ShapeIndex

	// ShapeSingleRelation is one relation object carrying both "id" and
	// "datesLocations".
	ShapeSingleRelation
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeIndex:
		return "index"
	case ShapeSingleRelation:
		return "single-relation"
	default:
		return "unknown"
	}
}

// MalformedResponseError reports a body that does not match any accepted
// collection shape, or an item that does not decode.
type MalformedResponseError struct {
	// Found describes what was received ("object", "string", "invalid json").
	Found string

	// Err is the underlying decode error, if any.
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response: unexpected %s: %v", e.Found, e.Err)
	}
	return fmt.Sprintf("malformed response: unexpected %s", e.Found)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// ClassifyCollection decodes a collection body into its items.
//
// Accepted shapes are a bare array, an object with an array-valued "index"
// property, and a single relation object (wrapped into one item). Any
// other body yields ShapeUnknown and a *MalformedResponseError.
func ClassifyCollection(body []byte) (Shape, []json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ShapeUnknown, nil, &MalformedResponseError{Found: "empty body"}
	}

	switch trimmed[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return ShapeUnknown, nil, &MalformedResponseError{Found: "invalid json", Err: err}
		}
		if items == nil {
			items = []json.RawMessage{}
		}
		return ShapeArray, items, nil

	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &fields); err != nil {
			return ShapeUnknown, nil, &MalformedResponseError{Found: "invalid json", Err: err}
		}
		if index, ok := fields["index"]; ok && isArray(index) {
			var items []json.RawMessage
			if err := json.Unmarshal(index, &items); err != nil {
				return ShapeUnknown, nil, &MalformedResponseError{Found: "invalid index", Err: err}
			}
			if items == nil {
				items = []json.RawMessage{}
			}
			return ShapeIndex, items, nil
		}
		_, hasID := fields["id"]
		_, hasDates := fields["datesLocations"]
		if hasID && hasDates {
			return ShapeSingleRelation, []json.RawMessage{json.RawMessage(trimmed)}, nil
		}
		return ShapeUnknown, nil, &MalformedResponseError{Found: "object"}
	}

	if !json.Valid(trimmed) {
		return ShapeUnknown, nil, &MalformedResponseError{Found: "invalid json"}
	}
	return ShapeUnknown, nil, &MalformedResponseError{Found: jsonKind(trimmed)}
}

// DecodeItems unmarshals every item into T. The first failing item aborts
// with a *MalformedResponseError.
func DecodeItems[T any](items []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(items))
	for i, raw := range items {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, &MalformedResponseError{
				Found: fmt.Sprintf("item %d", i),
				Err:   err,
			}
		}
		out = append(out, v)
	}
	return out, nil
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}

func jsonKind(raw []byte) string {
	switch {
	case raw[0] == '"':
		return "string"
	case raw[0] == 't' || raw[0] == 'f':
		return "boolean"
	case raw[0] == 'n':
		return "null"
	default:
		return "number"
	}
}
