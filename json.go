package deferred

import (
	"encoding/json"
	"errors"
)

var errMissingValueField = errors.New("deferred: missing 'value' field in JSON")

// MarshalJSON implements json.Marshaler.
// An empty cell is marshaled as null, a populated one as {"value": ...}.
func (c Value[T]) MarshalJSON() ([]byte, error) {
	if !c.isSet {
		return []byte("null"), nil
	}

	return json.Marshal(map[string]T{"value": c.value})
}

// UnmarshalJSON implements json.Unmarshaler.
// null is unmarshaled as an empty cell, {"value": ...} as a populated one.
func (c *Value[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		c.isSet = false

		var zero T
		c.value = zero

		return nil
	}

	var wrapper map[string]T
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	value, ok := wrapper["value"]
	if !ok {
		return errMissingValueField
	}

	c.value = value
	c.isSet = true

	return nil
}
