package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// ID is an opaque identifier issued by the clinic API. The clinic API is free
// to use JSON numbers or JSON strings; an ID remembers which one it was
// given and encodes back the same way.
type ID struct {
	value   string
	numeric bool
}

func IntID(v int64) ID {
	return ID{value: strconv.FormatInt(v, 10), numeric: true}
}

func StringID(v string) ID {
	return ID{value: v}
}

// ParseID builds an ID from user input such as a URL parameter or a CLI
// argument. Canonical integer literals become numeric IDs, anything else a
// string ID.
func ParseID(raw string) ID {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil && strconv.FormatInt(v, 10) == raw {
		return IntID(v)
	}
	return StringID(raw)
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

func (id ID) IsNumeric() bool {
	return id.numeric
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("models: empty identifier")
	}

	switch data[0] {
	case '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*id = StringID(value)
		return nil
	case 'n':
		if string(data) == "null" {
			*id = ID{}
			return nil
		}
	default:
		var number json.Number
		if err := json.Unmarshal(data, &number); err == nil {
			*id = ID{value: number.String(), numeric: true}
			return nil
		}
	}
	return fmt.Errorf("models: identifier must be a JSON string or number, got %s", data)
}
