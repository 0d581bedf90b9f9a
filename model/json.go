package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is an open key/value payload stored in a MySQL JSON column.
type JSONMap map[string]interface{}

// Value ...
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan ...
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	data, err := jsonColumnBytes(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, m)
}

// JSONStrings is a list of strings stored in a MySQL JSON column.
type JSONStrings []string

// Value ...
func (s JSONStrings) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan ...
func (s *JSONStrings) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}
	data, err := jsonColumnBytes(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, s)
}

// Contains ...
func (s JSONStrings) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

func jsonColumnBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", src)
	}
}
