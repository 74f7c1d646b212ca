// models/jsonb.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB stores an arbitrary JSON object in a postgres jsonb column.
// Challenge content and attempt solutions are free-form payloads supplied
// by clients, so they stay schemaless at the storage layer.
type JSONB map[string]any

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value any) error {
	if value == nil {
		*j = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONB scan")
	}

	return json.Unmarshal(data, j)
}

func (JSONB) GormDataType() string {
	return "jsonb"
}
