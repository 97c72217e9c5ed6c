package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// fieldSpec describes one writable document field: the store column it maps
// to, an optional fixed value set, and whether the value is stored as a raw
// JSON column.
type fieldSpec struct {
	column string
	enum   []string
	asJSON bool
}

func inEnum(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

func enumError(field string, allowed []string) error {
	return fmt.Errorf("%s must be one of %v", field, allowed)
}

func requiredError(field string) error {
	return fmt.Errorf("%s is required", field)
}

// buildUpdate turns a request body into a partial-update column map. Fields
// outside the schema are silently dropped; identifier and timestamp fields are
// never writable. Enum violations abort the whole update.
func buildUpdate(body map[string]any, fields map[string]fieldSpec) (map[string]any, error) {
	update := make(map[string]any, len(body))
	for name, value := range body {
		spec, ok := fields[name]
		if !ok {
			continue
		}
		if len(spec.enum) > 0 {
			str, ok := value.(string)
			if !ok || !inEnum(str, spec.enum) {
				return nil, enumError(name, spec.enum)
			}
		}
		if spec.asJSON {
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("%s is not valid JSON: %w", name, err)
			}
			update[spec.column] = datatypes.JSON(raw)
			continue
		}
		update[spec.column] = value
	}
	return update, nil
}
