// Package outputs loads a Terraform outputs document (terraform output
// -json) and exposes typed, default-substituting accessors over it.
package outputs

import (
	"encoding/json"
	"fmt"
	"os"

	"tfinv/pkg/errors"
	"tfinv/pkg/logger"
)

// Value is the wrapper object Terraform emits per output.
type Value struct {
	Value interface{} `json:"value"`
}

// Outputs maps output names to their wrapped values. Read-only after
// Load; absent keys mean "not provisioned", never an error.
type Outputs map[string]Value

// Load reads and decodes a Terraform outputs JSON file. Failures are
// distinguishable via errors.KindNotFound and errors.KindMalformedInput;
// both are terminal for the caller.
func Load(path string) (Outputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewNotFound(path, err)
	}

	var out Outputs
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.NewMalformedInput(path, err)
	}

	logger.Infof("Loaded Terraform outputs from %s", path)
	return out, nil
}

// String returns the output's string value, or def when the key is
// absent or not a string.
func (o Outputs) String(key, def string) string {
	if v, ok := o[key]; ok {
		if s, ok := v.Value.(string); ok {
			return s
		}
	}
	return def
}

// StringList returns the output's list value with every element
// rendered as a string. Absent or non-list outputs yield nil.
func (o Outputs) StringList(key string) []string {
	v, ok := o[key]
	if !ok {
		return nil
	}
	raw, ok := v.Value.([]interface{})
	if !ok {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			list = append(list, s)
		} else {
			list = append(list, fmt.Sprint(item))
		}
	}
	return list
}

// Map returns the output's object value, or nil when absent or not an
// object.
func (o Outputs) Map(key string) map[string]interface{} {
	if v, ok := o[key]; ok {
		if m, ok := v.Value.(map[string]interface{}); ok {
			return m
		}
	}
	return nil
}

// MapString returns a string field of an object-valued output, or def
// when the output or the field is missing.
func (o Outputs) MapString(key, field, def string) string {
	if m := o.Map(key); m != nil {
		if s, ok := m[field].(string); ok {
			return s
		}
	}
	return def
}

// At returns list[i], or the empty string past the end. Shorter
// companion lists pad with empty values rather than failing; entries
// beyond the driving list's length are never requested and so are
// dropped.
func At(list []string, i int) string {
	if i >= 0 && i < len(list) {
		return list[i]
	}
	return ""
}
