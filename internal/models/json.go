package models

import (
	"gorm.io/datatypes"
)

// PropertyMap is the JSON property bag stored with entities, relationships,
// and classifications. datatypes.JSONMap picks the right column type per
// dialect (JSON on MySQL, JSONB on Postgres, TEXT elsewhere).
type PropertyMap = datatypes.JSONMap

// GetString returns the named property as a string, or "" when absent or of
// another type.
func GetString(p PropertyMap, name string) string {
	if v, ok := p[name].(string); ok {
		return v
	}
	return ""
}

// GetBool returns the named property as a bool, false when absent.
func GetBool(p PropertyMap, name string) bool {
	if v, ok := p[name].(bool); ok {
		return v
	}
	return false
}

// GetInt returns the named property as an int, 0 when absent. JSON decoding
// yields float64 for numbers, so both forms are accepted.
func GetInt(p PropertyMap, name string) int {
	switch v := p[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// GetStringSlice returns the named property as a []string. JSON decoding
// yields []interface{}, so both forms are accepted.
func GetStringSlice(p PropertyMap, name string) []string {
	switch v := p[name].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// GetStringMap returns the named property as a map[string]string.
func GetStringMap(p PropertyMap, name string) map[string]string {
	raw, ok := p[name].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, item := range raw {
		if s, ok := item.(string); ok {
			out[k] = s
		}
	}
	return out
}
