package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts loosely-typed decoded JSON values to a string. Numeric
// values format without a trailing ".0" so capacities like 128 and "128"
// map to the same label.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToFloat converts loosely-typed decoded JSON values to a float64. String
// values are parsed leniently (surrounding whitespace trimmed); anything
// unparseable yields 0.
func ToFloat(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
		return f
	default:
		return 0
	}
}
