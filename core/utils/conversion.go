package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToInt converts a decoded JSON value, database value or user input to an
// int. It reports false for fractional, non-numeric or out of range values.
func ToInt(val any) (int, bool) {
	var n int64
	switch v := val.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case int32:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		n = int64(v)
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		n = int64(v)
	case float32:
		return ToInt(float64(v))
	case json.Number:
		return ToInt(string(v))
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		n = i
	case []byte:
		return ToInt(string(v))
	default:
		return 0, false
	}

	if n > math.MaxInt || n < math.MinInt {
		return 0, false
	}
	return int(n), true
}

// ToPositiveInt is ToInt restricted to values greater than zero.
func ToPositiveInt(val any) (int, bool) {
	n, ok := ToInt(val)
	if !ok || n <= 0 {
		return 0, false
	}
	return n, true
}

// ToString returns the value when it is textual.
func ToString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}
