package facets

import (
	"encoding/json"
	"strconv"
	"strings"
)

// decimalBound converts a loosely-typed bound to an invariant decimal string.
// Native numerics are formatted exactly; strings are parsed per the invariant
// flag and normalized. The second return is false when the value cannot be
// represented, which callers treat as "skip the whole rule".
func decimalBound(v any, invariant bool) (json.Number, bool) {
	switch n := v.(type) {
	case int:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int8:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int16:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int32:
		return json.Number(strconv.FormatInt(int64(n), 10)), true
	case int64:
		return json.Number(strconv.FormatInt(n, 10)), true
	case uint:
		return json.Number(strconv.FormatUint(uint64(n), 10)), true
	case uint8:
		return json.Number(strconv.FormatUint(uint64(n), 10)), true
	case uint16:
		return json.Number(strconv.FormatUint(uint64(n), 10)), true
	case uint32:
		return json.Number(strconv.FormatUint(uint64(n), 10)), true
	case uint64:
		return json.Number(strconv.FormatUint(n, 10)), true
	case float32:
		return json.Number(strconv.FormatFloat(float64(n), 'f', -1, 32)), true
	case float64:
		return json.Number(strconv.FormatFloat(n, 'f', -1, 64)), true
	case json.Number:
		return parseDecimal(string(n), true)
	case string:
		return parseDecimal(n, invariant)
	default:
		return "", false
	}
}

// parseDecimal validates and normalizes a decimal string. In lenient mode a
// lone comma is treated as the decimal separator. The digits are kept as-is
// so arbitrary precision survives; no float round-trip happens here.
func parseDecimal(s string, invariant bool) (json.Number, bool) {
	s = strings.TrimSpace(s)
	if !invariant && strings.Count(s, ",") == 1 && !strings.ContainsRune(s, '.') {
		s = strings.Replace(s, ",", ".", 1)
	}
	if s == "" {
		return "", false
	}
	if s[0] == '+' {
		s = s[1:]
	}
	if !validDecimal(s) {
		return "", false
	}
	return json.Number(s), true
}

// validDecimal checks JSON number syntax: optional sign, integer digits,
// optional fraction, optional exponent. Leading zeros are tolerated.
func validDecimal(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return false
	}
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start = i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}
