package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts a decoded JSON scalar to int using explicit type switching.
// It accepts integer and float types holding whole numbers, and numeric strings
// or byte slices. Anything else is an error, never a silent zero.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	case nil:
		return 0, fmt.Errorf("value is null")
	default:
		return 0, fmt.Errorf("unsupported value type %T", val)
	}
}

func parseInt(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return i, nil
}

func wholeFloat(f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	return int(f), nil
}
