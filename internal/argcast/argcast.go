// Package argcast coerces the caller's variadic arguments into the
// concrete numeric/string values the rendering driver needs, the same
// way a printf binder promotes char/short/long arguments to their
// natural register width.
package argcast

import (
	"fmt"
	"strconv"
)

// ToInt64E coerces i to int64, covering every built-in integer, float,
// and numeric-string representation. Named types that don't match one
// of these cases fall through to the platform-specific reflect
// fallback in ToInt64Fallback.
func ToInt64E(i any) (int64, error) {
	switch v := i.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return int64(f), nil
		}
		return strconv.ParseInt(v, 0, 64)
	case nil:
		return 0, fmt.Errorf("argcast: nil argument where an integer was required")
	}
	return ToInt64Fallback(i)
}

// ToUint64E mirrors ToInt64E for the unsigned conversions (%u, %o,
// %x/%X, %b/%B). Negative values are rejected rather than silently
// wrapped, matching the signed-to-unsigned boundary a real printf
// binder enforces via the argument's declared type rather than a
// runtime check.
func ToUint64E(i any) (uint64, error) {
	switch v := i.(type) {
	case uint:
		return uint64(v), nil
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case int:
		return signedToUnsigned(int64(v))
	case int64:
		return signedToUnsigned(v)
	case int32:
		return signedToUnsigned(int64(v))
	case int16:
		return signedToUnsigned(int64(v))
	case int8:
		return signedToUnsigned(int64(v))
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("argcast: negative value for an unsigned conversion")
		}
		return uint64(v), nil
	case float32:
		if v < 0 {
			return 0, fmt.Errorf("argcast: negative value for an unsigned conversion")
		}
		return uint64(v), nil
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			if f < 0 {
				return 0, fmt.Errorf("argcast: negative value for an unsigned conversion")
			}
			return uint64(f), nil
		}
		return strconv.ParseUint(v, 0, 64)
	case nil:
		return 0, fmt.Errorf("argcast: nil argument where an unsigned integer was required")
	}
	return ToUint64Fallback(i)
}

func signedToUnsigned(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("argcast: negative value for an unsigned conversion")
	}
	return uint64(v), nil
}

// ToFloat64E coerces i to float64 for the f/F/e/E/g/G/a/A conversions.
func ToFloat64E(i any) (float64, error) {
	switch v := i.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return ToFloat64Fallback(i)
}

// ToString coerces i to a string payload for %s. Unlike the numeric
// coercions this never fails: anything without a direct representation
// falls back to fmt.Sprint, matching %v's own behavior for exotic types.
func ToString(i any) string {
	switch v := i.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case nil:
		return ""
	}
	if s, ok := ToStringFallback(i); ok {
		return s
	}
	return fmt.Sprint(i)
}
