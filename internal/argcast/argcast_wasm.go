//go:build wasm

package argcast

import "fmt"

// The wasm build drops reflect entirely (binary size, not correctness)
// so named types outside the concrete-type switch in ToInt64E/ToUint64E/
// ToFloat64E/ToString simply fail to coerce instead of falling back to
// a kind-based read.

func ToInt64Fallback(i any) (int64, error) {
	return 0, fmt.Errorf("argcast: unable to cast %#v of type %T to an integer", i, i)
}

func ToUint64Fallback(i any) (uint64, error) {
	return 0, fmt.Errorf("argcast: unable to cast %#v of type %T to an unsigned integer", i, i)
}

func ToFloat64Fallback(i any) (float64, error) {
	return 0, fmt.Errorf("argcast: unable to cast %#v of type %T to a float", i, i)
}

func ToStringFallback(i any) (string, bool) {
	return "", false
}
