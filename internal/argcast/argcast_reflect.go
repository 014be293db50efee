//go:build !wasm

package argcast

import (
	"fmt"
	"reflect"
)

// ToInt64Fallback handles named integer/float types (type MyInt int)
// that don't match the concrete-type switch in ToInt64E, using reflect
// to read the underlying kind. Not available on the wasm build; see
// argcast_wasm.go.
func ToInt64Fallback(i any) (int64, error) {
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	}
	return 0, fmt.Errorf("argcast: unable to cast %#v of type %T to an integer", i, i)
}

func ToUint64Fallback(i any) (uint64, error) {
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedToUnsigned(v.Int())
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f < 0 {
			return 0, fmt.Errorf("argcast: negative value for an unsigned conversion")
		}
		return uint64(f), nil
	}
	return 0, fmt.Errorf("argcast: unable to cast %#v of type %T to an unsigned integer", i, i)
}

func ToFloat64Fallback(i any) (float64, error) {
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), nil
	}
	return 0, fmt.Errorf("argcast: unable to cast %#v of type %T to a float", i, i)
}

func ToStringFallback(i any) (string, bool) {
	v := reflect.ValueOf(i)
	if v.Kind() == reflect.String {
		return v.String(), true
	}
	return "", false
}
