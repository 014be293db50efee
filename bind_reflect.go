//go:build !wasm

package nanofmt

import (
	"fmt"
	"reflect"
)

// pointerValue extracts the numeric address %p renders from any pointer,
// unsafe.Pointer, or uintptr argument. The reflect-based path handles
// arbitrary pointer-to-T values; see bind_wasm.go for the no-reflect
// build's narrower equivalent.
func pointerValue(a any) (uint64, error) {
	if a == nil {
		return 0, nil
	}
	if u, ok := a.(uintptr); ok {
		return uint64(u), nil
	}
	v := reflect.ValueOf(a)
	switch v.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
		return uint64(v.Pointer()), nil
	}
	return 0, fmt.Errorf("nanofmt: %#v of type %T is not a pointer", a, a)
}
