//go:build wasm

package nanofmt

import (
	"fmt"
	"unsafe"
)

// pointerValue is the reflect-free equivalent of bind_reflect.go's
// version: it only recognizes the concrete pointer-ish shapes a wasm
// build is expected to format, trading generality for a smaller binary.
func pointerValue(a any) (uint64, error) {
	switch v := a.(type) {
	case nil:
		return 0, nil
	case uintptr:
		return uint64(v), nil
	case unsafe.Pointer:
		return uint64(uintptr(v)), nil
	case *int:
		return uint64(uintptr(unsafe.Pointer(v))), nil
	case *byte:
		return uint64(uintptr(unsafe.Pointer(v))), nil
	}
	return 0, fmt.Errorf("nanofmt: %#v of type %T is not a pointer", a, a)
}
