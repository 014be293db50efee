package nanofmt

import "github.com/tinywasm/nanofmt/internal/argcast"

// boundValue is the tagged union one positional slot resolves to. Only
// the field matching c.family() is meaningful; the others are left
// zero.
type boundValue struct {
	c    conv
	ival int64
	uval uint64
	fval float64
	sval string
	raw  any // convWriteback: the destination pointer, untyped until render.go writes back
}

// valueVector holds one boundValue per slot, 1-based like typeVector.
type valueVector struct {
	slots [maxSlots + 1]boundValue
}

func (vv *valueVector) get(order int) boundValue {
	return vv.slots[order]
}

// bindArgs pulls usedMax values out of args, one per slot of tv, in
// order. An unbound slot (see argType.unbound: never claimed by any
// directive) within 1..usedMax is a gap: the caller asked for a
// positional argument that nothing in the format ever described, so
// there is no descriptor telling the binder what to pull.
//
// h/hh/hh-tagged integer conversions still pull a full int64/uint64;
// the narrowing promotion they describe only matters for validating
// storage-size compatibility in the inferencer, not for the pulled
// value's own width. L on a float conversion and the long-double/float64
// writeback carve-out are both just float64 in this port: Go has no
// wider floating type to down-cast from.
func bindArgs(tv *typeVector, usedMax int, args []any) (*valueVector, error) {
	vv := &valueVector{}
	argIdx := 0
	next := func() any {
		if argIdx >= len(args) {
			return nil
		}
		v := args[argIdx]
		argIdx++
		return v
	}

	for order := 1; order <= usedMax; order++ {
		at := tv.get(order)
		if at.unbound() {
			return nil, vectorGapError(order)
		}
		a := next()
		bv := boundValue{c: at.c}
		var err error
		switch at.c.family() {
		case famInt:
			if at.c == convSignedInt {
				bv.ival, err = argcast.ToInt64E(a)
			} else {
				bv.uval, err = argcast.ToUint64E(a)
			}
		case famFloat:
			bv.fval, err = argcast.ToFloat64E(a)
		case famString:
			bv.sval = argcast.ToString(a)
		case famChar:
			var n int64
			n, err = argcast.ToInt64E(a)
			bv.ival = n
		case famPointer:
			bv.uval, err = pointerValue(a)
		case famWriteback:
			bv.raw = a
		}
		if err != nil {
			return nil, typeConflictError(order)
		}
		vv.slots[order] = bv
	}
	return vv, nil
}
