package nanofmt

// conv identifies a directive's conversion letter.
type conv uint8

const (
	convNone conv = iota
	convPercent
	convChar
	convString
	convSignedInt
	convUnsignedInt
	convOctal
	convHexInt
	convBinary
	convPointer
	convWriteback
	convFloatDec
	convFloatSci
	convFloatShortest
	convFloatHex
)

// family groups conversions that may share a slot when their storage
// sizes agree.
type convFamily uint8

const (
	famNone convFamily = iota
	famInt             // d/i, o, x/X, b/B, u — all read an integer register
	famFloat           // f/F, e/E, g/G, a/A
	famString
	famChar
	famPointer
	famWriteback
)

func (c conv) family() convFamily {
	switch c {
	case convSignedInt, convUnsignedInt, convOctal, convHexInt, convBinary:
		return famInt
	case convFloatDec, convFloatSci, convFloatShortest, convFloatHex:
		return famFloat
	case convString:
		return famString
	case convChar:
		return famChar
	case convPointer:
		return famPointer
	case convWriteback:
		return famWriteback
	default:
		return famNone
	}
}

// lengthMod identifies a directive's length modifier.
type lengthMod uint8

const (
	lenNone lengthMod = iota
	lenH              // h
	lenHH             // hh
	lenL              // l
	lenLL             // ll (gated: large length modifiers)
	lenBigL           // L  (long double / writeback to *float64)
	lenJ              // j  (gated)
	lenZ              // z  (gated)
	lenT              // t  (gated)
)

// storageSize is the argument-storage width a length modifier implies,
// used for the "same storage size" half of compatibility. z/t fold
// signed and unsigned widths into one size; callers must not rely on
// round-tripping signedness through a z/t-tagged slot.
func (l lengthMod) storageSize() int {
	switch l {
	case lenHH:
		return 1
	case lenH:
		return 2
	case lenNone, lenL:
		return 4 // promoted int; long shares int's size in this port
	case lenLL, lenJ, lenZ, lenT:
		return 8
	case lenBigL:
		return 8 // long double / writeback float64
	default:
		return 4
	}
}

// argType is the (conv, length modifier) pair bound to one positional
// slot. The zero value has conv == convNone, meaning "unbound / no claim
// yet"; a slot left at convPercent counts as unbound too, since a literal
// '%%' never claims an argument.
type argType struct {
	c conv
	l lengthMod
}

func (a argType) unbound() bool {
	return a.c == convNone || a.c == convPercent
}

// compatible reports whether two descriptors can share one slot:
// identical descriptors always match; otherwise the conversions must
// share a family and the length modifiers must imply the same storage
// size.
func (a argType) compatible(b argType) bool {
	if a == b {
		return true
	}
	if a.c.family() != b.c.family() || a.c.family() == famNone {
		return false
	}
	return a.l.storageSize() == b.l.storageSize()
}
