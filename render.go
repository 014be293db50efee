package nanofmt

import "unicode/utf8"

// render walks effective format text (format if supplied, else
// reference) and feeds the result through sink, returning the total
// number of code units the engine attempted to emit. The reference is
// always used to build the type vector: a distinct format is then
// re-validated against it (see inferReference) before anything is
// rendered, so a render call never emits a partial result for a format
// that disagrees with its reference.
func render(cfg Config, reference, format string, sink Sink, args []any) (int, error) {
	tv, usedMax, err := inferReference(reference, format, cfg)
	if err != nil {
		return 0, err
	}
	for order := 1; order <= usedMax; order++ {
		if tv.get(order).unbound() {
			return 0, vectorGapError(order)
		}
	}
	vv, err := bindArgs(tv, usedMax, args)
	if err != nil {
		return 0, err
	}

	cs := getCallState(cfg.ConvBufSize)
	defer putCallState(cs)

	eff := format
	if eff == "" {
		eff = reference
	}

	if !renderWalk(cs, sink, eff, cfg, vv) {
		return 0, transcodeError()
	}
	return cs.emitted, nil
}

func renderWalk(cs *callState, sink Sink, s string, cfg Config, vv *valueVector) bool {
	next := 1
	i := 0
	n := len(s)
	litStart := 0

	for i < n {
		if s[i] != '%' {
			i++
			continue
		}
		if i > litStart {
			if !decodeString(cs, sink, cfg.WideChar, s[litStart:i], -1) {
				return false
			}
		}
		i++
		spec, consumed, ok := parseDirective(s, i, cfg)
		if !ok {
			if !decodeString(cs, sink, cfg.WideChar, "%", -1) {
				return false
			}
			litStart = i
			continue
		}
		i += consumed
		litStart = i

		if spec.c == convPercent {
			if !decodeString(cs, sink, cfg.WideChar, "%", -1) {
				return false
			}
			continue
		}

		width, leftJustify := resolveWidth(spec, vv, &next)
		prec, precOpt := resolvePrec(spec, vv, &next)

		order := spec.order
		if order == 0 {
			order = next
			next++
		}
		bv := vv.get(order)

		if !renderConversion(cs, sink, cfg, spec, bv, width, leftJustify, prec, precOpt) {
			return false
		}
	}
	if n > litStart {
		if !decodeString(cs, sink, cfg.WideChar, s[litStart:], -1) {
			return false
		}
	}
	return true
}

func resolveWidth(spec formatSpec, vv *valueVector, next *int) (width int, leftJustify bool) {
	leftJustify = spec.leftJustified
	if spec.fieldWidthOpt != wpStar {
		return spec.fieldWidth, leftJustify
	}
	order := spec.widthOrder
	if order == 0 {
		order = *next
		*next++
	}
	w := int(int32(vv.get(order).ival))
	if w < 0 {
		return -w, true
	}
	return w, leftJustify
}

func resolvePrec(spec formatSpec, vv *valueVector, next *int) (prec int, precOpt widthPrecKind) {
	if spec.precOpt != wpStar {
		return spec.prec, spec.precOpt
	}
	order := spec.precOrder
	if order == 0 {
		order = *next
		*next++
	}
	p := int(int32(vv.get(order).ival))
	if p < 0 {
		return 0, wpNone
	}
	return p, wpLiteral
}

func renderConversion(cs *callState, sink Sink, cfg Config, spec formatSpec, bv boundValue, width int, leftJustify bool, prec int, precOpt widthPrecKind) bool {
	switch spec.c {
	case convChar:
		return renderChar(cs, sink, cfg, bv, width, leftJustify)
	case convString:
		return renderStringConv(cs, sink, cfg, bv, width, leftJustify, prec, precOpt)
	case convSignedInt, convUnsignedInt, convOctal, convHexInt, convBinary, convPointer:
		return renderInt(cs, sink, cfg, spec, bv, width, leftJustify, prec, precOpt)
	case convWriteback:
		return renderWriteback(bv, cs.emitted)
	case convFloatDec, convFloatSci, convFloatShortest, convFloatHex:
		return renderFloat(cs, sink, cfg, spec, bv, width, leftJustify, prec)
	}
	return true
}

// %c always emits exactly one code unit: the low byte (narrow) or low
// 16 bits (wide) of the bound value, truncating rather than encoding it
// as a codepoint. A field width still pads around that single unit.
func renderChar(cs *callState, sink Sink, cfg Config, bv boundValue, width int, leftJustify bool) bool {
	pad := width - 1
	if pad < 0 {
		pad = 0
	}
	if !leftJustify {
		emitFill(cs, sink, cfg.WideChar, ' ', pad)
	}
	emitTruncated(cs, sink, cfg.WideChar, bv.ival)
	if leftJustify {
		emitFill(cs, sink, cfg.WideChar, ' ', pad)
	}
	return true
}

func renderStringConv(cs *callState, sink Sink, cfg Config, bv boundValue, width int, leftJustify bool, prec int, precOpt widthPrecKind) bool {
	s := bv.sval
	maxRunes := -1
	if precOpt != wpNone {
		maxRunes = prec
	}
	runeCount := 0
	for i := 0; i < len(s); {
		if maxRunes >= 0 && runeCount >= maxRunes {
			break
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		runeCount++
	}
	pad := width - runeCount
	if pad < 0 {
		pad = 0
	}
	if !leftJustify {
		emitFill(cs, sink, cfg.WideChar, ' ', pad)
	}
	if !decodeString(cs, sink, cfg.WideChar, s, maxRunes) {
		return false
	}
	if leftJustify {
		emitFill(cs, sink, cfg.WideChar, ' ', pad)
	}
	return true
}

func renderInt(cs *callState, sink Sink, cfg Config, spec formatSpec, bv boundValue, width int, leftJustify bool, prec int, precOpt widthPrecKind) bool {
	var val uint64
	var signByte byte

	if spec.c == convSignedInt {
		iv := bv.ival
		if iv < 0 {
			val = uint64(-iv)
			signByte = '-'
		} else {
			val = uint64(iv)
			switch spec.prepend {
			case prependPlus:
				signByte = '+'
			case prependSpace:
				signByte = ' '
			}
		}
	} else {
		val = bv.uval
	}

	base := uint64(10)
	switch spec.c {
	case convOctal:
		base = 8
	case convHexInt, convPointer:
		base = 16
	case convBinary:
		base = 2
	}

	// A 64-bit value has up to 64 binary digits, more than the scratch
	// buffer is sized for, so %b/%B digits go into a buffer of their own.
	digits := cs.scratch
	if spec.c == convBinary {
		var binDigits [64]byte
		digits = binDigits[:]
	}
	digLen := 0
	if !(val == 0 && precOpt != wpNone && prec == 0) {
		digLen = utoaRev(digits, val, base, spec.caseAdjust)
		if spec.c == convOctal && spec.altForm && val != 0 && digLen < len(cs.scratch) {
			cs.scratch[digLen] = '0'
			digLen++
		}
	}

	var prefix string
	switch spec.c {
	case convHexInt:
		if spec.altForm && val != 0 {
			if spec.caseAdjust != 0 {
				prefix = "0x"
			} else {
				prefix = "0X"
			}
		}
	case convBinary:
		if spec.altForm && val != 0 {
			if spec.caseAdjust != 0 {
				prefix = "0b"
			} else {
				prefix = "0B"
			}
		}
	case convPointer:
		prefix = "0x"
	}

	padC := byte(' ')
	if spec.leadingZeroPad && width > 0 {
		if !(precOpt != wpNone && prec == 0 && val == 0) {
			padC = '0'
		}
	}

	precPad := 0
	if prec > digLen {
		precPad = prec - digLen
	}

	signLen := 0
	if signByte != 0 {
		signLen = 1
	}
	fieldPad := width - digLen - signLen - len(prefix) - precPad
	if fieldPad < 0 {
		fieldPad = 0
	}

	wide := cfg.WideChar
	if !leftJustify {
		if padC == '0' {
			if signByte != 0 {
				emitASCII(cs, sink, wide, signByte)
			}
			if prefix != "" {
				emitLiteralASCII(cs, sink, wide, prefix)
			}
			emitFill(cs, sink, wide, '0', fieldPad)
		} else {
			emitFill(cs, sink, wide, ' ', fieldPad)
			if prefix != "" {
				emitLiteralASCII(cs, sink, wide, prefix)
			}
			if signByte != 0 {
				emitASCII(cs, sink, wide, signByte)
			}
		}
	} else {
		if prefix != "" {
			emitLiteralASCII(cs, sink, wide, prefix)
		}
		if signByte != 0 {
			emitASCII(cs, sink, wide, signByte)
		}
	}

	emitFill(cs, sink, wide, '0', precPad)
	for k := digLen - 1; k >= 0; k-- {
		emitASCII(cs, sink, wide, digits[k])
	}
	if leftJustify {
		emitFill(cs, sink, wide, ' ', fieldPad)
	}
	return true
}

// renderFloat delegates to floatRev for all four float conversion
// letters. A minimal printf engine in this tradition parses %e/%E,
// %g/%G and %a/%A as valid syntax but renders them exactly like %f: a
// configurable-width true exponential or hex-float renderer is a large
// amount of additional machinery for a format family whose own
// reference implementation doesn't provide it either.
func renderFloat(cs *callState, sink Sink, cfg Config, spec formatSpec, bv boundValue, width int, leftJustify bool, prec int) bool {
	f := bv.fval
	neg := f < 0
	var signByte byte
	if neg {
		signByte = '-'
		f = -f
	} else {
		switch spec.prepend {
		case prependPlus:
			signByte = '+'
		case prependSpace:
			signByte = ' '
		}
	}

	n, special := floatRev(cs.scratch, f, prec, spec.altForm, spec.caseAdjust, cfg.MantissaBits)

	wide := cfg.WideChar
	if special {
		signLen := 0
		if signByte != 0 {
			signLen = 1
		}
		fieldPad := width - n - signLen
		if fieldPad < 0 {
			fieldPad = 0
		}
		if !leftJustify {
			emitFill(cs, sink, wide, ' ', fieldPad)
		}
		if signByte != 0 {
			emitASCII(cs, sink, wide, signByte)
		}
		for k := 0; k < n; k++ {
			emitASCII(cs, sink, wide, cs.scratch[k])
		}
		if leftJustify {
			emitFill(cs, sink, wide, ' ', fieldPad)
		}
		return true
	}

	signLen := 0
	if signByte != 0 {
		signLen = 1
	}
	padC := byte(' ')
	if spec.leadingZeroPad && width > 0 {
		padC = '0'
	}
	fieldPad := width - n - signLen
	if fieldPad < 0 {
		fieldPad = 0
	}

	if !leftJustify {
		if padC == '0' {
			if signByte != 0 {
				emitASCII(cs, sink, wide, signByte)
				signByte = 0
			}
			emitFill(cs, sink, wide, '0', fieldPad)
		} else {
			emitFill(cs, sink, wide, ' ', fieldPad)
		}
	}
	if signByte != 0 {
		emitASCII(cs, sink, wide, signByte)
	}
	for k := n - 1; k >= 0; k-- {
		emitASCII(cs, sink, wide, cs.scratch[k])
	}
	if leftJustify {
		emitFill(cs, sink, wide, ' ', fieldPad)
	}
	return true
}

func renderWriteback(bv boundValue, count int) bool {
	switch p := bv.raw.(type) {
	case *int:
		*p = count
	case *int8:
		*p = int8(count)
	case *int16:
		*p = int16(count)
	case *int32:
		*p = int32(count)
	case *int64:
		*p = int64(count)
	case *uint:
		*p = uint(count)
	case *uint8:
		*p = uint8(count)
	case *uint16:
		*p = uint16(count)
	case *uint32:
		*p = uint32(count)
	case *uint64:
		*p = uint64(count)
	case *float64:
		// The long-double writeback carve-out: %Ln writes through a
		// *float64 instead of an integer pointer.
		*p = float64(count)
	}
	return true
}
