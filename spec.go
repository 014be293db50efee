package nanofmt

// widthPrecKind says whether a field width or precision is absent,
// a literal digit run, or indirected through '*'.
type widthPrecKind uint8

const (
	wpNone widthPrecKind = iota
	wpLiteral
	wpStar
)

// prependKind is the sign-prefix flag: none, a space, or '+'. A '+'
// flag always dominates a ' ' flag on the same directive.
type prependKind uint8

const (
	prependNone prependKind = iota
	prependSpace
	prependPlus
)

// formatSpec is the parsed representation of one '%...' directive. It
// is immutable once returned by parseDirective and lives only for the
// directive that produced it.
type formatSpec struct {
	order int // 1-based; 0 means "assign next sequential"

	fieldWidth    int
	fieldWidthOpt widthPrecKind
	widthOrder    int // explicit n$ on a '*' width, 0 if sequential

	prec       int
	precOpt    widthPrecKind
	precOrder  int // explicit n$ on a '*' precision, 0 if sequential

	leftJustified  bool
	leadingZeroPad bool
	altForm        bool
	prepend        prependKind

	lenMod lengthMod
	c      conv

	caseAdjust byte // 'a'-'A' for lowercase conversions, 0 for uppercase
}

// parseDirective parses one '%...' directive starting at format[i], where
// format[i-1] == '%'. It returns the populated spec and the number of
// bytes consumed from format[i:] (so the caller advances i by that much),
// or ok == false on syntactic failure. Callers emit the '%' and the
// unparsed remainder literally when ok is false.
func parseDirective(format string, i int, cfg Config) (spec formatSpec, consumed int, ok bool) {
	start := i
	n := len(format)

	// 1. Optional positional prefix DIGITS '$'.
	if cfg.PositionalArgs {
		if j, digits, sawDigits := scanDigits(format, i); sawDigits && j < n && format[j] == '$' {
			if digits == 0 {
				return formatSpec{}, 0, false // explicit 0$ is rejected
			}
			spec.order = digits
			i = j + 1
		}
		// else: rewind (no-op, i unchanged) — digits belong to flags/width.
	}

	// 2. Flags, any order.
	for i < n {
		switch format[i] {
		case '-':
			spec.leftJustified = true
			spec.leadingZeroPad = false // subsequent '-' cancels '0'
			i++
		case '0':
			if !spec.leftJustified {
				spec.leadingZeroPad = true
			}
			i++
		case '+':
			spec.prepend = prependPlus // '+' dominates ' '
			i++
		case ' ':
			if spec.prepend != prependPlus {
				spec.prepend = prependSpace
			}
			i++
		case '#':
			spec.altForm = true
			i++
		default:
			goto flagsDone
		}
	}
flagsDone:

	// 3. Field width.
	if cfg.FieldWidth {
		if i < n && format[i] == '*' && cfg.StarIndirection {
			i++
			spec.fieldWidthOpt = wpStar
			if j, digits, sawDigits := scanDigits(format, i); sawDigits && j < n && format[j] == '$' {
				spec.widthOrder = digits
				i = j + 1
			}
		} else if j, digits, sawDigits := scanDigits(format, i); sawDigits {
			spec.fieldWidth = digits
			spec.fieldWidthOpt = wpLiteral
			i = j
		}
	}

	// 4. Precision.
	if cfg.Precision && i < n && format[i] == '.' {
		i++
		if i < n && format[i] == '*' && cfg.StarIndirection {
			i++
			spec.precOpt = wpStar
			if j, digits, sawDigits := scanDigits(format, i); sawDigits && j < n && format[j] == '$' {
				spec.precOrder = digits
				i = j + 1
			}
		} else {
			neg := false
			if i < n && format[i] == '-' {
				neg = true
				i++
			}
			j, digits, sawDigits := scanDigits(format, i)
			if neg {
				// ".-5" (or a bare ".-") means "as if absent".
				spec.precOpt = wpNone
				spec.prec = 0
				i = j
			} else if sawDigits {
				spec.precOpt = wpLiteral
				spec.prec = digits
				i = j
			} else {
				// '.' alone means precision 0.
				spec.precOpt = wpLiteral
				spec.prec = 0
			}
		}
	}

	// 5. Length modifier.
	switch {
	case i+1 < n && format[i] == 'h' && format[i+1] == 'h':
		spec.lenMod = lenHH
		i += 2
	case i < n && format[i] == 'h':
		spec.lenMod = lenH
		i++
	case i+1 < n && format[i] == 'l' && format[i+1] == 'l' && cfg.LargeLengthModifiers:
		spec.lenMod = lenLL
		i += 2
	case i < n && format[i] == 'l':
		spec.lenMod = lenL
		i++
	case i < n && format[i] == 'L':
		spec.lenMod = lenBigL
		i++
	case i < n && format[i] == 'j' && cfg.LargeLengthModifiers:
		spec.lenMod = lenJ
		i++
	case i < n && format[i] == 'z' && cfg.LargeLengthModifiers:
		spec.lenMod = lenZ
		i++
	case i < n && format[i] == 't' && cfg.LargeLengthModifiers:
		spec.lenMod = lenT
		i++
	}

	// 6. Conversion letter.
	if i >= n {
		return formatSpec{}, 0, false
	}
	ch := format[i]
	i++

	switch ch {
	case '%':
		spec.c = convPercent
	case 'c':
		spec.c = convChar
	case 's':
		spec.c = convString
	case 'd', 'i':
		spec.c = convSignedInt
	case 'u':
		spec.c = convUnsignedInt
	case 'o':
		spec.c = convOctal
	case 'x':
		spec.c = convHexInt
		spec.caseAdjust = 'a' - 'A'
	case 'X':
		spec.c = convHexInt
	case 'b':
		if !cfg.Binary {
			return formatSpec{}, 0, false
		}
		spec.c = convBinary
		spec.caseAdjust = 'a' - 'A'
	case 'B':
		if !cfg.Binary {
			return formatSpec{}, 0, false
		}
		spec.c = convBinary
	case 'p':
		spec.c = convPointer
		spec.caseAdjust = 'a' - 'A'
	case 'n':
		if !cfg.Writeback {
			return formatSpec{}, 0, false
		}
		spec.c = convWriteback
	case 'f':
		if !cfg.Float {
			return formatSpec{}, 0, false
		}
		spec.c = convFloatDec
		spec.caseAdjust = 'a' - 'A'
	case 'F':
		if !cfg.Float {
			return formatSpec{}, 0, false
		}
		spec.c = convFloatDec
	case 'e':
		if !cfg.Float {
			return formatSpec{}, 0, false
		}
		spec.c = convFloatSci
		spec.caseAdjust = 'a' - 'A'
	case 'E':
		if !cfg.Float {
			return formatSpec{}, 0, false
		}
		spec.c = convFloatSci
	case 'g':
		if !cfg.Float {
			return formatSpec{}, 0, false
		}
		spec.c = convFloatShortest
		spec.caseAdjust = 'a' - 'A'
	case 'G':
		if !cfg.Float {
			return formatSpec{}, 0, false
		}
		spec.c = convFloatShortest
	case 'a':
		if !cfg.Float {
			return formatSpec{}, 0, false
		}
		spec.c = convFloatHex
		spec.caseAdjust = 'a' - 'A'
	case 'A':
		if !cfg.Float {
			return formatSpec{}, 0, false
		}
		spec.c = convFloatHex
	default:
		return formatSpec{}, 0, false
	}

	// Normalize flags/precision that a conversion letter overrides.
	switch spec.c {
	case convPercent, convChar, convPointer, convWriteback:
		spec.precOpt = wpNone
	case convString:
		spec.leadingZeroPad = false
	case convSignedInt, convUnsignedInt, convOctal, convHexInt, convBinary:
		if spec.precOpt != wpNone {
			spec.leadingZeroPad = false
		}
	case convFloatDec, convFloatSci, convFloatShortest, convFloatHex:
		if spec.precOpt == wpNone {
			spec.prec = 6
			spec.precOpt = wpLiteral
		}
	}

	return spec, i - start, true
}

// scanDigits reads a run of ASCII digits starting at i, returning the
// index just past the run, the decimal value, and whether any digit was
// consumed at all.
func scanDigits(s string, i int) (next int, value int, sawDigit bool) {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		i++
		sawDigit = true
	}
	return i, value, sawDigit
}
