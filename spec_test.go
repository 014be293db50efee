package nanofmt

import (
	"testing"

	"github.com/tinywasm/nanofmt/internal/testutils/assert"
)

func TestParseDirectivePlainInt(t *testing.T) {
	cfg := DefaultConfig()
	spec, consumed, ok := parseDirective("d rest", 0, cfg)
	assert.True(t, ok)
	assert.Equal(t, 1, consumed)
	assert.Equal(t, convSignedInt, spec.c)
	assert.Equal(t, lenNone, spec.lenMod)
}

func TestParseDirectiveFlagsWidthPrecision(t *testing.T) {
	cfg := DefaultConfig()
	spec, consumed, ok := parseDirective("-08.3f", 0, cfg)
	assert.True(t, ok)
	assert.Equal(t, 6, consumed)
	assert.True(t, spec.leftJustified)
	assert.False(t, spec.leadingZeroPad) // '-' cancels '0'
	assert.Equal(t, 8, spec.fieldWidth)
	assert.Equal(t, wpLiteral, spec.fieldWidthOpt)
	assert.Equal(t, 3, spec.prec)
	assert.Equal(t, convFloatDec, spec.c)
}

func TestParseDirectivePlusDominatesSpace(t *testing.T) {
	cfg := DefaultConfig()
	spec, _, ok := parseDirective("+ d", 0, cfg)
	assert.True(t, ok)
	assert.Equal(t, prependPlus, spec.prepend)
}

func TestParseDirectivePositional(t *testing.T) {
	cfg := DefaultConfig()
	spec, consumed, ok := parseDirective("2$d", 0, cfg)
	assert.True(t, ok)
	assert.Equal(t, 3, consumed)
	assert.Equal(t, 2, spec.order)
}

func TestParseDirectiveZeroPositionalRejected(t *testing.T) {
	cfg := DefaultConfig()
	_, _, ok := parseDirective("0$d", 0, cfg)
	assert.False(t, ok)
}

func TestParseDirectiveStarWidthAndPrecision(t *testing.T) {
	cfg := DefaultConfig()
	spec, _, ok := parseDirective("*.*f", 0, cfg)
	assert.True(t, ok)
	assert.Equal(t, wpStar, spec.fieldWidthOpt)
	assert.Equal(t, wpStar, spec.precOpt)
}

func TestParseDirectiveUnknownConversion(t *testing.T) {
	cfg := DefaultConfig()
	_, _, ok := parseDirective("k", 0, cfg)
	assert.False(t, ok)
}

func TestParseDirectiveGatedBinaryOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Binary = false
	_, _, ok := parseDirective("b", 0, cfg)
	assert.False(t, ok)
}

func TestParseDirectiveHexPrefixCaseAdjust(t *testing.T) {
	cfg := DefaultConfig()
	specLower, _, _ := parseDirective("x", 0, cfg)
	assert.Equal(t, byte('a'-'A'), specLower.caseAdjust)
	specUpper, _, _ := parseDirective("X", 0, cfg)
	assert.Equal(t, byte(0), specUpper.caseAdjust)
}

func TestParseDirectiveFloatDefaultsPrecisionSix(t *testing.T) {
	cfg := DefaultConfig()
	spec, _, ok := parseDirective("f", 0, cfg)
	assert.True(t, ok)
	assert.Equal(t, wpLiteral, spec.precOpt)
	assert.Equal(t, 6, spec.prec)
}

func TestParseDirectivePrecisionZeroAltFormFlaggedSeparately(t *testing.T) {
	cfg := DefaultConfig()
	spec, _, ok := parseDirective(".0f", 0, cfg)
	assert.True(t, ok)
	assert.Equal(t, wpLiteral, spec.precOpt)
	assert.Equal(t, 0, spec.prec)
	assert.False(t, spec.altForm) // precision 0 does not imply '#'
}

func TestParseDirectiveNegativePrecisionMeansAbsent(t *testing.T) {
	cfg := DefaultConfig()
	spec, _, ok := parseDirective(".-5d", 0, cfg)
	assert.True(t, ok)
	assert.Equal(t, wpNone, spec.precOpt)
}

func TestParseDirectiveLengthModifiers(t *testing.T) {
	cfg := DefaultConfig()
	cases := map[string]lengthMod{
		"hhd": lenHH,
		"hd":  lenH,
		"lld": lenLL,
		"ld":  lenL,
		"Lf":  lenBigL,
		"jd":  lenJ,
		"zd":  lenZ,
		"td":  lenT,
	}
	for input, want := range cases {
		spec, _, ok := parseDirective(input, 0, cfg)
		assert.True(t, ok, input)
		assert.Equal(t, want, spec.lenMod, input)
	}
}
