package nanofmt

import (
	"math"
	"testing"

	"github.com/tinywasm/nanofmt/internal/testutils/assert"
)

func reverse(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return string(out)
}

func TestFloatRevZeroNoPrecision(t *testing.T) {
	buf := make([]byte, 32)
	n, special := floatRev(buf, 0, 0, false, 0, 64)
	assert.False(t, special)
	assert.Equal(t, "0", reverse(buf[:n]))
}

func TestFloatRevZeroWithPrecision(t *testing.T) {
	buf := make([]byte, 32)
	n, special := floatRev(buf, 0, 2, false, 0, 64)
	assert.False(t, special)
	assert.Equal(t, "0.00", reverse(buf[:n]))
}

func TestFloatRevZeroAltForm(t *testing.T) {
	buf := make([]byte, 32)
	n, special := floatRev(buf, 0, 0, true, 0, 64)
	assert.False(t, special)
	assert.Equal(t, "0.", reverse(buf[:n]))
}

func TestFloatRevInf(t *testing.T) {
	buf := make([]byte, 32)
	n, special := floatRev(buf, math.Inf(1), 2, false, 0, 64)
	assert.True(t, special)
	assert.Equal(t, "INF", string(buf[:n]))
}

func TestFloatRevInfLowercase(t *testing.T) {
	buf := make([]byte, 32)
	n, special := floatRev(buf, math.Inf(1), 2, false, 'a'-'A', 64)
	assert.True(t, special)
	assert.Equal(t, "inf", string(buf[:n]))
}

func TestFloatRevNaN(t *testing.T) {
	buf := make([]byte, 32)
	n, special := floatRev(buf, math.NaN(), 2, false, 'a'-'A', 64)
	assert.True(t, special)
	assert.Equal(t, "nan", string(buf[:n]))
}

func TestFloatRevPrecisionOverflow(t *testing.T) {
	buf := make([]byte, 23)
	n, special := floatRev(buf, 1.5, 22, false, 'a'-'A', 64)
	assert.True(t, special)
	assert.Equal(t, "err", string(buf[:n]))
}

func TestFloatRevOneHasIntegerDigit(t *testing.T) {
	buf := make([]byte, 32)
	n, special := floatRev(buf, 1.0, 0, false, 0, 64)
	assert.False(t, special)
	assert.Equal(t, "1", reverse(buf[:n]))
}

// With a narrower mantissaBits the scale-by-5/shift-right overflow
// threshold must narrow along with the working register, or the
// fraction loop takes the wrong branch on its very first iteration.
func TestFloatRevSmallMantissaBitsFraction(t *testing.T) {
	buf := make([]byte, 32)
	n, special := floatRev(buf, 0.5, 1, false, 0, 32)
	assert.False(t, special)
	assert.Equal(t, "0.5", reverse(buf[:n]))
}
