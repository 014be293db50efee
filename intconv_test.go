package nanofmt

import (
	"testing"

	"github.com/tinywasm/nanofmt/internal/testutils/assert"
)

func TestUtoaRevDecimal(t *testing.T) {
	buf := make([]byte, 23)
	n := utoaRev(buf, 12345, 10, 0)
	assert.Equal(t, 5, n)
	assert.Equal(t, "54321", string(buf[:n]))
}

func TestUtoaRevZero(t *testing.T) {
	buf := make([]byte, 23)
	n := utoaRev(buf, 0, 10, 0)
	assert.Equal(t, 1, n)
	assert.Equal(t, "0", string(buf[:n]))
}

func TestUtoaRevHexCase(t *testing.T) {
	buf := make([]byte, 23)
	n := utoaRev(buf, 0xABCD, 16, 0)
	assert.Equal(t, "DCBA", string(buf[:n]))

	n = utoaRev(buf, 0xABCD, 16, 'a'-'A')
	assert.Equal(t, "dcba", string(buf[:n]))
}

func TestUtoaRevBinary(t *testing.T) {
	buf := make([]byte, 23)
	n := utoaRev(buf, 0b1011, 2, 0)
	assert.Equal(t, "1101", string(buf[:n]))
}
