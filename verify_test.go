package nanofmt

import (
	"testing"

	"github.com/tinywasm/nanofmt/internal/testutils/assert"
)

func TestVerifySelfConsistentReference(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, Verify(cfg, "%d %s %f", ""))
}

func TestVerifyReferenceWithGapFails(t *testing.T) {
	cfg := DefaultConfig()
	// "%2$d" alone never binds slot 1, leaving a gap up to usedMax.
	assert.False(t, Verify(cfg, "%2$d", ""))
}

func TestVerifyFormatAgreesWithReference(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, Verify(cfg, "%d %s", "%1$d"))
}

func TestVerifyFormatDisagreesWithReference(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, Verify(cfg, "%d %s", "%1$s"))
}

func TestVerifyFormatCannotIntroduceNewSlot(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, Verify(cfg, "%d", "%d %d"))
}

func TestVerifyEmptyReferenceAndFormat(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, Verify(cfg, "", ""))
}

func TestVerifyReferenceTypeConflictFails(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, Verify(cfg, "%1$d %1$s", ""))
}
