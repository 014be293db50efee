package nanofmt

import (
	"testing"

	"github.com/tinywasm/nanofmt/internal/testutils/assert"
	"github.com/tinywasm/nanofmt/internal/testutils/require"
)

func TestInferFormatSequentialOrdering(t *testing.T) {
	cfg := DefaultConfig()
	tv := &typeVector{}
	err := inferFormat("%d %s %f", cfg, tv, true)
	require.NoError(t, err)
	assert.Equal(t, 3, tv.usedMax)
	assert.Equal(t, convSignedInt, tv.get(1).c)
	assert.Equal(t, convString, tv.get(2).c)
	assert.Equal(t, convFloatDec, tv.get(3).c)
}

func TestInferFormatPositionalReuse(t *testing.T) {
	cfg := DefaultConfig()
	tv := &typeVector{}
	err := inferFormat("%1$d and %1$d again", cfg, tv, true)
	require.NoError(t, err)
	assert.Equal(t, 1, tv.usedMax)
	assert.Equal(t, convSignedInt, tv.get(1).c)
}

func TestInferFormatTypeConflict(t *testing.T) {
	cfg := DefaultConfig()
	tv := &typeVector{}
	err := inferFormat("%1$d and %1$s", cfg, tv, true)
	assert.Error(t, err)
}

func TestInferFormatStarClaimsSlot(t *testing.T) {
	cfg := DefaultConfig()
	tv := &typeVector{}
	err := inferFormat("%*d", cfg, tv, true)
	require.NoError(t, err)
	assert.Equal(t, 2, tv.usedMax)
	assert.Equal(t, convSignedInt, tv.get(1).c) // the '*' width
	assert.Equal(t, convSignedInt, tv.get(2).c) // the value itself
}

func TestInferFormatUntrustedCannotIntroduceBindings(t *testing.T) {
	cfg := DefaultConfig()
	tv := &typeVector{}
	require.NoError(t, inferFormat("%d", cfg, tv, true))
	err := inferFormat("%d %s", cfg, tv, false)
	assert.Error(t, err)
}

func TestInferFormatUntrustedCompatibleSucceeds(t *testing.T) {
	cfg := DefaultConfig()
	tv := &typeVector{}
	require.NoError(t, inferFormat("%1$d %2$s", cfg, tv, true))
	err := inferFormat("%2$s %1$d", cfg, tv, false)
	assert.NoError(t, err)
}

func TestInferFormatRespectsMaxPositionalArgs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPositionalArgs = 1
	tv := &typeVector{}
	err := inferFormat("%1$d %2$d", cfg, tv, true)
	assert.Error(t, err)
}

func TestInferFormatPercentLiteralDoesNotClaimASlot(t *testing.T) {
	cfg := DefaultConfig()
	tv := &typeVector{}
	err := inferFormat("100%% done: %d", cfg, tv, true)
	require.NoError(t, err)
	assert.Equal(t, 1, tv.usedMax)
}
