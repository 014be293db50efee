package nanofmt

import (
	"testing"

	"github.com/tinywasm/nanofmt/internal/testutils/assert"
	"github.com/tinywasm/nanofmt/internal/testutils/require"
)

func TestBindArgsBasic(t *testing.T) {
	cfg := DefaultConfig()
	tv, usedMax, err := inferReference("%d %s %f", "", cfg)
	require.NoError(t, err)

	vv, err := bindArgs(tv, usedMax, []any{42, "hi", 3.5})
	require.NoError(t, err)
	assert.Equal(t, int64(42), vv.get(1).ival)
	assert.Equal(t, "hi", vv.get(2).sval)
	assert.Equal(t, 3.5, vv.get(3).fval)
}

func TestBindArgsGapError(t *testing.T) {
	tv := &typeVector{usedMax: 2}
	tv.slots[1] = argType{c: convSignedInt}
	// slot 2 left unbound deliberately
	_, err := bindArgs(tv, 2, []any{1, 2})
	assert.Error(t, err)
}

func TestBindArgsNamedIntType(t *testing.T) {
	type myInt int32
	cfg := DefaultConfig()
	tv, usedMax, err := inferReference("%d", "", cfg)
	require.NoError(t, err)
	vv, err := bindArgs(tv, usedMax, []any{myInt(7)})
	require.NoError(t, err)
	assert.Equal(t, int64(7), vv.get(1).ival)
}

func TestBindArgsWritebackPointer(t *testing.T) {
	cfg := DefaultConfig()
	tv, usedMax, err := inferReference("%n", "", cfg)
	require.NoError(t, err)
	var n int
	vv, err := bindArgs(tv, usedMax, []any{&n})
	require.NoError(t, err)
	ptr, ok := vv.get(1).raw.(*int)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Same(t, &n, ptr)
}
