//go:build !wasm

package nanofmt

import "sync"

// callStatePool reuses *callState across renders to avoid allocating the
// scratch conversion buffer on every call.
var callStatePool = sync.Pool{
	New: func() any {
		return &callState{}
	},
}

func getCallState(bufSize int) *callState {
	cs := callStatePool.Get().(*callState)
	if cap(cs.scratch) < bufSize {
		cs.scratch = make([]byte, bufSize)
	} else {
		cs.scratch = cs.scratch[:bufSize]
	}
	return cs
}

func putCallState(cs *callState) {
	cs.emitted = 0
	callStatePool.Put(cs)
}
