//go:build wasm

package nanofmt

// wasm is single-threaded per instance: a fresh callState per call is
// cheap enough that pooling only adds bookkeeping for no benefit.
func getCallState(bufSize int) *callState {
	return &callState{scratch: make([]byte, bufSize)}
}

func putCallState(cs *callState) {}
