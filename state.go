package nanofmt

// callState is the per-call scratch storage: the conversion buffer the
// integer/float reversers write into, and a running count of code
// units the sink has accepted. It never outlives one Verify/RenderTo*
// call and is pooled across calls on the !wasm build (see pool_back.go).
type callState struct {
	scratch []byte
	emitted int
}
