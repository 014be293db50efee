package nanofmt

// Error kinds the engine can produce. Parse failures and scratch overflow
// are not represented here: they are handled in-band (a literal '%'
// re-scan, or an "err"/"ERR" placeholder) and never reach the caller as
// an error value.
const (
	errKindNone = iota
	errKindVectorGap
	errKindTypeConflict
	errKindTranscode
)

// engineError is returned by RenderToSink/RenderToBuffer when
// inferencing or binding fails before any output is produced, or when a
// string fails to decode during rendering (errKindTranscode); Verify
// reports inferencing failures as false instead. It never carries
// per-directive float-overflow failures; those are localized
// substitutions handled entirely inside render.go.
type engineError struct {
	kind int
	slot int // 1-based order, 0 when not applicable
}

func (e *engineError) Error() string {
	switch e.kind {
	case errKindVectorGap:
		return "nanofmt: argument slot unbound in used range"
	case errKindTypeConflict:
		return "nanofmt: conflicting argument type at a positional slot"
	case errKindTranscode:
		return "nanofmt: invalid source code unit during transcoding"
	default:
		return "nanofmt: format error"
	}
}

func vectorGapError(slot int) error {
	return &engineError{kind: errKindVectorGap, slot: slot}
}

func typeConflictError(slot int) error {
	return &engineError{kind: errKindTypeConflict, slot: slot}
}

func transcodeError() error {
	return &engineError{kind: errKindTranscode}
}
