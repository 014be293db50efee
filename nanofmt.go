// Package nanofmt is a dependency-light, reverse-conversion printf
// engine for environments where pulling in the full fmt package's
// reflection and allocation cost is unacceptable: bootloaders, RTOS
// firmware, and WASM modules trimmed for size. It never imports fmt or
// strconv in its hot path and reuses a pooled scratch conversion buffer
// across calls; the argument type and value vectors are allocated on
// each call.
//
// Callers build a Config once (DefaultConfig or NewConfig) and reuse it
// across calls. A "reference" format is the trusted, usually
// compile-time-constant template that establishes which argument types
// a call is allowed to bind; "format" is the format actually rendered,
// which may be identical to the reference or a distinct, less-trusted
// string checked against it before anything is emitted.
package nanofmt

// Verify reports whether reference is internally consistent (every
// positional argument slot it uses is unambiguously typed, with no
// gaps) and, when format is non-empty, whether format agrees with
// reference's bindings without introducing new ones.
func Verify(cfg Config, reference, format string) bool {
	return verify(reference, format, cfg)
}

// RenderToSink drives the renderer over reference/format, feeding each
// emitted code unit to sink, and returns the number of code units the
// engine attempted to emit. A non-nil error means either that
// inferencing or binding failed before any output was produced, or that
// a string failed to decode as UTF-8 during rendering, after the code
// units before it had already reached sink; the returned count is 0 in
// both cases.
func RenderToSink(cfg Config, sink Sink, reference, format string, args ...any) (int, error) {
	return render(cfg, reference, format, sink, args)
}

// RenderToBuffer writes up to len(buf) code units into buf and always
// returns the total length the engine would have written had the
// buffer been unbounded — mirroring snprintf's "truncation is not an
// error" contract. Callers compare the returned length against
// len(buf) to detect truncation. Like snprintf, it unconditionally
// NUL-terminates: the terminator is appended through the same sink
// right after the formatted content (so content shorter than buf gets
// terminated immediately after it, as usual), and buf[len(buf)-1] is
// additionally always left NUL, regardless of content length — so a
// caller reusing a buffer across calls can never observe a stale
// non-NUL byte at the very end of it. Neither write counts toward the
// returned length.
func RenderToBuffer(cfg Config, buf []byte, reference, format string, args ...any) (int, error) {
	pos := 0
	sink := func(codeUnit uint16) bool {
		if pos < len(buf) {
			buf[pos] = byte(codeUnit)
		}
		pos++
		return true
	}
	n, err := render(cfg, reference, format, sink, args)
	sink(0)
	if len(buf) >= 1 {
		buf[len(buf)-1] = 0
	}
	return n, err
}
