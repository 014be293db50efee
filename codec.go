package nanofmt

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Sink is the per-code-unit callback the rendering driver invokes for
// every emitted byte or wide code unit. Returning false tells the
// driver the caller wants to stop early; the driver keeps calling it
// for the remaining directives regardless (there is no cancellation
// channel — see the public API for how that surfaces as a final count)
// but a sink is free to simply stop writing once it has seen enough.
type Sink func(codeUnit uint16) bool

// emitRune feeds one decoded codepoint through sink, synthesizing
// either its UTF-8 byte sequence (narrow sink) or its UTF-16 code
// unit(s) (wide sink, with surrogate pairing for codepoints at or above
// 0x10000). This is the codepoint-iterator collaborator that literal
// text and the string conversion drive (through decodeString) whenever
// the source encoding and the sink's code-unit width might disagree;
// the character conversion bypasses it and uses emitTruncated.
func emitRune(cs *callState, sink Sink, wide bool, r rune) {
	if !wide {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], r)
		for i := 0; i < n; i++ {
			sink(uint16(buf[i]))
			cs.emitted++
		}
		return
	}
	if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError || r2 != utf8.RuneError {
		sink(uint16(r1))
		sink(uint16(r2))
		cs.emitted += 2
		return
	}
	sink(uint16(r))
	cs.emitted++
}

// emitTruncated writes exactly one code unit holding the low 8 (narrow)
// or 16 (wide) bits of v, with no codepoint decoding or re-encoding —
// the %c behavior of casting the bound value straight to the output
// character type, the same truncation a C printf binder performs when
// it narrows an int argument to char/wchar_t.
func emitTruncated(cs *callState, sink Sink, wide bool, v int64) {
	if wide {
		sink(uint16(v))
	} else {
		sink(uint16(byte(v)))
	}
	cs.emitted++
}

// emitASCII, emitFill and emitLiteralASCII emit fill characters, signs,
// and staged prefixes ("0x", "0b") during padding assembly. They all
// route through emitRune so WideChar output still gets the right code
// unit width for what is, at the byte level, always plain ASCII.
func emitASCII(cs *callState, sink Sink, wide bool, b byte) {
	emitRune(cs, sink, wide, rune(b))
}

func emitFill(cs *callState, sink Sink, wide bool, b byte, count int) {
	for k := 0; k < count; k++ {
		emitASCII(cs, sink, wide, b)
	}
}

func emitLiteralASCII(cs *callState, sink Sink, wide bool, s string) {
	for k := 0; k < len(s); k++ {
		emitASCII(cs, sink, wide, s[k])
	}
}

// decodeString walks s (a Go string, always UTF-8 internally) as a
// sequence of runes and feeds each one through emitRune, stopping once
// maxRunes runes have been emitted (maxRunes < 0 means unbounded — the
// precision-less %s case). It returns false only on a decode error
// (an invalid UTF-8 sequence), matching the transcoding-failure path
// that aborts the whole call.
func decodeString(cs *callState, sink Sink, wide bool, s string, maxRunes int) bool {
	count := 0
	for len(s) > 0 {
		if maxRunes >= 0 && count >= maxRunes {
			break
		}
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return false
		}
		emitRune(cs, sink, wide, r)
		s = s[size:]
		count++
	}
	return true
}
