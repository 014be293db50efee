package nanofmt

import "fmt"

// defaultConvBufSize is the smallest scratch conversion buffer that can
// hold every digit of a reversed 64-bit integer or float plus a sign
// and a decimal point.
const defaultConvBufSize = 23

// defaultMantissaBits is the width of the working integer register the
// float reverse converter scales its mantissa through. 64 bits
// comfortably holds a double's 52-bit mantissa plus carry headroom.
const defaultMantissaBits = 64

// Config is an immutable set of compile-time feature toggles. Build one
// with NewConfig or DefaultConfig; a Config is safe to share and reuse
// across any number of Verify/RenderTo* calls, mirroring a struct-of-fields
// configuration value rather than package-level mutable switches.
type Config struct {
	FieldWidth            bool
	Precision             bool
	Float                 bool
	LargeLengthModifiers  bool
	Binary                bool
	Writeback             bool
	StarIndirection       bool
	PositionalArgs        bool
	WideChar              bool
	ConvBufSize           int
	MantissaBits          int
	MaxPositionalArgs     int
}

// DefaultConfig returns the full-feature configuration: every toggle on,
// a 32-byte scratch buffer, 64-bit mantissa register, and 64 default
// positional argument slots.
func DefaultConfig() Config {
	c := Config{
		FieldWidth:           true,
		Precision:            true,
		Float:                true,
		LargeLengthModifiers: true,
		Binary:               true,
		Writeback:            true,
		StarIndirection:      true,
		PositionalArgs:       true,
		WideChar:             false,
		ConvBufSize:          32,
		MantissaBits:         defaultMantissaBits,
		MaxPositionalArgs:    64,
	}
	return c
}

// NewConfig validates cfg and returns it unchanged, or an error describing
// the first violated feature interdependency. Constructing a Config
// through NewConfig (rather than assembling a literal by hand) is the
// idiom the rest of this module assumes: Verify/RenderToSink/RenderToBuffer
// all take a Config by value and never mutate it.
func NewConfig(cfg Config) (Config, error) {
	if cfg.ConvBufSize < defaultConvBufSize {
		return Config{}, fmt.Errorf("nanofmt: ConvBufSize must be >= %d, got %d", defaultConvBufSize, cfg.ConvBufSize)
	}
	if cfg.MantissaBits <= 0 || cfg.MantissaBits > 64 {
		return Config{}, fmt.Errorf("nanofmt: MantissaBits must be in (0, 64], got %d", cfg.MantissaBits)
	}
	if cfg.Float && !cfg.Precision {
		return Config{}, fmt.Errorf("nanofmt: Float requires Precision")
	}
	if cfg.StarIndirection && !cfg.FieldWidth && !cfg.Precision {
		return Config{}, fmt.Errorf("nanofmt: StarIndirection requires FieldWidth or Precision")
	}
	if cfg.MaxPositionalArgs <= 0 || cfg.MaxPositionalArgs > maxSlots {
		return Config{}, fmt.Errorf("nanofmt: MaxPositionalArgs must be in (0, %d], got %d", maxSlots, cfg.MaxPositionalArgs)
	}
	return cfg, nil
}
