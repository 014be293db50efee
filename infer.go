package nanofmt

// maxSlots bounds the fixed-capacity positional argument vector. It is
// the hard ceiling regardless of Config.MaxPositionalArgs, which may
// only narrow it further.
const maxSlots = 64

// typeVector is the fixed-capacity array of expected argument
// descriptors, indexed 1..usedMax (slot 0 is unused; order is 1-based
// throughout this package). It lives for the duration of one
// Verify/RenderTo* call; inferReference allocates it and returns it by
// pointer.
type typeVector struct {
	slots   [maxSlots + 1]argType
	usedMax int
}

func (tv *typeVector) get(order int) argType {
	if order < 1 || order > maxSlots {
		return argType{}
	}
	return tv.slots[order]
}

// bind records descriptor d at the given 1-based order. If the slot is
// already bound, d must be compatible with the existing descriptor.
// acceptNewParam gates whether an unbound slot may be claimed at all:
// false means the caller is scanning an untrusted format against a
// reference already fully populated, and any new claim is a violation.
func (tv *typeVector) bind(order int, d argType, acceptNewParam bool, limit int) error {
	if order < 1 || order > limit {
		return vectorGapError(order)
	}
	existing := tv.slots[order]
	if existing.unbound() {
		if !acceptNewParam {
			return vectorGapError(order)
		}
		tv.slots[order] = d
	} else if !existing.compatible(d) {
		return typeConflictError(order)
	}
	if order > tv.usedMax {
		tv.usedMax = order
	}
	return nil
}

// inferFormat scans format, populating tv per directive. Star width and
// star precision indirections each claim an int slot of their own
// (explicit n$ order, or the next unclaimed sequential order) before the
// directive's main argument does. acceptNewParam controls whether an
// unbound slot may be newly claimed; see bind.
//
// Unrecognized or feature-gated directives are skipped exactly as
// parseDirective reports them: ok == false means "no argument claimed,
// resume scanning after the '%'", matching how render.go treats the
// same directive as literal text.
func inferFormat(format string, cfg Config, tv *typeVector, acceptNewParam bool) error {
	limit := cfg.MaxPositionalArgs
	if limit <= 0 || limit > maxSlots {
		limit = maxSlots
	}
	next := 1
	i := 0
	n := len(format)
	for i < n {
		if format[i] != '%' {
			i++
			continue
		}
		i++
		if i >= n {
			break
		}
		spec, consumed, ok := parseDirective(format, i, cfg)
		if !ok {
			i++ // treat the '%' as literal; resume after it
			continue
		}
		i += consumed

		if spec.c == convPercent {
			continue
		}

		if spec.fieldWidthOpt == wpStar {
			order := spec.widthOrder
			if order == 0 {
				order = next
				next++
			}
			if err := tv.bind(order, argType{c: convSignedInt}, acceptNewParam, limit); err != nil {
				return err
			}
		}
		if spec.precOpt == wpStar {
			order := spec.precOrder
			if order == 0 {
				order = next
				next++
			}
			if err := tv.bind(order, argType{c: convSignedInt}, acceptNewParam, limit); err != nil {
				return err
			}
		}

		order := spec.order
		if order == 0 {
			order = next
			next++
		}
		if err := tv.bind(order, argType{c: spec.c, l: spec.lenMod}, acceptNewParam, limit); err != nil {
			return err
		}
	}
	return nil
}

// inferReference runs the two-pass inference that verify and render rely on:
// the trusted reference format populates tv with acceptNewParam=true,
// then (if format is non-empty) the untrusted format re-scans with
// acceptNewParam=false, so it may only reuse slots the reference already
// bound. It returns the populated vector and the highest order referenced,
// or the first error encountered by either pass.
func inferReference(reference, format string, cfg Config) (*typeVector, int, error) {
	tv := &typeVector{}
	if err := inferFormat(reference, cfg, tv, true); err != nil {
		return nil, 0, err
	}
	if format != "" {
		if err := inferFormat(format, cfg, tv, false); err != nil {
			return nil, 0, err
		}
	}
	return tv, tv.usedMax, nil
}
