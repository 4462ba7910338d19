package ucal

import "github.com/jnperlin/ucal/internal/posixtz"

// TZHint tells LocalToUTC how to disambiguate a local time stamp that
// falls into a spring gap or autumn overlap.
type TZHint = posixtz.Hint

const (
	TZHintNone TZHint = posixtz.HintNone // UTC->local; no ambiguity possible
	TZHintSTD  TZHint = posixtz.HintSTD  // local->UTC, resolve to standard time
	TZHintDST  TZHint = posixtz.HintDST  // local->UTC, resolve to DST
	TZHintHrA  TZHint = posixtz.HintHrA  // local->UTC, resolve to the zone before the transition
	TZHintHrB  TZHint = posixtz.HintHrB  // local->UTC, resolve to the zone after the transition
)

// TZInfo is the result of resolving a time stamp against a time zone:
// the UTC offset to apply and flags describing DST state and overlap
// membership.
type TZInfo = posixtz.Info

// TZZone holds a parsed POSIX TZ descriptor with its cached transition
// context for a given year. Not safe for concurrent use; callers that
// query from multiple goroutines should keep one TZZone per goroutine
// or guard it with a mutex.
type TZZone struct {
	ctx *posixtz.Ctx
}

// LoadTZ parses a POSIX TZ string (with the common GNU extensions:
// quoted <...> names, J/n/Mm.w.d rules) into a usable TZZone. The spec
// need not be fully consumed; the unconsumed remainder is returned so
// callers that care can check it.
func LoadTZ(spec string) (*TZZone, string, error) {
	ctx, rest, err := posixtz.LoadZone(spec)
	if err != nil {
		return nil, rest, newErr("LoadTZ", KindInvalid, err.Error())
	}
	return &TZZone{ctx: ctx}, rest, nil
}

// UTCToLocal resolves a UNIX time stamp to local-time information. This
// direction can never be ambiguous.
func (z *TZZone) UTCToLocal(ts int64) TZInfo {
	info, _ := posixtz.GetInfoUTC2Local(z.ctx, ts)
	return info
}

// LocalToUTC resolves a local-time stamp to the information needed to
// convert it to UTC, using hint to disambiguate a spring gap or autumn
// overlap. Returns ErrAmbiguous if hint cannot resolve the time stamp.
func (z *TZZone) LocalToUTC(ts int64, hint TZHint) (TZInfo, error) {
	info, ok := posixtz.GetInfoLocal2UTC(z.ctx, ts, hint)
	if !ok {
		return info, newErr("LocalToUTC", KindAmbiguous, "local time falls in a spring gap or autumn overlap")
	}
	return info, nil
}

// LocalToUTCNearest resolves a local-time stamp to UTC the same way as
// LocalToUTC, but disambiguates any spring gap/autumn overlap by picking
// the interpretation whose UTC result is closest to (and not after)
// pivot, instead of requiring an explicit hint. It never sets the
// HrA/HrB overlap flags.
func (z *TZZone) LocalToUTCNearest(ts, pivot int64) TZInfo {
	info, _ := posixtz.LocalToUTCNearest(z.ctx, ts, pivot)
	return info
}

// AlignedLocalRange returns the [lo, hi) UTC bound of the local-time
// period of length period (seconds, 0 < period <= 7 days) containing ts,
// shifted by phase phi. The range is clamped so ts remains inside it
// even when it straddles a STD/DST transition.
func (z *TZZone) AlignedLocalRange(ts int64, period, phi int32) (lo, hi int64, info TZInfo, err error) {
	lo, hi, info, ok := posixtz.AlignedLocalRange(z.ctx, ts, period, phi)
	if !ok {
		return 0, 0, TZInfo{}, newErr("AlignedLocalRange", KindInvalid, "period out of range")
	}
	return lo, hi, info, nil
}
