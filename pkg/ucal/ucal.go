package ucal

import (
	"math"

	"github.com/jnperlin/ucal/internal/calmath"
)

// RDN — Rata Die Number, the common day-counting anchor for every
// calendar in this package. RDN 1 is 0001-01-01 of the proleptic
// Gregorian calendar.
type RDN = calmath.RDN

// Epoch fixpoints, expressed in RDN (wire-exact, see calconst.h upstream).
const (
	RDNNtp  = calmath.RDNNtp
	RDNUnix = calmath.RDNUnix
	RDNGps  = calmath.RDNGps
	PhiGps  = calmath.PhiGps
)

// Weekday identifies a day of the week, 0 == Sunday.
type Weekday = calmath.WeekDay

const (
	Sunday    = calmath.Sunday
	Monday    = calmath.Monday
	Tuesday   = calmath.Tuesday
	Wednesday = calmath.Wednesday
	Thursday  = calmath.Thursday
	Friday    = calmath.Friday
	Saturday  = calmath.Saturday
)

// CivilDate is a date in a CE calendar (Gregorian or Julian).
type CivilDate = calmath.CivilDate

// WeekDate is a date in the ISO-8601 week calendar.
type WeekDate = calmath.WeekDate

// CivilTime is a 24h wall-clock time.
type CivilTime = calmath.CivilTime

// WeekdayAfter returns the closest RDN strictly after rdn that falls on
// weekday wd, saturating at math.MaxInt32 on overflow.
func WeekdayAfter(rdn RDN, wd Weekday) RDN { return calmath.WdGT(rdn, wd) }

// WeekdayOnOrAfter returns the closest RDN on or after rdn that falls on
// weekday wd, saturating at math.MaxInt32 on overflow.
func WeekdayOnOrAfter(rdn RDN, wd Weekday) RDN { return calmath.WdGE(rdn, wd) }

// WeekdayOnOrBefore returns the closest RDN on or before rdn that falls
// on weekday wd, saturating at math.MinInt32 on overflow.
func WeekdayOnOrBefore(rdn RDN, wd Weekday) RDN { return calmath.WdLE(rdn, wd) }

// WeekdayBefore returns the closest RDN strictly before rdn that falls
// on weekday wd, saturating at math.MinInt32 on overflow.
func WeekdayBefore(rdn RDN, wd Weekday) RDN { return calmath.WdLT(rdn, wd) }

// WeekdayNearest returns the closest RDN around rdn that falls on
// weekday wd; can saturate at either bound since it may move either way.
func WeekdayNearest(rdn RDN, wd Weekday) RDN { return calmath.WdNear(rdn, wd) }

// SplitDayTime adds offset ofs to time-of-day dt and breaks the result
// into hours/minutes/seconds, returning the number of excess days.
func SplitDayTime(dt, ofs int32) (CivilTime, int32) { return calmath.DayTimeSplit(dt, ofs) }

// MergeDayTime folds hours/minutes/seconds into seconds since midnight.
func MergeDayTime(h, m, s int16) int32 { return calmath.DayTimeMerge(h, m, s) }

// SplitUnixDay splits UNIX seconds into elapsed days and seconds since
// midnight, without assuming any particular epoch.
func SplitUnixDay(tt int64) (days int64, secOfDay uint32) {
	qr := calmath.TimeToDays(tt)
	return qr.Q, qr.R
}

// UnixToRDN splits a UNIX timestamp into (RDN, seconds since midnight).
func UnixToRDN(tt int64) (RDN, uint32, error) {
	qr := calmath.TimeToRdn(tt)
	if qr.Q < math.MinInt32 || qr.Q > math.MaxInt32 {
		return 0, qr.R, newErr("UnixToRDN", KindRange, "RDN out of int32 range")
	}
	return int32(qr.Q), qr.R, nil
}
