package ucal

import (
	"math"

	"github.com/jnperlin/ucal/internal/gregorian"
)

// GregorianToRDN converts a Gregorian calendar date (year, month, day) to
// its Rata Die Number. Out-of-range month/day values are normalized
// arithmetically rather than rejected (the underlying interpolation is
// tolerant by construction); use RDNToGregorian afterwards if you need to
// validate a date round-trips.
func GregorianToRDN(year, month, day int16) RDN {
	return gregorian.DateToRdn(year, month, day)
}

// RDNToGregorian converts an RDN to a Gregorian calendar date.
func RDNToGregorian(rdn RDN) (CivilDate, error) {
	cd, ok := gregorian.RdnToDate(rdn)
	if !ok {
		return cd, newErr("RDNToGregorian", KindRange, "year out of int16 range")
	}
	return cd, nil
}

// GregorianYearStart returns the RDN of the first day of Gregorian
// calendar year y.
func GregorianYearStart(y int16) RDN { return gregorian.YearStart(y) }

// GregorianIsLeapYear reports whether y is a Gregorian leap year.
func GregorianIsLeapYear(y int16) bool { return gregorian.IsLeapYear(y) }

// GregorianRellez recovers the full year from a two-digit year y, month
// m, day d and weekday w: the first matching year on or after ybase, i.e.
// in [ybase, ybase+400). Returns ErrInvalid for inputs that admit
// no solution and ErrRange if the solution would not fit an int16.
func GregorianRellez(y, m, d, w uint16, ybase int16) (int16, error) {
	r := gregorian.Rellez(y, m, d, w, ybase)
	if r == math.MinInt16 {
		// A valid input still has a solution near year 0; failing only at
		// ybase means the result would not fit an int16.
		if gregorian.Rellez(y, m, d, w, 0) != math.MinInt16 {
			return r, newErr("GregorianRellez", KindRange, "year out of int16 range")
		}
		return r, newErr("GregorianRellez", KindInvalid, "no matching year in range")
	}
	return r, nil
}
