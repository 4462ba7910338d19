package ucal

import (
	"math"

	"github.com/jnperlin/ucal/internal/julian"
)

// JulianToRDN converts a Julian calendar date to its Rata Die Number.
func JulianToRDN(year, month, day int16) RDN {
	return julian.DateToRdn(year, month, day)
}

// RDNToJulian converts an RDN to a Julian calendar date.
func RDNToJulian(rdn RDN) (CivilDate, error) {
	cd, ok := julian.RdnToDate(rdn)
	if !ok {
		return cd, newErr("RDNToJulian", KindRange, "year out of int16 range")
	}
	return cd, nil
}

// JulianYearStart returns the RDN of the first day of Julian calendar
// year y.
func JulianYearStart(y int16) RDN { return julian.YearStart(y) }

// JulianIsLeapYear reports whether y is a Julian leap year (y % 4 == 0,
// no centennial exception).
func JulianIsLeapYear(y int16) bool { return julian.IsLeapYear(y) }

// JulianRellez recovers the full Julian year from a two-digit year,
// month, day and weekday: the first matching year on or after ybase, i.e.
// in [ybase, ybase+700) (700 years is the LCM of a Julian century and 7
// days).
func JulianRellez(y, m, d, w uint16, ybase int16) (int16, error) {
	r := julian.Rellez(y, m, d, w, ybase)
	if r == math.MinInt16 {
		return r, newErr("JulianRellez", KindInvalid, "no matching year in range")
	}
	return r, nil
}
