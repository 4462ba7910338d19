package ucal

import "github.com/jnperlin/ucal/internal/isoweek"

// WeekToRDN converts an ISO-8601 week-calendar date (year, week, weekday)
// to its Rata Die Number.
func WeekToRDN(year, week, weekday int16) RDN {
	return isoweek.DateToRdn(year, week, weekday)
}

// RDNToWeek converts an RDN to an ISO-8601 week-calendar date.
func RDNToWeek(rdn RDN) (WeekDate, error) {
	wd, ok := isoweek.RdnToDate(rdn)
	if !ok {
		return wd, newErr("RDNToWeek", KindRange, "week-calendar year out of int16 range")
	}
	return wd, nil
}

// ISOWeekYearStart returns the RDN of the Monday starting ISO week-year y.
func ISOWeekYearStart(y int16) RDN { return isoweek.YearStart(y) }
