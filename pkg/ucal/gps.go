package ucal

import "github.com/jnperlin/ucal/internal/gpsscale"

// GPSRawTime is a raw GPS/GNSS time stamp: a 10-bit week number (modulo
// the GPS era) and a time-of-week in seconds.
type GPSRawTime = gpsscale.RawTime

// GPSMapTime converts a UNIX timestamp and a leap-second count into a raw
// GPS time stamp.
func GPSMapTime(tt int64, leapSeconds int16) GPSRawTime {
	return gpsscale.MapTime(tt, leapSeconds)
}

// GPSMapRawToRDN unfolds a raw GPS time stamp (with its leap-second
// correction) to an RDN: the first occurrence on or after baseRDN (a
// baseRDN before the start of the GPS era is replaced by the era start).
func GPSMapRawToRDN(week uint16, tow uint32, leapSeconds int16, baseRDN RDN) (RDN, uint32) {
	qr := gpsscale.MapRaw1(week, tow, leapSeconds, baseRDN)
	return qr.Q, qr.R
}

// GPSMapRawToUnix unfolds a raw GPS time stamp (with its leap-second
// correction) to UNIX seconds in [base, base+1024 weeks) (a nil base, or
// one before the start of the GPS era, is replaced by the era start).
func GPSMapRawToUnix(week uint16, tow uint32, leapSeconds int16, base *int64) int64 {
	return gpsscale.MapRaw2(week, tow, leapSeconds, base)
}

// GPSRemapRDN folds rdn into the GPS-era cycle closest to baseRDN.
func GPSRemapRDN(rdn, baseRDN RDN) RDN { return gpsscale.RemapRdn(rdn, baseRDN) }

// GPSFullYear recovers a full calendar year from a receiver's two-digit
// (or already full) year y, month m, day d and, if known, weekday wd
// (negative wd means "unknown").
func GPSFullYear(y int16, m, d, wd int8) int16 { return gpsscale.FullYear(y, m, d, wd) }

// GPSDateUnfold combines GPSFullYear, GregorianToRDN and GPSRemapRDN to
// turn a receiver-reported date (possibly with a truncated year) into
// the RDN closest to baseday.
func GPSDateUnfold(y int16, m, d, wd int8, baseday RDN) RDN {
	return gpsscale.DateUnfold(y, m, d, wd, baseday)
}
