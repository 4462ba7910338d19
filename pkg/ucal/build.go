package ucal

import (
	"strconv"
	"strings"
)

// buildDate is set at link time via `-ldflags -X github.com/jnperlin/ucal/pkg/ucal.buildDate=...`.
// Go has no __DATE__ macro, so the build pipeline is expected to inject
// this the way C compilers inject the compile date automatically.
var buildDate string

var monthAbbrev = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// ParseBuildDate parses a "Mon DD YYYY" date string (the format C's
// __DATE__ macro produces, and the one -ldflags -X should inject) into
// an RDN. Reports false if the string cannot be parsed as such a date.
func ParseBuildDate(s string) (RDN, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, false
	}
	month := -1
	for i, name := range monthAbbrev {
		if strings.EqualFold(fields[0], name) {
			month = i + 1
			break
		}
	}
	if month < 0 {
		return 0, false
	}
	day, err := strconv.Atoi(fields[1])
	if err != nil || day < 1 || day > 31 {
		return 0, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil || year < 1970 || year > 9999 {
		return 0, false
	}
	return GregorianToRDN(int16(year), int16(month), int16(day)), true
}

// BuildDateRDN is the RDN of buildDate, resolved once at package init.
// It is zero if buildDate was never set (the common case outside a
// release build pipeline that passes -ldflags -X).
var BuildDateRDN RDN

func init() {
	if rdn, ok := ParseBuildDate(buildDate); ok {
		BuildDateRDN = rdn
	}
}
