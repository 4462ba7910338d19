package ntpscale

import (
	"testing"

	"github.com/jnperlin/ucal/internal/calmath"
)

func TestScenarioS5(t *testing.T) {
	// S5: NtpToTime((RDN(1970,1,1)-RDN(1900,1,1))*86400, &{0}) returns 0;
	// TimeToNtp(0) is the NTP seconds count of the UNIX epoch, i.e.
	// -phi_NTP mod 2^32 (0x83AA7E80).
	days := int64(calmath.RDNUnix - calmath.RDNNtp)
	pivot := int64(0)
	got := NtpToTime(uint32(days*calmath.SecsPerDay), &pivot)
	if got != 0 {
		t.Fatalf("NtpToTime(days-to-unix-epoch, &0) = %d, want 0", got)
	}
	if got := TimeToNtp(0); got != uint32(days*calmath.SecsPerDay) {
		t.Fatalf("TimeToNtp(0) = 0x%x, want 0x%x", got, uint32(days*calmath.SecsPerDay))
	}
}

func TestRoundTripNtp(t *testing.T) {
	// Invariant 10: TimeToNtp(NtpToTime(s, &pivot)) == s whenever pivot
	// lies within 2^31 seconds of the logical era of s.
	pivots := []int64{0, 1_000_000_000, 2_000_000_000, 2_147_483_647, 3_000_000_000, 4_100_000_000}
	for _, pivot := range pivots {
		p := pivot
		for _, s := range []uint32{0, 1, 0x7fffffff, 0x80000000, 0xffffffff} {
			unix := NtpToTime(s, &p)
			got := TimeToNtp(unix)
			if got != s {
				t.Fatalf("pivot=%d secs=%d: round trip got %d", pivot, s, got)
			}
		}
	}
}

func TestNilPivotDefaultsToZeroBase(t *testing.T) {
	// Documented deviation from the C original's time(NULL) fallback:
	// a nil pivot unfolds around base zero, never the wall clock.
	got := NtpToTime(0, nil)
	if got < 0 || got >= int64(1)<<32 {
		t.Fatalf("NtpToTime(0, nil) = %d, want a value in [0, 2^32)", got)
	}
}
