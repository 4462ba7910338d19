package ucal

import "github.com/jnperlin/ucal/internal/ntpscale"

// TimeToNTP converts UNIX seconds to the 32-bit NTP seconds-since-1900
// scale.
func TimeToNTP(tt int64) uint32 { return ntpscale.TimeToNtp(tt) }

// NTPToTime unfolds a 32-bit NTP seconds value (undefined era) to UNIX
// seconds closest to pivot. A nil pivot unfolds around a zero base; pass
// an explicit pivot (typically the caller's current time) for the
// expansion the C library performs implicitly via time(NULL) — this
// package never reads the wall clock itself.
func NTPToTime(secs uint32, pivot *int64) int64 { return ntpscale.NtpToTime(secs, pivot) }
