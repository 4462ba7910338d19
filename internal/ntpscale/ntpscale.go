// Package ntpscale переводит между 32-битной шкалой секунд NTP (с 1900 года,
// без явной эры) и секундами UNIX-эпохи.
package ntpscale

import "github.com/jnperlin/ucal/internal/calmath"

// TimeToNtp переводит unix-секунды tt в 32-битное значение шкалы NTP.
func TimeToNtp(tt int64) uint32 {
	return uint32(tt) - uint32(calmath.SysPhiNtp)
}

// NtpToTime разворачивает 32-битное значение secs шкалы NTP (неизвестная
// эра) в unix-секунды, ближайшие к pivot (если pivot == nil, разворот
// ведётся вокруг нулевой базы). Развёрнутое значение всегда лежит в
// диапазоне [tbase, tbase+2^32).
func NtpToTime(secs uint32, pivot *int64) int64 {
	var tbase int64
	if pivot != nil {
		tbase = *pivot
	}
	if tbase > 0x7fffffff {
		tbase -= 0x80000000
	} else {
		tbase = 0
	}

	secs += uint32(calmath.SysPhiNtp)
	secs -= uint32(tbase)
	return tbase + int64(secs)
}
