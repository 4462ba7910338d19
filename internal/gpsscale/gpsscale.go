// Package gpsscale разворачивает 10-битный номер недели и время-в-неделе
// GPS/GNSS в RDN и unix-секунды, включая восстановление полного года из
// двузначного года приёмника.
package gpsscale

import (
	"math"

	"github.com/jnperlin/ucal/internal/calmath"
	"github.com/jnperlin/ucal/internal/gregorian"
)

// RawTime — необработанное время GPS: номер недели (10 бит) и время в
// неделе в секундах (20 бит).
type RawTime struct {
	Week uint16 // 0..1023, номер недели в эре GPS
	TOW  uint32 // время в неделе, секунды
}

const (
	weekCycle = 604800        // секунд в неделе
	fullCycle = 604800 * 1024 // секунд в полном цикле GPS (1024 недели)
)

// MapTime переводит unix-время tt и поправку на leap-секунды ls в
// необработанное время GPS.
func MapTime(tt int64, ls int16) RawTime {
	secs := int32(uint32(tt) % (1024 * 604800))
	secs -= int32(calmath.SysPhiGps)
	secs += int32(ls)
	qr := calmath.FloorDiv(secs, weekCycle)
	return RawTime{Week: uint16(qr.Q & 1023), TOW: qr.R}
}

// MapRaw1 переводит необработанное время GPS (w, t) с поправкой на leap
// секунды ls в RDN: возвращает первое вхождение не раньше baseRdn (baseRdn
// раньше начала эпохи GPS заменяется началом эпохи).
func MapRaw1(w uint16, t uint32, ls int16, baseRdn int32) calmath.IU32Div {
	dt := calmath.FloorSubDiv(int32(t), int32(ls), 86400)

	days := int32(w&1023)*7 + dt.Q + calmath.PhiGps

	if baseRdn < calmath.RDNGps {
		baseRdn = calmath.RDNGps
	}

	qr := calmath.FloorSubDiv(days+1, baseRdn, 7*1024)
	days = int32(qr.R)

	if uint32(days) > uint32(math.MaxInt32)-uint32(baseRdn) {
		dt.Q = math.MaxInt32
	} else {
		dt.Q = baseRdn + days
	}
	return dt
}

// MapRaw2 переводит необработанное время GPS (w, t) с поправкой на leap
// секунды ls в unix-секунды из диапазона [base, base+1024 недели) (если
// base == nil или раньше начала эпохи GPS, вместо него берётся начало
// эпохи GPS).
func MapRaw2(w uint16, t uint32, ls int16, base *int64) int64 {
	secs := int32(w&1023)*weekCycle + int32(t) - int32(ls) + int32(calmath.SysPhiGps)

	var tbase int64
	if base != nil {
		tbase = *base
	} else {
		tbase = int64(calmath.SysPhiGps)
	}
	if tbase < int64(calmath.SysPhiGps) {
		tbase = int64(calmath.SysPhiGps)
	}

	r := int64(secs) - tbase
	m := int64(0)
	if r < 0 {
		m = -1
	}
	q := m ^ ((m ^ r) / fullCycle)
	secs = int32(r - q*fullCycle)

	return tbase + int64(secs)
}

// RemapRdn сворачивает RDN в диапазон, ближайший к baseRdn, с периодом в
// одну эру GPS (1024 недели).
func RemapRdn(rdn, baseRdn int32) int32 {
	qr := calmath.FloorSubDiv(rdn, baseRdn, 1024*7)
	if qr.R > 512*7 {
		back := int32(1024*7 - qr.R)
		if baseRdn < math.MinInt32+back {
			return math.MinInt32
		}
		return baseRdn - back
	}
	if uint32(math.MaxInt32)-uint32(baseRdn) < qr.R {
		return math.MaxInt32
	}
	return baseRdn + int32(qr.R)
}

// FullYear восстанавливает полный год из двузначного (или уже полного)
// года y приёмника GPS, месяца m, дня d и, если известен, дня недели wd
// (wd < 0 означает "неизвестен"). Если день недели известен, сначала
// пробуется обратное преобразование Цел(л)ера (Rellez) вокруг 1980 года;
// иначе используется фиксированное отображение в диапазон 1980..2079.
func FullYear(y int16, m, d, wd int8) int16 {
	if y >= 1980 {
		return y
	}
	yy := int16(calmath.FloorDiv(int32(y), 100).R)
	if wd >= 0 {
		z := gregorian.Rellez(uint16(yy), uint16(m), uint16(d), uint16(wd), 1980)
		if z >= 1980 {
			return z
		}
	}
	if yy >= 80 {
		return yy + 1900
	}
	return yy + 2000
}

// DateUnfold комбинирует FullYear, gregorian.DateToRdn и RemapRdn, чтобы
// перевести дату GPS-приёмника (возможно, с усечённым годом) в RDN,
// ближайший к baseday.
func DateUnfold(y int16, m, d, wd int8, baseday int32) int32 {
	full := FullYear(y, m, d, wd)
	rdn := gregorian.DateToRdn(full, int16(m), int16(d))
	return RemapRdn(rdn, baseday)
}
