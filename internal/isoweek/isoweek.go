// Package isoweek переводит между RDN и недельным календарём ISO-8601,
// используя интерполяцию по смещению столетия вместо полного перебора.
package isoweek

import (
	"math"

	"github.com/jnperlin/ucal/internal/calmath"
)

// ccofsY2W и ccofsW2Y — смещения интерполяции год<->неделя для столетия cc
// (0..3), полученные перенумерацией цикла столетий и линейным уравнением
// (см. оригинал: коэффициенты подобраны методом наименьших квадратов).
func ccofsY2W(cc uint32) uint32 {
	cc = (1 - cc) & 3
	cc = (cc << 1) - (cc >> 1)
	return 157 + cc*146
}

func ccofsW2Y(cc uint32) uint32 {
	cc = (2 + cc) & 3
	cc = (cc << 1) - (cc >> 1)
	return 18 + cc*22
}

// weeksInYears возвращает число недель, прошедших с начала эры, для years
// прошедших (ISO) лет — как 64-битное значение, до применения насыщения.
func weeksInYears(years int32) int64 {
	s100 := calmath.FloorDiv(years, 100)
	return int64(s100.Q)*5218 -
		int64(calmath.ASR32(s100.Q+2, 2)) +
		int64((s100.R*53431+ccofsY2W(uint32(s100.Q)))>>10)
}

// WeeksInYears возвращает число недель, прошедших с начала эры, для years
// прошедших (ISO) лет. Насыщается до math.MaxInt32 при переполнении.
func WeeksInYears(years int32) int32 {
	w := weeksInYears(years)
	if w > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(w)
}

// YearStart возвращает RDN понедельника первой недели ISO-года y.
func YearStart(y int16) int32 {
	return WeeksInYears(int32(y)-1)*7 + 1
}

// SplitEraWeeks разбивает число недель, прошедших с начала эры, на число
// прошедших ISO-лет (Q) и остаток недель в текущем году (R).
func SplitEraWeeks(weeks int32) calmath.IU32Div {
	m := uint32(0)
	if weeks < 0 {
		m = ^uint32(0)
	}
	d := (uint64(int64(weeks)) << (17 + 2)) + (2 << 17)
	qr := calmath.DivGM(
		uint32(d>>32)^m, uint32(d)^m,
		0xa30e0000, 0x91ed2f29)
	q := qr.Q ^ m
	sw := ((qr.R >> 17) ^ m) + (20871 & m)

	cc := int32(q)

	sw = (sw>>2)*157 + ccofsW2Y(q)
	cy := sw >> 13
	sw &= 8191

	return calmath.IU32Div{Q: 100*cc + int32(cy), R: uint32(uint16(sw)) / 157}
}

// SplitEraWeeksNative — эквивалент SplitEraWeeks через прямое 64-битное
// floor-деление, используемое как оракул в тестах.
func SplitEraWeeksNative(weeks int32) calmath.IU32Div {
	m := int64(0)
	if weeks < 0 {
		m = -1
	}
	n := (int64(weeks) << 2) | 2
	q := uint32(m ^ ((m ^ n) / 20871))
	sw := uint32(n) - q*20871

	cc := int32(q)

	sw = (sw>>2)*157 + ccofsW2Y(q)
	cy := sw >> 13
	sw &= 8191

	return calmath.IU32Div{Q: 100*cc + int32(cy), R: uint32(uint16(sw)) / 157}
}

// DateToRdn переводит дату недельного календаря (год y, неделя w, день
// недели d, 1..7) в RDN.
func DateToRdn(y, w, d int16) int32 {
	return (WeeksInYears(int32(y)-1)+int32(w)-1)*7 + int32(d)
}

// RdnToDate переводит RDN в дату недельного календаря ISO-8601. Возвращает
// false при переполнении диапазона int16 для года.
func RdnToDate(rdn int32) (calmath.WeekDate, bool) {
	qr := calmath.FloorSubDiv(rdn, 1, 7)
	wd := calmath.WeekDate{WDay: int8(qr.R) + 1}

	yr := SplitEraWeeks(qr.Q)
	wd.Week = int8(yr.R) + 1

	if yr.Q >= math.MaxInt16 {
		wd.Year = math.MaxInt16
		return wd, false
	}
	if yr.Q < math.MinInt16-1 {
		wd.Year = math.MinInt16
		return wd, false
	}
	wd.Year = int16(yr.Q) + 1
	return wd, true
}
