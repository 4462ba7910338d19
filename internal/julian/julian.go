// Package julian переводит между RDN и проленптическим юлианским
// календарём: простое деление на 4, без особых случаев для столетий.
package julian

import (
	"math"

	"github.com/jnperlin/ucal/internal/calmath"
)

// LeapDaysInYears возвращает число високосных дней за ey лет — в юлианском
// календаре это просто floor-деление на 4.
func LeapDaysInYears(ey int32) int32 {
	return calmath.ASR32(ey, 2)
}

// DaysToYears разбивает RDN на прошедшие годы и остаток дней в текущем
// году (юлианский календарь), используя Granlund-Möller деление, как и
// оригинал для 32-битных регистров. Возвращает также признак
// високосного года.
func DaysToYears(rdn int32) (qr calmath.IU32Div, leap bool) {
	m := uint32(0)
	if rdn < -1 {
		m = ^uint32(0)
	}
	d := (uint64(int64(rdn)) << (21 + 2)) + (7 << 21)
	qrGM := calmath.DivGM(
		uint32(d>>32)^m, uint32(d)^m,
		0xb6a00000, 0x66db072f)
	qy := int32(qrGM.Q ^ m)
	sday := ((qrGM.R >> 21) ^ m) + (1461 & m)

	leap = (qy & 3) == 3
	return calmath.IU32Div{Q: qy, R: sday >> 2}, leap
}

// DaysToYearsNative — эквивалент DaysToYears через прямое 64-битное
// floor-деление, используемое как оракул в тестах.
func DaysToYearsNative(rdn int32) (qr calmath.IU32Div, leap bool) {
	m := int64(0)
	if rdn < -1 {
		m = -1
	}
	n := (int64(rdn) << 2) + 7
	q := m ^ ((m ^ n) / 1461)
	sday := uint32(n) - uint32(q)*1461
	qy := int32(q)

	leap = (qy & 3) == 3
	return calmath.IU32Div{Q: qy, R: sday >> 2}, leap
}

// RdnToDate переводит RDN в юлианскую календарную дату.
func RdnToDate(rdn int32) (calmath.CivilDate, bool) {
	yd, leap := DaysToYears(rdn)
	yd.Q++
	if yd.Q < math.MinInt16 || yd.Q > math.MaxInt16 {
		return calmath.CivilDate{}, false
	}
	cd := calmath.CivilDate{
		WDay: int16(calmath.SubMod7(rdn, 1) + 1),
		Leap: leap,
		Year: int16(yd.Q),
		YDay: int16(yd.R) + 1,
	}
	md := calmath.DaysToMonth(uint16(yd.R), leap)
	cd.Month = int8(md.Q) + 1
	cd.MDay = int8(md.R) + 1
	return cd, true
}

// DateToRdn переводит юлианскую календарную дату в RDN, используя
// сдвинутый (мартовский) календарь.
func DateToRdn(y, m, d int16) int32 {
	em := calmath.MonthsToDays(m)
	ey := int32(y) - 1 + em.Q
	return ey*365 + LeapDaysInYears(ey) + int32(em.R) + int32(d) - 308
}

// YearStart возвращает RDN первого дня юлианского года y.
func YearStart(y int16) int32 {
	ey := int32(y) - 1
	return ey*365 + LeapDaysInYears(ey) + 1
}

// Rellez восстанавливает полный юлианский год из двузначного года,
// месяца, дня и дня недели: возвращает первый подходящий год не раньше
// ybase, т.е. из диапазона [ybase, ybase+700) (цикл длиной 700 лет, НОК
// 100 лет и 7 дней недели).
func Rellez(y, m, d, w uint16, ybase int16) int16 {
	y %= 100
	w %= 7
	d--
	if m < 1 || m > 12 || d > 32 {
		return math.MinInt16
	}

	m += 9
	if m >= 12 {
		m -= 12
	} else {
		y--
		if y > 100 {
			y += 100
		}
	}

	leapIdx := 0
	if (y+1)&3 == 0 {
		leapIdx = 1
	}
	if d >= uint16(calmath.ShiftedMonthDays(int(m)+1, leapIdx == 1)) {
		return math.MinInt16
	}

	d += y + (y >> 2)
	d += (m*83 + 16) >> 5

	c := (d + 7 + uint16(calmath.Monday) - w) % 7

	if m > 9 {
		y++
		if y >= 100 {
			y -= 100
			c = (c + 1) % 7
		}
	}
	y += c * 100

	qr := calmath.FloorSubDiv(int32(y), int32(ybase), 700)
	yy := uint16(qr.R)
	if yy > uint16(math.MaxInt16)-uint16(ybase) {
		return math.MinInt16
	}
	return ybase + int16(yy)
}

// IsLeapYear сообщает, является ли юлианский год y високосным (кратен 4).
func IsLeapYear(y int16) bool {
	_, leap := DaysToYears(YearStart(y))
	return leap
}
