// Package gregorian переводит между RDN и проленптическим григорианским
// календарём: подсчёт високосных дней, деление на века/4-летия и обратное
// восстановление века по двузначному году (Rellez).
package gregorian

import (
	"math"

	"github.com/jnperlin/ucal/internal/calmath"
)

// LeapDaysInYears возвращает число високосных дней, накопленных за ey лет
// (год считается от 0000-03-01, может быть отрицательным).
func LeapDaysInYears(ey int32) int32 {
	m := uint32(0)
	if ey < 0 {
		m = ^uint32(0)
	}
	uy := m ^ uint32(ey)
	uy >>= 2
	ud := uy
	uy /= 25
	ud -= uy
	uy >>= 2
	ud += uy
	return int32(ud ^ m)
}

// DaysToYears разбивает RDN на число лет, прошедших с 0001-01-01, и
// остаток дней в текущем году (0 == 1 января), используя деление
// Granlund-Möller, как это сделано в оригинале для 32-битных регистров.
// Возвращает также признак високосного года.
func DaysToYears(rdn int32) (qr calmath.IU32Div, leap bool) {
	m := uint32(0)
	if rdn <= 0 {
		m = ^uint32(0)
	}
	d := (uint64(int64(rdn)) << (14 + 2)) - (1 << 14)
	qrGM := calmath.DivGM(
		uint32(d>>32)^m, uint32(d)^m,
		0x8eac4000, 0xcb5835e6)
	qc := int32(qrGM.Q ^ m)
	sday := ((qrGM.R >> 14) ^ m) + (146097 & m)

	sday |= 3
	qy := sday / 1461
	sday -= qy * 1461

	leap = (qy&3) == 3 && qy <= uint32(96+int32(qc&3))
	return calmath.IU32Div{Q: qc*100 + int32(qy), R: sday >> 2}, leap
}

// DaysToYearsNative — эквивалент DaysToYears через прямое 64-битное
// floor-деление, без прохода через ядро Granlund-Möller. Используется как
// оракул в тестах и доступен как самостоятельная, более быстрая реализация
// на платформах, где 64-битный регистр доступен без затрат.
func DaysToYearsNative(rdn int32) (qr calmath.IU32Div, leap bool) {
	m := int64(0)
	if rdn <= 0 {
		m = -1
	}
	n := (int64(rdn) << 2) - 1
	q := m ^ ((m ^ n) / 146097)
	sday := uint32(n) - uint32(q)*146097
	qc := int32(q)

	sday |= 3
	qy := sday / 1461
	sday -= qy * 1461

	leap = (qy&3) == 3 && qy <= uint32(96+int32(qc&3))
	return calmath.IU32Div{Q: qc*100 + int32(qy), R: sday >> 2}, leap
}

// RdnToDate переводит RDN в григорианскую календарную дату. Возвращает
// false, если результирующий год выходит за диапазон int16.
func RdnToDate(rdn int32) (calmath.CivilDate, bool) {
	yd, leap := DaysToYears(rdn)
	yd.Q++ // от прошедших лет к календарному году
	if yd.Q < math.MinInt16 || yd.Q > math.MaxInt16 {
		return calmath.CivilDate{}, false
	}
	cd := calmath.CivilDate{
		WDay:  int16(calmath.SubMod7(rdn, 1) + 1),
		Leap:  leap,
		Year:  int16(yd.Q),
		YDay:  int16(yd.R) + 1,
	}
	md := calmath.DaysToMonth(uint16(yd.R), leap)
	cd.Month = int8(md.Q) + 1
	cd.MDay = int8(md.R) + 1
	return cd, true
}

// DateToRdn переводит григорианскую календарную дату в RDN, используя
// сдвинутый (мартовский) календарь.
func DateToRdn(y, m, d int16) int32 {
	em := calmath.MonthsToDays(m)
	ey := int32(y) - 1 + em.Q
	return ey*365 + LeapDaysInYears(ey) + int32(em.R) + int32(d) - 306
}

// YearStart возвращает RDN первого дня года y.
func YearStart(y int16) int32 {
	ey := int32(y) - 1
	return ey*365 + LeapDaysInYears(ey) + 1
}

// Rellez восстанавливает полный год из двузначного года y, месяца m, дня d
// и дня недели w: возвращает первый подходящий год не раньше базового
// года ybase, т.е. из диапазона [ybase, ybase+400).
// Возвращает math.MinInt16 при ошибке (неверный вход или переполнение).
func Rellez(y, m, d, w uint16, ybase int16) int16 {
	y %= 100
	d--
	w %= 7
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

	if y == 99 && m == 11 && d == 28 {
		if w != uint16(calmath.Tuesday)%7 {
			return math.MinInt16
		}
	} else {
		leapIdx := 0
		if (y+1)&3 == 0 {
			leapIdx = 1
		}
		if d >= uint16(calmath.ShiftedMonthDays(int(m)+1, leapIdx == 1)) {
			return math.MinInt16
		}
	}

	d += y + (y >> 2)
	d += (m*83 + 16) >> 5

	c := uint16((((uint32(d) + 7 + uint32(calmath.Wednesday) - uint32(w)) * 0x12493) >> 14) & 7)
	if c >= 4 {
		return math.MinInt16
	}

	if m > 9 {
		y++
		if y >= 100 {
			y -= 100
			c = (c + 1) & 3
		}
	}
	y += c * 100

	qr := calmath.FloorSubDiv(int32(y), int32(ybase), 400)
	yy := uint16(qr.R)
	if yy > uint16(math.MaxInt16)-uint16(ybase) {
		return math.MinInt16
	}
	return ybase + int16(yy)
}

// IsLeapYear сообщает, является ли календарный год y високосным по
// григорианскому правилу (4/100/400).
func IsLeapYear(y int16) bool {
	_, leap := DaysToYears(YearStart(y))
	return leap
}
