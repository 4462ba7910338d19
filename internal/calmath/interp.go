package calmath

// monthDays — длины месяцев, обычный год / високосный, нулевая индексация
// (JAN..DEC). Используется только для валидации.
var monthDays = [2][12]uint8{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

// shiftedMonthDays — длины месяцев календаря, сдвинутого на март
// (MAR..FEB), нулевая индексация. Используется только для валидации.
var shiftedMonthDays = [2][12]uint8{
	{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28},
	{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 29},
}

// MonthDays возвращает длину месяца m (1..12) с учётом високосности.
func MonthDays(m int, leap bool) uint8 {
	i := 0
	if leap {
		i = 1
	}
	return monthDays[i][m-1]
}

// ShiftedMonthDays возвращает длину месяца m (1..12, считая от марта) для
// сдвинутого календаря, с учётом високосности.
func ShiftedMonthDays(m int, leap bool) uint8 {
	i := 0
	if leap {
		i = 1
	}
	return shiftedMonthDays[i][m-1]
}

// DaysToMonth разбивает число дней, прошедших с начала года (ed), на число
// прошедших месяцев и остаток дней внутри месяца. Работает с НЕсдвинутым
// календарём и поэтому нуждается в признаке високосного года.
func DaysToMonth(ed uint16, isLY bool) IU32Div {
	skipdays := uint16(1)
	if !isLY {
		skipdays = 2
	}
	if ed >= 61-skipdays {
		ed += skipdays
	}
	m := (uint32(ed)*67 + 32) >> 11
	ed -= uint16((m*489 + 8) >> 4)
	return IU32Div{Q: int32(m), R: uint32(ed)}
}

// MonthsToDays переводит календарный месяц (может быть вне диапазона
// 1..12) в число прошедших лет (результат сдвига нормализации, может быть
// отрицательным) и накопленные дни в текущем году СДВИНУТОГО календаря,
// начинающегося с марта.
func MonthsToDays(m int16) IU32Div {
	em := int32(m) + 9
	mm := uint32(0)
	if em < 0 {
		mm = ^uint32(0)
	}
	qm := mm ^ ((mm ^ uint32(em)) / 12)
	em -= int32(qm) * 12
	return IU32Div{Q: int32(qm), R: (979*uint32(em) + 16) >> 5}
}
