package calmath

// DayTimeSplit прибавляет смещение ofs ко времени суток dt и раскладывает
// результат на часы/минуты/секунды, возвращая избыточные сутки (dt и ofs
// оба могут выходить за пределы одних суток).
func DayTimeSplit(dt, ofs int32) (CivilTime, int32) {
	qr := FloorSubDiv(dt, -ofs, SecsPerDay)

	m := qr.R / 60
	h := m / 60

	ct := CivilTime{
		Sec:  int8(qr.R - m*60),
		Min:  int8(m - h*60),
		Hour: int8(h),
	}
	return ct, qr.Q
}

// DayTimeMerge сворачивает часы/минуты/секунды в секунды (схема Горнера).
// Аргументы могут выходить за пределы обычного диапазона.
func DayTimeMerge(h, m, s int16) int32 {
	return (int32(h)*60+int32(m))*60 + int32(s)
}
