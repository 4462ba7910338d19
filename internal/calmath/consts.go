// Package calmath содержит арифметические примитивы calendar-math:
// floor-деление, свёртку по модулю 7, деление Granlund-Möller, сдвиги
// дня недели и разбор/склейку времени суток. Все остальные пакеты
// (gregorian, julian, isoweek, ntpscale, gpsscale, posixtz) строятся
// поверх этого.
package calmath

// RDN — Rata Die Number: число дней, прошедших с 0001-01-01 проленптического
// григорианского календаря (RDN==1 в этот день). Общий знаменатель для всех
// календарных представлений в этом модуле.
type RDN = int32

// Опорные точки разных шкал времени, выраженные в RDN (см. calconst.h
// оригинальной библиотеки).
const (
	RDNNtp  RDN = 693596 // 1900-01-01, начало эпохи NTP
	RDNUnix RDN = 719163 // 1970-01-01, начало эпохи UNIX
	RDNGps  RDN = 722820 // 1980-01-06, начало эпохи GPS (воскресенье)
)

// PhiGps — фаза начала эпохи GPS в днях, (RDNGps-1) mod (7*1024),
// используемая при разворачивании 10-битного номера недели GPS в RDN.
const PhiGps = 6019

// Фазы шкал NTP и GPS относительно секунд UNIX-эпохи по модулю 2^32
// (NTP) и по модулю длины цикла GPS в секундах (GPS); используются в
// ntpscale и gpsscale.
const (
	SysPhiNtp = 0x7c558180
	SysPhiGps = 0x12d53d80
)

// SecsPerDay — число секунд в сутках без учёта високосных секунд.
const SecsPerDay = 86400

// WeekDay — день недели, 0 соответствует воскресенью, как ucal_WeekDayT.
type WeekDay = int32

const (
	Sunday WeekDay = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)
