// Package posixtz разбирает строки часовых поясов в формате POSIX TZ
// (с расширениями GNU) и вычисляет переходы между летним и зимним
// временем для произвольной временной метки.
package posixtz

// Rule — правило перехода в формате POSIX TZ, уже разобранное из текста.
//
// Для правил типа Jn/n (без дня недели) WDay == 0, а MDMW хранит день
// месяца обычного календаря (Month 1..12, январь == 1); правило вида n
// хранится как Month 1 и MDMW = n+1. Для правил типа 'M' (Mm.w.d) MDMW хранит
// номер недели месяца (1..5, где 5 означает "последнее вхождение").
type Rule struct {
	Month int   // 1..12
	MDMW  int   // день месяца (тип J/n) или неделя месяца (тип M), 1..5/365
	WDay  int   // 0 (не используется) либо 1..7, понедельник == 1
	TTLoc int16 // время перехода, минуты от полуночи по местному времени
}

// IsZero сообщает, что правило не задано (используется как признак
// "переход отсутствует", т.е. часовой пояс не имеет перехода на DST или
// обратно).
func (r Rule) IsZero() bool { return r.Month == 0 }

// Zone — описание часового пояса: имена, смещения STD/DST и правила
// перехода.
type Zone struct {
	StdName string
	DstName string

	StdOffs int16 // смещение (UTC - STD) в минутах; отрицательное к востоку от Гринвича
	DstOffs int16 // смещение (UTC - DST) в минутах

	DstRule Rule // когда начинается летнее время (обычно весна)
	StdRule Rule // когда летнее время заканчивается (обычно осень, кроме Ирландии)
}

// HasDST сообщает, есть ли в зоне переход на летнее время вообще.
func (z Zone) HasDST() bool { return !z.DstRule.IsZero() }

// Ctx — контекст пересчёта времени для одного часового пояса. Кеширует
// границы перехода для текущего года (с запасом около суток на обоих
// концах), чтобы не пересчитывать календарные формулы на каждый вызов.
type Ctx struct {
	Zone *Zone

	trLoBound int64
	trHiBound int64
	ttDST     int64 // переход STD --> DST
	ttSTD     int64 // переход DST --> STD
}

// NewCtx создаёт пустой контекст пересчёта для зоны z.
func NewCtx(z *Zone) *Ctx {
	return &Ctx{Zone: z}
}

// Info — результат пересчёта одной временной метки: смещение, флаг DST и
// признаки попадания в "двойной час" весеннего/осеннего перехода.
type Info struct {
	IsDst bool  // время приходится на летний период
	IsHrA bool  // время попадает в перекрытие ДО перехода
	IsHrB bool  // время попадает в перекрытие ПОСЛЕ перехода
	Offs  int32 // смещение в секундах; знак зависит от направления (к/от UTC)
}

// Hint подсказывает, как разрешать неоднозначность при переводе местного
// времени в UTC (местное время может быть неоднозначным на стыке
// весеннего разрыва/осеннего перекрытия).
type Hint int

const (
	HintNone Hint = iota // перевод UTC -> местное; неоднозначности нет
	HintSTD              // местное -> UTC, разрешать в пользу зимнего времени
	HintDST              // местное -> UTC, разрешать в пользу летнего времени
	HintHrA               // местное -> UTC, разрешать в пользу зоны ДО перехода
	HintHrB               // местное -> UTC, разрешать в пользу зоны ПОСЛЕ перехода
)
