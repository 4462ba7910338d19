package posixtz

import (
	"github.com/jnperlin/ucal/internal/calmath"
)

// cursor — разбор строки TZ посимвольно, аналог пары указателей head/tail
// из оригинала.
type cursor struct {
	s   string
	pos int
}

const eof = -1

func (c *cursor) peek() int {
	if c.pos >= len(c.s) {
		return eof
	}
	return int(c.s[c.pos])
}

func (c *cursor) parseChar(xch int) bool {
	if c.pos >= len(c.s) {
		return xch == eof
	}
	if int(c.s[c.pos]) == xch {
		c.pos++
		return true
	}
	return false
}

func isUpper(b int) bool { return b >= 'A' && b <= 'Z' }
func isDigit(b int) bool { return b >= '0' && b <= '9' }

// parseName разбирает имя зоны, либо в формате ЗАГЛАВНЫЕ-БУКВЫ, либо в
// кавычках <...>.
func (c *cursor) parseName() (string, bool) {
	if c.pos >= len(c.s) {
		return "", false
	}
	xch := c.peek()
	if xch == '<' {
		start := c.pos + 1
		head := start
		for head < len(c.s) && c.s[head] != '>' {
			if c.s[head] == '<' {
				break
			}
			head++
		}
		ok := head < len(c.s) && c.s[head] == '>'
		name := c.s[start:head]
		if ok {
			c.pos = head + 1
		}
		return name, ok
	}
	if isUpper(xch) {
		start := c.pos
		head := start
		for head < len(c.s) && isUpper(int(c.s[head])) {
			head++
		}
		c.pos = head
		name := c.s[start:head]
		return name, len(name) >= 3
	}
	return "", false
}

// parseOptSign разбирает необязательный знак +/- (по умолчанию +).
func (c *cursor) parseOptSign() bool {
	neg := false
	switch c.peek() {
	case '-':
		neg = true
		c.pos++
	case '+':
		c.pos++
	}
	return neg
}

// parseNum разбирает беззнаковое число, останавливаясь, когда накопленное
// значение достигнет/превысит 100 (так что максимум можно получить 999),
// либо на первом не-цифровом символе. Отказ, если не было разобрано ни
// одной цифры.
func (c *cursor) parseNum() (int, bool) {
	ok := false
	tmp := 0
	for tmp < 100 && isDigit(c.peek()) {
		tmp = 10*tmp + (c.peek() - '0')
		c.pos++
		ok = true
	}
	return tmp, ok
}

// parseTime разбирает время h[:m[:s]] со знаком, используемое и для
// смещений зоны (в пределах суток), и для времени перехода правила
// (в пределах недели). Секунды, если заданы, обязаны быть нулевыми.
func (c *cursor) parseTime(isRuleTime bool) (int16, bool) {
	neg := c.parseOptSign()
	var hms [3]int
	idx := 0
	ok := false
	for {
		v, got := c.parseNum()
		if !got {
			ok = false
			break
		}
		hms[idx] = v
		ok = true
		idx++
		if idx >= 3 || !c.parseChar(':') {
			break
		}
	}
	if !ok {
		return 0, false
	}
	limit := 24
	if isRuleTime {
		limit = 168
	}
	if !(hms[0] < limit && hms[1] < 60 && hms[2] == 0) {
		return 0, false
	}
	val := int16(60*hms[0] + hms[1])
	if neg {
		val = -val
	}
	return val, true
}

// parseRule разбирает одно правило перехода — любой из трёх видов,
// описанных POSIX: Mm.w.d, Jn или голое n.
func (c *cursor) parseRule() (Rule, bool) {
	var r Rule
	ok := false
	switch c.peek() {
	case 'M':
		c.pos++
		var m, w, d int
		var gm, gw, gd bool
		m, gm = c.parseNum()
		ok = gm && c.parseChar('.')
		if ok {
			w, gw = c.parseNum()
			ok = gw && c.parseChar('.')
		}
		if ok {
			d, gd = c.parseNum()
			ok = gd
		}
		ok = ok && m >= 1 && m <= 12 && w >= 1 && w <= 5 && d <= 7
		if ok {
			r.Month = m
			r.MDMW = w
			r.WDay = ((d+6)%7 + 1)
		}
	case 'J':
		c.pos++
		if isDigit(c.peek()) {
			n, got := c.parseNum()
			if got && n >= 1 && n <= 365 {
				yd := calmath.DaysToMonth(uint16(n-1), false)
				r.Month = int(yd.Q) + 1
				r.MDMW = int(yd.R) + 1
				r.WDay = 0
				ok = true
			}
		}
	default:
		if isDigit(c.peek()) {
			n, got := c.parseNum()
			if got && n <= 365 {
				r.Month = 1
				r.MDMW = n + 1
				r.WDay = 0
				ok = true
			}
		}
	}
	if ok && c.parseChar('/') {
		tt, got := c.parseTime(true)
		if !got {
			return r, false
		}
		r.TTLoc = tt
	} else {
		r.TTLoc = 120
	}
	return r, ok
}

// defaultRules — правила США по умолчанию, используемые если строка TZ
// не содержит явных правил, но описывает две зоны (STD/DST).
var defaultRules = [2]Rule{
	{Month: 3, MDMW: 2, WDay: 7, TTLoc: 120},  // 2-е воскресенье марта, 02:00 местного
	{Month: 11, MDMW: 1, WDay: 7, TTLoc: 120}, // 1-е воскресенье ноября, 02:00 местного
}

// ParseZone разбирает строку TZ в формате POSIX (с расширениями GNU).
// Возвращает разобранную зону и остаток строки, который не был
// потреблён разбором (некоторые компоненты опциональны, и разбор может
// завершиться раньше конца строки).
func ParseZone(spec string) (Zone, string, bool) {
	var z Zone
	c := &cursor{s: spec}

	ok := false
	if name, got := c.parseName(); got {
		z.StdName = name
		if off, got := c.parseTime(false); got {
			z.StdOffs = off
			ok = true
		}
	}
	if !ok {
		return Zone{}, spec, false
	}

	if name, got := c.parseName(); got {
		z.DstName = name

		z.DstRule = defaultRules[0]
		z.StdRule = defaultRules[1]

		save := c.pos
		if off, got := c.parseTime(false); got {
			z.DstOffs = off
		} else {
			c.pos = save
			z.DstOffs = z.StdOffs - 60
		}

		if c.peek() == ',' {
			ok = c.parseChar(',')
			var r Rule
			if ok {
				r, ok = c.parseRule()
			}
			if ok {
				z.DstRule = r
			}
			ok = ok && c.parseChar(',')
			if ok {
				r, ok = c.parseRule()
			}
			if ok {
				z.StdRule = r
			}
		}

		if ok && z.DstRule.Month == 1 && z.DstRule.MDMW == 1 &&
			z.DstRule.WDay == 0 && z.DstRule.TTLoc == 0 {
			z.StdRule = Rule{}
		}
	}

	if !ok {
		return Zone{}, spec, false
	}
	return z, c.s[c.pos:], true
}
