package posixtz

import (
	"github.com/jnperlin/ucal/internal/calmath"
	"github.com/jnperlin/ucal/internal/gregorian"
)

const epochYear = 1970

func intMin(a, b int32) int32 {
	if a <= b {
		return a
	}
	return b
}

func intMax(a, b int32) int32 {
	if a <= b {
		return b
	}
	return a
}

// dm2s переводит пару (дни, минуты) в секунды эпохи UNIX.
func dm2s(days int32, mins int32) int64 {
	return 60 * (int64(days)*1440 + int64(mins))
}

// evalRule вычисляет RDN дня, в который правило rule срабатывает в году
// year.
func evalRule(rule Rule, year int16) int32 {
	var rdn int32
	if rule.WDay != 0 {
		if rule.MDMW == 5 {
			rdn = gregorian.DateToRdn(year, int16(rule.Month+1), 0)
			rdn = calmath.WdLE(rdn, int32(rule.WDay))
		} else {
			rdn = gregorian.DateToRdn(year, int16(rule.Month), 1)
			rdn = calmath.WdGE(rdn, int32(rule.WDay))
			rdn += int32(rule.MDMW-1) * 7
		}
	} else {
		rdn = gregorian.DateToRdn(year, int16(rule.Month), int16(rule.MDMW))
	}
	return rdn
}

// ctxUpdate (пере)вычисляет границы и моменты перехода для года,
// которому принадлежит tsfrom, если закешированный диапазон не
// накрывает запрошенную метку времени (с запасом в одни сутки на
// обоих концах).
func ctxUpdate(ctx *Ctx, tsfrom int64) {
	if ctx.trLoBound < ctx.trHiBound &&
		tsfrom >= ctx.trLoBound-86400 && tsfrom < ctx.trHiBound+86400 {
		return
	}
	tzi := ctx.Zone

	year := int(tsfrom / 31556952)
	if tsfrom < int64(year)*31556952 {
		year--
	}
	year += epochYear

	ystart := gregorian.YearStart(int16(year)) - calmath.RDNUnix
	ysnext := gregorian.YearStart(int16(year+1)) - calmath.RDNUnix
	dayDST := evalRule(tzi.DstRule, int16(year)) - calmath.RDNUnix
	daySTD := evalRule(tzi.StdRule, int16(year)) - calmath.RDNUnix

	ctx.trLoBound = dm2s(ystart, int32(intMin(int32(tzi.StdOffs), int32(tzi.DstOffs))))
	ctx.trHiBound = dm2s(ysnext, int32(intMax(int32(tzi.StdOffs), int32(tzi.DstOffs))))
	ctx.ttDST = dm2s(dayDST, int32(tzi.DstRule.TTLoc)+int32(tzi.StdOffs))
	ctx.ttSTD = dm2s(daySTD, int32(tzi.StdRule.TTLoc)+int32(tzi.DstOffs))
}
