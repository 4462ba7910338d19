package posixtz

// GetInfoUTC2Local переводит временную метку tsfrom (секунды эпохи UNIX)
// в информацию о местном времени: смещение и флаг DST. Для зон с
// реальным переходом STD<->DST также выставляет признаки попадания в
// "двойной час" весеннего/осеннего перекрытия.
func GetInfoUTC2Local(ctx *Ctx, tsfrom int64) (Info, bool) {
	tzi := ctx.Zone
	var into Info

	switch {
	case tzi.DstRule.IsZero():
		// нет правила перехода на DST --> круглогодичное STD время
		into.Offs = -int32(tzi.StdOffs) * 60
		into.IsDst = false
	case tzi.StdRule.IsZero():
		// нет правила перехода на STD --> круглогодичное DST время
		into.Offs = -int32(tzi.DstOffs) * 60
		into.IsDst = true
	default:
		ctxUpdate(ctx, tsfrom)

		if ctx.ttDST < ctx.ttSTD {
			// северное полушарие (кроме Ирландии...)
			into.IsDst = tsfrom >= ctx.ttDST && tsfrom < ctx.ttSTD
		} else {
			// южное полушарие (или Ирландия...)
			into.IsDst = tsfrom >= ctx.ttDST || tsfrom < ctx.ttSTD
		}
		offs := tzi.StdOffs
		if into.IsDst {
			offs = tzi.DstOffs
		}
		into.Offs = -int32(offs) * 60

		var ttCrit int64
		var ttDiff int32
		if tzi.StdOffs >= tzi.DstOffs {
			// обычный случай: часы переводятся вперёд на время DST,
			// перекрытие приходится на осень.
			ttCrit = ctx.ttSTD
			ttDiff = int32(tzi.StdOffs-tzi.DstOffs) * 60
		} else {
			// привет Ирландии с отрицательным DST зимой...
			ttCrit = ctx.ttDST
			ttDiff = int32(tzi.DstOffs-tzi.StdOffs) * 60
		}
		into.IsHrA = ttCrit-int64(ttDiff) <= tsfrom && tsfrom < ttCrit
		into.IsHrB = ttCrit <= tsfrom && tsfrom < ttCrit+int64(ttDiff)
	}
	return into, true
}

// GetInfoLocal2UTC переводит местную временную метку tsfrom в информацию,
// нужную для пересчёта в UTC. Если метка попадает в весенний разрыв или
// осеннее перекрытие, неоднозначность разрешается согласно hint; без
// подходящей подсказки функция возвращает false.
func GetInfoLocal2UTC(ctx *Ctx, tsfrom int64, hint Hint) (Info, bool) {
	tzi := ctx.Zone
	var into Info

	switch {
	case tzi.DstRule.IsZero():
		into.Offs = int32(tzi.StdOffs) * 60
		into.IsDst = false
	case tzi.StdRule.IsZero():
		into.Offs = int32(tzi.DstOffs) * 60
		into.IsDst = true
	default:
		ctxUpdate(ctx, tsfrom+int64(tzi.StdOffs)*60)

		ttDstA := ctx.ttDST - int64(tzi.StdOffs)*60
		ttDstB := ctx.ttDST - int64(tzi.DstOffs)*60
		ttStdA := ctx.ttSTD - int64(tzi.DstOffs)*60
		ttStdB := ctx.ttSTD - int64(tzi.StdOffs)*60
		if ttDstA > ttDstB {
			ttDstA, ttDstB = ttDstB, ttDstA
		} else {
			ttStdA, ttStdB = ttStdB, ttStdA
		}

		switch {
		case tsfrom >= ttDstA && tsfrom < ttDstB:
			// провалились в разрыв STD --> DST
			switch hint {
			case HintSTD, HintHrA:
				into.IsDst = false
				into.IsHrA = tzi.DstOffs > tzi.StdOffs
			case HintDST, HintHrB:
				into.IsDst = true
				into.IsHrB = tzi.DstOffs > tzi.StdOffs
			default:
				return Info{}, false
			}
		case tsfrom >= ttStdA && tsfrom < ttStdB:
			// провалились в перекрытие DST --> STD
			switch hint {
			case HintSTD, HintHrB:
				into.IsDst = false
				into.IsHrB = tzi.DstOffs < tzi.StdOffs
			case HintDST, HintHrA:
				into.IsDst = true
				into.IsHrA = tzi.DstOffs < tzi.StdOffs
			default:
				return Info{}, false
			}
		case ctx.ttDST < ctx.ttSTD:
			// северное полушарие: весна в марте
			into.IsDst = tsfrom >= ttDstB && tsfrom < ttStdA
		default:
			// южное полушарие: весна в сентябре
			into.IsDst = tsfrom >= ttDstB || tsfrom < ttStdA
		}
		offs := tzi.StdOffs
		if into.IsDst {
			offs = tzi.DstOffs
		}
		into.Offs = int32(offs) * 60
	}
	return into, true
}

// LocalToUTCNearest — вариант GetInfoLocal2UTC, разрешающий
// неоднозначность по критерию близости к pivot: выбирается та зона,
// которая даёт результат не позже pivot и ближе всего к нему. Подходит,
// когда источник и потребитель временных меток примерно синхронизированы
// по времени. В отличие от GetInfoLocal2UTC, не выставляет IsHrA/IsHrB.
func LocalToUTCNearest(ctx *Ctx, tsfrom, pivot int64) (Info, bool) {
	tzi := ctx.Zone
	var into Info

	switch {
	case tzi.DstRule.IsZero():
		into.Offs = int32(tzi.StdOffs) * 60
		into.IsDst = false
		return into, true
	case tzi.StdRule.IsZero():
		into.Offs = int32(tzi.DstOffs) * 60
		into.IsDst = true
		return into, true
	}

	ctxUpdate(ctx, tsfrom+int64(tzi.StdOffs)*60)

	ttDstA := ctx.ttDST - int64(tzi.StdOffs)*60
	ttDstB := ctx.ttDST - int64(tzi.DstOffs)*60
	ttStdA := ctx.ttSTD - int64(tzi.DstOffs)*60
	ttStdB := ctx.ttSTD - int64(tzi.StdOffs)*60
	if ttDstA > ttDstB {
		ttDstA, ttDstB = ttDstB, ttDstA
	} else {
		ttStdA, ttStdB = ttStdB, ttStdA
	}

	switch {
	case tsfrom >= ttDstA && tsfrom < ttDstB:
		// два кандидата: STD-интерпретация даёт UTC = tsfrom - stdOffs*60,
		// DST-интерпретация даёт UTC = tsfrom - dstOffs*60. Берём ту,
		// что ближе к pivot, но не позже него, если такая есть.
		utcSTD := tsfrom - int64(tzi.StdOffs)*60
		utcDST := tsfrom - int64(tzi.DstOffs)*60
		into.IsDst = nearestNotAfter(pivot, utcSTD, utcDST) == utcDST
	case tsfrom >= ttStdA && tsfrom < ttStdB:
		utcSTD := tsfrom - int64(tzi.StdOffs)*60
		utcDST := tsfrom - int64(tzi.DstOffs)*60
		into.IsDst = nearestNotAfter(pivot, utcSTD, utcDST) == utcDST
	case ctx.ttDST < ctx.ttSTD:
		into.IsDst = tsfrom >= ttDstB && tsfrom < ttStdA
	default:
		into.IsDst = tsfrom >= ttDstB || tsfrom < ttStdA
	}
	offs := tzi.StdOffs
	if into.IsDst {
		offs = tzi.DstOffs
	}
	into.Offs = int32(offs) * 60
	return into, true
}

// nearestNotAfter выбирает из a, b то значение, что не позже pivot и
// ближе к нему; если оба позже pivot (не должно случаться для валидных
// зон, но на всякий случай), возвращает меньшее по расстоянию.
func nearestNotAfter(pivot, a, b int64) int64 {
	da, db := pivot-a, pivot-b
	aOK, bOK := da >= 0, db >= 0
	switch {
	case aOK && bOK:
		if da <= db {
			return a
		}
		return b
	case aOK:
		return a
	case bOK:
		return b
	default:
		if da >= db {
			return a
		}
		return b
	}
}

// AlignedLocalRange выравнивает период period (секунды, 0 < period <=
// 7 дней) по местному времени вокруг tsfrom и возвращает границы [lo, hi)
// в шкале UTC, гарантируя, что tsfrom лежит внутри диапазона даже если
// он пересекает переход STD/DST.
func AlignedLocalRange(ctx *Ctx, tsfrom int64, period, phi int32) (lo, hi int64, info Info, ok bool) {
	if period <= 0 || period > 7*86400 {
		return 0, 0, Info{}, false
	}
	info, ok = GetInfoUTC2Local(ctx, tsfrom)
	if !ok {
		return 0, 0, Info{}, false
	}
	tzi := ctx.Zone

	csoff := int32((tsfrom + int64(info.Offs) + int64(phi)) % int64(period))
	if csoff < 0 {
		csoff += period
	}
	lo = tsfrom - int64(csoff)
	hi = lo + int64(period)

	if !tzi.DstRule.IsZero() && !tzi.StdRule.IsZero() {
		if lo < ctx.ttDST && tsfrom > ctx.ttDST {
			lo = ctx.ttDST
		}
		if lo < ctx.ttSTD && tsfrom > ctx.ttSTD {
			lo = ctx.ttSTD
		}
		if hi > ctx.ttDST && tsfrom < ctx.ttDST {
			hi = ctx.ttDST
		}
		if hi > ctx.ttSTD && tsfrom < ctx.ttSTD {
			hi = ctx.ttSTD
		}
	}
	return lo, hi, info, true
}
