package calmath

import "math"

// ASR32/ASR64 — арифметический сдвиг вправо. Go гарантирует, что `>>` на
// знаковых целых всегда арифметический (в отличие от C, где это зависит от
// реализации), так что отдельная branch-free эмуляция здесь не нужна — это
// единственное место, где учтённая в оригинале развилка MACHINE_ASR сведена
// к тождественной функции.
func ASR32(v int32, s uint) int32 { return v >> s }
func ASR64(v int64, s uint) int64 { return v >> s }

// Mod7 — математический (floor) остаток от деления на 7, определён и для
// отрицательных x.
func Mod7(x int32) int32 {
	xred := uint32(7<<17) + uint32(x&0x7FFF) + uint32(ASR32(x, 15))
	return int32(xred % 7)
}

// AddMod7 — (a + b) mod 7 по floor-правилу.
func AddMod7(a, b int32) int32 {
	xred := uint32(7<<17) +
		uint32(a&0x7FFF) + uint32(ASR32(a, 15)) +
		uint32(b&0x7FFF) + uint32(ASR32(b, 15))
	return int32(xred % 7)
}

// SubMod7 — (a - b) mod 7 по floor-правилу.
func SubMod7(a, b int32) int32 {
	xred := uint32(7<<17) +
		uint32(a&0x7FFF) + uint32(ASR32(a, 15)) -
		uint32(b&0x7FFF) - uint32(ASR32(b, 15))
	return int32(xred % 7)
}

func checkedAdd(rdn RDN, shift uint32) RDN {
	avail := uint32(math.MaxInt32) - uint32(rdn)
	if shift > avail {
		return math.MaxInt32
	}
	return rdn + int32(shift)
}

func checkedSub(rdn RDN, shift uint32) RDN {
	minInt32 := int32(math.MinInt32)
	avail := uint32(rdn) - uint32(minInt32)
	if shift > avail {
		return math.MinInt32
	}
	return rdn - int32(shift)
}

// WdGT возвращает ближайший день недели wd строго после rdn. Насыщается до
// math.MaxInt32 при переполнении.
func WdGT(rdn RDN, wd int32) RDN {
	shift := uint32(SubMod7(wd-1, rdn)) + 1
	return checkedAdd(rdn, shift)
}

// WdGE возвращает ближайший день недели wd в день rdn или после него.
// Насыщается до math.MaxInt32 при переполнении.
func WdGE(rdn RDN, wd int32) RDN {
	shift := uint32(SubMod7(wd, rdn))
	return checkedAdd(rdn, shift)
}

// WdLE возвращает ближайший день недели wd в день rdn или до него.
// Насыщается до math.MinInt32 при переполнении.
func WdLE(rdn RDN, wd int32) RDN {
	shift := uint32(SubMod7(rdn, wd))
	return checkedSub(rdn, shift)
}

// WdLT возвращает ближайший день недели wd строго до rdn. Насыщается до
// math.MinInt32 при переполнении.
func WdLT(rdn RDN, wd int32) RDN {
	shift := uint32(SubMod7(rdn, wd+1)) + 1
	return checkedSub(rdn, shift)
}

// WdNear возвращает ближайший день недели wd вокруг rdn (может сдвинуться в
// любую сторону, и потому способен упереться в обе границы насыщения).
func WdNear(rdn RDN, wd int32) RDN {
	if rdn < 0 {
		return WdLE(rdn+3, wd)
	}
	return WdGE(rdn-3, wd)
}
