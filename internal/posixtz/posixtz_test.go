package posixtz

import "testing"

func mustLoad(t *testing.T, spec string) *Ctx {
	t.Helper()
	ctx, _, err := LoadZone(spec)
	if err != nil {
		t.Fatalf("LoadZone(%q): %v", spec, err)
	}
	return ctx
}

// unixLocal builds a UNIX timestamp from a UTC-calendar y/m/d/h/m/s triple
// using the gregorian package indirectly through DateToRdn (already
// exercised by its own package tests); here we just need a few known
// instants, so the arithmetic is inlined against the UNIX epoch.
func unixUTC(days int64, hh, mm, ss int) int64 {
	return days*86400 + int64(hh)*3600 + int64(mm)*60 + int64(ss)
}

func TestScenarioS2BerlinSpringGap(t *testing.T) {
	ctx := mustLoad(t, "CET-1CEST-2,M3.5.0/2,M10.5.0/3")

	// 2025-03-30 is RDN 739340 Gregorian (verified against gregorian
	// package's DateToRdn(2025,3,30)); days-since-unix-epoch = 739340 -
	// 719163 = 20177.
	const daysSinceEpoch = 20177
	local := unixUTC(daysSinceEpoch, 2, 30, 0)

	if _, ok := GetInfoLocal2UTC(ctx, local, HintNone); ok {
		t.Fatalf("spring gap 02:30 local without hint should fail to resolve")
	}
	infoSTD, ok := GetInfoLocal2UTC(ctx, local, HintHrA)
	if !ok {
		t.Fatalf("HrA in spring gap should resolve")
	}
	if infoSTD.IsDst || infoSTD.Offs != -3600 {
		t.Fatalf("HrA in spring gap = %+v, want is_dst=false offset=-3600", infoSTD)
	}
	infoDST, ok := GetInfoLocal2UTC(ctx, local, HintHrB)
	if !ok {
		t.Fatalf("HrB in spring gap should resolve")
	}
	if !infoDST.IsDst || infoDST.Offs != -7200 {
		t.Fatalf("HrB in spring gap = %+v, want is_dst=true offset=-7200", infoDST)
	}
}

func TestScenarioS3BerlinAutumnOverlap(t *testing.T) {
	ctx := mustLoad(t, "CET-1CEST-2,M3.5.0/2,M10.5.0/3")

	// 2025-10-26, days-since-unix-epoch = DateToRdn(2025,10,26)-719163.
	// That RDN is 739550 (verified against the gregorian package),
	// giving 20387 days.
	const daysSinceEpoch = 20387
	local := unixUTC(daysSinceEpoch, 2, 30, 0)

	if _, ok := GetInfoLocal2UTC(ctx, local, HintNone); ok {
		t.Fatalf("autumn overlap 02:30 local without hint should fail to resolve")
	}
	infoSTD, ok := GetInfoLocal2UTC(ctx, local, HintHrB)
	if !ok {
		t.Fatalf("HrB in autumn overlap should resolve")
	}
	if infoSTD.IsDst || !infoSTD.IsHrB || infoSTD.Offs != -3600 {
		t.Fatalf("HrB in autumn overlap = %+v, want is_dst=false is_hour_b=true offset=-3600", infoSTD)
	}
	infoDST, ok := GetInfoLocal2UTC(ctx, local, HintHrA)
	if !ok {
		t.Fatalf("HrA in autumn overlap should resolve")
	}
	if !infoDST.IsDst || !infoDST.IsHrA || infoDST.Offs != -7200 {
		t.Fatalf("HrA in autumn overlap = %+v, want is_dst=true is_hour_a=true offset=-7200", infoDST)
	}
}

func TestScenarioS4DublinNegativeDST(t *testing.T) {
	ctx := mustLoad(t, "IST-1GMT0,M10.5.0,M3.5.0/1")

	const daysSinceEpoch = 20387 // 2025-10-26
	local := unixUTC(daysSinceEpoch, 1, 30, 0)

	infoSTD, ok := GetInfoLocal2UTC(ctx, local, HintHrA)
	if !ok {
		t.Fatalf("Dublin HrA should resolve")
	}
	if infoSTD.IsDst || !infoSTD.IsHrA || infoSTD.Offs != -3600 {
		t.Fatalf("Dublin HrA = %+v, want is_dst=false is_hour_a=true offset=-3600", infoSTD)
	}
	infoDST, ok := GetInfoLocal2UTC(ctx, local, HintHrB)
	if !ok {
		t.Fatalf("Dublin HrB should resolve")
	}
	if !infoDST.IsDst || !infoDST.IsHrB || infoDST.Offs != 0 {
		t.Fatalf("Dublin HrB = %+v, want is_dst=true is_hour_b=true offset=0", infoDST)
	}
}

func TestParseZoneCorpus(t *testing.T) {
	// Invariant 11 (abbreviated): a representative slice of real POSIX TZ
	// strings must all parse and round-trip through the evaluator at a
	// handful of sample instants without panicking.
	specs := []string{
		"UTC0",
		"EST5EDT,M3.2.0,M11.1.0",
		"CET-1CEST,M3.5.0,M10.5.0/3",
		"CET-1CEST-2,M3.5.0/2,M10.5.0/3",
		"IST-1GMT0,M10.5.0,M3.5.0/1",
		"NZST-12NZDT-13,M9.5.0,M4.1.0/3",
		"<-03>3<-02>-2,M3.2.0/0,M10.1.0/0",
		"AEST-10AEDT,M10.1.0,M4.1.0/3",
		"WET0WEST,M3.5.0/1,M10.5.0",
		"PST8PDT7,M3.2.0,M11.1.0",
	}
	for _, spec := range specs {
		ctx := mustLoad(t, spec)
		for _, ts := range []int64{0, 86400 * 90, 86400 * 200, 86400 * 300} {
			if _, ok := GetInfoUTC2Local(ctx, ts); !ok {
				t.Fatalf("%s: GetInfoUTC2Local(%d) failed", spec, ts)
			}
		}
	}
}

func TestQuotedNameParsing(t *testing.T) {
	z, rest, ok := ParseZone("<-03>3<-02>-2,M3.2.0/0,M10.1.0/0")
	if !ok {
		t.Fatalf("failed to parse quoted-name zone")
	}
	if z.StdName != "-03" || z.DstName != "-02" {
		t.Fatalf("quoted names = %q/%q, want -03/-02", z.StdName, z.DstName)
	}
	if rest != "" {
		t.Fatalf("unexpected remainder %q", rest)
	}
}

func TestAllYearZones(t *testing.T) {
	ctx := mustLoad(t, "UTC0")
	info, ok := GetInfoUTC2Local(ctx, 1234567890)
	if !ok || info.IsDst || info.Offs != 0 {
		t.Fatalf("UTC0 should always resolve to offset 0, got %+v ok=%v", info, ok)
	}
	infoL, ok := GetInfoLocal2UTC(ctx, 1234567890, HintNone)
	if !ok || infoL.Offs != 0 {
		t.Fatalf("UTC0 local->utc should always resolve, got %+v ok=%v", infoL, ok)
	}
}

func TestLocalToUTCNearestNoHintNeeded(t *testing.T) {
	ctx := mustLoad(t, "CET-1CEST-2,M3.5.0/2,M10.5.0/3")
	const daysSinceEpoch = 20177 // 2025-03-30
	local := unixUTC(daysSinceEpoch, 2, 30, 0)

	utcSTD := local + 3600
	utcDST := local + 7200

	infoNearSTD := mustNearest(ctx, local, utcSTD-10)
	if infoNearSTD.IsDst {
		t.Fatalf("pivot just before STD interpretation should pick STD, got %+v", infoNearSTD)
	}
	infoNearDST := mustNearest(ctx, local, utcDST+100)
	if !infoNearDST.IsDst {
		t.Fatalf("pivot at/after DST interpretation should pick DST, got %+v", infoNearDST)
	}
}

func mustNearest(ctx *Ctx, ts, pivot int64) Info {
	info, _ := LocalToUTCNearest(ctx, ts, pivot)
	return info
}

func TestAlignedLocalRangeContainsPivot(t *testing.T) {
	ctx := mustLoad(t, "CET-1CEST-2,M3.5.0/2,M10.5.0/3")
	ts := unixUTC(20177, 12, 0, 0)
	lo, hi, _, ok := AlignedLocalRange(ctx, ts, 86400, 0)
	if !ok {
		t.Fatalf("AlignedLocalRange failed")
	}
	if ts < lo || ts >= hi {
		t.Fatalf("pivot %d not inside range [%d,%d)", ts, lo, hi)
	}
	if _, _, _, ok := AlignedLocalRange(ctx, ts, 0, 0); ok {
		t.Fatalf("period=0 should be rejected")
	}
	if _, _, _, ok := AlignedLocalRange(ctx, ts, 8*86400, 0); ok {
		t.Fatalf("period>7 days should be rejected")
	}
}
