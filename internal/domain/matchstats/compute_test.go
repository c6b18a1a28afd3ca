package matchstats

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestCompute_ShotRatiosFromHalves(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		KeyGoalsFor1stHalf:     2,
		KeyGoalsFor2ndHalf:     1,
		KeyGoalsAgainst1stHalf: 0,
		KeyGoalsAgainst2ndHalf: 1,
		KeyShotsFor1stHalf:     8,
		KeyShotsFor2ndHalf:     6,
		KeyShotsAgainst1stHalf: 3,
		KeyShotsAgainst2ndHalf: 4,
	}

	got := Compute(raw)

	if got[MetricTotalAttemptsFor] != 17 {
		t.Fatalf("unexpected total attempts for: got=%v want=17", got[MetricTotalAttemptsFor])
	}
	if got[MetricTotalAttemptsAgainst] != 8 {
		t.Fatalf("unexpected total attempts against: got=%v want=8", got[MetricTotalAttemptsAgainst])
	}
	if !almostEqual(got[MetricTSR], 68.0) {
		t.Fatalf("unexpected tsr: got=%v want=68.0", got[MetricTSR])
	}
	if !almostEqual(got[MetricConversionRate], 3.0/17.0*100) {
		t.Fatalf("unexpected conversion rate: got=%v", got[MetricConversionRate])
	}
	if !almostEqual(got[MetricOppConversionRate], 1.0/8.0*100) {
		t.Fatalf("unexpected opp conversion rate: got=%v", got[MetricOppConversionRate])
	}
	if got[MetricTotalAttemptsFor1stHalf] != 10 || got[MetricTotalAttemptsFor2ndHalf] != 7 {
		t.Fatalf("unexpected half attempt split: 1st=%v 2nd=%v",
			got[MetricTotalAttemptsFor1stHalf], got[MetricTotalAttemptsFor2ndHalf])
	}
}

func TestCompute_HalfPrecedenceOverDirectTotals(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		KeyGoalsFor1stHalf: 2,
		KeyGoalsFor2ndHalf: 1,
		KeyGoalsFor:        9, // stale full-game entry, must lose to the halves
	}

	got := Compute(raw)
	if got[KeyGoalsFor] != 3 {
		t.Fatalf("half data must win: got=%v want=3", got[KeyGoalsFor])
	}
}

func TestCompute_DirectTotalFallbackWhenHalvesEmpty(t *testing.T) {
	t.Parallel()

	got := Compute(RawStats{KeyGoalsFor: 4})
	if got[KeyGoalsFor] != 4 {
		t.Fatalf("direct total must apply when halves are absent: got=%v want=4", got[KeyGoalsFor])
	}

	got = Compute(RawStats{
		KeyGoalsFor1stHalf: 0,
		KeyGoalsFor2ndHalf: 0,
		KeyGoalsFor:        4,
	})
	if got[KeyGoalsFor] != 4 {
		t.Fatalf("direct total must apply when halves are zero: got=%v want=4", got[KeyGoalsFor])
	}
}

func TestCompute_TSRComplementarity(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		KeyGoalsFor:        3,
		KeyShotsFor:        11,
		KeyGoalsAgainst:    2,
		KeyShotsAgainst:    7,
		KeyPassesFor:       312,
		KeyPassesAgainst:   288,
	}

	got := Compute(raw)

	if !almostEqual(got[MetricTSR]+got[MetricOppTSR], 100) {
		t.Fatalf("tsr complement broken: tsr=%v opp=%v", got[MetricTSR], got[MetricOppTSR])
	}
	if !almostEqual(got[MetricPassShare]+got[MetricOppPassShare], 100) {
		t.Fatalf("pass share complement broken: share=%v opp=%v", got[MetricPassShare], got[MetricOppPassShare])
	}
}

func TestCompute_PassesPerMinuteUsesPossessionMinutes(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		KeyPassesFor1stHalf: 180,
		KeyPassesFor2ndHalf: 200,
		KeyPossessionMins:   47.5,
		KeyMatchDuration:    70, // must not be the ppm denominator
	}

	got := Compute(raw)
	if !almostEqual(got[MetricPPM], 8.0) {
		t.Fatalf("unexpected ppm: got=%v want=8.0", got[MetricPPM])
	}
}

func TestCompute_BoxAttemptPercentagePassthrough(t *testing.T) {
	t.Parallel()

	got := Compute(RawStats{KeyInsideBoxAttempts: 60})
	if got[MetricInsideBoxPct] != 60 {
		t.Fatalf("unexpected inside box %%: got=%v want=60", got[MetricInsideBoxPct])
	}
	if got[MetricOutsideBoxPct] != 40 {
		t.Fatalf("unexpected outside box %%: got=%v want=40", got[MetricOutsideBoxPct])
	}
	if _, ok := got[MetricOppInsideBoxPct]; ok {
		t.Fatalf("opp box %% must be omitted without opp input")
	}
}

func TestCompute_PassStringAggregatesAndLPC(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		"3-pass string": 5,
		"4-pass string": 8,
		"5-pass string": 12,
		"6-pass string": 0,
	}

	got := Compute(raw)

	if got[MetricPassStrings35] != 25 {
		t.Fatalf("unexpected pass strings (3-5): got=%v want=25", got[MetricPassStrings35])
	}
	if got[MetricLPC] != 5 {
		t.Fatalf("unexpected lpc: got=%v want=5", got[MetricLPC])
	}
	if got[MetricPassStringsLt4] != 5 {
		t.Fatalf("unexpected pass strings <4: got=%v want=5", got[MetricPassStringsLt4])
	}
	if got[MetricPassStrings4Up] != 20 {
		t.Fatalf("unexpected pass strings 4+: got=%v want=20", got[MetricPassStrings4Up])
	}
	if _, ok := got[MetricPassStrings6Up]; ok {
		t.Fatalf("pass strings (6+) must be omitted when the sum is zero")
	}
}

func TestCompute_LPCUndefinedWithoutPositiveStrings(t *testing.T) {
	t.Parallel()

	got := Compute(RawStats{
		"3-pass string": 0,
		"7-pass string": "not a number",
	})
	if _, ok := got[MetricLPC]; ok {
		t.Fatalf("lpc must be undefined: got=%v", got[MetricLPC])
	}
}

func TestCompute_SustainedPassingIndexes(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		KeyPassesFor:    100,
		"3-pass string": 5,
		"4-pass string": 5,
	}

	got := Compute(raw)

	// 5*3 + 5*4 = 35 contributing passes out of 100.
	if !almostEqual(got[MetricSPI], 35) {
		t.Fatalf("unexpected spi: got=%v want=35", got[MetricSPI])
	}
	// 15 + 20*1.15 = 38 weighted.
	if !almostEqual(got[MetricWeightedSPI], 38) {
		t.Fatalf("unexpected weighted spi: got=%v want=38", got[MetricWeightedSPI])
	}
}

func TestCompute_OpponentSPIVariantMatching(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		KeyPassesAgainst:          200,
		"OPP 3-Pass Strings":      4,
		"Opponent 4-pass string":  5,
	}

	got := Compute(raw)

	// 4*3 + 5*4 = 32 contributing passes out of 200.
	if !almostEqual(got[MetricOppSPI], 16) {
		t.Fatalf("unexpected opp spi: got=%v want=16", got[MetricOppSPI])
	}
	// 12 + 20*1.15 = 35 weighted out of 200.
	if !almostEqual(got[MetricOppWeightedSPI], 17.5) {
		t.Fatalf("unexpected opp weighted spi: got=%v want=17.5", got[MetricOppWeightedSPI])
	}
	if _, ok := got[MetricSPI]; ok {
		t.Fatalf("team spi must be omitted without team pass strings")
	}
}

func TestCompute_ZeroGuardOmitsRatios(t *testing.T) {
	t.Parallel()

	got := Compute(RawStats{})

	for _, metric := range []string{
		MetricTSR, MetricOppTSR,
		MetricConversionRate, MetricOppConversionRate,
		MetricPassShare, MetricOppPassShare,
		MetricPPM, MetricOppPPM,
		MetricSPI, MetricWeightedSPI,
		MetricInsideBoxPct, MetricOutsideBoxPct,
	} {
		if _, ok := got[metric]; ok {
			t.Fatalf("metric %q must be omitted on empty input", metric)
		}
	}
}

func TestCompute_NonNumericValuesFailZeroGuard(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		KeyGoalsFor:       "three",
		KeyShotsFor:       "n/a",
		KeyPossessionMins: "",
	}

	got := Compute(raw)
	if _, ok := got[MetricTSR]; ok {
		t.Fatalf("tsr must be omitted for non-numeric input")
	}
	if got[KeyGoalsFor] != 0 {
		t.Fatalf("non-numeric aggregate must coerce to zero: got=%v", got[KeyGoalsFor])
	}
}

func TestCompute_NumericStringsParse(t *testing.T) {
	t.Parallel()

	raw := RawStats{
		KeyGoalsFor1stHalf: "2",
		KeyGoalsFor2ndHalf: " 1 ",
	}

	got := Compute(raw)
	if got[KeyGoalsFor] != 3 {
		t.Fatalf("numeric strings must parse: got=%v want=3", got[KeyGoalsFor])
	}
}
