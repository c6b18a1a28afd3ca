package matchstats

import (
	"reflect"
	"testing"
)

func TestNormalize_KnownLabelVariants(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"1st Half Goals For":     2,
		"Goals Against (2nd Half)": 1,
		"Second Half Shots For":  6,
		"  Possession Mins  ":    47.5,
		"Opp Possession Minutes": 42.0,
		"Goals Conceded":         1,
		"Throw-Ins":              12,
		"Match Duration":         70,
		"inside box attempts %":  60,
	}

	got := Normalize(input)

	want := map[string]any{
		KeyGoalsFor1stHalf:      2,
		KeyGoalsAgainst2ndHalf:  1,
		KeyShotsFor2ndHalf:      6,
		KeyPossessionMins:       47.5,
		KeyOppPossessionMins:    42.0,
		KeyGoalsAgainst:         1,
		KeyThrowIns:             12,
		KeyMatchDuration:        70,
		KeyInsideBoxAttempts:    60,
	}
	if !reflect.DeepEqual(map[string]any(got), want) {
		t.Fatalf("unexpected normalization: got=%v want=%v", got, want)
	}
}

func TestNormalize_HalfPatternFallback(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		want  string
	}{
		{"1st half shot count for", KeyShotsFor1stHalf},
		{"Shots Against (1st Half, open play)", KeyShotsAgainst1stHalf},
		{"second half attempt total against", KeyAttemptsAgainst2ndHalf},
		{"Goal tally for (2nd half)", KeyGoalsFor2ndHalf},
	}

	for _, tc := range cases {
		got := Normalize(map[string]any{tc.label: 1})
		if _, ok := got[tc.want]; !ok {
			t.Fatalf("label %q: expected key %q, got %v", tc.label, tc.want, got)
		}
	}
}

func TestNormalize_PassStringAndUnknownPassThrough(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"3-pass string":      5,
		"OPP 4-Pass Strings": 2,
		"coach rating":       "B+",
	}

	got := Normalize(input)

	for key := range input {
		if _, ok := got[key]; !ok {
			t.Fatalf("key %q must pass through unchanged, got %v", key, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"First Half Goals For":  2,
		"2nd half shots against": 4,
		"passes for (1st half)": 180,
		"5-pass string":         3,
		"Opponent 6-pass strings": 1,
		"weather":               "rain",
		"corners for":           4,
	}

	once := Normalize(input)
	twice := Normalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("normalize is not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestNormalize_NeverDropsKeys(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"":            nil,
		"   ":         "x",
		"!!garbage!!": -3,
	}

	got := Normalize(input)
	if len(got) != len(input) {
		t.Fatalf("unexpected key count: got=%d want=%d (%v)", len(got), len(input), got)
	}
}
