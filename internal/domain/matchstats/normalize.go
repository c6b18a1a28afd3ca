package matchstats

import "strings"

var firstHalfMarkers = []string{"1st half", "first half", "(1st"}
var secondHalfMarkers = []string{"2nd half", "second half", "(2nd"}

// Normalize maps free-form stat labels (form labels, import headers,
// extraction output) onto the canonical raw-stat key set. Resolution order per
// key: exact synonym table, half-indicator pattern, pass-string pass-through,
// unchanged pass-through. Unknown fields are preserved, never dropped, and the
// function is idempotent: canonical keys resolve to themselves.
func Normalize(input map[string]any) RawStats {
	out := make(RawStats, len(input))
	for key, value := range input {
		out[normalizeKey(key)] = value
	}
	return out
}

func normalizeKey(key string) string {
	label := strings.ToLower(strings.TrimSpace(key))

	if canonical, ok := fieldSynonyms[label]; ok {
		return canonical
	}
	if canonical, ok := resolveHalfPattern(label); ok {
		return canonical
	}
	// Pass-string fields ("3-pass string", "OPP 4-Pass Strings", ...) are
	// located by the calculator via variant matching; keep them as entered.
	if strings.Contains(label, "pass string") {
		return key
	}
	return key
}

// resolveHalfPattern catches labels that combine a half indicator with a stat
// word and a side, e.g. "1st half shots (for)" or "Goals Against (2nd Half)".
// Passes are deliberately excluded; their variants live in the synonym table.
func resolveHalfPattern(label string) (string, bool) {
	half := ""
	switch {
	case containsAny(label, firstHalfMarkers):
		half = "1stHalf"
	case containsAny(label, secondHalfMarkers):
		half = "2ndHalf"
	default:
		return "", false
	}

	stat := ""
	switch {
	case strings.Contains(label, "goal"):
		stat = "goals"
	case strings.Contains(label, "shot"):
		stat = "shots"
	case strings.Contains(label, "attempt"):
		stat = "attempts"
	default:
		return "", false
	}

	// "against" is checked first: any label naming it is an opponent stat
	// even when "for" also appears somewhere in the text.
	switch {
	case strings.Contains(label, "against"):
		return stat + "Against" + half, true
	case strings.Contains(label, "for"):
		return stat + "For" + half, true
	default:
		return "", false
	}
}

func containsAny(label string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(label, marker) {
			return true
		}
	}
	return false
}
