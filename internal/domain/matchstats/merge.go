package matchstats

import "strings"

// MergeForUpdate overlays incoming raw values onto a previously stored raw
// mapping. Update forms always submit the complete numeric form with untouched
// fields defaulting to 0, so a zero, empty, or nil incoming value means "leave
// unchanged", not "set to zero"; any other value overwrites.
//
// A field whose true value is legitimately 0 cannot be distinguished from one
// the user did not re-enter. That ambiguity is an accepted trade-off of the
// zero-as-placeholder convention and is deliberately not resolved here.
func MergeForUpdate(existing map[string]any, incoming RawStats) map[string]any {
	out := make(map[string]any, len(existing)+len(incoming))
	for key, value := range existing {
		out[key] = value
	}
	for key, value := range incoming {
		if isPlaceholder(value) {
			continue
		}
		out[key] = value
	}
	return out
}

// isPlaceholder reports whether an incoming value stands for "not re-entered".
// The string "0" counts as an explicit value and overwrites.
func isPlaceholder(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		f, ok := toFloat(value)
		return ok && f == 0
	}
}
