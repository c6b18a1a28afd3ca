package matchstats

import (
	"strconv"
	"strings"
)

// Derived metric names. Ratio and percentage values are scaled by 100.
const (
	MetricTSR               = "tsr"
	MetricOppTSR            = "opp tsr"
	MetricConversionRate    = "conversion rate"
	MetricOppConversionRate = "opp conversion rate"
	MetricPassShare         = "pass share"
	MetricOppPassShare      = "opp pass share"
	MetricPPM               = "ppm"
	MetricOppPPM            = "opp ppm"

	MetricInsideBoxPct     = "inside box attempts %"
	MetricOutsideBoxPct    = "outside box attempts %"
	MetricOppInsideBoxPct  = "opp inside box attempts %"
	MetricOppOutsideBoxPct = "opp outside box attempts %"

	MetricLPC            = "lpc"
	MetricPassStrings35  = "pass strings (3-5)"
	MetricPassStrings6Up = "pass strings (6+)"
	MetricPassStringsLt4 = "pass strings <4"
	MetricPassStrings4Up = "pass strings 4+"
	MetricSPI            = "spi"
	MetricWeightedSPI    = "weighted spi"
	MetricOppSPI         = "opp spi"
	MetricOppWeightedSPI = "opp weighted spi"

	MetricTotalAttemptsFor            = "totalAttemptsFor"
	MetricTotalAttemptsAgainst        = "totalAttemptsAgainst"
	MetricTotalAttemptsFor1stHalf     = "totalAttemptsFor1stHalf"
	MetricTotalAttemptsFor2ndHalf     = "totalAttemptsFor2ndHalf"
	MetricTotalAttemptsAgainst1stHalf = "totalAttemptsAgainst1stHalf"
	MetricTotalAttemptsAgainst2ndHalf = "totalAttemptsAgainst2ndHalf"
)

const (
	minPassStringLength = 3
	maxPassStringLength = 10
	// Weighted SPI bonus per pass length beyond the 3-pass baseline.
	passLengthBonus = 0.15
)

// Compute derives the full canonical metric set from normalized raw stats.
// It is a pure function and never fails: a metric whose denominator is zero
// or undefined is simply omitted from the result.
func Compute(raw RawStats) ComputedStats {
	out := make(ComputedStats, 32)

	goalsFor := fullGameValue(raw, KeyGoalsFor1stHalf, KeyGoalsFor2ndHalf, KeyGoalsFor)
	goalsAgainst := fullGameValue(raw, KeyGoalsAgainst1stHalf, KeyGoalsAgainst2ndHalf, KeyGoalsAgainst)
	shotsFor := fullGameValue(raw, KeyShotsFor1stHalf, KeyShotsFor2ndHalf, KeyShotsFor)
	shotsAgainst := fullGameValue(raw, KeyShotsAgainst1stHalf, KeyShotsAgainst2ndHalf, KeyShotsAgainst)
	attemptsFor := fullGameValue(raw, KeyAttemptsFor1stHalf, KeyAttemptsFor2ndHalf, KeyAttemptsFor)
	attemptsAgainst := fullGameValue(raw, KeyAttemptsAgainst1stHalf, KeyAttemptsAgainst2ndHalf, KeyAttemptsAgainst)
	passesFor := fullGameValue(raw, KeyPassesFor1stHalf, KeyPassesFor2ndHalf, KeyPassesFor)
	passesAgainst := fullGameValue(raw, KeyPassesAgainst1stHalf, KeyPassesAgainst2ndHalf, KeyPassesAgainst)

	// Veo-style total attempts: goals count as attempts, shots exclude goals.
	totalAttemptsFor := goalsFor + shotsFor
	totalAttemptsAgainst := goalsAgainst + shotsAgainst

	out[KeyGoalsFor] = goalsFor
	out[KeyGoalsAgainst] = goalsAgainst
	out[KeyShotsFor] = shotsFor
	out[KeyShotsAgainst] = shotsAgainst
	out[KeyAttemptsFor] = attemptsFor
	out[KeyAttemptsAgainst] = attemptsAgainst
	out[KeyPassesFor] = passesFor
	out[KeyPassesAgainst] = passesAgainst
	out[MetricTotalAttemptsFor] = totalAttemptsFor
	out[MetricTotalAttemptsAgainst] = totalAttemptsAgainst
	out[MetricTotalAttemptsFor1stHalf] = numericValue(raw, KeyGoalsFor1stHalf) + numericValue(raw, KeyShotsFor1stHalf)
	out[MetricTotalAttemptsFor2ndHalf] = numericValue(raw, KeyGoalsFor2ndHalf) + numericValue(raw, KeyShotsFor2ndHalf)
	out[MetricTotalAttemptsAgainst1stHalf] = numericValue(raw, KeyGoalsAgainst1stHalf) + numericValue(raw, KeyShotsAgainst1stHalf)
	out[MetricTotalAttemptsAgainst2ndHalf] = numericValue(raw, KeyGoalsAgainst2ndHalf) + numericValue(raw, KeyShotsAgainst2ndHalf)

	if denom := totalAttemptsFor + totalAttemptsAgainst; denom > 0 {
		out[MetricTSR] = totalAttemptsFor / denom * 100
		out[MetricOppTSR] = totalAttemptsAgainst / denom * 100
	}
	if totalAttemptsFor > 0 {
		out[MetricConversionRate] = goalsFor / totalAttemptsFor * 100
	}
	if totalAttemptsAgainst > 0 {
		out[MetricOppConversionRate] = goalsAgainst / totalAttemptsAgainst * 100
	}

	if denom := passesFor + passesAgainst; denom > 0 {
		out[MetricPassShare] = passesFor / denom * 100
		out[MetricOppPassShare] = passesAgainst / denom * 100
	}
	if mins := numericValue(raw, KeyPossessionMins); mins > 0 {
		out[MetricPPM] = passesFor / mins
	}
	if mins := numericValue(raw, KeyOppPossessionMins); mins > 0 {
		out[MetricOppPPM] = passesAgainst / mins
	}

	// Box-attempt percentages pass the manually-entered inside-box value
	// through untouched; they are never recomputed from counts.
	if inside := numericValue(raw, KeyInsideBoxAttempts); inside > 0 {
		out[MetricInsideBoxPct] = inside
		out[MetricOutsideBoxPct] = 100 - inside
	}
	if inside := numericValue(raw, KeyOppInsideBoxAttempts); inside > 0 {
		out[MetricOppInsideBoxPct] = inside
		out[MetricOppOutsideBoxPct] = 100 - inside
	}

	computePassStringMetrics(raw, passesFor, passesAgainst, out)

	return out
}

func computePassStringMetrics(raw RawStats, passesFor, passesAgainst float64, out ComputedStats) {
	var (
		longest                    float64
		sum35, sum6Up, lt4, sum4Up float64
		spiPasses, weightedPasses  float64
		oppSPIPasses, oppWeighted  float64
	)

	for n := minPassStringLength; n <= maxPassStringLength; n++ {
		length := float64(n)
		bonus := 1 + passLengthBonus*float64(n-minPassStringLength)

		if count := teamPassStringCount(raw, n); count > 0 {
			longest = length
			if n <= 5 {
				sum35 += count
			} else {
				sum6Up += count
			}
			if n == minPassStringLength {
				lt4 += count
			} else {
				sum4Up += count
			}
			spiPasses += count * length
			weightedPasses += count * length * bonus
		}

		if count := opponentPassStringCount(raw, n); count > 0 {
			oppSPIPasses += count * length
			oppWeighted += count * length * bonus
		}
	}

	if longest > 0 {
		out[MetricLPC] = longest
	}
	if sum35 > 0 {
		out[MetricPassStrings35] = sum35
	}
	if sum6Up > 0 {
		out[MetricPassStrings6Up] = sum6Up
	}
	if lt4 > 0 {
		out[MetricPassStringsLt4] = lt4
	}
	if sum4Up > 0 {
		out[MetricPassStrings4Up] = sum4Up
	}

	if spiPasses > 0 && passesFor > 0 {
		out[MetricSPI] = spiPasses / passesFor * 100
	}
	if weightedPasses > 0 && passesFor > 0 {
		out[MetricWeightedSPI] = weightedPasses / passesFor * 100
	}
	if oppSPIPasses > 0 && passesAgainst > 0 {
		out[MetricOppSPI] = oppSPIPasses / passesAgainst * 100
	}
	if oppWeighted > 0 && passesAgainst > 0 {
		out[MetricOppWeightedSPI] = oppWeighted / passesAgainst * 100
	}
}

// fullGameValue applies the half precedence rule: when either half carries a
// non-zero value, the halves win over any directly supplied full-game field.
// Half-by-half entry is the primary path; a stale full-game value must never
// override fresh half data.
func fullGameValue(raw RawStats, firstHalfKey, secondHalfKey, directKey string) float64 {
	first := numericValue(raw, firstHalfKey)
	second := numericValue(raw, secondHalfKey)
	if first != 0 || second != 0 {
		return first + second
	}
	return numericValue(raw, directKey)
}

// teamPassStringCount finds the team-side count for length n. Team fields use
// the canonical "{n}-pass string" shape (a space separator and a plural "s"
// are tolerated); anything naming the opponent is skipped.
func teamPassStringCount(raw RawStats, n int) float64 {
	prefix := strconv.Itoa(n)
	candidates := []string{
		prefix + "-pass string",
		prefix + "-pass strings",
		prefix + " pass string",
		prefix + " pass strings",
	}
	for _, candidate := range candidates {
		for key, value := range raw {
			label := strings.ToLower(strings.TrimSpace(key))
			if label != candidate {
				continue
			}
			if count, ok := toFloat(value); ok && count > 0 {
				return count
			}
		}
	}
	return 0
}

// opponentPassStringCount locates the opponent count for length n among its
// many naming variants: any label containing "opp" or "opponent" together
// with "{n}-pass" or "{n} pass" and "string".
func opponentPassStringCount(raw RawStats, n int) float64 {
	prefix := strconv.Itoa(n)
	for key, value := range raw {
		label := strings.ToLower(strings.TrimSpace(key))
		if !strings.Contains(label, "opp") {
			continue
		}
		if !strings.Contains(label, prefix+"-pass") && !strings.Contains(label, prefix+" pass") {
			continue
		}
		if !strings.Contains(label, "string") {
			continue
		}
		count, ok := toFloat(value)
		if !ok || count <= 0 {
			continue
		}
		return count
	}
	return 0
}

func numericValue(raw RawStats, key string) float64 {
	value, ok := raw[key]
	if !ok {
		return 0
	}
	f, ok := toFloat(value)
	if !ok {
		return 0
	}
	return f
}

// Float64 reports the numeric reading of a raw stat value. Numeric strings
// parse; anything else is non-numeric.
func Float64(value any) (float64, bool) {
	return toFloat(value)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
