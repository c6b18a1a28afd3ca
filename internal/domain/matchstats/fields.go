package matchstats

// Canonical raw-stat keys. Form labels, import headers, and extraction output
// are resolved onto this set by Normalize; everything downstream reads only
// these names.
const (
	KeyGoalsFor1stHalf     = "goalsFor1stHalf"
	KeyGoalsFor2ndHalf     = "goalsFor2ndHalf"
	KeyGoalsAgainst1stHalf = "goalsAgainst1stHalf"
	KeyGoalsAgainst2ndHalf = "goalsAgainst2ndHalf"

	KeyShotsFor1stHalf     = "shotsFor1stHalf"
	KeyShotsFor2ndHalf     = "shotsFor2ndHalf"
	KeyShotsAgainst1stHalf = "shotsAgainst1stHalf"
	KeyShotsAgainst2ndHalf = "shotsAgainst2ndHalf"

	KeyAttemptsFor1stHalf     = "attemptsFor1stHalf"
	KeyAttemptsFor2ndHalf     = "attemptsFor2ndHalf"
	KeyAttemptsAgainst1stHalf = "attemptsAgainst1stHalf"
	KeyAttemptsAgainst2ndHalf = "attemptsAgainst2ndHalf"

	KeyPassesFor1stHalf     = "passesFor1stHalf"
	KeyPassesFor2ndHalf     = "passesFor2ndHalf"
	KeyPassesAgainst1stHalf = "passesAgainst1stHalf"
	KeyPassesAgainst2ndHalf = "passesAgainst2ndHalf"

	KeyGoalsFor        = "goalsFor"
	KeyGoalsAgainst    = "goalsAgainst"
	KeyShotsFor        = "shotsFor"
	KeyShotsAgainst    = "shotsAgainst"
	KeyAttemptsFor     = "attemptsFor"
	KeyAttemptsAgainst = "attemptsAgainst"
	KeyPassesFor       = "passesFor"
	KeyPassesAgainst   = "passesAgainst"

	KeyInsideBoxAttempts    = "insideBoxAttempts"
	KeyOppInsideBoxAttempts = "oppInsideBoxAttempts"

	KeyPossessionMins    = "possessionMins"
	KeyOppPossessionMins = "oppPossessionMins"

	KeyDefensiveThirdPct = "defensiveThirdPct"
	KeyMiddleThirdPct    = "middleThirdPct"
	KeyAttackingThirdPct = "attackingThirdPct"

	KeyCorners      = "corners"
	KeyOppCorners   = "oppCorners"
	KeyFreeKicks    = "freeKicks"
	KeyOppFreeKicks = "oppFreeKicks"
	KeyGoalKicks    = "goalKicks"
	KeyThrowIns     = "throwIns"

	KeyMatchDuration = "matchDuration"
)

// fieldSynonyms resolves known label variants to canonical keys. Sources are
// compared lower-cased and trimmed. A canonical key never resolves to a
// different key, which is what makes Normalize idempotent.
var fieldSynonyms = map[string]string{
	// halves: goals; labels without a side are the team's own stat
	"1st half goals":            KeyGoalsFor1stHalf,
	"goals (1st half)":          KeyGoalsFor1stHalf,
	"2nd half goals":            KeyGoalsFor2ndHalf,
	"goals (2nd half)":          KeyGoalsFor2ndHalf,
	"1st half goals for":        KeyGoalsFor1stHalf,
	"first half goals for":      KeyGoalsFor1stHalf,
	"goals for (1st half)":      KeyGoalsFor1stHalf,
	"1st half goals against":    KeyGoalsAgainst1stHalf,
	"first half goals against":  KeyGoalsAgainst1stHalf,
	"goals against (1st half)":  KeyGoalsAgainst1stHalf,
	"2nd half goals for":        KeyGoalsFor2ndHalf,
	"second half goals for":     KeyGoalsFor2ndHalf,
	"goals for (2nd half)":      KeyGoalsFor2ndHalf,
	"2nd half goals against":    KeyGoalsAgainst2ndHalf,
	"second half goals against": KeyGoalsAgainst2ndHalf,
	"goals against (2nd half)":  KeyGoalsAgainst2ndHalf,

	// halves: shots
	"1st half shots":            KeyShotsFor1stHalf,
	"shots (1st half)":          KeyShotsFor1stHalf,
	"2nd half shots":            KeyShotsFor2ndHalf,
	"shots (2nd half)":          KeyShotsFor2ndHalf,
	"1st half shots for":        KeyShotsFor1stHalf,
	"first half shots for":      KeyShotsFor1stHalf,
	"shots for (1st half)":      KeyShotsFor1stHalf,
	"1st half shots against":    KeyShotsAgainst1stHalf,
	"first half shots against":  KeyShotsAgainst1stHalf,
	"shots against (1st half)":  KeyShotsAgainst1stHalf,
	"2nd half shots for":        KeyShotsFor2ndHalf,
	"second half shots for":     KeyShotsFor2ndHalf,
	"shots for (2nd half)":      KeyShotsFor2ndHalf,
	"2nd half shots against":    KeyShotsAgainst2ndHalf,
	"second half shots against": KeyShotsAgainst2ndHalf,
	"shots against (2nd half)":  KeyShotsAgainst2ndHalf,

	// halves: attempts
	"1st half attempts for":       KeyAttemptsFor1stHalf,
	"attempts for (1st half)":     KeyAttemptsFor1stHalf,
	"1st half attempts against":   KeyAttemptsAgainst1stHalf,
	"attempts against (1st half)": KeyAttemptsAgainst1stHalf,
	"2nd half attempts for":       KeyAttemptsFor2ndHalf,
	"attempts for (2nd half)":     KeyAttemptsFor2ndHalf,
	"2nd half attempts against":   KeyAttemptsAgainst2ndHalf,
	"attempts against (2nd half)": KeyAttemptsAgainst2ndHalf,

	// halves: passes (not covered by the half pattern rule, table only)
	"1st half passes for":       KeyPassesFor1stHalf,
	"passes for (1st half)":     KeyPassesFor1stHalf,
	"1st half passes against":   KeyPassesAgainst1stHalf,
	"passes against (1st half)": KeyPassesAgainst1stHalf,
	"2nd half passes for":       KeyPassesFor2ndHalf,
	"passes for (2nd half)":     KeyPassesFor2ndHalf,
	"2nd half passes against":   KeyPassesAgainst2ndHalf,
	"passes against (2nd half)": KeyPassesAgainst2ndHalf,

	// full game; plain labels are the team's own stat on entry forms
	"goals":            KeyGoalsFor,
	"goals for":        KeyGoalsFor,
	"goals scored":     KeyGoalsFor,
	"goals_for":        KeyGoalsFor,
	"goals against":    KeyGoalsAgainst,
	"goals conceded":   KeyGoalsAgainst,
	"opp goals":        KeyGoalsAgainst,
	"goals_against":    KeyGoalsAgainst,
	"shots":            KeyShotsFor,
	"shots for":        KeyShotsFor,
	"shots_for":        KeyShotsFor,
	"shots against":    KeyShotsAgainst,
	"opp shots":        KeyShotsAgainst,
	"shots_against":    KeyShotsAgainst,
	"attempts for":     KeyAttemptsFor,
	"attempts against": KeyAttemptsAgainst,
	"passes":           KeyPassesFor,
	"passes for":       KeyPassesFor,
	"total passes":     KeyPassesFor,
	"passes_for":       KeyPassesFor,
	"passes against":   KeyPassesAgainst,
	"opp passes":       KeyPassesAgainst,
	"passes_against":   KeyPassesAgainst,

	// game info
	"match duration":         KeyMatchDuration,
	"match length":           KeyMatchDuration,
	"game length":            KeyMatchDuration,
	"duration (mins)":        KeyMatchDuration,
	"total match time (min)": KeyMatchDuration,
	"match_duration":         KeyMatchDuration,

	// possession
	"possession (mins)":        KeyPossessionMins,
	"possession mins":          KeyPossessionMins,
	"possession minutes":       KeyPossessionMins,
	"mins of possession":       KeyPossessionMins,
	"possession_mins":          KeyPossessionMins,
	"opp possession mins":      KeyOppPossessionMins,
	"opp possession minutes":   KeyOppPossessionMins,
	"opponent possession mins": KeyOppPossessionMins,
	"opp_possession_mins":      KeyOppPossessionMins,

	// possession zones
	"defensive third %":          KeyDefensiveThirdPct,
	"defensive third possession": KeyDefensiveThirdPct,
	"middle third %":             KeyMiddleThirdPct,
	"middle third possession":    KeyMiddleThirdPct,
	"attacking third %":          KeyAttackingThirdPct,
	"attacking third possession": KeyAttackingThirdPct,
	"final third %":              KeyAttackingThirdPct,

	// box attempts (manually entered percentages)
	"inside box attempts":          KeyInsideBoxAttempts,
	"inside box attempts %":        KeyInsideBoxAttempts,
	"inside the box attempts":      KeyInsideBoxAttempts,
	"inside_box_attempts":          KeyInsideBoxAttempts,
	"opp inside box attempts":      KeyOppInsideBoxAttempts,
	"opp inside box attempts %":    KeyOppInsideBoxAttempts,
	"opponent inside box attempts": KeyOppInsideBoxAttempts,
	"opp_inside_box_attempts":      KeyOppInsideBoxAttempts,

	// set pieces
	"corners":          KeyCorners,
	"corner kicks":     KeyCorners,
	"corners for":      KeyCorners,
	"opp corners":      KeyOppCorners,
	"opponent corners": KeyOppCorners,
	"free kicks":       KeyFreeKicks,
	"free_kicks":       KeyFreeKicks,
	"opp free kicks":   KeyOppFreeKicks,
	"goal kicks":       KeyGoalKicks,
	"goal_kicks":       KeyGoalKicks,
	"throw ins":        KeyThrowIns,
	"throw-ins":        KeyThrowIns,
	"throw_ins":        KeyThrowIns,
}
