package matchstats

// RawStats is an open-ended mapping from canonical stat name to the value as
// entered. Values may be numbers or numeric strings; a missing key means the
// stat was never supplied, which is not the same as a stored zero during the
// update merge (see MergeForUpdate).
type RawStats map[string]any

// ComputedStats maps derived metric names to their values. Ratio and index
// metrics are only present when their denominator was defined and positive.
type ComputedStats map[string]float64
