package acceptance

import "math"

// TieredThreshold is the AQL at or below which the tiered strategy switches to
// sample-size tiers.
const TieredThreshold = 0.065

// AqlLimitEntry pairs a standard AQL with the reference accept/reject pair
// from the legacy lookup sheet. The tiered calculator only uses it
// to recognise standard AQL values.
type AqlLimitEntry struct {
	AQL    float64 `json:"aql" yaml:"aql"`
	Accept int     `json:"accept" yaml:"accept"`
	Reject int     `json:"reject" yaml:"reject"`
}

var StandardAQLs = []AqlLimitEntry{
	{0.010, 0, 1},
	{0.015, 0, 1},
	{0.025, 0, 1},
	{0.040, 0, 1},
	{0.065, 0, 1},
	{0.10, 0, 1},
	{0.15, 0, 1},
	{0.25, 0, 2},
	{0.40, 0, 3},
	{0.65, 0, 4},
	{1.0, 0, 7},
	{1.5, 0, 10},
	{2.5, 0, 14},
	{4.0, 0, 20},
	{6.5, 0, 30},
}

const aqlMatchTolerance = 1e-9

// LimitFor finds the standard entry for aqlPercent. Values parsed from text
// such as "0.1" match 0.10 exactly; the tolerance only covers arithmetic noise.
func LimitFor(aqlPercent float64) (AqlLimitEntry, bool) {
	for _, entry := range StandardAQLs {
		if math.Abs(entry.AQL-aqlPercent) <= aqlMatchTolerance {
			return entry, true
		}
	}
	return AqlLimitEntry{}, false
}

func IsStandardAQL(aqlPercent float64) bool {
	_, ok := LimitFor(aqlPercent)
	return ok
}
