package engine

// Calibration constants shared by both usage models. These encode pricing and
// sizing decisions that downstream quotes depend on, so they are literal
// values and must not be re-derived.
const (
	daysPerMonth  = 30.0
	hoursPerMonth = 720.0
	weeksPerMonth = 4.33

	// commercial sizing targets covering this share of monthly usage
	coverageRatio = 0.8

	// domestic panel-count divisor, encodes the assumed per-panel kWp baseline
	domesticPanelDivisor = 0.62

	// share of commercial usage treated as always-on base load
	baseLoadPercent = 0.30

	// hourly self-consumption may exceed the nominal modeled load by this factor
	selfUseMultiplier = 1.5

	// estimated system cost per kWp when no package matches exactly
	fallbackCostPerKWP = 3500.0
)

// generationWeights distributes 100% of a day's generation across daylight
// hours (percent per hour of day, zero outside 07:00-19:00).
var generationWeights = map[int]float64{
	7:  2,
	8:  4,
	9:  7,
	10: 10,
	11: 13,
	12: 14,
	13: 14,
	14: 13,
	15: 10,
	16: 7,
	17: 4,
	18: 2,
}
