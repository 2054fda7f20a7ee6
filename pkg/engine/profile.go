package engine

import "github.com/solarquote/solarquote/pkg/types"

// GenerationCurve distributes one day's generation across the 24 hours using
// the fixed daylight weighting table.
func GenerationCurve(systemSizeKWP, sunPeakHours float64) [24]float64 {
	dailyKWH := systemSizeKWP * sunPeakHours
	var curve [24]float64
	for hour, pct := range generationWeights {
		curve[hour] = dailyKWH * pct / 100.0
	}
	return curve
}

// CommercialLoadCurve models one day's consumption as an always-on base load
// plus an operational load inside the day's working window. Hours outside the
// window carry only the base load. A zero weekly working-hours figure leaves
// just the base load rather than dividing by zero.
func CommercialLoadCurve(monthlyUsageKWH float64, weeklyWorkingHours int, window types.WorkingHours) [24]float64 {
	baseKWH := monthlyUsageKWH * baseLoadPercent / hoursPerMonth

	var operationalKWH float64
	if weeklyWorkingHours > 0 {
		operationalKWH = monthlyUsageKWH * (1 - baseLoadPercent) / (float64(weeklyWorkingHours) * weeksPerMonth)
	}

	var curve [24]float64
	for hour := 0; hour < 24; hour++ {
		curve[hour] = baseKWH
		if window.Contains(hour) {
			curve[hour] += operationalKWH
		}
	}
	return curve
}

// MorningUsageKWH is the share of domestic monthly usage that falls in
// daylight hours and can offset solar directly.
func MorningUsageKWH(monthlyUsageKWH, morningUsagePercent float64) float64 {
	return monthlyUsageKWH * morningUsagePercent / 100.0
}
