package engine

import (
	"testing"

	"github.com/solarquote/solarquote/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestGenerationWeights(t *testing.T) {
	var total float64
	for hour, pct := range generationWeights {
		assert.GreaterOrEqual(t, hour, 7)
		assert.LessOrEqual(t, hour, 18)
		assert.Greater(t, pct, 0.0)
		total += pct
	}
	// the weighting table distributes exactly 100% of daily generation
	assert.InDelta(t, 100.0, total, 0.0001)
}

func TestGenerationCurve(t *testing.T) {
	curve := GenerationCurve(11.16, 3.4)
	dailyKWH := 11.16 * 3.4

	var total float64
	for hour := 0; hour < 24; hour++ {
		if hour < 7 || hour > 18 {
			assert.Zero(t, curve[hour], "hour %d should have no generation", hour)
		}
		total += curve[hour]
	}
	assert.InDelta(t, dailyKWH, total, 0.0001)

	// bell shape peaks at solar noon
	assert.Greater(t, curve[12], curve[9])
	assert.Greater(t, curve[13], curve[17])
	assert.Equal(t, curve[12], curve[13])
}

func TestCommercialLoadCurve(t *testing.T) {
	t.Run("Base Plus Operational", func(t *testing.T) {
		// 3000 kWh/month, 30% base load spread over 720h = 1.25 kWh/h
		// operational: 3000*0.7/(45*4.33) = 10.777 kWh/h inside the window
		curve := CommercialLoadCurve(3000, 45, types.WorkingHours{StartHour: 9, EndHour: 18})
		assert.InDelta(t, 1.25, curve[3], 0.001)
		assert.InDelta(t, 1.25+10.777, curve[12], 0.01)
		assert.InDelta(t, 1.25, curve[18], 0.001, "end hour is exclusive")
	})

	t.Run("Closed Day Carries Base Load Only", func(t *testing.T) {
		curve := CommercialLoadCurve(3000, 45, types.WorkingHours{})
		for hour := 0; hour < 24; hour++ {
			assert.InDelta(t, 1.25, curve[hour], 0.001)
		}
	})

	t.Run("Zero Weekly Hours Does Not Divide By Zero", func(t *testing.T) {
		curve := CommercialLoadCurve(3000, 0, types.WorkingHours{StartHour: 9, EndHour: 18})
		for hour := 0; hour < 24; hour++ {
			assert.InDelta(t, 1.25, curve[hour], 0.001)
			assert.False(t, curve[hour] != curve[hour], "NaN leaked into the curve")
		}
	})
}

func TestMorningUsageKWH(t *testing.T) {
	assert.InDelta(t, 480.0, MorningUsageKWH(1200, 40), 0.0001)
	assert.InDelta(t, 1200.0, MorningUsageKWH(1200, 100), 0.0001)
}
