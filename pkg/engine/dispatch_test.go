package engine

import (
	"testing"

	"github.com/solarquote/solarquote/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func domesticConfig(batteryKWH float64) types.SimulationConfig {
	return types.SimulationConfig{
		Category:            types.CategoryDomestic,
		SunPeakHours:        3.4,
		PanelWattageW:       620,
		MorningUsagePercent: 40,
		BatteryCapacityKWH:  batteryKWH,
	}
}

func TestMonthlyAggregateDispatch(t *testing.T) {
	// 18 panels x 620W = 11.16 kWp; monthly gen = 11.16*3.4*30 = 1138.32
	const systemKWP = 11.16
	const usage = 1200.0

	t.Run("No Battery Is Inert", func(t *testing.T) {
		withBattery, baseline := MonthlyAggregate{}.Simulate(domesticConfig(0), usage, systemKWP)

		assert.Zero(t, withBattery.BatteryDischargeKWH)
		assert.Equal(t, baseline.ExportedKWH, withBattery.ExportedKWH)
		assert.Equal(t, baseline.NetUsageKWH, withBattery.NetUsageKWH)

		// morning usage 480, self consumption min(1138.32, 480) = 480
		assert.InDelta(t, 480.0, baseline.SelfConsumedKWH, 0.001)
		// net usage 1200 - 480 = 720
		assert.InDelta(t, 720.0, baseline.NetUsageKWH, 0.001)
		// export 1138.32 - 480 = 658.32
		assert.InDelta(t, 658.32, baseline.ExportedKWH, 0.001)
	})

	t.Run("Battery Capped By Capacity", func(t *testing.T) {
		withBattery, baseline := MonthlyAggregate{}.Simulate(domesticConfig(5), usage, systemKWP)

		// caps: excess solar 658.32/30=21.94, night usage 720/30=24, capacity 5
		assert.InDelta(t, 150.0, withBattery.BatteryDischargeKWH, 0.001)
		assert.InDelta(t, 570.0, withBattery.NetUsageKWH, 0.001)
		assert.InDelta(t, 508.32, withBattery.ExportedKWH, 0.001)

		// baseline unchanged by the battery
		assert.InDelta(t, 720.0, baseline.NetUsageKWH, 0.001)
		assert.Zero(t, baseline.BatteryDischargeKWH)
	})

	t.Run("Battery Capped By Excess Solar", func(t *testing.T) {
		// huge battery: discharge limited by excess solar (21.944/day)
		withBattery, _ := MonthlyAggregate{}.Simulate(domesticConfig(100), usage, systemKWP)
		assert.InDelta(t, 658.32, withBattery.BatteryDischargeKWH, 0.001)
		assert.InDelta(t, 0.0, withBattery.ExportedKWH, 0.001)
	})

	t.Run("Battery Capped By Night Usage", func(t *testing.T) {
		// oversized array: discharge limited by night usage (720/30=24/day)
		withBattery, _ := MonthlyAggregate{}.Simulate(domesticConfig(100), usage, 30.0)
		assert.InDelta(t, 720.0, withBattery.BatteryDischargeKWH, 0.001)
		assert.InDelta(t, 0.0, withBattery.NetUsageKWH, 0.001)
	})

	t.Run("More Battery Never Reduces Discharge", func(t *testing.T) {
		var prev float64
		for _, capKWH := range []float64{0, 1, 2, 5, 10, 20, 50} {
			withBattery, _ := MonthlyAggregate{}.Simulate(domesticConfig(capKWH), usage, systemKWP)
			assert.GreaterOrEqual(t, withBattery.BatteryDischargeKWH, prev)
			prev = withBattery.BatteryDischargeKWH
		}
	})

	t.Run("Conservation", func(t *testing.T) {
		for _, capKWH := range []float64{0, 5, 100} {
			withBattery, baseline := MonthlyAggregate{}.Simulate(domesticConfig(capKWH), usage, systemKWP)
			monthlyGen := systemKWP * 3.4 * daysPerMonth
			assert.LessOrEqual(t, withBattery.SelfConsumedKWH+withBattery.ExportedKWH+withBattery.BatteryDischargeKWH, monthlyGen+0.001)
			assert.LessOrEqual(t, baseline.SelfConsumedKWH+baseline.ExportedKWH, monthlyGen+0.001)
		}
	})

	t.Run("Daily Yield Covers The Week", func(t *testing.T) {
		withBattery, _ := MonthlyAggregate{}.Simulate(domesticConfig(5), usage, systemKWP)
		require.Len(t, withBattery.DailyYield, 7)
		for _, y := range withBattery.DailyYield {
			assert.InDelta(t, 480.0/30, y.SelfConsumedKWH, 0.001)
		}
	})
}

func commercialConfig() types.SimulationConfig {
	cfg := types.SimulationConfig{
		Category:      types.CategoryCommercial,
		SunPeakHours:  3.5,
		PanelWattageW: 700,
	}
	// open Monday-Friday 9:00-18:00 (45h/week)
	for day := 1; day <= 5; day++ {
		cfg.WorkingHours[day] = types.WorkingHours{StartHour: 9, EndHour: 18}
	}
	return cfg
}

func TestHourlyProfileDispatch(t *testing.T) {
	const usage = 3000.0
	const systemKWP = 23.1 // 33 x 700W

	t.Run("Baseline Equals With Battery", func(t *testing.T) {
		// the commercial model has no battery support
		withBattery, baseline := HourlyProfile{}.Simulate(commercialConfig(), usage, systemKWP)
		assert.Equal(t, baseline, withBattery)
		assert.Zero(t, withBattery.BatteryDischargeKWH)
	})

	t.Run("Hourly Conservation", func(t *testing.T) {
		cfg := commercialConfig()
		generation := GenerationCurve(systemKWP, cfg.SunPeakHours)
		weekly := cfg.WeeklyWorkingHours()
		for day := 0; day < 7; day++ {
			load := CommercialLoadCurve(usage, weekly, cfg.WorkingHours[day])
			for hour := 0; hour < 24; hour++ {
				consumptionCap := load[hour] * selfUseMultiplier
				offset := generation[hour]
				if offset > consumptionCap {
					offset = consumptionCap
				}
				export := generation[hour] - offset
				assert.LessOrEqual(t, offset, consumptionCap+1e-9)
				assert.LessOrEqual(t, offset+export, generation[hour]+1e-9)
			}
		}
	})

	t.Run("Working Days Self Consume More", func(t *testing.T) {
		withBattery, _ := HourlyProfile{}.Simulate(commercialConfig(), usage, systemKWP)
		require.Len(t, withBattery.DailyYield, 7)
		monday := withBattery.DailyYield[1]
		sunday := withBattery.DailyYield[0]
		assert.Greater(t, monday.SelfConsumedKWH, sunday.SelfConsumedKWH)
		assert.Less(t, monday.ExportedKWH, sunday.ExportedKWH)
	})

	t.Run("Weekly Totals Scaled To Month", func(t *testing.T) {
		withBattery, _ := HourlyProfile{}.Simulate(commercialConfig(), usage, systemKWP)
		var weeklySelf, weeklyExport float64
		for _, y := range withBattery.DailyYield {
			weeklySelf += y.SelfConsumedKWH
			weeklyExport += y.ExportedKWH
		}
		assert.InDelta(t, weeklySelf*weeksPerMonth, withBattery.SelfConsumedKWH, 0.001)
		assert.InDelta(t, weeklyExport*weeksPerMonth, withBattery.ExportedKWH, 0.001)
	})

	t.Run("Net Usage Clamped At Zero", func(t *testing.T) {
		// an absurdly large array cannot push net usage negative
		withBattery, _ := HourlyProfile{}.Simulate(commercialConfig(), 100, 500)
		assert.GreaterOrEqual(t, withBattery.NetUsageKWH, 0.0)
	})
}

func TestStrategyFor(t *testing.T) {
	assert.IsType(t, MonthlyAggregate{}, StrategyFor(types.CategoryDomestic))
	assert.IsType(t, HourlyProfile{}, StrategyFor(types.CategoryCommercial))
}
