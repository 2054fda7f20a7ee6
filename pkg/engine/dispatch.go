package engine

import (
	"math"
	"time"

	"github.com/solarquote/solarquote/pkg/types"
)

// DispatchResult aggregates one month of simulated energy flows.
type DispatchResult struct {
	// SelfConsumedKWH is generation consumed directly on-site.
	SelfConsumedKWH float64
	// ExportedKWH is generation sent to the grid.
	ExportedKWH float64
	// BatteryDischargeKWH is stored solar consumed later (0 without battery).
	BatteryDischargeKWH float64
	// NetUsageKWH is grid usage remaining after solar and battery.
	NetUsageKWH float64
	// DailyYield holds one entry per day of week.
	DailyYield []types.DailyYield
}

// DispatchStrategy simulates a month of energy flows for one usage model.
// WithBattery and Baseline are both always produced: Baseline assumes no
// battery so reports can show the battery's incremental value. Strategies
// preserve offset+export <= generation and offset <= consumption cap by
// construction.
type DispatchStrategy interface {
	Simulate(cfg types.SimulationConfig, monthlyUsageKWH, systemSizeKWP float64) (withBattery, baseline DispatchResult)
}

// StrategyFor returns the dispatch strategy for the category. Domestic
// customers get the monthly-aggregate battery-aware model; commercial
// customers get the hourly profile model, which has no battery support.
func StrategyFor(category types.Category) DispatchStrategy {
	if category == types.CategoryCommercial {
		return HourlyProfile{}
	}
	return MonthlyAggregate{}
}

// MonthlyAggregate is the domestic dispatch model. It works at the
// monthly-aggregate level: daylight usage offsets generation directly and a
// battery shifts excess daytime solar into the night, capped independently by
// excess solar, night usage, and the battery capacity.
type MonthlyAggregate struct{}

var _ DispatchStrategy = MonthlyAggregate{}

func (MonthlyAggregate) Simulate(cfg types.SimulationConfig, monthlyUsageKWH, systemSizeKWP float64) (withBattery, baseline DispatchResult) {
	monthlySolarGen := systemSizeKWP * cfg.SunPeakHours * daysPerMonth
	morningKWH := MorningUsageKWH(monthlyUsageKWH, cfg.MorningUsagePercent)

	selfConsumed := math.Min(monthlySolarGen, morningKWH)

	baseline = DispatchResult{
		SelfConsumedKWH: selfConsumed,
		ExportedKWH:     math.Max(0, monthlySolarGen-morningKWH),
		NetUsageKWH:     math.Max(0, monthlyUsageKWH-selfConsumed),
	}

	// daily discharge is the minimum of three independent caps
	excessSolarCap := math.Max(0, monthlySolarGen-morningKWH) / daysPerMonth
	nightUsageCap := math.Max(0, monthlyUsageKWH-morningKWH) / daysPerMonth
	dailyDischarge := math.Min(excessSolarCap, math.Min(nightUsageCap, cfg.BatteryCapacityKWH))
	monthlyDischarge := dailyDischarge * daysPerMonth

	withBattery = DispatchResult{
		SelfConsumedKWH:     selfConsumed,
		ExportedKWH:         math.Max(0, monthlySolarGen-morningKWH-monthlyDischarge),
		BatteryDischargeKWH: monthlyDischarge,
		NetUsageKWH:         math.Max(0, monthlyUsageKWH-selfConsumed-monthlyDischarge),
	}

	baseline.DailyYield = domesticDailyYield(baseline)
	withBattery.DailyYield = domesticDailyYield(withBattery)
	return withBattery, baseline
}

// domesticDailyYield spreads the monthly aggregate evenly across the week
// since the domestic model has no per-day resolution.
func domesticDailyYield(r DispatchResult) []types.DailyYield {
	out := make([]types.DailyYield, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		out[day] = types.DailyYield{
			Day:             day,
			SelfConsumedKWH: r.SelfConsumedKWH / daysPerMonth,
			ExportedKWH:     r.ExportedKWH / daysPerMonth,
		}
	}
	return out
}

// HourlyProfile is the commercial dispatch model. Each weekday gets its own
// load curve from the configured working window; generation offsets load hour
// by hour up to a fixed safety multiple of the modeled load, and the rest is
// exported. There is no battery in this model, so the baseline result equals
// the with-battery result.
type HourlyProfile struct{}

var _ DispatchStrategy = HourlyProfile{}

func (HourlyProfile) Simulate(cfg types.SimulationConfig, monthlyUsageKWH, systemSizeKWP float64) (withBattery, baseline DispatchResult) {
	generation := GenerationCurve(systemSizeKWP, cfg.SunPeakHours)
	weeklyWorkingHours := cfg.WeeklyWorkingHours()

	var weeklySelf, weeklyExport float64
	yield := make([]types.DailyYield, 7)

	for day := time.Sunday; day <= time.Saturday; day++ {
		load := CommercialLoadCurve(monthlyUsageKWH, weeklyWorkingHours, cfg.WorkingHours[day])

		var daySelf, dayExport float64
		for hour := 0; hour < 24; hour++ {
			consumptionCap := load[hour] * selfUseMultiplier
			offset := math.Min(generation[hour], consumptionCap)
			export := math.Max(0, generation[hour]-consumptionCap)
			daySelf += offset
			dayExport += export
		}

		yield[day] = types.DailyYield{
			Day:             day,
			SelfConsumedKWH: daySelf,
			ExportedKWH:     dayExport,
		}
		weeklySelf += daySelf
		weeklyExport += dayExport
	}

	result := DispatchResult{
		SelfConsumedKWH: weeklySelf * weeksPerMonth,
		ExportedKWH:     weeklyExport * weeksPerMonth,
		NetUsageKWH:     math.Max(0, monthlyUsageKWH-weeklySelf*weeksPerMonth),
		DailyYield:      yield,
	}

	return result, result
}
