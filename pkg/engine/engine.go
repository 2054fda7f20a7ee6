// Package engine implements the solar savings and battery dispatch
// simulation pipeline: tariff reverse-lookup, system sizing, load and
// generation modeling, battery dispatch, bill recomputation, savings
// decomposition and payback. The pipeline is a pure function of its inputs;
// the only I/O is the read-only catalog lookups.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/solarquote/solarquote/pkg/catalog"
	"github.com/solarquote/solarquote/pkg/log"
	"github.com/solarquote/solarquote/pkg/tariff"
	"github.com/solarquote/solarquote/pkg/types"
)

// Engine runs simulations against an injected catalog provider. It holds no
// per-run state; concurrent Simulate calls are independent.
type Engine struct {
	catalog catalog.Provider
}

// New returns an Engine reading from the given catalog provider.
func New(p catalog.Provider) *Engine {
	return &Engine{catalog: p}
}

// Simulate runs the full pipeline for one validated config. All numeric
// outputs are rounded to 2 decimal places here at the boundary, never
// internally, to avoid compounding rounding error through the stages.
func (e *Engine) Simulate(ctx context.Context, cfg types.SimulationConfig) (*types.SimulationResult, error) {
	// the schedule and catalog reads are independent, fetch them concurrently
	type tariffFetch struct {
		rows []types.TariffRow
		err  error
	}
	type packageFetch struct {
		pkgs []types.PackageOption
		err  error
	}
	tariffCh := make(chan tariffFetch, 1)
	packageCh := make(chan packageFetch, 1)
	go func() {
		rows, err := e.catalog.GetTariffTable(ctx, cfg.Category)
		tariffCh <- tariffFetch{rows: rows, err: err}
	}()
	go func() {
		pkgs, err := e.catalog.GetPackages(ctx, cfg.Category)
		packageCh <- packageFetch{pkgs: pkgs, err: err}
	}()

	tf := <-tariffCh
	if tf.err != nil {
		return nil, fmt.Errorf("failed to fetch tariff schedule: %w", tf.err)
	}
	pf := <-packageCh
	if pf.err != nil {
		return nil, fmt.Errorf("failed to fetch packages: %w", pf.err)
	}

	// resolve the before bill from whichever input is primary
	var beforeRow types.TariffRow
	var err error
	monthlyUsageKWH := cfg.MonthlyUsageKWH
	if monthlyUsageKWH > 0 {
		beforeRow, err = tariff.ResolveByUsage(tf.rows, monthlyUsageKWH)
	} else {
		beforeRow, err = tariff.ResolveByAmount(tf.rows, cfg.BillAmountRM, cfg.AFARatePerKWH)
		if err == nil {
			monthlyUsageKWH = beforeRow.UsageKWH
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current tariff: %w", err)
	}

	// sizing and package selection
	recommended := RecommendPanels(cfg.Category, monthlyUsageKWH, cfg.SunPeakHours, cfg.PanelWattageW)
	actual := recommended
	if cfg.PanelCountOverride > 0 {
		actual = cfg.PanelCountOverride
	}
	selected := SelectPackage(pf.pkgs, actual, cfg.PanelWattageW, cfg.ProductID)
	systemSizeKWP := SystemSizeKWP(actual, cfg.PanelWattageW)

	log.Ctx(ctx).DebugContext(ctx, "system sized",
		slog.Int("recommendedPanels", recommended),
		slog.Int("actualPanels", actual),
		slog.Float64("systemSizeKWP", systemSizeKWP),
		slog.Bool("packageMatched", selected != nil),
	)

	// dispatch simulation, both with battery and baseline
	withBattery, baseline := StrategyFor(cfg.Category).Simulate(cfg, monthlyUsageKWH, systemSizeKWP)

	// recompute the bill on post-solar net usage
	afterBaselineRow, err := tariff.ResolveByUsage(tf.rows, baseline.NetUsageKWH)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute baseline bill: %w", err)
	}
	afterBatteryRow, err := tariff.ResolveByUsage(tf.rows, withBattery.NetUsageKWH)
	if err != nil {
		return nil, fmt.Errorf("failed to recompute battery bill: %w", err)
	}

	beforeBill := MakeBill(beforeRow, cfg.AFARatePerKWH)
	afterBaselineBill := MakeBill(afterBaselineRow, cfg.AFARatePerKWH)
	afterBatteryBill := MakeBill(afterBatteryRow, cfg.AFARatePerKWH)

	savingsBaseline := DecomposeSavings(beforeBill, afterBaselineBill, baseline.ExportedKWH, cfg.ExportPriceRM, cfg.AFARatePerKWH)
	savingsWithBattery := DecomposeSavings(beforeBill, afterBatteryBill, withBattery.ExportedKWH, cfg.ExportPriceRM, cfg.AFARatePerKWH)

	finalCostRM, estimated, paybackYears := ComputeROI(selected, systemSizeKWP, cfg.DiscountPercent, cfg.DiscountFixedRM, savingsWithBattery.TotalMonthlyRM)

	log.Ctx(ctx).DebugContext(ctx, "simulation complete",
		slog.Float64("monthlyUsageKWH", monthlyUsageKWH),
		slog.Float64("netUsageKWH", withBattery.NetUsageKWH),
		slog.Float64("totalMonthlySavingsRM", savingsWithBattery.TotalMonthlyRM),
		slog.Bool("costEstimated", estimated),
	)

	result := &types.SimulationResult{
		Category:          cfg.Category,
		RecommendedPanels: recommended,
		ActualPanels:      actual,
		SelectedPackage:   selected,
		SystemSizeKWP:     round2(systemSizeKWP),

		MonthlyGenerationKWH: round2(systemSizeKWP * cfg.SunPeakHours * daysPerMonth),
		DailyYield:           roundYield(withBattery.DailyYield),

		BillComparison: types.BillComparison{
			Before:           roundBill(beforeBill),
			AfterBaseline:    roundBill(afterBaselineBill),
			AfterWithBattery: roundBill(afterBatteryBill),
		},
		SavingsBaseline:    roundBreakdown(savingsBaseline),
		SavingsWithBattery: roundBreakdown(savingsWithBattery),
		ChargeDeltas:       roundDeltas(ChargeDeltas(beforeRow, afterBatteryRow, cfg.AFARatePerKWH)),

		MonthlyDischargeKWH: round2(withBattery.BatteryDischargeKWH),
		ExportKWH:           round2(withBattery.ExportedKWH),
		ExportKWHBaseline:   round2(baseline.ExportedKWH),

		FinalCostRM:   round2(finalCostRM),
		CostEstimated: estimated,
	}
	if paybackYears != nil {
		years := round2(*paybackYears)
		result.PaybackYears = &years
	}
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundBill(b types.Bill) types.Bill {
	b.UsageKWH = round2(b.UsageKWH)
	b.AmountRM = round2(b.AmountRM)
	return b
}

func roundBreakdown(s types.SavingsBreakdown) types.SavingsBreakdown {
	s.BillReductionRM = round2(s.BillReductionRM)
	s.BaseBillReductionRM = round2(s.BaseBillReductionRM)
	s.AFAImpactRM = round2(s.AFAImpactRM)
	s.ExportCreditRM = round2(s.ExportCreditRM)
	s.TotalMonthlyRM = round2(s.TotalMonthlyRM)
	return s
}

func roundDeltas(deltas []types.ChargeDelta) []types.ChargeDelta {
	for i := range deltas {
		deltas[i].BeforeRM = round2(deltas[i].BeforeRM)
		deltas[i].AfterRM = round2(deltas[i].AfterRM)
		deltas[i].DeltaRM = round2(deltas[i].DeltaRM)
	}
	return deltas
}

func roundYield(yield []types.DailyYield) []types.DailyYield {
	for i := range yield {
		yield[i].SelfConsumedKWH = round2(yield[i].SelfConsumedKWH)
		yield[i].ExportedKWH = round2(yield[i].ExportedKWH)
	}
	return yield
}
