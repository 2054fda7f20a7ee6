package types

import "time"

// Bill is a usage/amount pair as priced by the tariff schedule.
type Bill struct {
	UsageKWH float64 `json:"usageKWH"`
	AmountRM float64 `json:"amountRM"`
}

// BillComparison holds the before bill and the two after bills. AfterBaseline
// assumes solar only; AfterWithBattery additionally credits battery
// discharge. Both are always populated so reports can show the incremental
// value of the battery.
type BillComparison struct {
	Before           Bill `json:"before"`
	AfterBaseline    Bill `json:"afterBaseline"`
	AfterWithBattery Bill `json:"afterWithBattery"`
}

// SavingsBreakdown decomposes the monthly savings of one scenario.
// BillReductionRM == AFAImpactRM + BaseBillReductionRM and
// TotalMonthlyRM == BillReductionRM + ExportCreditRM.
type SavingsBreakdown struct {
	BillReductionRM     float64 `json:"billReductionRM"`
	BaseBillReductionRM float64 `json:"baseBillReductionRM"`
	AFAImpactRM         float64 `json:"afaImpactRM"`
	ExportCreditRM      float64 `json:"exportCreditRM"`
	TotalMonthlyRM      float64 `json:"totalMonthlyRM"`
}

// ChargeDelta is the before/after/delta of one tariff charge component.
type ChargeDelta struct {
	Component string  `json:"component"`
	BeforeRM  float64 `json:"beforeRM"`
	AfterRM   float64 `json:"afterRM"`
	DeltaRM   float64 `json:"deltaRM"`
}

// DailyYield is the simulated solar yield for one day of the week.
type DailyYield struct {
	Day             time.Weekday `json:"day"`
	SelfConsumedKWH float64      `json:"selfConsumedKWH"`
	ExportedKWH     float64      `json:"exportedKWH"`
}

// SimulationResult is the output aggregate of one simulation run. All numeric
// fields are rounded to 2 decimal places at the engine boundary.
type SimulationResult struct {
	Category Category `json:"category"`

	RecommendedPanels int            `json:"recommendedPanels"`
	ActualPanels      int            `json:"actualPanels"`
	SelectedPackage   *PackageOption `json:"selectedPackage,omitempty"`
	SystemSizeKWP     float64        `json:"systemSizeKWP"`

	MonthlyGenerationKWH float64      `json:"monthlyGenerationKWH"`
	DailyYield           []DailyYield `json:"dailyYield,omitempty"`

	BillComparison     BillComparison   `json:"billComparison"`
	SavingsBaseline    SavingsBreakdown `json:"savingsBaseline"`
	SavingsWithBattery SavingsBreakdown `json:"savingsWithBattery"`
	ChargeDeltas       []ChargeDelta    `json:"chargeDeltas"`

	MonthlyDischargeKWH float64 `json:"monthlyDischargeKWH"`
	ExportKWH           float64 `json:"exportKWH"`
	ExportKWHBaseline   float64 `json:"exportKWHBaseline"`

	FinalCostRM   float64 `json:"finalCostRM"`
	CostEstimated bool    `json:"costEstimated"`
	// PaybackYears is nil when the monthly savings are not positive.
	PaybackYears *float64 `json:"paybackYears,omitempty"`
}
