package engine

import (
	"math"

	"github.com/solarquote/solarquote/pkg/types"
)

// MakeBill prices a resolved tariff row with the AFA surcharge applied. Bill
// amounts always carry the AFA component so the savings decomposition can
// isolate it again.
func MakeBill(row types.TariffRow, afaRatePerKWH float64) types.Bill {
	return types.Bill{
		UsageKWH: row.UsageKWH,
		AmountRM: row.AdjustedTotal(afaRatePerKWH),
	}
}

// DecomposeSavings splits the monthly savings between the before and after
// bills into the base tariff reduction, the AFA-attributable reduction, and
// the export credit. Identities preserved exactly:
// BillReductionRM == AFAImpactRM + BaseBillReductionRM and
// TotalMonthlyRM == BillReductionRM + ExportCreditRM.
func DecomposeSavings(before, after types.Bill, exportKWH, exportPriceRM, afaRatePerKWH float64) types.SavingsBreakdown {
	reduction := math.Max(0, before.AmountRM-after.AmountRM)
	afaImpact := (before.UsageKWH - after.UsageKWH) * afaRatePerKWH
	exportCredit := exportKWH * exportPriceRM

	return types.SavingsBreakdown{
		BillReductionRM:     reduction,
		AFAImpactRM:         afaImpact,
		BaseBillReductionRM: reduction - afaImpact,
		ExportCreditRM:      exportCredit,
		TotalMonthlyRM:      reduction + exportCredit,
	}
}

// ChargeDeltas produces the per-component before/after/delta table for the
// report. The AFA component is synthesized from the usage keys since it is a
// flat per-kWh surcharge rather than a schedule column.
func ChargeDeltas(before, after types.TariffRow, afaRatePerKWH float64) []types.ChargeDelta {
	delta := func(component string, b, a float64) types.ChargeDelta {
		return types.ChargeDelta{
			Component: component,
			BeforeRM:  b,
			AfterRM:   a,
			DeltaRM:   b - a,
		}
	}
	return []types.ChargeDelta{
		delta("usage", before.UsageRM, after.UsageRM),
		delta("network", before.NetworkRM, after.NetworkRM),
		delta("capacity", before.CapacityRM, after.CapacityRM),
		delta("tax", before.TaxRM, after.TaxRM),
		delta("levy", before.LevyRM, after.LevyRM),
		delta("afa", before.UsageKWH*afaRatePerKWH, after.UsageKWH*afaRatePerKWH),
	}
}
