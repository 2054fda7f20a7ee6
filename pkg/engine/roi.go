package engine

import (
	"math"

	"github.com/solarquote/solarquote/pkg/types"
)

// ComputeROI returns the final system cost and payback period. When no
// package was selected the cost is estimated from the system size at the
// fixed per-kWp rate and flagged as such. The percentage discount applies to
// the base price first, then the fixed discount, and the result never goes
// below zero. Payback is nil when monthly savings are not positive so a
// division by zero can never leak into the result.
func ComputeROI(selected *types.PackageOption, systemSizeKWP, discountPercent, discountFixedRM, totalMonthlySavingsRM float64) (finalCostRM float64, estimated bool, paybackYears *float64) {
	var baseCost float64
	if selected != nil {
		baseCost = selected.PriceRM
	} else {
		baseCost = systemSizeKWP * fallbackCostPerKWP
		estimated = true
	}

	finalCostRM = baseCost * (1 - discountPercent/100.0)
	finalCostRM -= discountFixedRM
	finalCostRM = math.Max(0, finalCostRM)

	if totalMonthlySavingsRM > 0 {
		years := finalCostRM / (totalMonthlySavingsRM * 12)
		paybackYears = &years
	}
	return finalCostRM, estimated, paybackYears
}
