package engine

import (
	"math"

	"github.com/solarquote/solarquote/pkg/types"
)

// RecommendPanels returns the recommended panel count for the category,
// floored at 1. The commercial formula sizes the array to cover a fixed
// share of monthly usage at the given wattage; the domestic formula uses a
// fixed-wattage-normalized divisor instead.
func RecommendPanels(category types.Category, monthlyUsageKWH, sunPeakHours float64, panelWattageW int) int {
	if monthlyUsageKWH <= 0 || sunPeakHours <= 0 || panelWattageW <= 0 {
		return 1
	}

	var panels int
	switch category {
	case types.CategoryCommercial:
		targetDailyKW := monthlyUsageKWH * coverageRatio / daysPerMonth / sunPeakHours * 1000
		panels = int(math.Ceil(targetDailyKW / float64(panelWattageW)))
	default:
		panels = int(math.Floor(monthlyUsageKWH / sunPeakHours / daysPerMonth / domesticPanelDivisor))
	}

	if panels < 1 {
		return 1
	}
	return panels
}

// SystemSizeKWP is the nameplate capacity of the array.
func SystemSizeKWP(panels, panelWattageW int) float64 {
	return float64(panels*panelWattageW) / 1000.0
}

// SelectPackage returns the cheapest package matching the panel count exactly
// and either the requested product or, when productID is empty, the requested
// wattage. No near-miss substitution: a miss returns nil and the caller falls
// back to an estimated cost.
func SelectPackage(packages []types.PackageOption, panels, panelWattageW int, productID string) *types.PackageOption {
	var best *types.PackageOption
	for i := range packages {
		p := packages[i]
		if p.PanelQuantity != panels {
			continue
		}
		if productID != "" {
			if p.ProductID != productID {
				continue
			}
		} else if p.PanelWattageW != panelWattageW {
			continue
		}
		if best == nil || p.PriceRM < best.PriceRM {
			best = &p
		}
	}
	return best
}
