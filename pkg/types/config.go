package types

import (
	"errors"
	"fmt"
)

// Input bounds enforced by SimulationConfig.Validate. These mirror what the
// quoting UI allows.
const (
	MinSunPeakHours = 3.0
	MaxSunPeakHours = 4.5

	MinPanelWattageW = 400
	MaxPanelWattageW = 800

	MaxExportPriceRM = 1.0
)

var (
	ErrMissingUsage = errors.New("either billAmountRM or monthlyUsageKWH is required")
)

// WorkingHours is the operating window for one day of the week. StartHour is
// inclusive, EndHour is exclusive, both 0-24. A zero window means closed.
type WorkingHours struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// Hours returns the number of operating hours in the window.
func (w WorkingHours) Hours() int {
	if w.EndHour <= w.StartHour {
		return 0
	}
	return w.EndHour - w.StartHour
}

// Contains returns true if the hour of day falls inside the window.
func (w WorkingHours) Contains(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

// SimulationConfig is the single input aggregate for one simulation run.
// Exactly one of BillAmountRM or MonthlyUsageKWH is the primary input; the
// other is derived via the tariff schedule.
type SimulationConfig struct {
	Category Category `json:"category"`

	BillAmountRM    float64 `json:"billAmountRM,omitempty"`
	MonthlyUsageKWH float64 `json:"monthlyUsageKWH,omitempty"`

	SunPeakHours  float64 `json:"sunPeakHours"`
	PanelWattageW int     `json:"panelWattageW"`

	// MorningUsagePercent drives the domestic usage split.
	MorningUsagePercent float64 `json:"morningUsagePercent,omitempty"`
	// WorkingHours drives the commercial usage split, indexed by time.Weekday
	// (0 = Sunday).
	WorkingHours [7]WorkingHours `json:"workingHours,omitempty"`

	ExportPriceRM      float64 `json:"exportPriceRM"`
	BatteryCapacityKWH float64 `json:"batteryCapacityKWH"`
	AFARatePerKWH      float64 `json:"afaRatePerKWH"`

	DiscountPercent float64 `json:"discountPercent"`
	DiscountFixedRM float64 `json:"discountFixedRM"`

	// PanelCountOverride, when > 0, replaces the recommended panel count for
	// package selection and sizing.
	PanelCountOverride int `json:"panelCountOverride,omitempty"`
	// ProductID, when set, restricts package selection to packages linked to
	// this product instead of matching PanelWattageW.
	ProductID string `json:"productID,omitempty"`
}

// Validate checks the bounded ranges. The engine assumes a validated config
// and only guards against zero divisors, so callers must run this first.
func (c SimulationConfig) Validate() error {
	if !c.Category.Valid() {
		return fmt.Errorf("unknown category: %q", c.Category)
	}
	if c.BillAmountRM <= 0 && c.MonthlyUsageKWH <= 0 {
		return ErrMissingUsage
	}
	if c.BillAmountRM < 0 || c.MonthlyUsageKWH < 0 {
		return fmt.Errorf("bill amount and usage cannot be negative")
	}
	if c.SunPeakHours < MinSunPeakHours || c.SunPeakHours > MaxSunPeakHours {
		return fmt.Errorf("sunPeakHours %.2f outside [%.1f, %.1f]", c.SunPeakHours, MinSunPeakHours, MaxSunPeakHours)
	}
	if c.PanelWattageW < MinPanelWattageW || c.PanelWattageW > MaxPanelWattageW {
		return fmt.Errorf("panelWattageW %d outside [%d, %d]", c.PanelWattageW, MinPanelWattageW, MaxPanelWattageW)
	}
	if c.ExportPriceRM < 0 || c.ExportPriceRM > MaxExportPriceRM {
		return fmt.Errorf("exportPriceRM %.4f outside [0, %.1f]", c.ExportPriceRM, MaxExportPriceRM)
	}
	if c.BatteryCapacityKWH < 0 {
		return fmt.Errorf("batteryCapacityKWH cannot be negative")
	}
	if c.DiscountPercent < 0 || c.DiscountPercent > 100 {
		return fmt.Errorf("discountPercent %.2f outside [0, 100]", c.DiscountPercent)
	}
	if c.DiscountFixedRM < 0 {
		return fmt.Errorf("discountFixedRM cannot be negative")
	}
	if c.PanelCountOverride < 0 {
		return fmt.Errorf("panelCountOverride cannot be negative")
	}

	switch c.Category {
	case CategoryDomestic:
		if c.MorningUsagePercent < 1 || c.MorningUsagePercent > 100 {
			return fmt.Errorf("morningUsagePercent %.2f outside [1, 100]", c.MorningUsagePercent)
		}
	case CategoryCommercial:
		for day, w := range c.WorkingHours {
			if w.StartHour < 0 || w.EndHour > 24 || w.EndHour < w.StartHour {
				return fmt.Errorf("invalid working hours for day %d: %d-%d", day, w.StartHour, w.EndHour)
			}
		}
	}
	return nil
}

// WeeklyWorkingHours returns the total configured operating hours per week.
func (c SimulationConfig) WeeklyWorkingHours() int {
	var total int
	for _, w := range c.WorkingHours {
		total += w.Hours()
	}
	return total
}
