// Package tariff resolves bill amounts and usage figures against a tariff
// schedule. Resolution is total: every input maps to some row via the
// documented fallback-to-extreme policy, so callers never handle a miss.
package tariff

import (
	"errors"

	"github.com/solarquote/solarquote/pkg/types"
)

var ErrEmptySchedule = errors.New("tariff schedule is empty")

// ResolveByAmount returns the row whose AFA-adjusted total is closest to the
// target amount without exceeding it. If the target is below the cheapest
// row, the row with the smallest adjusted total is returned instead. The
// schedule must be sorted ascending by usage; ties break on table order.
func ResolveByAmount(rows []types.TariffRow, targetAmountRM, afaRatePerKWH float64) (types.TariffRow, error) {
	if len(rows) == 0 {
		return types.TariffRow{}, ErrEmptySchedule
	}

	var best types.TariffRow
	var bestTotal float64
	found := false

	lowest := rows[0]
	lowestTotal := lowest.AdjustedTotal(afaRatePerKWH)

	for _, row := range rows {
		adjusted := row.AdjustedTotal(afaRatePerKWH)
		if adjusted < lowestTotal {
			lowest = row
			lowestTotal = adjusted
		}
		if adjusted > targetAmountRM {
			continue
		}
		if !found || adjusted > bestTotal {
			best = row
			bestTotal = adjusted
			found = true
		}
	}

	if !found {
		return lowest, nil
	}
	return best, nil
}

// ResolveByUsage returns the row with the greatest usage not exceeding the
// target. Non-positive targets and targets below the first row resolve to
// the row with the smallest usage.
func ResolveByUsage(rows []types.TariffRow, targetUsageKWH float64) (types.TariffRow, error) {
	if len(rows) == 0 {
		return types.TariffRow{}, ErrEmptySchedule
	}

	var best types.TariffRow
	found := false

	lowest := rows[0]

	for _, row := range rows {
		if row.UsageKWH < lowest.UsageKWH {
			lowest = row
		}
		if targetUsageKWH <= 0 || row.UsageKWH > targetUsageKWH {
			continue
		}
		if !found || row.UsageKWH > best.UsageKWH {
			best = row
			found = true
		}
	}

	if !found {
		return lowest, nil
	}
	return best, nil
}
