package catalog

import (
	"context"

	"github.com/solarquote/solarquote/pkg/types"
)

// Provider defines the interface for fetching tariff schedules and the
// hardware catalog. Both reads are side-effect-free and may be issued
// concurrently.
type Provider interface {
	// GetTariffTable returns the full tariff schedule for the category,
	// sorted ascending by UsageKWH.
	GetTariffTable(ctx context.Context, category types.Category) ([]types.TariffRow, error)

	// GetPackages returns the active, non-special packages for the category
	// with PanelWattageW resolved from each package's linked product.
	GetPackages(ctx context.Context, category types.Category) ([]types.PackageOption, error)

	// Lifecycle
	Close() error
}
