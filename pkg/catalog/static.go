package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/solarquote/solarquote/pkg/types"
)

// Static serves the built-in tariff schedules and hardware catalog from
// memory. It backs local development and tests and is the seed source for the
// Firestore provider.
type Static struct {
	tariffs  map[types.Category][]types.TariffRow
	products map[string]types.Product
	packages []types.PackageOption
}

var _ Provider = (*Static)(nil)

// NewStatic returns a provider over the built-in dataset.
func NewStatic() *Static {
	return &Static{
		tariffs:  staticTariffs,
		products: staticProducts,
		packages: staticPackages,
	}
}

// GetTariffTable returns the schedule for the category sorted ascending by
// usage.
func (s *Static) GetTariffTable(ctx context.Context, category types.Category) ([]types.TariffRow, error) {
	rows, ok := s.tariffs[category]
	if !ok {
		return nil, fmt.Errorf("no tariff schedule for category: %s", category)
	}
	out := make([]types.TariffRow, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool { return out[i].UsageKWH < out[j].UsageKWH })
	return out, nil
}

// GetPackages returns active, non-special packages for the category with the
// panel wattage resolved from the linked product. Packages linked to an
// inactive or unknown product are skipped.
func (s *Static) GetPackages(ctx context.Context, category types.Category) ([]types.PackageOption, error) {
	var out []types.PackageOption
	for _, p := range s.packages {
		if p.Category != category || !p.Active || p.Special {
			continue
		}
		prod, ok := s.products[p.ProductID]
		if !ok || !prod.Active {
			continue
		}
		p.PanelWattageW = prod.WattageW
		out = append(out, p)
	}
	return out, nil
}

// Products returns all products in the built-in catalog. Used by the seeder.
func (s *Static) Products() []types.Product {
	out := make([]types.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllPackages returns every package including inactive and special ones.
// Used by the seeder.
func (s *Static) AllPackages() []types.PackageOption {
	out := make([]types.PackageOption, len(s.packages))
	copy(out, s.packages)
	return out
}

// Categories returns the categories with a built-in tariff schedule.
func (s *Static) Categories() []types.Category {
	return []types.Category{types.CategoryDomestic, types.CategoryCommercial}
}

func (s *Static) Close() error {
	return nil
}

// staticTariffs encodes the published tariff schedules. Rows are rounded to
// 2 decimal places and TotalRM is the sum of the components; keep it that way
// so per-component deltas reconcile with the totals.
var staticTariffs = map[types.Category][]types.TariffRow{
	types.CategoryDomestic: {
		{UsageKWH: 50, UsageRM: 10.90, NetworkRM: 6.42, CapacityRM: 2.27, TaxRM: 0, LevyRM: 0, TotalRM: 19.59},
		{UsageKWH: 100, UsageRM: 21.80, NetworkRM: 12.85, CapacityRM: 4.55, TaxRM: 0, LevyRM: 0, TotalRM: 39.20},
		{UsageKWH: 150, UsageRM: 32.70, NetworkRM: 19.28, CapacityRM: 6.83, TaxRM: 0, LevyRM: 0, TotalRM: 58.81},
		{UsageKWH: 200, UsageRM: 43.60, NetworkRM: 25.70, CapacityRM: 9.10, TaxRM: 0, LevyRM: 0, TotalRM: 78.40},
		{UsageKWH: 250, UsageRM: 60.30, NetworkRM: 32.12, CapacityRM: 11.38, TaxRM: 0, LevyRM: 0, TotalRM: 103.80},
		{UsageKWH: 300, UsageRM: 77.00, NetworkRM: 38.55, CapacityRM: 13.65, TaxRM: 0, LevyRM: 0, TotalRM: 129.20},
		{UsageKWH: 350, UsageRM: 102.80, NetworkRM: 44.98, CapacityRM: 15.92, TaxRM: 0, LevyRM: 2.62, TotalRM: 166.32},
		{UsageKWH: 400, UsageRM: 128.60, NetworkRM: 51.40, CapacityRM: 18.20, TaxRM: 0, LevyRM: 3.17, TotalRM: 201.37},
		{UsageKWH: 450, UsageRM: 154.40, NetworkRM: 57.83, CapacityRM: 20.47, TaxRM: 0, LevyRM: 3.72, TotalRM: 236.42},
		{UsageKWH: 500, UsageRM: 180.20, NetworkRM: 64.25, CapacityRM: 22.75, TaxRM: 0, LevyRM: 4.28, TotalRM: 271.48},
		{UsageKWH: 550, UsageRM: 206.00, NetworkRM: 70.67, CapacityRM: 25.02, TaxRM: 0, LevyRM: 4.83, TotalRM: 306.52},
		{UsageKWH: 600, UsageRM: 231.80, NetworkRM: 77.10, CapacityRM: 27.30, TaxRM: 0, LevyRM: 5.38, TotalRM: 341.58},
		{UsageKWH: 650, UsageRM: 259.10, NetworkRM: 83.53, CapacityRM: 29.57, TaxRM: 2.29, LevyRM: 5.96, TotalRM: 380.45},
		{UsageKWH: 700, UsageRM: 286.40, NetworkRM: 89.95, CapacityRM: 31.85, TaxRM: 4.67, LevyRM: 6.53, TotalRM: 419.40},
		{UsageKWH: 750, UsageRM: 313.70, NetworkRM: 96.38, CapacityRM: 34.12, TaxRM: 7.11, LevyRM: 7.11, TotalRM: 458.42},
		{UsageKWH: 800, UsageRM: 341.00, NetworkRM: 102.80, CapacityRM: 36.40, TaxRM: 9.60, LevyRM: 7.68, TotalRM: 497.48},
		{UsageKWH: 850, UsageRM: 368.30, NetworkRM: 109.23, CapacityRM: 38.67, TaxRM: 12.15, LevyRM: 8.26, TotalRM: 536.61},
		{UsageKWH: 900, UsageRM: 395.60, NetworkRM: 115.65, CapacityRM: 40.95, TaxRM: 14.73, LevyRM: 8.84, TotalRM: 575.77},
		{UsageKWH: 950, UsageRM: 422.90, NetworkRM: 122.08, CapacityRM: 43.23, TaxRM: 17.34, LevyRM: 9.41, TotalRM: 614.96},
		{UsageKWH: 1000, UsageRM: 450.20, NetworkRM: 128.50, CapacityRM: 45.50, TaxRM: 19.97, LevyRM: 9.99, TotalRM: 654.16},
		{UsageKWH: 1050, UsageRM: 477.50, NetworkRM: 134.93, CapacityRM: 47.77, TaxRM: 22.64, LevyRM: 10.56, TotalRM: 693.40},
		{UsageKWH: 1100, UsageRM: 504.80, NetworkRM: 141.35, CapacityRM: 50.05, TaxRM: 25.32, LevyRM: 11.14, TotalRM: 732.66},
		{UsageKWH: 1150, UsageRM: 532.10, NetworkRM: 147.78, CapacityRM: 52.32, TaxRM: 28.01, LevyRM: 11.72, TotalRM: 771.93},
		{UsageKWH: 1200, UsageRM: 559.40, NetworkRM: 154.20, CapacityRM: 54.60, TaxRM: 30.73, LevyRM: 12.29, TotalRM: 811.22},
		{UsageKWH: 1250, UsageRM: 586.70, NetworkRM: 160.62, CapacityRM: 56.88, TaxRM: 33.45, LevyRM: 12.87, TotalRM: 850.52},
		{UsageKWH: 1300, UsageRM: 614.00, NetworkRM: 167.05, CapacityRM: 59.15, TaxRM: 36.19, LevyRM: 13.44, TotalRM: 889.83},
		{UsageKWH: 1350, UsageRM: 641.30, NetworkRM: 173.47, CapacityRM: 61.42, TaxRM: 38.94, LevyRM: 14.02, TotalRM: 929.15},
		{UsageKWH: 1400, UsageRM: 668.60, NetworkRM: 179.90, CapacityRM: 63.70, TaxRM: 41.70, LevyRM: 14.60, TotalRM: 968.50},
		{UsageKWH: 1450, UsageRM: 695.90, NetworkRM: 186.33, CapacityRM: 65.97, TaxRM: 44.47, LevyRM: 15.17, TotalRM: 1007.84},
		{UsageKWH: 1500, UsageRM: 723.20, NetworkRM: 192.75, CapacityRM: 68.25, TaxRM: 47.24, LevyRM: 15.75, TotalRM: 1047.19},
	},
	types.CategoryCommercial: {
		{UsageKWH: 500, UsageRM: 182.50, NetworkRM: 64.25, CapacityRM: 22.75, TaxRM: 21.56, LevyRM: 4.31, TotalRM: 295.37},
		{UsageKWH: 1000, UsageRM: 365.00, NetworkRM: 128.50, CapacityRM: 45.50, TaxRM: 43.12, LevyRM: 8.62, TotalRM: 590.74},
		{UsageKWH: 1500, UsageRM: 547.50, NetworkRM: 192.75, CapacityRM: 68.25, TaxRM: 64.68, LevyRM: 12.94, TotalRM: 886.12},
		{UsageKWH: 2000, UsageRM: 730.00, NetworkRM: 257.00, CapacityRM: 91.00, TaxRM: 86.24, LevyRM: 17.25, TotalRM: 1181.49},
		{UsageKWH: 2500, UsageRM: 912.50, NetworkRM: 321.25, CapacityRM: 113.75, TaxRM: 107.80, LevyRM: 21.56, TotalRM: 1476.86},
		{UsageKWH: 3000, UsageRM: 1095.00, NetworkRM: 385.50, CapacityRM: 136.50, TaxRM: 129.36, LevyRM: 25.87, TotalRM: 1772.23},
		{UsageKWH: 3500, UsageRM: 1277.50, NetworkRM: 449.75, CapacityRM: 159.25, TaxRM: 150.92, LevyRM: 30.18, TotalRM: 2067.60},
		{UsageKWH: 4000, UsageRM: 1460.00, NetworkRM: 514.00, CapacityRM: 182.00, TaxRM: 172.48, LevyRM: 34.50, TotalRM: 2362.98},
		{UsageKWH: 4500, UsageRM: 1642.50, NetworkRM: 578.25, CapacityRM: 204.75, TaxRM: 194.04, LevyRM: 38.81, TotalRM: 2658.35},
		{UsageKWH: 5000, UsageRM: 1825.00, NetworkRM: 642.50, CapacityRM: 227.50, TaxRM: 215.60, LevyRM: 43.12, TotalRM: 2953.72},
		{UsageKWH: 5500, UsageRM: 2007.50, NetworkRM: 706.75, CapacityRM: 250.25, TaxRM: 237.16, LevyRM: 47.43, TotalRM: 3249.09},
		{UsageKWH: 6000, UsageRM: 2190.00, NetworkRM: 771.00, CapacityRM: 273.00, TaxRM: 258.72, LevyRM: 51.74, TotalRM: 3544.46},
		{UsageKWH: 6500, UsageRM: 2372.50, NetworkRM: 835.25, CapacityRM: 295.75, TaxRM: 280.28, LevyRM: 56.06, TotalRM: 3839.84},
		{UsageKWH: 7000, UsageRM: 2555.00, NetworkRM: 899.50, CapacityRM: 318.50, TaxRM: 301.84, LevyRM: 60.37, TotalRM: 4135.21},
		{UsageKWH: 7500, UsageRM: 2737.50, NetworkRM: 963.75, CapacityRM: 341.25, TaxRM: 323.40, LevyRM: 64.68, TotalRM: 4430.58},
		{UsageKWH: 8000, UsageRM: 2920.00, NetworkRM: 1028.00, CapacityRM: 364.00, TaxRM: 344.96, LevyRM: 68.99, TotalRM: 4725.95},
		{UsageKWH: 8500, UsageRM: 3102.50, NetworkRM: 1092.25, CapacityRM: 386.75, TaxRM: 366.52, LevyRM: 73.30, TotalRM: 5021.32},
		{UsageKWH: 9000, UsageRM: 3285.00, NetworkRM: 1156.50, CapacityRM: 409.50, TaxRM: 388.08, LevyRM: 77.62, TotalRM: 5316.70},
		{UsageKWH: 9500, UsageRM: 3467.50, NetworkRM: 1220.75, CapacityRM: 432.25, TaxRM: 409.64, LevyRM: 81.93, TotalRM: 5612.07},
		{UsageKWH: 10000, UsageRM: 3650.00, NetworkRM: 1285.00, CapacityRM: 455.00, TaxRM: 431.20, LevyRM: 86.24, TotalRM: 5907.44},
	},
}

var staticProducts = map[string]types.Product{
	"pnl-450": {ID: "pnl-450", Name: "Jinko Tiger Neo 450W", WattageW: 450, Category: types.CategoryDomestic, Active: true},
	"pnl-550": {ID: "pnl-550", Name: "Longi Hi-MO 5 550W", WattageW: 550, Category: types.CategoryDomestic, Active: true},
	"pnl-620": {ID: "pnl-620", Name: "Trina Vertex 620W", WattageW: 620, Category: types.CategoryDomestic, Active: true},
	"pnl-700": {ID: "pnl-700", Name: "JA Solar DeepBlue 700W", WattageW: 700, Category: types.CategoryCommercial, Active: true},
}

var staticPackages = []types.PackageOption{
	{ID: "dom-450-8", Name: "Starter 8x450W", PanelQuantity: 8, PriceRM: 13900, ProductID: "pnl-450", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-450-10", Name: "Starter 10x450W", PanelQuantity: 10, PriceRM: 16500, ProductID: "pnl-450", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-550-8", Name: "Essential 8x550W", PanelQuantity: 8, PriceRM: 15800, ProductID: "pnl-550", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-550-10", Name: "Essential 10x550W", PanelQuantity: 10, PriceRM: 18900, ProductID: "pnl-550", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-550-12", Name: "Essential 12x550W", PanelQuantity: 12, PriceRM: 21900, ProductID: "pnl-550", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-620-10", Name: "Performance 10x620W", PanelQuantity: 10, PriceRM: 20800, ProductID: "pnl-620", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-620-12", Name: "Performance 12x620W", PanelQuantity: 12, PriceRM: 23900, ProductID: "pnl-620", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-620-14", Name: "Performance 14x620W", PanelQuantity: 14, PriceRM: 26900, ProductID: "pnl-620", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-620-16", Name: "Performance 16x620W", PanelQuantity: 16, PriceRM: 29800, ProductID: "pnl-620", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-620-18", Name: "Performance 18x620W", PanelQuantity: 18, PriceRM: 32500, ProductID: "pnl-620", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-620-18b", Name: "Performance 18x620W (promo)", PanelQuantity: 18, PriceRM: 31900, ProductID: "pnl-620", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-620-20", Name: "Performance 20x620W", PanelQuantity: 20, PriceRM: 35400, ProductID: "pnl-620", Category: types.CategoryDomestic, Active: true},
	{ID: "dom-expo", Name: "Expo special 12x550W", PanelQuantity: 12, PriceRM: 19900, ProductID: "pnl-550", Category: types.CategoryDomestic, Active: true, Special: true},
	{ID: "dom-legacy", Name: "Legacy 6x450W", PanelQuantity: 6, PriceRM: 11900, ProductID: "pnl-450", Category: types.CategoryDomestic, Active: false},
	{ID: "com-700-40", Name: "Business 40x700W", PanelQuantity: 40, PriceRM: 89000, ProductID: "pnl-700", Category: types.CategoryCommercial, Active: true},
	{ID: "com-700-60", Name: "Business 60x700W", PanelQuantity: 60, PriceRM: 126000, ProductID: "pnl-700", Category: types.CategoryCommercial, Active: true},
	{ID: "com-700-80", Name: "Business 80x700W", PanelQuantity: 80, PriceRM: 159000, ProductID: "pnl-700", Category: types.CategoryCommercial, Active: true},
}
