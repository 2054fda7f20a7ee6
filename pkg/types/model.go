package types

const (
	CurrentTariffTableVersion = 1
	CurrentCatalogVersion     = 1
)

// Category identifies which tariff schedule and hardware catalog applies to a
// customer.
type Category string

const (
	CategoryDomestic   Category = "domestic"
	CategoryCommercial Category = "commercial"
)

// Valid returns true if the category is one we have schedules for.
func (c Category) Valid() bool {
	return c == CategoryDomestic || c == CategoryCommercial
}

// TariffRow is one entry of a tariff schedule keyed by monthly usage. Rows in
// a schedule are sorted ascending by UsageKWH and no two rows share a key.
type TariffRow struct {
	UsageKWH   float64 `json:"usageKWH"`
	UsageRM    float64 `json:"usageRM"`
	NetworkRM  float64 `json:"networkRM"`
	CapacityRM float64 `json:"capacityRM"`
	TaxRM      float64 `json:"taxRM"`
	LevyRM     float64 `json:"levyRM"`
	TotalRM    float64 `json:"totalRM"`
}

// AdjustedTotal returns the row total with the AFA surcharge applied to the
// row's usage.
func (r TariffRow) AdjustedTotal(afaRatePerKWH float64) float64 {
	return r.TotalRM + r.UsageKWH*afaRatePerKWH
}

// Product represents a panel model that packages link to.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	WattageW int      `json:"wattageW"`
	Category Category `json:"category"`
	Active   bool     `json:"active"`
}

// PackageOption is a purchasable hardware bundle. PanelWattageW is resolved
// from the linked product when the catalog is loaded. Packages are read-only
// at simulation time.
type PackageOption struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PanelQuantity int      `json:"panelQuantity"`
	PriceRM       float64  `json:"priceRM"`
	ProductID     string   `json:"productID"`
	PanelWattageW int      `json:"panelWattageW"`
	Category      Category `json:"category"`
	Active        bool     `json:"active"`
	Special       bool     `json:"special"`
}
