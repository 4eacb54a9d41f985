package models

// Currency sign for a listed price.
type Currency string

const (
	RON Currency = "RON"
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// ACProduct is one air-conditioning product scraped from a listing page.
type ACProduct struct {
	// Product name, taken from the listing image alt text.
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`

	// Uniquely identifying product code. Used as the export unit key.
	ProductCode string `json:"product_code"`
	// URL of the dedicated product detail page.
	ProductURL string `json:"product_url"`

	ResellerProductPageURL     string `json:"reseller_product_page_url"`
	ManufacturerProductPageURL string `json:"manufacturer_product_page_url"`

	// Local file path of the main listing image, if downloaded.
	ListingImagePath string `json:"listing_image_path"`
	ListingImageURL  string `json:"listing_image_url"`

	Price    float64  `json:"price"`
	Currency Currency `json:"currency"`

	HasWifiConnection bool `json:"has_wifi_connection"`
	// Compatible mains voltage(s).
	MainsVoltage string `json:"mains_voltage"`
	// Internal unit length, the main dimension used to check mounting fit.
	InternalUnitLength string `json:"internal_unit_length"`

	HeatingNoiseLevel string `json:"heating_noise_level"`
	CoolingNoiseLevel string `json:"cooling_noise_level"`

	HeatingEnergyClass string `json:"heating_energy_class"`
	CoolingEnergyClass string `json:"cooling_energy_class"`

	HeatingBTUCapacity string `json:"heating_btu_capacity"`
	CoolingBTUCapacity string `json:"cooling_btu_capacity"`

	// Root-to-leaf category path, e.g. ["Rezidential", "AC", "Split"].
	// Not populated by listing extraction; reserved for a breadcrumb source.
	CategoryDrillDown []string `json:"category_drill_down"`
}

// NewACProduct returns a product with every text field at its empty
// default. Extraction fills fields best-effort and leaves the rest.
func NewACProduct() ACProduct {
	return ACProduct{
		Currency:          RON,
		CategoryDrillDown: []string{},
	}
}
