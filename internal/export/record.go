package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/apetre/climatico-scraper/internal/models"
)

const (
	productType           = "Aer conditionat"
	baseTags              = "aer conditionat, climatizare"
	googleProductCategory = "Home & Garden > Household Appliances > Climate Control Appliances > Air Conditioners"
	categorySeparator     = " > "
)

// BuildRecord maps one scraped product onto the full Shopify import
// schema. It is a pure function: the output depends only on the record
// and fixed defaults, so re-exporting the same product is byte-identical.
func BuildRecord(p models.ACProduct) models.ShopifyProduct {
	title := strings.TrimSpace(p.Name)

	return models.ShopifyProduct{
		Handle:         p.ProductCode,
		Title:          title,
		BodyHTML:       descriptionHTML(p),
		Vendor:         p.Manufacturer,
		Type:           productType,
		Tags:           tagsFor(p),
		SEOTitle:       title,
		SEODescription: title,
		ImageSrc:       p.ListingImageURL,
		ImageAltText:   title,
		VariantSKU:     p.ProductCode,
		VariantImage:   p.ListingImageURL,

		GoogleProductCategory: googleProductCategory,
		GoogleMPN:             p.ProductCode,

		// Publication-ready defaults for a bulk import.
		Published:                 "TRUE",
		VariantGrams:              "0",
		VariantInventoryTracker:   "shopify",
		VariantInventoryQty:       "0",
		VariantInventoryPolicy:    "deny",
		VariantFulfillmentService: "manual",
		VariantPrice:              "0.00",
		VariantRequiresShipping:   "TRUE",
		VariantTaxable:            "TRUE",
		VariantWeightUnit:         "kg",
		ImagePosition:             "1",
		GiftCard:                  "FALSE",
		GoogleCondition:           "new",
		GoogleCustomProduct:       "FALSE",
	}
}

func tagsFor(p models.ACProduct) string {
	tags := baseTags
	if p.Manufacturer != "" {
		tags += ", " + strings.ToLower(p.Manufacturer)
	}
	return tags
}

func yesNo(b bool) string {
	if b {
		return "Da"
	}
	return "Nu"
}

// descriptionHTML renders the extracted attributes as the product body: a
// plain two-column table followed by nothing else. Empty attributes still
// get a row so every description has the same shape.
func descriptionHTML(p models.ACProduct) string {
	rows := []struct {
		label string
		value string
	}{
		{"Capacitate racire", p.CoolingBTUCapacity},
		{"Capacitate incalzire", p.HeatingBTUCapacity},
		{"Clasa energetica racire", p.CoolingEnergyClass},
		{"Clasa energetica incalzire", p.HeatingEnergyClass},
		{"Tensiune alimentare", p.MainsVoltage},
		{"Lungime unitate interna", p.InternalUnitLength},
		{"Conexiune Wi-Fi", yesNo(p.HasWifiConnection)},
		{"Categorie", strings.Join(p.CategoryDrillDown, categorySeparator)},
	}

	var b strings.Builder
	b.WriteString("<table>")
	for _, row := range rows {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>",
			row.label, html.EscapeString(row.value))
	}
	b.WriteString("</table>")
	return b.String()
}
