package models

// ShopifyProduct is one row of the Shopify bulk product import format.
// The column set is fixed and total: a column with no value is emitted as
// an empty string, never omitted.
type ShopifyProduct struct {
	Handle                    string
	Title                     string
	BodyHTML                  string
	Vendor                    string
	Type                      string
	Tags                      string
	Published                 string
	Option1Name               string
	Option1Value              string
	Option2Name               string
	Option2Value              string
	Option3Name               string
	Option3Value              string
	VariantSKU                string
	VariantGrams              string
	VariantInventoryTracker   string
	VariantInventoryQty       string
	VariantInventoryPolicy    string
	VariantFulfillmentService string
	VariantPrice              string
	VariantCompareAtPrice     string
	VariantRequiresShipping   string
	VariantTaxable            string
	VariantBarcode            string
	ImageSrc                  string
	ImagePosition             string
	ImageAltText              string
	GiftCard                  string
	SEOTitle                  string
	SEODescription            string
	GoogleProductCategory     string
	GoogleGender              string
	GoogleAgeGroup            string
	GoogleMPN                 string
	GoogleAdWordsGrouping     string
	GoogleAdWordsLabels       string
	GoogleCondition           string
	GoogleCustomProduct       string
	GoogleCustomLabel0        string
	GoogleCustomLabel1        string
	GoogleCustomLabel2        string
	GoogleCustomLabel3        string
	GoogleCustomLabel4        string
	VariantImage              string
	VariantWeightUnit         string
	VariantTaxCode            string
	CostPerItem               string
}

// ShopifyColumns returns the import column headers in serialization order.
func ShopifyColumns() []string {
	return []string{
		"Handle",
		"Title",
		"Body (HTML)",
		"Vendor",
		"Type",
		"Tags",
		"Published",
		"Option1 Name",
		"Option1 Value",
		"Option2 Name",
		"Option2 Value",
		"Option3 Name",
		"Option3 Value",
		"Variant SKU",
		"Variant Grams",
		"Variant Inventory Tracker",
		"Variant Inventory Qty",
		"Variant Inventory Policy",
		"Variant Fulfillment Service",
		"Variant Price",
		"Variant Compare At Price",
		"Variant Requires Shipping",
		"Variant Taxable",
		"Variant Barcode",
		"Image Src",
		"Image Position",
		"Image Alt Text",
		"Gift Card",
		"SEO Title",
		"SEO Description",
		"Google Shopping / Google Product Category",
		"Google Shopping / Gender",
		"Google Shopping / Age Group",
		"Google Shopping / MPN",
		"Google Shopping / AdWords Grouping",
		"Google Shopping / AdWords Labels",
		"Google Shopping / Condition",
		"Google Shopping / Custom Product",
		"Google Shopping / Custom Label 0",
		"Google Shopping / Custom Label 1",
		"Google Shopping / Custom Label 2",
		"Google Shopping / Custom Label 3",
		"Google Shopping / Custom Label 4",
		"Variant Image",
		"Variant Weight Unit",
		"Variant Tax Code",
		"Cost per item",
	}
}

// Row returns the field values in the same order as ShopifyColumns.
func (p *ShopifyProduct) Row() []string {
	return []string{
		p.Handle,
		p.Title,
		p.BodyHTML,
		p.Vendor,
		p.Type,
		p.Tags,
		p.Published,
		p.Option1Name,
		p.Option1Value,
		p.Option2Name,
		p.Option2Value,
		p.Option3Name,
		p.Option3Value,
		p.VariantSKU,
		p.VariantGrams,
		p.VariantInventoryTracker,
		p.VariantInventoryQty,
		p.VariantInventoryPolicy,
		p.VariantFulfillmentService,
		p.VariantPrice,
		p.VariantCompareAtPrice,
		p.VariantRequiresShipping,
		p.VariantTaxable,
		p.VariantBarcode,
		p.ImageSrc,
		p.ImagePosition,
		p.ImageAltText,
		p.GiftCard,
		p.SEOTitle,
		p.SEODescription,
		p.GoogleProductCategory,
		p.GoogleGender,
		p.GoogleAgeGroup,
		p.GoogleMPN,
		p.GoogleAdWordsGrouping,
		p.GoogleAdWordsLabels,
		p.GoogleCondition,
		p.GoogleCustomProduct,
		p.GoogleCustomLabel0,
		p.GoogleCustomLabel1,
		p.GoogleCustomLabel2,
		p.GoogleCustomLabel3,
		p.GoogleCustomLabel4,
		p.VariantImage,
		p.VariantWeightUnit,
		p.VariantTaxCode,
		p.CostPerItem,
	}
}
