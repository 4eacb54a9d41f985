package extractor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/apetre/climatico-scraper/internal/models"
	"github.com/apetre/climatico-scraper/internal/observability"
	"github.com/apetre/climatico-scraper/internal/pages"
)

// ErrSameRoot is returned when the capture directory and the export
// directory are the same path: the extractor must never read its own
// writes.
var ErrSameRoot = errors.New("capture directory and export directory are identical")

// Structural paths of one climatico.ro listing page. The product items are
// the direct list items of the amasty product list; every per-item lookup
// is first-match-or-empty.
const (
	productItemsSelector = `div#amasty-shopby-product-list div.products.wrapper.list.products-list ol.products.list.items.product-items > li`
	listingImageSelector = `img.product-image-photo`
	detailLinkSelector   = `strong.product.name.product-item-name.product-name a.product-item-link`
	featureTableSelector = `table.prod-list-features tbody`
)

// featureSetters maps a feature-row label to the record field it fills.
// Labels are site text, Romanian. Rows with labels outside this set are
// ignored so extra feature rows never break extraction.
var featureSetters = map[string]func(*models.ACProduct, string){
	"Cod produs:":                 func(p *models.ACProduct, v string) { p.ProductCode = v },
	"Capacitate racire:":          func(p *models.ACProduct, v string) { p.CoolingBTUCapacity = v },
	"Capacitate incalzire:":       func(p *models.ACProduct, v string) { p.HeatingBTUCapacity = v },
	"Clasa energetica racire:":    func(p *models.ACProduct, v string) { p.CoolingEnergyClass = v },
	"Clasa energetica incalzire:": func(p *models.ACProduct, v string) { p.HeatingEnergyClass = v },
	"Tensiune alimentare:":        func(p *models.ACProduct, v string) { p.MainsVoltage = v },
	"Nivel de zgomot racire:":     func(p *models.ACProduct, v string) { p.CoolingNoiseLevel = v },
	"Nivel de zgomot incalzire:":  func(p *models.ACProduct, v string) { p.HeatingNoiseLevel = v },
	"Lungime unitate interna:":    func(p *models.ACProduct, v string) { p.InternalUnitLength = v },
	// Derived, not copied: "Da" is affirmative. Matching on the first
	// letter misclassifies any value that happens to start with "D";
	// kept as the site's observed behavior demands.
	"Conexiune Wi-Fi:": func(p *models.ACProduct, v string) { p.HasWifiConnection = strings.HasPrefix(v, "D") },
}

// Extractor mines persisted listing page captures for product records.
type Extractor struct {
	store  *pages.Store
	logger *slog.Logger
}

// New builds an extractor over sourceDir. exportDir is the directory the
// downstream mapper writes to; the two must not coincide.
func New(sourceDir, exportDir string) (*Extractor, error) {
	if filepath.Clean(sourceDir) == filepath.Clean(exportDir) {
		return nil, fmt.Errorf("%w: %s", ErrSameRoot, sourceDir)
	}
	return &Extractor{
		store:  pages.NewStore(sourceDir),
		logger: slog.Default().With("component", "extractor"),
	}, nil
}

// Extract parses every capture file and returns the product records found,
// in document order per file, files in name order. A file that cannot be
// read or parsed is logged and skipped; it contributes zero records and
// the run continues.
func (e *Extractor) Extract(ctx context.Context) ([]models.ACProduct, error) {
	files, err := e.store.Files()
	if err != nil {
		return nil, err
	}

	var products []models.ACProduct
	for _, path := range files {
		select {
		case <-ctx.Done():
			return products, ctx.Err()
		default:
		}

		records, err := e.extractFile(path)
		if err != nil {
			e.logger.Error("skipping capture file", "file", path, "error", err)
			observability.ExtractFailures.Inc()
			continue
		}

		e.logger.Info("extracted products from capture", "file", filepath.Base(path), "count", len(records))
		products = append(products, records...)
	}

	observability.ProductsExtracted.Add(float64(len(products)))
	return products, nil
}

func (e *Extractor) extractFile(path string) ([]models.ACProduct, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse capture: %w", err)
	}

	var records []models.ACProduct
	doc.Find(productItemsSelector).Each(func(_ int, item *goquery.Selection) {
		records = append(records, extractItem(item))
	})
	return records, nil
}

// extractItem populates one record from one product item node. Every
// lookup consults at most one node; a missing node leaves the field at
// its empty default.
func extractItem(item *goquery.Selection) models.ACProduct {
	product := models.NewACProduct()

	img := item.Find(listingImageSelector).First()
	if alt, ok := img.Attr("alt"); ok {
		product.Name = strings.TrimSpace(alt)
	}
	if src, ok := img.Attr("data-amsrc"); ok {
		product.ListingImageURL = strings.TrimSpace(src)
	}

	if href, ok := item.Find(detailLinkSelector).First().Attr("href"); ok {
		product.ProductURL = strings.TrimSpace(href)
	}

	item.Find(featureTableSelector).First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Children()
		label := strings.TrimSpace(cells.First().Text())

		// A one-cell row has nowhere to read a value from; the label
		// node and value node would coincide.
		value := ""
		if cells.Length() > 1 {
			value = strings.TrimSpace(cells.Last().Text())
		}

		if set, ok := featureSetters[label]; ok {
			set(&product, value)
		}
	})

	return product
}
