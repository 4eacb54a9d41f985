package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/apetre/climatico-scraper/internal/models"
	"github.com/apetre/climatico-scraper/internal/observability"
)

// ErrNotADirectory is returned when the export root does not exist on
// disk or is not a directory.
var ErrNotADirectory = errors.New("export root is not a directory")

// Mapper writes one catalog import unit per product under an export root.
// The unit is keyed by product code: a second product with the same code
// silently replaces the first (last write wins, no merge).
type Mapper struct {
	root   string
	logger *slog.Logger
}

func NewMapper(exportRoot string) *Mapper {
	return &Mapper{
		root:   exportRoot,
		logger: slog.Default().With("component", "export"),
	}
}

// ToExport builds the import record for p and writes it as a one-row CSV
// file named after the product code. A product with an empty code yields
// a bare ".csv" unit; degenerate but accepted.
func (m *Mapper) ToExport(p models.ACProduct) error {
	info, err := os.Stat(m.root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, m.root)
	}

	record := BuildRecord(p)
	path := filepath.Join(m.root, p.ProductCode+".csv")

	if _, err := os.Stat(path); err == nil {
		m.logger.Debug("replacing existing export unit", "file", path, "product_code", p.ProductCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export unit: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(models.ShopifyColumns()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write export header: %w", err)
	}
	if err := w.Write(record.Row()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write export row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush export unit: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export unit: %w", err)
	}

	observability.ExportsWritten.Inc()
	return nil
}
