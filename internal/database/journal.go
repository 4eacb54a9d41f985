package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/apetre/climatico-scraper/internal/models"
)

const (
	RunStatusRunning   = "RUNNING"
	RunStatusCompleted = "COMPLETED"
	RunStatusFailed    = "FAILED"
)

// CrawlRun is one journaled pipeline execution.
type CrawlRun struct {
	ID               uuid.UUID
	StartURL         string
	PagesCaptured    int
	ProductsExported int
	Status           string
	StartedAt        time.Time
	FinishedAt       *time.Time
}

// StartCrawlRun journals the beginning of a pipeline execution.
func (db *DB) StartCrawlRun(ctx context.Context, startURL string) (*CrawlRun, error) {
	run := &CrawlRun{
		ID:       uuid.New(),
		StartURL: startURL,
		Status:   RunStatusRunning,
	}

	query := `
		INSERT INTO crawl_runs (id, start_url, status)
		VALUES ($1, $2, $3)
		RETURNING started_at`

	err := db.pool.QueryRow(ctx, query, run.ID, run.StartURL, run.Status).Scan(&run.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert crawl run: %w", err)
	}

	return run, nil
}

// FinishCrawlRun records the outcome of a journaled execution.
func (db *DB) FinishCrawlRun(ctx context.Context, run *CrawlRun, pages, products int, status string) error {
	query := `
		UPDATE crawl_runs
		SET pages_captured = $2,
		    products_exported = $3,
		    status = $4,
		    finished_at = NOW()
		WHERE id = $1
		RETURNING finished_at`

	var finished time.Time
	err := db.pool.QueryRow(ctx, query, run.ID, pages, products, status).Scan(&finished)
	if err != nil {
		return fmt.Errorf("failed to finish crawl run: %w", err)
	}

	run.PagesCaptured = pages
	run.ProductsExported = products
	run.Status = status
	run.FinishedAt = &finished
	return nil
}

// UpsertProduct persists one extracted record keyed by product code. A
// record with a code already present replaces the stored row.
func (db *DB) UpsertProduct(ctx context.Context, p *models.ACProduct) error {
	query := `
		INSERT INTO products (
			product_code, name, manufacturer, product_url,
			listing_image_url, has_wifi_connection, mains_voltage,
			internal_unit_length, heating_noise_level, cooling_noise_level,
			heating_energy_class, cooling_energy_class,
			heating_btu_capacity, cooling_btu_capacity
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (product_code) DO UPDATE SET
			name = EXCLUDED.name,
			manufacturer = EXCLUDED.manufacturer,
			product_url = EXCLUDED.product_url,
			listing_image_url = EXCLUDED.listing_image_url,
			has_wifi_connection = EXCLUDED.has_wifi_connection,
			mains_voltage = EXCLUDED.mains_voltage,
			internal_unit_length = EXCLUDED.internal_unit_length,
			heating_noise_level = EXCLUDED.heating_noise_level,
			cooling_noise_level = EXCLUDED.cooling_noise_level,
			heating_energy_class = EXCLUDED.heating_energy_class,
			cooling_energy_class = EXCLUDED.cooling_energy_class,
			heating_btu_capacity = EXCLUDED.heating_btu_capacity,
			cooling_btu_capacity = EXCLUDED.cooling_btu_capacity,
			updated_at = NOW()`

	_, err := db.pool.Exec(ctx, query,
		p.ProductCode, p.Name, p.Manufacturer, p.ProductURL,
		p.ListingImageURL, p.HasWifiConnection, p.MainsVoltage,
		p.InternalUnitLength, p.HeatingNoiseLevel, p.CoolingNoiseLevel,
		p.HeatingEnergyClass, p.CoolingEnergyClass,
		p.HeatingBTUCapacity, p.CoolingBTUCapacity,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert product: %w", err)
	}

	return nil
}
