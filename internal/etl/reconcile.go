package etl

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
	"github.com/autoluxe/autoluxe-migrate/pkg/models"
)

// Reconciler compares target-table counts against the source document
// count after a run. It is purely observational: mismatches are logged as
// warnings, never returned as errors, and nothing is repaired.
type Reconciler struct {
	DB  bun.IDB
	Log logger.Logger
}

// Reconcile counts rows for the given model and logs the comparison.
// Returns the target count for the caller's summary verdict.
func (r *Reconciler) Reconcile(ctx context.Context, entity string, model interface{}, sourceCount int) int {
	log := r.Log.WithField("Entity", entity)

	count, err := r.DB.NewSelect().Model(model).Count(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to count target rows")
		return -1
	}

	log.WithField("Source", sourceCount).WithField("Target", count).Info("reconciliation counts")
	if count != sourceCount {
		log.Warnf("target count %d does not match source count %d", count, sourceCount)
	}
	return count
}

// SampleBrands prints a few migrated brand rows for human spot-checking.
func (r *Reconciler) SampleBrands(ctx context.Context, limit int) {
	var rows []models.BrandRow
	err := r.DB.NewSelect().Model(&rows).
		Column("id", "name", "slug").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		r.Log.WithError(err).Warn("failed to fetch sample brands")
		return
	}
	for _, row := range rows {
		r.Log.Infof("sample brand: %s (id %s, slug %s)", row.Name, row.ID, row.Slug)
	}
}

// SampleCars prints migrated car rows ordered by brand for spot-checking.
func (r *Reconciler) SampleCars(ctx context.Context, limit int) {
	var rows []models.CarRow
	err := r.DB.NewSelect().Model(&rows).
		Column("id", "name", "brand_name", "year", "type", "daily_price").
		Order("brand_name").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		r.Log.WithError(err).Warn("failed to fetch sample cars")
		return
	}
	for _, row := range rows {
		r.Log.Infof("sample car: %s %s (%d, %s, $%.2f/day, id %s)",
			row.BrandName, row.Name, row.Year, row.Type, row.DailyPrice, row.ID)
	}
}

// CarsByBrand logs how many migrated cars each brand ended up with.
func (r *Reconciler) CarsByBrand(ctx context.Context) {
	var tallies []struct {
		BrandName string `bun:"brand_name"`
		Count     int    `bun:"count"`
	}
	err := r.DB.NewSelect().
		Model((*models.CarRow)(nil)).
		ColumnExpr("brand_name").
		ColumnExpr("count(*) AS count").
		Group("brand_name").
		Order("brand_name").
		Scan(ctx, &tallies)
	if err != nil {
		r.Log.WithError(err).Warn("failed to tally cars by brand")
		return
	}
	for _, t := range tallies {
		r.Log.Infof("cars by brand: %s: %d", t.BrandName, t.Count)
	}
}
