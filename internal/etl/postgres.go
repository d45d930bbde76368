package etl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
	"github.com/autoluxe/autoluxe-migrate/pkg/models"
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == pgUniqueViolation
	}
	return false
}

// BrandLoader inserts one brand row per source document. A unique
// violation on name or slug means the row was migrated by an earlier run
// and is counted as a skip, not a failure.
type BrandLoader struct {
	DB bun.IDB
}

func (l *BrandLoader) Load(ctx context.Context, doc Document) Outcome {
	row := MapBrand(doc)
	if _, err := l.DB.NewInsert().Model(row).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return Outcome{Status: StatusSkipped, Label: row.Name, Detail: "already migrated"}
		}
		return Outcome{Status: StatusFailed, Label: row.Name, Detail: err.Error()}
	}
	return Outcome{Status: StatusMigrated, Label: row.Name}
}

// CategoryLoader inserts one category row per source document, with the
// same unique-violation-as-skip semantics as brands ((name, type) unique).
type CategoryLoader struct {
	DB bun.IDB
}

func (l *CategoryLoader) Load(ctx context.Context, doc Document) Outcome {
	row := MapCategory(doc)
	label := fmt.Sprintf("%s (%s)", row.Name, row.Type)
	if _, err := l.DB.NewInsert().Model(row).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return Outcome{Status: StatusSkipped, Label: label, Detail: "already migrated"}
		}
		return Outcome{Status: StatusFailed, Label: label, Detail: err.Error()}
	}
	return Outcome{Status: StatusMigrated, Label: label}
}

// BrandResolver looks up the target-side brand id for a car's
// denormalized brand name. Misses yield a nil reference; the car is still
// migrated and stays displayable through brand_name.
type BrandResolver struct {
	DB     bun.IDB
	Log    logger.Logger
	Misses int
}

func (r *BrandResolver) Resolve(ctx context.Context, name string) *string {
	var id string
	err := r.DB.NewSelect().
		Model((*models.BrandRow)(nil)).
		Column("id").
		Where("lower(name) = lower(?)", name).
		Limit(1).
		Scan(ctx, &id)
	if errors.Is(err, sql.ErrNoRows) {
		r.Misses++
		r.Log.WithField("Brand", name).Warn("no matching brand row, inserting with null brand reference")
		return nil
	}
	if err != nil {
		r.Misses++
		r.Log.WithField("Brand", name).WithError(err).Warn("brand lookup failed, inserting with null brand reference")
		return nil
	}
	return &id
}

// CarLoader validates the seven required fields, resolves the brand
// reference and upserts keyed on the preserved source id, so re-running
// the car migration updates rows in place instead of duplicating them.
type CarLoader struct {
	DB       bun.IDB
	Resolver *BrandResolver
}

func (l *CarLoader) Load(ctx context.Context, doc Document) Outcome {
	name, _ := doc.Data["name"].(string)

	if missing := MissingCarFields(doc); len(missing) > 0 {
		return Outcome{
			Status: StatusSkipped,
			Label:  name,
			Detail: "missing required fields: " + strings.Join(missing, ", "),
		}
	}

	row := MapCar(doc)
	row.BrandID = l.Resolver.Resolve(ctx, row.BrandName)

	label := fmt.Sprintf("%s (%s %d)", row.Name, row.BrandName, row.Year)
	_, err := l.DB.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("name = EXCLUDED.name, brand_id = EXCLUDED.brand_id, brand_name = EXCLUDED.brand_name").
		Set("year = EXCLUDED.year, type = EXCLUDED.type, fuel_type = EXCLUDED.fuel_type").
		Set("transmission = EXCLUDED.transmission, seats = EXCLUDED.seats").
		Set("engine_capacity = EXCLUDED.engine_capacity, power = EXCLUDED.power").
		Set("daily_price = EXCLUDED.daily_price, rating = EXCLUDED.rating").
		Set("advance_payment = EXCLUDED.advance_payment, rare_car = EXCLUDED.rare_car").
		Set("featured = EXCLUDED.featured, available = EXCLUDED.available").
		Set("description = EXCLUDED.description, images = EXCLUDED.images").
		Set("tags = EXCLUDED.tags, location = EXCLUDED.location").
		Exec(ctx)
	if err != nil {
		return Outcome{Status: StatusFailed, Label: label, Detail: err.Error()}
	}
	return Outcome{Status: StatusMigrated, Label: label}
}
