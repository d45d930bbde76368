// Package search pushes the migrated car catalog into the hosted search
// index.
package search

import (
	"context"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	"github.com/algolia/algoliasearch-client-go/v3/algolia/search"
	"github.com/uptrace/bun"

	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
	"github.com/autoluxe/autoluxe-migrate/pkg/models"
)

// CarRecord is the flattened search document. The combined brand+model
// name field is what makes single-box search work; nested structures the
// engine can use directly (images, location) pass through verbatim.
type CarRecord struct {
	ObjectID     string           `json:"objectID"`
	Name         string           `json:"name"`
	Brand        string           `json:"brand"`
	Model        string           `json:"model"`
	Type         string           `json:"type"`
	FuelType     string           `json:"fuelType"`
	Transmission string           `json:"transmission"`
	Seats        int              `json:"seats"`
	Year         int              `json:"year"`
	Rating       float64          `json:"rating"`
	DailyPrice   float64          `json:"dailyPrice"`
	Images       []string         `json:"images"`
	Location     *models.Location `json:"location"`
	Description  *string          `json:"description"`
}

// FormatCar reshapes one migrated car row into its search document.
func FormatCar(row models.CarRow) CarRecord {
	return CarRecord{
		ObjectID:     row.ID,
		Name:         row.BrandName + " " + row.Name,
		Brand:        row.BrandName,
		Model:        row.Name,
		Type:         row.Type,
		FuelType:     row.FuelType,
		Transmission: row.Transmission,
		Seats:        row.Seats,
		Year:         row.Year,
		Rating:       row.Rating,
		DailyPrice:   row.DailyPrice,
		Images:       row.Images,
		Location:     row.Location,
		Description:  row.Description,
	}
}

func indexSettings() search.Settings {
	return search.Settings{
		SearchableAttributes: opt.SearchableAttributes(
			"name",
			"brand",
			"model",
			"type",
			"fuelType",
			"description",
		),
		AttributesForFaceting: opt.AttributesForFaceting(
			"filterOnly(brand)",
			"filterOnly(type)",
			"filterOnly(fuelType)",
			"filterOnly(transmission)",
		),
		AttributesToRetrieve: opt.AttributesToRetrieve(
			"name",
			"brand",
			"model",
			"type",
			"fuelType",
			"transmission",
			"seats",
			"year",
			"rating",
			"dailyPrice",
			"images",
			"location",
		),
	}
}

// Syncer replaces the whole remote index from the migrated car table.
// Settings and objects are staged on a secondary index which is then
// promoted atomically, so the live index is never half-configured.
type Syncer struct {
	Client    *search.Client
	DB        bun.IDB
	IndexName string
	Log       logger.Logger
}

func (s *Syncer) Sync(ctx context.Context) error {
	s.Log.Info("fetching cars from target store")
	var rows []models.CarRow
	if err := s.DB.NewSelect().Model(&rows).Scan(ctx); err != nil {
		return fmt.Errorf("failed to read cars: %w", err)
	}
	if len(rows) == 0 {
		s.Log.Info("no cars to sync")
		return nil
	}

	records := make([]CarRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, FormatCar(row))
	}

	stagingName := s.IndexName + "_staging"
	staging := s.Client.InitIndex(stagingName)

	s.Log.WithField("Index", stagingName).Info("configuring staging index settings")
	settingsRes, err := staging.SetSettings(indexSettings())
	if err != nil {
		return fmt.Errorf("failed to configure index settings: %w", err)
	}
	if err := settingsRes.Wait(); err != nil {
		return fmt.Errorf("index settings did not apply: %w", err)
	}

	s.Log.WithField("Count", len(records)).Info("uploading car records to staging index")
	saveRes, err := staging.SaveObjects(records)
	if err != nil {
		return fmt.Errorf("failed to upload records: %w", err)
	}
	if err := saveRes.Wait(); err != nil {
		return fmt.Errorf("record upload did not complete: %w", err)
	}

	s.Log.WithField("Index", s.IndexName).Info("promoting staging index")
	moveRes, err := s.Client.MoveIndex(stagingName, s.IndexName)
	if err != nil {
		return fmt.Errorf("failed to promote staging index: %w", err)
	}
	if err := moveRes.Wait(); err != nil {
		return fmt.Errorf("index promotion did not complete: %w", err)
	}

	s.Log.WithField("Count", len(records)).Info("search index sync complete")
	return nil
}
