package etl

import (
	"github.com/autoluxe/autoluxe-migrate/pkg/models"
	"github.com/autoluxe/autoluxe-migrate/pkg/utils"
)

// The mapping here is deliberately hand-written per field: every column
// has its own fallback and there is no schema-driven generic path. The
// defaults mirror the target schema's column defaults exactly.

func MapBrand(doc Document) *models.BrandRow {
	return &models.BrandRow{
		ID:          doc.ID,
		Name:        utils.StringOr(doc.Data["name"], ""),
		Slug:        utils.StringOr(doc.Data["slug"], ""),
		Logo:        utils.StringPtr(doc.Data["logo"]),
		Featured:    utils.BoolOr(doc.Data["featured"], false),
		Description: utils.StringPtr(doc.Data["description"]),
		// copied verbatim, never recomputed by the migration
		CarCount: utils.IntOr(doc.Data["carCount"], 0),
	}
}

func MapCategory(doc Document) *models.CategoryRow {
	return &models.CategoryRow{
		ID:          doc.ID,
		Name:        utils.StringOr(doc.Data["name"], ""),
		Type:        utils.StringOr(doc.Data["type"], ""),
		Slug:        utils.StringOr(doc.Data["slug"], ""),
		Image:       utils.StringPtr(doc.Data["image"]),
		Featured:    utils.BoolOr(doc.Data["featured"], false),
		Description: utils.StringPtr(doc.Data["description"]),
	}
}

// MapCar maps a car document that already passed the required-field gate
// (see MissingCarFields). BrandID is left nil; the loader resolves it
// against the already-migrated brands.
func MapCar(doc Document) *models.CarRow {
	return &models.CarRow{
		ID:             doc.ID,
		Name:           utils.StringOr(doc.Data["name"], ""),
		BrandName:      utils.StringOr(doc.Data["brand"], ""),
		Year:           utils.IntOr(doc.Data["year"], 2024),
		Type:           utils.StringOr(doc.Data["type"], ""),
		FuelType:       utils.StringOr(doc.Data["fuelType"], ""),
		Transmission:   utils.StringOr(doc.Data["transmission"], ""),
		Seats:          utils.IntOr(doc.Data["seats"], 4),
		EngineCapacity: utils.StringPtr(doc.Data["engineCapacity"]),
		Power:          utils.StringPtr(doc.Data["power"]),
		DailyPrice:     utils.FloatOr(doc.Data["dailyPrice"], 0),
		Rating:         utils.FloatOr(doc.Data["rating"], 5.0),
		AdvancePayment: utils.BoolOr(doc.Data["advancePayment"], false),
		RareCar:        utils.BoolOr(doc.Data["rareCar"], false),
		Featured:       utils.BoolOr(doc.Data["featured"], false),
		// defaults to true unless explicitly false
		Available:   utils.BoolOr(doc.Data["available"], true),
		Description: utils.StringPtr(doc.Data["description"]),
		Images:      utils.StringList(doc.Data["images"]),
		Tags:        utils.StringList(doc.Data["tags"]),
		Location:    mapLocation(doc.Data["location"]),
	}
}

func mapLocation(v interface{}) *models.Location {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	loc := &models.Location{Name: utils.StringOr(m["name"], "")}
	if coords, ok := m["coordinates"].(map[string]interface{}); ok {
		loc.Coordinates = models.Coordinates{
			Lat: utils.FloatOr(coords["lat"], 0),
			Lng: utils.FloatOr(coords["lng"], 0),
		}
	}
	return loc
}
