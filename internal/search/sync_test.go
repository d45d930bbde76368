package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoluxe/autoluxe-migrate/pkg/models"
)

func TestFormatCarCombinesBrandAndModel(t *testing.T) {
	desc := "Open-top grand tourer"
	row := models.CarRow{
		ID:           "car1",
		Name:         "720S Spider",
		BrandName:    "McLaren",
		Year:         2022,
		Type:         "Convertible",
		FuelType:     "Petrol",
		Transmission: "Automatic",
		Seats:        2,
		Rating:       4.9,
		DailyPrice:   3200,
		Images:       []string{"a.jpg"},
		Description:  &desc,
		Location: &models.Location{
			Name:        "Downtown Dubai",
			Coordinates: models.Coordinates{Lat: 25.19, Lng: 55.27},
		},
	}

	record := FormatCar(row)

	assert.Equal(t, "car1", record.ObjectID)
	assert.Equal(t, "McLaren 720S Spider", record.Name)
	assert.Equal(t, "McLaren", record.Brand)
	assert.Equal(t, "720S Spider", record.Model)
	assert.Equal(t, "Petrol", record.FuelType)
	assert.Equal(t, 3200.0, record.DailyPrice)
	assert.Equal(t, []string{"a.jpg"}, record.Images)
	require.NotNil(t, record.Location)
	assert.Equal(t, "Downtown Dubai", record.Location.Name)
	require.NotNil(t, record.Description)
	assert.Equal(t, desc, *record.Description)
}

func TestIndexSettingsFaceting(t *testing.T) {
	settings := indexSettings()

	searchable := settings.SearchableAttributes.Get()
	assert.Contains(t, searchable, "name")
	assert.Contains(t, searchable, "brand")
	assert.Contains(t, searchable, "description")

	facets := settings.AttributesForFaceting.Get()
	assert.Contains(t, facets, "filterOnly(transmission)")
}
