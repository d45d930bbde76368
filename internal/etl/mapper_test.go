package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCarDoc() Document {
	return Document{
		ID: "car1",
		Data: map[string]interface{}{
			"name":           "Huracan",
			"brand":          "Lamborghini",
			"year":           int64(2023),
			"type":           "Sports",
			"fuelType":       "Petrol",
			"transmission":   "Automatic",
			"seats":          int64(2),
			"engineCapacity": "5.2L",
			"power":          "640 hp",
			"dailyPrice":     2500.0,
			"rating":         4.8,
			"advancePayment": true,
			"rareCar":        true,
			"featured":       true,
			"available":      false,
			"description":    "V10 coupe",
			"images":         []interface{}{"a.jpg", "b.jpg"},
			"tags":           []interface{}{"sports", "v10"},
			"location": map[string]interface{}{
				"name": "Dubai Marina",
				"coordinates": map[string]interface{}{
					"lat": 25.08,
					"lng": 55.14,
				},
			},
		},
	}
}

func TestMapBrandPreservesSourceValues(t *testing.T) {
	doc := Document{
		ID: "brand1",
		Data: map[string]interface{}{
			"name":     "BMW",
			"slug":     "bmw",
			"featured": true,
		},
	}

	row := MapBrand(doc)

	assert.Equal(t, "brand1", row.ID)
	assert.Equal(t, "BMW", row.Name)
	assert.Equal(t, "bmw", row.Slug)
	assert.True(t, row.Featured)
	assert.Nil(t, row.Logo)
	assert.Nil(t, row.Description)
	assert.Equal(t, 0, row.CarCount)
}

func TestMapBrandCopiesCarCountVerbatim(t *testing.T) {
	row := MapBrand(Document{
		ID:   "brand2",
		Data: map[string]interface{}{"name": "Ferrari", "slug": "ferrari", "carCount": int64(7)},
	})
	assert.Equal(t, 7, row.CarCount)
	assert.False(t, row.Featured)
}

func TestMapCategory(t *testing.T) {
	row := MapCategory(Document{
		ID: "cat1",
		Data: map[string]interface{}{
			"name":        "SUV",
			"type":        "carType",
			"slug":        "suv",
			"image":       "suv.png",
			"featured":    true,
			"description": "Sport utility",
		},
	})

	assert.Equal(t, "cat1", row.ID)
	assert.Equal(t, "carType", row.Type)
	require.NotNil(t, row.Image)
	assert.Equal(t, "suv.png", *row.Image)
	require.NotNil(t, row.Description)
	assert.Equal(t, "Sport utility", *row.Description)
}

func TestMapCarNoDefaultsWhenFullyPopulated(t *testing.T) {
	row := MapCar(fullCarDoc())

	assert.Equal(t, "car1", row.ID)
	assert.Equal(t, "Huracan", row.Name)
	assert.Equal(t, "Lamborghini", row.BrandName)
	assert.Equal(t, 2023, row.Year)
	assert.Equal(t, 2, row.Seats)
	assert.Equal(t, 2500.0, row.DailyPrice)
	assert.Equal(t, 4.8, row.Rating)
	assert.True(t, row.AdvancePayment)
	assert.True(t, row.RareCar)
	assert.False(t, row.Available)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, row.Images)
	assert.Equal(t, []string{"sports", "v10"}, row.Tags)
	require.NotNil(t, row.Location)
	assert.Equal(t, "Dubai Marina", row.Location.Name)
	assert.Equal(t, 25.08, row.Location.Coordinates.Lat)
	assert.Equal(t, 55.14, row.Location.Coordinates.Lng)
	// brand resolution happens in the loader, not the mapper
	assert.Nil(t, row.BrandID)
}

func TestMapCarNumericDefaults(t *testing.T) {
	doc := fullCarDoc()
	delete(doc.Data, "seats")
	delete(doc.Data, "rating")

	row := MapCar(doc)
	assert.Equal(t, 4, row.Seats)
	assert.Equal(t, 5.0, row.Rating)

	doc.Data["seats"] = "plenty"
	doc.Data["rating"] = "great"
	row = MapCar(doc)
	assert.Equal(t, 4, row.Seats)
	assert.Equal(t, 5.0, row.Rating)
}

func TestMapCarAvailableDefaultsTrue(t *testing.T) {
	doc := fullCarDoc()
	delete(doc.Data, "available")
	assert.True(t, MapCar(doc).Available)

	doc.Data["available"] = false
	assert.False(t, MapCar(doc).Available)
}

func TestMapCarEmptyCollections(t *testing.T) {
	doc := fullCarDoc()
	delete(doc.Data, "images")
	delete(doc.Data, "tags")
	delete(doc.Data, "location")

	row := MapCar(doc)
	assert.Equal(t, []string{}, row.Images)
	assert.Equal(t, []string{}, row.Tags)
	assert.Nil(t, row.Location)
}
