// Package models defines the relational row models for the target store
// and the shapes shared between the migration jobs.
package models

import "github.com/uptrace/bun"

// Category types allowed by the target schema's CHECK constraint.
const (
	CategoryTypeCar  = "carType"
	CategoryTypeFuel = "fuelType"
	CategoryTypeTag  = "tag"
)

// Coordinates is the lat/lng pair nested inside a car location.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is stored as JSONB on the cars table and indexed verbatim.
type Location struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
}

// BrandRow keeps the source document ID verbatim as its primary key.
type BrandRow struct {
	bun.BaseModel `bun:"table:brands,alias:b"`

	ID          string  `bun:"id,pk"`
	Name        string  `bun:"name,notnull"`
	Slug        string  `bun:"slug,notnull"`
	Logo        *string `bun:"logo"`
	Featured    bool    `bun:"featured,notnull,default:false"`
	Description *string `bun:"description"`
	CarCount    int     `bun:"car_count,notnull,default:0"`
}

type CategoryRow struct {
	bun.BaseModel `bun:"table:categories,alias:cat"`

	ID          string  `bun:"id,pk"`
	Name        string  `bun:"name,notnull"`
	Type        string  `bun:"type,notnull"`
	Slug        string  `bun:"slug,notnull"`
	Image       *string `bun:"image"`
	Featured    bool    `bun:"featured,notnull,default:false"`
	Description *string `bun:"description"`
}

type CarRow struct {
	bun.BaseModel `bun:"table:cars,alias:c"`

	ID             string    `bun:"id,pk"`
	Name           string    `bun:"name,notnull"`
	BrandID        *string   `bun:"brand_id"`
	BrandName      string    `bun:"brand_name,notnull"`
	Year           int       `bun:"year,notnull"`
	Type           string    `bun:"type,notnull"`
	FuelType       string    `bun:"fuel_type,notnull"`
	Transmission   string    `bun:"transmission,notnull"`
	Seats          int       `bun:"seats,notnull,default:4"`
	EngineCapacity *string   `bun:"engine_capacity"`
	Power          *string   `bun:"power"`
	DailyPrice     float64   `bun:"daily_price,notnull"`
	Rating         float64   `bun:"rating,notnull,default:5.0"`
	AdvancePayment bool      `bun:"advance_payment,notnull,default:false"`
	RareCar        bool      `bun:"rare_car,notnull,default:false"`
	Featured       bool      `bun:"featured,notnull,default:false"`
	Available      bool      `bun:"available,notnull,default:true"`
	Description    *string   `bun:"description"`
	Images         []string  `bun:"images,array"`
	Tags           []string  `bun:"tags,array"`
	Location       *Location `bun:"location,type:jsonb"`
}
