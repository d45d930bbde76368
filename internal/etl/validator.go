package etl

import "github.com/autoluxe/autoluxe-migrate/pkg/utils"

// carRequiredFields are the gates a source car document must pass before
// any mapping happens. A miss on any of them routes the row to a skip,
// never to an insert attempt.
var carRequiredFields = []string{
	"name", "brand", "year", "type", "fuelType", "transmission", "dailyPrice",
}

// MissingCarFields returns the required fields absent from the document,
// in gate order. An empty result means the car may be mapped.
func MissingCarFields(doc Document) []string {
	var missing []string
	for _, field := range carRequiredFields {
		if !utils.Present(doc.Data[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}
