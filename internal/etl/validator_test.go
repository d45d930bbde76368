package etl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingCarFieldsFullDocumentPasses(t *testing.T) {
	assert.Empty(t, MissingCarFields(fullCarDoc()))
}

func TestMissingCarFieldsReportsEachGate(t *testing.T) {
	for _, field := range []string{"name", "brand", "year", "type", "fuelType", "transmission", "dailyPrice"} {
		doc := fullCarDoc()
		delete(doc.Data, field)
		assert.Equal(t, []string{field}, MissingCarFields(doc), "field %s", field)
	}
}

func TestMissingCarFieldsTreatsFalsyAsMissing(t *testing.T) {
	doc := fullCarDoc()
	doc.Data["year"] = int64(0)
	doc.Data["dailyPrice"] = 0.0
	doc.Data["name"] = ""

	missing := MissingCarFields(doc)
	assert.Equal(t, []string{"name", "year", "dailyPrice"}, missing)
}
