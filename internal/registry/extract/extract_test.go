package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontrola/internal/registry/models"
)

func doc(t *testing.T, raw string) models.Document {
	t.Helper()
	var d models.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	return d
}

func TestRecordsAndTotal(t *testing.T) {
	d := doc(t, `{"data": {"ЗапВсего": 42, "Записи": [{"Дата": "2023-01-05"}, "junk", {"Дата": "2022-02-01"}]}}`)

	assert.Len(t, Records(d), 2)
	assert.Equal(t, 42, Total(d))
}

func TestTotalFallsBackToListLength(t *testing.T) {
	assert.Equal(t, 3, Total(doc(t, `{"data": {"Записи": [{}, {}, {}]}}`)))
	assert.Equal(t, 2, Total(doc(t, `{"data": {"ЗапВсего": "many", "Записи": [{}, {}]}}`)))
}

func TestMalformedDocuments(t *testing.T) {
	for _, raw := range []string{`{}`, `{"data": null}`, `{"data": []}`, `{"data": {"Записи": {}}}`} {
		d := doc(t, raw)
		assert.Empty(t, Records(d), raw)
		assert.Zero(t, Total(d), raw)
	}
	assert.Empty(t, Records(nil))
	assert.Zero(t, Total(nil))
}

func TestFirstCompany(t *testing.T) {
	empty := doc(t, `{"company": {}}`)
	missing := doc(t, `{"data": {}}`)
	found := doc(t, `{"company": {"НаимСокр": "ООО Ромашка"}}`)
	later := doc(t, `{"company": {"НаимСокр": "ООО Лютик"}}`)

	c := FirstCompany(empty, missing, nil, found, later)

	require.NotNil(t, c)
	assert.Equal(t, "ООО Ромашка", c["НаимСокр"])
	assert.Nil(t, FirstCompany(empty, missing))
}
