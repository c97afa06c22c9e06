package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontrola/internal/registry/models"
)

func TestParse(t *testing.T) {
	cases := map[string]string{
		"2023-01-05":           "2023-01-05",
		"2023-01-05T10:11:12":  "2023-01-05",
		"2023-01-05 10:11":     "2023-01-05",
		"05.01.2022":           "2022-01-05",
		"2021.12.31":           "2021-12-31",
		"2020-3-7":             "2020-03-07",
		"2019-11-30T08:00:00Z": "2019-11-30",
	}
	for in, want := range cases {
		got, ok := Parse(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got.Format(ISO), in)
	}

	for _, bad := range []any{"", "not a date", "31.02.2020", nil, 20230105.0, map[string]any{}} {
		_, ok := Parse(bad)
		assert.False(t, ok, "%v", bad)
	}
}

func TestLatest(t *testing.T) {
	records := []models.Record{
		{"ДатаНач": "2023-01-05"},
		{"ДатаНач": "05.01.2022"},
		{"Номер": "no date here"},
	}

	got := Latest(records, "ДатаНач")

	require.NotNil(t, got)
	assert.Equal(t, "2023-01-05", *got)
}

func TestLatestEmpty(t *testing.T) {
	assert.Nil(t, Latest(nil, "Дата"))
	assert.Nil(t, Latest([]models.Record{{"Дата": "garbage"}, {}}, "Дата"))
}

func TestLatestFirstParseableFieldWins(t *testing.T) {
	records := []models.Record{
		{"Дата": "2020-01-01", "ДатаИзм": "2024-01-01"},
		{"Дата": "bad", "ДатаИзм": "2021-06-01"},
	}

	got := Latest(records, "Дата", "ДатаИзм")

	require.NotNil(t, got)
	assert.Equal(t, "2021-06-01", *got)
}

func TestLatestIgnoresFormatAndOrder(t *testing.T) {
	a := []models.Record{{"Дата": "01.02.2024"}, {"Дата": "2023-12-31T23:59:59"}}
	b := []models.Record{a[1], a[0]}

	assert.Equal(t, "2024-02-01", *Latest(a, "Дата"))
	assert.Equal(t, *Latest(a, "Дата"), *Latest(b, "Дата"))
}

func TestMax(t *testing.T) {
	x, y := "2022-01-01", "2023-01-01"
	assert.Nil(t, Max(nil, nil))
	assert.Equal(t, &x, Max(&x, nil))
	assert.Equal(t, &y, Max(nil, &y))
	assert.Equal(t, y, *Max(&x, &y))
	assert.Equal(t, y, *Max(&y, &x))
}
