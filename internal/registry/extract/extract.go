// Package extract reads records, totals and company blocks out of raw
// registry documents. Every accessor tolerates missing or mistyped fields.
package extract

import (
	"encoding/json"
	"math"

	"kontrola/internal/registry/models"
)

const (
	keyData    = "data"
	keyRecords = "Записи"
	keyTotal   = "ЗапВсего"
	keyCompany = "company"
)

func dataBlock(doc models.Document) map[string]any {
	if doc == nil {
		return nil
	}
	data, _ := doc[keyData].(map[string]any)
	return data
}

// Records returns the object entries of data.Записи, skipping anything that
// is not an object.
func Records(doc models.Document) []models.Record {
	list, _ := dataBlock(doc)[keyRecords].([]any)
	out := make([]models.Record, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, models.Record(m))
		}
	}
	return out
}

// Total returns data.ЗапВсего when numeric, else the length of data.Записи.
func Total(doc models.Document) int {
	data := dataBlock(doc)
	if data == nil {
		return 0
	}
	switch v := data[keyTotal].(type) {
	case float64:
		if !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 {
			return int(v)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil && n >= 0 {
			return int(n)
		}
	case int:
		if v >= 0 {
			return v
		}
	}
	list, _ := data[keyRecords].([]any)
	return len(list)
}

// Company returns the document's company block, or nil when it is absent or
// empty.
func Company(doc models.Document) map[string]any {
	if doc == nil {
		return nil
	}
	c, ok := doc[keyCompany].(map[string]any)
	if !ok || len(c) == 0 {
		return nil
	}
	return c
}

// FirstCompany returns the first non-empty company block in order.
func FirstCompany(docs ...models.Document) map[string]any {
	for _, d := range docs {
		if c := Company(d); c != nil {
			return c
		}
	}
	return nil
}
