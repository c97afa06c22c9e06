package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CompanyIdentity is the legal entity a report is about.
type CompanyIdentity struct {
	Name    string `json:"name,omitempty"`
	INN     string `json:"inn"`
	OGRN    string `json:"ogrn,omitempty"`
	Status  string `json:"status,omitempty"`
	Address string `json:"addr,omitempty"`
	OKVED   string `json:"okved,omitempty"`
	RegDate string `json:"reg_date,omitempty"`
}

// CompanyFromBlock flattens a provider "company" block. Both providers use
// the same localized field names; status, address and activity code arrive
// either as plain values or as nested objects. The caller's identifier is
// used when the block carries none.
func CompanyFromBlock(block map[string]any, inn TaxID) CompanyIdentity {
	c := CompanyIdentity{
		Name:    firstString(block, "НаимПолн", "НаимСокр"),
		INN:     firstString(block, "ИНН"),
		OGRN:    firstString(block, "ОГРН"),
		Status:  nestedString(block["Статус"], "Наим"),
		Address: nestedString(block["ЮрАдрес"], "АдресРФ"),
		OKVED:   nestedString(block["ОКВЭД"], "Код"),
		RegDate: firstString(block, "ДатаРег"),
	}
	if c.INN == "" {
		c.INN = inn.String()
	}
	return c
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := scalarString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

func nestedString(v any, key string) string {
	if m, ok := v.(map[string]any); ok {
		return scalarString(m[key])
	}
	return scalarString(v)
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	default:
		return ""
	}
}
