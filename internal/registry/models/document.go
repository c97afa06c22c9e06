package models

import id "kontrola/pkg/domain"

// Document is a raw provider response. Its shape is not guaranteed; read it
// through the extract package.
type Document map[string]any

// Record is one raw registry entry as returned by the provider.
type Record map[string]any

// Tagged returns a copy of the record with the originating law and role.
func (r Record) Tagged(c Combination) Record {
	out := make(Record, len(r)+2)
	for k, v := range r {
		out[k] = v
	}
	out[TagLaw] = int(c.Law)
	out[TagRole] = string(c.Role)
	return out
}

// FamilySummary is the count and most recent event of one family.
type FamilySummary struct {
	Count    int     `json:"count"`
	LastDate *string `json:"last_date"`
}

// Summary is the registry overview for one company.
type Summary struct {
	Company     id.CompanyIdentity `json:"company"`
	Litigation  FamilySummary      `json:"litigation"`
	Enforcement FamilySummary      `json:"enforcement"`
	Inspections FamilySummary      `json:"inspections"`
	Contracts   FamilySummary      `json:"contracts"`
}

// Set stores the summary of a family.
func (s *Summary) Set(f Family, fs FamilySummary) {
	switch f {
	case FamilyLitigation:
		s.Litigation = fs
	case FamilyEnforcement:
		s.Enforcement = fs
	case FamilyInspections:
		s.Inspections = fs
	case FamilyContracts:
		s.Contracts = fs
	}
}

// Page is one drill-down page of a family.
type Page struct {
	Items    []Record `json:"items"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	Pages    int      `json:"pages"`
	LastDate *string  `json:"last_date"`
}

// PageCount returns max(1, ceil(total/limit)).
func PageCount(total, limit int) int {
	if limit < 1 || total <= 0 {
		return 1
	}
	pages := (total + limit - 1) / limit
	if pages < 1 {
		return 1
	}
	return pages
}
