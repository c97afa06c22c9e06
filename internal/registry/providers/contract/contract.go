// Package contract checks that registry provider responses keep the shape
// the extractors rely on. Suites run against recorded fixtures or, with a
// key, against the live provider.
package contract

import (
	"context"
	"net/url"
	"testing"

	"kontrola/internal/registry/extract"
	"kontrola/internal/registry/models"
)

// Fetcher is the provider surface under test.
type Fetcher interface {
	Fetch(ctx context.Context, family models.Family, params url.Values) (models.Document, error)
}

// ContractTest is one provider call and its expectations.
type ContractTest struct {
	Name          string
	Family        models.Family
	Params        url.Values
	MinRecords    int
	ExpectCompany bool
	ValidateFunc  func(doc models.Document) error
}

// ContractSuite is a collection of contract tests for a provider.
type ContractSuite struct {
	Provider Fetcher
	Tests    []ContractTest
}

// Run executes all contract tests in the suite.
func (s *ContractSuite) Run(t *testing.T) {
	for _, test := range s.Tests {
		t.Run(test.Name, func(t *testing.T) {
			doc, err := s.Provider.Fetch(context.Background(), test.Family, test.Params)
			if err != nil {
				t.Fatalf("provider fetch failed: %v", err)
			}

			records := extract.Records(doc)
			if len(records) < test.MinRecords {
				t.Errorf("expected at least %d records, got %d", test.MinRecords, len(records))
			}
			if total := extract.Total(doc); total < len(records) {
				t.Errorf("total %d is less than the %d records returned", total, len(records))
			}
			if test.ExpectCompany && extract.Company(doc) == nil {
				t.Error("company block missing")
			}

			for _, field := range test.Family.DateFields() {
				for i, rec := range records {
					if _, ok := rec[field]; !ok {
						t.Logf("record %d has no %s field", i, field)
					}
				}
			}

			if test.ValidateFunc != nil {
				if err := test.ValidateFunc(doc); err != nil {
					t.Errorf("custom validation failed: %v", err)
				}
			}
		})
	}
}
