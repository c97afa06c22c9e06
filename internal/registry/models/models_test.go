package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "kontrola/pkg/domain"
	dErrors "kontrola/pkg/domain-errors"
)

func TestParseFamily(t *testing.T) {
	cases := map[string]Family{
		"litigation":  FamilyLitigation,
		"arbitr":      FamilyLitigation,
		"FSSP":        FamilyEnforcement,
		"inspect":     FamilyInspections,
		"inspections": FamilyInspections,
		" contracts ": FamilyContracts,
	}
	for in, want := range cases {
		got, err := ParseFamily(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFamily("bankruptcies")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestFamilyEndpoints(t *testing.T) {
	assert.Equal(t, "/legal-cases", FamilyLitigation.Path())
	assert.Equal(t, "/enforcements", FamilyEnforcement.Path())
	assert.Equal(t, []string{"ИспПрДата"}, FamilyEnforcement.DateFields())
	assert.Equal(t, []string{"ДатаНач"}, FamilyInspections.DateFields())
}

func TestParseLawTypeAndRole(t *testing.T) {
	l, err := ParseLawType("223")
	require.NoError(t, err)
	assert.Equal(t, Law223, l)

	_, err = ParseLawType("95")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	r, err := ParseContractRole("Supplier")
	require.NoError(t, err)
	assert.Equal(t, RoleSupplier, r)

	_, err = ParseContractRole("plaintiff")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestCombinations(t *testing.T) {
	all := Combinations(nil, "")
	assert.Equal(t, []Combination{
		{Law44, RoleCustomer}, {Law44, RoleSupplier},
		{Law94, RoleCustomer}, {Law94, RoleSupplier},
		{Law223, RoleCustomer}, {Law223, RoleSupplier},
	}, all)

	law := Law94
	assert.Equal(t, []Combination{{Law94, RoleCustomer}, {Law94, RoleSupplier}}, Combinations(&law, ""))
	assert.Equal(t, []Combination{{Law44, RoleSupplier}, {Law94, RoleSupplier}, {Law223, RoleSupplier}}, Combinations(nil, RoleSupplier))
	assert.Equal(t, []Combination{{Law94, RoleCustomer}}, Combinations(&law, RoleCustomer))
}

func TestRecordTaggedCopies(t *testing.T) {
	orig := Record{"Номер": "1"}
	tagged := orig.Tagged(Combination{Law: Law44, Role: RoleCustomer})

	assert.Equal(t, 44, tagged[TagLaw])
	assert.Equal(t, "customer", tagged[TagRole])
	assert.NotContains(t, orig, TagLaw)
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, 20))
	assert.Equal(t, 1, PageCount(20, 20))
	assert.Equal(t, 2, PageCount(21, 20))
	assert.Equal(t, 3, PageCount(30, 10))
	assert.Equal(t, 1, PageCount(5, 0))
}

func TestQueryParams(t *testing.T) {
	q := Query{
		INN:       id.TaxID("7707083893"),
		Family:    FamilyLitigation,
		PartyRole: "defendant",
		DateFrom:  "2020-01-01",
	}
	p := q.Params()
	assert.Equal(t, "7707083893", p.Get("inn"))
	assert.Equal(t, DefaultSort, p.Get("sort"))
	assert.Equal(t, "defendant", p.Get("role"))
	assert.Equal(t, "2020-01-01", p.Get("date_from"))
	assert.Empty(t, p.Get("actual"))

	paged := WithPaging(p, 2, 50)
	assert.Equal(t, "2", paged.Get("page"))
	assert.Empty(t, p.Get("page"), "original params untouched")

	enf := Query{INN: id.TaxID("1"), Family: FamilyEnforcement, PartyRole: "defendant", Sort: "date"}
	assert.Empty(t, enf.Params().Get("role"))
	assert.Equal(t, "date", enf.Params().Get("sort"))

	c := WithCombination(url.Values{"inn": {"1"}}, Combination{Law: Law223, Role: RoleSupplier})
	assert.Equal(t, "223", c.Get("law"))
	assert.Equal(t, "supplier", c.Get("role"))
}
