// Package models holds the registry aggregation types: record families,
// procurement filter dimensions, raw provider documents and the summaries
// and pages built from them.
package models

import (
	"strconv"
	"strings"

	dErrors "kontrola/pkg/domain-errors"
)

// Family is one kind of registry record.
type Family string

const (
	FamilyLitigation  Family = "litigation"
	FamilyEnforcement Family = "enforcement"
	FamilyInspections Family = "inspections"
	FamilyContracts   Family = "contracts"
)

// Families lists every family in company-identity resolution order.
var Families = []Family{FamilyLitigation, FamilyEnforcement, FamilyInspections, FamilyContracts}

var familyAliases = map[string]Family{
	"arbitr":  FamilyLitigation,
	"fssp":    FamilyEnforcement,
	"inspect": FamilyInspections,
}

// ParseFamily accepts a family name or one of its short aliases.
func ParseFamily(s string) (Family, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range Families {
		if string(f) == s {
			return f, nil
		}
	}
	if f, ok := familyAliases[s]; ok {
		return f, nil
	}
	return "", dErrors.New(dErrors.CodeNotFound, "unknown registry family: "+s)
}

// Path is the provider endpoint for the family.
func (f Family) Path() string {
	switch f {
	case FamilyLitigation:
		return "/legal-cases"
	case FamilyEnforcement:
		return "/enforcements"
	case FamilyInspections:
		return "/inspections"
	case FamilyContracts:
		return "/contracts"
	default:
		return ""
	}
}

// DateFields are the candidate record fields holding the event date, in
// priority order.
func (f Family) DateFields() []string {
	switch f {
	case FamilyLitigation, FamilyContracts:
		return []string{"Дата"}
	case FamilyEnforcement:
		return []string{"ИспПрДата"}
	case FamilyInspections:
		return []string{"ДатаНач"}
	default:
		return nil
	}
}

// LawType is the procurement regulation a contract was awarded under.
type LawType int

const (
	Law44  LawType = 44
	Law94  LawType = 94
	Law223 LawType = 223
)

// LawTypes in ascending order; the contracts fan-out iterates them outermost.
var LawTypes = []LawType{Law44, Law94, Law223}

func (l LawType) String() string {
	return strconv.Itoa(int(l))
}

// ParseLawType accepts "44", "94" or "223".
func ParseLawType(s string) (LawType, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err == nil {
		for _, l := range LawTypes {
			if int(l) == n {
				return l, nil
			}
		}
	}
	return 0, dErrors.New(dErrors.CodeValidation, "law must be one of 44, 94, 223")
}

// Role is the side of a contract the company was on.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
)

// ContractRoles in ascending order; the inner loop of the contracts fan-out.
var ContractRoles = []Role{RoleCustomer, RoleSupplier}

// ParseContractRole accepts "customer" or "supplier".
func ParseContractRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleSupplier:
		return r, nil
	}
	return "", dErrors.New(dErrors.CodeValidation, "role must be customer or supplier")
}

// Combination is one (law, role) filter pair of the contracts cross product.
type Combination struct {
	Law  LawType
	Role Role
}

// Combinations enumerates the cross product, law ascending outer, role
// ascending inner. A non-nil law or non-empty role pins that dimension.
func Combinations(law *LawType, role Role) []Combination {
	laws := LawTypes
	if law != nil {
		laws = []LawType{*law}
	}
	roles := ContractRoles
	if role != "" {
		roles = []Role{role}
	}
	out := make([]Combination, 0, len(laws)*len(roles))
	for _, l := range laws {
		for _, r := range roles {
			out = append(out, Combination{Law: l, Role: r})
		}
	}
	return out
}

// Tags added to contract records, which the provider does not echo.
const (
	TagLaw  = "__law"
	TagRole = "__role"
)
