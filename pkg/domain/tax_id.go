package domain

import (
	"strings"
	"unicode"

	dErrors "kontrola/pkg/domain-errors"
)

// maxTaxIDLength bounds what is forwarded upstream; real identifiers are
// 10 (legal entity) or 12 (individual) digits.
const maxTaxIDLength = 20

// TaxID is the identifier every lookup is keyed by.
// Invariant: non-empty, trimmed, at most 20 characters, no spaces or control characters.
//
// Usage: construct via ParseTaxID at trust boundaries; direct casting bypasses validation.
type TaxID string

// ParseTaxID validates a caller-supplied identifier.
// An empty value is a missing required input and is reported as bad_request.
func ParseTaxID(s string) (TaxID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "inn is required")
	}
	if len(s) > maxTaxIDLength {
		return "", dErrors.New(dErrors.CodeInvalidInput, "inn must be at most 20 characters")
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "inn must not contain spaces or control characters")
		}
	}
	return TaxID(s), nil
}

func (t TaxID) String() string {
	return string(t)
}

func (t TaxID) IsNil() bool {
	return t == ""
}
