package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "kontrola/pkg/domain-errors"
)

// TestParseTaxID_Invariants validates the parsing invariant:
// "identifiers must be non-empty, trimmed and free of whitespace"
func TestParseTaxID_Invariants(t *testing.T) {
	t.Run("rejects empty string as missing input", func(t *testing.T) {
		_, err := ParseTaxID("   ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("rejects oversized input", func(t *testing.T) {
		_, err := ParseTaxID(strings.Repeat("7", 21))
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects embedded whitespace", func(t *testing.T) {
		_, err := ParseTaxID("7707 083893")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts and trims a valid identifier", func(t *testing.T) {
		inn, err := ParseTaxID(" 7707083893\n")
		require.NoError(t, err)
		assert.Equal(t, TaxID("7707083893"), inn)
		assert.False(t, inn.IsNil())
	})
}

func TestAPIVersion(t *testing.T) {
	v, err := ParseAPIVersion("v1")
	require.NoError(t, err)
	assert.Equal(t, APIVersionV1, v)
	assert.Equal(t, "/api/v1", v.Prefix())

	_, err = ParseAPIVersion("v9")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
