package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "cerb/pkg/domain-errors"
)

// TestParsePersonName_Invariants validates the parsing invariant:
// "a name is two letter-only tokens, each starting uppercase, one space apart"
func TestParsePersonName_Invariants(t *testing.T) {
	rejected := []string{
		"",
		"Chris",
		"chris Thompson",
		"Chris thompson",
		"Chris2 Thompson",
		"Chris  Thompson",
		" Chris Thompson",
		"Chris Thompson ",
		"Chris Van Dyke",
		"Chris-Ann Thompson",
	}
	for _, input := range rejected {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := ParsePersonName(input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			assert.False(t, IsValidPersonName(input))
		})
	}

	for _, input := range []string{"Chris Thompson", "Jessica Hong", "A B", "McDonald OReilly"} {
		t.Run("accepts "+input, func(t *testing.T) {
			name, err := ParsePersonName(input)
			require.NoError(t, err)
			assert.Equal(t, input, name.String())
		})
	}
}

func TestParseCountry(t *testing.T) {
	for _, input := range []string{"canada", "CANADA", "  canada ", "Canada"} {
		c, err := ParseCountry(input)
		require.NoError(t, err, input)
		assert.Equal(t, CountryCanada, c, input)
	}

	c, err := ParseCountry("United States")
	require.NoError(t, err)
	assert.NotEqual(t, CountryCanada, c)

	_, err = ParseCountry("  ")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestNormalizeCountry_Idempotent(t *testing.T) {
	for _, input := range []string{"canada", "united states", "  FRANCE  ", "Canada"} {
		once := NormalizeCountry(input)
		assert.Equal(t, once, NormalizeCountry(once.String()), input)
	}
}

func TestParseProvince(t *testing.T) {
	t.Run("accepts British Columbia by name or abbreviation", func(t *testing.T) {
		for _, input := range []string{"British Columbia", "british columbia", " BC ", "bc"} {
			p, err := ParseProvince(input)
			require.NoError(t, err)
			assert.True(t, p.IsBritishColumbia(), input)
		}
	})

	t.Run("rejects every other province and territory", func(t *testing.T) {
		for _, name := range ProvincesAndTerritories {
			if name == RegionBritishColumbia {
				continue
			}
			p, err := ParseProvince(name)
			require.NoError(t, err)
			assert.False(t, p.IsBritishColumbia(), name)
		}
	})

	t.Run("blank answer", func(t *testing.T) {
		_, err := ParseProvince("   ")
		require.ErrorIs(t, err, ErrBlankProvince)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("lists thirteen provinces and territories", func(t *testing.T) {
		assert.Len(t, ProvincesAndTerritories, 13)
	})
}

func TestParseAgeAndIncome(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "23", want: 23, ok: true},
		{input: " 15 ", want: 15, ok: true},
		{input: "1", want: 1, ok: true},
		{input: "0"},
		{input: "-4"},
		{input: "twenty"},
		{input: "12.5"},
		{input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			age, err := ParseAge(tt.input)
			income, errIncome := ParseIncome(tt.input)
			if !tt.ok {
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				assert.True(t, dErrors.HasCode(errIncome, dErrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			require.NoError(t, errIncome)
			assert.Equal(t, tt.want, age)
			assert.Equal(t, tt.want, income)
		})
	}
}
