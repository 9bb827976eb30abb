package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   ",
			expected: "",
		},
		{
			name:     "lowercase word",
			input:    "canada",
			expected: "Canada",
		},
		{
			name:     "uppercase word",
			input:    "CANADA",
			expected: "Canada",
		},
		{
			name:     "surrounding whitespace",
			input:    "  canada ",
			expected: "Canada",
		},
		{
			name:     "multiple words",
			input:    "united STATES",
			expected: "United States",
		},
		{
			name:     "already normalized",
			input:    "Canada",
			expected: "Canada",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleTrim(tt.input))
		})
	}
}

func TestTitleTrimIdempotent(t *testing.T) {
	for _, input := range []string{"canada", " new zealand ", "UNITED KINGDOM", "Canada"} {
		once := TitleTrim(input)
		assert.Equal(t, once, TitleTrim(once), "input %q", input)
	}
}

func TestUpperTrim(t *testing.T) {
	assert.Equal(t, "BC", UpperTrim(" bc "))
	assert.Equal(t, "BRITISH COLUMBIA", UpperTrim("British Columbia\t"))
	assert.Equal(t, "", UpperTrim("   "))
}
