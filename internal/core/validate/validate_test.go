package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPastaName(t *testing.T) {
	existing := []string{"spaghetti", "penne"}

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"valid", "Gnocchi", ""},
		{"valid with space", "angel hair", ""},
		{"valid with apostrophe", "Nonna's Special", ""},
		{"valid with hyphen", "Whole-Wheat Fusilli", ""},
		{"empty", "", "cannot be empty"},
		{"whitespace only", "   ", "cannot be empty"},
		{"too short", "a", "at least 2 characters"},
		{"too long", strings.Repeat("a", 51), "50 characters or less"},
		{"digits rejected", "pasta3", "can only contain"},
		{"punctuation rejected", "pasta!", "can only contain"},
		{"duplicate", "spaghetti", "already exists"},
		{"duplicate case-insensitive", "SPAGHETTI", "already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PastaName(tt.input, existing)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCookingTimes(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		wantErr  string
	}{
		{"valid range", 8, 10, ""},
		{"valid single point", 5, 5, ""},
		{"zero min", 0, 10, "at least 1 minute"},
		{"negative", -1, 10, "at least 1 minute"},
		{"too large", 10, 61, "60 minutes or less"},
		{"inverted", 10, 8, "cannot be greater than"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CookingTimes(tt.min, tt.max)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCustomPasta(t *testing.T) {
	assert.NoError(t, CustomPasta("Gnocchi", 2, 4, []string{"penne"}))

	err := CustomPasta("x", 0, 70, []string{"penne"})
	require.Error(t, err, "all invalid fields reported together")
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "cooking_time")
}
