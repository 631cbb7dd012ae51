package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axellelanca/linkbundles/internal/models"
)

func TestGenerateVanityURL_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateVanityURL(VanityURLLength)
		require.NoError(t, err)
		require.Len(t, code, VanityURLLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(vanityAlphabet, r), "unexpected character %q", r)
		}
	}
}

func TestGenerateVanityURL_UsesWholeAlphabet(t *testing.T) {
	seen := make(map[rune]bool)
	for i := 0; i < 2000 && len(seen) < len(vanityAlphabet); i++ {
		code, err := GenerateVanityURL(VanityURLLength)
		require.NoError(t, err)
		for _, r := range code {
			seen[r] = true
		}
	}
	// 14000 draws over 62 symbols; missing one by chance is negligible.
	assert.Len(t, seen, len(vanityAlphabet))
}

func TestAssignVanityURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "caller value is lowercased", input: "Sample-Link", expected: "sample-link"},
		{name: "segments are kept", input: "Team/Docs", expected: "team/docs"},
		{name: "invalid value is kept for validation", input: "A B", expected: "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &models.LinkBundle{VanityURL: tt.input}
			require.NoError(t, AssignVanityURL(b))
			assert.Equal(t, tt.expected, b.VanityURL)
		})
	}
}

func TestAssignVanityURL_GeneratesWhenBlank(t *testing.T) {
	for _, input := range []string{"", " ", "\t\n"} {
		b := &models.LinkBundle{VanityURL: input}
		require.NoError(t, AssignVanityURL(b))

		assert.Len(t, b.VanityURL, VanityURLLength)
		assert.Equal(t, strings.ToLower(b.VanityURL), b.VanityURL)
		assert.True(t, models.IsValidVanityURL(b.VanityURL))
	}
}
