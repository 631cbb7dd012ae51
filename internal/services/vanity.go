package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/axellelanca/linkbundles/internal/models"
)

// vanityAlphabet is the character set of generated vanity URLs.
const vanityAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// VanityURLLength is the length of generated vanity URLs.
const VanityURLLength = 7

// GenerateVanityURL draws length characters from vanityAlphabet.
// rand.Int samples uniformly in [0, len(alphabet)), so every character is
// equally likely.
func GenerateVanityURL(length int) (string, error) {
	max := big.NewInt(int64(len(vanityAlphabet)))
	code := make([]byte, length)
	for i := range code {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		code[i] = vanityAlphabet[num.Int64()]
	}
	return string(code), nil
}

// AssignVanityURL generates a vanity URL when the bundle has none, then
// lowercases whatever the bundle ends up with. Pattern validation is left
// to the caller and happens afterwards.
func AssignVanityURL(bundle *models.LinkBundle) error {
	if strings.TrimSpace(bundle.VanityURL) == "" {
		code, err := GenerateVanityURL(VanityURLLength)
		if err != nil {
			return err
		}
		bundle.VanityURL = code
	}
	bundle.VanityURL = strings.ToLower(bundle.VanityURL)
	return nil
}
