package services

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	customerrors "github.com/axellelanca/linkbundles/internal/errors"
	"github.com/axellelanca/linkbundles/internal/models"
)

// EditSet is a set of field edits applied to the JSON form of a bundle.
// jsonpatch.Patch satisfies it.
type EditSet interface {
	Apply(doc []byte) ([]byte, error)
}

// DecodeEditSet parses an RFC 6902 JSON Patch document.
func DecodeEditSet(body []byte) (EditSet, error) {
	patch, err := jsonpatch.DecodePatch(body)
	if err != nil {
		return nil, customerrors.NewValidationError("patch", err.Error())
	}
	return patch, nil
}

// applyEdits returns an edited copy of bundle; the original is left untouched.
// The result is not validated here.
func applyEdits(bundle *models.LinkBundle, edits EditSet) (*models.LinkBundle, error) {
	doc, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to encode link bundle: %w", err)
	}

	patched, err := edits.Apply(doc)
	if err != nil {
		return nil, customerrors.NewValidationError("patch", err.Error())
	}

	// Decode into a fresh value so removed members end up empty.
	edited := &models.LinkBundle{}
	if err := json.Unmarshal(patched, edited); err != nil {
		return nil, customerrors.NewValidationError("patch", err.Error())
	}
	edited.CreatedAt = bundle.CreatedAt
	edited.UpdatedAt = bundle.UpdatedAt
	return edited, nil
}
