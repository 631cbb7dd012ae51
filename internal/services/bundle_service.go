// Package services contains the business logic layer for link bundles.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/axellelanca/linkbundles/internal/auth"
	customerrors "github.com/axellelanca/linkbundles/internal/errors"
	"github.com/axellelanca/linkbundles/internal/logger"
	"github.com/axellelanca/linkbundles/internal/models"
	"github.com/axellelanca/linkbundles/internal/repository"
)

// BundleService implements the bundle lifecycle and its authorization rules.
// It holds no mutable state; every call works only through the store and
// the identity resolver.
type BundleService struct {
	repo     repository.BundleRepository
	identity auth.Resolver
	newID    func() string
}

// NewBundleService creates and returns a new instance of BundleService.
func NewBundleService(repo repository.BundleRepository, identity auth.Resolver) *BundleService {
	return &BundleService{
		repo:     repo,
		identity: identity,
		newID:    func() string { return uuid.NewString() },
	}
}

// IsOwner reports whether handle owns bundle. An empty handle owns nothing.
func IsOwner(handle string, bundle *models.LinkBundle) bool {
	return sameHandle(handle, bundle.UserID)
}

func sameHandle(a, b string) bool {
	a = auth.NormalizeHandle(a)
	return a != "" && a == auth.NormalizeHandle(b)
}

// ListAll returns every bundle without any filtering or authorization.
// TODO: remove once the web client stops calling GET /links.
func (s *BundleService) ListAll(ctx context.Context) ([]models.LinkBundle, error) {
	return s.repo.ListAll(ctx)
}

// GetByVanityURL returns the bundle published under vanityURL. Bundles are
// publicly readable. The lookup is exact: stored vanity URLs are lowercase.
func (s *BundleService) GetByVanityURL(ctx context.Context, vanityURL string) (*models.LinkBundle, error) {
	return s.repo.FindByVanityURL(ctx, vanityURL)
}

// ListByUser returns the summaries of the bundles owned by userID. Only the
// user themselves may list them.
func (s *BundleService) ListByUser(ctx context.Context, userID string) ([]models.BundleSummary, error) {
	handle := s.identity.UserHandle(ctx)
	if handle == "" {
		return nil, customerrors.ErrUnauthenticated
	}
	if !sameHandle(handle, userID) {
		return nil, customerrors.ErrUserMismatch
	}

	bundles, err := s.repo.FindByUser(ctx, auth.NormalizeHandle(userID))
	if err != nil {
		return nil, err
	}
	if len(bundles) == 0 {
		return nil, customerrors.ErrBundleNotFound
	}

	summaries := make([]models.BundleSummary, 0, len(bundles))
	for i := range bundles {
		summaries = append(summaries, bundles[i].Summary())
	}
	return summaries, nil
}

// Create stores a new bundle owned by the caller.
//
// The caller supplied owner is always replaced by the resolved identity. A
// missing vanity URL is generated; any vanity URL is lowercased and must
// match the vanity pattern. When the store reports a uniqueness violation
// the bundle id is looked up again: if a bundle with that id exists the
// result is customerrors.ErrBundleExists, otherwise the store error is
// returned unchanged.
func (s *BundleService) Create(ctx context.Context, bundle *models.LinkBundle) (*models.LinkBundle, error) {
	if bundle == nil || len(bundle.Links) == 0 {
		return nil, customerrors.ErrNoLinks
	}

	bundle.UserID = auth.NormalizeHandle(s.identity.UserHandle(ctx))

	if err := AssignVanityURL(bundle); err != nil {
		return nil, err
	}
	if !models.IsValidVanityURL(bundle.VanityURL) {
		return nil, customerrors.ErrInvalidVanityURL
	}
	if strings.TrimSpace(bundle.ID) == "" {
		bundle.ID = s.newID()
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bundleId":  bundle.ID,
		"vanityUrl": bundle.VanityURL,
	})

	if err := s.repo.Create(ctx, bundle); err != nil {
		if !customerrors.IsDuplicateKey(err) {
			return nil, err
		}
		exists, existsErr := s.repo.ExistsByID(ctx, bundle.ID)
		if existsErr != nil {
			return nil, fmt.Errorf("%w (existence check failed: %v)", err, existsErr)
		}
		if exists {
			log.Info("link bundle id already taken")
			return nil, customerrors.ErrBundleExists
		}
		return nil, err
	}

	log.WithField("links", len(bundle.Links)).Info("link bundle created")
	return bundle, nil
}

// Delete removes the bundle published under vanityURL. Only its owner may.
func (s *BundleService) Delete(ctx context.Context, vanityURL string) error {
	bundle, err := s.ownedBundle(ctx, vanityURL)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, bundle); err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("vanityUrl", vanityURL).Info("link bundle deleted")
	return nil
}

// Patch applies edits to the bundle published under vanityURL and persists
// the result only when it validates. Only the owner may patch. The id and
// owner of a bundle cannot be edited.
func (s *BundleService) Patch(ctx context.Context, vanityURL string, edits EditSet) error {
	bundle, err := s.ownedBundle(ctx, vanityURL)
	if err != nil {
		return err
	}

	edited, err := applyEdits(bundle, edits)
	if err != nil {
		return err
	}
	edited.VanityURL = strings.ToLower(edited.VanityURL)

	var readOnly customerrors.ValidationErrors
	if edited.ID != bundle.ID {
		readOnly = append(readOnly, &customerrors.ValidationError{Field: "id", Message: "is read-only"})
	}
	if edited.UserID != bundle.UserID {
		readOnly = append(readOnly, &customerrors.ValidationError{Field: "userId", Message: "is read-only"})
	}
	if len(readOnly) > 0 {
		return readOnly
	}
	if err := edited.Validate(); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, edited); err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"bundleId":  edited.ID,
		"vanityUrl": edited.VanityURL,
	}).Info("link bundle updated")
	return nil
}

// ownedBundle resolves the caller, loads the bundle and checks ownership,
// in that order, before any mutation is attempted.
func (s *BundleService) ownedBundle(ctx context.Context, vanityURL string) (*models.LinkBundle, error) {
	handle := s.identity.UserHandle(ctx)
	if handle == "" {
		return nil, customerrors.ErrUnauthenticated
	}

	bundle, err := s.repo.FindByVanityURL(ctx, vanityURL)
	if err != nil {
		return nil, err
	}

	if !IsOwner(handle, bundle) {
		return nil, customerrors.ErrNotOwner
	}
	return bundle, nil
}
