package repository

import (
	"context"

	"github.com/axellelanca/linkbundles/internal/logger"
	"github.com/axellelanca/linkbundles/internal/models"
)

// BundleCache is a lookup cache keyed by vanity URL.
type BundleCache interface {
	Get(ctx context.Context, vanityURL string) (*models.LinkBundle, bool, error)
	Set(ctx context.Context, bundle *models.LinkBundle) error
	Invalidate(ctx context.Context, bundle *models.LinkBundle) error
}

// CachedBundleRepository serves FindByVanityURL from a cache and keeps it
// coherent on Update and Delete. Cache failures are logged and never fail
// a request; the underlying store stays the source of truth.
type CachedBundleRepository struct {
	BundleRepository
	cache BundleCache
}

var _ BundleRepository = (*CachedBundleRepository)(nil)

// NewCachedBundleRepository wraps next with a read-through cache.
func NewCachedBundleRepository(next BundleRepository, cache BundleCache) *CachedBundleRepository {
	return &CachedBundleRepository{BundleRepository: next, cache: cache}
}

func (r *CachedBundleRepository) FindByVanityURL(ctx context.Context, vanityURL string) (*models.LinkBundle, error) {
	log := logger.WithContext(ctx).WithField("vanityUrl", vanityURL)

	bundle, ok, err := r.cache.Get(ctx, vanityURL)
	if err != nil {
		log.Warnf("cache lookup failed: %v", err)
	} else if ok {
		return bundle, nil
	}

	bundle, err = r.BundleRepository.FindByVanityURL(ctx, vanityURL)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, bundle); err != nil {
		log.Warnf("cache fill failed: %v", err)
	}
	return bundle, nil
}

func (r *CachedBundleRepository) Update(ctx context.Context, bundle *models.LinkBundle) error {
	if err := r.BundleRepository.Update(ctx, bundle); err != nil {
		return err
	}
	r.invalidate(ctx, bundle)
	return nil
}

func (r *CachedBundleRepository) Delete(ctx context.Context, bundle *models.LinkBundle) error {
	if err := r.BundleRepository.Delete(ctx, bundle); err != nil {
		return err
	}
	r.invalidate(ctx, bundle)
	return nil
}

func (r *CachedBundleRepository) invalidate(ctx context.Context, bundle *models.LinkBundle) {
	if err := r.cache.Invalidate(ctx, bundle); err != nil {
		logger.WithContext(ctx).WithField("bundleId", bundle.ID).Warnf("cache invalidation failed: %v", err)
	}
}
