package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	customerrors "github.com/axellelanca/linkbundles/internal/errors"
	"github.com/axellelanca/linkbundles/internal/models"
)

//go:generate mockgen -source=bundle_repository.go -destination=../mocks/repository_mocks.go -package=mocks

// BundleRepository is the bundle store used by the service layer.
// Create and Update fail with customerrors.ErrDuplicateKey on a uniqueness
// violation; lookups by vanity URL fail with customerrors.ErrBundleNotFound.
type BundleRepository interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByVanityURL(ctx context.Context, vanityURL string) (*models.LinkBundle, error)
	FindByUser(ctx context.Context, userID string) ([]models.LinkBundle, error)
	Create(ctx context.Context, bundle *models.LinkBundle) error
	Update(ctx context.Context, bundle *models.LinkBundle) error
	Delete(ctx context.Context, bundle *models.LinkBundle) error
	ListAll(ctx context.Context) ([]models.LinkBundle, error)
}

// GormBundleRepository implements BundleRepository on top of GORM.
type GormBundleRepository struct {
	db *gorm.DB
}

var _ BundleRepository = (*GormBundleRepository)(nil)

// NewBundleRepository returns a GORM backed bundle store.
func NewBundleRepository(db *gorm.DB) *GormBundleRepository {
	return &GormBundleRepository{db: db}
}

func (r *GormBundleRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LinkBundle{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check link bundle %s: %w", id, err)
	}
	return count > 0, nil
}

func (r *GormBundleRepository) FindByVanityURL(ctx context.Context, vanityURL string) (*models.LinkBundle, error) {
	var bundle models.LinkBundle
	err := r.db.WithContext(ctx).Where("vanity_url = ?", vanityURL).First(&bundle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customerrors.ErrBundleNotFound
		}
		return nil, fmt.Errorf("failed to find link bundle %q: %w", vanityURL, err)
	}
	return &bundle, nil
}

func (r *GormBundleRepository) FindByUser(ctx context.Context, userID string) ([]models.LinkBundle, error) {
	var bundles []models.LinkBundle
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&bundles).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve link bundles for user %s: %w", userID, err)
	}
	return bundles, nil
}

func (r *GormBundleRepository) Create(ctx context.Context, bundle *models.LinkBundle) error {
	if err := r.db.WithContext(ctx).Create(bundle).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create link bundle %s: %w", bundle.ID, customerrors.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create link bundle %s: %w", bundle.ID, err)
	}
	return nil
}

// Update rewrites the mutable columns of an existing bundle. The owner is never updated.
func (r *GormBundleRepository) Update(ctx context.Context, bundle *models.LinkBundle) error {
	res := r.db.WithContext(ctx).
		Model(&models.LinkBundle{ID: bundle.ID}).
		Select("VanityURL", "Description", "Links").
		Updates(bundle)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return fmt.Errorf("failed to update link bundle %s: %w", bundle.ID, customerrors.ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update link bundle %s: %w", bundle.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return customerrors.ErrBundleNotFound
	}
	return nil
}

func (r *GormBundleRepository) Delete(ctx context.Context, bundle *models.LinkBundle) error {
	if err := r.db.WithContext(ctx).Delete(&models.LinkBundle{}, "id = ?", bundle.ID).Error; err != nil {
		return fmt.Errorf("failed to delete link bundle %s: %w", bundle.ID, err)
	}
	return nil
}

func (r *GormBundleRepository) ListAll(ctx context.Context) ([]models.LinkBundle, error) {
	var bundles []models.LinkBundle
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&bundles).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve all link bundles: %w", err)
	}
	return bundles, nil
}

// isUniqueViolation recognizes unique index failures from both supported
// drivers, whether or not the dialector translated them.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
