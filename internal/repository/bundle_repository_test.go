package repository_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/axellelanca/linkbundles/internal/database"
	customerrors "github.com/axellelanca/linkbundles/internal/errors"
	"github.com/axellelanca/linkbundles/internal/models"
	"github.com/axellelanca/linkbundles/internal/repository"
)

// newTestDB opens a private in-memory sqlite database for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(database.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", name), nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

type BundleRepositoryTestSuite struct {
	suite.Suite
	// openDB defaults to newTestDB.
	openDB func(t *testing.T) *gorm.DB
	repo   *repository.GormBundleRepository
	ctx    context.Context
}

func (s *BundleRepositoryTestSuite) SetupTest() {
	open := s.openDB
	if open == nil {
		open = newTestDB
	}
	s.repo = repository.NewBundleRepository(open(s.T()))
	s.ctx = context.Background()
}

func TestBundleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BundleRepositoryTestSuite))
}

func bundle(id, user, vanity string, links ...string) *models.LinkBundle {
	b := &models.LinkBundle{ID: id, UserID: user, VanityURL: vanity, Description: "bundle " + id}
	for i, u := range links {
		b.Links = append(b.Links, models.Link{ID: fmt.Sprint(i), URL: u, Title: "link " + fmt.Sprint(i)})
	}
	return b
}

func (s *BundleRepositoryTestSuite) TestCreateAndFindByVanityURL() {
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b1", "alice", "go/reading", "https://go.dev", "https://pkg.go.dev")))

	found, err := s.repo.FindByVanityURL(s.ctx, "go/reading")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "b1", found.ID)
	assert.Equal(s.T(), "alice", found.UserID)
	require.Len(s.T(), found.Links, 2)
	assert.Equal(s.T(), "https://go.dev", found.Links[0].URL)
	assert.Equal(s.T(), "https://pkg.go.dev", found.Links[1].URL)
}

func (s *BundleRepositoryTestSuite) TestFindByVanityURL_NotFound() {
	_, err := s.repo.FindByVanityURL(s.ctx, "missing")

	assert.ErrorIs(s.T(), err, customerrors.ErrBundleNotFound)
}

func (s *BundleRepositoryTestSuite) TestFindByVanityURL_IsCaseSensitive() {
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b1", "alice", "sample-link", "https://go.dev")))

	_, err := s.repo.FindByVanityURL(s.ctx, "Sample-Link")

	assert.ErrorIs(s.T(), err, customerrors.ErrBundleNotFound)
}

func (s *BundleRepositoryTestSuite) TestCreate_DuplicateID() {
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("dup1", "alice", "first", "https://go.dev")))

	err := s.repo.Create(s.ctx, bundle("dup1", "alice", "second", "https://go.dev"))

	assert.True(s.T(), customerrors.IsDuplicateKey(err), "got %v", err)
	exists, err := s.repo.ExistsByID(s.ctx, "dup1")
	require.NoError(s.T(), err)
	assert.True(s.T(), exists)
}

func (s *BundleRepositoryTestSuite) TestCreate_DuplicateVanityURL() {
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b1", "alice", "same", "https://go.dev")))

	err := s.repo.Create(s.ctx, bundle("b2", "bob", "same", "https://go.dev"))

	assert.True(s.T(), customerrors.IsDuplicateKey(err), "got %v", err)
	exists, err := s.repo.ExistsByID(s.ctx, "b2")
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}

func (s *BundleRepositoryTestSuite) TestFindByUser() {
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b1", "alice", "a1", "https://go.dev")))
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b2", "bob", "b1", "https://go.dev")))
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b3", "alice", "a2", "https://go.dev")))

	bundles, err := s.repo.FindByUser(s.ctx, "alice")

	require.NoError(s.T(), err)
	require.Len(s.T(), bundles, 2)
	assert.ElementsMatch(s.T(), []string{"a1", "a2"}, []string{bundles[0].VanityURL, bundles[1].VanityURL})

	none, err := s.repo.FindByUser(s.ctx, "carol")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), none)
}

func (s *BundleRepositoryTestSuite) TestUpdate() {
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b1", "alice", "old", "https://go.dev")))

	edited := bundle("b1", "mallory", "new", "https://go.dev", "https://go.dev/blog")
	edited.Description = "edited"
	require.NoError(s.T(), s.repo.Update(s.ctx, edited))

	_, err := s.repo.FindByVanityURL(s.ctx, "old")
	assert.ErrorIs(s.T(), err, customerrors.ErrBundleNotFound)

	found, err := s.repo.FindByVanityURL(s.ctx, "new")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "edited", found.Description)
	assert.Len(s.T(), found.Links, 2)
	assert.Equal(s.T(), "alice", found.UserID, "owner is never updated")
}

func (s *BundleRepositoryTestSuite) TestUpdate_EmptyLinksAndDescription() {
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b1", "alice", "v", "https://go.dev")))

	require.NoError(s.T(), s.repo.Update(s.ctx, &models.LinkBundle{ID: "b1", VanityURL: "v", Links: []models.Link{}}))

	found, err := s.repo.FindByVanityURL(s.ctx, "v")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), found.Description)
	assert.Empty(s.T(), found.Links)
}

func (s *BundleRepositoryTestSuite) TestUpdate_Missing() {
	err := s.repo.Update(s.ctx, bundle("ghost", "alice", "ghost"))

	assert.ErrorIs(s.T(), err, customerrors.ErrBundleNotFound)
}

func (s *BundleRepositoryTestSuite) TestUpdate_VanityURLTaken() {
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b1", "alice", "one", "https://go.dev")))
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b2", "alice", "two", "https://go.dev")))

	err := s.repo.Update(s.ctx, bundle("b2", "alice", "one", "https://go.dev"))

	assert.True(s.T(), customerrors.IsDuplicateKey(err), "got %v", err)
}

func (s *BundleRepositoryTestSuite) TestDeleteAndListAll() {
	b1 := bundle("b1", "alice", "one", "https://go.dev")
	require.NoError(s.T(), s.repo.Create(s.ctx, b1))
	require.NoError(s.T(), s.repo.Create(s.ctx, bundle("b2", "bob", "two", "https://go.dev")))

	all, err := s.repo.ListAll(s.ctx)
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)

	require.NoError(s.T(), s.repo.Delete(s.ctx, b1))

	all, err = s.repo.ListAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 1)
	assert.Equal(s.T(), "b2", all[0].ID)

	exists, err := s.repo.ExistsByID(s.ctx, "b1")
	require.NoError(s.T(), err)
	assert.False(s.T(), exists)
}
