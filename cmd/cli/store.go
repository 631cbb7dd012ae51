package cli

import (
	"context"

	"gorm.io/gorm"

	"github.com/axellelanca/linkbundles/cmd"
	"github.com/axellelanca/linkbundles/internal/auth"
	"github.com/axellelanca/linkbundles/internal/database"
	"github.com/axellelanca/linkbundles/internal/repository"
	"github.com/axellelanca/linkbundles/internal/services"
)

// openService connects to the store and acts on behalf of the principal
// given on the command line.
func openService(provider, principal string) (*services.BundleService, *gorm.DB, error) {
	db, err := database.Open(cmd.Cfg.Database.Driver, cmd.Cfg.DSN(), nil)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db); err != nil {
		database.Close(db)
		return nil, nil, err
	}

	handle := ""
	if principal != "" {
		handle = auth.Handle(provider, principal)
	}
	identity := auth.ResolverFunc(func(context.Context) string { return handle })

	return services.NewBundleService(repository.NewBundleRepository(db), identity), db, nil
}
