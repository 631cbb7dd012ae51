package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/axellelanca/linkbundles/cmd"
	"github.com/axellelanca/linkbundles/internal/database"
)

// MigrateCmd creates or updates the database schema.
var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Executes database migrations to create or update tables.",
	Long: `This command connects to the configured database (sqlite or postgres)
and runs GORM automatic migrations for the link_bundles table.`,
	Run: func(c *cobra.Command, args []string) {
		db, err := database.Open(cmd.Cfg.Database.Driver, cmd.Cfg.DSN(), nil)
		if err != nil {
			logrus.Fatalf("failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}

		fmt.Println("Database migrations executed successfully.")
	},
}

func init() {
	cmd.RootCmd.AddCommand(MigrateCmd)
}
