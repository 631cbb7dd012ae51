package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/axellelanca/linkbundles/cmd"
	"github.com/axellelanca/linkbundles/internal/api"
	"github.com/axellelanca/linkbundles/internal/database"
	"github.com/axellelanca/linkbundles/internal/models"
)

var (
	createUser        string
	createProvider    string
	createVanity      string
	createDescription string
	createLinks       []string
)

// CreateCmd creates a link bundle from the command line.
var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates a link bundle.",
	Long: `Creates a link bundle owned by --user and prints its vanity URL.

Example:
  linkbundles create --user=jane@example.com --vanity=go-reading \
    --link=https://go.dev/doc --link=https://go.dev/blog`,
	Run: func(c *cobra.Command, args []string) {
		bundle := &models.LinkBundle{
			VanityURL:   createVanity,
			Description: createDescription,
		}
		for i, u := range createLinks {
			bundle.Links = append(bundle.Links, models.Link{ID: fmt.Sprintf("%d", i+1), URL: u})
		}

		svc, db, err := openService(createProvider, createUser)
		if err != nil {
			logrus.Fatalf("failed to open store: %v", err)
		}
		defer database.Close(db)

		created, err := svc.Create(context.Background(), bundle)
		if err != nil {
			logrus.Fatalf("failed to create link bundle: %v", err)
		}

		fmt.Printf("Link bundle created:\n")
		fmt.Printf("Vanity URL: %s\n", created.VanityURL)
		fmt.Printf("Owner: %s\n", created.UserID)
		fmt.Printf("Full URL: %s%s\n", cmd.Cfg.Server.BaseURL, api.BundleLocation(created.VanityURL))
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createUser, "user", "", "Principal (email or subject) owning the bundle")
	CreateCmd.Flags().StringVar(&createProvider, "provider", "", "Identity provider of the principal")
	CreateCmd.Flags().StringVar(&createVanity, "vanity", "", "Vanity URL; generated when empty")
	CreateCmd.Flags().StringVar(&createDescription, "description", "", "Free text description")
	CreateCmd.Flags().StringArrayVar(&createLinks, "link", nil, "Link URL (repeatable)")

	_ = CreateCmd.MarkFlagRequired("user")
	_ = CreateCmd.MarkFlagRequired("link")

	cmd.RootCmd.AddCommand(CreateCmd)
}
