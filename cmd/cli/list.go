package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/axellelanca/linkbundles/cmd"
	"github.com/axellelanca/linkbundles/internal/auth"
	"github.com/axellelanca/linkbundles/internal/database"
	customerrors "github.com/axellelanca/linkbundles/internal/errors"
)

var (
	listUser     string
	listProvider string
)

// ListCmd prints the bundles owned by a user.
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the link bundles of a user",
	Long:  `Lists vanity URL, description and link count of every bundle owned by --user.`,
	Run:   runList,
}

func init() {
	ListCmd.Flags().StringVar(&listUser, "user", "", "Principal (email or subject)")
	ListCmd.Flags().StringVar(&listProvider, "provider", "", "Identity provider of the principal")
	_ = ListCmd.MarkFlagRequired("user")

	cmd.RootCmd.AddCommand(ListCmd)
}

func runList(c *cobra.Command, args []string) {
	svc, db, err := openService(listProvider, listUser)
	if err != nil {
		logrus.Fatalf("failed to open store: %v", err)
	}
	defer database.Close(db)

	handle := auth.Handle(listProvider, listUser)
	summaries, err := svc.ListByUser(context.Background(), handle)
	if err != nil {
		if customerrors.IsNotFound(err) {
			fmt.Printf("No link bundles for %s\n", listUser)
			return
		}
		logrus.Fatalf("failed to list link bundles: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VANITY URL\tLINKS\tDESCRIPTION")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.VanityURL, s.LinkCount, s.Description)
	}
	w.Flush()
}
