package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/axellelanca/linkbundles/cmd"
	"github.com/axellelanca/linkbundles/internal/auth"
)

var (
	tokenSubject  string
	tokenEmail    string
	tokenProvider string
)

// TokenCmd mints a bearer token signed with the configured secret.
var TokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issues a signed bearer token for local testing.",
	Run: func(c *cobra.Command, args []string) {
		tokens := auth.NewTokenService(cmd.Cfg.Auth.JWTSecret, cmd.Cfg.Auth.Issuer, cmd.Cfg.Auth.TokenTTL)

		signed, err := tokens.Issue(tokenSubject, tokenEmail, tokenProvider)
		if err != nil {
			logrus.Fatalf("failed to issue token: %v", err)
		}

		principal := tokenEmail
		if principal == "" {
			principal = tokenSubject
		}
		fmt.Printf("Token: %s\n", signed)
		fmt.Printf("User handle: %s\n", auth.Handle(tokenProvider, principal))
	},
}

func init() {
	TokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Token subject")
	TokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim; preferred over the subject")
	TokenCmd.Flags().StringVar(&tokenProvider, "provider", "", "Identity provider claim")

	cmd.RootCmd.AddCommand(TokenCmd)
}
