package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-dashboard/internal/auth"
)

func newTokenCommand() *cobra.Command {
	var userID string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Long:  "Signs a token with AUTH_SIGNING_KEY the way the identity provider does, for local use against the API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, _, err := loadConfig()
			if err != nil {
				return err
			}

			issuer, err := auth.NewIssuer([]byte(env.AuthSigningKey), env.AuthIssuer)
			if err != nil {
				return fmt.Errorf("create issuer: %w", err)
			}
			token, err := issuer.Issue(userID, time.Now(), ttl)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id to put in the token subject (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	return cmd
}
