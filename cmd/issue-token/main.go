// Command issue-token prints an operator bearer token signed with the
// configured auth.jwt_secret.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"safe-wallet-service/config"
	"safe-wallet-service/internal/adapter/http/dto"
	"safe-wallet-service/internal/service"

	"github.com/spf13/cobra"
)

var errAuthDisabled = errors.New("auth.jwt_secret is not set, operator authentication is disabled")

func newRootCmd() *cobra.Command {
	var (
		operator   string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Issue an operator bearer token",
		Long: `Issue a JWT for an operator of the Safe Wallet Service.

The token is printed to stdout and its expiry to stderr.

Examples:
  issue-token --operator ops
  SWS_AUTH_JWT_SECRET=... issue-token --operator ci-bot --config ./config/config.yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := dto.ValidateOperatorName(operator); err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cfg.Auth.Enabled() {
				return errAuthDisabled
			}

			tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Expiry, cfg.Auth.Issuer)
			token, expiresAt, err := tokenSvc.Generate(operator)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "operator name recorded as the token subject")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	_ = cmd.MarkFlagRequired("operator")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
