package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sehrimilan/pkg/scope"
)

var (
	tokenSecret string
	tokenUser   string
	tokenEmail  string
	tokenName   string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development session token",
	Long:  "Sign an HS256 session token the API accepts. The secret defaults to $AUTH_JWT_SECRET.",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func runToken(cmd *cobra.Command, args []string) error {
	secret := tokenSecret
	if secret == "" {
		secret = os.Getenv("AUTH_JWT_SECRET")
	}
	jm, err := scope.New(secret)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}
	token, err := jm.CreateToken(scope.Payload{
		UserID:      tokenUser,
		Email:       tokenEmail,
		DisplayName: tokenName,
	}, tokenTTL)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "signing secret")
	tokenCmd.Flags().StringVar(&tokenUser, "user", "dev-user", "user id (sub claim)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}
