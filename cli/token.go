// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var (
	tokenCMD = &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token",
		Long:  "Issue an API bearer token for an account. Root tokens may call every admin endpoint.",
		RunE:  token,
	}
)

var (
	jwtSecret string
	account   string
	role      string
	ttl       time.Duration
)

func init() {
	tokenCMD.PersistentFlags().StringVar(&jwtSecret, "secret", "", "API JWT secret, prompted for when omitted")
	tokenCMD.PersistentFlags().StringVar(&account, "account", "", "0x prefixed 32 byte account id")
	tokenCMD.PersistentFlags().StringVar(&role, "role", string(auth.RoleSigned), "token role, signed or root")
	tokenCMD.PersistentFlags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
}

func token(cmd *cobra.Command, args []string) error {
	var origin auth.Origin
	switch auth.Role(role) {
	case auth.RoleRoot:
		origin = auth.Root()
	case auth.RoleSigned:
		caller, err := types.HexTo32Bytes(account)
		if err != nil {
			return fmt.Errorf("invalid account: %w", err)
		}
		origin = auth.Signed(caller)
	default:
		return fmt.Errorf("unknown role %s", role)
	}

	secret := jwtSecret
	if secret == "" {
		var err error
		secret, err = readSecret(cmd)
		if err != nil {
			return err
		}
	}

	t, err := auth.NewTokenIssuer(secret, ttl).Issue(origin)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), t)
	return nil
}

func readSecret(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("--secret is required when stdin is not a terminal")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "JWT secret: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	if len(secret) == 0 {
		return "", fmt.Errorf("empty secret")
	}
	return string(secret), nil
}
