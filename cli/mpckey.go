// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var (
	mpcKeyCMD = &cobra.Command{
		Use:   "mpc-key",
		Short: "Calculate bridge MPC key from committee private key",
		Long:  "Calculate bridge MPC key from committee private key",
		RunE:  mpcKey,
	}
)

var (
	mpcPrivateKey string
)

func init() {
	mpcKeyCMD.PersistentFlags().StringVar(&mpcPrivateKey, "private-key", "", "hex encoded secp256k1 private key")
	_ = mpcKeyCMD.MarkFlagRequired("private-key")
}

func mpcKey(cmd *cobra.Command, args []string) error {
	priv, err := crypto.HexToECDSA(trimHex(mpcPrivateKey))
	if err != nil {
		return err
	}

	address := crypto.PubkeyToAddress(priv.PublicKey)
	fmt.Fprintf(cmd.OutOrStdout(), `
Committee address: %s
MPC key: %s
`,
		address.Hex(),
		types.NewMpcKey(address).Hex(),
	)
	return nil
}

func trimHex(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
