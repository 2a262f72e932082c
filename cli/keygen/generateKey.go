// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package keygen

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

// KeygenCLI groups the committee key commands
var KeygenCLI = &cobra.Command{
	Use:   "keygen",
	Short: "Committee key generation",
}

var (
	generateKeyCMD = &cobra.Command{
		Use:   "gen-key",
		Short: "Generate committee key for signing proposals",
		Long:  "Generate committee key for signing proposals",
		RunE:  generateKey,
	}
)

func init() {
	KeygenCLI.AddCommand(generateKeyCMD)
}

func generateKey(cmd *cobra.Command, args []string) error {
	priv, err := crypto.GenerateKey()
	if err != nil {
		return err
	}

	address := crypto.PubkeyToAddress(priv.PublicKey)
	fmt.Fprintf(cmd.OutOrStdout(), "Private key: %s\n", hexutil.Encode(crypto.FromECDSA(priv)))
	fmt.Fprintf(cmd.OutOrStdout(), "Committee address: %s\n", address.Hex())
	fmt.Fprintf(cmd.OutOrStdout(), "MPC key: %s\n", types.NewMpcKey(address).Hex())
	return nil
}
