// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/spf13/cobra"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

// UtilsCLI groups account helper commands
var UtilsCLI = &cobra.Command{
	Use:   "utils",
	Short: "account and key helper commands",
}

var (
	derivateSS58AccountFromPKCMD = &cobra.Command{
		Use:   "derivateSS58",
		Short: "will print SS58 formatted address (Polkadot) and bridge account id for given PrivateKey in hex",
		Long:  "Will print SS58 formatted address (Polkadot) and the 32 byte account id used for reserve and admin accounts for given PrivateKey in hex",
		RunE:  derivateSS58,
	}
)

var (
	privateKey string
	networkID  uint8
)

func init() {
	UtilsCLI.AddCommand(derivateSS58AccountFromPKCMD)

	derivateSS58AccountFromPKCMD.PersistentFlags().StringVar(&privateKey, "privateKey", "", "hex encoded private key or secret URI")
	_ = derivateSS58AccountFromPKCMD.MarkFlagRequired("privateKey")
	derivateSS58AccountFromPKCMD.PersistentFlags().Uint8Var(&networkID, "networkID", 0, "network id for a checksum. Registry https://github.com/paritytech/ss58-registry/blob/main/ss58-registry.json")
	_ = derivateSS58AccountFromPKCMD.MarkFlagRequired("networkID")
}

func derivateSS58(cmd *cobra.Command, args []string) error {
	account, err := signature.KeyringPairFromSecret(privateKey, uint16(networkID))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), account.Address)
	fmt.Fprintln(cmd.OutOrStdout(), types.AccountID(types.SliceTo32Bytes(account.PublicKey)).Hex())
	return nil
}
