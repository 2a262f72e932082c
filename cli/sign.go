// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"

	"github.com/sacha-l/sygma-substrate-pallets/mpc"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var (
	signCMD = &cobra.Command{
		Use:   "sign",
		Short: "Sign a proposal batch with a committee private key",
		Long:  "Sign a JSON array of proposals with a committee private key. Intended for local testing without an MPC committee.",
		RunE:  sign,
	}
)

var (
	signPrivateKey    string
	proposalsPath     string
	chainID           int64
	verifyingContract string
	bridgeVersion     string
)

func init() {
	signCMD.PersistentFlags().StringVar(&signPrivateKey, "private-key", "", "hex encoded secp256k1 private key")
	_ = signCMD.MarkFlagRequired("private-key")
	signCMD.PersistentFlags().StringVar(&proposalsPath, "proposals", "", "path to JSON file with proposals")
	_ = signCMD.MarkFlagRequired("proposals")
	signCMD.PersistentFlags().Int64Var(&chainID, "chain-id", 0, "chain id of the signing domain")
	_ = signCMD.MarkFlagRequired("chain-id")
	signCMD.PersistentFlags().StringVar(&verifyingContract, "verifying-contract", "", "verifying contract of the signing domain")
	_ = signCMD.MarkFlagRequired("verifying-contract")
	signCMD.PersistentFlags().StringVar(&bridgeVersion, "bridge-version", "3.1.0", "bridge version of the signing domain")
}

func sign(cmd *cobra.Command, args []string) error {
	priv, err := crypto.HexToECDSA(trimHex(signPrivateKey))
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(proposalsPath)
	if err != nil {
		return err
	}
	var proposals []*types.Proposal
	if err := json.Unmarshal(raw, &proposals); err != nil {
		return fmt.Errorf("invalid proposals file: %w", err)
	}

	signer := mpc.NewSigner(mpc.Domain{
		ChainID:           chainID,
		VerifyingContract: verifyingContract,
		BridgeVersion:     bridgeVersion,
	}, priv)
	signature, err := signer.Sign(proposals)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(signature))
	return nil
}
