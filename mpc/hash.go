// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package mpc

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

// Domain pins proposal signatures to a single bridge deployment
type Domain struct {
	ChainID           int64
	VerifyingContract string
	BridgeVersion     string
}

// ProposalsHash returns the EIP-712 digest the committee signs over a batch of proposals
func ProposalsHash(proposals []*types.Proposal, chainID int64, verifContract string, bridgeVersion string) ([]byte, error) {
	formattedProps := make([]interface{}, len(proposals))
	for i, prop := range proposals {
		formattedProps[i] = map[string]interface{}{
			"originDomainID": math.NewHexOrDecimal256(int64(prop.OriginDomainID)),
			"depositNonce":   (*math.HexOrDecimal256)(new(big.Int).SetUint64(prop.DepositNonce)),
			"resourceID":     hexutil.Encode(prop.ResourceID[:]),
			"data":           []byte(prop.Data),
		}
	}
	message := apitypes.TypedDataMessage{
		"proposals": formattedProps,
	}
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Proposal": []apitypes.Type{
				{Name: "originDomainID", Type: "uint8"},
				{Name: "depositNonce", Type: "uint64"},
				{Name: "resourceID", Type: "bytes32"},
				{Name: "data", Type: "bytes"},
			},
			"Proposals": []apitypes.Type{
				{Name: "proposals", Type: "Proposal[]"},
			},
		},
		PrimaryType: "Proposals",
		Domain: apitypes.TypedDataDomain{
			Name:              "Bridge",
			ChainId:           math.NewHexOrDecimal256(chainID),
			Version:           bridgeVersion,
			VerifyingContract: verifContract,
		},
		Message: message,
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return []byte{}, err
	}

	typedDataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return []byte{}, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(typedDataHash)))
	return crypto.Keccak256(rawData), nil
}

func (d Domain) ProposalsHash(proposals []*types.Proposal) ([]byte, error) {
	return ProposalsHash(proposals, d.ChainID, d.VerifyingContract, d.BridgeVersion)
}
