// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type DomainID = uint8
type DepositNonce = uint64

// ResourceID identifies a fungible asset class across all bridged domains
type ResourceID [32]byte

func (r ResourceID) Hex() string {
	return hexutil.Encode(r[:])
}

func (r ResourceID) String() string {
	return r.Hex()
}

func (r ResourceID) MarshalText() ([]byte, error) {
	return []byte(r.Hex()), nil
}

func (r *ResourceID) UnmarshalText(text []byte) error {
	b, err := HexTo32Bytes(string(text))
	if err != nil {
		return err
	}
	*r = b
	return nil
}

// MpcKey holds the committee address left-padded to 32 bytes
type MpcKey [32]byte

// Address returns the committee address stored in the last 20 bytes of the key
func (k MpcKey) Address() common.Address {
	return common.BytesToAddress(k[:])
}

func (k MpcKey) Hex() string {
	return hexutil.Encode(k[:])
}

func (k MpcKey) MarshalText() ([]byte, error) {
	return []byte(k.Hex()), nil
}

func (k *MpcKey) UnmarshalText(text []byte) error {
	b, err := HexTo32Bytes(string(text))
	if err != nil {
		return err
	}
	*k = b
	return nil
}

// NewMpcKey converts a committee address into its 32 byte key form
func NewMpcKey(address common.Address) MpcKey {
	var key MpcKey
	copy(key[12:], address.Bytes())
	return key
}

// AccountID is an account on the local ledger
type AccountID [32]byte

func (a AccountID) Hex() string {
	return hexutil.Encode(a[:])
}

func (a AccountID) String() string {
	return a.Hex()
}

func (a AccountID) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *AccountID) UnmarshalText(text []byte) error {
	b, err := HexTo32Bytes(string(text))
	if err != nil {
		return err
	}
	*a = b
	return nil
}

// AssetID is the local identifier of a fungible asset
type AssetID string

// Hash is an opaque 32 byte reference, usually a transaction hash
type Hash [32]byte

func (h Hash) Hex() string {
	return hexutil.Encode(h[:])
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	b, err := HexTo32Bytes(string(text))
	if err != nil {
		return err
	}
	*h = b
	return nil
}

type Proposal struct {
	OriginDomainID DomainID      `json:"originDomainId"`
	DepositNonce   DepositNonce  `json:"depositNonce"`
	ResourceID     ResourceID    `json:"resourceId"`
	Data           hexutil.Bytes `json:"data"`
}

func (p *Proposal) String() string {
	return fmt.Sprintf("%d-%d", p.OriginDomainID, p.DepositNonce)
}

// HexTo32Bytes decodes a 0x prefixed hex string that must be exactly 32 bytes long
func HexTo32Bytes(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hexutil.Decode(s)
	if err != nil {
		return out, err
	}
	if len(b) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func SliceTo32Bytes(in []byte) [32]byte {
	var res [32]byte
	copy(res[:], in)
	return res
}
