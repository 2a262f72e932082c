// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

const wordLength = 32

// EncodeTransferData packs a fungible transfer as
// amount(32) | len(recipient)(32) | recipient
func EncodeTransferData(amount *big.Int, recipient []byte) []byte {
	data := make([]byte, 0, 2*wordLength+len(recipient))
	data = append(data, common.LeftPadBytes(amount.Bytes(), wordLength)...)
	recipientLen := big.NewInt(int64(len(recipient))).Bytes()
	data = append(data, common.LeftPadBytes(recipientLen, wordLength)...)
	data = append(data, recipient...)
	return data
}

// DecodeTransferData is the inverse of EncodeTransferData. Data with missing
// or trailing bytes is rejected.
func DecodeTransferData(data []byte) (*big.Int, []byte, error) {
	if len(data) < 2*wordLength {
		return nil, nil, errors.New("transfer data shorter than 64 bytes")
	}

	amount := new(big.Int).SetBytes(data[:wordLength])
	recipientLen := new(big.Int).SetBytes(data[wordLength : 2*wordLength])
	rest := uint64(len(data) - 2*wordLength)
	if !recipientLen.IsUint64() || recipientLen.Uint64() != rest {
		return nil, nil, fmt.Errorf("recipient length %s does not match %d remaining bytes", recipientLen, rest)
	}

	recipient := make([]byte, rest)
	copy(recipient, data[2*wordLength:])
	return amount, recipient, nil
}
