// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package location

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	bridgeTypes "github.com/sacha-l/sygma-substrate-pallets/types"
)

var (
	ErrTrailingBytes       = errors.New("trailing bytes after location")
	ErrUnsupportedLocation = errors.New("unsupported location layout")
)

// MultiLocation is the XCM v3 location used for deposit destinations and
// proposal recipients
type MultiLocation struct {
	Parents  types.U8
	Interior Junctions
}

func (m *MultiLocation) Decode(decoder scale.Decoder) error {
	if err := decoder.Decode(&m.Parents); err != nil {
		return err
	}

	return decoder.Decode(&m.Interior)
}

func (m MultiLocation) Encode(encoder scale.Encoder) error {
	if err := encoder.Encode(m.Parents); err != nil {
		return err
	}

	return encoder.Encode(m.Interior)
}

// Bytes returns SCALE encoded location
func (m MultiLocation) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	encoder := scale.NewEncoder(buf)
	if err := m.Encode(*encoder); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeMultiLocation decodes a SCALE encoded location and rejects trailing data
func DecodeMultiLocation(b []byte) (*MultiLocation, error) {
	decoder := scale.NewDecoder(bytes.NewReader(b))
	m := &MultiLocation{}
	if err := m.Decode(*decoder); err != nil {
		return nil, err
	}
	if _, err := decoder.ReadOneByte(); err == nil {
		return nil, ErrTrailingBytes
	}
	return m, nil
}

// NewDestination builds (0, X2(GeneralKey(recipient), GeneralKey([domainID])))
func NewDestination(recipient []byte, domainID bridgeTypes.DomainID) (MultiLocation, error) {
	if len(recipient) == 0 || len(recipient) > 32 {
		return MultiLocation{}, fmt.Errorf("recipient length %d out of range", len(recipient))
	}

	recipientKey := Junction{IsGeneralKey: true, GeneralKeyLength: types.U8(len(recipient))}
	copy(recipientKey.GeneralKey[:], recipient)
	domainKey := Junction{IsGeneralKey: true, GeneralKeyLength: 1}
	domainKey.GeneralKey[0] = domainID

	return MultiLocation{
		Parents: 0,
		Interior: Junctions{
			IsX2: true,
			X2:   [2]Junction{recipientKey, domainKey},
		},
	}, nil
}

// NewAccountLocation builds (0, X1(AccountId32{network: None, id: account}))
func NewAccountLocation(account bridgeTypes.AccountID) MultiLocation {
	return MultiLocation{
		Parents: 0,
		Interior: Junctions{
			IsX1: true,
			X1: Junction{
				IsAccountID32: true,
				AccountID:     account,
			},
		},
	}
}

// ExtractDestination decodes a deposit destination into the target domain and
// the recipient on that domain. The domain is carried either as a one byte
// general key or as a general index.
func ExtractDestination(b []byte) (bridgeTypes.DomainID, []byte, error) {
	m, err := DecodeMultiLocation(b)
	if err != nil {
		return 0, nil, err
	}
	if m.Parents != 0 || !m.Interior.IsX2 {
		return 0, nil, ErrUnsupportedLocation
	}

	recipientKey := m.Interior.X2[0]
	if !recipientKey.IsGeneralKey || recipientKey.GeneralKeyLength == 0 {
		return 0, nil, ErrUnsupportedLocation
	}
	recipient := make([]byte, recipientKey.GeneralKeyLength)
	copy(recipient, recipientKey.GeneralKey[:recipientKey.GeneralKeyLength])

	domain := m.Interior.X2[1]
	switch {
	case domain.IsGeneralKey && domain.GeneralKeyLength == 1:
		return domain.GeneralKey[0], recipient, nil
	case domain.IsGeneralIndex:
		index := (*big.Int)(&domain.GeneralIndex)
		if !index.IsUint64() || index.Uint64() > 255 {
			return 0, nil, fmt.Errorf("domain index %s out of range", index.String())
		}
		return uint8(index.Uint64()), recipient, nil
	}

	return 0, nil, ErrUnsupportedLocation
}

// ExtractAccount decodes a recipient location pointing at a local account
func ExtractAccount(b []byte) (bridgeTypes.AccountID, error) {
	m, err := DecodeMultiLocation(b)
	if err != nil {
		return bridgeTypes.AccountID{}, err
	}
	if m.Parents != 0 || !m.Interior.IsX1 || !m.Interior.X1.IsAccountID32 {
		return bridgeTypes.AccountID{}, ErrUnsupportedLocation
	}
	return m.Interior.X1.AccountID, nil
}
