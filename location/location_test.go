// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package location_test

import (
	"encoding/hex"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/sacha-l/sygma-substrate-pallets/location"
	bridgeTypes "github.com/sacha-l/sygma-substrate-pallets/types"
	"github.com/stretchr/testify/suite"
)

var alice = bridgeTypes.AccountID{0xd4, 0x35, 0x93, 0xc7, 0x15, 0xfd, 0xd3, 0x1c, 0x61, 0x14, 0x1a, 0xbd, 0x4, 0xa9, 0x9f, 0xd6, 0x82, 0x2c, 0x85, 0x58, 0x85, 0x4c, 0xcd, 0xe3, 0x9a, 0x56, 0x84, 0xe7, 0xa5, 0x6d, 0xa2, 0x7d}

type LocationTestSuite struct {
	suite.Suite
}

func TestRunLocationTestSuite(t *testing.T) {
	suite.Run(t, new(LocationTestSuite))
}

func (s *LocationTestSuite) Test_ExtractAccount_RelayerEncodedRecipient() {
	recipient, _ := hex.DecodeString("00010100d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")

	account, err := location.ExtractAccount(recipient)

	s.Nil(err)
	s.Equal(alice, account)
}

func (s *LocationTestSuite) Test_ExtractAccount_TrailingBytes() {
	recipient, _ := hex.DecodeString("00010100d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27dff")

	_, err := location.ExtractAccount(recipient)

	s.ErrorIs(err, location.ErrTrailingBytes)
}

func (s *LocationTestSuite) Test_ExtractAccount_Truncated() {
	recipient, _ := hex.DecodeString("00010100d43593c7")

	_, err := location.ExtractAccount(recipient)

	s.NotNil(err)
}

func (s *LocationTestSuite) Test_ExtractAccount_WrongJunction() {
	loc, _ := location.NewDestination([]byte{1, 2, 3}, 1)
	b, err := loc.Bytes()
	s.Nil(err)

	_, err = location.ExtractAccount(b)

	s.ErrorIs(err, location.ErrUnsupportedLocation)
}

func (s *LocationTestSuite) Test_AccountLocationRoundTrip() {
	b, err := location.NewAccountLocation(alice).Bytes()
	s.Nil(err)
	s.Equal("00010100d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d", hex.EncodeToString(b))
}

func (s *LocationTestSuite) Test_ExtractDestination_GeneralKeyDomain() {
	destination := []byte{0, 2, 6, 20, 92, 31, 89, 97, 105, 107, 173, 46, 115, 247, 52, 23, 240, 126, 245, 92, 98, 162, 220, 91, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 6, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	domain, recipient, err := location.ExtractDestination(destination)

	s.Nil(err)
	s.Equal(uint8(1), domain)
	s.Equal([]byte{92, 31, 89, 97, 105, 107, 173, 46, 115, 247, 52, 23, 240, 126, 245, 92, 98, 162, 220, 91}, recipient)
}

func (s *LocationTestSuite) Test_ExtractDestination_GeneralIndexDomain() {
	recipientKey := location.Junction{IsGeneralKey: true, GeneralKeyLength: 2}
	recipientKey.GeneralKey[0] = 0xaa
	recipientKey.GeneralKey[1] = 0xbb
	loc := location.MultiLocation{
		Interior: location.Junctions{
			IsX2: true,
			X2: [2]location.Junction{
				recipientKey,
				{IsGeneralIndex: true, GeneralIndex: types.NewUCompactFromUInt(7)},
			},
		},
	}
	b, err := loc.Bytes()
	s.Nil(err)

	domain, recipient, err := location.ExtractDestination(b)

	s.Nil(err)
	s.Equal(uint8(7), domain)
	s.Equal([]byte{0xaa, 0xbb}, recipient)
}

func (s *LocationTestSuite) Test_ExtractDestination_DomainIndexOutOfRange() {
	recipientKey := location.Junction{IsGeneralKey: true, GeneralKeyLength: 1}
	loc := location.MultiLocation{
		Interior: location.Junctions{
			IsX2: true,
			X2: [2]location.Junction{
				recipientKey,
				{IsGeneralIndex: true, GeneralIndex: types.NewUCompactFromUInt(256)},
			},
		},
	}
	b, _ := loc.Bytes()

	_, _, err := location.ExtractDestination(b)

	s.NotNil(err)
}

func (s *LocationTestSuite) Test_ExtractDestination_AccountLocation() {
	b, _ := location.NewAccountLocation(alice).Bytes()

	_, _, err := location.ExtractDestination(b)

	s.ErrorIs(err, location.ErrUnsupportedLocation)
}

func (s *LocationTestSuite) Test_ExtractDestination_Garbage() {
	_, _, err := location.ExtractDestination([]byte{0, 9})

	s.NotNil(err)
}

func (s *LocationTestSuite) Test_NewDestination_RejectsLongRecipient() {
	_, err := location.NewDestination(make([]byte, 33), 1)

	s.NotNil(err)
}
