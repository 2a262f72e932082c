// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package location

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

type Junction struct {
	IsParachain bool
	ParachainID types.UCompact

	IsAccountID32        bool
	AccountID32NetworkID OptionNetworkID
	AccountID            [32]byte

	IsAccountIndex64        bool
	AccountIndex64NetworkID OptionNetworkID
	AccountIndex            types.UCompact

	IsAccountKey20        bool
	AccountKey20NetworkID OptionNetworkID
	AccountKey            [20]byte

	IsPalletInstance bool
	PalletIndex      types.U8

	IsGeneralIndex bool
	GeneralIndex   types.UCompact

	IsGeneralKey     bool
	GeneralKeyLength types.U8
	GeneralKey       [32]byte

	IsOnlyChild bool
}

func (j *Junction) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch b {
	case 0:
		j.IsParachain = true
		return decoder.Decode(&j.ParachainID)
	case 1:
		j.IsAccountID32 = true
		if err := decoder.Decode(&j.AccountID32NetworkID); err != nil {
			return err
		}
		return decoder.Read(j.AccountID[:])
	case 2:
		j.IsAccountIndex64 = true
		if err := decoder.Decode(&j.AccountIndex64NetworkID); err != nil {
			return err
		}
		return decoder.Decode(&j.AccountIndex)
	case 3:
		j.IsAccountKey20 = true
		if err := decoder.Decode(&j.AccountKey20NetworkID); err != nil {
			return err
		}
		return decoder.Read(j.AccountKey[:])
	case 4:
		j.IsPalletInstance = true
		return decoder.Decode(&j.PalletIndex)
	case 5:
		j.IsGeneralIndex = true
		return decoder.Decode(&j.GeneralIndex)
	case 6:
		j.IsGeneralKey = true
		if err := decoder.Decode(&j.GeneralKeyLength); err != nil {
			return err
		}
		if j.GeneralKeyLength > 32 {
			return fmt.Errorf("general key length %d exceeds 32", j.GeneralKeyLength)
		}
		return decoder.Read(j.GeneralKey[:])
	case 7:
		j.IsOnlyChild = true
		return nil
	}

	return fmt.Errorf("unsupported junction variant %d", b)
}

func (j Junction) Encode(encoder scale.Encoder) error {
	switch {
	case j.IsParachain:
		if err := encoder.PushByte(0); err != nil {
			return err
		}
		return encoder.Encode(j.ParachainID)
	case j.IsAccountID32:
		if err := encoder.PushByte(1); err != nil {
			return err
		}
		if err := encoder.Encode(j.AccountID32NetworkID); err != nil {
			return err
		}
		return encoder.Write(j.AccountID[:])
	case j.IsAccountIndex64:
		if err := encoder.PushByte(2); err != nil {
			return err
		}
		if err := encoder.Encode(j.AccountIndex64NetworkID); err != nil {
			return err
		}
		return encoder.Encode(j.AccountIndex)
	case j.IsAccountKey20:
		if err := encoder.PushByte(3); err != nil {
			return err
		}
		if err := encoder.Encode(j.AccountKey20NetworkID); err != nil {
			return err
		}
		return encoder.Write(j.AccountKey[:])
	case j.IsPalletInstance:
		if err := encoder.PushByte(4); err != nil {
			return err
		}
		return encoder.Encode(j.PalletIndex)
	case j.IsGeneralIndex:
		if err := encoder.PushByte(5); err != nil {
			return err
		}
		return encoder.Encode(j.GeneralIndex)
	case j.IsGeneralKey:
		if err := encoder.PushByte(6); err != nil {
			return err
		}
		if err := encoder.Encode(j.GeneralKeyLength); err != nil {
			return err
		}
		return encoder.Write(j.GeneralKey[:])
	case j.IsOnlyChild:
		return encoder.PushByte(7)
	}

	return fmt.Errorf("junction has no variant set")
}

type Junctions struct {
	IsHere bool

	IsX1 bool
	X1   Junction

	IsX2 bool
	X2   [2]Junction

	IsX3 bool
	X3   [3]Junction
}

func (j *Junctions) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch b {
	case 0:
		j.IsHere = true
		return nil
	case 1:
		j.IsX1 = true
		return decoder.Decode(&j.X1)
	case 2:
		j.IsX2 = true
		return decodeJunctions(decoder, j.X2[:])
	case 3:
		j.IsX3 = true
		return decodeJunctions(decoder, j.X3[:])
	}
	return fmt.Errorf("unsupported junctions variant %d", b)
}

func (j Junctions) Encode(encoder scale.Encoder) error {
	switch {
	case j.IsHere:
		return encoder.PushByte(0)
	case j.IsX1:
		if err := encoder.PushByte(1); err != nil {
			return err
		}
		return encoder.Encode(j.X1)
	case j.IsX2:
		if err := encoder.PushByte(2); err != nil {
			return err
		}
		return encodeJunctions(encoder, j.X2[:])
	case j.IsX3:
		if err := encoder.PushByte(3); err != nil {
			return err
		}
		return encodeJunctions(encoder, j.X3[:])
	}

	return fmt.Errorf("junctions have no variant set")
}

func decodeJunctions(decoder scale.Decoder, junctions []Junction) error {
	for i := range junctions {
		if err := decoder.Decode(&junctions[i]); err != nil {
			return err
		}
	}
	return nil
}

func encodeJunctions(encoder scale.Encoder, junctions []Junction) error {
	for _, j := range junctions {
		if err := encoder.Encode(j); err != nil {
			return err
		}
	}
	return nil
}
