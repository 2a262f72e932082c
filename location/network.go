// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package location

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

type NetworkID struct {
	IsByGenesis bool
	ByGenesis   [32]byte

	IsByFork          bool
	ByForkBlockNumber types.U64
	ByForkBlockHash   [32]byte

	IsPolkadot bool
	IsKusama   bool
	IsWestend  bool
	IsRococo   bool
	IsWococo   bool

	IsEthereum bool
	Ethereum   types.UCompact

	IsBitcoinCore bool
	IsBitcoinCash bool
}

func (n *NetworkID) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch b {
	case 0:
		n.IsByGenesis = true
		return decoder.Read(n.ByGenesis[:])
	case 1:
		n.IsByFork = true
		if err := decoder.Decode(&n.ByForkBlockNumber); err != nil {
			return err
		}
		return decoder.Read(n.ByForkBlockHash[:])
	case 2:
		n.IsPolkadot = true
	case 3:
		n.IsKusama = true
	case 4:
		n.IsWestend = true
	case 5:
		n.IsRococo = true
	case 6:
		n.IsWococo = true
	case 7:
		n.IsEthereum = true
		return decoder.Decode(&n.Ethereum)
	case 8:
		n.IsBitcoinCore = true
	case 9:
		n.IsBitcoinCash = true
	default:
		return fmt.Errorf("unknown network id variant %d", b)
	}

	return nil
}

func (n NetworkID) Encode(encoder scale.Encoder) error {
	switch {
	case n.IsByGenesis:
		if err := encoder.PushByte(0); err != nil {
			return err
		}
		return encoder.Write(n.ByGenesis[:])
	case n.IsByFork:
		if err := encoder.PushByte(1); err != nil {
			return err
		}
		if err := encoder.Encode(n.ByForkBlockNumber); err != nil {
			return err
		}
		return encoder.Write(n.ByForkBlockHash[:])
	case n.IsPolkadot:
		return encoder.PushByte(2)
	case n.IsKusama:
		return encoder.PushByte(3)
	case n.IsWestend:
		return encoder.PushByte(4)
	case n.IsRococo:
		return encoder.PushByte(5)
	case n.IsWococo:
		return encoder.PushByte(6)
	case n.IsEthereum:
		if err := encoder.PushByte(7); err != nil {
			return err
		}
		return encoder.Encode(n.Ethereum)
	case n.IsBitcoinCore:
		return encoder.PushByte(8)
	case n.IsBitcoinCash:
		return encoder.PushByte(9)
	}

	return fmt.Errorf("network id has no variant set")
}

// OptionNetworkID is the optional network carried by account junctions
type OptionNetworkID struct {
	HasValue bool
	Value    NetworkID
}

func (o *OptionNetworkID) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}

	switch b {
	case 0:
		o.HasValue = false
		return nil
	case 1:
		o.HasValue = true
		return decoder.Decode(&o.Value)
	}
	return fmt.Errorf("invalid option prefix %d", b)
}

func (o OptionNetworkID) Encode(encoder scale.Encoder) error {
	if !o.HasValue {
		return encoder.PushByte(0)
	}
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return encoder.Encode(o.Value)
}
