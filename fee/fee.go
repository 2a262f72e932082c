// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package fee

import (
	"errors"
	"math/big"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

const bpsDenominator = 10000

var ErrInvalidAmount = errors.New("amount must be non-negative")

// BasicFeeHandler charges the same fixed fee for every transfer
type BasicFeeHandler struct {
	fee *big.Int
}

func NewBasicFeeHandler(fee *big.Int) *BasicFeeHandler {
	return &BasicFeeHandler{fee: new(big.Int).Set(fee)}
}

func (h *BasicFeeHandler) Fee(asset types.AssetID, domain types.DomainID, amount *big.Int) (*big.Int, error) {
	if amount.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	return new(big.Int).Set(h.fee), nil
}

// PercentageFeeHandler charges feeRate basis points of the amount, clamped
// to [lowerBound, upperBound]. A zero upper bound disables the cap.
type PercentageFeeHandler struct {
	feeRate    uint32
	lowerBound *big.Int
	upperBound *big.Int
}

func NewPercentageFeeHandler(feeRate uint32, lowerBound, upperBound *big.Int) *PercentageFeeHandler {
	return &PercentageFeeHandler{
		feeRate:    feeRate,
		lowerBound: new(big.Int).Set(lowerBound),
		upperBound: new(big.Int).Set(upperBound),
	}
}

func (h *PercentageFeeHandler) Fee(asset types.AssetID, domain types.DomainID, amount *big.Int) (*big.Int, error) {
	if amount.Sign() < 0 {
		return nil, ErrInvalidAmount
	}

	fee := new(big.Int).Mul(amount, big.NewInt(int64(h.feeRate)))
	fee.Div(fee, big.NewInt(bpsDenominator))
	if fee.Cmp(h.lowerBound) < 0 {
		return new(big.Int).Set(h.lowerBound), nil
	}
	if h.upperBound.Sign() > 0 && fee.Cmp(h.upperBound) > 0 {
		return new(big.Int).Set(h.upperBound), nil
	}
	return fee, nil
}
