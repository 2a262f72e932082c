// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"math/big"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

const (
	BasicFee      = "basic"
	PercentageFee = "percentage"
)

type FeeConfig struct {
	Type       string
	DomainID   types.DomainID
	Asset      types.AssetID
	Fee        *big.Int
	FeeRate    uint32
	LowerBound *big.Int
	UpperBound *big.Int
}

type RawFeeConfig struct {
	Type       string `mapstructure:"type"`
	DomainID   uint8  `mapstructure:"domainId"`
	Asset      string `mapstructure:"asset"`
	Fee        string `mapstructure:"fee" default:"0"`
	FeeRate    uint32 `mapstructure:"feeRate"`
	LowerBound string `mapstructure:"lowerBound" default:"0"`
	UpperBound string `mapstructure:"upperBound" default:"0"`
}

func (c *RawFeeConfig) Validate() error {
	if c.Asset == "" {
		return fmt.Errorf("required field fee.asset empty")
	}
	switch c.Type {
	case BasicFee:
	case PercentageFee:
		if c.FeeRate >= 10000 {
			return fmt.Errorf("fee rate %d bps must be below 10000", c.FeeRate)
		}
	default:
		return fmt.Errorf("unknown fee handler type %q", c.Type)
	}
	return nil
}

// NewFeeConfig decodes and validates an instance of FeeConfig from a raw fee
// handler entry
func NewFeeConfig(feeConfig map[string]interface{}) (*FeeConfig, error) {
	var c RawFeeConfig
	err := mapstructure.WeakDecode(feeConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	config := &FeeConfig{
		Type:     c.Type,
		DomainID: c.DomainID,
		Asset:    types.AssetID(c.Asset),
		FeeRate:  c.FeeRate,
	}
	if config.Fee, err = parseAmount("fee", c.Fee); err != nil {
		return nil, err
	}
	if config.LowerBound, err = parseAmount("lowerBound", c.LowerBound); err != nil {
		return nil, err
	}
	if config.UpperBound, err = parseAmount("upperBound", c.UpperBound); err != nil {
		return nil, err
	}
	if config.UpperBound.Sign() > 0 && config.UpperBound.Cmp(config.LowerBound) < 0 {
		return nil, fmt.Errorf("fee upper bound %s below lower bound %s", config.UpperBound, config.LowerBound)
	}

	return config, nil
}

func parseAmount(field string, value string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(value, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("invalid fee.%s: %s", field, value)
	}
	return amount, nil
}
