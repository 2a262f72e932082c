// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transactor

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceOverflow     = errors.New("balance overflow")
	ErrInvalidAmount       = errors.New("amount must fit into uint256")
)

// BalanceTransactor keeps fungible balances in the bridge key/value store.
// Every call writes through the scope it is given so balance changes commit
// or roll back together with the bridge state.
type BalanceTransactor struct{}

func NewBalanceTransactor() *BalanceTransactor {
	return &BalanceTransactor{}
}

func balanceKey(account types.AccountID, asset types.AssetID) []byte {
	return []byte(fmt.Sprintf("balance:%s:%s", asset, account.Hex()))
}

func (t *BalanceTransactor) Balance(db store.KeyValueReader, account types.AccountID, asset types.AssetID) (*big.Int, error) {
	balance, err := t.balance(db, account, asset)
	if err != nil {
		return nil, err
	}
	return balance.ToBig(), nil
}

func (t *BalanceTransactor) Withdraw(scope store.KeyValueReaderWriter, account types.AccountID, asset types.AssetID, amount *big.Int) error {
	value, err := toUint256(amount)
	if err != nil {
		return err
	}
	balance, err := t.balance(scope, account, asset)
	if err != nil {
		return err
	}
	if balance.Lt(value) {
		return fmt.Errorf("%w: account %s has %s %s", ErrInsufficientBalance, account.Hex(), balance.Dec(), asset)
	}

	return t.setBalance(scope, account, asset, new(uint256.Int).Sub(balance, value))
}

func (t *BalanceTransactor) Deposit(scope store.KeyValueReaderWriter, account types.AccountID, asset types.AssetID, amount *big.Int) error {
	value, err := toUint256(amount)
	if err != nil {
		return err
	}
	balance, err := t.balance(scope, account, asset)
	if err != nil {
		return err
	}
	sum, overflow := new(uint256.Int).AddOverflow(balance, value)
	if overflow {
		return ErrBalanceOverflow
	}

	return t.setBalance(scope, account, asset, sum)
}

func (t *BalanceTransactor) balance(db store.KeyValueReader, account types.AccountID, asset types.AssetID) (*uint256.Int, error) {
	raw, err := db.GetByKey(balanceKey(account, asset))
	if errors.Is(err, store.ErrNotFound) {
		return new(uint256.Int), nil
	}
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(raw), nil
}

func (t *BalanceTransactor) setBalance(scope store.KeyValueWriter, account types.AccountID, asset types.AssetID, balance *uint256.Int) error {
	b := balance.Bytes32()
	return scope.SetByKey(balanceKey(account, asset), b[:])
}

func toUint256(amount *big.Int) (*uint256.Int, error) {
	if amount == nil {
		return nil, ErrInvalidAmount
	}
	value, overflow := uint256.FromBig(amount)
	if overflow || amount.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	return value, nil
}
