// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"fmt"
	"math/big"

	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/location"
	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type DepositResult struct {
	DestDomainID types.DomainID     `json:"destDomainId"`
	ResourceID   types.ResourceID   `json:"resourceId"`
	DepositNonce types.DepositNonce `json:"depositNonce"`
	Fee          *big.Int           `json:"fee"`
	NetAmount    *big.Int           `json:"netAmount"`
}

// Deposit moves amount of asset from caller into the bridge reserves and
// emits a Deposit event for relayers to pick up. destination is a SCALE
// encoded location naming the recipient and the target domain.
func (b *Bridge) Deposit(caller types.AccountID, asset types.AssetID, amount *big.Int, destination []byte) (*DepositResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	resourceID, ok := b.registry.Lookup(asset)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotBound, asset)
	}

	destDomainID, recipient, err := location.ExtractDestination(destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}

	tx := store.NewTransaction(b.db)
	defer tx.Discard()
	state := NewState(tx)

	active, err := state.IsActive(destDomainID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("%w: domain %d", ErrBridgePaused, destDomainID)
	}

	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount %s", ErrInsufficientAmount, amount)
	}
	fee, err := b.feeHandler.Fee(asset, destDomainID, amount)
	if err != nil {
		return nil, err
	}
	if amount.Cmp(fee) <= 0 {
		return nil, fmt.Errorf("%w: amount %s fee %s", ErrInsufficientAmount, amount, fee)
	}
	netAmount := new(big.Int).Sub(amount, fee)

	if err := b.transactor.Withdraw(tx, caller, asset, amount); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransactorFailed, err)
	}
	if err := b.transactor.Deposit(tx, b.config.FeeReserveAccount, asset, fee); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransactorFailed, err)
	}
	if err := b.transactor.Deposit(tx, b.config.TransferReserveAccount, asset, netAmount); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransactorFailed, err)
	}

	nonce, err := state.NextDepositNonce(destDomainID)
	if err != nil {
		return nil, err
	}

	_, err = events.Append(tx, events.NewDepositEvent(events.Deposit{
		DestDomainID:    destDomainID,
		ResourceID:      resourceID,
		DepositNonce:    nonce,
		Sender:          caller,
		TransferType:    events.FungibleTransfer,
		DepositData:     EncodeTransferData(netAmount, recipient),
		HandlerResponse: []byte{},
		Recipient:       recipient,
		NetAmount:       netAmount,
	}))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	b.metrics.TrackDeposit(destDomainID)
	b.log.Info().Uint8("destination", destDomainID).Uint64("nonce", nonce).Str("resourceID", resourceID.Hex()).Msgf("Deposit of %s %s accepted", netAmount, asset)
	return &DepositResult{
		DestDomainID: destDomainID,
		ResourceID:   resourceID,
		DepositNonce: nonce,
		Fee:          fee,
		NetAmount:    netAmount,
	}, nil
}
