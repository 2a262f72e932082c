// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/location"
	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type ProposalResult struct {
	OriginDomainID types.DomainID     `json:"originDomainId"`
	DepositNonce   types.DepositNonce `json:"depositNonce"`
	Err            error              `json:"-"`
}

func (r ProposalResult) Executed() bool {
	return r.Err == nil
}

type ExecutionReport struct {
	Results []ProposalResult
}

// Failed returns the number of proposals that were not executed
func (r *ExecutionReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// ExecuteProposals verifies the committee signature over the batch and
// credits every proposal in order. With the partial batch policy a failed
// proposal is rolled back alone and reported in the returned report; with the
// atomic policy the first failure rolls back the whole batch and is returned.
func (b *Bridge) ExecuteProposals(proposals []*types.Proposal, signature []byte) (*ExecutionReport, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(proposals) == 0 {
		return nil, ErrEmptyProposalBatch
	}
	for i, prop := range proposals {
		if prop == nil {
			return nil, fmt.Errorf("%w: proposal %d is empty", ErrMalformedProposal, i)
		}
	}

	tx := store.NewTransaction(b.db)
	defer tx.Discard()

	key, err := NewState(tx).MpcKey()
	if err != nil {
		return nil, err
	}
	if !b.verifier.Verify(key, proposals, signature) {
		return nil, ErrBadMpcSignature
	}

	report := &ExecutionReport{Results: make([]ProposalResult, 0, len(proposals))}
	for _, prop := range proposals {
		err := b.executeProposal(tx, prop)
		if err != nil {
			b.log.Warn().Err(err).Str("proposal", prop.String()).Msg("Proposal execution failed")
			b.metrics.TrackProposalFailure(prop.OriginDomainID, Kind(err))
			if b.config.BatchPolicy == AtomicBatch {
				return nil, fmt.Errorf("proposal %s: %w", prop, err)
			}
			if err := b.recordFailure(tx, prop, err); err != nil {
				return nil, err
			}
		}

		report.Results = append(report.Results, ProposalResult{
			OriginDomainID: prop.OriginDomainID,
			DepositNonce:   prop.DepositNonce,
			Err:            err,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	for _, res := range report.Results {
		if res.Executed() {
			b.metrics.TrackProposalExecution(res.OriginDomainID)
		}
	}
	return report, nil
}

func (b *Bridge) executeProposal(parent *store.Transaction, prop *types.Proposal) error {
	tx := store.NewTransaction(parent)
	defer tx.Discard()
	state := NewState(tx)

	active, err := state.IsActive(prop.OriginDomainID)
	if err != nil {
		return err
	}
	if !active {
		return fmt.Errorf("%w: domain %d", ErrBridgePaused, prop.OriginDomainID)
	}

	used, err := state.IsNonceUsed(prop.OriginDomainID, prop.DepositNonce)
	if err != nil {
		return err
	}
	if used {
		return ErrProposalAlreadyComplete
	}

	asset, ok := b.registry.ReverseLookup(prop.ResourceID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrAssetNotBound, prop.ResourceID.Hex())
	}

	amount, recipient, err := DecodeTransferData(prop.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedProposal, err)
	}
	account, err := location.ExtractAccount(recipient)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedProposal, err)
	}

	if err := b.transactor.Deposit(tx, account, asset, amount); err != nil {
		return fmt.Errorf("%w: %w", ErrTransactorFailed, err)
	}

	if err := state.MarkNonceUsed(prop.OriginDomainID, prop.DepositNonce); err != nil {
		return err
	}
	if err := store.NewPropStore(tx).StorePropStatus(prop.OriginDomainID, prop.DepositNonce, store.ExecutedProp); err != nil {
		return err
	}
	_, err = events.Append(tx, events.NewProposalExecutionEvent(events.ProposalExecution{
		OriginDomainID: prop.OriginDomainID,
		DepositNonce:   prop.DepositNonce,
		DataHash:       types.Hash(crypto.Keccak256Hash(prop.Data)),
	}))
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	b.log.Info().Str("proposal", prop.String()).Msgf("Credited %s %s to %s", amount, asset, account.Hex())
	return nil
}

// recordFailure keeps the outcome of a rolled back proposal. Replays of an
// executed proposal leave its status untouched.
func (b *Bridge) recordFailure(tx *store.Transaction, prop *types.Proposal, cause error) error {
	if errors.Is(cause, ErrProposalAlreadyComplete) {
		return nil
	}

	if err := store.NewPropStore(tx).StorePropStatus(prop.OriginDomainID, prop.DepositNonce, store.FailedProp); err != nil {
		return err
	}
	_, err := events.Append(tx, events.NewFailedHandlerExecutionEvent(events.FailedHandlerExecution{
		Error:          cause.Error(),
		OriginDomainID: prop.OriginDomainID,
		DepositNonce:   prop.DepositNonce,
	}))
	return err
}

// Retry asks relayers to resubmit the deposit identified by reference. It
// emits a Retry event and changes nothing else.
func (b *Bridge) Retry(caller types.AccountID, reference types.Hash) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := store.NewTransaction(b.db)
	defer tx.Discard()
	if _, err := events.Append(tx, events.NewRetryEvent(events.Retry{
		Reference: reference,
		Sender:    caller,
	})); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	b.log.Info().Str("reference", reference.Hex()).Msg("Retry requested")
	return nil
}
