// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"math/big"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type BatchPolicy string

const (
	// PartialBatch rolls back a failed proposal alone and lets the rest of the batch execute
	PartialBatch BatchPolicy = "partial"
	// AtomicBatch rolls back the whole batch on the first failed proposal
	AtomicBatch BatchPolicy = "atomic"
)

type ResourceRegistry interface {
	Lookup(asset types.AssetID) (types.ResourceID, bool)
	ReverseLookup(resourceID types.ResourceID) (types.AssetID, bool)
}

type FeeHandler interface {
	Fee(asset types.AssetID, domain types.DomainID, amount *big.Int) (*big.Int, error)
}

// AssetTransactor moves value on the local ledger. Implementations must write
// through scope so their changes commit or roll back with the bridge call.
type AssetTransactor interface {
	Withdraw(scope store.KeyValueReaderWriter, account types.AccountID, asset types.AssetID, amount *big.Int) error
	Deposit(scope store.KeyValueReaderWriter, account types.AccountID, asset types.AssetID, amount *big.Int) error
}

type SignatureVerifier interface {
	Verify(key *types.MpcKey, proposals []*types.Proposal, signature []byte) bool
}

type Authorizer interface {
	EnsurePrivileged(origin auth.Origin) error
}

type Metrics interface {
	TrackDeposit(domain types.DomainID)
	TrackProposalExecution(origin types.DomainID)
	TrackProposalFailure(origin types.DomainID, kind ErrorKind)
}

type Config struct {
	FeeReserveAccount      types.AccountID
	TransferReserveAccount types.AccountID
	BatchPolicy            BatchPolicy
}

// Bridge processes outbound deposits and inbound proposal batches. Calls are
// serialized and each one runs inside its own store transaction.
type Bridge struct {
	mu sync.Mutex

	db         store.KeyValueReaderWriter
	registry   ResourceRegistry
	feeHandler FeeHandler
	transactor AssetTransactor
	verifier   SignatureVerifier
	authorizer Authorizer
	metrics    Metrics
	config     Config
	log        zerolog.Logger
}

func NewBridge(
	db store.KeyValueReaderWriter,
	registry ResourceRegistry,
	feeHandler FeeHandler,
	transactor AssetTransactor,
	verifier SignatureVerifier,
	authorizer Authorizer,
	metrics Metrics,
	config Config,
) *Bridge {
	if config.BatchPolicy == "" {
		config.BatchPolicy = PartialBatch
	}
	return &Bridge{
		db:         db,
		registry:   registry,
		feeHandler: feeHandler,
		transactor: transactor,
		verifier:   verifier,
		authorizer: authorizer,
		metrics:    metrics,
		config:     config,
		log:        log.With().Str("component", "bridge").Logger(),
	}
}

func (b *Bridge) MpcKey() (*types.MpcKey, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return NewState(b.db).MpcKey()
}

func (b *Bridge) PauseState(domain types.DomainID) (PauseState, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return NewState(b.db).PauseState(domain)
}

func (b *Bridge) DepositCount(domain types.DomainID) (types.DepositNonce, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return NewState(b.db).DepositCount(domain)
}

// IsProposalExecuted reports whether the deposit nonce from origin was consumed
func (b *Bridge) IsProposalExecuted(origin types.DomainID, nonce types.DepositNonce) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return NewState(b.db).IsNonceUsed(origin, nonce)
}

// ProposalStatus returns the outcome of the last execution attempt of a proposal
func (b *Bridge) ProposalStatus(origin types.DomainID, nonce types.DepositNonce) (store.PropStatus, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return store.NewPropStore(b.db).PropStatus(origin, nonce)
}

func (b *Bridge) Events(from uint64, limit int) ([]events.Event, error) {
	return events.Range(b.db, from, limit)
}
