// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type Name string

const (
	DepositEvent                Name = "SygmaBridge.Deposit"
	RetryEvent                  Name = "SygmaBridge.Retry"
	ProposalExecutionEvent      Name = "SygmaBridge.ProposalExecution"
	FailedHandlerExecutionEvent Name = "SygmaBridge.FailedHandlerExecution"
)

type TransferType uint8

const (
	FungibleTransfer TransferType = iota
	NonFungibleTransfer
	GenericTransfer
)

type Deposit struct {
	DestDomainID types.DomainID     `json:"destDomainId"`
	ResourceID   types.ResourceID   `json:"resourceId"`
	DepositNonce types.DepositNonce `json:"depositNonce"`
	Sender       types.AccountID    `json:"sender"`
	TransferType TransferType       `json:"transferType"`
	// DepositData is amount(32) | len(recipient)(32) | recipient, the layout
	// relayers parse fungible deposits with
	DepositData     hexutil.Bytes `json:"depositData"`
	HandlerResponse hexutil.Bytes `json:"handlerResponse"`
	Recipient       hexutil.Bytes `json:"recipient"`
	NetAmount       *big.Int      `json:"netAmount"`
}

type Retry struct {
	Reference types.Hash      `json:"reference"`
	Sender    types.AccountID `json:"sender"`
}

type ProposalExecution struct {
	OriginDomainID types.DomainID     `json:"originDomainId"`
	DepositNonce   types.DepositNonce `json:"depositNonce"`
	DataHash       types.Hash         `json:"dataHash"`
}

type FailedHandlerExecution struct {
	Error          string             `json:"error"`
	OriginDomainID types.DomainID     `json:"originDomainId"`
	DepositNonce   types.DepositNonce `json:"depositNonce"`
}

// Event is one entry of the outbound log. Exactly one payload is set and it
// matches Name.
type Event struct {
	Seq  uint64 `json:"seq"`
	Name Name   `json:"name"`

	Deposit                *Deposit                `json:"deposit,omitempty"`
	Retry                  *Retry                  `json:"retry,omitempty"`
	ProposalExecution      *ProposalExecution      `json:"proposalExecution,omitempty"`
	FailedHandlerExecution *FailedHandlerExecution `json:"failedHandlerExecution,omitempty"`
}

func NewDepositEvent(d Deposit) Event {
	return Event{Name: DepositEvent, Deposit: &d}
}

func NewRetryEvent(r Retry) Event {
	return Event{Name: RetryEvent, Retry: &r}
}

func NewProposalExecutionEvent(p ProposalExecution) Event {
	return Event{Name: ProposalExecutionEvent, ProposalExecution: &p}
}

func NewFailedHandlerExecutionEvent(f FailedHandlerExecution) Event {
	return Event{Name: FailedHandlerExecutionEvent, FailedHandlerExecution: &f}
}
