// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"errors"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
)

var (
	ErrMpcKeyNotUpdatable  = errors.New("mpc key can not be updated")
	ErrMissingMpcKey       = errors.New("mpc key not set")
	ErrBridgeNotRecognized = errors.New("bridge not recognized")

	ErrBridgePaused            = errors.New("bridge is paused")
	ErrBridgeUnpaused          = errors.New("bridge is unpaused")
	ErrAssetNotBound           = errors.New("asset not bound to a resource id")
	ErrInvalidDestination      = errors.New("invalid destination")
	ErrMissingFeeConfig        = errors.New("fee config option missing")
	ErrInsufficientAmount      = errors.New("amount does not cover the fee")
	ErrProposalAlreadyComplete = errors.New("proposal has either failed or succeeded")
	ErrEmptyProposalBatch      = errors.New("empty proposal batch")

	ErrBadMpcSignature   = errors.New("bad mpc signature")
	ErrMalformedProposal = errors.New("malformed proposal data")
	ErrTransactorFailed  = errors.New("transactor operation failed")
)

type ErrorKind int

const (
	UnknownError ErrorKind = iota
	// ConfigurationError is returned while the bridge is not set up to serve a call
	ConfigurationError
	// PolicyViolation rejects a well formed call the current state does not allow
	PolicyViolation
	// IntegrityFailure rejects input that is forged, corrupted or can not be settled
	IntegrityFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration"
	case PolicyViolation:
		return "policy"
	case IntegrityFailure:
		return "integrity"
	default:
		return "unknown"
	}
}

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrMpcKeyNotUpdatable, ConfigurationError},
	{ErrMissingMpcKey, ConfigurationError},
	{ErrBridgeNotRecognized, ConfigurationError},
	{ErrMissingFeeConfig, ConfigurationError},
	{ErrBridgePaused, PolicyViolation},
	{ErrBridgeUnpaused, PolicyViolation},
	{ErrAssetNotBound, PolicyViolation},
	{ErrInvalidDestination, PolicyViolation},
	{ErrInsufficientAmount, PolicyViolation},
	{ErrProposalAlreadyComplete, PolicyViolation},
	{ErrEmptyProposalBatch, PolicyViolation},
	{auth.ErrBadOrigin, PolicyViolation},
	{ErrBadMpcSignature, IntegrityFailure},
	{ErrMalformedProposal, IntegrityFailure},
	{ErrTransactorFailed, IntegrityFailure},
}

// Kind classifies err by the bridge error it wraps
func Kind(err error) ErrorKind {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return UnknownError
}
