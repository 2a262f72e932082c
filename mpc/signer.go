// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package mpc

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

// Signer produces committee signatures from a single private key. The
// committee itself signs with a threshold key; this is used by tooling and tests.
type Signer struct {
	domain Domain
	key    *ecdsa.PrivateKey
}

func NewSigner(domain Domain, key *ecdsa.PrivateKey) *Signer {
	return &Signer{
		domain: domain,
		key:    key,
	}
}

func (s *Signer) MpcKey() types.MpcKey {
	return types.NewMpcKey(crypto.PubkeyToAddress(s.key.PublicKey))
}

func (s *Signer) Sign(proposals []*types.Proposal) ([]byte, error) {
	hash, err := s.domain.ProposalsHash(proposals)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return nil, err
	}
	sig[len(sig)-1] += 27 // Transform V from 0/1 to 27/28
	return sig, nil
}
