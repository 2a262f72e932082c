// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package mpc

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

const SignatureLength = 65

// Verifier checks that a proposal batch was signed by the committee key
type Verifier struct {
	domain Domain
	log    zerolog.Logger
}

func NewVerifier(domain Domain) *Verifier {
	return &Verifier{
		domain: domain,
		log:    log.With().Str("component", "verifier").Logger(),
	}
}

// Verify reports whether signature is a valid committee signature over
// proposals. It never returns true when the key is absent or the signature
// cannot be recovered.
func (v *Verifier) Verify(key *types.MpcKey, proposals []*types.Proposal, signature []byte) bool {
	if key == nil || *key == (types.MpcKey{}) {
		v.log.Debug().Msg("No committee key configured")
		return false
	}
	if len(signature) != SignatureLength {
		v.log.Debug().Msgf("Invalid signature length %d", len(signature))
		return false
	}

	hash, err := v.domain.ProposalsHash(proposals)
	if err != nil {
		v.log.Debug().Err(err).Msg("Failed building proposals hash")
		return false
	}

	sig := bytes.Clone(signature)
	if sig[64] >= 27 {
		sig[64] -= 27 // Transform V from 27/28 to 0/1
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(sig[64], r, s, true) {
		v.log.Debug().Msg("Signature values out of range")
		return false
	}

	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		v.log.Debug().Err(err).Msg("Failed recovering signer")
		return false
	}
	return crypto.PubkeyToAddress(*pub) == key.Address()
}
