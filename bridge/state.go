// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/holiman/uint256"

	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

const nonceBucketSize = 256

var ErrDepositNonceOverflow = errors.New("deposit nonce overflow")

type PauseState uint8

const (
	Unrecognized PauseState = iota
	Paused
	Unpaused
)

func (p PauseState) String() string {
	switch p {
	case Paused:
		return "paused"
	case Unpaused:
		return "unpaused"
	default:
		return "unrecognized"
	}
}

var mpcKeyKey = []byte("mpc:key")

func pausedKey(domain types.DomainID) []byte {
	return []byte(fmt.Sprintf("domain:%d:paused", domain))
}

func depositCountKey(domain types.DomainID) []byte {
	return []byte(fmt.Sprintf("domain:%d:depositCount", domain))
}

func usedNoncesKey(domain types.DomainID, bucket uint64) []byte {
	return []byte(fmt.Sprintf("domain:%d:usedNonces:%d", domain, bucket))
}

// State holds the committee key, pause flags, deposit counters and the used
// nonce bitmaps. It reads and writes through db, which is normally a
// transaction scope opened by the caller.
type State struct {
	db store.KeyValueReaderWriter
}

func NewState(db store.KeyValueReaderWriter) *State {
	return &State{db: db}
}

// MpcKey returns the committee key or nil if it was never set
func (s *State) MpcKey() (*types.MpcKey, error) {
	raw, err := s.db.GetByKey(mpcKeyKey)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	key := types.MpcKey(types.SliceTo32Bytes(raw))
	return &key, nil
}

func (s *State) SetMpcKey(key types.MpcKey) error {
	current, err := s.MpcKey()
	if err != nil {
		return err
	}
	if current != nil {
		return ErrMpcKeyNotUpdatable
	}
	return s.db.SetByKey(mpcKeyKey, key[:])
}

func (s *State) ensureMpcKey() error {
	key, err := s.MpcKey()
	if err != nil {
		return err
	}
	if key == nil {
		return ErrMissingMpcKey
	}
	return nil
}

// Pause marks domain as paused. Pausing an unrecognized domain recognizes it.
func (s *State) Pause(domain types.DomainID) error {
	if err := s.ensureMpcKey(); err != nil {
		return err
	}
	return s.db.SetByKey(pausedKey(domain), []byte{1})
}

func (s *State) Unpause(domain types.DomainID) error {
	if err := s.ensureMpcKey(); err != nil {
		return err
	}

	state, err := s.PauseState(domain)
	if err != nil {
		return err
	}
	switch state {
	case Unrecognized:
		return fmt.Errorf("%w: domain %d", ErrBridgeNotRecognized, domain)
	case Unpaused:
		return fmt.Errorf("%w: domain %d", ErrBridgeUnpaused, domain)
	}
	return s.db.SetByKey(pausedKey(domain), []byte{0})
}

func (s *State) PauseState(domain types.DomainID) (PauseState, error) {
	raw, err := s.db.GetByKey(pausedKey(domain))
	if errors.Is(err, store.ErrNotFound) {
		return Unrecognized, nil
	}
	if err != nil {
		return Unrecognized, err
	}
	if len(raw) == 1 && raw[0] == 0 {
		return Unpaused, nil
	}
	return Paused, nil
}

func (s *State) IsActive(domain types.DomainID) (bool, error) {
	state, err := s.PauseState(domain)
	if err != nil {
		return false, err
	}
	return state == Unpaused, nil
}

// DepositCount returns the number of deposits made towards domain
func (s *State) DepositCount(domain types.DomainID) (types.DepositNonce, error) {
	raw, err := s.db.GetByKey(depositCountKey(domain))
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, fmt.Errorf("corrupted deposit counter of domain %d: %d bytes", domain, len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

// NextDepositNonce returns the current deposit counter of domain and increments it
func (s *State) NextDepositNonce(domain types.DomainID) (types.DepositNonce, error) {
	nonce, err := s.DepositCount(domain)
	if err != nil {
		return 0, err
	}
	if nonce == math.MaxUint64 {
		return 0, ErrDepositNonceOverflow
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, nonce+1)
	if err := s.db.SetByKey(depositCountKey(domain), next); err != nil {
		return 0, err
	}
	return nonce, nil
}

func (s *State) usedNonces(domain types.DomainID, bucket uint64) (*uint256.Int, error) {
	raw, err := s.db.GetByKey(usedNoncesKey(domain, bucket))
	if errors.Is(err, store.ErrNotFound) {
		return new(uint256.Int), nil
	}
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(raw), nil
}

func (s *State) IsNonceUsed(domain types.DomainID, nonce types.DepositNonce) (bool, error) {
	bitmap, err := s.usedNonces(domain, nonce/nonceBucketSize)
	if err != nil {
		return false, err
	}

	bit := new(uint256.Int).Rsh(bitmap, uint(nonce%nonceBucketSize))
	return bit.Uint64()&1 == 1, nil
}

// MarkNonceUsed sets the bit of nonce in its bucket. Bits are never cleared.
func (s *State) MarkNonceUsed(domain types.DomainID, nonce types.DepositNonce) error {
	bucket := nonce / nonceBucketSize
	bitmap, err := s.usedNonces(domain, bucket)
	if err != nil {
		return err
	}

	mask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(nonce%nonceBucketSize))
	bitmap.Or(bitmap, mask)
	b := bitmap.Bytes32()
	return s.db.SetByKey(usedNoncesKey(domain, bucket), b[:])
}
