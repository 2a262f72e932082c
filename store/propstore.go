// Copyright 2021 ChainSafe Systems
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"errors"
	"fmt"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type PropStatus string

var (
	PropKey                 = "origin:%d:depositNonce:%d"
	MissingProp  PropStatus = "missing"
	FailedProp   PropStatus = "failed"
	ExecutedProp PropStatus = "executed"
)

// PropStore records the last execution outcome of inbound proposals
type PropStore struct {
	db KeyValueReaderWriter
}

func NewPropStore(db KeyValueReaderWriter) *PropStore {
	return &PropStore{
		db: db,
	}
}

// StorePropStatus stores proposal status per proposal
func (ps *PropStore) StorePropStatus(origin types.DomainID, depositNonce types.DepositNonce, status PropStatus) error {
	return ps.db.SetByKey(propKey(origin, depositNonce), []byte(status))
}

func (ps *PropStore) PropStatus(origin types.DomainID, depositNonce types.DepositNonce) (PropStatus, error) {
	v, err := ps.db.GetByKey(propKey(origin, depositNonce))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return MissingProp, nil
		}
		return MissingProp, err
	}

	return PropStatus(string(v)), nil
}

func propKey(origin types.DomainID, depositNonce types.DepositNonce) []byte {
	return []byte(fmt.Sprintf(PropKey, origin, depositNonce))
}
