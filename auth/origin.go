// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package auth

import (
	"errors"

	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var ErrBadOrigin = errors.New("origin is not allowed to call privileged operations")

type Role string

const (
	RoleRoot   Role = "root"
	RoleSigned Role = "signed"
)

// Origin is the proven identity of a caller. It is passed explicitly into
// every operation that needs to know who is calling.
type Origin struct {
	Caller types.AccountID
	Role   Role
}

func Root() Origin {
	return Origin{Role: RoleRoot}
}

func Signed(caller types.AccountID) Origin {
	return Origin{Caller: caller, Role: RoleSigned}
}

// Authorizer decides which origins may pause, unpause and configure the bridge.
// Root is always privileged, signed origins only when listed as admins.
type Authorizer struct {
	admins map[types.AccountID]struct{}
}

func NewAuthorizer(admins []types.AccountID) *Authorizer {
	a := &Authorizer{admins: make(map[types.AccountID]struct{}, len(admins))}
	for _, admin := range admins {
		a.admins[admin] = struct{}{}
	}
	return a
}

func (a *Authorizer) EnsurePrivileged(origin Origin) error {
	switch origin.Role {
	case RoleRoot:
		return nil
	case RoleSigned:
		if _, ok := a.admins[origin.Caller]; ok {
			return nil
		}
	}
	return ErrBadOrigin
}
