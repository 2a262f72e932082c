// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

// SetMpcKey stores the committee key. It succeeds only once per deployment.
func (b *Bridge) SetMpcKey(origin auth.Origin, key types.MpcKey) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.authorizer.EnsurePrivileged(origin); err != nil {
		return err
	}

	tx := store.NewTransaction(b.db)
	defer tx.Discard()
	if err := NewState(tx).SetMpcKey(key); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	b.log.Info().Str("key", key.Hex()).Str("address", key.Address().Hex()).Msg("Committee key set")
	return nil
}

// PauseBridge stops deposits towards and proposals from domain
func (b *Bridge) PauseBridge(origin auth.Origin, domain types.DomainID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.authorizer.EnsurePrivileged(origin); err != nil {
		return err
	}

	tx := store.NewTransaction(b.db)
	defer tx.Discard()
	if err := NewState(tx).Pause(domain); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	b.log.Info().Uint8("domainID", domain).Msg("Bridge paused")
	return nil
}

func (b *Bridge) UnpauseBridge(origin auth.Origin, domain types.DomainID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.authorizer.EnsurePrivileged(origin); err != nil {
		return err
	}

	tx := store.NewTransaction(b.db)
	defer tx.Discard()
	if err := NewState(tx).Unpause(domain); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	b.log.Info().Uint8("domainID", domain).Msg("Bridge unpaused")
	return nil
}
