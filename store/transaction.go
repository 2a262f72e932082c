// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"errors"
)

var ErrTransactionClosed = errors.New("transaction already committed or discarded")

// Transaction is a write scope over a parent store. Reads observe the scope's
// own pending writes first. Nothing reaches the parent until Commit; Discard
// drops every pending write. Transactions nest: a transaction opened on top of
// another one commits into it.
//
//	tx := store.NewTransaction(db)
//	defer tx.Discard()
//	...
//	return tx.Commit()
type Transaction struct {
	parent KeyValueReaderWriter
	writes map[string][]byte
	order  []string
	closed bool
}

func NewTransaction(parent KeyValueReaderWriter) *Transaction {
	return &Transaction{
		parent: parent,
		writes: make(map[string][]byte),
	}
}

func (t *Transaction) GetByKey(key []byte) ([]byte, error) {
	if t.closed {
		return nil, ErrTransactionClosed
	}
	if v, ok := t.writes[string(key)]; ok {
		return copyBytes(v), nil
	}
	return t.parent.GetByKey(key)
}

func (t *Transaction) SetByKey(key []byte, value []byte) error {
	if t.closed {
		return ErrTransactionClosed
	}
	k := string(key)
	if _, ok := t.writes[k]; !ok {
		t.order = append(t.order, k)
	}
	t.writes[k] = copyBytes(value)
	return nil
}

// WriteBatch lets a nested transaction commit into this one
func (t *Transaction) WriteBatch(kvs []KV) error {
	for _, kv := range kvs {
		if err := t.SetByKey(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// Pending returns the number of keys written in this scope
func (t *Transaction) Pending() int {
	return len(t.order)
}

// Commit flushes pending writes to the parent in write order. Backends that
// implement BatchWriter receive them as a single atomic batch.
func (t *Transaction) Commit() error {
	if t.closed {
		return ErrTransactionClosed
	}
	t.closed = true
	if len(t.order) == 0 {
		return nil
	}

	kvs := make([]KV, 0, len(t.order))
	for _, k := range t.order {
		kvs = append(kvs, KV{Key: []byte(k), Value: t.writes[k]})
	}
	t.writes = nil
	t.order = nil

	if bw, ok := t.parent.(BatchWriter); ok {
		return bw.WriteBatch(kvs)
	}
	for _, kv := range kvs {
		if err := t.parent.SetByKey(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// Discard drops pending writes. It is a no-op after Commit.
func (t *Transaction) Discard() {
	if t.closed {
		return
	}
	t.closed = true
	t.writes = nil
	t.order = nil
}
