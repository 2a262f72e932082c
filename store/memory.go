// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"sync"
)

// MemoryDB is an in-process key value store
type MemoryDB struct {
	mu sync.RWMutex
	kv map[string][]byte
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		kv: make(map[string][]byte),
	}
}

func (db *MemoryDB) GetByKey(key []byte) ([]byte, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	v, ok := db.kv[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return copyBytes(v), nil
}

func (db *MemoryDB) SetByKey(key []byte, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.kv[string(key)] = copyBytes(value)
	return nil
}

func (db *MemoryDB) WriteBatch(kvs []KV) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, kv := range kvs {
		db.kv[string(kv.Key)] = copyBytes(kv.Value)
	}
	return nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
