// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"errors"
)

var ErrNotFound = errors.New("key not found")

type KeyValueReader interface {
	GetByKey(key []byte) ([]byte, error)
}

type KeyValueWriter interface {
	SetByKey(key []byte, value []byte) error
}

type KeyValueReaderWriter interface {
	KeyValueReader
	KeyValueWriter
}

type KV struct {
	Key   []byte
	Value []byte
}

// BatchWriter is implemented by backends that can persist several writes atomically
type BatchWriter interface {
	WriteBatch(kvs []KV) error
}
