// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package redisdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sacha-l/sygma-substrate-pallets/store"
)

var opTimeout = 5 * time.Second

// RedisDB is a key value store shared between bridge instances. Keys are
// namespaced with prefix.
type RedisDB struct {
	client *redis.Client
	prefix string
}

func NewRedisDB(url string, prefix string) (*RedisDB, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("unable to reach redis: %w", err)
	}

	return &RedisDB{
		client: client,
		prefix: prefix,
	}, nil
}

func (db *RedisDB) GetByKey(key []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	v, err := db.client.Get(ctx, db.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNotFound
	}
	return v, err
}

func (db *RedisDB) SetByKey(key []byte, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return db.client.Set(ctx, db.key(key), value, 0).Err()
}

// WriteBatch applies all writes inside a MULTI/EXEC block
func (db *RedisDB) WriteBatch(kvs []store.KV) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := db.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, kv := range kvs {
			pipe.Set(ctx, db.key(kv.Key), kv.Value, 0)
		}
		return nil
	})
	return err
}

func (db *RedisDB) Close() error {
	return db.client.Close()
}

func (db *RedisDB) key(k []byte) string {
	return db.prefix + string(k)
}
