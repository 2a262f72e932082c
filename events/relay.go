// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sacha-l/sygma-substrate-pallets/store"
)

const relayBatchSize = 100

var cursorKey = []byte("event:relay:cursor")

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type RelayMetrics interface {
	TrackEventPublished(name Name)
}

// Relay forwards committed events from the outbound log to a publisher.
// Delivery is at least once: the cursor is persisted after events are published.
type Relay struct {
	db        store.KeyValueReaderWriter
	publisher Publisher
	metrics   RelayMetrics
	interval  time.Duration
	log       zerolog.Logger
}

func NewRelay(db store.KeyValueReaderWriter, publisher Publisher, metrics RelayMetrics, interval time.Duration) *Relay {
	return &Relay{
		db:        db,
		publisher: publisher,
		metrics:   metrics,
		interval:  interval,
		log:       log.With().Str("component", "relay").Logger(),
	}
}

// Start polls the log until ctx is cancelled
func (r *Relay) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := r.Flush(ctx)
			if err != nil {
				r.log.Warn().Err(err).Msg("Failed relaying events")
				continue
			}
			if n > 0 {
				r.log.Debug().Msgf("Relayed %d events", n)
			}
		}
	}
}

// Flush publishes every event past the cursor and returns how many were sent
func (r *Relay) Flush(ctx context.Context) (int, error) {
	cursor, err := r.Cursor()
	if err != nil {
		return 0, err
	}

	sent := 0
	for {
		evts, err := Range(r.db, cursor, relayBatchSize)
		if err != nil {
			return sent, err
		}
		if len(evts) == 0 {
			return sent, nil
		}

		for _, evt := range evts {
			if err := r.publisher.Publish(ctx, evt); err != nil {
				return sent, errors.Join(err, r.storeCursor(cursor))
			}
			r.metrics.TrackEventPublished(evt.Name)
			cursor = evt.Seq + 1
			sent++
		}
		if err := r.storeCursor(cursor); err != nil {
			return sent, err
		}
	}
}

// Cursor returns the sequence number of the next event to publish
func (r *Relay) Cursor() (uint64, error) {
	raw, err := r.db.GetByKey(cursorKey)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, fmt.Errorf("corrupted relay cursor of %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

func (r *Relay) storeCursor(cursor uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, cursor)
	return r.db.SetByKey(cursorKey, b)
}
