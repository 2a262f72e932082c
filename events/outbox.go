// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sacha-l/sygma-substrate-pallets/store"
)

var countKey = []byte("event:count")

func eventKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("event:%020d", seq))
}

// Append stores evt at the end of the outbound log and returns its sequence
// number. Callers pass the same scope they use for the state change the
// event describes so both commit together.
func Append(scope store.KeyValueReaderWriter, evt Event) (uint64, error) {
	seq, err := Count(scope)
	if err != nil {
		return 0, err
	}

	evt.Seq = seq
	data, err := json.Marshal(evt)
	if err != nil {
		return 0, err
	}
	if err := scope.SetByKey(eventKey(seq), data); err != nil {
		return 0, err
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, seq+1)
	if err := scope.SetByKey(countKey, next); err != nil {
		return 0, err
	}
	return seq, nil
}

// Count returns the number of events in the log
func Count(db store.KeyValueReader) (uint64, error) {
	raw, err := db.GetByKey(countKey)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, fmt.Errorf("corrupted event counter of %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}

// Range returns up to limit events starting at sequence number from
func Range(db store.KeyValueReader, from uint64, limit int) ([]Event, error) {
	count, err := Count(db)
	if err != nil {
		return nil, err
	}

	evts := make([]Event, 0)
	for seq := from; seq < count && len(evts) < limit; seq++ {
		raw, err := db.GetByKey(eventKey(seq))
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", seq, err)
		}

		var evt Event
		if err := json.Unmarshal(raw, &evt); err != nil {
			return nil, fmt.Errorf("event %d: %w", seq, err)
		}
		evts = append(evts, evt)
	}
	return evts, nil
}
