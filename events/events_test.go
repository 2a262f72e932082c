// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/sacha-l/sygma-substrate-pallets/events"
	mock_events "github.com/sacha-l/sygma-substrate-pallets/events/mock"
	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type OutboxTestSuite struct {
	suite.Suite
	db *store.MemoryDB
}

func TestRunOutboxTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxTestSuite))
}

func (s *OutboxTestSuite) SetupTest() {
	s.db = store.NewMemoryDB()
}

func (s *OutboxTestSuite) Test_AppendAssignsSequence() {
	seq, err := events.Append(s.db, events.NewRetryEvent(events.Retry{Reference: types.Hash{1}}))
	s.Nil(err)
	s.Equal(uint64(0), seq)

	seq, err = events.Append(s.db, events.NewRetryEvent(events.Retry{Reference: types.Hash{2}}))
	s.Nil(err)
	s.Equal(uint64(1), seq)

	count, err := events.Count(s.db)
	s.Nil(err)
	s.Equal(uint64(2), count)
}

func (s *OutboxTestSuite) Test_RangeDecodesPayloads() {
	deposit := events.Deposit{
		DestDomainID: 7,
		ResourceID:   types.ResourceID{1},
		DepositNonce: 3,
		Sender:       types.AccountID{2},
		DepositData:  []byte{1, 2, 3},
		Recipient:    []byte{4},
		NetAmount:    big.NewInt(90),
	}
	_, err := events.Append(s.db, events.NewDepositEvent(deposit))
	s.Nil(err)
	_, err = events.Append(s.db, events.NewRetryEvent(events.Retry{Reference: types.Hash{9}}))
	s.Nil(err)

	evts, err := events.Range(s.db, 0, 10)

	s.Nil(err)
	s.Len(evts, 2)
	s.Equal(events.DepositEvent, evts[0].Name)
	s.Equal(uint64(0), evts[0].Seq)
	s.Equal(types.ResourceID{1}, evts[0].Deposit.ResourceID)
	s.Equal(types.AccountID{2}, evts[0].Deposit.Sender)
	s.Equal("90", evts[0].Deposit.NetAmount.String())
	s.Equal([]byte{1, 2, 3}, []byte(evts[0].Deposit.DepositData))
	s.Nil(evts[0].Retry)
	s.Equal(events.RetryEvent, evts[1].Name)
	s.Equal(types.Hash{9}, evts[1].Retry.Reference)
}

func (s *OutboxTestSuite) Test_RangeWindow() {
	for i := 0; i < 5; i++ {
		_, _ = events.Append(s.db, events.NewRetryEvent(events.Retry{Reference: types.Hash{byte(i)}}))
	}

	evts, err := events.Range(s.db, 3, 10)
	s.Nil(err)
	s.Len(evts, 2)
	s.Equal(uint64(3), evts[0].Seq)

	evts, err = events.Range(s.db, 1, 2)
	s.Nil(err)
	s.Len(evts, 2)
	s.Equal(uint64(2), evts[1].Seq)

	evts, err = events.Range(s.db, 10, 2)
	s.Nil(err)
	s.Len(evts, 0)
}

func (s *OutboxTestSuite) Test_DiscardedScopeLeavesNoEvent() {
	tx := store.NewTransaction(s.db)
	_, err := events.Append(tx, events.NewRetryEvent(events.Retry{}))
	s.Nil(err)
	tx.Discard()

	count, err := events.Count(s.db)
	s.Nil(err)
	s.Equal(uint64(0), count)
}

type RelayTestSuite struct {
	suite.Suite
	db            *store.MemoryDB
	mockPublisher *mock_events.MockPublisher
	mockMetrics   *mock_events.MockRelayMetrics
	relay         *events.Relay
}

func TestRunRelayTestSuite(t *testing.T) {
	suite.Run(t, new(RelayTestSuite))
}

func (s *RelayTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.db = store.NewMemoryDB()
	s.mockPublisher = mock_events.NewMockPublisher(ctrl)
	s.mockMetrics = mock_events.NewMockRelayMetrics(ctrl)
	s.relay = events.NewRelay(s.db, s.mockPublisher, s.mockMetrics, 0)

	for i := 0; i < 3; i++ {
		_, _ = events.Append(s.db, events.NewRetryEvent(events.Retry{Reference: types.Hash{byte(i)}}))
	}
}

func (s *RelayTestSuite) Test_FlushPublishesInOrder() {
	published := make([]uint64, 0)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt events.Event) error {
		published = append(published, evt.Seq)
		return nil
	}).Times(3)
	s.mockMetrics.EXPECT().TrackEventPublished(events.RetryEvent).Times(3)

	n, err := s.relay.Flush(context.Background())

	s.Nil(err)
	s.Equal(3, n)
	s.Equal([]uint64{0, 1, 2}, published)
	cursor, _ := s.relay.Cursor()
	s.Equal(uint64(3), cursor)

	n, err = s.relay.Flush(context.Background())
	s.Nil(err)
	s.Equal(0, n)
}

func (s *RelayTestSuite) Test_FlushStopsOnPublishError() {
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	s.mockMetrics.EXPECT().TrackEventPublished(events.RetryEvent).Times(1)

	n, err := s.relay.Flush(context.Background())

	s.NotNil(err)
	s.Equal(1, n)
	cursor, _ := s.relay.Cursor()
	s.Equal(uint64(1), cursor)
}

func (s *RelayTestSuite) Test_FlushResumesFromCursor() {
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	_, err := s.relay.Flush(context.Background())
	s.NotNil(err)

	published := make([]uint64, 0)
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt events.Event) error {
		published = append(published, evt.Seq)
		return nil
	}).Times(3)
	s.mockMetrics.EXPECT().TrackEventPublished(gomock.Any()).Times(3)

	n, err := s.relay.Flush(context.Background())

	s.Nil(err)
	s.Equal(3, n)
	s.Equal([]uint64{0, 1, 2}, published)
}

func (s *RelayTestSuite) Test_CorruptedCursor() {
	_ = s.db.SetByKey([]byte("event:relay:cursor"), []byte{0x01})

	_, err := s.relay.Cursor()
	s.NotNil(err)

	n, err := s.relay.Flush(context.Background())
	s.NotNil(err)
	s.Equal(0, n)
}
