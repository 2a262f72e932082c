// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge_test

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/bridge"
	mock_bridge "github.com/sacha-l/sygma-substrate-pallets/bridge/mock"
	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/location"
	"github.com/sacha-l/sygma-substrate-pallets/registry"
	"github.com/sacha-l/sygma-substrate-pallets/store"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

var (
	admin           = types.AccountID{0xad}
	alice           = types.AccountID{0xa1}
	feeReserve      = types.AccountID{0xfe}
	transferReserve = types.AccountID{0x7e}
	usdcResource    = types.ResourceID{0x01}
	unboundResource = types.ResourceID{0x02}
	evmRecipient    = []byte{0x5c, 0x1f, 0x59, 0x61, 0x69, 0x6b, 0xad, 0x2e, 0x73, 0xf7, 0x34, 0x17, 0xf0, 0x7e, 0xf5, 0x5c, 0x62, 0xa2, 0xdc, 0x5b}
)

func destination(domain types.DomainID) []byte {
	loc, _ := location.NewDestination(evmRecipient, domain)
	b, _ := loc.Bytes()
	return b
}

func transferData(amount int64, account types.AccountID) []byte {
	recipient, _ := location.NewAccountLocation(account).Bytes()
	return bridge.EncodeTransferData(big.NewInt(amount), recipient)
}

type BridgeTestSuite struct {
	suite.Suite
	db             *store.MemoryDB
	mockFee        *mock_bridge.MockFeeHandler
	mockTransactor *mock_bridge.MockAssetTransactor
	mockVerifier   *mock_bridge.MockSignatureVerifier
	mockMetrics    *mock_bridge.MockMetrics
	registry       *registry.ResourceRegistry
	bridge         *bridge.Bridge
}

func TestRunBridgeTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeTestSuite))
}

func (s *BridgeTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.db = store.NewMemoryDB()
	s.mockFee = mock_bridge.NewMockFeeHandler(ctrl)
	s.mockTransactor = mock_bridge.NewMockAssetTransactor(ctrl)
	s.mockVerifier = mock_bridge.NewMockSignatureVerifier(ctrl)
	s.mockMetrics = mock_bridge.NewMockMetrics(ctrl)
	s.mockMetrics.EXPECT().TrackDeposit(gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().TrackProposalExecution(gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().TrackProposalFailure(gomock.Any(), gomock.Any()).AnyTimes()
	s.registry, _ = registry.NewResourceRegistry([]registry.Resource{{Asset: "usdc", ResourceID: usdcResource}})
	s.bridge = s.newBridge(bridge.PartialBatch)
}

func (s *BridgeTestSuite) newBridge(policy bridge.BatchPolicy) *bridge.Bridge {
	return bridge.NewBridge(
		s.db,
		s.registry,
		s.mockFee,
		s.mockTransactor,
		s.mockVerifier,
		auth.NewAuthorizer([]types.AccountID{admin}),
		s.mockMetrics,
		bridge.Config{
			FeeReserveAccount:      feeReserve,
			TransferReserveAccount: transferReserve,
			BatchPolicy:            policy,
		},
	)
}

func (s *BridgeTestSuite) activate(domains ...types.DomainID) {
	_ = s.bridge.SetMpcKey(auth.Root(), types.MpcKey{1})
	for _, domain := range domains {
		s.Nil(s.bridge.PauseBridge(auth.Root(), domain))
		s.Nil(s.bridge.UnpauseBridge(auth.Root(), domain))
	}
}

func (s *BridgeTestSuite) eventCount() uint64 {
	count, _ := events.Count(s.db)
	return count
}

func (s *BridgeTestSuite) Test_SetMpcKey_BadOrigin() {
	err := s.bridge.SetMpcKey(auth.Signed(alice), types.MpcKey{1})

	s.ErrorIs(err, auth.ErrBadOrigin)
	key, _ := s.bridge.MpcKey()
	s.Nil(key)
}

func (s *BridgeTestSuite) Test_SetMpcKey_AdminOnce() {
	s.Nil(s.bridge.SetMpcKey(auth.Signed(admin), types.MpcKey{1}))

	err := s.bridge.SetMpcKey(auth.Root(), types.MpcKey{2})

	s.ErrorIs(err, bridge.ErrMpcKeyNotUpdatable)
	key, _ := s.bridge.MpcKey()
	s.Equal(types.MpcKey{1}, *key)
}

func (s *BridgeTestSuite) Test_PauseUnpause_BadOrigin() {
	s.activate(1)

	s.ErrorIs(s.bridge.PauseBridge(auth.Signed(alice), 1), auth.ErrBadOrigin)
	s.ErrorIs(s.bridge.UnpauseBridge(auth.Signed(alice), 1), auth.ErrBadOrigin)

	state, _ := s.bridge.PauseState(1)
	s.Equal(bridge.Unpaused, state)
}

func (s *BridgeTestSuite) Test_Deposit_AssetNotBound() {
	s.activate(1)

	_, err := s.bridge.Deposit(alice, "dot", big.NewInt(100), destination(1))

	s.ErrorIs(err, bridge.ErrAssetNotBound)
}

func (s *BridgeTestSuite) Test_Deposit_InvalidDestination() {
	s.activate(1)
	accountLocation, _ := location.NewAccountLocation(alice).Bytes()

	_, err := s.bridge.Deposit(alice, "usdc", big.NewInt(100), accountLocation)
	s.ErrorIs(err, bridge.ErrInvalidDestination)

	_, err = s.bridge.Deposit(alice, "usdc", big.NewInt(100), []byte{0xff})
	s.ErrorIs(err, bridge.ErrInvalidDestination)
}

func (s *BridgeTestSuite) Test_Deposit_DomainNotActive() {
	s.activate()

	_, err := s.bridge.Deposit(alice, "usdc", big.NewInt(100), destination(1))
	s.ErrorIs(err, bridge.ErrBridgePaused)

	s.Nil(s.bridge.PauseBridge(auth.Root(), 1))
	_, err = s.bridge.Deposit(alice, "usdc", big.NewInt(100), destination(1))
	s.ErrorIs(err, bridge.ErrBridgePaused)
	s.Equal(uint64(0), s.eventCount())
}

func (s *BridgeTestSuite) Test_Deposit_MissingFeeConfig() {
	s.activate(1)
	s.mockFee.EXPECT().Fee(types.AssetID("usdc"), uint8(1), gomock.Any()).Return(nil, fmt.Errorf("%w: domain 1", bridge.ErrMissingFeeConfig))

	_, err := s.bridge.Deposit(alice, "usdc", big.NewInt(100), destination(1))

	s.ErrorIs(err, bridge.ErrMissingFeeConfig)
}

func (s *BridgeTestSuite) Test_Deposit_AmountMustExceedFee() {
	s.activate(1)
	s.mockFee.EXPECT().Fee(gomock.Any(), gomock.Any(), gomock.Any()).Return(big.NewInt(100), nil)

	_, err := s.bridge.Deposit(alice, "usdc", big.NewInt(100), destination(1))

	s.ErrorIs(err, bridge.ErrInsufficientAmount)
}

func (s *BridgeTestSuite) Test_Deposit_NonPositiveAmount() {
	s.activate(1)

	for _, amount := range []*big.Int{big.NewInt(-5), big.NewInt(0), nil} {
		_, err := s.bridge.Deposit(alice, "usdc", amount, destination(1))

		s.ErrorIs(err, bridge.ErrInsufficientAmount)
		s.Equal(bridge.PolicyViolation, bridge.Kind(err))
	}
	count, _ := s.bridge.DepositCount(1)
	s.Equal(uint64(0), count)
}

func (s *BridgeTestSuite) Test_Deposit_TransactorFailureRollsBack() {
	s.activate(1)
	s.mockFee.EXPECT().Fee(gomock.Any(), gomock.Any(), gomock.Any()).Return(big.NewInt(10), nil)
	s.mockTransactor.EXPECT().Withdraw(gomock.Any(), alice, types.AssetID("usdc"), gomock.Any()).DoAndReturn(
		func(scope store.KeyValueReaderWriter, account types.AccountID, asset types.AssetID, amount *big.Int) error {
			return scope.SetByKey([]byte("balance:usdc:alice"), []byte{0})
		})
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), feeReserve, gomock.Any(), gomock.Any()).Return(nil)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), transferReserve, gomock.Any(), gomock.Any()).Return(errors.New("reserve frozen"))

	_, err := s.bridge.Deposit(alice, "usdc", big.NewInt(100), destination(1))

	s.ErrorIs(err, bridge.ErrTransactorFailed)
	_, err = s.db.GetByKey([]byte("balance:usdc:alice"))
	s.ErrorIs(err, store.ErrNotFound)
	count, _ := s.bridge.DepositCount(1)
	s.Equal(uint64(0), count)
	s.Equal(uint64(0), s.eventCount())
}

func (s *BridgeTestSuite) Test_Deposit_Success() {
	s.activate(1)
	amount := big.NewInt(100)
	fee := big.NewInt(10)
	s.mockFee.EXPECT().Fee(types.AssetID("usdc"), uint8(1), amount).Return(fee, nil).Times(2)
	s.mockTransactor.EXPECT().Withdraw(gomock.Any(), alice, types.AssetID("usdc"), amount).Return(nil).Times(2)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), feeReserve, types.AssetID("usdc"), fee).Return(nil).Times(2)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), transferReserve, types.AssetID("usdc"), big.NewInt(90)).Return(nil).Times(2)

	res, err := s.bridge.Deposit(alice, "usdc", amount, destination(1))
	s.Nil(err)
	s.Equal(uint64(0), res.DepositNonce)
	s.Equal(usdcResource, res.ResourceID)
	s.Equal("90", res.NetAmount.String())

	res, err = s.bridge.Deposit(alice, "usdc", amount, destination(1))
	s.Nil(err)
	s.Equal(uint64(1), res.DepositNonce)

	evts, _ := s.bridge.Events(0, 10)
	s.Len(evts, 2)
	deposit := evts[0].Deposit
	s.Equal(events.DepositEvent, evts[0].Name)
	s.Equal(uint8(1), deposit.DestDomainID)
	s.Equal(alice, deposit.Sender)
	s.Equal(evmRecipient, []byte(deposit.Recipient))
	s.Equal(bridge.EncodeTransferData(big.NewInt(90), evmRecipient), []byte(deposit.DepositData))
	s.Equal(uint64(1), evts[1].Deposit.DepositNonce)
}

func (s *BridgeTestSuite) Test_ExecuteProposals_EmptyBatch() {
	_, err := s.bridge.ExecuteProposals([]*types.Proposal{}, []byte{1})

	s.ErrorIs(err, bridge.ErrEmptyProposalBatch)
}

func (s *BridgeTestSuite) Test_ExecuteProposals_NilProposal() {
	s.activate(7)
	props := []*types.Proposal{
		{OriginDomainID: 7, ResourceID: usdcResource, Data: transferData(100, alice)},
		nil,
	}

	_, err := s.bridge.ExecuteProposals(props, []byte{1})

	s.ErrorIs(err, bridge.ErrMalformedProposal)
	s.Equal(uint64(0), s.eventCount())
}

func (s *BridgeTestSuite) Test_ExecuteProposals_BadSignature() {
	s.activate(7)
	props := []*types.Proposal{{OriginDomainID: 7, ResourceID: usdcResource, Data: transferData(100, alice)}}
	s.mockVerifier.EXPECT().Verify(&types.MpcKey{1}, props, []byte{1}).Return(false)

	_, err := s.bridge.ExecuteProposals(props, []byte{1})

	s.ErrorIs(err, bridge.ErrBadMpcSignature)
	used, _ := s.bridge.IsProposalExecuted(7, 0)
	s.False(used)
	s.Equal(uint64(0), s.eventCount())
}

func (s *BridgeTestSuite) Test_ExecuteProposals_MissingKeyPassedToVerifier() {
	props := []*types.Proposal{{OriginDomainID: 7, ResourceID: usdcResource, Data: transferData(100, alice)}}
	s.mockVerifier.EXPECT().Verify(nil, props, []byte{1}).Return(false)

	_, err := s.bridge.ExecuteProposals(props, []byte{1})

	s.ErrorIs(err, bridge.ErrBadMpcSignature)
}

func (s *BridgeTestSuite) Test_ExecuteProposals_Replay() {
	s.activate(7)
	props := []*types.Proposal{{OriginDomainID: 7, DepositNonce: 0, ResourceID: usdcResource, Data: transferData(100, alice)}}
	s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), alice, types.AssetID("usdc"), big.NewInt(100)).Return(nil).Times(1)

	report, err := s.bridge.ExecuteProposals(props, []byte{1})
	s.Nil(err)
	s.Equal(0, report.Failed())
	s.True(report.Results[0].Executed())

	report, err = s.bridge.ExecuteProposals(props, []byte{1})
	s.Nil(err)
	s.Equal(1, report.Failed())
	s.ErrorIs(report.Results[0].Err, bridge.ErrProposalAlreadyComplete)

	status, _ := s.bridge.ProposalStatus(7, 0)
	s.Equal(store.ExecutedProp, status)
}

func (s *BridgeTestSuite) Test_ExecuteProposals_DuplicateInBatch() {
	s.activate(7)
	prop := &types.Proposal{OriginDomainID: 7, DepositNonce: 4, ResourceID: usdcResource, Data: transferData(100, alice)}
	props := []*types.Proposal{prop, prop}
	s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), alice, types.AssetID("usdc"), big.NewInt(100)).Return(nil).Times(1)

	report, err := s.bridge.ExecuteProposals(props, []byte{1})

	s.Nil(err)
	s.Equal(1, report.Failed())
	s.True(report.Results[0].Executed())
	s.ErrorIs(report.Results[1].Err, bridge.ErrProposalAlreadyComplete)
	status, _ := s.bridge.ProposalStatus(7, 4)
	s.Equal(store.ExecutedProp, status)
}

func (s *BridgeTestSuite) Test_ExecuteProposals_RejectedProposals() {
	s.activate(7)
	malformed := transferData(100, alice)
	props := []*types.Proposal{
		{OriginDomainID: 8, DepositNonce: 0, ResourceID: usdcResource, Data: transferData(100, alice)},
		{OriginDomainID: 7, DepositNonce: 1, ResourceID: unboundResource, Data: transferData(100, alice)},
		{OriginDomainID: 7, DepositNonce: 2, ResourceID: usdcResource, Data: malformed[:len(malformed)-1]},
		{OriginDomainID: 7, DepositNonce: 3, ResourceID: usdcResource, Data: bridge.EncodeTransferData(big.NewInt(1), []byte{1, 2, 3})},
	}
	s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)

	report, err := s.bridge.ExecuteProposals(props, []byte{1})

	s.Nil(err)
	s.Equal(4, report.Failed())
	s.ErrorIs(report.Results[0].Err, bridge.ErrBridgePaused)
	s.ErrorIs(report.Results[1].Err, bridge.ErrAssetNotBound)
	s.ErrorIs(report.Results[2].Err, bridge.ErrMalformedProposal)
	s.ErrorIs(report.Results[3].Err, bridge.ErrMalformedProposal)
	for i := range props {
		used, _ := s.bridge.IsProposalExecuted(props[i].OriginDomainID, props[i].DepositNonce)
		s.False(used)
		status, _ := s.bridge.ProposalStatus(props[i].OriginDomainID, props[i].DepositNonce)
		s.Equal(store.FailedProp, status)
	}
	evts, _ := s.bridge.Events(0, 10)
	s.Len(evts, 4)
	s.Equal(events.FailedHandlerExecutionEvent, evts[0].Name)
}

func (s *BridgeTestSuite) Test_ExecuteProposals_TransactorFailureKeepsNonceFree() {
	s.activate(7)
	props := []*types.Proposal{{OriginDomainID: 7, DepositNonce: 5, ResourceID: usdcResource, Data: transferData(100, alice)}}
	s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), alice, gomock.Any(), gomock.Any()).Return(errors.New("frozen"))

	report, err := s.bridge.ExecuteProposals(props, []byte{1})
	s.Nil(err)
	s.ErrorIs(report.Results[0].Err, bridge.ErrTransactorFailed)
	used, _ := s.bridge.IsProposalExecuted(7, 5)
	s.False(used)

	s.mockTransactor.EXPECT().Deposit(gomock.Any(), alice, gomock.Any(), gomock.Any()).Return(nil)
	report, err = s.bridge.ExecuteProposals(props, []byte{1})
	s.Nil(err)
	s.Equal(0, report.Failed())
	used, _ = s.bridge.IsProposalExecuted(7, 5)
	s.True(used)
}

func (s *BridgeTestSuite) Test_ExecuteProposals_PartialBatch() {
	s.activate(7)
	props := []*types.Proposal{
		{OriginDomainID: 7, DepositNonce: 0, ResourceID: usdcResource, Data: transferData(1, alice)},
		{OriginDomainID: 7, DepositNonce: 1, ResourceID: usdcResource, Data: transferData(2, alice)},
		{OriginDomainID: 7, DepositNonce: 2, ResourceID: usdcResource, Data: transferData(3, alice)},
	}
	s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), alice, gomock.Any(), big.NewInt(1)).Return(nil)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), alice, gomock.Any(), big.NewInt(2)).DoAndReturn(
		func(scope store.KeyValueReaderWriter, account types.AccountID, asset types.AssetID, amount *big.Int) error {
			_ = scope.SetByKey([]byte("partial"), []byte{1})
			return errors.New("frozen")
		})
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), alice, gomock.Any(), big.NewInt(3)).Return(nil)

	report, err := s.bridge.ExecuteProposals(props, []byte{1})

	s.Nil(err)
	s.Equal(1, report.Failed())
	s.True(report.Results[0].Executed())
	s.False(report.Results[1].Executed())
	s.True(report.Results[2].Executed())
	_, err = s.db.GetByKey([]byte("partial"))
	s.ErrorIs(err, store.ErrNotFound)
	for nonce, expected := range []bool{true, false, true} {
		used, _ := s.bridge.IsProposalExecuted(7, uint64(nonce))
		s.Equal(expected, used)
	}
}

func (s *BridgeTestSuite) Test_ExecuteProposals_AtomicBatch() {
	s.activate(7)
	b := s.newBridge(bridge.AtomicBatch)
	props := []*types.Proposal{
		{OriginDomainID: 7, DepositNonce: 0, ResourceID: usdcResource, Data: transferData(1, alice)},
		{OriginDomainID: 7, DepositNonce: 1, ResourceID: unboundResource, Data: transferData(2, alice)},
		{OriginDomainID: 7, DepositNonce: 2, ResourceID: usdcResource, Data: transferData(3, alice)},
	}
	s.mockVerifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	s.mockTransactor.EXPECT().Deposit(gomock.Any(), alice, gomock.Any(), big.NewInt(1)).Return(nil)

	report, err := b.ExecuteProposals(props, []byte{1})

	s.Nil(report)
	s.ErrorIs(err, bridge.ErrAssetNotBound)
	used, _ := b.IsProposalExecuted(7, 0)
	s.False(used)
	s.Equal(uint64(0), s.eventCount())
}

func (s *BridgeTestSuite) Test_Retry() {
	err := s.bridge.Retry(alice, types.Hash{0xaa})

	s.Nil(err)
	evts, _ := s.bridge.Events(0, 10)
	s.Len(evts, 1)
	s.Equal(events.RetryEvent, evts[0].Name)
	s.Equal(types.Hash{0xaa}, evts[0].Retry.Reference)
	s.Equal(alice, evts[0].Retry.Sender)
}
