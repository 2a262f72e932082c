// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/sacha-l/sygma-substrate-pallets/bridge"
	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/metrics"
)

type BridgeMetricsTestSuite struct {
	suite.Suite

	reader  *sdkmetric.ManualReader
	metrics *metrics.BridgeMetrics
}

func TestRunBridgeMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeMetricsTestSuite))
}

func (s *BridgeMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))

	var err error
	s.metrics, err = metrics.NewBridgeMetrics(provider.Meter("test"), 3)
	s.Nil(err)
}

func (s *BridgeMetricsTestSuite) sum(name string) int64 {
	rm := metricdata.ResourceMetrics{}
	err := s.reader.Collect(context.Background(), &rm)
	s.Nil(err)

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			data, ok := m.Data.(metricdata.Sum[int64])
			s.True(ok)
			for _, dp := range data.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func (s *BridgeMetricsTestSuite) Test_TrackDeposit() {
	s.metrics.TrackDeposit(1)
	s.metrics.TrackDeposit(2)

	s.Equal(int64(2), s.sum("bridge.Deposits"))
}

func (s *BridgeMetricsTestSuite) Test_TrackProposalOutcomes() {
	s.metrics.TrackProposalExecution(1)
	s.metrics.TrackProposalFailure(1, bridge.PolicyViolation)
	s.metrics.TrackProposalFailure(2, bridge.IntegrityFailure)

	s.Equal(int64(1), s.sum("bridge.ProposalExecutions"))
	s.Equal(int64(2), s.sum("bridge.ProposalFailures"))
}

func (s *BridgeMetricsTestSuite) Test_TrackEventPublished() {
	s.metrics.TrackEventPublished(events.DepositEvent)

	s.Equal(int64(1), s.sum("bridge.EventsPublished"))
}

type MeterProviderTestSuite struct {
	suite.Suite
}

func TestRunMeterProviderTestSuite(t *testing.T) {
	suite.Run(t, new(MeterProviderTestSuite))
}

func (s *MeterProviderTestSuite) Test_ExposesInstrumentsToPrometheus() {
	registry := prometheus.NewRegistry()
	provider, err := metrics.NewMeterProvider(context.Background(), "", registry)
	s.Nil(err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	m, err := metrics.NewBridgeMetrics(provider.Meter("test"), 1)
	s.Nil(err)
	m.TrackDeposit(2)

	families, err := registry.Gather()
	s.Nil(err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	s.Contains(names, "bridge_Deposits_total")
}
