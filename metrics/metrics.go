// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"

	"github.com/sacha-l/sygma-substrate-pallets/bridge"
	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type BridgeMetrics struct {
	*HostMetrics

	depositCounter   api.Int64Counter
	executionCounter api.Int64Counter
	failureCounter   api.Int64Counter
	publishedCounter api.Int64Counter

	attributes []attribute.KeyValue
}

// NewBridgeMetrics creates the bridge instruments on meter. Every measurement
// is labeled with the local domain id.
func NewBridgeMetrics(meter api.Meter, domainID types.DomainID) (*BridgeMetrics, error) {
	attributes := []attribute.KeyValue{attribute.Int("domain", int(domainID))}

	hostMetrics, err := NewHostMetrics(meter, api.WithAttributes(attributes...))
	if err != nil {
		return nil, err
	}

	depositCounter, err := meter.Int64Counter(
		"bridge.Deposits",
		api.WithDescription("Number of accepted deposits per destination domain"),
	)
	if err != nil {
		return nil, err
	}
	executionCounter, err := meter.Int64Counter(
		"bridge.ProposalExecutions",
		api.WithDescription("Number of executed proposals per origin domain"),
	)
	if err != nil {
		return nil, err
	}
	failureCounter, err := meter.Int64Counter(
		"bridge.ProposalFailures",
		api.WithDescription("Number of rejected proposals per origin domain and error kind"),
	)
	if err != nil {
		return nil, err
	}
	publishedCounter, err := meter.Int64Counter(
		"bridge.EventsPublished",
		api.WithDescription("Number of outbox events forwarded to the publisher"),
	)
	if err != nil {
		return nil, err
	}

	return &BridgeMetrics{
		HostMetrics:      hostMetrics,
		depositCounter:   depositCounter,
		executionCounter: executionCounter,
		failureCounter:   failureCounter,
		publishedCounter: publishedCounter,
		attributes:       attributes,
	}, nil
}

func (m *BridgeMetrics) TrackDeposit(destination types.DomainID) {
	m.depositCounter.Add(context.Background(), 1, m.with(attribute.Int("destination", int(destination))))
}

func (m *BridgeMetrics) TrackProposalExecution(origin types.DomainID) {
	m.executionCounter.Add(context.Background(), 1, m.with(attribute.Int("origin", int(origin))))
}

func (m *BridgeMetrics) TrackProposalFailure(origin types.DomainID, kind bridge.ErrorKind) {
	m.failureCounter.Add(
		context.Background(),
		1,
		m.with(attribute.Int("origin", int(origin)), attribute.String("kind", kind.String())),
	)
}

func (m *BridgeMetrics) TrackEventPublished(name events.Name) {
	m.publishedCounter.Add(context.Background(), 1, m.with(attribute.String("event", string(name))))
}

func (m *BridgeMetrics) with(kv ...attribute.KeyValue) api.MeasurementOption {
	attrs := make([]attribute.KeyValue, 0, len(m.attributes)+len(kv))
	attrs = append(attrs, m.attributes...)
	attrs = append(attrs, kv...)
	return api.WithAttributes(attrs...)
}
