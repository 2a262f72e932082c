// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelprometheus "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "sygma-bridge"

// NewMeterProvider creates a meter provider exposing every instrument through
// the prometheus registerer. When collectorURL is set metrics are also pushed
// to the OpenTelemetry collector listening on that host:port.
func NewMeterProvider(ctx context.Context, collectorURL string, registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	promExporter, err := otelprometheus.New(otelprometheus.WithRegisterer(registerer))
	if err != nil {
		return nil, err
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(promExporter)}

	if collectorURL != "" {
		otlpExporter, err := otlpmetrichttp.New(
			ctx,
			otlpmetrichttp.WithEndpoint(collectorURL),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(otlpExporter)))
	}

	return sdkmetric.NewMeterProvider(opts...), nil
}
