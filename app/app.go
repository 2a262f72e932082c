// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/viper"

	"github.com/sacha-l/sygma-substrate-pallets/api"
	"github.com/sacha-l/sygma-substrate-pallets/auth"
	"github.com/sacha-l/sygma-substrate-pallets/bridge"
	"github.com/sacha-l/sygma-substrate-pallets/config"
	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/health"
	"github.com/sacha-l/sygma-substrate-pallets/logger"
	"github.com/sacha-l/sygma-substrate-pallets/metrics"
	"github.com/sacha-l/sygma-substrate-pallets/mpc"
	"github.com/sacha-l/sygma-substrate-pallets/registry"
	"github.com/sacha-l/sygma-substrate-pallets/transactor"
)

const (
	ConfigFlagName    = "config"
	ConfigURLFlagName = "config-url"
	DBFlagName        = "db"

	shutdownTimeout = 10 * time.Second
)

func Run() error {
	var err error

	configFlag := viper.GetString(ConfigFlagName)
	configURL := viper.GetString(ConfigURLFlagName)

	configuration := &config.Config{}
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL, configuration)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}
	bridgeConfig := configuration.BridgeConfig

	var logWriters []io.Writer
	if bridgeConfig.LogFile != "" {
		logFile, err := logger.OpenLogFile(bridgeConfig.LogFile)
		panicOnError(err)
		defer logFile.Close()
		logWriters = append(logWriters, logFile)
	}
	logger.ConfigureLogger(bridgeConfig.LogLevel, os.Stdout, logWriters...)

	log.Info().Msg("Successfully loaded configuration")

	if dbPath := viper.GetString(DBFlagName); dbPath != "" {
		bridgeConfig.Storage.Path = dbPath
	}
	db, closeDB, err := openStore(bridgeConfig.Storage)
	panicOnError(err)
	defer func() {
		if err := closeDB(); err != nil {
			log.Error().Err(err).Msg("Failed closing store")
		}
	}()
	log.Info().Str("backend", bridgeConfig.Storage.Backend).Msg("Successfully opened store")

	resources, err := registry.NewResourceRegistry(configuration.Resources)
	panicOnError(err)
	feeRouter, err := newFeeRouter(configuration.FeeConfigs)
	panicOnError(err)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)
	defer stop()

	meterProvider, err := metrics.NewMeterProvider(ctx, bridgeConfig.OpenTelemetryCollectorURL, prometheus.DefaultRegisterer)
	panicOnError(err)
	defer func() {
		_ = meterProvider.Shutdown(context.Background())
	}()
	bridgeMetrics, err := metrics.NewBridgeMetrics(meterProvider.Meter("sygma-bridge"), bridgeConfig.DomainID)
	panicOnError(err)

	verifier := mpc.NewVerifier(mpc.Domain{
		ChainID:           bridgeConfig.ChainID,
		VerifyingContract: bridgeConfig.VerifyingContract,
		BridgeVersion:     bridgeConfig.BridgeVersion,
	})
	b := bridge.NewBridge(
		db,
		resources,
		feeRouter,
		transactor.NewBalanceTransactor(),
		verifier,
		auth.NewAuthorizer(bridgeConfig.Admins),
		bridgeMetrics,
		bridge.Config{
			FeeReserveAccount:      bridgeConfig.FeeReserveAccount,
			TransferReserveAccount: bridgeConfig.TransferReserveAccount,
			BatchPolicy:            bridgeConfig.BatchPolicy,
		},
	)

	publisher, closePublisher, err := newPublisher(bridgeConfig.NATS)
	panicOnError(err)
	defer closePublisher()
	relay := events.NewRelay(db, publisher, bridgeMetrics, bridgeConfig.RelayInterval)

	tokens := auth.NewTokenIssuer(bridgeConfig.JWTSecret, bridgeConfig.TokenTTL)
	apiServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", bridgeConfig.APIPort),
		Handler:           api.NewServer(b, tokens).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	healthServer := health.NewHealthServer(bridgeConfig.HealthPort, func() error {
		_, err := events.Count(db)
		return err
	}, prometheus.DefaultGatherer)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(relay.Start)
	p.Go(serve(apiServer))
	p.Go(serve(healthServer))

	log.Info().
		Uint8("domainID", bridgeConfig.DomainID).
		Uint16("apiPort", bridgeConfig.APIPort).
		Uint16("healthPort", bridgeConfig.HealthPort).
		Msg("Started bridge")

	err = p.Wait()
	if err != nil {
		log.Error().Err(err).Msg("Bridge stopped with error")
		return err
	}
	log.Info().Msg("Terminated bridge")
	return nil
}

// serve runs srv until ctx is cancelled and then shuts it down gracefully
func serve(srv *http.Server) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		errChn := make(chan error, 1)
		go func() {
			errChn <- srv.ListenAndServe()
		}()

		select {
		case err := <-errChn:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server on %s failed: %w", srv.Addr, err)
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
