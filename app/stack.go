// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sacha-l/sygma-substrate-pallets/config"
	"github.com/sacha-l/sygma-substrate-pallets/config/node"
	"github.com/sacha-l/sygma-substrate-pallets/events"
	"github.com/sacha-l/sygma-substrate-pallets/fee"
	"github.com/sacha-l/sygma-substrate-pallets/lvldb"
	"github.com/sacha-l/sygma-substrate-pallets/redisdb"
	"github.com/sacha-l/sygma-substrate-pallets/store"
)

const (
	redisKeyPrefix     = "sygma:"
	lvldbRetryInterval = 10 * time.Second
	lvldbMaxRetries    = 30
)

// openStore opens the configured storage backend and returns it together
// with its close function
func openStore(cfg node.StorageConfig) (store.KeyValueReaderWriter, func() error, error) {
	switch cfg.Backend {
	case node.MemoryBackend:
		return store.NewMemoryDB(), func() error { return nil }, nil
	case node.RedisBackend:
		db, err := redisdb.NewRedisDB(cfg.RedisURL, redisKeyPrefix)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case node.LevelDBBackend:
		// the previous instance may still hold the file lock while it shuts down
		var err error
		for i := 0; i < lvldbMaxRetries; i++ {
			var db *lvldb.LVLDB
			db, err = lvldb.NewLvlDB(cfg.Path)
			if err == nil {
				return db, db.Close, nil
			}
			log.Error().Err(err).Msgf("Unable to open store at %s, retry in %s", cfg.Path, lvldbRetryInterval)
			time.Sleep(lvldbRetryInterval)
		}
		return nil, nil, err
	default:
		return nil, nil, fmt.Errorf("storage backend '%s' not recognized", cfg.Backend)
	}
}

func newFeeRouter(feeConfigs []map[string]interface{}) (*fee.Router, error) {
	router := fee.NewRouter()
	for _, feeConfig := range feeConfigs {
		fc, err := config.NewFeeConfig(feeConfig)
		if err != nil {
			return nil, err
		}

		switch fc.Type {
		case config.BasicFee:
			router.RegisterFeeHandler(fc.DomainID, fc.Asset, fee.NewBasicFeeHandler(fc.Fee))
		case config.PercentageFee:
			router.RegisterFeeHandler(fc.DomainID, fc.Asset, fee.NewPercentageFeeHandler(fc.FeeRate, fc.LowerBound, fc.UpperBound))
		default:
			return nil, fmt.Errorf("fee handler type '%s' not recognized", fc.Type)
		}
		log.Info().Uint8("domainID", fc.DomainID).Str("asset", string(fc.Asset)).Msgf("Registered %s fee handler", fc.Type)
	}
	return router, nil
}

func newPublisher(cfg node.NATSConfig) (events.Publisher, func(), error) {
	if cfg.URL == "" {
		return events.NewLogPublisher(), func() {}, nil
	}

	publisher, err := events.NewNATSPublisher(cfg.URL, cfg.Stream, cfg.Prefix, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("stream", cfg.Stream).Msg("Publishing bridge events to NATS")
	return publisher, publisher.Close, nil
}
