// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/sacha-l/sygma-substrate-pallets/bridge"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

const (
	LevelDBBackend = "leveldb"
	RedisBackend   = "redis"
	MemoryBackend  = "memory"
)

type BridgeConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	DomainID                  types.DomainID
	ChainID                   int64
	VerifyingContract         string
	BridgeVersion             string
	FeeReserveAccount         types.AccountID
	TransferReserveAccount    types.AccountID
	Admins                    []types.AccountID
	JWTSecret                 string
	TokenTTL                  time.Duration
	BatchPolicy               bridge.BatchPolicy
	APIPort                   uint16
	HealthPort                uint16
	RelayInterval             time.Duration
	Storage                   StorageConfig
	NATS                      NATSConfig
}

type StorageConfig struct {
	Backend  string
	Path     string
	RedisURL string
}

type NATSConfig struct {
	URL     string
	Stream  string
	Prefix  string
	Timeout time.Duration
}

type RawBridgeConfig struct {
	OpenTelemetryCollectorURL string           `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string           `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string           `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	DomainID                  string           `mapstructure:"DomainID" json:"domainId"`
	ChainID                   string           `mapstructure:"ChainID" json:"chainId"`
	VerifyingContract         string           `mapstructure:"VerifyingContract" json:"verifyingContract"`
	BridgeVersion             string           `mapstructure:"BridgeVersion" json:"bridgeVersion" default:"3.1.0"`
	FeeReserveAccount         string           `mapstructure:"FeeReserveAccount" json:"feeReserveAccount"`
	TransferReserveAccount    string           `mapstructure:"TransferReserveAccount" json:"transferReserveAccount"`
	Admins                    string           `mapstructure:"Admins" json:"admins"`
	JWTSecret                 string           `mapstructure:"JWTSecret" json:"jwtSecret"`
	TokenTTL                  string           `mapstructure:"TokenTTL" json:"tokenTTL" default:"24h"`
	BatchPolicy               string           `mapstructure:"BatchPolicy" json:"batchPolicy" default:"partial"`
	APIPort                   string           `mapstructure:"APIPort" json:"apiPort" default:"8080"`
	HealthPort                string           `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	RelayInterval             string           `mapstructure:"RelayInterval" json:"relayInterval" default:"5s"`
	Storage                   RawStorageConfig `mapstructure:"Storage" json:"storage"`
	NATS                      RawNATSConfig    `mapstructure:"NATS" json:"nats"`
}

type RawStorageConfig struct {
	Backend  string `mapstructure:"Backend" json:"backend" default:"leveldb"`
	Path     string `mapstructure:"Path" json:"path" default:"./lvldbdata"`
	RedisURL string `mapstructure:"RedisURL" json:"redisURL"`
}

type RawNATSConfig struct {
	URL     string `mapstructure:"URL" json:"url"`
	Stream  string `mapstructure:"Stream" json:"stream" default:"SYGMA"`
	Prefix  string `mapstructure:"Prefix" json:"prefix" default:"sygma.events"`
	Timeout string `mapstructure:"Timeout" json:"timeout" default:"5s"`
}

func (c *RawBridgeConfig) Validate() error {
	if c.DomainID == "" {
		return fmt.Errorf("required field bridge.DomainID empty")
	}
	if c.ChainID == "" {
		return fmt.Errorf("required field bridge.ChainID empty")
	}
	if !common.IsHexAddress(c.VerifyingContract) {
		return fmt.Errorf("invalid verifying contract address: %s", c.VerifyingContract)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("required field bridge.JWTSecret empty")
	}

	switch bridge.BatchPolicy(c.BatchPolicy) {
	case bridge.PartialBatch, bridge.AtomicBatch:
	default:
		return fmt.Errorf("unknown batch policy: %s", c.BatchPolicy)
	}

	switch c.Storage.Backend {
	case LevelDBBackend, MemoryBackend:
	case RedisBackend:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("redis storage requires bridge.Storage.RedisURL")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Storage.Backend)
	}
	return nil
}

// NewBridgeConfig parses RawBridgeConfig into BridgeConfig
func NewBridgeConfig(rawConfig RawBridgeConfig) (BridgeConfig, error) {
	config := BridgeConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel
	config.LogFile = rawConfig.LogFile
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL

	domainID, err := strconv.ParseUint(rawConfig.DomainID, 10, 8)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("unable to parse domain id: %w", err)
	}
	config.DomainID = types.DomainID(domainID)

	config.ChainID, err = strconv.ParseInt(rawConfig.ChainID, 10, 64)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("unable to parse chain id: %w", err)
	}
	config.VerifyingContract = common.HexToAddress(rawConfig.VerifyingContract).Hex()
	config.BridgeVersion = rawConfig.BridgeVersion

	config.FeeReserveAccount, err = types.HexTo32Bytes(rawConfig.FeeReserveAccount)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("invalid fee reserve account: %w", err)
	}
	config.TransferReserveAccount, err = types.HexTo32Bytes(rawConfig.TransferReserveAccount)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("invalid transfer reserve account: %w", err)
	}

	for _, admin := range strings.Split(rawConfig.Admins, ",") {
		admin = strings.TrimSpace(admin)
		if admin == "" {
			continue
		}
		account, err := types.HexTo32Bytes(admin)
		if err != nil {
			return BridgeConfig{}, fmt.Errorf("invalid admin account %s: %w", admin, err)
		}
		config.Admins = append(config.Admins, account)
	}

	config.JWTSecret = rawConfig.JWTSecret
	config.TokenTTL, err = time.ParseDuration(rawConfig.TokenTTL)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("unable to parse token ttl: %w", err)
	}
	config.BatchPolicy = bridge.BatchPolicy(rawConfig.BatchPolicy)

	apiPort, err := strconv.ParseUint(rawConfig.APIPort, 10, 16)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("unable to parse api port: %w", err)
	}
	config.APIPort = uint16(apiPort)

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("unable to parse health port: %w", err)
	}
	config.HealthPort = uint16(healthPort)

	config.RelayInterval, err = time.ParseDuration(rawConfig.RelayInterval)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("unable to parse relay interval: %w", err)
	}
	if config.RelayInterval <= 0 {
		return BridgeConfig{}, fmt.Errorf("relay interval must be positive, got %s", config.RelayInterval)
	}

	config.Storage = StorageConfig{
		Backend:  rawConfig.Storage.Backend,
		Path:     rawConfig.Storage.Path,
		RedisURL: rawConfig.Storage.RedisURL,
	}

	natsTimeout, err := time.ParseDuration(rawConfig.NATS.Timeout)
	if err != nil {
		return BridgeConfig{}, fmt.Errorf("unable to parse nats timeout: %w", err)
	}
	config.NATS = NATSConfig{
		URL:     rawConfig.NATS.URL,
		Stream:  rawConfig.NATS.Stream,
		Prefix:  rawConfig.NATS.Prefix,
		Timeout: natsTimeout,
	}

	return config, nil
}
