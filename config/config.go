// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/sacha-l/sygma-substrate-pallets/config/node"
	"github.com/sacha-l/sygma-substrate-pallets/registry"
	"github.com/sacha-l/sygma-substrate-pallets/types"
)

type Config struct {
	BridgeConfig node.BridgeConfig
	Resources    []registry.Resource
	FeeConfigs   []map[string]interface{}
}

type RawConfig struct {
	BridgeConfig node.RawBridgeConfig     `mapstructure:"bridge" json:"bridge"`
	Resources    []RawResource            `mapstructure:"resources" json:"resources"`
	FeeConfigs   []map[string]interface{} `mapstructure:"fees" json:"fees"`
}

type RawResource struct {
	Asset      string `mapstructure:"asset" json:"asset"`
	ResourceID string `mapstructure:"resourceId" json:"resourceId"`
}

type sharedConfig struct {
	Resources  []RawResource            `json:"resources"`
	FeeConfigs []map[string]interface{} `json:"fees"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of BridgeConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with SYG.
//
// For example, if you want to set Config.BridgeConfig.Storage.Backend this would
// translate to Env variable named SYG_BRIDGE_STORAGE_BACKEND. Resources and fee
// handlers are JSON objects in SYG_RES_1, SYG_RES_2... and SYG_FEE_1, SYG_FEE_2...
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetSharedConfigFromNetwork fetches resources and fee handlers shared by
// every bridge deployment from URL and parses them.
func GetSharedConfigFromNetwork(url string, config *Config) (*Config, error) {
	rawConfig := sharedConfig{}

	resp, err := http.Get(url)
	if err != nil {
		return &Config{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &Config{}, fmt.Errorf("unexpected status fetching shared config: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Config{}, err
	}

	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return &Config{}, err
	}

	resources, err := parseResources(rawConfig.Resources)
	if err != nil {
		return &Config{}, err
	}
	config.Resources = resources
	config.FeeConfigs = rawConfig.FeeConfigs
	return config, nil
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	bridgeConfig, err := node.NewBridgeConfig(rawConfig.BridgeConfig)
	if err != nil {
		return config, err
	}

	if len(rawConfig.Resources) > 0 {
		resources, err := parseResources(rawConfig.Resources)
		if err != nil {
			return config, err
		}
		config.Resources = resources
	}

	feeConfigs := make([]map[string]interface{}, 0)
	for i, fee := range rawConfig.FeeConfigs {
		if i < len(config.FeeConfigs) {
			err := mergo.Merge(&fee, config.FeeConfigs[i])
			if err != nil {
				return config, err
			}
		}

		if fee["type"] == "" || fee["type"] == nil {
			return config, fmt.Errorf("fee 'type' must be provided for every configured fee handler")
		}
		feeConfigs = append(feeConfigs, fee)
	}
	if len(feeConfigs) > 0 {
		config.FeeConfigs = feeConfigs
	}

	config.BridgeConfig = bridgeConfig
	return config, nil
}

func parseResources(rawResources []RawResource) ([]registry.Resource, error) {
	resources := make([]registry.Resource, 0, len(rawResources))
	for _, r := range rawResources {
		if r.Asset == "" {
			return nil, fmt.Errorf("resource 'asset' must be provided for every configured resource")
		}
		resourceID, err := types.HexTo32Bytes(r.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("invalid resource id for %s: %w", r.Asset, err)
		}
		resources = append(resources, registry.Resource{
			Asset:      types.AssetID(r.Asset),
			ResourceID: resourceID,
		})
	}
	return resources, nil
}
