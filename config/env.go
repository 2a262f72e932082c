// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type wrapper struct {
	Config RawConfig `json:"syg"`
}

const EnvPrefix = "SYG"

func loadFromEnv() (RawConfig, error) {
	// load bridge config
	jsonBridgeConfig, err := loadENVToJsonStructure()
	if err != nil {
		return RawConfig{}, err
	}
	c := &wrapper{}
	err = json.Unmarshal(jsonBridgeConfig, c)
	if err != nil {
		return RawConfig{}, err
	}
	rawConfig := c.Config

	// load resources
	index := 1
	for {
		rawResource := os.Getenv(fmt.Sprintf("%s_RES_%d", EnvPrefix, index))
		if rawResource == "" {
			break
		}
		var r RawResource
		err = json.Unmarshal([]byte(rawResource), &r)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.Resources = append(rawConfig.Resources, r)
		index++
	}

	// load fee handlers
	index = 1
	for {
		rawFeeConfig := os.Getenv(fmt.Sprintf("%s_FEE_%d", EnvPrefix, index))
		if rawFeeConfig == "" {
			break
		}
		var fc map[string]interface{}
		err = json.Unmarshal([]byte(rawFeeConfig), &fc)
		if err != nil {
			return RawConfig{}, err
		}
		rawConfig.FeeConfigs = append(rawConfig.FeeConfigs, fc)
		index++
	}

	return rawConfig, nil
}

func loadENVToJsonStructure() ([]byte, error) {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, EnvPrefix+"_BRIDGE_") {
			pair := strings.SplitN(e, "=", 2)
			indexes := strings.Split(pair[0], "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return json.MarshalIndent(structure, "", "    ")
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
