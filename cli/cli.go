// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sacha-l/sygma-substrate-pallets/app"
	"github.com/sacha-l/sygma-substrate-pallets/cli/keygen"
	"github.com/sacha-l/sygma-substrate-pallets/cli/utils"
)

var (
	rootCMD = &cobra.Command{
		Use: "",
	}
)

func init() {
	BindFlags(rootCMD)
}

// BindFlags registers the persistent flags shared by every command and binds
// them to viper
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(app.ConfigFlagName, ".", "Path to JSON configuration file, or env to read it from SYG_ variables")
	_ = viper.BindPFlag(app.ConfigFlagName, rootCMD.PersistentFlags().Lookup(app.ConfigFlagName))

	rootCMD.PersistentFlags().String(app.ConfigURLFlagName, "", "URL of the shared resource and fee configuration")
	_ = viper.BindPFlag(app.ConfigURLFlagName, rootCMD.PersistentFlags().Lookup(app.ConfigURLFlagName))

	rootCMD.PersistentFlags().String(app.DBFlagName, "", "Store path, overrides the configured leveldb path")
	_ = viper.BindPFlag(app.DBFlagName, rootCMD.PersistentFlags().Lookup(app.DBFlagName))
}

func Execute() {
	rootCMD.AddCommand(runCMD, mpcKeyCMD, signCMD, tokenCMD, keygen.KeygenCLI, utils.UtilsCLI)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
