// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stocksheet",
	Short: "stocksheet exports historical stock prices and fundamentals to spreadsheets",
	Long: `stocksheet is a command line utility that retrieves historical price data
and fundamental statistics for stock ticker symbols from the indianapi.in
stock API and materializes the results into xlsx workbooks.

Three workflows are available:

	* prices -- one consolidated sheet of price series per symbol, outer
	  joined on date
	* stats -- one long-form sheet of (Symbol, Date, Attribute, Value)
	  records across all fundamental stat types
	* stats --pivot -- the same sheet rewritten wide, one column per
	  attribute, after duplicate readings are removed and conflicting ones
	  averaged

Long-form sheets can additionally be exported to CSV or parquet with the
export sub-command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stocksheet.toml)")
	rootCmd.PersistentFlags().String("apiKey", "", "indianapi.in API key")
	rootCmd.PersistentFlags().String("outputDir", "Outputfiles", "directory artifacts are written to")
	rootCmd.PersistentFlags().Int("rateLimit", 60, "maximum API requests per minute")

	if err := viper.BindPFlag("api.key", rootCmd.PersistentFlags().Lookup("apiKey")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for apiKey failed")
	}
	if err := viper.BindPFlag("output.dir", rootCmd.PersistentFlags().Lookup("outputDir")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for outputDir failed")
	}
	if err := viper.BindPFlag("api.rate_limit", rootCmd.PersistentFlags().Lookup("rateLimit")); err != nil {
		log.Panic().Err(err).Msg("BindPFlag for rateLimit failed")
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".stocksheet" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("toml")
		viper.SetConfigName(".stocksheet")
	}

	viper.SetEnvPrefix("stocksheet")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("ConfigFN", viper.ConfigFileUsed()).Msg("Using config file")
	}
}
