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
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type settings struct {
	API struct {
		Key       string `toml:"key"`
		RateLimit int    `toml:"rate_limit"`
	} `toml:"api"`
	Output struct {
		Dir string `toml:"dir"`
	} `toml:"output"`
}

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Gather API credentials and output settings and save them to a config file",
	Run: func(cmd *cobra.Command, args []string) {
		mySettings := settings{}
		mySettings.API.RateLimit = 60
		mySettings.Output.Dir = "Outputfiles"

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("What is your indianapi.in API key?").
					Value(&mySettings.API.Key).
					Validate(func(key string) error {
						if key == "" {
							return errors.New("an API key is required")
						}
						return nil
					}),
			),

			huh.NewGroup(
				huh.NewInput().
					Title("Where should output workbooks be written?").
					Value(&mySettings.Output.Dir),
			),
		)

		err := form.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("error gathering settings")
		}

		// save settings to config file
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Err(err).Msg("could not determine user home directory")
		}

		configFN := filepath.Join(home, ".stocksheet.toml")
		log.Info().Str("ConfigFile", configFN).Msg("Saving settings to config file")
		configData, err := toml.Marshal(mySettings)
		if err != nil {
			log.Fatal().Err(err).Msg("could not marshal configuration data")
		}

		err = os.WriteFile(configFN, configData, 0600)
		if err != nil {
			log.Fatal().Err(err).Str("FileName", configFN).Msg("could not save configuration to file")
		}

		log.Info().Msg("stocksheet has been initialized")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
