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
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/quantfill/stocksheet/data"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// stattypesCmd represents the stattypes command
var stattypesCmd = &cobra.Command{
	Use:   "stattypes",
	Short: "List the fundamental stat types available to the stats command",
	Run: func(cmd *cobra.Command, args []string) {
		r, _ := glamour.NewTermRenderer(
			// detect background color and pick either the default dark or light theme
			glamour.WithAutoStyle(),
			// wrap output at specific width (default is 80)
			glamour.WithWordWrap(80),
		)

		builder := strings.Builder{}
		builder.WriteString("# Fundamental Stat Types\n")

		for _, key := range data.AllStatTypeKeys() {
			statType := data.StatTypes[key]
			builder.WriteString(fmt.Sprintf("\n## %s (`%s`)\n", statType.Name, statType.Key))
			builder.WriteString(statType.Description)
			builder.WriteString("\n")
		}

		out, err := r.Render(builder.String())
		if err != nil {
			log.Fatal().Err(err).Msg("could not render stat type document")
		}

		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(stattypesCmd)
}
