// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/consensys/go-grid/pkg/grid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// generateCmd writes out a freshly constructed grid.
var generateCmd = &cobra.Command{
	Use:   "generate [flags] grid_file",
	Short: "generate a grid and write it to a file.",
	Long: `Generate a grid of the given dimensions and write it to a file.
	The format is chosen from the file extension, with ".gob" selecting
	the binary encoding and anything else plain text.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			width   = GetUint(cmd, "width")
			height  = GetUint(cmd, "height")
			pattern = []rune(GetString(cmd, "pattern"))
		)
		//
		if len(pattern) == 0 {
			fmt.Println("pattern cannot be empty")
			os.Exit(1)
		}
		// Tile the pattern across the grid in row-major order
		buf := grid.NewBufferWith(width, height, func(x uint, y uint) rune {
			return pattern[(y*width+x)%uint(len(pattern))]
		})
		//
		log.Debugf("generated %dx%d grid", width, height)
		//
		if err := writeGridFile(args[0], buf); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint("width", 8, "width of the generated grid")
	generateCmd.Flags().Uint("height", 8, "height of the generated grid")
	generateCmd.Flags().String("pattern", ".", "characters tiled across the grid")
}
