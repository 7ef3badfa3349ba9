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
	"sort"

	"github.com/consensys/go-grid/pkg/grid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// infoCmd summarises the contents of a grid file.
var infoCmd = &cobra.Command{
	Use:   "info [flags] grid_file",
	Short: "summarise the contents of a grid file.",
	Long: `Report the dimensions of a grid file, along with the number of
	cells and the frequency of each distinct character.`,
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
		buf, err := readGridFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		var (
			iter   = grid.Iter[rune](buf)
			counts = make(map[rune]uint)
		)
		//
		fmt.Printf("%s: %dx%d grid (%d cells)\n", args[0], buf.Width(), buf.Height(), iter.Len())
		// Tally character frequencies
		for iter.HasNext() {
			char, _, _ := iter.Next()
			counts[char]++
		}
		// Sort characters for deterministic output
		chars := make([]rune, 0, len(counts))
		for char := range counts {
			chars = append(chars, char)
		}
		//
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
		//
		for _, char := range chars {
			fmt.Printf("%q: %d\n", char, counts[char])
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
