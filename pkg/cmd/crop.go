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

// cropCmd extracts a rectangular region of a grid file.
var cropCmd = &cobra.Command{
	Use:   "crop [flags] input_file output_file",
	Short: "extract a rectangular region of a grid file.",
	Long: `Extract the region given as --region x,y,w,h from the input grid
	and write it to the output file.  Input and output formats are chosen
	independently from the file extensions.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		x, y, w, h, err := parseRect(GetString(cmd, "region"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		buf, err := readGridFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		view, ok := grid.TryView[rune](buf, x, y, w, h)
		if !ok {
			fmt.Printf("region %d,%d,%d,%d does not fit within %dx%d grid\n", x, y, w, h, buf.Width(), buf.Height())
			os.Exit(1)
		}
		//
		log.Debugf("cropping %dx%d grid to %dx%d", buf.Width(), buf.Height(), w, h)
		// Snapshot the region into its own grid
		cropped := grid.NewBufferFrom[rune](view)
		//
		if err := writeGridFile(args[1], cropped); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(cropCmd)
	cropCmd.Flags().String("region", "", "region to extract, given as x,y,w,h")
}
