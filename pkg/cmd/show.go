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
	"github.com/consensys/go-grid/pkg/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// showCmd renders a grid file to the terminal.
var showCmd = &cobra.Command{
	Use:   "show [flags] grid_file",
	Short: "render a grid file to the terminal.",
	Long: `Render a grid file to the terminal, optionally restricted to a
	rectangular region given as --region x,y,w,h.  When attached to a
	terminal, output wider than the screen is clipped.`,
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
		var shown grid.Grid[rune] = buf
		// Restrict to the requested region (if any)
		if region := GetString(cmd, "region"); region != "" {
			x, y, w, h, err := parseRect(region)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			//
			view, ok := grid.TryView[rune](buf, x, y, w, h)
			if !ok {
				fmt.Printf("region %s does not fit within %dx%d grid\n", region, buf.Width(), buf.Height())
				os.Exit(1)
			}
			//
			shown = view
		}
		//
		width, height := shown.Width(), shown.Height()
		// Clip to the terminal when attached to one
		if tw, th, err := termio.TerminalSize(); err == nil {
			log.Debugf("terminal is %dx%d", tw, th)
			//
			width, height = min(width, tw), min(height, th)
		}
		//
		canvas := termio.NewCanvas(width, height)
		canvas.WriteGrid(0, 0, shown, termio.NewAnsiEscape())
		//
		if err := canvas.Render(os.Stdout); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().String("region", "", "region to render, given as x,y,w,h")
}
