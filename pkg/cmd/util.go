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
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/consensys/go-grid/pkg/grid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Get an expected string flag, or exit if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Get an expected uint flag, or exit if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Parse a grid file using a reader based on the extension of the filename.
// Text files hold one row per line, whilst gob files hold a binary encoding.
func readGridFile(filename string) (*grid.Buffer[rune], error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	// Check file extension
	switch ext := path.Ext(filename); ext {
	case ".gob":
		return decodeGrid(filename, bytes)
	default:
		return parseTextGrid(filename, string(bytes))
	}
}

// Write a grid file using a format based on the extension of the filename.
func writeGridFile(filename string, buf *grid.Buffer[rune]) error {
	var (
		file, err = os.Create(filename)
	)
	//
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	//
	defer file.Close()
	// Check file extension
	if path.Ext(filename) == ".gob" {
		if err := gob.NewEncoder(file).Encode(buf); err != nil {
			return errors.Wrapf(err, "encoding %s", filename)
		}
		//
		return nil
	}
	// Default to text, one row per line
	for rows := grid.Rows[rune](buf); rows.HasNext(); {
		line := string(rows.Next().Slice())
		//
		if _, err := fmt.Fprintln(file, line); err != nil {
			return errors.Wrapf(err, "writing %s", filename)
		}
	}
	//
	return nil
}

func decodeGrid(filename string, data []byte) (*grid.Buffer[rune], error) {
	var buf grid.Buffer[rune]
	//
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&buf); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", filename)
	}
	//
	return &buf, nil
}

// Parse a text grid, where every line must have the same number of
// characters.
func parseTextGrid(filename string, text string) (*grid.Buffer[rune], error) {
	var (
		lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		rows  = make([][]rune, len(lines))
	)
	//
	for i, line := range lines {
		rows[i] = []rune(line)
		//
		if len(rows[i]) != len(rows[0]) {
			return nil, errors.Errorf("%s:%d: ragged line (%d characters, expected %d)",
				filename, i+1, len(rows[i]), len(rows[0]))
		}
	}
	//
	buf := grid.NewBufferWith(uint(len(rows[0])), uint(len(rows)), func(x uint, y uint) rune {
		return rows[y][x]
	})
	//
	return buf, nil
}

// Parse a rectangle given as "x,y,w,h".
func parseRect(arg string) (x uint, y uint, w uint, h uint, err error) {
	var (
		parts  = strings.Split(arg, ",")
		fields [4]uint
	)
	//
	if len(parts) != 4 {
		return 0, 0, 0, 0, errors.Errorf("malformed rectangle %q (expected x,y,w,h)", arg)
	}
	//
	for i, part := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return 0, 0, 0, 0, errors.Errorf("malformed rectangle %q (expected x,y,w,h)", arg)
		}
		//
		fields[i] = uint(n)
	}
	//
	return fields[0], fields[1], fields[2], fields[3], nil
}
