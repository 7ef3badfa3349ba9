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
package grid

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// GobEncode a buffer grid as its dimensions followed by its flat row-major
// store.
func (p *Buffer[T]) GobEncode() (data []byte, err error) {
	var (
		buffer     bytes.Buffer
		gobEncoder = gob.NewEncoder(&buffer)
	)
	//
	if err := gobEncoder.Encode(&p.width); err != nil {
		return nil, err
	}
	//
	if err := gobEncoder.Encode(&p.height); err != nil {
		return nil, err
	}
	//
	if err := gobEncoder.Encode(&p.store); err != nil {
		return nil, err
	}
	// Done
	return buffer.Bytes(), nil
}

// GobDecode a previously encoded buffer grid, checking that the decoded
// store matches the decoded dimensions.
func (p *Buffer[T]) GobDecode(data []byte) error {
	var (
		buffer     = bytes.NewBuffer(data)
		gobDecoder = gob.NewDecoder(buffer)
	)
	//
	if err := gobDecoder.Decode(&p.width); err != nil {
		return err
	}
	//
	if err := gobDecoder.Decode(&p.height); err != nil {
		return err
	}
	//
	if err := gobDecoder.Decode(&p.store); err != nil {
		return err
	}
	// Sanity check decoded store covers decoded dimensions, without trusting
	// width*height not to overflow.
	if p.height != 0 && uint(len(p.store))/p.height != p.width {
		return fmt.Errorf("malformed grid (store has %d cells for %dx%d grid)",
			len(p.store), p.width, p.height)
	} else if uint(len(p.store)) != p.width*p.height {
		return fmt.Errorf("malformed grid (store has %d cells for %dx%d grid)",
			len(p.store), p.width, p.height)
	}
	// Done
	return nil
}
