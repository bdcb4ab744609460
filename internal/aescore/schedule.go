// Copyright 2024 The maskedaes-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package aescore implements the AES-128 block transform with a boolean
// masking scheme on the encryption path: the state is split into two
// shares at block entry, the substitution layer is evaluated jointly on
// both shares, the linear layers run on each share independently, and the
// shares are recombined at block exit. The decryption path and the key
// schedule are unmasked, matching the scheme this package derives from;
// both are known limitations, not oversights.
package aescore

import (
	"fmt"

	"github.com/masked-crypto/maskedaes-go/internal/sbox"
)

const (
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
	// KeySize is the AES-128 key size in bytes.
	KeySize = 16
	// NumRounds is the number of rounds for AES-128.
	NumRounds = 10

	scheduleSize = (NumRounds + 1) * BlockSize
)

// Schedule is an expanded AES-128 round-key schedule. It is immutable
// after construction and may be shared freely across goroutines and
// reused for any number of blocks.
type Schedule struct {
	rk [scheduleSize]byte
}

// NewSchedule expands a 16-byte key into the round-key schedule.
func NewSchedule(key []byte) (*Schedule, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("aescore: invalid key size: got %d, want %d", len(key), KeySize)
	}
	s := new(Schedule)
	copy(s.rk[:KeySize], key)

	// Each later word is the word four back XORed with the previous word,
	// which on every fourth word is first rotated, substituted, and mixed
	// with the round constant.
	var w [4]byte
	for i := 4; i < scheduleSize/4; i++ {
		copy(w[:], s.rk[(i-1)*4:i*4])
		if i%4 == 0 {
			w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
			for j := range w {
				w[j] = sbox.Forward(w[j])
			}
			w[0] ^= sbox.Rcon(i / 4)
		}
		for j := range w {
			s.rk[i*4+j] = s.rk[(i-4)*4+j] ^ w[j]
		}
	}
	return s, nil
}
