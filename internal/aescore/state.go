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

package aescore

import (
	"github.com/masked-crypto/maskedaes-go/internal/gf8"
	"github.com/masked-crypto/maskedaes-go/internal/maskedsbox"
	"github.com/masked-crypto/maskedaes-go/internal/sbox"
)

// state is one cipher block as a 4x4 byte matrix, column-major:
// s[c][r] holds byte 4*c+r of the block.
type state [4][4]byte

func (s *state) load(b *[BlockSize]byte) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = b[i*4+j]
		}
	}
}

func (s *state) store(b *[BlockSize]byte) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			b[i*4+j] = s[i][j]
		}
	}
}

// xor folds other into s. Used to apply and remove the mask share.
func (s *state) xor(other *state) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] ^= other[i][j]
		}
	}
}

// addRoundKey XORs round key `round` of the schedule into the state.
func (s *state) addRoundKey(round int, sched *Schedule) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] ^= sched.rk[round*BlockSize+i*4+j]
		}
	}
}

func (s *state) invSubBytes() {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j] = sbox.Inverse(s[i][j])
		}
	}
}

// subBytesMasked substitutes every byte of the data share jointly with the
// corresponding byte of the mask share. Both states are rewritten with the
// re-masked output shares.
func subBytesMasked(s, m *state) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s[i][j], m[i][j] = maskedsbox.Substitute(s[i][j], m[i][j])
		}
	}
}

// shiftRows rotates row r of the state left by r positions. Linear, so
// during masked encryption it is applied to each share independently.
func (s *state) shiftRows() {
	s[0][1], s[1][1], s[2][1], s[3][1] = s[1][1], s[2][1], s[3][1], s[0][1]
	s[0][2], s[1][2], s[2][2], s[3][2] = s[2][2], s[3][2], s[0][2], s[1][2]
	s[0][3], s[1][3], s[2][3], s[3][3] = s[3][3], s[0][3], s[1][3], s[2][3]
}

func (s *state) invShiftRows() {
	s[0][1], s[1][1], s[2][1], s[3][1] = s[3][1], s[0][1], s[1][1], s[2][1]
	s[0][2], s[1][2], s[2][2], s[3][2] = s[2][2], s[3][2], s[0][2], s[1][2]
	s[0][3], s[1][3], s[2][3], s[3][3] = s[1][3], s[2][3], s[3][3], s[0][3]
}

// mixColumns replaces each column by the fixed {02,03,01,01} circulant
// matrix product, computed with the xtime trick.
func (s *state) mixColumns() {
	for i := 0; i < 4; i++ {
		a0 := s[i][0]
		all := s[i][0] ^ s[i][1] ^ s[i][2] ^ s[i][3]
		s[i][0] ^= gf8.Double(a0^s[i][1]) ^ all
		s[i][1] ^= gf8.Double(s[i][1]^s[i][2]) ^ all
		s[i][2] ^= gf8.Double(s[i][2]^s[i][3]) ^ all
		s[i][3] ^= gf8.Double(s[i][3]^a0) ^ all
	}
}

// invMixColumns applies the {0e,0b,0d,09} circulant inverse matrix.
func (s *state) invMixColumns() {
	for i := 0; i < 4; i++ {
		a, b, c, d := s[i][0], s[i][1], s[i][2], s[i][3]
		s[i][0] = gf8.Mul(a, 0x0e) ^ gf8.Mul(b, 0x0b) ^ gf8.Mul(c, 0x0d) ^ gf8.Mul(d, 0x09)
		s[i][1] = gf8.Mul(a, 0x09) ^ gf8.Mul(b, 0x0e) ^ gf8.Mul(c, 0x0b) ^ gf8.Mul(d, 0x0d)
		s[i][2] = gf8.Mul(a, 0x0d) ^ gf8.Mul(b, 0x09) ^ gf8.Mul(c, 0x0e) ^ gf8.Mul(d, 0x0b)
		s[i][3] = gf8.Mul(a, 0x0b) ^ gf8.Mul(b, 0x0d) ^ gf8.Mul(c, 0x09) ^ gf8.Mul(d, 0x0e)
	}
}
