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

package maskedsbox_test

import (
	"testing"

	"github.com/masked-crypto/maskedaes-go/internal/maskedsbox"
	"github.com/masked-crypto/maskedaes-go/internal/random"
	"github.com/masked-crypto/maskedaes-go/internal/sbox"
)

func TestSecureANDAllBitCombinations(t *testing.T) {
	// Enumerate every per-lane share combination, replicated across all 8
	// lanes, under several correction bytes. The identity must hold for
	// each independently of r.
	share := func(bit int) byte {
		if bit != 0 {
			return 0xff
		}
		return 0x00
	}
	for _, r := range []byte{0x00, 0xff, 0x5a, 0xa5, 0x13} {
		for combo := 0; combo < 16; combo++ {
			p1 := share(combo & 1)
			p2 := share(combo & 2)
			q1 := share(combo & 4)
			q2 := share(combo & 8)
			z, zm := maskedsbox.SecureAND(p1, p2, q1, q2, r)
			if got, want := z^zm, (p1^p2)&(q1^q2); got != want {
				t.Errorf("SecureAND(%#02x, %#02x, %#02x, %#02x, r=%#02x): z^zm = %#02x, want %#02x",
					p1, p2, q1, q2, r, got, want)
			}
		}
	}
}

func TestSecureANDRandomBytes(t *testing.T) {
	for i := 0; i < 10000; i++ {
		b := random.GetRandomBytes(5)
		p1, p2, q1, q2, r := b[0], b[1], b[2], b[3], b[4]
		z, zm := maskedsbox.SecureAND(p1, p2, q1, q2, r)
		if got, want := z^zm, (p1^p2)&(q1^q2); got != want {
			t.Fatalf("SecureAND(%#02x, %#02x, %#02x, %#02x, r=%#02x): z^zm = %#02x, want %#02x",
				p1, p2, q1, q2, r, got, want)
		}
	}
}

func TestSubstituteExhaustive(t *testing.T) {
	for data := 0; data < 256; data++ {
		for mask := 0; mask < 256; mask++ {
			out, outm := maskedsbox.Substitute(byte(data), byte(mask))
			want := sbox.Forward(byte(data) ^ byte(mask))
			if out^outm != want {
				t.Fatalf("Substitute(%#02x, %#02x) = (%#02x, %#02x), recombines to %#02x, want %#02x",
					data, mask, out, outm, out^outm, want)
			}
		}
	}
}

func TestSubstituteRemasksOutput(t *testing.T) {
	// The circuit must not collapse to a plain table lookup: even with a
	// zero input mask, the output comes back shared.
	remasked := false
	for data := 0; data < 256; data++ {
		out, outm := maskedsbox.Substitute(byte(data), 0)
		if out^outm != sbox.Forward(byte(data)) {
			t.Fatalf("Substitute(%#02x, 0) recombines to %#02x, want %#02x",
				data, out^outm, sbox.Forward(byte(data)))
		}
		if outm != 0 {
			remasked = true
		}
	}
	if !remasked {
		t.Error("Substitute never produced a nonzero output mask for a zero input mask")
	}
}
