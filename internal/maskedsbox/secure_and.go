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

// Package maskedsbox evaluates the AES substitution box on a value split
// into two boolean shares, so that no intermediate variable is a function
// of the unmasked secret byte alone. The nonlinear layer is built from a
// single secure-AND gate; everything else in the circuit is XOR and
// therefore operates on each share independently.
package maskedsbox

// sandCorrection is the fixed correction byte fed to every secure-AND gate
// in the substitution circuit.
const sandCorrection = 0xff

// SecureAND computes a freshly shared AND of two shared bit-vectors,
// bit-sliced across all 8 lanes of a byte. Given shares (p1, p2) of p and
// (q1, q2) of q, it returns (z, zm) with
//
//	z ^ zm == (p1 ^ p2) & (q1 ^ q2)
//
// for every input and any correction byte r. The order of operations
// guarantees that no intermediate value equals p, q, or p&q: each partial
// product mixes one share of p with one share of q, and r is folded in
// before the partial products are combined.
func SecureAND(p1, p2, q1, q2, r byte) (z, zm byte) {
	n1 := p1 & q1
	n11 := p2 & q2
	n2 := p2 & q1
	n3 := p1 & q2
	n4 := r ^ n1

	zm = n2 ^ n11 ^ r
	z = n3 ^ n4
	return z, zm
}
