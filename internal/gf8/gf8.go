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

// Package gf8 implements arithmetic in GF(2^8) under the AES reduction
// polynomial x^8 + x^4 + x^3 + x + 1.
package gf8

// reductionPolynomial is the AES irreducible polynomial, truncated to the
// low byte (the x^8 term is implied by the reduction itself).
const reductionPolynomial = 0x1b

// Double multiplies x by {02} in GF(2^8). Branch-free: the reduction is
// applied by mask-multiplying with the vacated high bit.
func Double(x byte) byte {
	return (x << 1) ^ (((x >> 7) & 1) * reductionPolynomial)
}

// Mul multiplies x by y in GF(2^8) as a sum of conditional doublings of x
// selected by the bits of y.
//
// Only the low five bits of y are inspected. That covers every multiplier
// used by the inverse column-mixing matrix (0x0e, 0x0b, 0x0d, 0x09), which
// is the sole consumer of this function.
func Mul(x, y byte) byte {
	return ((y & 1) * x) ^
		(((y >> 1) & 1) * Double(x)) ^
		(((y >> 2) & 1) * Double(Double(x))) ^
		(((y >> 3) & 1) * Double(Double(Double(x)))) ^
		(((y >> 4) & 1) * Double(Double(Double(Double(x)))))
}
