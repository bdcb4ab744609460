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

package subtle

import "errors"

// The errors below classify every failure this package reports. All are
// caller errors detected before any cipher step runs; none are retryable.
var (
	// ErrInvalidKeyLength is returned when a key is not exactly 16 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidIVLength is returned when an IV is not exactly 16 bytes.
	ErrInvalidIVLength = errors.New("invalid IV length")
	// ErrBufferTooShort is returned when an input is shorter than one
	// block for a block operation, or a destination buffer cannot hold
	// the output.
	ErrBufferTooShort = errors.New("buffer too short")
	// ErrUninitializedContext is returned when an operation is invoked on
	// a zero-value cipher context whose key schedule was never derived.
	ErrUninitializedContext = errors.New("uninitialized cipher context")
)
