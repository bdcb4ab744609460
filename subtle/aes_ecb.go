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

// Package subtle exposes the masked AES-128 engine in ECB and CBC modes.
//
// These are low-level, unauthenticated primitives. ECB leaks equal blocks
// and CBC provides no integrity; both zero-pad a trailing partial block,
// which is not reversible on its own — the caller owns length tracking and
// any self-describing padding scheme.
package subtle

import (
	"fmt"

	"github.com/masked-crypto/maskedaes-go/internal/aescore"
)

// AESECB encrypts and decrypts 16-byte blocks independently of one another.
//
// An AESECB holds only the immutable round-key schedule, so a single value
// is safe for concurrent use. The zero value is unusable; construct with
// NewAESECB.
type AESECB struct {
	schedule *aescore.Schedule
}

// NewAESECB derives the round-key schedule from a 16-byte AES-128 key.
func NewAESECB(key []byte) (*AESECB, error) {
	if len(key) != aescore.KeySize {
		return nil, fmt.Errorf("aes_ecb: %w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), aescore.KeySize)
	}
	schedule, err := aescore.NewSchedule(key)
	if err != nil {
		return nil, fmt.Errorf("aes_ecb: %v", err)
	}
	return &AESECB{schedule: schedule}, nil
}

// EncryptBlock encrypts the first 16 bytes of src through the masked block
// cipher. If dst is empty a fresh buffer is allocated; otherwise it must
// hold at least 16 bytes. dst and src may overlap.
func (e *AESECB) EncryptBlock(dst, src []byte) ([]byte, error) {
	in, out, err := e.blockArgs(dst, src)
	if err != nil {
		return nil, err
	}
	var block [aescore.BlockSize]byte
	copy(block[:], in)
	e.schedule.EncryptBlock(&block, &block)
	copy(out, block[:])
	return out, nil
}

// DecryptBlock decrypts the first 16 bytes of src through the unmasked
// inverse block cipher. Buffer handling matches EncryptBlock.
func (e *AESECB) DecryptBlock(dst, src []byte) ([]byte, error) {
	in, out, err := e.blockArgs(dst, src)
	if err != nil {
		return nil, err
	}
	var block [aescore.BlockSize]byte
	copy(block[:], in)
	e.schedule.DecryptBlock(&block, &block)
	copy(out, block[:])
	return out, nil
}

// Encrypt encrypts a whole buffer block by block, with no chaining between
// blocks. The output is ceil(len(plaintext)/16)*16 bytes; a trailing
// partial block is zero-padded before encryption.
func (e *AESECB) Encrypt(dst, plaintext []byte) ([]byte, error) {
	if e.schedule == nil {
		return nil, fmt.Errorf("aes_ecb: %w", ErrUninitializedContext)
	}
	out, err := bufferArgs(dst, len(plaintext), "aes_ecb")
	if err != nil {
		return nil, err
	}
	var block [aescore.BlockSize]byte
	for off := 0; off < len(plaintext); off += aescore.BlockSize {
		loadPadded(&block, plaintext[off:])
		e.schedule.EncryptBlock(&block, &block)
		copy(out[off:], block[:])
	}
	return out, nil
}

// Decrypt decrypts a whole buffer block by block. A trailing partial block
// of ciphertext is zero-padded before decryption; decrypting truncated
// ciphertext produces garbage for that block, as with any block cipher.
func (e *AESECB) Decrypt(dst, ciphertext []byte) ([]byte, error) {
	if e.schedule == nil {
		return nil, fmt.Errorf("aes_ecb: %w", ErrUninitializedContext)
	}
	out, err := bufferArgs(dst, len(ciphertext), "aes_ecb")
	if err != nil {
		return nil, err
	}
	var block [aescore.BlockSize]byte
	for off := 0; off < len(ciphertext); off += aescore.BlockSize {
		loadPadded(&block, ciphertext[off:])
		e.schedule.DecryptBlock(&block, &block)
		copy(out[off:], block[:])
	}
	return out, nil
}

func (e *AESECB) blockArgs(dst, src []byte) (in, out []byte, err error) {
	if e.schedule == nil {
		return nil, nil, fmt.Errorf("aes_ecb: %w", ErrUninitializedContext)
	}
	if len(src) < aescore.BlockSize {
		return nil, nil, fmt.Errorf("aes_ecb: %w: input is %d bytes, want at least %d", ErrBufferTooShort, len(src), aescore.BlockSize)
	}
	if len(dst) == 0 {
		dst = make([]byte, aescore.BlockSize)
	}
	if len(dst) < aescore.BlockSize {
		return nil, nil, fmt.Errorf("aes_ecb: %w: destination is %d bytes, want at least %d", ErrBufferTooShort, len(dst), aescore.BlockSize)
	}
	return src[:aescore.BlockSize], dst[:aescore.BlockSize], nil
}

// bufferArgs validates or allocates a whole-buffer destination of
// ceil(n/16)*16 bytes.
func bufferArgs(dst []byte, n int, prefix string) ([]byte, error) {
	size := ((n + aescore.BlockSize - 1) / aescore.BlockSize) * aescore.BlockSize
	if len(dst) == 0 {
		dst = make([]byte, size)
	}
	if len(dst) < size {
		return nil, fmt.Errorf("%s: %w: destination is %d bytes, want at least %d", prefix, ErrBufferTooShort, len(dst), size)
	}
	return dst[:size], nil
}

// loadPadded copies up to one block from src into block, zero-filling the
// remainder when src holds a final partial block.
func loadPadded(block *[aescore.BlockSize]byte, src []byte) {
	n := copy(block[:], src)
	for i := n; i < aescore.BlockSize; i++ {
		block[i] = 0
	}
}
