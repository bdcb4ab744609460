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

import (
	"fmt"

	"github.com/masked-crypto/maskedaes-go/internal/aescore"
)

// AESCBC chains blocks through cipher-block-chaining mode: each plaintext
// block is XORed with the previous ciphertext block (initially the IV)
// before encryption.
//
// An AESCBC is a caller-owned session context: it holds the immutable
// round-key schedule and the chained IV. The IV advances across calls, so
// a message may be encrypted in several Encrypt calls and the result
// matches a single call over the concatenation, provided every call but
// the last passes whole blocks. Independent values are safe for concurrent
// use; a single value must be confined to one goroutine or externally
// synchronized. The zero value is unusable; construct with NewAESCBC.
type AESCBC struct {
	schedule *aescore.Schedule
	iv       [aescore.BlockSize]byte
}

// NewAESCBC derives the round-key schedule from a 16-byte AES-128 key and
// sets the initial chaining vector.
func NewAESCBC(key, iv []byte) (*AESCBC, error) {
	if len(key) != aescore.KeySize {
		return nil, fmt.Errorf("aes_cbc: %w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), aescore.KeySize)
	}
	if len(iv) != aescore.BlockSize {
		return nil, fmt.Errorf("aes_cbc: %w: got %d bytes, want %d", ErrInvalidIVLength, len(iv), aescore.BlockSize)
	}
	schedule, err := aescore.NewSchedule(key)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc: %v", err)
	}
	c := &AESCBC{schedule: schedule}
	copy(c.iv[:], iv)
	return c, nil
}

// SetIV restarts the chain at iv, keeping the derived schedule.
func (c *AESCBC) SetIV(iv []byte) error {
	if c.schedule == nil {
		return fmt.Errorf("aes_cbc: %w", ErrUninitializedContext)
	}
	if len(iv) != aescore.BlockSize {
		return fmt.Errorf("aes_cbc: %w: got %d bytes, want %d", ErrInvalidIVLength, len(iv), aescore.BlockSize)
	}
	copy(c.iv[:], iv)
	return nil
}

// Encrypt encrypts plaintext in CBC mode, returning ceil(N/16)*16 bytes.
// A trailing partial block is zero-padded before chaining and encryption;
// the original length is not recoverable from the output alone. If dst is
// empty a fresh buffer is allocated; otherwise it must hold the whole
// output. The chained IV ends at the last ciphertext block produced.
func (c *AESCBC) Encrypt(dst, plaintext []byte) ([]byte, error) {
	if c.schedule == nil {
		return nil, fmt.Errorf("aes_cbc: %w", ErrUninitializedContext)
	}
	out, err := bufferArgs(dst, len(plaintext), "aes_cbc")
	if err != nil {
		return nil, err
	}
	var block [aescore.BlockSize]byte
	for off := 0; off < len(plaintext); off += aescore.BlockSize {
		loadPadded(&block, plaintext[off:])
		for i := range block {
			block[i] ^= c.iv[i]
		}
		c.schedule.EncryptBlock(&block, &block)
		copy(out[off:], block[:])
		c.iv = block
	}
	return out, nil
}

// Decrypt decrypts ciphertext in CBC mode. Each block is decrypted and
// XORed with the previous ciphertext block (initially the IV); the chained
// IV ends at the last ciphertext block consumed. A trailing partial block
// is zero-padded before decryption, mirroring Encrypt; trailing pad bytes
// of the recovered plaintext are zero for input produced by Encrypt.
func (c *AESCBC) Decrypt(dst, ciphertext []byte) ([]byte, error) {
	if c.schedule == nil {
		return nil, fmt.Errorf("aes_cbc: %w", ErrUninitializedContext)
	}
	out, err := bufferArgs(dst, len(ciphertext), "aes_cbc")
	if err != nil {
		return nil, err
	}
	var in, block [aescore.BlockSize]byte
	for off := 0; off < len(ciphertext); off += aescore.BlockSize {
		loadPadded(&in, ciphertext[off:])
		c.schedule.DecryptBlock(&block, &in)
		for i := range block {
			block[i] ^= c.iv[i]
		}
		copy(out[off:], block[:])
		c.iv = in
	}
	return out, nil
}
