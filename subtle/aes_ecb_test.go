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

package subtle_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/masked-crypto/maskedaes-go/internal/random"
	"github.com/masked-crypto/maskedaes-go/subtle"
)

func TestNewAESECBKeySizes(t *testing.T) {
	key := make([]byte, 64)
	for i := 0; i <= 64; i++ {
		_, err := subtle.NewAESECB(key[:i])
		if i == 16 {
			if err != nil {
				t.Errorf("want: valid cipher (key size=%d), got: error %v", i, err)
			}
			continue
		}
		if !errors.Is(err, subtle.ErrInvalidKeyLength) {
			t.Errorf("want: ErrInvalidKeyLength for key size %d, got: %v", i, err)
		}
	}
}

func TestECBNistVector(t *testing.T) {
	// NIST SP 800-38A, ECB-AES128 block 1.
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")
	want, _ := hex.DecodeString("3ad77bb40d7a3660a89ecaf32466ef97")

	ecb, err := subtle.NewAESECB(key)
	if err != nil {
		t.Fatalf("NewAESECB failed, error: %v", err)
	}
	ciphertext, err := ecb.EncryptBlock(nil, plaintext)
	if err != nil {
		t.Fatalf("EncryptBlock failed, error: %v", err)
	}
	if !bytes.Equal(ciphertext, want) {
		t.Errorf("EncryptBlock = %s, want %s", hex.EncodeToString(ciphertext), hex.EncodeToString(want))
	}

	recovered, err := ecb.DecryptBlock(nil, ciphertext)
	if err != nil {
		t.Fatalf("DecryptBlock failed, error: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Errorf("DecryptBlock = %s, want %s", hex.EncodeToString(recovered), hex.EncodeToString(plaintext))
	}
}

func TestECBBlockRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		ecb, err := subtle.NewAESECB(random.GetRandomBytes(16))
		if err != nil {
			t.Fatalf("NewAESECB failed, error: %v", err)
		}
		plaintext := random.GetRandomBytes(16)
		ciphertext, err := ecb.EncryptBlock(nil, plaintext)
		if err != nil {
			t.Fatalf("EncryptBlock failed, error: %v", err)
		}
		recovered, err := ecb.DecryptBlock(nil, ciphertext)
		if err != nil {
			t.Fatalf("DecryptBlock failed, error: %v", err)
		}
		if !bytes.Equal(recovered, plaintext) {
			t.Fatalf("round trip failed at iteration %d", i)
		}
	}
}

func TestECBBufferRoundTrip(t *testing.T) {
	ecb, err := subtle.NewAESECB(random.GetRandomBytes(16))
	if err != nil {
		t.Fatalf("NewAESECB failed, error: %v", err)
	}
	for n := 0; n <= 64; n++ {
		plaintext := random.GetRandomBytes(uint32(n))
		ciphertext, err := ecb.Encrypt(nil, plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed for n=%d, error: %v", n, err)
		}
		wantLen := ((n + 15) / 16) * 16
		if len(ciphertext) != wantLen {
			t.Fatalf("ciphertext is %d bytes for n=%d, want %d", len(ciphertext), n, wantLen)
		}
		recovered, err := ecb.Decrypt(nil, ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed for n=%d, error: %v", n, err)
		}
		if !bytes.Equal(recovered[:n], plaintext) {
			t.Fatalf("plaintext mismatch within first %d bytes", n)
		}
		for _, b := range recovered[n:] {
			if b != 0 {
				t.Fatalf("nonzero pad byte recovered for n=%d", n)
			}
		}
	}
}

func TestECBEqualBlocksEncryptEqually(t *testing.T) {
	// The defining (and leaky) ECB property: identical plaintext blocks
	// produce identical ciphertext blocks.
	ecb, err := subtle.NewAESECB(random.GetRandomBytes(16))
	if err != nil {
		t.Fatalf("NewAESECB failed, error: %v", err)
	}
	block := random.GetRandomBytes(16)
	ciphertext, err := ecb.Encrypt(nil, append(append([]byte{}, block...), block...))
	if err != nil {
		t.Fatalf("Encrypt failed, error: %v", err)
	}
	if !bytes.Equal(ciphertext[:16], ciphertext[16:]) {
		t.Error("equal plaintext blocks produced different ciphertext blocks")
	}
}

func TestECBErrors(t *testing.T) {
	ecb, err := subtle.NewAESECB(random.GetRandomBytes(16))
	if err != nil {
		t.Fatalf("NewAESECB failed, error: %v", err)
	}

	if _, err := ecb.EncryptBlock(nil, make([]byte, 15)); !errors.Is(err, subtle.ErrBufferTooShort) {
		t.Errorf("EncryptBlock with short input: got %v, want ErrBufferTooShort", err)
	}
	if _, err := ecb.DecryptBlock(make([]byte, 8), make([]byte, 16)); !errors.Is(err, subtle.ErrBufferTooShort) {
		t.Errorf("DecryptBlock with short destination: got %v, want ErrBufferTooShort", err)
	}
	if _, err := ecb.Encrypt(make([]byte, 16), make([]byte, 17)); !errors.Is(err, subtle.ErrBufferTooShort) {
		t.Errorf("Encrypt with short destination: got %v, want ErrBufferTooShort", err)
	}

	var uninitialized subtle.AESECB
	if _, err := uninitialized.EncryptBlock(nil, make([]byte, 16)); !errors.Is(err, subtle.ErrUninitializedContext) {
		t.Errorf("zero-value EncryptBlock: got %v, want ErrUninitializedContext", err)
	}
	if _, err := uninitialized.Decrypt(nil, make([]byte, 16)); !errors.Is(err, subtle.ErrUninitializedContext) {
		t.Errorf("zero-value Decrypt: got %v, want ErrUninitializedContext", err)
	}
}

func TestECBConcurrentUse(t *testing.T) {
	// A single AESECB carries only the read-only schedule and is safe to
	// share across goroutines.
	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	plaintext, _ := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")
	want, _ := hex.DecodeString("3ad77bb40d7a3660a89ecaf32466ef97")
	ecb, err := subtle.NewAESECB(key)
	if err != nil {
		t.Fatalf("NewAESECB failed, error: %v", err)
	}

	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func() {
			for i := 0; i < 100; i++ {
				ciphertext, err := ecb.EncryptBlock(nil, plaintext)
				if err != nil {
					done <- err
					return
				}
				if !bytes.Equal(ciphertext, want) {
					done <- errors.New("ciphertext mismatch under concurrency")
					return
				}
			}
			done <- nil
		}()
	}
	for g := 0; g < 8; g++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
