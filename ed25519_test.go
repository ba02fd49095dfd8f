// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ed25519core

import (
	"bytes"
	"testing"
)

func doKeypairCase(t *testing.T, seed, expectedSecret, expectedPublic []byte) {
	t.Helper()
	priv, err := GenerateKey(seed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(priv, expectedSecret) {
		t.Errorf("secret mismatch: got %x, want %x", []byte(priv), expectedSecret)
	}
	if !bytes.Equal(priv.Public(), expectedPublic) {
		t.Errorf("public mismatch: got %x, want %x", []byte(priv.Public()), expectedPublic)
	}
}

func TestGenerateKeyVectors(t *testing.T) {
	doKeypairCase(t,
		[]byte{
			0x26, 0x27, 0xf6, 0x85, 0x97, 0x15, 0xad, 0x1d, 0xd2, 0x94, 0xdd, 0xc4, 0x76, 0x19, 0x39, 0x31,
			0xf1, 0xad, 0xb5, 0x58, 0xf0, 0x93, 0x97, 0x32, 0x19, 0x2b, 0xd1, 0xc0, 0xfd, 0x16, 0x8e, 0x4e,
		},
		[]byte{
			0x26, 0x27, 0xf6, 0x85, 0x97, 0x15, 0xad, 0x1d, 0xd2, 0x94, 0xdd, 0xc4, 0x76, 0x19, 0x39, 0x31,
			0xf1, 0xad, 0xb5, 0x58, 0xf0, 0x93, 0x97, 0x32, 0x19, 0x2b, 0xd1, 0xc0, 0xfd, 0x16, 0x8e, 0x4e,
			0x5d, 0x6d, 0x23, 0x6b, 0x52, 0xd1, 0x8e, 0x3a, 0xb6, 0xd6, 0x07, 0x2f, 0xb6, 0xe4, 0xc7, 0xd4,
			0x6b, 0xd5, 0x9a, 0xd9, 0xcc, 0x19, 0x47, 0x26, 0x5f, 0x00, 0xb7, 0x20, 0xfa, 0x2c, 0x8f, 0x66,
		},
		[]byte{
			0x5d, 0x6d, 0x23, 0x6b, 0x52, 0xd1, 0x8e, 0x3a, 0xb6, 0xd6, 0x07, 0x2f, 0xb6, 0xe4, 0xc7, 0xd4,
			0x6b, 0xd5, 0x9a, 0xd9, 0xcc, 0x19, 0x47, 0x26, 0x5f, 0x00, 0xb7, 0x20, 0xfa, 0x2c, 0x8f, 0x66,
		})

	doKeypairCase(t,
		[]byte{
			0x29, 0x23, 0xbe, 0x84, 0xe1, 0x6c, 0xd6, 0xae, 0x52, 0x90, 0x49, 0xf1, 0xf1, 0xbb, 0xe9, 0xeb,
			0xb3, 0xa6, 0xdb, 0x3c, 0x87, 0x0c, 0x3e, 0x99, 0x24, 0x5e, 0x0d, 0x1c, 0x06, 0xb7, 0x47, 0xde,
		},
		[]byte{
			0x29, 0x23, 0xbe, 0x84, 0xe1, 0x6c, 0xd6, 0xae, 0x52, 0x90, 0x49, 0xf1, 0xf1, 0xbb, 0xe9, 0xeb,
			0xb3, 0xa6, 0xdb, 0x3c, 0x87, 0x0c, 0x3e, 0x99, 0x24, 0x5e, 0x0d, 0x1c, 0x06, 0xb7, 0x47, 0xde,
			0x5d, 0x83, 0x31, 0x26, 0x56, 0x0c, 0xb1, 0x9a, 0x14, 0x19, 0x37, 0x27, 0x78, 0x96, 0xf0, 0xfd,
			0x43, 0x7b, 0xa6, 0x80, 0x1e, 0xb2, 0x10, 0xac, 0x4c, 0x39, 0xd9, 0x00, 0x72, 0xd7, 0x0d, 0xa8,
		},
		[]byte{
			0x5d, 0x83, 0x31, 0x26, 0x56, 0x0c, 0xb1, 0x9a, 0x14, 0x19, 0x37, 0x27, 0x78, 0x96, 0xf0, 0xfd,
			0x43, 0x7b, 0xa6, 0x80, 0x1e, 0xb2, 0x10, 0xac, 0x4c, 0x39, 0xd9, 0x00, 0x72, 0xd7, 0x0d, 0xa8,
		})
}

func TestGenerateKeyRejectsBadSeedLength(t *testing.T) {
	if _, err := GenerateKey(make([]byte, 16)); err == nil {
		t.Fatal("expected error for short seed")
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := range seed {
		seed[i] = byte(i * 7)
	}

	priv, err := GenerateKey(seed)
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("the quick brown fox jumps over the lazy dog")
	sig, err := Sign(priv, message)
	if err != nil {
		t.Fatal(err)
	}
	if len(sig) != SignatureSize {
		t.Fatalf("signature has wrong length: %d", len(sig))
	}

	if !Verify(priv.Public(), message, sig) {
		t.Fatal("valid signature failed to verify")
	}

	tampered := append([]byte(nil), message...)
	tampered[0] ^= 1
	if Verify(priv.Public(), tampered, sig) {
		t.Fatal("signature verified over tampered message")
	}

	badSig := append([]byte(nil), sig...)
	badSig[0] ^= 1
	if Verify(priv.Public(), message, badSig) {
		t.Fatal("tampered signature verified")
	}
}

func TestVerifyRejectsWrongLengthInputs(t *testing.T) {
	if Verify(make([]byte, 10), []byte("msg"), make([]byte, SignatureSize)) {
		t.Fatal("accepted short public key")
	}
	if Verify(make([]byte, PublicKeySize), []byte("msg"), make([]byte, 10)) {
		t.Fatal("accepted short signature")
	}
}

func TestVerifyRejectsNonMinimalS(t *testing.T) {
	seed := make([]byte, SeedSize)
	priv, err := GenerateKey(seed)
	if err != nil {
		t.Fatal(err)
	}
	message := []byte("hello")
	sig, err := Sign(priv, message)
	if err != nil {
		t.Fatal(err)
	}

	// Push S past the group order l; the top byte of l is 0x10, so setting
	// S's top byte past that makes it non-minimal.
	badSig := append([]byte(nil), sig...)
	badSig[63] = 0xff
	if Verify(priv.Public(), message, badSig) {
		t.Fatal("accepted non-minimal S")
	}
}
