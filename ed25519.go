// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ed25519core

import (
	"crypto/sha512"
	"errors"

	"github.com/curvecore/ed25519core/internal/edwards25519"
	"github.com/curvecore/ed25519core/internal/scalar"
)

// PublicKey is an Ed25519 public key.
type PublicKey []byte

// PrivateKey is an Ed25519 private key: a 32-byte seed followed by the
// 32-byte public key it derives, matching the layout GenerateKey produces.
type PrivateKey []byte

// Seed returns the private key seed corresponding to priv, the input that
// would be passed to GenerateKey to reproduce it.
func (priv PrivateKey) Seed() []byte {
	seed := make([]byte, SeedSize)
	copy(seed, priv[:SeedSize])
	return seed
}

// Public returns priv's corresponding public key.
func (priv PrivateKey) Public() PublicKey {
	pk := make([]byte, PublicKeySize)
	copy(pk, priv[SeedSize:])
	return pk
}

// GenerateKey derives an Ed25519 key pair from a 32-byte seed. The seed must
// be generated by a cryptographically secure random source; supplying that
// source is a collaborator's responsibility, not this package's.
//
// The derivation hashes the seed with SHA-512, clamps the first 32 bytes
// into a scalar, and computes the public key as that scalar times the base
// point. The returned private key is seed || publicKey, so that Sign can
// recover both without rehashing.
func GenerateKey(seed []byte) (PrivateKey, error) {
	if len(seed) != SeedSize {
		return nil, errors.New("ed25519core: bad seed length")
	}

	digest := sha512.Sum512(seed)
	var a [32]byte
	copy(a[:], digest[:32])
	a[0] &= 248
	a[31] &= 127
	a[31] |= 64

	A, err := edwards25519.ScalarMultBase(&a)
	if err != nil {
		return nil, err
	}
	pub := A.Bytes()

	priv := make([]byte, PrivateKeySize)
	copy(priv[:SeedSize], seed)
	copy(priv[SeedSize:], pub[:])
	return priv, nil
}

// Sign signs message with priv and returns a 64-byte R || S signature.
func Sign(priv PrivateKey, message []byte) ([]byte, error) {
	if len(priv) != PrivateKeySize {
		return nil, errors.New("ed25519core: bad private key length")
	}
	seed := priv[:SeedSize]
	publicKey := priv[SeedSize:]

	h := sha512.Sum512(seed)
	var az [64]byte
	copy(az[:], h[:])
	az[0] &= 248
	az[31] &= 127
	az[31] |= 64

	nonceHash := sha512.New()
	nonceHash.Write(az[32:])
	nonceHash.Write(message)
	var nonceDigest [64]byte
	nonceHash.Sum(nonceDigest[:0])
	var nonce [32]byte
	scalar.Reduce(&nonce, &nonceDigest)

	R, err := edwards25519.ScalarMultBase(&nonce)
	if err != nil {
		return nil, err
	}
	rBytes := R.Bytes()

	sig := make([]byte, SignatureSize)
	copy(sig[:32], rBytes[:])
	copy(sig[32:], publicKey)

	hramHash := sha512.New()
	hramHash.Write(sig)
	hramHash.Write(message)
	var hramDigest [64]byte
	hramHash.Sum(hramDigest[:0])
	var hram [32]byte
	scalar.Reduce(&hram, &hramDigest)

	var az32, s [32]byte
	copy(az32[:], az[:32])
	scalar.MulAdd(&s, &hram, &az32, &nonce)
	copy(sig[32:64], s[:])

	return sig, nil
}

// Verify reports whether sig is a valid Ed25519 signature of message by the
// key holding publicKey, following RFC 8032 section 5.1.7. It builds on
// internal/edwards25519's Verify, which delegates the Edwards group
// arithmetic to a companion implementation rather than this package's own
// field and scalar layers.
func Verify(publicKey PublicKey, message, sig []byte) bool {
	if len(publicKey) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}

	var s [32]byte
	copy(s[:], sig[32:])
	if !scalar.IsMinimal(s[:]) {
		return false
	}

	h := sha512.New()
	h.Write(sig[:32])
	h.Write(publicKey)
	h.Write(message)
	var digest [64]byte
	h.Sum(digest[:0])
	var k [32]byte
	scalar.Reduce(&k, &digest)

	var pk, r [32]byte
	copy(pk[:], publicKey)
	copy(r[:], sig[:32])

	return edwards25519.Verify(pk, r, s, k)
}
