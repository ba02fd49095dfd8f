// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ed25519core

const (
	// SeedSize is the size, in bytes, of the seed used to derive an Ed25519
	// key pair via GenerateKey.
	SeedSize = 32

	// PublicKeySize is the size, in bytes, of an Ed25519 public key.
	PublicKeySize = 32

	// PrivateKeySize is the size, in bytes, of an Ed25519 private key: the
	// 32-byte seed followed by the 32-byte public key.
	PrivateKeySize = 64

	// SignatureSize is the size, in bytes, of an Ed25519 signature.
	SignatureSize = 64
)
