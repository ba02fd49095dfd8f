// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ed25519core

import (
	"crypto/rand"
	"testing"

	"golang.org/x/crypto/curve25519"
)

// TestX25519AgreesWithReferenceImplementation differentially checks random
// scalar/point pairs against golang.org/x/crypto/curve25519's own X25519, in
// addition to the fixed RFC 7748 vectors exercised directly against the
// internal ladder. This dependency is test-only: production Diffie-Hellman
// always runs through this package's own ladder.
func TestX25519AgreesWithReferenceImplementation(t *testing.T) {
	for i := 0; i < 50; i++ {
		var scalar, point [32]byte
		if _, err := rand.Read(scalar[:]); err != nil {
			t.Fatal(err)
		}
		if _, err := rand.Read(point[:]); err != nil {
			t.Fatal(err)
		}

		got := X25519(scalar, point)

		want, err := curve25519.X25519(scalar[:], point[:])
		if err != nil {
			t.Fatalf("reference implementation error: %v", err)
		}

		if !bytesEqual(got[:], want) {
			t.Fatalf("case %d: disagreement with reference implementation:\n got  %x\n want %x", i, got, want)
		}
	}
}

func TestX25519BaseAgreesWithReferenceImplementation(t *testing.T) {
	for i := 0; i < 20; i++ {
		var scalar [32]byte
		if _, err := rand.Read(scalar[:]); err != nil {
			t.Fatal(err)
		}

		got := X25519Base(scalar)

		want, err := curve25519.X25519(scalar[:], curve25519.Basepoint)
		if err != nil {
			t.Fatalf("reference implementation error: %v", err)
		}

		if !bytesEqual(got[:], want) {
			t.Fatalf("case %d: disagreement with reference implementation:\n got  %x\n want %x", i, got, want)
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
