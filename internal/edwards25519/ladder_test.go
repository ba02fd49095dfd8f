// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"encoding/hex"
	"testing"
)

func mustDecode32(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	var out [32]byte
	copy(out[:], b)
	return out
}

// TestRFC7748Vector1 is the first X25519 Diffie-Hellman test vector from
// RFC 7748 section 5.2.
func TestRFC7748Vector1(t *testing.T) {
	scalar := mustDecode32(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac")
	point := mustDecode32(t, "e6db6867583030db3594c1a424b15f7c726624ec26b3353b10a903a6d0ab1c4")
	want := mustDecode32(t, "c3da55379de9c6908e94ea4df28d084f32eccf03491c71f754b4075577a2866")

	got := X25519(scalar, point)
	if got != want {
		t.Fatalf("got %x, want %x", got, want)
	}
}

// TestX25519BaseKnownAnswer checks the base-point scalar multiplication
// embedded as curve25519_base's own test vector.
func TestX25519BaseKnownAnswer(t *testing.T) {
	sk := [32]byte{
		0x77, 0x07, 0x6d, 0x0a, 0x73, 0x18, 0xa5, 0x7d, 0x3c, 0x16, 0xc1,
		0x72, 0x51, 0xb2, 0x66, 0x45, 0xdf, 0x4c, 0x2f, 0x87, 0xeb, 0xc0,
		0x99, 0x2a, 0xb1, 0x77, 0xfb, 0xa5, 0x1d, 0xb9, 0x2c, 0x2a,
	}
	want := [32]byte{
		0x85, 0x20, 0xf0, 0x09, 0x89, 0x30, 0xa7, 0x54,
		0x74, 0x8b, 0x7d, 0xdc, 0xb4, 0x3e, 0xf7, 0x5a,
		0x0d, 0xbf, 0x3a, 0x0d, 0x26, 0x38, 0x1a, 0xf4,
		0xeb, 0xa4, 0xa9, 0x8e, 0xaa, 0x9b, 0x4e, 0x6a,
	}

	got := X25519Base(sk)
	if got != want {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestX25519BaseMatchesExplicitBasePoint(t *testing.T) {
	scalar := mustDecode32(t, "a546e36bf0527c9d3b16154b82465edd62144c0ac1fc5a18506a2244ba449ac")
	got := X25519Base(scalar)
	want := X25519(scalar, basePointU)
	if got != want {
		t.Fatalf("X25519Base and X25519(scalar, basePointU) disagree: %x != %x", got, want)
	}
}
