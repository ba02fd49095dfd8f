// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ed25519core

import "github.com/curvecore/ed25519core/internal/edwards25519"

// X25519 computes the Curve25519 Diffie-Hellman function, multiplying the
// Montgomery u-coordinate point by scalar. Per RFC 7748, scalar is clamped
// before use, so the same 32-byte value always produces the same result
// regardless of which unclamped bits the caller supplied.
func X25519(scalar, point [32]byte) [32]byte {
	return edwards25519.X25519(scalar, point)
}

// X25519Base computes scalar*G, where G is the standard Curve25519 base
// point (u = 9).
func X25519Base(scalar [32]byte) [32]byte {
	return edwards25519.X25519Base(scalar)
}
