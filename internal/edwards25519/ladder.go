// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

// X25519 computes the Montgomery ladder scalar multiplication scalar*point,
// where point is the u-coordinate of a point on the birationally-equivalent
// Montgomery curve and scalar is clamped per RFC 7748 before use. It is the
// core Diffie-Hellman primitive: constant-time in the ladder's control flow
// (swap decisions depend only on the scalar's bits, routed through CondSwap),
// though the field operations themselves are not hardened against all
// microarchitectural side channels.
func X25519(scalar, point [32]byte) [32]byte {
	var e [32]byte
	copy(e[:], scalar[:])
	e[0] &= 248
	e[31] &= 127
	e[31] |= 64

	var x1 FieldElement
	x1.FromBytes(&point)

	x2 := feOne
	z2 := feZero
	x3 := x1
	z3 := feOne

	var swap int32
	for pos := 254; pos >= 0; pos-- {
		b := int32(e[pos/8]>>uint(pos&7)) & 1
		swap ^= b
		CondSwap(&x2, &x3, swap)
		CondSwap(&z2, &z3, swap)
		swap = b

		var d, b2, a, c, da, cb, bb, aa, t0, t1, x4, e2, t2, t3, x5, t4, z5, z4 FieldElement
		d.Sub(&x3, &z3)
		b2.Sub(&x2, &z2)
		a.Add(&x2, &z2)
		c.Add(&x3, &z3)
		da.Mul(&d, &a)
		cb.Mul(&c, &b2)
		bb.Square(&b2)
		aa.Square(&a)
		t0.Add(&da, &cb)
		t1.Sub(&da, &cb)
		x4.Mul(&aa, &bb)
		e2.Sub(&aa, &bb)
		t2.Square(&t1)
		t3.Mul121666(&e2)
		x5.Square(&t0)
		t4.Add(&bb, &t3)
		z5.Mul(&x1, &t2)
		z4.Mul(&e2, &t4)

		x2, x3 = x4, x5
		z2, z3 = z4, z5
	}
	CondSwap(&x2, &x3, swap)
	CondSwap(&z2, &z3, swap)

	var zInv, out FieldElement
	zInv.Invert(&z2)
	out.Mul(&x2, &zInv)
	return out.Bytes()
}

// basePointU is the u-coordinate of the Curve25519 base point, 9, encoded
// little-endian.
var basePointU = [32]byte{9}

// X25519Base computes scalar*G, where G is the standard base point.
func X25519Base(scalar [32]byte) [32]byte {
	return X25519(scalar, basePointU)
}
