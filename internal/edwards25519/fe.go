// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edwards25519 implements the field element, scalar-independent
// group element types, and Montgomery ladder used by ed25519core.
package edwards25519

// A FieldElement represents an element of the field GF(2^255-19) as ten
// signed 32-bit limbs. The limb at index i has weight 2^ceil(25.5*i), so
// even-indexed limbs carry weight 2^(26*i/2) and odd-indexed limbs carry one
// bit less. The represented integer is
//
//	h[0] + 2^26*h[1] + 2^51*h[2] + 2^77*h[3] + 2^102*h[4] + 2^128*h[5] +
//	2^153*h[6] + 2^179*h[7] + 2^204*h[8] + 2^230*h[9]
//
// Bounds on each limb vary by operation; see the comment on each method.
// FieldElements are not canonical: the same residue mod p has many limb
// representations, and carry chains must run before a value produced by one
// operation is fed into another of the same kind.
type FieldElement [10]int32

var feZero = FieldElement{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
var feOne = FieldElement{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}

// Zero sets h = 0 and returns h.
func (h *FieldElement) Zero() *FieldElement {
	*h = feZero
	return h
}

// One sets h = 1 and returns h.
func (h *FieldElement) One() *FieldElement {
	*h = feOne
	return h
}

// Add sets h = f + g.
//
// Preconditions:
//
//	|f|, |g| bounded by 1.1*2^25, 1.1*2^24, 1.1*2^25, 1.1*2^24, etc. (reduced)
//
// Postconditions:
//
//	|h| bounded by 1.1*2^26, 1.1*2^25, 1.1*2^26, 1.1*2^25, etc. (loose)
func (h *FieldElement) Add(f, g *FieldElement) *FieldElement {
	for i := range h {
		h[i] = f[i] + g[i]
	}
	return h
}

// Sub sets h = f - g.
//
// Preconditions/postconditions as for Add.
func (h *FieldElement) Sub(f, g *FieldElement) *FieldElement {
	for i := range h {
		h[i] = f[i] - g[i]
	}
	return h
}

// Mul sets h = f * g using schoolbook multiplication over all 100 limb
// pairs, folding any partial product whose weight exceeds 2^255 by a factor
// of 19 (since 2^255 = 19 mod p), then running a 12-step carry chain.
//
// Preconditions:
//
//	|f|, |g| bounded by 1.1*2^26, 1.1*2^25, 1.1*2^26, 1.1*2^25, etc. (loose)
//
// Postconditions:
//
//	|h| bounded by 1.1*2^25, 1.1*2^24, 1.1*2^25, 1.1*2^24, etc. (reduced)
func (h *FieldElement) Mul(f, g *FieldElement) *FieldElement {
	f0 := int64(f[0])
	f1 := int64(f[1])
	f2 := int64(f[2])
	f3 := int64(f[3])
	f4 := int64(f[4])
	f5 := int64(f[5])
	f6 := int64(f[6])
	f7 := int64(f[7])
	f8 := int64(f[8])
	f9 := int64(f[9])
	g0 := int64(g[0])
	g1 := int64(g[1])
	g2 := int64(g[2])
	g3 := int64(g[3])
	g4 := int64(g[4])
	g5 := int64(g[5])
	g6 := int64(g[6])
	g7 := int64(g[7])
	g8 := int64(g[8])
	g9 := int64(g[9])

	g1_19 := 19 * g1
	g2_19 := 19 * g2
	g3_19 := 19 * g3
	g4_19 := 19 * g4
	g5_19 := 19 * g5
	g6_19 := 19 * g6
	g7_19 := 19 * g7
	g8_19 := 19 * g8
	g9_19 := 19 * g9
	f1_2 := 2 * f1
	f3_2 := 2 * f3
	f5_2 := 2 * f5
	f7_2 := 2 * f7
	f9_2 := 2 * f9

	f0g0 := f0 * g0
	f0g1 := f0 * g1
	f0g2 := f0 * g2
	f0g3 := f0 * g3
	f0g4 := f0 * g4
	f0g5 := f0 * g5
	f0g6 := f0 * g6
	f0g7 := f0 * g7
	f0g8 := f0 * g8
	f0g9 := f0 * g9
	f1g0 := f1 * g0
	f1g1_2 := f1_2 * g1
	f1g2 := f1 * g2
	f1g3_2 := f1_2 * g3
	f1g4 := f1 * g4
	f1g5_2 := f1_2 * g5
	f1g6 := f1 * g6
	f1g7_2 := f1_2 * g7
	f1g8 := f1 * g8
	f1g9_38 := f1_2 * g9_19
	f2g0 := f2 * g0
	f2g1 := f2 * g1
	f2g2 := f2 * g2
	f2g3 := f2 * g3
	f2g4 := f2 * g4
	f2g5 := f2 * g5
	f2g6 := f2 * g6
	f2g7 := f2 * g7
	f2g8_19 := f2 * g8_19
	f2g9_19 := f2 * g9_19
	f3g0 := f3 * g0
	f3g1_2 := f3_2 * g1
	f3g2 := f3 * g2
	f3g3_2 := f3_2 * g3
	f3g4 := f3 * g4
	f3g5_2 := f3_2 * g5
	f3g6 := f3 * g6
	f3g7_38 := f3_2 * g7_19
	f3g8_19 := f3 * g8_19
	f3g9_38 := f3_2 * g9_19
	f4g0 := f4 * g0
	f4g1 := f4 * g1
	f4g2 := f4 * g2
	f4g3 := f4 * g3
	f4g4 := f4 * g4
	f4g5 := f4 * g5
	f4g6_19 := f4 * g6_19
	f4g7_19 := f4 * g7_19
	f4g8_19 := f4 * g8_19
	f4g9_19 := f4 * g9_19
	f5g0 := f5 * g0
	f5g1_2 := f5_2 * g1
	f5g2 := f5 * g2
	f5g3_2 := f5_2 * g3
	f5g4 := f5 * g4
	f5g5_38 := f5_2 * g5_19
	f5g6_19 := f5 * g6_19
	f5g7_38 := f5_2 * g7_19
	f5g8_19 := f5 * g8_19
	f5g9_38 := f5_2 * g9_19
	f6g0 := f6 * g0
	f6g1 := f6 * g1
	f6g2 := f6 * g2
	f6g3 := f6 * g3
	f6g4_19 := f6 * g4_19
	f6g5_19 := f6 * g5_19
	f6g6_19 := f6 * g6_19
	f6g7_19 := f6 * g7_19
	f6g8_19 := f6 * g8_19
	f6g9_19 := f6 * g9_19
	f7g0 := f7 * g0
	f7g1_2 := f7_2 * g1
	f7g2 := f7 * g2
	f7g3_38 := f7_2 * g3_19
	f7g4_19 := f7 * g4_19
	f7g5_38 := f7_2 * g5_19
	f7g6_19 := f7 * g6_19
	f7g7_38 := f7_2 * g7_19
	f7g8_19 := f7 * g8_19
	f7g9_38 := f7_2 * g9_19
	f8g0 := f8 * g0
	f8g1 := f8 * g1
	f8g2_19 := f8 * g2_19
	f8g3_19 := f8 * g3_19
	f8g4_19 := f8 * g4_19
	f8g5_19 := f8 * g5_19
	f8g6_19 := f8 * g6_19
	f8g7_19 := f8 * g7_19
	f8g8_19 := f8 * g8_19
	f8g9_19 := f8 * g9_19
	f9g0 := f9 * g0
	f9g1_38 := f9_2 * g1_19
	f9g2_19 := f9 * g2_19
	f9g3_38 := f9_2 * g3_19
	f9g4_19 := f9 * g4_19
	f9g5_38 := f9_2 * g5_19
	f9g6_19 := f9 * g6_19
	f9g7_38 := f9_2 * g7_19
	f9g8_19 := f9 * g8_19
	f9g9_38 := f9_2 * g9_19

	h0 := f0g0 + f1g9_38 + f2g8_19 + f3g7_38 + f4g6_19 + f5g5_38 + f6g4_19 + f7g3_38 + f8g2_19 + f9g1_38
	h1 := f0g1 + f1g0 + f2g9_19 + f3g8_19 + f4g7_19 + f5g6_19 + f6g5_19 + f7g4_19 + f8g3_19 + f9g2_19
	h2 := f0g2 + f1g1_2 + f2g0 + f3g9_38 + f4g8_19 + f5g7_38 + f6g6_19 + f7g5_38 + f8g4_19 + f9g3_38
	h3 := f0g3 + f1g2 + f2g1 + f3g0 + f4g9_19 + f5g8_19 + f6g7_19 + f7g6_19 + f8g5_19 + f9g4_19
	h4 := f0g4 + f1g3_2 + f2g2 + f3g1_2 + f4g0 + f5g9_38 + f6g8_19 + f7g7_38 + f8g6_19 + f9g5_38
	h5 := f0g5 + f1g4 + f2g3 + f3g2 + f4g1 + f5g0 + f6g9_19 + f7g8_19 + f8g7_19 + f9g6_19
	h6 := f0g6 + f1g5_2 + f2g4 + f3g3_2 + f4g2 + f5g1_2 + f6g0 + f7g9_38 + f8g8_19 + f9g7_38
	h7 := f0g7 + f1g6 + f2g5 + f3g4 + f4g3 + f5g2 + f6g1 + f7g0 + f8g9_19 + f9g8_19
	h8 := f0g8 + f1g7_2 + f2g6 + f3g5_2 + f4g4 + f5g3_2 + f6g2 + f7g1_2 + f8g0 + f9g9_38
	h9 := f0g9 + f1g8 + f2g7 + f3g6 + f4g5 + f5g4 + f6g3 + f7g2 + f8g1 + f9g0

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26

	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25

	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26

	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry4 = (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25

	carry0 = (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26

	h[0] = int32(h0)
	h[1] = int32(h1)
	h[2] = int32(h2)
	h[3] = int32(h3)
	h[4] = int32(h4)
	h[5] = int32(h5)
	h[6] = int32(h6)
	h[7] = int32(h7)
	h[8] = int32(h8)
	h[9] = int32(h9)
	return h
}

// Square sets h = f * f, exploiting f[i]*f[j] == f[j]*f[i] symmetry.
//
// Preconditions/postconditions as for Mul.
func (h *FieldElement) Square(f *FieldElement) *FieldElement {
	f0 := int64(f[0])
	f1 := int64(f[1])
	f2 := int64(f[2])
	f3 := int64(f[3])
	f4 := int64(f[4])
	f5 := int64(f[5])
	f6 := int64(f[6])
	f7 := int64(f[7])
	f8 := int64(f[8])
	f9 := int64(f[9])

	f0_2 := 2 * f0
	f1_2 := 2 * f1
	f2_2 := 2 * f2
	f3_2 := 2 * f3
	f4_2 := 2 * f4
	f5_2 := 2 * f5
	f6_2 := 2 * f6
	f7_2 := 2 * f7
	f5_38 := 38 * f5
	f6_19 := 19 * f6
	f7_38 := 38 * f7
	f8_19 := 19 * f8
	f9_38 := 38 * f9

	f0f0 := f0 * f0
	f0f1_2 := f0_2 * f1
	f0f2_2 := f0_2 * f2
	f0f3_2 := f0_2 * f3
	f0f4_2 := f0_2 * f4
	f0f5_2 := f0_2 * f5
	f0f6_2 := f0_2 * f6
	f0f7_2 := f0_2 * f7
	f0f8_2 := f0_2 * f8
	f0f9_2 := f0_2 * f9
	f1f1_2 := f1_2 * f1
	f1f2_2 := f1_2 * f2
	f1f3_4 := f1_2 * f3_2
	f1f4_2 := f1_2 * f4
	f1f5_4 := f1_2 * f5_2
	f1f6_2 := f1_2 * f6
	f1f7_4 := f1_2 * f7_2
	f1f8_2 := f1_2 * f8
	f1f9_76 := f1_2 * f9_38
	f2f2 := f2 * f2
	f2f3_2 := f2_2 * f3
	f2f4_2 := f2_2 * f4
	f2f5_2 := f2_2 * f5
	f2f6_2 := f2_2 * f6
	f2f7_2 := f2_2 * f7
	f2f8_38 := f2_2 * f8_19
	f2f9_38 := f2 * f9_38
	f3f3_2 := f3_2 * f3
	f3f4_2 := f3_2 * f4
	f3f5_4 := f3_2 * f5_2
	f3f6_2 := f3_2 * f6
	f3f7_76 := f3_2 * f7_38
	f3f8_38 := f3_2 * f8_19
	f3f9_76 := f3_2 * f9_38
	f4f4 := f4 * f4
	f4f5_2 := f4_2 * f5
	f4f6_38 := f4_2 * f6_19
	f4f7_38 := f4 * f7_38
	f4f8_38 := f4_2 * f8_19
	f4f9_38 := f4 * f9_38
	f5f5_38 := f5 * f5_38
	f5f6_38 := f5_2 * f6_19
	f5f7_76 := f5_2 * f7_38
	f5f8_38 := f5_2 * f8_19
	f5f9_76 := f5_2 * f9_38
	f6f6_19 := f6 * f6_19
	f6f7_38 := f6 * f7_38
	f6f8_38 := f6_2 * f8_19
	f6f9_38 := f6 * f9_38
	f7f7_38 := f7 * f7_38
	f7f8_38 := f7_2 * f8_19
	f7f9_76 := f7_2 * f9_38
	f8f8_19 := f8 * f8_19
	f8f9_38 := f8 * f9_38
	f9f9_38 := f9 * f9_38

	h0 := f0f0 + f1f9_76 + f2f8_38 + f3f7_76 + f4f6_38 + f5f5_38
	h1 := f0f1_2 + f2f9_38 + f3f8_38 + f4f7_38 + f5f6_38
	h2 := f0f2_2 + f1f1_2 + f3f9_76 + f4f8_38 + f5f7_76 + f6f6_19
	h3 := f0f3_2 + f1f2_2 + f4f9_38 + f5f8_38 + f6f7_38
	h4 := f0f4_2 + f1f3_4 + f2f2 + f5f9_76 + f6f8_38 + f7f7_38
	h5 := f0f5_2 + f1f4_2 + f2f3_2 + f6f9_38 + f7f8_38
	h6 := f0f6_2 + f1f5_4 + f2f4_2 + f3f3_2 + f7f9_76 + f8f8_19
	h7 := f0f7_2 + f1f6_2 + f2f5_2 + f3f4_2 + f8f9_38
	h8 := f0f8_2 + f1f7_4 + f2f6_2 + f3f5_4 + f4f4 + f9f9_38
	h9 := f0f9_2 + f1f8_2 + f2f7_2 + f3f6_2 + f4f5_2

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26

	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25

	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26

	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry4 = (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25

	carry0 = (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26

	h[0] = int32(h0)
	h[1] = int32(h1)
	h[2] = int32(h2)
	h[3] = int32(h3)
	h[4] = int32(h4)
	h[5] = int32(h5)
	h[6] = int32(h6)
	h[7] = int32(h7)
	h[8] = int32(h8)
	h[9] = int32(h9)
	return h
}

// Mul121666 sets h = f * 121666, the curve constant used by the Montgomery
// ladder's z2' update.
//
// Preconditions:
//
//	|f| bounded by 1.1*2^26, 1.1*2^25, etc. (loose)
//
// Postconditions:
//
//	|h| bounded by 1.1*2^25, 1.1*2^24, etc. (reduced)
func (h *FieldElement) Mul121666(f *FieldElement) *FieldElement {
	h0 := int64(f[0]) * 121666
	h1 := int64(f[1]) * 121666
	h2 := int64(f[2]) * 121666
	h3 := int64(f[3]) * 121666
	h4 := int64(f[4]) * 121666
	h5 := int64(f[5]) * 121666
	h6 := int64(f[6]) * 121666
	h7 := int64(f[7]) * 121666
	h8 := int64(f[8]) * 121666
	h9 := int64(f[9]) * 121666

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25
	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	h[0] = int32(h0)
	h[1] = int32(h1)
	h[2] = int32(h2)
	h[3] = int32(h3)
	h[4] = int32(h4)
	h[5] = int32(h5)
	h[6] = int32(h6)
	h[7] = int32(h7)
	h[8] = int32(h8)
	h[9] = int32(h9)
	return h
}

// Invert sets h = z^(p-2) = 1/z via the fixed addition chain for p-2 =
// 2^255-21: 254 squarings and 11 multiplications. Runs in constant time
// regardless of z's value, including when z == 0 (result is 0).
func (h *FieldElement) Invert(z *FieldElement) *FieldElement {
	var t0, t1, t2, t3 FieldElement

	t0.Square(z)         // 2^1
	t1.Square(&t0)       // 2^2
	t1.Square(&t1)       // 2^3
	t1.Mul(z, &t1)       // z9 = z * 2^3
	t0.Mul(&t0, &t1)     // z11 = z2 * z9
	t2.Square(&t0)       // z22
	t1.Mul(&t1, &t2)     // z_5_0 = z9 * z22
	t2.Square(&t1)       // z_10_1
	for i := 1; i < 5; i++ {
		t2.Square(&t2) // z_10_5
	}
	t1.Mul(&t2, &t1) // z_10_0
	t2.Square(&t1)   // z_20_1
	for i := 1; i < 10; i++ {
		t2.Square(&t2) // z_20_10
	}
	t2.Mul(&t2, &t1) // z_20_0
	t3.Square(&t2)   // z_40_1
	for i := 1; i < 20; i++ {
		t3.Square(&t3) // z_40_20
	}
	t2.Mul(&t3, &t2) // z_40_0
	t2.Square(&t2)   // z_50_1
	for i := 1; i < 10; i++ {
		t2.Square(&t2) // z_50_10
	}
	t1.Mul(&t2, &t1) // z_50_0
	t2.Square(&t1)   // z_100_1
	for i := 1; i < 50; i++ {
		t2.Square(&t2) // z_100_50
	}
	t2.Mul(&t2, &t1) // z_100_0
	t3.Square(&t2)   // z_200_1
	for i := 1; i < 100; i++ {
		t3.Square(&t3) // z_200_100
	}
	t2.Mul(&t3, &t2) // z_200_0
	t2.Square(&t2)   // z_250_1
	for i := 1; i < 50; i++ {
		t2.Square(&t2) // z_250_50
	}
	t1.Mul(&t2, &t1) // z_250_0
	t1.Square(&t1)   // z_255_1
	for i := 1; i < 5; i++ {
		t1.Square(&t1) // z_255_5
	}
	h.Mul(&t1, &t0) // z_255_21
	return h
}

// FromBytes decodes s as a little-endian 255-bit integer (the top bit of
// s[31] is masked off before decoding, and non-canonical encodings — that
// is, s >= p — are accepted and interpreted as their residue mod p without
// error).
func (h *FieldElement) FromBytes(s *[32]byte) *FieldElement {
	h0 := load4(s[0:])
	h1 := load3(s[4:]) << 6
	h2 := load3(s[7:]) << 5
	h3 := load3(s[10:]) << 3
	h4 := load3(s[13:]) << 2
	h5 := load4(s[16:])
	h6 := load3(s[20:]) << 7
	h7 := load3(s[23:]) << 5
	h8 := load3(s[26:]) << 4
	h9 := (load3(s[29:]) & 8388607) << 2

	carry9 := (h9 + (1 << 24)) >> 25
	h0 += carry9 * 19
	h9 -= carry9 << 25
	carry1 := (h1 + (1 << 24)) >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry3 := (h3 + (1 << 24)) >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry5 := (h5 + (1 << 24)) >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry7 := (h7 + (1 << 24)) >> 25
	h8 += carry7
	h7 -= carry7 << 25

	carry0 := (h0 + (1 << 25)) >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry2 := (h2 + (1 << 25)) >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry4 := (h4 + (1 << 25)) >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry6 := (h6 + (1 << 25)) >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry8 := (h8 + (1 << 25)) >> 26
	h9 += carry8
	h8 -= carry8 << 26

	h[0] = int32(h0)
	h[1] = int32(h1)
	h[2] = int32(h2)
	h[3] = int32(h3)
	h[4] = int32(h4)
	h[5] = int32(h5)
	h[6] = int32(h6)
	h[7] = int32(h7)
	h[8] = int32(h8)
	h[9] = int32(h9)
	return h
}

// Bytes returns the canonical little-endian 32-byte encoding of h, i.e. the
// unique representative of h's residue class in [0, p). h must be reduced
// (post-carry-chain); Bytes computes q = floor(h/p) in {0,1}, subtracts pq,
// and packs the result.
func (h *FieldElement) Bytes() [32]byte {
	h0 := int64(h[0])
	h1 := int64(h[1])
	h2 := int64(h[2])
	h3 := int64(h[3])
	h4 := int64(h[4])
	h5 := int64(h[5])
	h6 := int64(h[6])
	h7 := int64(h[7])
	h8 := int64(h[8])
	h9 := int64(h[9])

	q := (19*h9 + (1 << 24)) >> 25
	q = (h0 + q) >> 26
	q = (h1 + q) >> 25
	q = (h2 + q) >> 26
	q = (h3 + q) >> 25
	q = (h4 + q) >> 26
	q = (h5 + q) >> 25
	q = (h6 + q) >> 26
	q = (h7 + q) >> 25
	q = (h8 + q) >> 26
	q = (h9 + q) >> 25

	if q != 0 && q != 1 {
		panic("edwards25519: internal error: to_bytes quotient not in {0,1}")
	}

	h0 += 19 * q

	carry0 := h0 >> 26
	h1 += carry0
	h0 -= carry0 << 26
	carry1 := h1 >> 25
	h2 += carry1
	h1 -= carry1 << 25
	carry2 := h2 >> 26
	h3 += carry2
	h2 -= carry2 << 26
	carry3 := h3 >> 25
	h4 += carry3
	h3 -= carry3 << 25
	carry4 := h4 >> 26
	h5 += carry4
	h4 -= carry4 << 26
	carry5 := h5 >> 25
	h6 += carry5
	h5 -= carry5 << 25
	carry6 := h6 >> 26
	h7 += carry6
	h6 -= carry6 << 26
	carry7 := h7 >> 25
	h8 += carry7
	h7 -= carry7 << 25
	carry8 := h8 >> 26
	h9 += carry8
	h8 -= carry8 << 26
	carry9 := h9 >> 25
	h9 -= carry9 << 25
	if carry9 != q {
		panic("edwards25519: internal error: to_bytes residual limb nonzero")
	}

	var s [32]byte
	s[0] = byte(h0 >> 0)
	s[1] = byte(h0 >> 8)
	s[2] = byte(h0 >> 16)
	s[3] = byte((h0 >> 24) | (h1 << 2))
	s[4] = byte(h1 >> 6)
	s[5] = byte(h1 >> 14)
	s[6] = byte((h1 >> 22) | (h2 << 3))
	s[7] = byte(h2 >> 5)
	s[8] = byte(h2 >> 13)
	s[9] = byte((h2 >> 21) | (h3 << 5))
	s[10] = byte(h3 >> 3)
	s[11] = byte(h3 >> 11)
	s[12] = byte((h3 >> 19) | (h4 << 6))
	s[13] = byte(h4 >> 2)
	s[14] = byte(h4 >> 10)
	s[15] = byte(h4 >> 18)
	s[16] = byte(h5 >> 0)
	s[17] = byte(h5 >> 8)
	s[18] = byte(h5 >> 16)
	s[19] = byte((h5 >> 24) | (h6 << 1))
	s[20] = byte(h6 >> 7)
	s[21] = byte(h6 >> 15)
	s[22] = byte((h6 >> 23) | (h7 << 3))
	s[23] = byte(h7 >> 5)
	s[24] = byte(h7 >> 13)
	s[25] = byte((h7 >> 21) | (h8 << 4))
	s[26] = byte(h8 >> 4)
	s[27] = byte(h8 >> 12)
	s[28] = byte((h8 >> 20) | (h9 << 6))
	s[29] = byte(h9 >> 2)
	s[30] = byte(h9 >> 10)
	s[31] = byte(h9 >> 18)
	return s
}

// Equal reports whether h and f have identical limb arrays. This is only
// meaningful on reduced representations; compare canonical encodings
// (Bytes) to test equality of the represented field value in general.
func (h *FieldElement) Equal(f *FieldElement) bool {
	return *h == *f
}

// CondSwap conditionally swaps f and g in constant time: if swap == 0, both
// are left unchanged; if swap == 1, they are exchanged. Any other value of
// swap is a precondition violation. Control flow and memory access pattern
// depend only on swap, never on the values of f or g.
func CondSwap(f, g *FieldElement, swap int32) {
	mask := -swap
	for i := range f {
		x := (f[i] ^ g[i]) & mask
		f[i] ^= x
		g[i] ^= x
	}
}

func load3(in []byte) int64 {
	r := int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	return r
}

func load4(in []byte) int64 {
	r := int64(in[0])
	r |= int64(in[1]) << 8
	r |= int64(in[2]) << 16
	r |= int64(in[3]) << 24
	return r
}
