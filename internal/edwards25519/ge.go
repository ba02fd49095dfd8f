// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	"errors"

	"filippo.io/edwards25519"
)

// GeP2 is a point on the twisted Edwards curve in projective (X:Y:Z)
// coordinates, representing the affine point (X/Z, Y/Z). It is carried as
// an extension point for the Edwards group arithmetic this package leaves
// to its collaborator; nothing in this package currently produces one.
type GeP2 struct {
	X, Y, Z FieldElement
}

// GeP1P1 is a point in the completed (P1xP1) coordinate system used as an
// intermediate result of point addition and doubling formulas. Like GeP2 it
// is a declared extension point, not populated by this package.
type GeP1P1 struct {
	X, Y, Z, T FieldElement
}

// GeP3 is a point on the twisted Edwards curve in extended (X:Y:Z:T)
// coordinates, representing the affine point (X/Z, Y/Z) with the additional
// invariant T = XY/Z. ScalarMultBase only ever populates Y and xSign, since
// its caller (Ed25519 key and signature generation) needs nothing but the
// compressed encoding; X, Z, and T stay zero.
type GeP3 struct {
	X, Y, Z, T FieldElement
	xSign      int32
}

// ScalarMultBase computes [scalar]B, where B is the Ed25519 base point and
// scalar is a 32-byte little-endian integer. The scalar is reduced mod l
// before the multiplication, which leaves the result unchanged since B has
// order l; no clamping is applied here, so a caller that needs a clamped
// scalar (Ed25519 key derivation) clamps it itself. The Edwards point
// addition and doubling formulas needed to do this are delegated to a
// companion implementation of the group; this package only knows how to
// decode the result into a GeP3.
func ScalarMultBase(scalar *[32]byte) (GeP3, error) {
	var wide [64]byte
	copy(wide[:], scalar[:])
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return GeP3{}, errors.New("edwards25519: invalid base-point scalar: " + err.Error())
	}
	p := edwards25519.NewIdentityPoint().ScalarBaseMult(s)
	var enc [32]byte
	copy(enc[:], p.Bytes())
	var out GeP3
	out.fromBytesUnchecked(&enc)
	return out, nil
}

// Bytes returns the canonical 32-byte compressed encoding of the point: the
// little-endian encoding of Y, with the sign of X folded into the top bit.
func (p *GeP3) Bytes() [32]byte {
	enc := p.Y.Bytes()
	enc[31] ^= byte(p.xSign) << 7
	return enc
}

// fromBytesUnchecked decodes enc (the output of filippo.io/edwards25519's
// Point.Bytes) into p's y-coordinate and the sign bit of x, the only parts
// of the extended representation ScalarMultBase's caller needs.
func (p *GeP3) fromBytesUnchecked(enc *[32]byte) {
	var y [32]byte
	copy(y[:], enc[:])
	p.xSign = int32(y[31] >> 7)
	y[31] &= 127
	p.Y.FromBytes(&y)
}

// Verify checks an Ed25519 signature sig over message under public key pk,
// following RFC 8032 section 5.1.7: reject if S is not in [0, l), decode
// A = -pk as an Edwards point, and accept iff [S]B + [k]A re-encodes to R,
// where k = SHA-512(R || pk || message) mod l is computed by the caller and
// passed in. Edwards point decoding,
// negation, and the double scalar multiplication are delegated to the same
// collaborator as ScalarMultBase, since this package never implements
// Edwards addition/doubling itself.
func Verify(pk [32]byte, r [32]byte, s [32]byte, k [32]byte) bool {
	A, err := edwards25519.NewIdentityPoint().SetBytes(pk[:])
	if err != nil {
		return false
	}
	A.Negate(A)

	sScalar, err := edwards25519.NewScalar().SetCanonicalBytes(s[:])
	if err != nil {
		return false
	}
	kScalar, err := edwards25519.NewScalar().SetCanonicalBytes(k[:])
	if err != nil {
		return false
	}

	rPrime := edwards25519.NewIdentityPoint().VarTimeDoubleScalarBaseMult(kScalar, A, sScalar)
	var rPrimeEnc [32]byte
	copy(rPrimeEnc[:], rPrime.Bytes())
	return rPrimeEnc == r
}
