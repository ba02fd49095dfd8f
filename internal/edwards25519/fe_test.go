// Copyright (c) 2017 George Tankersley. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards25519

import (
	mathrand "math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

// Generate produces an arbitrary FieldElement for testing/quick property
// tests.
func (FieldElement) Generate(mrand *mathrand.Rand, size int) reflect.Value {
	var b [32]byte
	mrand.Read(b[:])
	var f FieldElement
	f.FromBytes(&b)
	return reflect.ValueOf(f)
}

func TestMulCommutes(t *testing.T) {
	f := func(x, y FieldElement) bool {
		var a, b FieldElement
		a.Mul(&x, &y)
		b.Mul(&y, &x)
		return a.Equal(&b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMulAssociates(t *testing.T) {
	f := func(x, y, z FieldElement) bool {
		var a, b FieldElement
		a.Mul(&x, &y)
		a.Mul(&a, &z)
		b.Mul(&y, &z)
		b.Mul(&x, &b)
		return a.Equal(&b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSquareMatchesMul(t *testing.T) {
	f := func(x FieldElement) bool {
		var a, b FieldElement
		a.Mul(&x, &x)
		b.Square(&x)
		return a.Equal(&b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInvertInverts(t *testing.T) {
	f := func(x FieldElement) bool {
		var inv, invInv FieldElement
		inv.Invert(&x)
		invInv.Invert(&inv)
		return invInv.Equal(&x)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestInvertIsMulIdentity(t *testing.T) {
	f := func(x FieldElement) bool {
		if x.Equal(&feZero) {
			return true
		}
		var inv, prod FieldElement
		inv.Invert(&x)
		prod.Mul(&x, &inv)
		return prod.Bytes() == feOne.Bytes()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFromToBytesRoundTrips(t *testing.T) {
	for i := 0; i < 50; i++ {
		var e [32]byte
		for idx := range e {
			e[idx] = byte(idx * (1289 + i*761))
		}
		e[0] &= 248
		e[31] &= 127
		e[31] |= 64

		var fe FieldElement
		fe.FromBytes(&e)
		got := fe.Bytes()
		if got != e {
			t.Fatalf("case %d: round trip mismatch: got %x, want %x", i, got, e)
		}
	}
}

func TestCondSwap(t *testing.T) {
	f := FieldElement{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	g := FieldElement{11, 21, 31, 41, 51, 61, 71, 81, 91, 101}
	fInit, gInit := f, g

	CondSwap(&f, &g, 0)
	if f != fInit || g != gInit {
		t.Fatal("swap=0 changed operands")
	}

	CondSwap(&f, &g, 1)
	if f != gInit || g != fInit {
		t.Fatal("swap=1 did not exchange operands")
	}
}
