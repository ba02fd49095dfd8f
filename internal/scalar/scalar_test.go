// Copyright 2016 The Go Authors. All rights reserved.
// Copyright 2019 Henry de Valence. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import (
	"testing"
	"testing/quick"
)

func TestReduceIsIdempotent(t *testing.T) {
	f := func(x Generated) bool {
		var wide [64]byte
		copy(wide[:32], x[:])
		var out [32]byte
		Reduce(&out, &wide)
		return out == [32]byte(x)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestReduceProducesMinimalResult(t *testing.T) {
	f := func(seed [64]byte) bool {
		var out [32]byte
		Reduce(&out, &seed)
		return IsMinimal(out[:])
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMulAddWithZeroIsIdentity(t *testing.T) {
	f := func(a, b Generated) bool {
		var zero, out [32]byte
		var bb [32]byte = b
		MulAdd(&out, (*[32]byte)(&a), &zero, &bb)
		return out == bb
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMulAddWithOneMultiplierAddsDirectly(t *testing.T) {
	f := func(a, c Generated) bool {
		one := [32]byte{1}
		var out [32]byte
		MulAdd(&out, (*[32]byte)(&a), &one, (*[32]byte)(&c))

		var sum [64]byte
		var carry uint16
		for i := 0; i < 32; i++ {
			carry += uint16(a[i]) + uint16(c[i])
			sum[i] = byte(carry)
			carry >>= 8
		}
		sum[32] = byte(carry)
		var want [32]byte
		Reduce(&want, &sum)
		return out == want && IsMinimal(out[:])
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestIsMinimalRejectsOrder(t *testing.T) {
	l := [32]byte{
		0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
		0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
	}
	if IsMinimal(l[:]) {
		t.Fatal("order itself must not be minimal")
	}

	lMinusOne := l
	lMinusOne[0]--
	if !IsMinimal(lMinusOne[:]) {
		t.Fatal("l-1 must be minimal")
	}
}

func TestIsMinimalRejectsWrongLength(t *testing.T) {
	if IsMinimal(make([]byte, 31)) {
		t.Fatal("accepted 31-byte input")
	}
	if IsMinimal(make([]byte, 33)) {
		t.Fatal("accepted 33-byte input")
	}
}
