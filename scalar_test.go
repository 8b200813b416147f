package tri25519

import (
	"crypto/rand"
	"testing"
)

func TestScalarBasics(t *testing.T) {
	var zero Scalar
	if zero.IsZero() != 1 {
		t.Error("zero scalar should be zero")
	}
	if ScalarOne.IsZero() == 1 {
		t.Error("one should not be zero")
	}
	if !ScalarOne.InRange() {
		t.Error("one should be in range [1, n-1]")
	}
	if zero.InRange() {
		t.Error("zero should not be in range [1, n-1]")
	}
}

func TestScalarReduceBringsBelowN(t *testing.T) {
	var maxBytes [32]byte
	for i := range maxBytes {
		maxBytes[i] = 0xff
	}
	s := ScalarFromBytes(&maxBytes)
	if scalarLess(&s.n, &scalarN) != 1 {
		t.Error("reduced scalar should be less than n")
	}
}

func TestScalarAddSubRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		var aBytes, bBytes [32]byte
		rand.Read(aBytes[:])
		rand.Read(bBytes[:])
		a := ScalarFromBytes(&aBytes)
		b := ScalarFromBytes(&bBytes)

		var sum, back Scalar
		sum.Add(&a, &b)
		back.Sub(&sum, &b)

		if back.Equal(&a) != 1 {
			t.Fatalf("(a+b)-b should equal a")
		}
	}
}

func TestScalarMulInvRoundTrip(t *testing.T) {
	for i := 0; i < 8; i++ {
		var aBytes [32]byte
		rand.Read(aBytes[:])
		a := ScalarFromBytes(&aBytes)
		if a.IsZero() == 1 {
			continue
		}

		var inv, product Scalar
		inv.Inv(&a)
		product.Mul(&a, &inv)

		if product.Equal(&ScalarOne) != 1 {
			t.Fatalf("a * inv(a) should be 1 mod n")
		}
	}
}

func TestScalarMulDistributesOverAdd(t *testing.T) {
	var aBytes, bBytes, cBytes [32]byte
	rand.Read(aBytes[:])
	rand.Read(bBytes[:])
	rand.Read(cBytes[:])
	a := ScalarFromBytes(&aBytes)
	b := ScalarFromBytes(&bBytes)
	c := ScalarFromBytes(&cBytes)

	var bPlusC, left Scalar
	bPlusC.Add(&b, &c)
	left.Mul(&a, &bPlusC)

	var ab, ac, right Scalar
	ab.Mul(&a, &b)
	ac.Mul(&a, &c)
	right.Add(&ab, &ac)

	if left.Equal(&right) != 1 {
		t.Error("a*(b+c) should equal a*b + a*c mod n")
	}
}

func TestScalarNegation(t *testing.T) {
	var aBytes [32]byte
	rand.Read(aBytes[:])
	a := ScalarFromBytes(&aBytes)

	var neg, sum Scalar
	neg.Neg(&a)
	sum.Add(&a, &neg)

	if sum.IsZero() != 1 {
		t.Error("a + (-a) should be zero mod n")
	}
}
