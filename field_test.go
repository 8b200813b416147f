package tri25519

import (
	"crypto/rand"
	"testing"
)

func TestFieldBasics(t *testing.T) {
	var zero FieldElement
	if zero.IsZero() != 1 {
		t.Error("zero value should be zero")
	}
	if FieldOne.IsZero() == 1 {
		t.Error("one should not be zero")
	}
	if FieldOne.Equal(&FieldOne) != 1 {
		t.Error("one should equal itself")
	}
}

func TestFieldAddSubRoundTrip(t *testing.T) {
	var a, b, sum, back FieldElement
	var aBytes, bBytes [32]byte
	rand.Read(aBytes[:])
	rand.Read(bBytes[:])
	a.SetBytes(&aBytes)
	b.SetBytes(&bBytes)

	sum.Add(&a, &b)
	back.Sub(&sum, &b)

	if back.Equal(&a) != 1 {
		t.Error("(a+b)-b should equal a")
	}
}

func TestFieldNormalizeIdempotent(t *testing.T) {
	var a FieldElement
	var aBytes [32]byte
	rand.Read(aBytes[:])
	a.SetBytes(&aBytes)

	var once, twice FieldElement
	once.n = a.n
	once.Normalize()
	twice.n = once.n
	twice.Normalize()

	if once.Equal(&twice) != 1 {
		t.Error("normalize should be idempotent")
	}

	b := once.Bytes()
	var p FieldElement
	p.n = fieldP
	// once must be strictly less than p.
	diff, borrow := sub4(&once.n, &p.n)
	_ = diff
	if borrow == 0 {
		t.Errorf("normalized value %x should be < p", b)
	}
}

func TestFieldMulInvRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		var a FieldElement
		var aBytes [32]byte
		rand.Read(aBytes[:])
		a.SetBytes(&aBytes)
		if a.IsZero() == 1 {
			continue
		}

		var inv, product FieldElement
		inv.Inv(&a)
		product.Mul(&a, &inv)

		if product.Equal(&FieldOne) != 1 {
			t.Fatalf("a * inv(a) should be 1, got %x", product.Bytes())
		}
	}
}

func TestFieldSqrtRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		var a, aSq FieldElement
		var aBytes [32]byte
		rand.Read(aBytes[:])
		a.SetBytes(&aBytes)
		aSq.Square(&a)

		var cand FieldElement
		ok := cand.Sqrt(&aSq)
		if ok != 1 {
			t.Fatalf("sqrt(a^2) should verify for a=%x", aBytes)
		}

		var negCand, negA FieldElement
		negCand.Neg(&cand)
		negA.Neg(&a)
		if cand.Equal(&a) != 1 && cand.Equal(&negA) != 1 {
			t.Fatalf("sqrt(a^2) should be +-a, got %x for a=%x", cand.Bytes(), aBytes)
		}
		_ = negCand
	}
}

func TestFieldMulAssociativeAndCommutative(t *testing.T) {
	var aBytes, bBytes, cBytes [32]byte
	rand.Read(aBytes[:])
	rand.Read(bBytes[:])
	rand.Read(cBytes[:])

	var a, b, c FieldElement
	a.SetBytes(&aBytes)
	b.SetBytes(&bBytes)
	c.SetBytes(&cBytes)

	var ab, abc1, bc, abc2 FieldElement
	ab.Mul(&a, &b)
	abc1.Mul(&ab, &c)

	bc.Mul(&b, &c)
	abc2.Mul(&a, &bc)

	if abc1.Equal(&abc2) != 1 {
		t.Error("field multiplication should be associative")
	}

	var ba FieldElement
	ba.Mul(&b, &a)
	if ab.Equal(&ba) != 1 {
		t.Error("field multiplication should be commutative")
	}
}

func TestFieldSelect(t *testing.T) {
	var a, b, r FieldElement
	a.n = [4]uint64{1, 2, 3, 4}
	b.n = [4]uint64{5, 6, 7, 8}

	r.Select(&a, &b, 0)
	if r.n != a.n {
		t.Error("select with bit=0 should return a")
	}
	r.Select(&a, &b, 1)
	if r.n != b.n {
		t.Error("select with bit=1 should return b")
	}
}

func TestFieldZeroInverse(t *testing.T) {
	var zero, inv FieldElement
	inv.Inv(&zero)
	if inv.IsZero() != 1 {
		t.Error("inverse of zero should be zero by convention")
	}
}
