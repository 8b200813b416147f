package tri25519

import "testing"

func TestPublicCurve25519ScalarMult(t *testing.T) {
	var e [32]byte
	e[0] = 2
	x, y := Curve25519Base()
	out := Curve25519ScalarMult(e, x)
	_ = y
	if out == ([32]byte{}) {
		t.Error("scalar mult of a nonzero scalar should not be the zero x-coordinate")
	}
}

func TestPublicEd25519ScalarMultIdentityAtOne(t *testing.T) {
	e := [32]byte{1}
	x, y := Ed25519Base()
	rx, ry := Ed25519ScalarMult(e, x, y)
	if rx != x || ry != y {
		t.Error("1 * base should equal base")
	}
}

func TestPublicIsoRoundTrips(t *testing.T) {
	x, y := Ed25519Base()
	wx, wy := EdwardsToWeierstrass(x, y)
	ex, ey := WeierstrassToEdwards(wx, wy)
	if ex != x || ey != y {
		t.Error("EdwardsToWeierstrass then WeierstrassToEdwards should round trip on the base point")
	}

	mx, my := EdwardsToMontgomery(x, y)
	ex2, ey2 := MontgomeryToEdwards(mx, my)
	if ex2 != x || ey2 != y {
		t.Error("EdwardsToMontgomery then MontgomeryToEdwards should round trip on the base point")
	}
}

func TestWei25519BaseIsGeneratorForPubkey(t *testing.T) {
	d := [32]byte{1}
	wx, wy := ECDSAPubkey(d)
	gx, gy := Wei25519Base()
	if wx != gx || wy != gy {
		t.Error("ECDSAPubkey(1) should equal Wei25519Base(), the d=1 case of d*G")
	}
}

func TestPublicECDSARoundTrip(t *testing.T) {
	d := fixedTestScalar(0x77)
	k := fixedTestScalar(0x88)
	var e [32]byte
	e[0] = 0x42

	wx, wy := ECDSAPubkey(d)
	r, s, ok := ECDSASign(d, e, k)
	if !ok {
		t.Fatal("sign should succeed")
	}
	if !ECDSAVerify(wx, wy, e, r, s) {
		t.Error("public API round trip should verify")
	}
}
