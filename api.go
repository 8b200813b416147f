// Package tri25519 implements elliptic-curve arithmetic over the prime
// field of order p = 2^255 - 19 across three birationally equivalent curve
// presentations — Curve25519 (Montgomery form), Ed25519 (twisted Edwards
// form), and Wei25519 (short Weierstrass form) — together with ECDSA
// signing and verification over the Weierstrass form.
//
// Every exported entry point takes and returns fixed 32-byte little-endian
// encodings. There is no heap allocation, no I/O, and no internal
// concurrency: every operation is a pure function of its inputs, safe for
// concurrent use by callers operating on disjoint buffers. Sign, key
// generation, and the Curve25519 scalar multiplication used for
// Diffie-Hellman are constant time in their secret inputs; verify and
// public-key compression are not required to be.
package tri25519

// Curve25519ScalarMult implements curve25519_scalar_mult: given a 32-byte
// scalar e (clamped per RFC 7748 before use) and a 32-byte x-coordinate q,
// returns the x-coordinate of e*Q on the Montgomery curve.
func Curve25519ScalarMult(e, q [32]byte) [32]byte {
	return scalarMult(e, q)
}

// Curve25519ScalarMultXY implements curve25519_scalar_mult_xy: given a
// 32-byte scalar e and an affine base point (xP, yP), returns the affine
// image (xR, yR) of e*P, recovered via Okeya-Sakurai y-recovery.
func Curve25519ScalarMultXY(e, xP, yP [32]byte) (xR, yR [32]byte) {
	return scalarMultXY(e, xP, yP)
}

// Ed25519ScalarMult implements ed25519_scalar_mult: given a 32-byte scalar e
// and an affine Edwards point (x, y), returns the affine image of e*P.
func Ed25519ScalarMult(e, x, y [32]byte) (xR, yR [32]byte) {
	var xFE, yFE FieldElement
	xFE.SetBytes(&x)
	yFE.SetBytes(&y)
	p := edFromAffine(&xFE, &yFE)
	r := edScalarMult(e, &p)
	rx, ry := edAffine(&r)
	return rx.Bytes(), ry.Bytes()
}

// Ed25519Base returns the affine coordinates of the Ed25519 base point.
func Ed25519Base() (x, y [32]byte) {
	return edBaseX.Bytes(), edBaseY.Bytes()
}

// Curve25519Base returns the affine Montgomery coordinates of the
// Curve25519 base point (9, base_y).
func Curve25519Base() (x, y [32]byte) {
	return curve25519BaseMX.Bytes(), curve25519BaseMY.Bytes()
}

// Wei25519Base returns the affine Weierstrass coordinates of G, the
// generator ECDSASign and ECDSAPubkey use for d*G and k*G — the
// Weierstrass image of the Ed25519 base point, computed once at package
// init.
func Wei25519Base() (wx, wy [32]byte) {
	return wGenX.Bytes(), wGenY.Bytes()
}

// EyToMx implements the ey -> mx coordinate-only isomorphism map.
func EyToMx(ey [32]byte) [32]byte {
	var eyFE FieldElement
	eyFE.SetBytes(&ey)
	mx := ey2mx(&eyFE)
	return mx.Bytes()
}

// MxToEy implements the mx -> ey coordinate-only isomorphism map.
func MxToEy(mx [32]byte) [32]byte {
	var mxFE FieldElement
	mxFE.SetBytes(&mx)
	ey := mx2eyOnly(&mxFE)
	return ey.Bytes()
}

// MxToWx implements the mx -> wx coordinate-only isomorphism map.
func MxToWx(mx [32]byte) [32]byte {
	var mxFE FieldElement
	mxFE.SetBytes(&mx)
	wx := mx2wx(&mxFE)
	return wx.Bytes()
}

// WxToMx implements the wx -> mx coordinate-only isomorphism map.
func WxToMx(wx [32]byte) [32]byte {
	var wxFE FieldElement
	wxFE.SetBytes(&wx)
	mx := wx2mx(&wxFE)
	return mx.Bytes()
}

// EyToEx implements ey2ex: recovers the Edwards x-coordinate from y and the
// desired parity, reporting ok as the curve-equation verification bit.
func EyToEx(y [32]byte, parity int) (x [32]byte, ok bool) {
	var yFE FieldElement
	yFE.SetBytes(&y)
	xFE, okBit := ey2ex(&yFE, parity)
	return xFE.Bytes(), okBit == 1
}

// WxToWy implements wx2wy: recovers the Weierstrass y-coordinate from wx
// and the desired sign, reporting ok as the curve-equation verification
// bit.
func WxToWy(wx [32]byte, sign int) (wy [32]byte, ok bool) {
	var wxFE FieldElement
	wxFE.SetBytes(&wx)
	wyFE, okBit := wx2wy(&wxFE, sign)
	return wyFE.Bytes(), okBit == 1
}

// EdwardsToWeierstrass implements the full e -> w affine map.
func EdwardsToWeierstrass(ex, ey [32]byte) (wx, wy [32]byte) {
	var exFE, eyFE FieldElement
	exFE.SetBytes(&ex)
	eyFE.SetBytes(&ey)
	wxFE, wyFE := e2w(&exFE, &eyFE)
	return wxFE.Bytes(), wyFE.Bytes()
}

// WeierstrassToEdwards implements the full w -> e affine map.
func WeierstrassToEdwards(wx, wy [32]byte) (ex, ey [32]byte) {
	var wxFE, wyFE FieldElement
	wxFE.SetBytes(&wx)
	wyFE.SetBytes(&wy)
	exFE, eyFE := w2e(&wxFE, &wyFE)
	return exFE.Bytes(), eyFE.Bytes()
}

// EdwardsToMontgomery implements the full e -> m affine map.
func EdwardsToMontgomery(ex, ey [32]byte) (mx, my [32]byte) {
	var exFE, eyFE FieldElement
	exFE.SetBytes(&ex)
	eyFE.SetBytes(&ey)
	mxFE, myFE := e2m(&exFE, &eyFE)
	return mxFE.Bytes(), myFE.Bytes()
}

// MontgomeryToEdwards implements the full m -> e affine map.
func MontgomeryToEdwards(mx, my [32]byte) (ex, ey [32]byte) {
	var mxFE, myFE FieldElement
	mxFE.SetBytes(&mx)
	myFE.SetBytes(&my)
	exFE, eyFE := m2e(&mxFE, &myFE)
	return exFE.Bytes(), eyFE.Bytes()
}

// MontgomeryToWeierstrass implements the full m -> w affine map.
func MontgomeryToWeierstrass(mx, my [32]byte) (wx, wy [32]byte) {
	var mxFE, myFE FieldElement
	mxFE.SetBytes(&mx)
	myFE.SetBytes(&my)
	wxFE, wyFE := m2w(&mxFE, &myFE)
	return wxFE.Bytes(), wyFE.Bytes()
}

// WeierstrassToMontgomery implements the full w -> m affine map.
func WeierstrassToMontgomery(wx, wy [32]byte) (mx, my [32]byte) {
	var wxFE, wyFE FieldElement
	wxFE.SetBytes(&wx)
	wyFE.SetBytes(&wy)
	mxFE, myFE := w2m(&wxFE, &wyFE)
	return mxFE.Bytes(), myFE.Bytes()
}
