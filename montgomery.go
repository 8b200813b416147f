package tri25519

// XZPoint is a point on Curve25519 (y^2 = x^3 + A*x^2 + x, A = 486662) held
// in XZ-projective form: affine x = X * Z^-1, and Z == 0 denotes the point at
// infinity. This is the representation the differential ladder operates on.
type XZPoint struct {
	X, Z FieldElement
}

// xDBL computes the doubling P3 = 2*P1 using the 1987 Montgomery formulas.
func xDBL(p1 *XZPoint) XZPoint {
	var x1sq, z1sq, x1z1, sum, inner, x3, z3 FieldElement

	x1sq.Square(&p1.X)
	z1sq.Square(&p1.Z)
	x3.Sub(&x1sq, &z1sq)
	x3.Square(&x3)

	x1z1.Mul(&p1.X, &p1.Z)
	inner.MulSmall(&x1z1, curveA)
	sum.Add(&x1sq, &z1sq)
	inner.Add(&inner, &sum)
	z3.Mul(&x1z1, &inner)
	z3.MulSmall(&z3, 4)

	return XZPoint{X: x3, Z: z3}
}

// xADD computes P5 = P2 + P3 given the XZ coordinates of their difference
// P1 = P2 - P3.
func xADD(p1, p2, p3 *XZPoint) XZPoint {
	var a, b, c, d, da, cb, sum, diff, x5, z5 FieldElement

	a.Add(&p2.X, &p2.Z)
	b.Sub(&p2.X, &p2.Z)
	c.Add(&p3.X, &p3.Z)
	d.Sub(&p3.X, &p3.Z)

	da.Mul(&d, &a)
	cb.Mul(&c, &b)

	sum.Add(&da, &cb)
	sum.Square(&sum)
	x5.Mul(&p1.Z, &sum)

	diff.Sub(&da, &cb)
	diff.Square(&diff)
	z5.Mul(&p1.X, &diff)

	return XZPoint{X: x5, Z: z5}
}

// clampScalar applies the standard RFC 7748 Curve25519 clamp in place:
// clear bits 0-2 of byte 0, clear bit 7 and set bit 6 of byte 31.
func clampScalar(e *[32]byte) {
	e[0] &= 248
	e[31] &= 127
	e[31] |= 64
}

// scalarBit returns bit i (0 = lsb) of the 32-byte little-endian scalar e.
func scalarBit(e *[32]byte, i int) int {
	return int((e[i/8] >> uint(i%8)) & 1)
}

// xzSelect performs a branchless (Xr,Zr) = bit==0 ? a : b.
func xzSelect(a, b *XZPoint, bit int) XZPoint {
	var r XZPoint
	r.X.Select(&a.X, &b.X, bit)
	r.Z.Select(&a.Z, &b.Z, bit)
	return r
}

// montgomeryLadder runs the constant-time Curve25519 differential ladder
// over a pre-clamped 32-byte little-endian scalar e and a base XZ point q.
// It maintains the invariant P_m - P_{m-1} = q and performs exactly one
// xDBL and two xADD per iteration regardless of the scalar's bits. At exit
// m equals the scalar's value k; it returns P_k, plus P_{k+1} = P_k + q
// recovered with one further xADD from the exited P_{k-1} = P_k - q — the
// (P_k, P_{k+1}) pair Okeya-Sakurai recovery needs.
func montgomeryLadder(e *[32]byte, q *XZPoint) (pk, pkPlus1 XZPoint) {
	pm := *q
	pm1 := XZPoint{X: FieldOne, Z: FieldZero}

	for i := 253; i >= 0; i-- {
		bit := scalarBit(e, i)

		p2m := xDBL(&pm)
		// P_m - P_{m-1} = q, so xADD with difference q recovers P_m + P_{m-1}.
		p2mMinus1 := xADD(q, &pm, &pm1)
		// P_2m - q = (P_m - P_{m-1}) + P_m - q = P_m + P_{m-1} = P_2m-1, so
		// xADD with difference p2mMinus1 recovers P_2m + q.
		p2mPlus1 := xADD(&p2mMinus1, &p2m, q)

		newPm := xzSelect(&p2m, &p2mPlus1, bit)
		newPm1 := xzSelect(&p2mMinus1, &p2m, bit)

		pm, pm1 = newPm, newPm1
	}

	// pm1 = P_{k-1} = P_k - q, so xADD with difference pm1 recovers
	// P_k + q = P_{k+1}.
	pkPlus1 = xADD(&pm1, &pm, q)
	return pm, pkPlus1
}

// scalarMult implements curve25519_scalar_mult: clamps e, runs the ladder
// over base x-coordinate x, and returns normalize(X_m * Z_m^-1).
func scalarMult(e [32]byte, x [32]byte) [32]byte {
	clampScalar(&e)

	var q XZPoint
	q.X.SetBytes(&x)
	q.Z = FieldOne

	pm, _ := montgomeryLadder(&e, &q)

	var zinv, result FieldElement
	zinv.Inv(&pm.Z)
	result.Mul(&pm.X, &zinv)
	result.Normalize()
	return result.Bytes()
}

// scalarMultXY implements curve25519_scalar_mult_xy: runs the ladder over
// affine base point (xP, yP), then uses Okeya-Sakurai recovery to produce
// the full affine image (xR, yR).
func scalarMultXY(e [32]byte, xP, yP [32]byte) (xR, yR [32]byte) {
	clampScalar(&e)

	var xFE, yFE FieldElement
	xFE.SetBytes(&xP)
	yFE.SetBytes(&yP)

	q := XZPoint{X: xFE, Z: FieldOne}
	pk, pkPlus1 := montgomeryLadder(&e, &q)

	xProj, yProj, zProj := okeyaSakuraiRecover(&xFE, &yFE, &pk, &pkPlus1)

	var zinv FieldElement
	zinv.Inv(&zProj)
	var xAffine, yAffine FieldElement
	xAffine.Mul(&xProj, &zinv)
	yAffine.Mul(&yProj, &zinv)
	xAffine.Normalize()
	yAffine.Normalize()
	return xAffine.Bytes(), yAffine.Bytes()
}

// okeyaSakuraiRecover implements the Okeya-Sakurai y-coordinate recovery
// formula: given the starting affine point (xP, yP), the ladder's terminal
// Q = (X_Q, Z_Q) = x(k*P) and D = (X_D, Z_D) = x((k+1)*P), it returns
// projective (X', Y', Z') for k*P on the Montgomery curve. D must be the
// successor (k+1)*P, not the predecessor (k-1)*P the ladder's invariant
// exposes directly — feeding the predecessor negates the recovered Y.
func okeyaSakuraiRecover(xP, yP *FieldElement, q, d *XZPoint) (xOut, yOut, zOut FieldElement) {
	var v1, v2, v3, v4 FieldElement

	v1.Mul(xP, &q.Z)            // v1 = xP * Z_Q
	v2.Add(&q.X, &v1)           // v2 = X_Q + v1

	v3.Sub(&q.X, &v1)
	v3.Square(&v3)
	v3.Mul(&v3, &d.X) // v3 = (X_Q - v1)^2 * X_D

	v1.MulSmall(&q.Z, curve2A) // v1 = 2A * Z_Q
	v2.Add(&v2, &v1)           // v2 = v2 + v1

	v4.Mul(xP, &q.X)
	v4.Add(&v4, &q.Z) // v4 = xP*X_Q + Z_Q

	v2.Mul(&v2, &v4) // v2 = v2 * v4

	v1.Mul(&v1, &q.Z) // v1 = v1 * Z_Q

	v2.Sub(&v2, &v1)
	v2.Mul(&v2, &d.Z) // v2 = (v2 - v1) * Z_D

	yOut.Sub(&v2, &v3) // Y' = v2 - v3

	v1.MulSmall(yP, 2)
	v1.Mul(&v1, &q.Z)
	v1.Mul(&v1, &d.Z) // v1 = 2*yP*Z_Q*Z_D

	xOut.Mul(&v1, &q.X) // X' = v1 * X_Q
	zOut.Mul(&v1, &q.Z) // Z' = v1 * Z_Q
	return
}
