package tri25519

// This file implements the birational maps between the three curve forms:
// Curve25519 (Montgomery), Ed25519 (twisted Edwards), and Wei25519 (short
// Weierstrass). All maps are total over the field but undefined at the
// exceptional points named in their doc comments; callers must not pass
// those in, and the library does not detect them.

// ey2mx computes mx = (1+ey)/(1-ey). Undefined at ey = 1 (Edwards neutral).
func ey2mx(ey *FieldElement) FieldElement {
	var num, den, inv, mx FieldElement
	num.Add(&FieldOne, ey)
	den.Sub(&FieldOne, ey)
	inv.Inv(&den)
	mx.Mul(&num, &inv)
	return mx
}

// mx2eyOnly computes ey = (mx-1)/(mx+1). Undefined at mx = -1.
// Only ey is produced here; see mx2ey for the full-point variant used at
// init time.
func mx2eyOnly(mx *FieldElement) FieldElement {
	var num, den, inv, ey FieldElement
	num.Sub(mx, &FieldOne)
	den.Add(mx, &FieldOne)
	inv.Inv(&den)
	ey.Mul(&num, &inv)
	return ey
}

// mx2ey is the full-point Montgomery-to-Edwards affine map used to seed the
// package's Edwards generator from the Curve25519 base point at init time:
// ey = (mx-1)/(mx+1); ex = c*mx/my.
func mx2ey(mx, my *FieldElement) (ex, ey FieldElement) {
	ey = mx2eyOnly(mx)

	var myInv FieldElement
	myInv.Inv(my)
	ex.Mul(&fieldC, mx)
	ex.Mul(&ex, &myInv)
	return
}

// mx2wx computes wx = mx+delta if mx != 0, else wx = 0 (library convention:
// the Weierstrass point at infinity corresponds to Curve25519's 2-torsion
// point at x = 0).
func mx2wx(mx *FieldElement) FieldElement {
	var shifted FieldElement
	shifted.Add(mx, &fieldDelta)
	var wx FieldElement
	wx.Select(&shifted, &FieldZero, mx.IsZero())
	return wx
}

// wx2mx computes mx = wx-delta if wx != 0, else mx = 0. Same convention.
func wx2mx(wx *FieldElement) FieldElement {
	var shifted FieldElement
	shifted.Sub(wx, &fieldDelta)
	var mx FieldElement
	mx.Select(&shifted, &FieldZero, wx.IsZero())
	return mx
}

// ey2ex recovers the Edwards x-coordinate from y and a desired parity,
// verifying against the curve equation. c = y^2, b = (1+d*y^2)^-1,
// a = y^2-1, t = a*b; x = sqrt(t), sign-selected so that (x[0] xor parity)
// & 1 == 0; ok reports whether x^2 == t.
func ey2ex(y *FieldElement, parity int) (x FieldElement, ok int) {
	var ySq, dy2, b, a, t FieldElement

	ySq.Square(y)
	dy2.Mul(&edD, &ySq)
	var onePlusDy2 FieldElement
	onePlusDy2.Add(&FieldOne, &dy2)
	b.Inv(&onePlusDy2)
	a.Sub(&ySq, &FieldOne)
	t.Mul(&a, &b)

	var cand FieldElement
	sqrtOK := cand.Sqrt(&t)

	var negCand FieldElement
	negCand.Neg(&cand)
	wantFlip := cand.IsOdd() ^ parity
	cand.Select(&cand, &negCand, wantFlip)

	var check FieldElement
	check.Square(&cand)
	ok = check.Equal(&t) & sqrtOK
	x = cand
	return
}

// wx2wy recovers the Weierstrass y-coordinate from wx and a desired sign,
// verifying against the curve equation: t = wx^3 + a*wx + b; wy = +-sqrt(t)
// selected per sign.
func wx2wy(wx *FieldElement, sign int) (wy FieldElement, ok int) {
	var wx2, wx3, awx, t FieldElement

	wx2.Square(wx)
	wx3.Mul(&wx2, wx)
	awx.Mul(&weierstrassA, wx)
	t.Add(&wx3, &awx)
	t.Add(&t, &weierstrassB)

	var cand FieldElement
	sqrtOK := cand.Sqrt(&t)

	var negCand FieldElement
	negCand.Neg(&cand)
	wantFlip := cand.IsOdd() ^ sign
	cand.Select(&cand, &negCand, wantFlip)

	var check FieldElement
	check.Square(&cand)
	ok = check.Equal(&t) & sqrtOK
	wy = cand
	return
}

// e2w maps an Edwards affine point to Weierstrass: wx = (1+ey)/(1-ey)+delta;
// wy = c*(1+ey)/((1-ey)*ex).
func e2w(ex, ey *FieldElement) (wx, wy FieldElement) {
	var onePlusEy, oneMinusEy, ratio, ratioInvDen FieldElement
	onePlusEy.Add(&FieldOne, ey)
	oneMinusEy.Sub(&FieldOne, ey)

	var inv FieldElement
	inv.Inv(&oneMinusEy)
	ratio.Mul(&onePlusEy, &inv)

	wx.Add(&ratio, &fieldDelta)

	var denom FieldElement
	denom.Mul(&oneMinusEy, ex)
	ratioInvDen.Inv(&denom)
	wy.Mul(&fieldC, &onePlusEy)
	wy.Mul(&wy, &ratioInvDen)
	return
}

// w2e maps a Weierstrass affine point to Edwards: pa = 3*wx-A;
// ex = c*pa/(3*wy); ey = (pa-3)/(pa+3).
func w2e(wx, wy *FieldElement) (ex, ey FieldElement) {
	var threeWx, pa FieldElement
	threeWx.MulSmall(wx, 3)
	var aFE FieldElement
	aFE.n = [4]uint64{curveA, 0, 0, 0}
	pa.Sub(&threeWx, &aFE)

	var threeWy, threeWyInv FieldElement
	threeWy.MulSmall(wy, 3)
	threeWyInv.Inv(&threeWy)
	ex.Mul(&fieldC, &pa)
	ex.Mul(&ex, &threeWyInv)

	var paMinus3, paPlus3, paPlus3Inv FieldElement
	paMinus3.Sub(&pa, &FieldThree)
	paPlus3.Add(&pa, &FieldThree)
	paPlus3Inv.Inv(&paPlus3)
	ey.Mul(&paMinus3, &paPlus3Inv)
	return
}

// e2m maps an Edwards affine point to Montgomery: mx = (1+ey)/(1-ey);
// my = c*(1+ey)/((1-ey)*ex).
func e2m(ex, ey *FieldElement) (mx, my FieldElement) {
	mx = ey2mx(ey)

	var onePlusEy, oneMinusEy, denom, denomInv FieldElement
	onePlusEy.Add(&FieldOne, ey)
	oneMinusEy.Sub(&FieldOne, ey)
	denom.Mul(&oneMinusEy, ex)
	denomInv.Inv(&denom)
	my.Mul(&fieldC, &onePlusEy)
	my.Mul(&my, &denomInv)
	return
}

// m2e maps a Montgomery affine point to Edwards: ex = c*mx/my;
// ey = (mx-1)/(mx+1).
func m2e(mx, my *FieldElement) (ex, ey FieldElement) {
	var myInv FieldElement
	myInv.Inv(my)
	ex.Mul(&fieldC, mx)
	ex.Mul(&ex, &myInv)
	ey = mx2eyOnly(mx)
	return
}

// m2w maps a Montgomery affine point to Weierstrass: the Weierstrass y
// equals the Montgomery y; x is shifted by the m<->w convention.
func m2w(mx, my *FieldElement) (wx, wy FieldElement) {
	wx = mx2wx(mx)
	wy = *my
	return
}

// w2m maps a Weierstrass affine point to Montgomery: the Montgomery y
// equals the Weierstrass y; x is shifted back by the m<->w convention.
func w2m(wx, wy *FieldElement) (mx, my FieldElement) {
	mx = wx2mx(wx)
	my = *wy
	return
}
