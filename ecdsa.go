package tri25519

import "unsafe"

// This file implements ECDSA over Wei25519, composed from the Edwards
// engine's fast scalar multiplication and the isomorphism layer's e<->w
// maps, exactly as described for the public keygen/sign/verify entry
// points. The generator is G = e2w(edBase's affine coordinates), computed
// once at package init in constants.go.

// memclear zeroes n bytes starting at ptr one byte at a time, used to wipe
// the nonce and private-key scalars after sign has consumed them.
func memclear(ptr unsafe.Pointer, n uintptr) {
	for i := uintptr(0); i < n; i++ {
		*(*byte)(unsafe.Pointer(uintptr(ptr) + i)) = 0
	}
}

// digestToScalar folds a 32-byte digest e into its Scalar representative by
// taking the leftmost 253 bits when e is read big-endian: the bytes are
// reversed into little-endian order and the 256-bit value is shifted right
// by 3 bits, so only the low 3 bits of e[31] are dropped. This is a
// deliberate convention of this library and must be preserved exactly; it
// differs from reference ECDSA formulations that take the leftmost bits of
// an arbitrary-width digest directly.
func digestToScalar(e *[32]byte) Scalar {
	var le [32]byte
	for i := 0; i < 32; i++ {
		le[i] = e[31-i]
	}
	var shifted [32]byte
	var carry byte
	for i := 31; i >= 0; i-- {
		shifted[i] = (le[i] >> 3) | carry
		carry = le[i] << 5
	}
	return ScalarFromBytes(&shifted)
}

// ECDSAPubkey computes the Wei25519 public key (wx, wy) for a secret scalar
// d, via P = d*G_Ed followed by the Edwards-to-Weierstrass map.
func ECDSAPubkey(d [32]byte) (wx, wy [32]byte) {
	p := edScalarMult(d, &edBase)
	ex, ey := edAffine(&p)
	wxFE, wyFE := e2w(&ex, &ey)
	return wxFE.Bytes(), wyFE.Bytes()
}

// ECDSASign implements sign(d, e, k): if k == 0, returns ok = 0. Otherwise
// computes (wx1, wy1) = k*G, r = wx1 mod n (returning ok = 0 if r == 0),
// folds the digest e into z via digestToScalar, and returns
// s = k^-1*(z + r*d) mod n, with ok = 0 if s == 0.
func ECDSASign(d, e, k [32]byte) (r, s [32]byte, ok bool) {
	var kScalar, dScalar Scalar
	defer memclear(unsafe.Pointer(&kScalar), unsafe.Sizeof(kScalar))
	defer memclear(unsafe.Pointer(&dScalar), unsafe.Sizeof(dScalar))

	kScalar.SetBytes(&k)
	kScalar.Reduce()
	if kScalar.IsZero() == 1 {
		return r, s, false
	}

	p1 := edScalarMult(k, &edBase)
	ex1, ey1 := edAffine(&p1)
	wx1, _ := e2w(&ex1, &ey1)

	rBytes := wx1.Bytes()
	rScalar := ScalarFromBytes(&rBytes)
	if rScalar.IsZero() == 1 {
		return r, s, false
	}

	z := digestToScalar(&e)

	dScalar.SetBytes(&d)
	dScalar.Reduce()

	var rd, zPlusRd Scalar
	rd.Mul(&rScalar, &dScalar)
	zPlusRd.Add(&z, &rd)

	var kInv, sScalar Scalar
	kInv.Inv(&kScalar)
	sScalar.Mul(&kInv, &zPlusRd)

	if sScalar.IsZero() == 1 {
		return r, s, false
	}

	return rScalar.Bytes(), sScalar.Bytes(), true
}

// ECDSAVerify implements verify(wx, wy, e, r, s): rejects r or s outside
// [1, n-1]; otherwise computes z as in sign, w = s^-1 mod n,
// u1 = z*w mod n, u2 = r*w mod n, R = u1*G_Ed + u2*Q where Q is the Edwards
// image of (wx, wy), and accepts iff (wx_R mod n) == r.
func ECDSAVerify(wx, wy, e, r, s [32]byte) bool {
	var rScalar, sScalar Scalar
	rScalar.SetBytes(&r)
	sScalar.SetBytes(&s)
	if !rScalar.InRange() || !sScalar.InRange() {
		return false
	}

	z := digestToScalar(&e)

	var wxFE, wyFE FieldElement
	wxFE.SetBytes(&wx)
	wyFE.SetBytes(&wy)
	qex, qey := w2e(&wxFE, &wyFE)
	q := edFromAffine(&qex, &qey)

	var w, u1, u2 Scalar
	w.Inv(&sScalar)
	u1.Mul(&z, &w)
	u2.Mul(&rScalar, &w)

	u1Bytes := u1.Bytes()
	u2Bytes := u2.Bytes()

	p1 := edScalarMult(u1Bytes, &edBase)
	p2 := edScalarMult(u2Bytes, &q)
	rPoint := edAdd(&p1, &p2)

	rex, rey := edAffine(&rPoint)
	rwx, _ := e2w(&rex, &rey)

	rwxBytes := rwx.Bytes()
	computedR := ScalarFromBytes(&rwxBytes)
	return computedR.Equal(&rScalar) == 1
}
