package tri25519

import (
	"crypto/subtle"
	"math/bits"
)

// FieldElement represents a residue modulo p = 2^255 - 19, the base field of
// Curve25519 / Ed25519 / Wei25519. Internally it is four uint64 limbs in
// little-endian order (limb 0 holds bits 0-63). Arithmetic operations tolerate
// a bounded amount of overflow above p between calls; normalize brings a value
// back into the canonical range [0, p).
//
// This mirrors the limb-based, carry-propagating representation used for the
// secp256k1 field in this package's ancestor, adapted to the 2^255-19 modulus
// and to 4x64 limbs instead of 5x52.
type FieldElement struct {
	n [4]uint64
}

// p in limbs: 2^255 - 19.
var fieldP = [4]uint64{
	0xFFFFFFFFFFFFFFED,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0x7FFFFFFFFFFFFFFF,
}

// 2*p in limbs: 2^256 - 38, used to build a representative of -a mod p that is
// always non-negative regardless of how non-canonical a is.
var field2P = [4]uint64{
	0xFFFFFFFFFFFFFFDA,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
	0xFFFFFFFFFFFFFFFF,
}

var (
	// FieldZero is the additive identity.
	FieldZero = FieldElement{}
	// FieldOne is the multiplicative identity.
	FieldOne = FieldElement{n: [4]uint64{1, 0, 0, 0}}
	// FieldThree is the small constant 3, used in several isomorphism formulas.
	FieldThree = FieldElement{n: [4]uint64{3, 0, 0, 0}}
)

// curveA is the Montgomery curve constant A = 486662.
const curveA = 486662

// curve2A is 2*A, used by Okeya-Sakurai y-recovery.
const curve2A = 2 * curveA

// parseFE parses a little-endian 32-byte array literal into a FieldElement.
// Used for every bit-exact constant in this package so none of them need to
// be hand-transcribed into limb form; the package initialization order for
// var declarations like the ones below is resolved by the compiler's
// dependency analysis, not by file order, so these are safe to reference
// from other files' top-level var initializers.
func parseFE(b [32]byte) FieldElement {
	var fe FieldElement
	fe.SetBytes(&b)
	return fe
}

// fieldDelta and fieldC are the isomorphism constants delta = (p+A)/3 mod p
// and c = sqrt(-(A+2)) mod p, as specified bit-exactly in the curve constant
// table.
var fieldDelta = parseFE([32]byte{
	0x51, 0x24, 0xad, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
	0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0x2a,
})

var fieldC = parseFE([32]byte{
	0xe7, 0x81, 0xba, 0x00, 0x55, 0xfb, 0x91, 0x33, 0x7d, 0xe5, 0x82, 0xb4, 0x2e, 0x2c, 0x5e, 0x3a,
	0x81, 0xb0, 0x03, 0xfc, 0x23, 0xf7, 0x84, 0x2d, 0x44, 0xf9, 0x5f, 0x9f, 0x0b, 0x12, 0xd9, 0x70,
})

// fieldSqrtM1 is sqrt(-1) mod p, the standard twist-correction constant for
// the p = 5 (mod 8) square root algorithm below.
var fieldSqrtM1 = parseFE([32]byte{
	0xb0, 0xa0, 0x0e, 0x4a, 0x27, 0x1b, 0xee, 0xc4, 0x78, 0xe4, 0x2f, 0xad, 0x06, 0x18, 0x43, 0x2f,
	0xa7, 0xd7, 0xfb, 0x3d, 0x99, 0x00, 0x4d, 0x2b, 0x0b, 0xdf, 0xc1, 0x4f, 0x80, 0x24, 0x83, 0x2b,
})

// reduce256 folds n (a small coefficient of 2^256) into limbs using
// 2^256 = 38 (mod p). Two fixed passes are enough: the first absorbs a
// coefficient up to 64 bits, the second absorbs the single carry bit the
// first pass can produce, and bits.Add64 always returns a carry in {0,1}
// regardless of the magnitude of the value being added.
func reduce256(limbs *[4]uint64, n uint64) {
	add := n * 38
	for pass := 0; pass < 2; pass++ {
		var c uint64
		limbs[0], c = bits.Add64(limbs[0], add, 0)
		limbs[1], c = bits.Add64(limbs[1], 0, c)
		limbs[2], c = bits.Add64(limbs[2], 0, c)
		limbs[3], c = bits.Add64(limbs[3], 0, c)
		add = c * 38
	}
}

func add4(a, b *[4]uint64) (r [4]uint64, carry uint64) {
	r[0], carry = bits.Add64(a[0], b[0], 0)
	r[1], carry = bits.Add64(a[1], b[1], carry)
	r[2], carry = bits.Add64(a[2], b[2], carry)
	r[3], carry = bits.Add64(a[3], b[3], carry)
	return
}

func sub4(a, b *[4]uint64) (r [4]uint64, borrow uint64) {
	r[0], borrow = bits.Sub64(a[0], b[0], 0)
	r[1], borrow = bits.Sub64(a[1], b[1], borrow)
	r[2], borrow = bits.Sub64(a[2], b[2], borrow)
	r[3], borrow = bits.Sub64(a[3], b[3], borrow)
	return
}

// Add sets r = a + b (mod p), leaving the result in the bounded-overflow form
// that normalize can canonicalize.
func (r *FieldElement) Add(a, b *FieldElement) *FieldElement {
	sum, carry := add4(&a.n, &b.n)
	reduce256(&sum, carry)
	r.n = sum
	return r
}

// Neg sets r = -a (mod p).
func (r *FieldElement) Neg(a *FieldElement) *FieldElement {
	diff, borrow := sub4(&field2P, &a.n)
	// For a > 2p (the top 37 values of the 256-bit range), field2P - a
	// underflows and wraps to 2^256 + (2p - a); since 2^256 = 38 (mod p),
	// that wrapped value is 38 too high, so the excess must be subtracted,
	// not added, to land back on -a (mod p).
	correction := [4]uint64{borrow * 38, 0, 0, 0}
	out, _ := sub4(&diff, &correction)
	r.n = out
	return r
}

// Sub sets r = a - b (mod p).
func (r *FieldElement) Sub(a, b *FieldElement) *FieldElement {
	var nb FieldElement
	nb.Neg(b)
	return r.Add(a, &nb)
}

// MulSmall sets r = a*k (mod p) for a small (<= 32-bit) constant k.
func (r *FieldElement) MulSmall(a *FieldElement, k uint32) *FieldElement {
	var prod [4]uint64
	var carry uint64
	kk := uint64(k)
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(a.n[i], kk)
		var c uint64
		prod[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	reduce256(&prod, carry)
	r.n = prod
	return r
}

// Mul sets r = a*b (mod p). The low-level primitive does not require the
// output to avoid aliasing inputs; unlike the teacher's secp256k1 layer, Go's
// value semantics here make an internal temporary the simplest way to honor
// that contract without the caller needing to care.
func (r *FieldElement) Mul(a, b *FieldElement) *FieldElement {
	// Column-wise schoolbook multiply: for each row i, walk b's limbs j,
	// folding both the running column total and the carry from the previous
	// column into the 128-bit product before storing. Each column's partial
	// sum (two 64-bit additions into a 128-bit product) never overflows a
	// uint64 carry, so a single carry variable per row suffices.
	var prod [8]uint64
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a.n[i], b.n[j])
			var c uint64
			lo, c = bits.Add64(lo, prod[i+j], 0)
			hi, _ = bits.Add64(hi, 0, c)
			lo, c = bits.Add64(lo, carry, 0)
			hi, _ = bits.Add64(hi, 0, c)
			prod[i+j] = lo
			carry = hi
		}
		prod[i+4] += carry
	}

	low := [4]uint64{prod[0], prod[1], prod[2], prod[3]}
	high := [4]uint64{prod[4], prod[5], prod[6], prod[7]}

	var folded [4]uint64
	var foldCarry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(high[i], 38)
		var c uint64
		folded[i], c = bits.Add64(lo, foldCarry, 0)
		foldCarry = hi + c
	}

	sum, carry := add4(&low, &folded)
	reduce256(&sum, foldCarry+carry)
	r.n = sum
	return r
}

// Square sets r = a*a (mod p).
func (r *FieldElement) Square(a *FieldElement) *FieldElement {
	return r.Mul(a, a)
}

// Normalize reduces r to its canonical residue in [0, p). Two fixed,
// branchless conditional subtractions of p are always performed regardless of
// the data, which is enough headroom for any value produced by Add/Sub/Mul
// above.
func (r *FieldElement) Normalize() *FieldElement {
	for i := 0; i < 2; i++ {
		diff, borrow := sub4(&r.n, &fieldP)
		r.Select(r, &FieldElement{n: diff}, int(borrow^1))
	}
	return r
}

// SetBytes parses a 32-byte little-endian encoding into r. The input need not
// be canonical; arithmetic on r remains correct, and Normalize reduces it.
func (r *FieldElement) SetBytes(b *[32]byte) *FieldElement {
	for i := 0; i < 4; i++ {
		r.n[i] = readLE64(b[i*8 : i*8+8])
	}
	return r
}

// Bytes returns the canonical 32-byte little-endian encoding of r.
func (r *FieldElement) Bytes() [32]byte {
	var t FieldElement
	t.n = r.n
	t.Normalize()
	var out [32]byte
	for i := 0; i < 4; i++ {
		writeLE64(out[i*8:i*8+8], t.n[i])
	}
	return out
}

func readLE64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func writeLE64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// Equal reports whether a and b normalize to the same residue. Constant time
// in the value bits.
func (r *FieldElement) Equal(a *FieldElement) int {
	var ra, rb FieldElement
	ra.n, rb.n = r.n, a.n
	ra.Normalize()
	rb.Normalize()

	var ba, bb [32]byte
	for i := 0; i < 4; i++ {
		writeLE64(ba[i*8:i*8+8], ra.n[i])
		writeLE64(bb[i*8:i*8+8], rb.n[i])
	}
	return subtle.ConstantTimeCompare(ba[:], bb[:])
}

// IsZero reports whether r normalizes to zero.
func (r *FieldElement) IsZero() int {
	return r.Equal(&FieldZero)
}

// Select performs a branchless r = (bit == 0) ? a : b.
func (r *FieldElement) Select(a, b *FieldElement, bit int) *FieldElement {
	mask := uint64(-(int64(bit) & 1))
	for i := 0; i < 4; i++ {
		r.n[i] = a.n[i] ^ (mask & (a.n[i] ^ b.n[i]))
	}
	return r
}

// IsOdd reports the low bit of the canonical residue (parity), used by the
// sign-selection conventions of the isomorphism recovery helpers.
func (r *FieldElement) IsOdd() int {
	var t FieldElement
	t.n = r.n
	t.Normalize()
	return int(t.n[0] & 1)
}

// Inv sets r = a^-1 (mod p) for a != 0, and r = 0 for a == 0. Computed via
// Fermat's little theorem, r = a^(p-2), using the standard fixed addition
// chain for the exponent p-2 = 2^255-21 (the same chain underlies Sqrt
// below, up to the final few steps).
func (r *FieldElement) Inv(a *FieldElement) *FieldElement {
	var z2, t0, t1, t2 FieldElement

	z2.Square(a)             // z2 = a^(2^1)
	t0.Square(&z2)            // a^(2^2)
	t0.Square(&t0)            // a^(2^3)
	t0.Mul(a, &t0)            // a^9
	z2.Mul(&z2, &t0)          // a^11
	t1.Square(&z2)            // a^22
	t1.Mul(&t0, &t1)          // a^31 = a^(2^5-1)

	t0.Square(&t1)
	for i := 1; i < 5; i++ {
		t0.Square(&t0)
	}
	t0.Mul(&t0, &t1) // a^(2^10-1)

	t2.Square(&t0)
	for i := 1; i < 10; i++ {
		t2.Square(&t2)
	}
	t2.Mul(&t2, &t0) // a^(2^20-1)

	var t3 FieldElement
	t3.Square(&t2)
	for i := 1; i < 20; i++ {
		t3.Square(&t3)
	}
	t3.Mul(&t3, &t2) // a^(2^40-1)

	t3.Square(&t3)
	for i := 1; i < 10; i++ {
		t3.Square(&t3)
	}
	t0.Mul(&t3, &t0) // a^(2^50-1)

	t2.Square(&t0)
	for i := 1; i < 50; i++ {
		t2.Square(&t2)
	}
	t2.Mul(&t2, &t0) // a^(2^100-1)

	t3.Square(&t2)
	for i := 1; i < 100; i++ {
		t3.Square(&t3)
	}
	t3.Mul(&t3, &t2) // a^(2^200-1)

	t3.Square(&t3)
	for i := 1; i < 50; i++ {
		t3.Square(&t3)
	}
	t0.Mul(&t3, &t0) // a^(2^250-1)

	t0.Square(&t0)
	for i := 1; i < 5; i++ {
		t0.Square(&t0)
	}
	r.Mul(&t0, &z2) // a^((2^250-1)*2^5 + 11) = a^(2^255-21) = a^(p-2)
	return r
}

// Sqrt sets r to a candidate square root of a, computed as a^((p+3)/8), with
// the standard twist correction: when the candidate does not square back to
// a, it is multiplied by sqrt(-1). ok is 1 iff the (possibly corrected)
// candidate squares to a. Callers that need a particular sign must combine
// this with Select on the result's parity.
func (r *FieldElement) Sqrt(a *FieldElement) (ok int) {
	var a2, z2, t0, t1, t2, t3 FieldElement

	a2.Square(a)
	z2.Square(a)
	t0.Square(&z2)
	t0.Square(&t0)
	t0.Mul(a, &t0)
	z2.Mul(&z2, &t0)
	t1.Square(&z2)
	t1.Mul(&t0, &t1) // a^(2^5-1)

	t0.Square(&t1)
	for i := 1; i < 5; i++ {
		t0.Square(&t0)
	}
	t0.Mul(&t0, &t1) // a^(2^10-1)

	t2.Square(&t0)
	for i := 1; i < 10; i++ {
		t2.Square(&t2)
	}
	t2.Mul(&t2, &t0) // a^(2^20-1)

	t3.Square(&t2)
	for i := 1; i < 20; i++ {
		t3.Square(&t3)
	}
	t3.Mul(&t3, &t2) // a^(2^40-1)

	t3.Square(&t3)
	for i := 1; i < 10; i++ {
		t3.Square(&t3)
	}
	t0.Mul(&t3, &t0) // a^(2^50-1)

	t2.Square(&t0)
	for i := 1; i < 50; i++ {
		t2.Square(&t2)
	}
	t2.Mul(&t2, &t0) // a^(2^100-1)

	t3.Square(&t2)
	for i := 1; i < 100; i++ {
		t3.Square(&t3)
	}
	t3.Mul(&t3, &t2) // a^(2^200-1)

	t3.Square(&t3)
	for i := 1; i < 50; i++ {
		t3.Square(&t3)
	}
	t0.Mul(&t3, &t0) // a^(2^250-1)

	// candidate = a^(2^250-1)^4 * a^2 = a^(2^252-2) = a^((p+3)/8)
	var cand FieldElement
	cand.Square(&t0)
	cand.Square(&cand)
	cand.Mul(&cand, &a2)

	var check FieldElement
	check.Square(&cand)
	matches := check.Equal(a)

	var twisted FieldElement
	twisted.Mul(&cand, &fieldSqrtM1)
	cand.Select(&twisted, &cand, matches)

	check.Square(&cand)
	ok = check.Equal(a)
	r.n = cand.n
	return ok
}
