package tri25519

import (
	"crypto/subtle"
	"math/bits"
)

// Scalar represents a residue modulo n, the order of the Ed25519 / Curve25519
// group: n = 2^252 + 27742317777372353535851937790883648493. As with
// FieldElement, the representation is four little-endian uint64 limbs, and
// arithmetic tolerates bounded overflow between calls; Reduce brings a value
// back below n.
type Scalar struct {
	n [4]uint64
}

// scalarN holds n in limbs.
var scalarN = [4]uint64{
	0x5812631a5cf5d3ed,
	0x14def9dea2f79cd6,
	0x0000000000000000,
	0x1000000000000000,
}

var (
	// ScalarZero is the additive identity.
	ScalarZero = Scalar{}
	// ScalarOne is the multiplicative identity.
	ScalarOne = Scalar{n: [4]uint64{1, 0, 0, 0}}
)

// SetBytes parses a 32-byte little-endian encoding into r without reducing.
func (r *Scalar) SetBytes(b *[32]byte) *Scalar {
	for i := 0; i < 4; i++ {
		r.n[i] = readLE64(b[i*8 : i*8+8])
	}
	return r
}

// Bytes returns the canonical 32-byte little-endian encoding of r.
func (r *Scalar) Bytes() [32]byte {
	var t Scalar
	t.n = r.n
	t.Reduce()
	var out [32]byte
	for i := 0; i < 4; i++ {
		writeLE64(out[i*8:i*8+8], t.n[i])
	}
	return out
}

// less reports whether a < b, as 4-limb unsigned integers.
func scalarLess(a, b *[4]uint64) int {
	_, borrow := sub4(a, b)
	return int(borrow)
}

// Reduce brings r below n by repeated conditional subtraction, exactly as
// described for the scalar layer: subtract n whenever the current value is
// not already smaller. Any 256-bit value is below 16n, so fifteen rounds of
// the branchless condSubN always suffice, and the same number of rounds runs
// regardless of the value.
func (r *Scalar) Reduce() *Scalar {
	for i := 0; i < 15; i++ {
		r.condSubN()
	}
	return r
}

// ScalarFromBytes reduces a 32-byte little-endian value modulo n. This
// services from_bytes(x, p, n): folding the x-coordinate of k.G into the
// signature scalar r.
func ScalarFromBytes(b *[32]byte) Scalar {
	var s Scalar
	s.SetBytes(b)
	s.Reduce()
	return s
}

// scalar2Pow256 is 2^256 mod n, used to fold the rare carry out of a 4-limb
// addition back into range.
var scalar2Pow256 Scalar

func init() {
	scalar2Pow256.n = [4]uint64{1, 0, 0, 0}
	for i := 0; i < 256; i++ {
		sum, _ := add4(&scalar2Pow256.n, &scalar2Pow256.n)
		scalar2Pow256.n = sum
		scalar2Pow256.Reduce()
	}
}

// Add sets r = a + b (mod n).
func (r *Scalar) Add(a, b *Scalar) *Scalar {
	sum, carry := add4(&a.n, &b.n)
	r.n = sum
	r.Reduce()
	if carry != 0 {
		sum2, _ := add4(&r.n, &scalar2Pow256.n)
		r.n = sum2
		r.Reduce()
	}
	return r
}

// Neg sets r = -a (mod n).
func (r *Scalar) Neg(a *Scalar) *Scalar {
	var t Scalar
	t.n = a.n
	t.Reduce()
	if t.IsZero() == 1 {
		r.n = [4]uint64{}
		return r
	}
	diff, _ := sub4(&scalarN, &t.n)
	r.n = diff
	return r
}

// Sub sets r = a - b (mod n).
func (r *Scalar) Sub(a, b *Scalar) *Scalar {
	var nb Scalar
	nb.Neg(b)
	return r.Add(a, &nb)
}

// Mul sets r = a*b (mod n) via schoolbook multiplication followed by
// bit-serial reduction of the 512-bit product: each of its bits, from the
// top, is shifted into a running remainder that is then conditionally
// reduced by n. This uses conditional subtraction rather than a fixed-point
// identity (there is no simple analogue here of the field layer's
// 2^256=38 trick, since n is not of a special low-weight form).
func (r *Scalar) Mul(a, b *Scalar) *Scalar {
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

	// Reduce the 512-bit product by peeling off one bit of the high half at
	// a time from the top, doubling the running remainder and conditionally
	// subtracting n — the standard double-and-reduce schoolbook long
	// division, built from the same primitives Reduce uses.
	var acc Scalar
	for limb := 7; limb >= 0; limb-- {
		word := prod[limb]
		for bit := 63; bit >= 0; bit-- {
			acc.shiftLeft1WithBit((word >> uint(bit)) & 1)
			acc.condSubN()
		}
	}
	r.n = acc.n
	return r
}

// shiftLeft1WithBit shifts r left by one bit within its 4 limbs, ORing in
// newBit at position 0, discarding any overflow above bit 255 (the running
// remainder is kept below 2n throughout Mul's reduction so no overflow
// above 256 bits occurs in practice).
func (r *Scalar) shiftLeft1WithBit(newBit uint64) {
	var carry uint64 = newBit
	for i := 0; i < 4; i++ {
		next := r.n[i] >> 63
		r.n[i] = (r.n[i] << 1) | carry
		carry = next
	}
}

// condSubN subtracts n from r if r >= n, branchlessly.
func (r *Scalar) condSubN() {
	diff, borrow := sub4(&r.n, &scalarN)
	pick := uint64(1) - borrow // 1 if borrow==0 (r>=n, subtraction valid)
	mask := -pick              // all-ones if picking diff, else 0
	for i := 0; i < 4; i++ {
		r.n[i] = r.n[i] ^ (mask & (r.n[i] ^ diff[i]))
	}
}

// Inv sets r = a^-1 (mod n) for a != 0, via Fermat's little theorem, a^(n-2),
// using square-and-multiply over the fixed bit pattern of n-2 (n is prime,
// so this always succeeds for a != 0 mod n). This is not performance
// critical in this library's callers (used once per verify, and on secret
// data only for the nonce inverse in sign) so a straightforward binary
// exponentiation is used rather than a hand-tuned addition chain.
func (r *Scalar) Inv(a *Scalar) *Scalar {
	exp, _ := sub4(&scalarN, &[4]uint64{2, 0, 0, 0})
	var result Scalar
	result.n = ScalarOne.n
	base := *a
	base.Reduce()
	for limb := 0; limb < 4; limb++ {
		w := exp[limb]
		for bit := 0; bit < 64; bit++ {
			if (w>>uint(bit))&1 == 1 {
				result.Mul(&result, &base)
			}
			base.Mul(&base, &base)
		}
	}
	r.n = result.n
	return r
}

// Equal reports whether a and b reduce to the same residue mod n.
func (r *Scalar) Equal(a *Scalar) int {
	var ra, rb Scalar
	ra.n, rb.n = r.n, a.n
	ra.Reduce()
	rb.Reduce()

	var ba, bb [32]byte
	for i := 0; i < 4; i++ {
		writeLE64(ba[i*8:i*8+8], ra.n[i])
		writeLE64(bb[i*8:i*8+8], rb.n[i])
	}
	return subtle.ConstantTimeCompare(ba[:], bb[:])
}

// IsZero reports whether r reduces to zero.
func (r *Scalar) IsZero() int {
	return r.Equal(&ScalarZero)
}

// InRange reports whether r, taken as a raw (unreduced) 256-bit integer,
// lies in [1, n-1]. This is stricter than checking the reduced residue is
// nonzero: a non-canonical encoding with value >= n must be rejected, not
// silently folded back into range, since ECDSA signature scalars are
// required to be canonical.
func (r *Scalar) InRange() bool {
	if r.IsZero() == 1 {
		return false
	}
	return scalarLess(&r.n, &scalarN) == 1
}
