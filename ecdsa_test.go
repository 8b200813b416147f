package tri25519

import (
	"crypto/rand"
	"testing"

	sha256simd "github.com/minio/sha256-simd"
)

func fixedTestScalar(seed byte) [32]byte {
	var b [32]byte
	for i := range b {
		b[i] = seed + byte(i)
	}
	b[31] &= 0x0f // keep it comfortably below n
	return b
}

// TestScenarioS6ECDSASignVerify implements spec scenario S6: a fixed
// nonzero private key d, a fixed nonzero nonce k, and e = SHA-256("test")
// supplied literally as the caller-provided digest.
func TestScenarioS6ECDSASignVerify(t *testing.T) {
	d := fixedTestScalar(0x11)
	k := fixedTestScalar(0x22)

	hasher := sha256simd.New()
	hasher.Write([]byte("test"))
	var e [32]byte
	copy(e[:], hasher.Sum(nil))

	r, s, ok := ECDSASign(d, e, k)
	if !ok {
		t.Fatal("S6: sign should succeed with fixed nonzero d, k")
	}

	wx, wy := ECDSAPubkey(d)

	if !ECDSAVerify(wx, wy, e, r, s) {
		t.Fatal("S6: verify should accept a freshly produced signature")
	}

	eTampered := e
	eTampered[0] ^= 0x01
	if ECDSAVerify(wx, wy, eTampered, r, s) {
		t.Error("S6: verify should reject after flipping e[0]'s low bit")
	}
}

func TestECDSASoundnessRandom(t *testing.T) {
	for i := 0; i < 8; i++ {
		var dBytes, kBytes, e [32]byte
		rand.Read(dBytes[:])
		rand.Read(kBytes[:])
		rand.Read(e[:])

		d := ScalarFromBytes(&dBytes)
		if d.IsZero() == 1 {
			continue
		}
		dB := d.Bytes()

		r, s, ok := ECDSASign(dB, e, kBytes)
		if !ok {
			continue
		}

		wx, wy := ECDSAPubkey(dB)
		if !ECDSAVerify(wx, wy, e, r, s) {
			t.Fatalf("verify(pubkey(d), e, sign(d, e, k)) should be true")
		}
	}
}

func TestECDSATamperDetection(t *testing.T) {
	d := fixedTestScalar(0x33)
	k := fixedTestScalar(0x44)
	var e [32]byte
	rand.Read(e[:])

	r, s, ok := ECDSASign(d, e, k)
	if !ok {
		t.Fatal("sign should succeed")
	}
	wx, wy := ECDSAPubkey(d)

	if !ECDSAVerify(wx, wy, e, r, s) {
		t.Fatal("baseline signature should verify")
	}

	tamperR := r
	tamperR[0] ^= 1
	if ECDSAVerify(wx, wy, e, tamperR, s) {
		t.Error("flipping r should invalidate the signature")
	}

	tamperS := s
	tamperS[0] ^= 1
	if ECDSAVerify(wx, wy, e, r, tamperS) {
		t.Error("flipping s should invalidate the signature")
	}

	tamperWx := wx
	tamperWx[0] ^= 1
	if ECDSAVerify(tamperWx, wy, e, r, s) {
		t.Error("flipping wx should invalidate the signature")
	}

	tamperWy := wy
	tamperWy[0] ^= 1
	if ECDSAVerify(wx, tamperWy, e, r, s) {
		t.Error("flipping wy should invalidate the signature")
	}
}

func TestECDSASignZeroNonceRejected(t *testing.T) {
	d := fixedTestScalar(0x55)
	var k, e [32]byte
	rand.Read(e[:])

	_, _, ok := ECDSASign(d, e, k)
	if ok {
		t.Error("sign with k == 0 should report ok = false")
	}
}

func TestECDSAVerifyRejectsOutOfRangeSignature(t *testing.T) {
	d := fixedTestScalar(0x66)
	wx, wy := ECDSAPubkey(d)
	var e [32]byte
	rand.Read(e[:])

	var zero [32]byte
	if ECDSAVerify(wx, wy, e, zero, zero) {
		t.Error("verify should reject r = s = 0")
	}
}
