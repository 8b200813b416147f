package tri25519

import "testing"

// TestScenarioS3MorphRoundTripBase implements spec scenario S3: starting
// from the Ed25519 base point, e->w yields (wx_B, wy_B), and w->e recovers
// the original point exactly.
func TestScenarioS3MorphRoundTripBase(t *testing.T) {
	wx, wy := e2w(&edBaseX, &edBaseY)
	ex, ey := w2e(&wx, &wy)

	if ex.Equal(&edBaseX) != 1 || ey.Equal(&edBaseY) != 1 {
		t.Errorf("S3: w2e(e2w(base)) should recover base; got (%x,%x) want (%x,%x)",
			ex.Bytes(), ey.Bytes(), edBaseX.Bytes(), edBaseY.Bytes())
	}
}

// TestScenarioS4Wx2WyOnBase implements spec scenario S4: wx2wy(wx_B,
// parity(ey_B)) returns wy_B with ok = 1.
func TestScenarioS4Wx2WyOnBase(t *testing.T) {
	wx, wy := e2w(&edBaseX, &edBaseY)
	parity := edBaseY.IsOdd()

	got, ok := wx2wy(&wx, parity)
	if ok != 1 {
		t.Fatal("S4: wx2wy on the base point's Weierstrass x should verify")
	}
	if got.Equal(&wy) != 1 {
		t.Errorf("S4: wx2wy(wx_B, parity) = %x, want %x", got.Bytes(), wy.Bytes())
	}
}

func TestIsoRoundTripEW(t *testing.T) {
	wx, wy := e2w(&edBaseX, &edBaseY)
	ex, ey := w2e(&wx, &wy)
	wx2, wy2 := e2w(&ex, &ey)

	if wx.Equal(&wx2) != 1 || wy.Equal(&wy2) != 1 {
		t.Error("e->w->e->w should be idempotent on the base point")
	}
}

func TestIsoRoundTripME(t *testing.T) {
	mx, my := e2m(&edBaseX, &edBaseY)
	ex, ey := m2e(&mx, &my)

	if ex.Equal(&edBaseX) != 1 || ey.Equal(&edBaseY) != 1 {
		t.Error("m2e(e2m(base)) should recover base")
	}
}

func TestIsoRoundTripMW(t *testing.T) {
	mx, my := e2m(&edBaseX, &edBaseY)
	wx, wy := m2w(&mx, &my)
	mx2, my2 := w2m(&wx, &wy)

	if mx.Equal(&mx2) != 1 || my.Equal(&my2) != 1 {
		t.Error("w2m(m2w(P)) should recover P")
	}
}

func TestIsoEyMxCoordOnlyRoundTrip(t *testing.T) {
	mx := ey2mx(&edBaseY)
	ey := mx2eyOnly(&mx)

	if ey.Equal(&edBaseY) != 1 {
		t.Error("mx2eyOnly(ey2mx(y)) should recover y")
	}
}

func TestIsoMxWxZeroConvention(t *testing.T) {
	wx := mx2wx(&FieldZero)
	if wx.IsZero() != 1 {
		t.Error("mx2wx(0) should be 0 by library convention, not delta-shifted")
	}

	mx := wx2mx(&FieldZero)
	if mx.IsZero() != 1 {
		t.Error("wx2mx(0) should be 0 by library convention")
	}
}

func TestEy2ExRecoversBase(t *testing.T) {
	parity := edBaseX.IsOdd()
	x, ok := ey2ex(&edBaseY, parity)
	if ok != 1 {
		t.Fatal("ey2ex on the base point's y should verify")
	}
	if x.Equal(&edBaseX) != 1 {
		t.Errorf("ey2ex(ey_B, parity(ex_B)) = %x, want %x", x.Bytes(), edBaseX.Bytes())
	}
}
