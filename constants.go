package tri25519

// weierstrassA, weierstrassB are the short Weierstrass curve constants for
// Wei25519: wy^2 = wx^3 + a*wx + b.
var weierstrassA = parseFE([32]byte{
	0x44, 0xa1, 0x14, 0x49, 0x98, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
	0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0x2a,
})

var weierstrassB = parseFE([32]byte{
	0x64, 0xc8, 0x10, 0x77, 0x9c, 0x5e, 0x0b, 0x26, 0xb4, 0x97, 0xd0, 0x5e, 0x42, 0x7b, 0x09, 0xed,
	0x25, 0xb4, 0x97, 0xd0, 0x5e, 0x42, 0x7b, 0x09, 0xed, 0x25, 0xb4, 0x97, 0xd0, 0x5e, 0x42, 0x7b,
})

// wGenX, wGenY are the Weierstrass image of the Ed25519 base point, the
// generator G used throughout ECDSA.
var wGenX, wGenY = e2w(&edBaseX, &edBaseY)
