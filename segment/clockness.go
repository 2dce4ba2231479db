package segment

// Orient returns the sign of the 2D cross product u x v, i.e.
// sign(ux*vy - uy*vx), as one of {-1, 0, +1}.
//
// The components are int32 rather than int16 because the intersection
// predicate feeds this function differences of int16 coordinates,
// which need 17 bits.  The products are evaluated in int64; with
// 17-bit inputs they need up to 33 bits, so 32-bit arithmetic is not
// enough either.
func Orient(ux, uy, vx, vy int32) int {
	v0 := int64(ux) * int64(vy)
	v1 := int64(uy) * int64(vx)
	if v0 > v1 {
		return 1
	}
	if v0 < v1 {
		return -1
	}
	return 0
}

// Clockness returns Orient(b-a, b-c) for the point triple (a, b, c):
// +1 if the triple turns one way, -1 the other, 0 if collinear.
//
// Note the second vector is b-c, not c-b.  The intersection predicate
// is built on this sign convention; both scalar and chunked paths
// depend on it agreeing.
func Clockness(a, b, c Point) int {
	return Orient(
		int32(b.X)-int32(a.X), int32(b.Y)-int32(a.Y),
		int32(b.X)-int32(c.X), int32(b.Y)-int32(c.Y))
}
