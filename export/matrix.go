package export

import "math"

// mat4Mul multiplies two column-major 4x4 matrices: a * b.
func mat4Mul(a, b [16]float64) [16]float64 {
	var out [16]float64
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

func composeTRS(t [3]float64, r [4]float64, s [3]float64) [16]float64 {
	x, y, z, wq := r[0], r[1], r[2], r[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := wq*x2, wq*y2, wq*z2

	sx, sy, sz := s[0], s[1], s[2]

	return [16]float64{
		(1 - (yy + zz)) * sx, (xy + wz) * sx, (xz - wy) * sx, 0,
		(xy - wz) * sy, (1 - (xx + zz)) * sy, (yz + wx) * sy, 0,
		(xz + wy) * sz, (yz - wx) * sz, (1 - (xx + yy)) * sz, 0,
		t[0], t[1], t[2], 1,
	}
}

// decomposeTRS extracts translation, rotation (quaternion) and scale
// from a column-major affine matrix, used when a Node supplies a raw
// Matrix but Options.TRS asks for decomposed channels (because an
// animation targets them).
func decomposeTRS(m [16]float64) (t [3]float64, r [4]float64, s [3]float64) {
	t = [3]float64{m[12], m[13], m[14]}

	sx := math.Sqrt(m[0]*m[0] + m[1]*m[1] + m[2]*m[2])
	sy := math.Sqrt(m[4]*m[4] + m[5]*m[5] + m[6]*m[6])
	sz := math.Sqrt(m[8]*m[8] + m[9]*m[9] + m[10]*m[10])

	// Determinant sign detects a negative (mirrored) scale on one axis.
	det := m[0]*(m[5]*m[10]-m[6]*m[9]) - m[1]*(m[4]*m[10]-m[6]*m[8]) + m[2]*(m[4]*m[9]-m[5]*m[8])
	if det < 0 {
		sx = -sx
	}
	s = [3]float64{sx, sy, sz}

	invSX, invSY, invSZ := 1.0, 1.0, 1.0
	if sx != 0 {
		invSX = 1 / sx
	}
	if sy != 0 {
		invSY = 1 / sy
	}
	if sz != 0 {
		invSZ = 1 / sz
	}

	m00, m01, m02 := m[0]*invSX, m[1]*invSX, m[2]*invSX
	m10, m11, m12 := m[4]*invSY, m[5]*invSY, m[6]*invSY
	m20, m21, m22 := m[8]*invSZ, m[9]*invSZ, m[10]*invSZ

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		sq := math.Sqrt(trace+1) * 2
		r = [4]float64{(m12 - m21) / sq, (m20 - m02) / sq, (m01 - m10) / sq, 0.25 * sq}
	case m00 > m11 && m00 > m22:
		sq := math.Sqrt(1+m00-m11-m22) * 2
		r = [4]float64{0.25 * sq, (m01 + m10) / sq, (m20 + m02) / sq, (m12 - m21) / sq}
	case m11 > m22:
		sq := math.Sqrt(1+m11-m00-m22) * 2
		r = [4]float64{(m01 + m10) / sq, 0.25 * sq, (m12 + m21) / sq, (m20 - m02) / sq}
	default:
		sq := math.Sqrt(1+m22-m00-m11) * 2
		r = [4]float64{(m20 + m02) / sq, (m12 + m21) / sq, 0.25 * sq, (m01 - m10) / sq}
	}
	return
}

func toFloat32Array16(m [16]float64) [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
