package uno

import "math"

// Affine matrices are stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |

var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

// scaleRotateAffine scales uniformly by s, then rotates by rot radians.
func scaleRotateAffine(s, rot float64) [6]float64 {
	sin, cos := math.Sincos(rot)
	return [6]float64{s * cos, s * sin, -s * sin, s * cos, 0, 0}
}

// spriteTransform places an image of size (w, h) so that its center sits on
// the entity position:
//
//	Translate(X, Y) * Rotate(Rotation) * Scale(ScaleX, ScaleY) * Translate(-w/2, -h/2)
func spriteTransform(e *Entity, w, h float64) [6]float64 {
	scaled := [6]float64{e.ScaleX, 0, 0, e.ScaleY, -w / 2 * e.ScaleX, -h / 2 * e.ScaleY}
	return multiplyAffine(translateAffine(e.X, e.Y),
		multiplyAffine(scaleRotateAffine(1, e.Rotation), scaled))
}

// multiplyAffine returns p * c, so c is applied first.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine returns the inverse of m, or the identity when m is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if math.Abs(det) < 1e-12 {
		return identityTransform
	}
	a, b := m[3]/det, -m[1]/det
	c, d := -m[2]/det, m[0]/det
	return [6]float64{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
