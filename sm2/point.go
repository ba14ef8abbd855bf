package sm2

import (
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/internal/bigint"
)

// Point is an affine point on the SM2 curve. The zero value (Inf == true)
// represents the point at infinity and carries no coordinates. Points are
// immutable value types: every operation below returns a fresh Point.
type Point struct {
	X, Y *big.Int
	Inf  bool
}

// Infinity is the point at infinity, the curve group's identity element.
var Infinity = Point{Inf: true}

// Equal reports whether p and q are the same point: both infinite, or
// equal coordinates.
func (p Point) Equal(q Point) bool {
	if p.Inf || q.Inf {
		return p.Inf && q.Inf
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Negate returns (x, -y mod P).
func (p Point) Negate() Point {
	if p.Inf {
		return Infinity
	}
	return Point{X: new(big.Int).Set(p.X), Y: bigint.Sub(big.NewInt(0), p.Y, P)}
}

// IsOnCurve reports whether p satisfies y² ≡ x³ + A·x + B (mod P).
func (p Point) IsOnCurve() bool {
	if p.Inf {
		return true
	}
	if p.X.Sign() < 0 || p.X.Cmp(P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(P) >= 0 {
		return false
	}
	lhs := bigint.Mul(p.Y, p.Y, P)
	x3 := bigint.Mul(bigint.Mul(p.X, p.X, P), p.X, P)
	ax := bigint.Mul(A, p.X, P)
	rhs := bigint.Add(bigint.Add(x3, ax, P), B, P)
	return lhs.Cmp(rhs) == 0
}

// Add returns p + q. Slope computation that would invert zero (additive
// inverses, or a doubled point with y = 0) is detected and mapped to
// Infinity rather than panicking.
func (p Point) Add(q Point) Point {
	if p.Inf {
		return q
	}
	if q.Inf {
		return p
	}
	if p.X.Cmp(q.X) == 0 {
		if p.Y.Cmp(q.Y) != 0 {
			return Infinity
		}
		return p.Double()
	}

	num := bigint.Sub(q.Y, p.Y, P)
	den := bigint.Sub(q.X, p.X, P)
	s := bigint.Mul(num, bigint.Inverse(den, P), P)

	x3 := bigint.Sub(bigint.Sub(bigint.Mul(s, s, P), p.X, P), q.X, P)
	y3 := bigint.Sub(bigint.Mul(s, bigint.Sub(p.X, x3, P), P), p.Y, P)
	return Point{X: x3, Y: y3}
}

// Double returns 2·p.
func (p Point) Double() Point {
	if p.Inf || p.Y.Sign() == 0 {
		return Infinity
	}

	three := big.NewInt(3)
	num := bigint.Add(bigint.Mul(three, bigint.Mul(p.X, p.X, P), P), A, P)
	den := bigint.Add(p.Y, p.Y, P)
	s := bigint.Mul(num, bigint.Inverse(den, P), P)

	x3 := bigint.Sub(bigint.Sub(bigint.Mul(s, s, P), p.X, P), p.X, P)
	y3 := bigint.Sub(bigint.Mul(s, bigint.Sub(p.X, x3, P), P), p.Y, P)
	return Point{X: x3, Y: y3}
}

// ScalarMult returns k·p using right-to-left double-and-add over the bits
// of k. Negative k multiplies |k| by the negated point.
func (p Point) ScalarMult(k *big.Int) Point {
	if k.Sign() == 0 || p.Inf {
		return Infinity
	}
	if k.Sign() < 0 {
		return p.Negate().ScalarMult(new(big.Int).Neg(k))
	}

	result := Infinity
	current := p
	kk := new(big.Int).Set(k)
	for kk.Sign() != 0 {
		if kk.Bit(0) == 1 {
			result = result.Add(current)
		}
		current = current.Double()
		kk.Rsh(kk, 1)
	}
	return result
}
