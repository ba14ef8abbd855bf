package sm2

import (
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/internal/bigint"
)

// CompressedLen is the fixed length of a compressed SM2 point: one parity
// prefix byte plus a 32-byte big-endian x-coordinate.
const CompressedLen = 1 + scalarFieldByteLen

// Compress encodes a non-infinite point as 33 bytes: 0x02 if y is even,
// 0x03 if y is odd, followed by x as a fixed 32-byte big-endian field
// element.
func Compress(p Point) ([]byte, error) {
	if p.Inf {
		return nil, InvalidPointError{Reason: "cannot compress the point at infinity"}
	}
	out := make([]byte, CompressedLen)
	if p.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	copy(out[1:], leftPad(p.X.Bytes(), scalarFieldByteLen))
	return out, nil
}

// Decompress parses a 33-byte compressed point, recovers y via a modular
// square root (valid because P ≡ 3 mod 4 for the SM2 curve), and rejects
// the result if it does not lie on the curve.
func Decompress(data []byte) (Point, error) {
	if len(data) != CompressedLen {
		return Point{}, InvalidPointError{Reason: "compressed point must be 33 bytes"}
	}
	prefix := data[0]
	if prefix != 0x02 && prefix != 0x03 {
		return Point{}, InvalidPointError{Reason: "unsupported compression prefix"}
	}

	x := new(big.Int).SetBytes(data[1:])
	if x.Cmp(P) >= 0 {
		return Point{}, InvalidPointError{Reason: "x out of field range"}
	}

	ySq := bigint.Add(bigint.Mul(bigint.Mul(x, x, P), x, P), bigint.Mul(A, x, P), P)
	ySq = bigint.Add(ySq, B, P)

	exp := new(big.Int).Add(P, big.NewInt(1))
	exp.Rsh(exp, 2) // (P+1)/4
	y := bigint.Exp(ySq, exp, P)

	wantOdd := prefix == 0x03
	if (y.Bit(0) == 1) != wantOdd {
		y = bigint.Sub(big.NewInt(0), y, P)
	}

	p := Point{X: x, Y: y}
	if !p.IsOnCurve() {
		return Point{}, InvalidPointError{Reason: "decoded point is not on the curve"}
	}
	return p, nil
}

func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
