package sm2

import "math/big"

// DefaultWindow is the window width used by WindowedScalarMult when the
// caller passes a width outside [2, 8].
const DefaultWindow = 4

// WindowedScalarMult computes k·p using a fixed-width w-bit table:
// T[i] = i·p for i in [0, 2^w), walking k left-to-right in w-bit windows,
// doubling w times then adding T[window value]. It returns the same point
// as Point.ScalarMult for every input.
func WindowedScalarMult(p Point, k *big.Int, w int) Point {
	if w < 2 || w > 8 {
		w = DefaultWindow
	}
	if k.Sign() == 0 || p.Inf {
		return Infinity
	}
	if k.Sign() < 0 {
		return WindowedScalarMult(p.Negate(), new(big.Int).Neg(k), w)
	}

	tableSize := 1 << uint(w)
	table := make([]Point, tableSize)
	table[0] = Infinity
	if tableSize > 1 {
		table[1] = p
	}
	for i := 2; i < tableSize; i++ {
		table[i] = table[i-1].Add(p)
	}

	bits := k.BitLen()
	// Process the scalar as a sequence of w-bit windows, most significant first.
	nWindows := (bits + w - 1) / w
	if nWindows == 0 {
		nWindows = 1
	}

	result := Infinity
	for wi := nWindows - 1; wi >= 0; wi-- {
		if !result.Equal(Infinity) {
			for i := 0; i < w; i++ {
				result = result.Double()
			}
		}
		idx := windowValue(k, wi, w)
		if idx != 0 {
			result = result.Add(table[idx])
		}
	}
	return result
}

// windowValue extracts the wi-th w-bit window of k (0-indexed from the
// least significant window) as an integer in [0, 2^w).
func windowValue(k *big.Int, wi, w int) int {
	shift := uint(wi * w)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(w))
	mask.Sub(mask, big.NewInt(1))
	v := new(big.Int).Rsh(k, shift)
	v.And(v, mask)
	return int(v.Int64())
}
