// Package bigint provides the arbitrary-precision modular arithmetic the SM2
// curve and the DDH group map are built on: reduction, exponentiation, and
// modular inverse via the extended Euclidean algorithm.
package bigint

import "math/big"

// Mod returns x mod m as a non-negative canonical residue.
func Mod(x, m *big.Int) *big.Int {
	return new(big.Int).Mod(x, m)
}

// Add returns (x + y) mod m.
func Add(x, y, m *big.Int) *big.Int {
	return Mod(new(big.Int).Add(x, y), m)
}

// Sub returns (x - y) mod m.
func Sub(x, y, m *big.Int) *big.Int {
	return Mod(new(big.Int).Sub(x, y), m)
}

// Mul returns (x * y) mod m.
func Mul(x, y, m *big.Int) *big.Int {
	return Mod(new(big.Int).Mul(x, y), m)
}

// Exp returns x^y mod m.
func Exp(x, y, m *big.Int) *big.Int {
	return new(big.Int).Exp(x, y, m)
}

// Inverse returns a⁻¹ mod m via the extended Euclidean algorithm.
// It returns 0 when a is 0; callers must not invert a value that is not
// coprime with m (the SM2 curve's prime modulus and order make that
// impossible for any in-range input this package is used on).
func Inverse(a, m *big.Int) *big.Int {
	if a.Sign() == 0 {
		return big.NewInt(0)
	}
	return Mod(new(big.Int).ModInverse(a, m), m)
}
