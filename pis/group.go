package pis

import (
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/internal/sm3"
	"github.com/XiaoDeng2005/sm2pis/sm2"
)

// hashToScalar maps a byte string into a scalar in [0, N-1] via
// SM3(x) mod N, the hash-to-group step the double-blinding scheme needs.
// Unlike the sign/verify path there is no domain-separation tag here — the
// group map has no identity to bind, only the element being hashed.
func hashToScalar(x []byte) *big.Int {
	digest := sm3.Sum256(x)
	scalar := new(big.Int).SetBytes(digest[:])
	return scalar.Mod(scalar, sm2.N)
}

// hashToPoint maps a byte string into the prime-order subgroup generated by
// G, by hashing to a scalar and multiplying the base point. This performs
// the protocol's double exponentiation in the EC group proper rather than
// modulo the curve order: exponentiation commutes identically either way,
// but working in the group G actually generates is the mathematically
// faithful DDH instance rather than the curve-order shortcut.
func hashToPoint(x []byte) sm2.Point {
	return sm2.WindowedScalarMult(sm2.G, hashToScalar(x), sm2.DefaultWindow)
}

// blind raises a group element to the given secret exponent. Both client
// and server blinding steps (H(v)^k1, a^k2, H(w)^k2, b^k1) reduce to this
// one operation.
func blind(p sm2.Point, k *big.Int) sm2.Point {
	return sm2.WindowedScalarMult(p, k, sm2.DefaultWindow)
}

// pointKey returns a comparable key for a group element, used to build the
// membership-test set. Compressed encoding already canonicalises a point
// into a fixed 33-byte form, so two equal points always yield equal keys.
func pointKey(p sm2.Point) (string, error) {
	enc, err := sm2.Compress(p)
	if err != nil {
		return "", err
	}
	return string(enc), nil
}
