// Package attacks implements the constructive private-key recovery
// algebra that SM2's signature equation is known to admit under nonce
// leakage or reuse (§4.10): these are reproducible facts about the
// scheme's math, not implementation bugs, and are provided so callers can
// reproduce and verify them rather than take them on faith.
package attacks

import (
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/internal/bigint"
	"github.com/XiaoDeng2005/sm2pis/internal/sm3"
	"github.com/XiaoDeng2005/sm2pis/sm2"
)

// RecoverFromLeakedNonce recovers dA from a single SM2 signature and its
// (leaked) per-signature nonce k:
//
//	dA = (k − s) · (s + r)⁻¹ mod N
func RecoverFromLeakedNonce(sig *sm2.Signature, k *big.Int) *big.Int {
	num := bigint.Sub(k, sig.S, sm2.N)
	den := bigint.Add(sig.S, sig.R, sm2.N)
	return bigint.Mul(num, bigint.Inverse(den, sm2.N), sm2.N)
}

// RecoverFromNonceReuse recovers dA from two SM2 signatures produced with
// the same nonce k over different messages. SM2's signing equation
// s_i·(1+dA) = k − r_i·dA rearranges to k − dA·(s_i+r_i) = s_i for each
// signature; eliminating the shared k between the two linear equations
// gives
//
//	dA = (s1 − s2) · (s2 − s1 + r2 − r1)⁻¹ mod N
//
// independent of the message digests — e1, e2 only fix r1, r2 through
// signing and are not needed once r1, r2, s1, s2 are known.
func RecoverFromNonceReuse(sig1, sig2 *sm2.Signature) (*big.Int, error) {
	r1, s1 := sig1.R, sig1.S
	r2, s2 := sig2.R, sig2.S

	num := bigint.Sub(s1, s2, sm2.N)
	den := bigint.Add(bigint.Sub(s2, s1, sm2.N), bigint.Sub(r2, r1, sm2.N), sm2.N)
	if den.Sign() == 0 {
		return nil, DegenerateInputError{Reason: "signatures do not admit nonce-reuse recovery (singular denominator)"}
	}
	return bigint.Mul(num, bigint.Inverse(den, sm2.N), sm2.N), nil
}

// ECDSASignature is a minimal ECDSA-style signature over the SM2 curve,
// used only by the Satoshi-forgery demonstrator: r = (k·G).x mod N,
// s = k⁻¹·(e + r·priv) mod N, e = SM3(msg) mod N (no ZA tag — this is the
// plain ECDSA equation, not SM2's).
type ECDSASignature struct {
	R, S, E *big.Int
}

// ECDSASignWithNonce produces an ECDSA-style signature over msg using the
// given private scalar and nonce. It exists to construct the reused-nonce
// scenario the recovery formula demonstrates against; it is not SM2
// signing and has no ZA binding.
func ECDSASignWithNonce(priv, k *big.Int, msg []byte) *ECDSASignature {
	point := sm2.G.ScalarMult(k)
	r := new(big.Int).Mod(point.X, sm2.N)

	digest := sm3.Sum256(msg)
	e := new(big.Int).Mod(new(big.Int).SetBytes(digest[:]), sm2.N)

	kInv := bigint.Inverse(k, sm2.N)
	s := bigint.Mul(kInv, bigint.Add(e, bigint.Mul(r, priv, sm2.N), sm2.N), sm2.N)

	return &ECDSASignature{R: r, S: s, E: e}
}

// RecoverFromECDSANonceReuse recovers the signing key from two ECDSA-style
// signatures that reused the same nonce k ("Satoshi forgery"):
//
//	dA = (s1·e2 − s2·e1) · (s2·r1 − s1·r2)⁻¹ mod N
func RecoverFromECDSANonceReuse(sig1, sig2 *ECDSASignature) (*big.Int, error) {
	num := bigint.Sub(bigint.Mul(sig1.S, sig2.E, sm2.N), bigint.Mul(sig2.S, sig1.E, sm2.N), sm2.N)
	den := bigint.Sub(bigint.Mul(sig2.S, sig1.R, sm2.N), bigint.Mul(sig1.S, sig2.R, sm2.N), sm2.N)
	if den.Sign() == 0 {
		return nil, DegenerateInputError{Reason: "signatures do not admit nonce-reuse recovery (singular denominator)"}
	}
	return bigint.Mul(num, bigint.Inverse(den, sm2.N), sm2.N), nil
}
