package sm2

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/internal/sm3"
)

// maxSignRetries bounds the sign loop's nonce-retry count (§4.3: "restart"
// on r = 0, r + k = N, or s = 0) before reporting Internal/retry-budget
// exhaustion. The probability of needing even a second attempt is
// astronomically small; this bound exists only to make the loop total.
const maxSignRetries = 16

// Signature is an SM2 signature pair (r, s), each a scalar in [1, N-1].
type Signature struct {
	R, S *big.Int
}

// PrivateKey is an SM2 keypair: dA ∈ [1, N-2] and its derived public point
// PA = dA·G.
type PrivateKey struct {
	D         *big.Int
	PublicKey Point
}

// GenerateKey draws a uniform private scalar dA ∈ [1, N-2] and computes the
// public point PA = dA·G.
func GenerateKey(random io.Reader) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	d, err := randScalar(random, new(big.Int).Sub(N, big.NewInt(2)))
	if err != nil {
		return nil, err
	}
	return &PrivateKey{D: d, PublicKey: G.ScalarMult(d)}, nil
}

// randScalar draws a uniform value in [1, limit] using rejection sampling
// over fixed-width random bytes; callers pick limit to get dA's [1, N-2]
// or the per-signature nonce k's [1, N-1] range.
func randScalar(random io.Reader, limit *big.Int) (*big.Int, error) {
	buf := make([]byte, scalarFieldByteLen)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, EntropyError{Err: err}
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(limit) >= 0 {
			continue
		}
		return v.Add(v, big.NewInt(1)), nil
	}
}

// za computes ZA = SM3(ENTL || ID || A || B || Gx || Gy || PA.x || PA.y),
// the identity/curve domain-separation tag GB/T 32918 binds into every
// signature. Each curve-parameter integer is a fixed 32-byte big-endian
// field element, and PA is bound in per §4.3's conformance note.
func za(id []byte, pub Point) []byte {
	entl := uint16(len(id) * 8)
	h := sm3.New()
	h.Write([]byte{byte(entl >> 8), byte(entl)})
	h.Write(id)
	h.Write(leftPad(A.Bytes(), scalarFieldByteLen))
	h.Write(leftPad(B.Bytes(), scalarFieldByteLen))
	h.Write(leftPad(gx.Bytes(), scalarFieldByteLen))
	h.Write(leftPad(gy.Bytes(), scalarFieldByteLen))
	h.Write(leftPad(pub.X.Bytes(), scalarFieldByteLen))
	h.Write(leftPad(pub.Y.Bytes(), scalarFieldByteLen))
	return h.Sum(nil)
}

// digestE computes e = SM3(ZA || M) mod N.
func digestE(zaValue, msg []byte) *big.Int {
	h := sm3.New()
	h.Write(zaValue)
	h.Write(msg)
	e := new(big.Int).SetBytes(h.Sum(nil))
	return e.Mod(e, N)
}

// Sign produces (r, s) for msg under priv, bound to the given identity id.
// It restarts internally on the degenerate nonce conditions the standard
// names (r = 0, r + k = N, s = 0), bounded by maxSignRetries.
func Sign(random io.Reader, priv *PrivateKey, id, msg []byte) (*Signature, error) {
	if random == nil {
		random = rand.Reader
	}
	if priv == nil || priv.D.Sign() <= 0 || priv.D.Cmp(N) >= 0 {
		return nil, InvalidScalarError{Reason: "private key dA out of range"}
	}

	e := digestE(za(id, priv.PublicKey), msg)
	dPlus1Inv := new(big.Int).ModInverse(new(big.Int).Add(priv.D, big.NewInt(1)), N)

	for attempt := 0; attempt < maxSignRetries; attempt++ {
		k, err := randScalar(random, new(big.Int).Sub(N, big.NewInt(1)))
		if err != nil {
			return nil, err
		}

		x1 := G.ScalarMult(k).X
		r := new(big.Int).Add(e, x1)
		r.Mod(r, N)
		if r.Sign() == 0 {
			continue
		}
		if new(big.Int).Add(r, k).Cmp(N) == 0 {
			continue
		}

		// s = (1+dA)⁻¹ · (k - r·dA) mod N
		rd := new(big.Int).Mul(r, priv.D)
		rd.Mod(rd, N)
		s := new(big.Int).Sub(k, rd)
		s.Mod(s, N)
		s.Mul(s, dPlus1Inv)
		s.Mod(s, N)
		if s.Sign() == 0 {
			continue
		}

		return &Signature{R: r, S: s}, nil
	}
	return nil, RetryBudgetExceededError{Attempts: maxSignRetries}
}

// SignWithNonce signs msg under priv using the caller-supplied nonce k
// instead of drawing one internally. It exists for the nonce-leak and
// nonce-reuse attack demonstrators in package attacks, which must know the
// exact k a signature used; ordinary callers should use Sign. It returns
// RetryBudgetExceededError{Attempts: 1} if k is degenerate for this
// message, mirroring Sign's restart condition without retrying.
func SignWithNonce(priv *PrivateKey, id, msg []byte, k *big.Int) (*Signature, error) {
	if priv == nil || priv.D.Sign() <= 0 || priv.D.Cmp(N) >= 0 {
		return nil, InvalidScalarError{Reason: "private key dA out of range"}
	}
	if k.Sign() <= 0 || k.Cmp(N) >= 0 {
		return nil, InvalidScalarError{Reason: "nonce k out of range"}
	}

	e := digestE(za(id, priv.PublicKey), msg)
	x1 := G.ScalarMult(k).X

	r := new(big.Int).Add(e, x1)
	r.Mod(r, N)
	if r.Sign() == 0 || new(big.Int).Add(r, k).Cmp(N) == 0 {
		return nil, RetryBudgetExceededError{Attempts: 1}
	}

	dPlus1Inv := new(big.Int).ModInverse(new(big.Int).Add(priv.D, big.NewInt(1)), N)
	rd := new(big.Int).Mul(r, priv.D)
	rd.Mod(rd, N)
	s := new(big.Int).Sub(k, rd)
	s.Mod(s, N)
	s.Mul(s, dPlus1Inv)
	s.Mod(s, N)
	if s.Sign() == 0 {
		return nil, RetryBudgetExceededError{Attempts: 1}
	}

	return &Signature{R: r, S: s}, nil
}

// NewNonce draws a uniform nonce in [1, N-1], usable both as Sign's
// internal per-signature k and, deliberately leaked, as input to
// SignWithNonce for the attack demonstrators.
func NewNonce(random io.Reader) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}
	return randScalar(random, new(big.Int).Sub(N, big.NewInt(1)))
}

// DigestE computes e = SM3(ZA || M) mod N for the given public key,
// identity, and message — the same quantity Sign and Verify compute
// internally, exposed for the nonce-reuse attack demonstrator which needs
// e for two messages signed under the same key.
func DigestE(pub Point, id, msg []byte) *big.Int {
	return digestE(za(id, pub), msg)
}

// CheckSignatureShape reports whether sig has the shape GB/T 32918 requires
// of (r, s) — both in [1, N-1] — independently of whether it actually
// verifies against any key or message. Verify uses this to decide the
// malformed case; callers who need to tell "malformed" apart from "valid
// signature, wrong key/message" (spec's boolean-vs-error distinction) call
// it directly before Verify.
func CheckSignatureShape(sig *Signature) error {
	if sig == nil {
		return SignatureMalformedError{}
	}
	if sig.R.Sign() <= 0 || sig.R.Cmp(N) >= 0 || sig.S.Sign() <= 0 || sig.S.Cmp(N) >= 0 {
		return SignatureMalformedError{}
	}
	return nil
}

// Verify reports whether sig is a valid SM2 signature over msg under pub,
// bound to identity id. It never returns an error: a malformed signature
// or a failed verification equation both yield false, so callers can
// distinguish a boolean "no" from a thrown structural error only by
// calling CheckSignatureShape themselves if that distinction matters.
func Verify(pub Point, id, msg []byte, sig *Signature) bool {
	if pub.Inf || CheckSignatureShape(sig) != nil {
		return false
	}
	r, s := sig.R, sig.S

	e := digestE(za(id, pub), msg)

	t := new(big.Int).Add(r, s)
	t.Mod(t, N)
	if t.Sign() == 0 {
		return false
	}

	point := G.ScalarMult(s).Add(pub.ScalarMult(t))
	if point.Inf {
		return false
	}

	v := new(big.Int).Add(e, point.X)
	v.Mod(v, N)
	return v.Cmp(r) == 0
}
