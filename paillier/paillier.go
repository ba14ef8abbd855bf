// Package paillier implements the additively homomorphic Paillier
// cryptosystem: keygen, encryption, decryption, ciphertext addition by
// modular multiplication, and rerandomization. It is the encryption layer
// the private intersection-sum protocol uses to let the client learn only
// the sum over the intersection, never the server's individual values.
package paillier

import (
	"crypto/rand"
	"io"
	"math/big"
)

// DefaultModulusBits is the default Paillier modulus size.
const DefaultModulusBits = 2048

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// PublicKey is (n, g) with g fixed to n+1, the standard simplification that
// keeps encryption a single exponentiation instead of a free generator
// search.
type PublicKey struct {
	N *big.Int
}

// PrivateKey holds the decryption exponent λ = lcm(p-1, q-1) alongside the
// public modulus. p and q themselves are discarded after keygen; nothing
// downstream needs them.
type PrivateKey struct {
	PublicKey
	Lambda *big.Int
}

// GenerateKeyPair draws two independent random primes of modulusBits/2 bits
// each and derives n = p·q and λ = lcm(p-1, q-1). It retries if p = q or if
// gcd(pq, (p-1)(q-1)) ≠ 1, the two degenerate cases that break Paillier's
// algebra.
func GenerateKeyPair(random io.Reader, modulusBits int) (*PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}
	if modulusBits <= 0 {
		modulusBits = DefaultModulusBits
	}
	primeBits := modulusBits / 2

	for {
		p, err := rand.Prime(random, primeBits)
		if err != nil {
			return nil, KeyGenerationError{Err: err}
		}
		q, err := rand.Prime(random, primeBits)
		if err != nil {
			return nil, KeyGenerationError{Err: err}
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		pMinus1 := new(big.Int).Sub(p, one)
		qMinus1 := new(big.Int).Sub(q, one)

		phiN := new(big.Int).Mul(pMinus1, qMinus1)
		gcdPQ := new(big.Int).GCD(nil, nil, pMinus1, qMinus1)
		lambda := new(big.Int).Div(phiN, gcdPQ)

		if new(big.Int).GCD(nil, nil, n, phiN).Cmp(one) != 0 {
			continue
		}

		return &PrivateKey{PublicKey: PublicKey{N: n}, Lambda: lambda}, nil
	}
}

// NSquare returns n².
func (pub *PublicKey) NSquare() *big.Int {
	return new(big.Int).Mul(pub.N, pub.N)
}

// Equal reports whether pub and other share the same modulus, i.e. whether
// a ciphertext produced under one is meaningful to the other.
func (pub PublicKey) Equal(other PublicKey) bool {
	return pub.N.Cmp(other.N) == 0
}

// Gamma returns g = n+1, Paillier's standard generator choice.
func (pub *PublicKey) Gamma() *big.Int {
	return new(big.Int).Add(pub.N, one)
}

// randomUnit draws x ∈ [1, n-1] with gcd(x, n) = 1, the blinding factor
// every encryption needs.
func randomUnit(random io.Reader, n *big.Int) (*big.Int, error) {
	for {
		x, err := rand.Int(random, n)
		if err != nil {
			return nil, KeyGenerationError{Err: err}
		}
		if x.Sign() == 0 {
			continue
		}
		if new(big.Int).GCD(nil, nil, x, n).Cmp(one) == 0 {
			return x, nil
		}
	}
}

// EncryptWithRandomness encrypts m under fresh randomness r = x:
// c = gamma^m · x^n mod n². Exposing the randomness lets rerandomization
// and tests exercise the exact algebra instead of only its effect.
func (pub *PublicKey) EncryptWithRandomness(random io.Reader, m *big.Int) (c, r *big.Int, err error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, nil, MessageTooLargeError{Bound: "m must satisfy 0 <= m < n"}
	}
	if random == nil {
		random = rand.Reader
	}
	x, err := randomUnit(random, pub.N)
	if err != nil {
		return nil, nil, err
	}
	n2 := pub.NSquare()
	gm := new(big.Int).Exp(pub.Gamma(), m, n2)
	xn := new(big.Int).Exp(x, pub.N, n2)
	c = new(big.Int).Mod(new(big.Int).Mul(gm, xn), n2)
	return c, x, nil
}

// Encrypt encrypts m under fresh internal randomness.
func (pub *PublicKey) Encrypt(random io.Reader, m *big.Int) (*big.Int, error) {
	c, _, err := pub.EncryptWithRandomness(random, m)
	return c, err
}

// HomoAdd combines two ciphertexts into one encrypting the sum of their
// plaintexts: c1 · c2 mod n².
func (pub *PublicKey) HomoAdd(c1, c2 *big.Int) (*big.Int, error) {
	n2 := pub.NSquare()
	if c1.Sign() < 0 || c1.Cmp(n2) >= 0 {
		return nil, CiphertextMalformedError{Reason: "c1 out of range"}
	}
	if c2.Sign() < 0 || c2.Cmp(n2) >= 0 {
		return nil, CiphertextMalformedError{Reason: "c2 out of range"}
	}
	return new(big.Int).Mod(new(big.Int).Mul(c1, c2), n2), nil
}

// HomoMult scales the plaintext inside c by the public scalar m:
// c^m mod n².
func (pub *PublicKey) HomoMult(c, m *big.Int) (*big.Int, error) {
	n2 := pub.NSquare()
	if c.Sign() < 0 || c.Cmp(n2) >= 0 {
		return nil, CiphertextMalformedError{Reason: "ciphertext out of range"}
	}
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, MessageTooLargeError{Bound: "scalar must satisfy 0 <= m < n"}
	}
	return new(big.Int).Exp(c, m, n2), nil
}

// Refresh rerandomizes c by homomorphically adding an encryption of zero,
// so the ciphertext a caller forwards is unlinkable to the intermediate sum
// it was built from.
func (pub *PublicKey) Refresh(random io.Reader, c *big.Int) (*big.Int, error) {
	zeroCt, err := pub.Encrypt(random, zero)
	if err != nil {
		return nil, err
	}
	return pub.HomoAdd(c, zeroCt)
}

// l implements L(u) = (u-1)/n, the linearizing function Paillier decryption
// reduces to once the group order's n-part has been exponentiated away.
func l(u, n *big.Int) *big.Int {
	num := new(big.Int).Sub(u, one)
	return num.Div(num, n)
}

// Decrypt recovers the plaintext m = L(c^λ mod n²) · L(gamma^λ mod n²)⁻¹ mod n.
func (priv *PrivateKey) Decrypt(c *big.Int) (*big.Int, error) {
	n2 := priv.NSquare()
	if c.Sign() < 0 || c.Cmp(n2) >= 0 {
		return nil, CiphertextMalformedError{Reason: "ciphertext out of range"}
	}
	if g := new(big.Int).GCD(nil, nil, c, n2); g.Cmp(one) != 0 {
		return nil, CiphertextMalformedError{Reason: "ciphertext not coprime to n squared"}
	}

	lc := l(new(big.Int).Exp(c, priv.Lambda, n2), priv.N)
	lg := l(new(big.Int).Exp(priv.Gamma(), priv.Lambda, n2), priv.N)
	lgInv := new(big.Int).ModInverse(lg, priv.N)
	if lgInv == nil {
		return nil, CiphertextMalformedError{Reason: "gamma is not invertible under this key"}
	}

	m := new(big.Int).Mul(lc, lgInv)
	return m.Mod(m, priv.N), nil
}
