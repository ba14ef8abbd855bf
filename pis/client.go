package pis

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/paillier"
	"github.com/XiaoDeng2005/sm2pis/sm2"
)

// clientState tracks which round the session has completed, so a round
// called out of order or twice is a detectable error rather than silent
// reuse of stale secrets.
type clientState int

const (
	clientInit clientState = iota
	clientRound1Done
)

// Client is the party whose items are tested for membership in the
// server's set; it also generates and holds the Paillier keypair, since it
// is the party that learns the sum and therefore the only party that
// should be able to decrypt (§9 ownership fix: the source collocated both
// keys in one object belonging to neither party in particular).
type Client struct {
	k1       *big.Int
	paillier *paillier.PrivateKey
	state    clientState
}

// NewClient starts a session: draws a fresh secret exponent k1 and
// generates a Paillier keypair at paillierBits (0 selects
// paillier.DefaultModulusBits).
func NewClient(random io.Reader, paillierBits int) (*Client, error) {
	if random == nil {
		random = rand.Reader
	}
	k1, err := rand.Int(random, sm2.N)
	if err != nil {
		return nil, err
	}
	if k1.Sign() == 0 {
		k1.SetInt64(1)
	}
	priv, err := paillier.GenerateKeyPair(random, paillierBits)
	if err != nil {
		return nil, err
	}
	return &Client{k1: k1, paillier: priv, state: clientInit}, nil
}

// PaillierPublicKey returns the encryption key the server must use for its
// round-2 ciphertexts, so values are only ever decryptable by this client.
func (c *Client) PaillierPublicKey() paillier.PublicKey {
	return c.paillier.PublicKey
}

// Round1 blinds the client's own items with k1 and returns them in random
// order; the server adds the second blinding in Round2.
func (c *Client) Round1(random io.Reader, items [][]byte) ([]sm2.Point, error) {
	if c.state != clientInit {
		return nil, ProtocolStateError{Reason: "round1 already completed for this session"}
	}
	blinded := make([]sm2.Point, len(items))
	for i, item := range items {
		blinded[i] = blind(hashToPoint(item), c.k1)
	}
	shuffled, err := shufflePoints(random, blinded)
	if err != nil {
		return nil, err
	}
	c.state = clientRound1Done
	return shuffled, nil
}

// Round3 completes the client's side: it confirms the server encrypted B
// under this session's own Paillier key, re-blinds each of the server's
// singly-blinded identifiers with k1, checks membership against the
// doubly-blinded set z, and homomorphically sums the ciphertexts of the
// matches. An empty intersection yields Enc(0) rather than an error, per
// the protocol's defined behaviour for that case.
func (c *Client) Round3(random io.Reader, serverPub paillier.PublicKey, z []sm2.Point, b []BlindedValue) (*big.Int, error) {
	if c.state != clientRound1Done {
		return nil, ProtocolStateError{Reason: "round3 called before round1"}
	}
	if !serverPub.Equal(c.paillier.PublicKey) {
		return nil, ProtocolInputError{Reason: "server encrypted under a Paillier key that does not match this session"}
	}

	inZ := make(map[string]struct{}, len(z))
	for _, p := range z {
		key, err := pointKey(p)
		if err != nil {
			return nil, err
		}
		inZ[key] = struct{}{}
	}

	pub := &c.paillier.PublicKey
	sum, err := pub.Encrypt(random, big.NewInt(0))
	if err != nil {
		return nil, err
	}

	for _, entry := range b {
		doubled := blind(entry.Point, c.k1)
		key, err := pointKey(doubled)
		if err != nil {
			return nil, err
		}
		if _, ok := inZ[key]; !ok {
			continue
		}
		sum, err = pub.HomoAdd(sum, entry.Ciphertext)
		if err != nil {
			return nil, err
		}
	}

	return pub.Refresh(random, sum)
}

// Decrypt recovers the plaintext sum from the ciphertext Round3 produced.
// It is the client, not the server, that performs this step: the client
// holds the only Paillier private key in the session.
func (c *Client) Decrypt(ciphertext *big.Int) (int64, error) {
	m, err := c.paillier.Decrypt(ciphertext)
	if err != nil {
		return 0, err
	}
	if !m.IsInt64() {
		return 0, ProtocolInputError{Reason: "decrypted sum exceeds int64 range"}
	}
	return m.Int64(), nil
}
