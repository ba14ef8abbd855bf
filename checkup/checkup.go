// Package checkup implements a "password checkup" façade over the private
// intersection-sum protocol: given a client's password list and a server's
// list of breached passwords, it reports only how many of the client's
// passwords are breached, never which ones. Each password string is mapped
// to an opaque identifier before entering the protocol so neither party
// transmits anything that looks like a password.
package checkup

import (
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/pbkdf2"

	"github.com/XiaoDeng2005/sm2pis/paillier"
	"github.com/XiaoDeng2005/sm2pis/pis"
	"github.com/XiaoDeng2005/sm2pis/sm2"
)

// pbkdf2Iterations and identifierLen fix the derivation spec's parameters:
// 100,000 rounds of HMAC-SHA256, 32-byte output.
const (
	pbkdf2Iterations = 100_000
	identifierLen    = 32
)

// DeriveIdentifier turns a password and a shared salt into the opaque
// identifier both parties use in place of the password itself. salt must be
// the same byte string on both sides of a session, out of band.
func DeriveIdentifier(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, identifierLen, sha256.New)
}

// Client holds the caller's password list and drives its side of a checkup
// session, translating passwords to identifiers before handing them to the
// underlying intersection-sum protocol.
type Client struct {
	session *pis.Client
}

// NewClient starts a checkup session at the given Paillier modulus size (0
// selects paillier.DefaultModulusBits).
func NewClient(random io.Reader, paillierBits int) (*Client, error) {
	session, err := pis.NewClient(random, paillierBits)
	if err != nil {
		return nil, err
	}
	return &Client{session: session}, nil
}

// PaillierPublicKey exposes the session's encryption key for NewServer.
func (c *Client) PaillierPublicKey() paillier.PublicKey {
	return c.session.PaillierPublicKey()
}

// Round1 derives an identifier for each password under salt and runs the
// underlying protocol's first round.
func (c *Client) Round1(random io.Reader, passwords []string, salt []byte) ([]sm2.Point, error) {
	ids := make([][]byte, len(passwords))
	for i, pw := range passwords {
		ids[i] = DeriveIdentifier(pw, salt)
	}
	return c.session.Round1(random, ids)
}

// Round3 and Decrypt forward directly to the wrapped protocol session: the
// façade only changes how identifiers are produced, not how the protocol
// rounds work.
func (c *Client) Round3(random io.Reader, serverPub paillier.PublicKey, z []sm2.Point, b []pis.BlindedValue) (*big.Int, error) {
	return c.session.Round3(random, serverPub, z, b)
}

func (c *Client) Decrypt(ciphertext *big.Int) (int64, error) {
	return c.session.Decrypt(ciphertext)
}

// Server holds the server's (password, is-breached) universe — in the
// canonical checkup use case every entry's value is 1, a presence
// indicator, so the final sum is simply the count of breached passwords.
type Server struct {
	session *pis.Server
}

// PaillierPublicKey exposes the key this server encrypted B under, for the
// client to confirm in Client.Round3.
func (s *Server) PaillierPublicKey() paillier.PublicKey {
	return s.session.PaillierPublicKey()
}

// NewServer starts the server side of a checkup session bound to the
// client's Paillier public key.
func NewServer(random io.Reader, clientPub paillier.PublicKey) (*Server, error) {
	session, err := pis.NewServer(random, clientPub)
	if err != nil {
		return nil, err
	}
	return &Server{session: session}, nil
}

// Round2 derives identifiers for the server's breached-password list
// (each with presence value 1) and runs the underlying protocol's second
// round.
func (s *Server) Round2(random io.Reader, a []sm2.Point, breachedPasswords []string, salt []byte) (z []sm2.Point, b []pis.BlindedValue, err error) {
	pairs := make([]pis.Pair, len(breachedPasswords))
	for i, pw := range breachedPasswords {
		pairs[i] = pis.Pair{ID: DeriveIdentifier(pw, salt), Value: 1}
	}
	return s.session.Round2(random, a, pairs)
}
