package pis

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/paillier"
	"github.com/XiaoDeng2005/sm2pis/sm2"
)

// Server is the party that holds (identifier, value) pairs and never sees
// the client's items in the clear, only their double-blinded images.
type Server struct {
	k2  *big.Int
	pub paillier.PublicKey
}

// NewServer starts a session bound to the client's Paillier public key: the
// server must encrypt under that key so only the client can later decrypt.
func NewServer(random io.Reader, clientPub paillier.PublicKey) (*Server, error) {
	if random == nil {
		random = rand.Reader
	}
	k2, err := rand.Int(random, sm2.N)
	if err != nil {
		return nil, err
	}
	if k2.Sign() == 0 {
		k2.SetInt64(1)
	}
	return &Server{k2: k2, pub: clientPub}, nil
}

// PaillierPublicKey returns the key Round2 encrypted B's values under, so
// the client can confirm it matches its own key before trusting B — see
// Client.Round3.
func (s *Server) PaillierPublicKey() paillier.PublicKey {
	return s.pub
}

// Round2 re-blinds the client's round-1 elements with k2 to produce Z, and
// separately blinds and encrypts the server's own (identifier, value) pairs
// to produce B. Both outputs are independently shuffled before return.
func (s *Server) Round2(random io.Reader, a []sm2.Point, pairs []Pair) (z []sm2.Point, b []BlindedValue, err error) {
	seen := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		if _, dup := seen[string(p.ID)]; dup {
			return nil, nil, ProtocolInputError{Reason: "duplicate identifier in server set"}
		}
		seen[string(p.ID)] = struct{}{}
	}

	doubled := make([]sm2.Point, len(a))
	for i, elem := range a {
		doubled[i] = blind(elem, s.k2)
	}
	z, err = shufflePoints(random, doubled)
	if err != nil {
		return nil, nil, err
	}

	blindedValues := make([]BlindedValue, len(pairs))
	for i, p := range pairs {
		ct, err := s.pub.Encrypt(random, big.NewInt(p.Value))
		if err != nil {
			return nil, nil, err
		}
		blindedValues[i] = BlindedValue{Point: blind(hashToPoint(p.ID), s.k2), Ciphertext: ct}
	}
	b, err = shuffleBlindedValues(random, blindedValues)
	if err != nil {
		return nil, nil, err
	}

	return z, b, nil
}
