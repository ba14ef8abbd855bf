// Package pis implements the three-round DDH-based private intersection-sum
// protocol: a client and server each hold a set of identifiers, the server
// additionally holds an integer value per identifier, and the protocol lets
// the client learn the sum of values over the intersection of the two sets
// without either side learning anything else about the other's set.
package pis

import (
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/sm2"
)

// Pair is one of the server's (identifier, value) entries.
type Pair struct {
	ID    []byte
	Value int64
}

// BlindedValue is one entry of the server's round-2 output set B: a
// server-blinded identifier paired with the Paillier encryption of its
// value, so the client can sum values for identifiers it recognises without
// learning any value it can't already attribute to the intersection.
type BlindedValue struct {
	Point      sm2.Point
	Ciphertext *big.Int
}
