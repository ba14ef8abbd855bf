package pis

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/sm2"
)

// shufflePoints returns a random permutation of pts (Fisher-Yates), drawing
// its randomness from random rather than math/rand: the permutation is part
// of the protocol's privacy argument, not a cosmetic detail.
func shufflePoints(random io.Reader, pts []sm2.Point) ([]sm2.Point, error) {
	out := append([]sm2.Point(nil), pts...)
	if err := fisherYates(random, len(out), func(i, j int) { out[i], out[j] = out[j], out[i] }); err != nil {
		return nil, err
	}
	return out, nil
}

// shuffleBlindedValues permutes a BlindedValue slice the same way.
func shuffleBlindedValues(random io.Reader, vals []BlindedValue) ([]BlindedValue, error) {
	out := append([]BlindedValue(nil), vals...)
	if err := fisherYates(random, len(out), func(i, j int) { out[i], out[j] = out[j], out[i] }); err != nil {
		return nil, err
	}
	return out, nil
}

func fisherYates(random io.Reader, n int, swap func(i, j int)) error {
	if random == nil {
		random = rand.Reader
	}
	for i := n - 1; i > 0; i-- {
		j, err := rand.Int(random, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		swap(i, int(j.Int64()))
	}
	return nil
}
