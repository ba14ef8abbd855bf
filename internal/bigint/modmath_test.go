package bigint

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInverseOfZeroIsZero(t *testing.T) {
	m := big.NewInt(97)
	assert.Equal(t, big.NewInt(0), Inverse(big.NewInt(0), m))
}

func TestInverseRoundTrip(t *testing.T) {
	m := big.NewInt(97)
	a := big.NewInt(13)
	inv := Inverse(a, m)
	assert.Equal(t, int64(1), Mul(a, inv, m).Int64())
}

func TestAddSubMulWrapMod(t *testing.T) {
	m := big.NewInt(11)
	a, b := big.NewInt(9), big.NewInt(7)

	assert.Equal(t, int64(5), Add(a, b, m).Int64())   // 16 mod 11
	assert.Equal(t, int64(2), Sub(a, b, m).Int64())   // 2 mod 11
	assert.Equal(t, int64(8), Mul(a, b, m).Int64())   // 63 mod 11
}

func TestExpMatchesRepeatedMultiplication(t *testing.T) {
	m := big.NewInt(1000000007)
	base := big.NewInt(12345)
	exp := big.NewInt(17)

	want := big.NewInt(1)
	for i := int64(0); i < 17; i++ {
		want = Mul(want, base, m)
	}
	assert.Equal(t, want, Exp(base, exp, m))
}
