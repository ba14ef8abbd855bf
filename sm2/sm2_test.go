package sm2

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustKey(t *testing.T) *PrivateKey {
	t.Helper()
	priv, err := GenerateKey(rand.Reader)
	require.NoError(t, err)
	return priv
}

func TestSignVerifyRoundTrip(t *testing.T) {
	priv := mustKey(t)
	id := []byte("1234567812345678")
	msg := []byte("abc")

	sig, err := Sign(rand.Reader, priv, id, msg)
	require.NoError(t, err)
	assert.True(t, Verify(priv.PublicKey, id, msg, sig))
}

func TestVerifyRejectsTampering(t *testing.T) {
	priv := mustKey(t)
	id := []byte("1234567812345678")
	msg := []byte("abc")

	sig, err := Sign(rand.Reader, priv, id, msg)
	require.NoError(t, err)

	tamperedMsg := append([]byte{}, msg...)
	tamperedMsg[0] ^= 0x01
	assert.False(t, Verify(priv.PublicKey, id, tamperedMsg, sig))

	tamperedR := &Signature{R: new(big.Int).Xor(sig.R, big.NewInt(1)), S: sig.S}
	assert.False(t, Verify(priv.PublicKey, id, msg, tamperedR))

	tamperedS := &Signature{R: sig.R, S: new(big.Int).Xor(sig.S, big.NewInt(1))}
	assert.False(t, Verify(priv.PublicKey, id, msg, tamperedS))
}

func TestVerifyRejectsMalformedSignature(t *testing.T) {
	priv := mustKey(t)
	id := []byte("1234567812345678")

	assert.False(t, Verify(priv.PublicKey, id, []byte("abc"), &Signature{R: big.NewInt(0), S: big.NewInt(1)}))
	assert.False(t, Verify(priv.PublicKey, id, []byte("abc"), &Signature{R: big.NewInt(1), S: big.NewInt(0)}))
	assert.False(t, Verify(priv.PublicKey, id, []byte("abc"), &Signature{R: N, S: big.NewInt(1)}))
}

func TestGenerateKeyStaysInPrivateRange(t *testing.T) {
	upper := new(big.Int).Sub(N, big.NewInt(2))
	for i := 0; i < 20; i++ {
		priv := mustKey(t)
		assert.True(t, priv.D.Sign() > 0)
		assert.True(t, priv.D.Cmp(upper) <= 0, "dA exceeded N-2")
	}
}

func TestCheckSignatureShape(t *testing.T) {
	assert.Error(t, CheckSignatureShape(nil))
	assert.Error(t, CheckSignatureShape(&Signature{R: big.NewInt(0), S: big.NewInt(1)}))
	assert.Error(t, CheckSignatureShape(&Signature{R: big.NewInt(1), S: big.NewInt(0)}))
	assert.Error(t, CheckSignatureShape(&Signature{R: N, S: big.NewInt(1)}))
	assert.Error(t, CheckSignatureShape(&Signature{R: big.NewInt(1), S: N}))
	assert.NoError(t, CheckSignatureShape(&Signature{R: big.NewInt(1), S: big.NewInt(1)}))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	out, err := Compress(G)
	require.NoError(t, err)
	assert.Equal(t, CompressedLen, len(out))

	want := byte(0x02)
	if G.Y.Bit(0) == 1 {
		want = 0x03
	}
	assert.Equal(t, want, out[0])

	decoded, err := Decompress(out)
	require.NoError(t, err)
	assert.True(t, G.Equal(decoded))
}

func TestCompressDecompressRoundTripRandomPoints(t *testing.T) {
	for i := 0; i < 10; i++ {
		priv := mustKey(t)
		compressed, err := Compress(priv.PublicKey)
		require.NoError(t, err)
		decoded, err := Decompress(compressed)
		require.NoError(t, err)
		assert.True(t, priv.PublicKey.Equal(decoded))
	}
}

func TestDecompressRejectsOffCurvePoint(t *testing.T) {
	bad := make([]byte, CompressedLen)
	bad[0] = 0x02
	bad[CompressedLen-1] = 0x02 // x = 2 has no point on the SM2 curve
	_, err := Decompress(bad)
	assert.Error(t, err)
}

func TestScalarMultAgreesWithWindowed(t *testing.T) {
	k, ok := new(big.Int).SetString("1234567890ABCDEF", 16)
	require.True(t, ok)

	naive := G.ScalarMult(k)
	windowed := WindowedScalarMult(G, k, 4)
	assert.True(t, naive.Equal(windowed))
}

func TestScalarMultAgreesWithWindowedAcrossWidths(t *testing.T) {
	priv := mustKey(t)
	naive := G.ScalarMult(priv.D)
	for _, w := range []int{2, 3, 4, 5, 6} {
		windowed := WindowedScalarMult(G, priv.D, w)
		assert.True(t, naive.Equal(windowed), "window width %d disagreed", w)
	}
}

func TestDoublingBasics(t *testing.T) {
	twoG := G.Double()
	assert.False(t, twoG.Equal(Infinity))
	assert.True(t, twoG.IsOnCurve())

	nG := G.ScalarMult(N)
	assert.True(t, nG.Equal(Infinity))
}

func TestAddInfinityIdentities(t *testing.T) {
	assert.True(t, G.Add(Infinity).Equal(G))
	assert.True(t, Infinity.Add(G).Equal(G))
}

func TestAddInverseIsInfinity(t *testing.T) {
	neg := G.Negate()
	assert.True(t, G.Add(neg).Equal(Infinity))
}

func TestScalarMultByZero(t *testing.T) {
	assert.True(t, G.ScalarMult(big.NewInt(0)).Equal(Infinity))
}
