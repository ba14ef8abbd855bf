package attacks

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoDeng2005/sm2pis/sm2"
)

func mustKey(t *testing.T) *sm2.PrivateKey {
	t.Helper()
	priv, err := sm2.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return priv
}

func TestRecoverFromLeakedNonce(t *testing.T) {
	priv := mustKey(t)
	id := []byte("UserA")
	msg := []byte("Test message")

	k, err := sm2.NewNonce(rand.Reader)
	require.NoError(t, err)

	sig, err := sm2.SignWithNonce(priv, id, msg, k)
	require.NoError(t, err)
	require.True(t, sm2.Verify(priv.PublicKey, id, msg, sig))

	recovered := RecoverFromLeakedNonce(sig, k)
	assert.Equal(t, 0, recovered.Cmp(priv.D), "recovered key must equal the original bit-for-bit")
}

func TestRecoverFromNonceReuse(t *testing.T) {
	priv := mustKey(t)
	id := []byte("UserA")

	k, err := sm2.NewNonce(rand.Reader)
	require.NoError(t, err)

	sig1, err := sm2.SignWithNonce(priv, id, []byte("Message 1"), k)
	require.NoError(t, err)
	sig2, err := sm2.SignWithNonce(priv, id, []byte("Message 2"), k)
	require.NoError(t, err)

	recovered, err := RecoverFromNonceReuse(sig1, sig2)
	require.NoError(t, err)
	assert.Equal(t, 0, recovered.Cmp(priv.D))
}

func TestRecoverFromECDSANonceReuse(t *testing.T) {
	priv, err := sm2.NewNonce(rand.Reader)
	require.NoError(t, err)
	k, err := sm2.NewNonce(rand.Reader)
	require.NoError(t, err)

	sig1 := ECDSASignWithNonce(priv, k, []byte("Transaction 1"))
	sig2 := ECDSASignWithNonce(priv, k, []byte("Transaction 2"))

	recovered, err := RecoverFromECDSANonceReuse(sig1, sig2)
	require.NoError(t, err)
	assert.Equal(t, 0, recovered.Cmp(priv))
}

func TestRecoverFromNonceReuseRejectsDegenerateInput(t *testing.T) {
	sig := &sm2.Signature{R: big.NewInt(5), S: big.NewInt(7)}
	_, err := RecoverFromNonceReuse(sig, sig)
	assert.Error(t, err)
}
