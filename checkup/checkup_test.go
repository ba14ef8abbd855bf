package checkup

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPaillierBits = 256

func TestPasswordCheckupConcreteScenario(t *testing.T) {
	salt := []byte("shared-checkup-salt")
	clientPasswords := []string{"SecureP@ss123", "MySecret!", "Company2023"}
	leakedPasswords := []string{"MySecret!", "123456", "admin"}

	client, err := NewClient(rand.Reader, testPaillierBits)
	require.NoError(t, err)
	server, err := NewServer(rand.Reader, client.PaillierPublicKey())
	require.NoError(t, err)

	a, err := client.Round1(rand.Reader, clientPasswords, salt)
	require.NoError(t, err)

	z, b, err := server.Round2(rand.Reader, a, leakedPasswords, salt)
	require.NoError(t, err)

	ciphertext, err := client.Round3(rand.Reader, server.PaillierPublicKey(), z, b)
	require.NoError(t, err)

	breachedCount, err := client.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, int64(1), breachedCount)
}

func TestDeriveIdentifierIsDeterministicPerSalt(t *testing.T) {
	salt := []byte("salt-a")
	first := DeriveIdentifier("hunter2", salt)
	second := DeriveIdentifier("hunter2", salt)
	assert.Equal(t, first, second)

	other := DeriveIdentifier("hunter2", []byte("salt-b"))
	assert.NotEqual(t, first, other)
}

func TestDeriveIdentifierDiffersByPassword(t *testing.T) {
	salt := []byte("shared-salt")
	assert.NotEqual(t, DeriveIdentifier("password1", salt), DeriveIdentifier("password2", salt))
}

func TestNoBreachedPasswordsYieldsZero(t *testing.T) {
	salt := []byte("shared-checkup-salt")
	client, err := NewClient(rand.Reader, testPaillierBits)
	require.NoError(t, err)
	server, err := NewServer(rand.Reader, client.PaillierPublicKey())
	require.NoError(t, err)

	a, err := client.Round1(rand.Reader, []string{"unique-pw-1", "unique-pw-2"}, salt)
	require.NoError(t, err)
	z, b, err := server.Round2(rand.Reader, a, []string{"other-pw-1", "other-pw-2"}, salt)
	require.NoError(t, err)
	ciphertext, err := client.Round3(rand.Reader, server.PaillierPublicKey(), z, b)
	require.NoError(t, err)
	count, err := client.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
