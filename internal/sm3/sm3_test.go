package sm3

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum256KnownVectors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", []byte{}, "1ab21d8355cfa17f8e61194831e81a8f22bec8c728fefb747ed035eb5082aa2b"},
		{"abc", []byte("abc"), "66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sum256(tt.in)
			assert.Equal(t, tt.want, hex.EncodeToString(got[:]))
		})
	}
}

func TestWriteStreamingMatchesOneShot(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, SM3 streaming check")

	oneShot := Sum256(data)

	h := New()
	for i := 0; i < len(data); i += 7 {
		end := min(i+7, len(data))
		h.Write(data[i:end])
	}
	var streamed [Size]byte
	copy(streamed[:], h.Sum(nil))

	assert.Equal(t, oneShot, streamed)
}

func TestResetReusesDigest(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))
	first := h.Sum(nil)

	h.Reset()
	h.Write([]byte("abc"))
	second := h.Sum(nil)

	assert.Equal(t, first, second)
}
