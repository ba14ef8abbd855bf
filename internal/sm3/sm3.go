// Package sm3 implements the SM3 cryptographic hash algorithm (GB/T 32905-2016),
// the hash function the SM2 signature engine and the PIS group map build on.
package sm3

import (
	"encoding/binary"
	"hash"
)

const (
	// Size is the length in bytes of an SM3 digest.
	Size = 32
	// BlockSize is the SM3 message block size in bytes.
	BlockSize = 64
)

var iv = [8]uint32{
	0x7380166f, 0x4914b2b9, 0x172442d7, 0xda8a0600,
	0xa96f30bc, 0x163138aa, 0xe38dee4d, 0xb0fb0e4e,
}

const (
	tj0 = uint32(0x79cc4519)
	tj1 = uint32(0x7a879d8a)
)

type digest struct {
	h       [8]uint32
	nbits   uint64 // total message length processed, in bits
	pending []byte // unprocessed tail, always shorter than BlockSize
}

// New returns a hash.Hash computing the SM3 checksum.
func New() hash.Hash {
	d := &digest{}
	d.Reset()
	return d
}

func (d *digest) Reset() {
	d.h = iv
	d.nbits = 0
	d.pending = d.pending[:0]
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	d.nbits += uint64(len(p)) * 8
	d.pending = append(d.pending, p...)
	n := len(d.pending) / BlockSize * BlockSize
	d.compress(d.pending[:n])
	d.pending = d.pending[n:]
	return len(p), nil
}

func (d *digest) Sum(in []byte) []byte {
	final := *d
	final.pending = append([]byte(nil), d.pending...)
	final.compress(final.padded())

	var out [Size]byte
	for i, v := range final.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return append(in, out[:]...)
}

// padded returns the final blocks (pending tail, 0x80, zero fill, bit length).
func (d *digest) padded() []byte {
	msg := append([]byte(nil), d.pending...)
	msg = append(msg, 0x80)
	for len(msg)%BlockSize != 56 {
		msg = append(msg, 0x00)
	}
	var lenBytes [8]byte
	binary.BigEndian.PutUint64(lenBytes[:], d.nbits)
	return append(msg, lenBytes[:]...)
}

// compress runs the SM3 compression function over consecutive 64-byte blocks.
func (d *digest) compress(blocks []byte) {
	var w [68]uint32
	var w1 [64]uint32

	a, b, c, e, f, g := d.h[0], d.h[1], d.h[2], d.h[4], d.h[5], d.h[6]
	dd, h := d.h[3], d.h[7]

	for len(blocks) >= BlockSize {
		for i := 0; i < 16; i++ {
			w[i] = binary.BigEndian.Uint32(blocks[4*i:])
		}
		for i := 16; i < 68; i++ {
			w[i] = p1(w[i-16]^w[i-9]^rotl(w[i-3], 15)) ^ rotl(w[i-13], 7) ^ w[i-6]
		}
		for i := 0; i < 64; i++ {
			w1[i] = w[i] ^ w[i+4]
		}

		A, B, C, D, E, F, G, H := a, b, c, dd, e, f, g, h

		for i := 0; i < 16; i++ {
			ss1 := rotl(rotl(A, 12)+E+rotl(tj0, uint32(i)), 7)
			ss2 := ss1 ^ rotl(A, 12)
			tt1 := ff0(A, B, C) + D + ss2 + w1[i]
			tt2 := gg0(E, F, G) + H + ss1 + w[i]
			D, C, B = C, rotl(B, 9), A
			A = tt1
			H, G, F = G, rotl(F, 19), E
			E = p0(tt2)
		}
		for i := 16; i < 64; i++ {
			ss1 := rotl(rotl(A, 12)+E+rotl(tj1, uint32(i)), 7)
			ss2 := ss1 ^ rotl(A, 12)
			tt1 := ff1(A, B, C) + D + ss2 + w1[i]
			tt2 := gg1(E, F, G) + H + ss1 + w[i]
			D, C, B = C, rotl(B, 9), A
			A = tt1
			H, G, F = G, rotl(F, 19), E
			E = p0(tt2)
		}

		a ^= A
		b ^= B
		c ^= C
		dd ^= D
		e ^= E
		f ^= F
		g ^= G
		h ^= H

		blocks = blocks[BlockSize:]
	}

	d.h[0], d.h[1], d.h[2], d.h[3] = a, b, c, dd
	d.h[4], d.h[5], d.h[6], d.h[7] = e, f, g, h
}

func rotl(x, i uint32) uint32 { return x<<(i%32) | x>>(32-i%32) }

func ff0(x, y, z uint32) uint32 { return x ^ y ^ z }
func ff1(x, y, z uint32) uint32 { return (x & y) | (x & z) | (y & z) }
func gg0(x, y, z uint32) uint32 { return x ^ y ^ z }
func gg1(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func p0(x uint32) uint32        { return x ^ rotl(x, 9) ^ rotl(x, 17) }
func p1(x uint32) uint32        { return x ^ rotl(x, 15) ^ rotl(x, 23) }

// Sum256 returns the SM3 digest of data.
func Sum256(data []byte) [Size]byte {
	h := New()
	h.Write(data)
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
