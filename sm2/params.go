// Package sm2 implements the GB/T 32918 elliptic-curve signature scheme:
// key generation, ZA-bound signing and verification, compressed point
// encoding, and a windowed scalar-multiplication routine, all over the
// standard 256-bit SM2 prime curve.
package sm2

import "math/big"

func hexBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("sm2: invalid curve constant " + s)
	}
	return n
}

// Curve constants from GB/T 32918.5-2016.
var (
	P = hexBig("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF")
	A = hexBig("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC")
	B = hexBig("28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93")
	N = hexBig("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123")

	gx = hexBig("32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7")
	gy = hexBig("BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0")
)

// G is the SM2 base point.
var G = Point{X: new(big.Int).Set(gx), Y: new(big.Int).Set(gy)}

// scalarFieldByteLen is the fixed-width encoding length of scalars and
// coordinates: 256 bits.
const scalarFieldByteLen = 32
