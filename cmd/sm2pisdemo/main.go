// sm2pisdemo exercises the SM2 signature engine, its attack demonstrators,
// and the password-checkup private intersection-sum protocol end to end.
//
// Usage:
//
//	sm2pisdemo
//
// The driver prints labelled sections and pass/fail banners for each
// scenario; it takes no flags and talks to no network — every "client" and
// "server" object below lives in the same process, standing in for the two
// parties a real deployment would keep separate.
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"github.com/XiaoDeng2005/sm2pis/attacks"
	"github.com/XiaoDeng2005/sm2pis/checkup"
	"github.com/XiaoDeng2005/sm2pis/sm2"
)

func main() {
	runSM2Demo()
	runAttackDemo()
	runCheckupDemo()
}

func banner(title string) {
	fmt.Println()
	fmt.Println("=== " + title + " ===")
}

func pass(label string, ok bool) {
	if ok {
		fmt.Printf("[PASS] %s\n", label)
		return
	}
	fmt.Printf("[FAIL] %s\n", label)
}

func runSM2Demo() {
	banner("SM2 sign / verify / compression")

	priv, err := sm2.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("sm2 keygen: %v", err)
	}

	id := []byte("1234567812345678")
	msg := []byte("abc")
	sig, err := sm2.Sign(rand.Reader, priv, id, msg)
	if err != nil {
		log.Fatalf("sm2 sign: %v", err)
	}
	pass("sign/verify round trip", sm2.Verify(priv.PublicKey, id, msg, sig))

	tampered := append([]byte{}, msg...)
	tampered[0] ^= 0x01
	pass("verify rejects tampered message", !sm2.Verify(priv.PublicKey, id, tampered, sig))

	compressed, err := sm2.Compress(priv.PublicKey)
	if err != nil {
		log.Fatalf("compress: %v", err)
	}
	decoded, err := sm2.Decompress(compressed)
	if err != nil {
		log.Fatalf("decompress: %v", err)
	}
	pass("compress/decompress round trip", priv.PublicKey.Equal(decoded))

	k, ok := new(big.Int).SetString("1234567890ABCDEF", 16)
	if !ok {
		log.Fatalf("parsing demo scalar")
	}
	naive := sm2.G.ScalarMult(k)
	windowed := sm2.WindowedScalarMult(sm2.G, k, sm2.DefaultWindow)
	pass("windowed scalar multiplication agrees with naive", naive.Equal(windowed))
}

func runAttackDemo() {
	banner("Nonce-leak and nonce-reuse key recovery")

	priv, err := sm2.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("sm2 keygen: %v", err)
	}
	id := []byte("attacker-demo")

	k, err := sm2.NewNonce(rand.Reader)
	if err != nil {
		log.Fatalf("nonce: %v", err)
	}
	sig, err := sm2.SignWithNonce(priv, id, []byte("leaked-nonce message"), k)
	if err != nil {
		log.Fatalf("sign with known nonce: %v", err)
	}
	recovered := attacks.RecoverFromLeakedNonce(sig, k)
	fmt.Printf("original dA  = %x\n", priv.D)
	fmt.Printf("recovered dA = %x\n", recovered)
	pass("nonce-leak recovery matches original key", recovered.Cmp(priv.D) == 0)

	sig1, err := sm2.SignWithNonce(priv, id, []byte("message one"), k)
	if err != nil {
		log.Fatalf("sign with reused nonce: %v", err)
	}
	sig2, err := sm2.SignWithNonce(priv, id, []byte("message two"), k)
	if err != nil {
		log.Fatalf("sign with reused nonce: %v", err)
	}
	reuseRecovered, err := attacks.RecoverFromNonceReuse(sig1, sig2)
	if err != nil {
		log.Fatalf("nonce-reuse recovery: %v", err)
	}
	pass("SM2 nonce-reuse recovery matches original key", reuseRecovered.Cmp(priv.D) == 0)

	ecdsaKey, err := sm2.NewNonce(rand.Reader)
	if err != nil {
		log.Fatalf("ecdsa demo key: %v", err)
	}
	ecdsaSig1 := attacks.ECDSASignWithNonce(ecdsaKey, k, []byte("transaction one"))
	ecdsaSig2 := attacks.ECDSASignWithNonce(ecdsaKey, k, []byte("transaction two"))
	ecdsaRecovered, err := attacks.RecoverFromECDSANonceReuse(ecdsaSig1, ecdsaSig2)
	if err != nil {
		log.Fatalf("ecdsa nonce-reuse recovery: %v", err)
	}
	pass("ECDSA nonce-reuse recovery matches original key", ecdsaRecovered.Cmp(ecdsaKey) == 0)
}

func runCheckupDemo() {
	banner("Password checkup (private intersection-sum)")

	salt := []byte("demo-shared-salt")
	clientPasswords := []string{"SecureP@ss123", "MySecret!", "Company2023"}
	leakedPasswords := []string{"MySecret!", "123456", "admin"}

	client, err := checkup.NewClient(rand.Reader, 0)
	if err != nil {
		log.Fatalf("checkup client init: %v", err)
	}
	server, err := checkup.NewServer(rand.Reader, client.PaillierPublicKey())
	if err != nil {
		log.Fatalf("checkup server init: %v", err)
	}

	a, err := client.Round1(rand.Reader, clientPasswords, salt)
	if err != nil {
		log.Fatalf("round1: %v", err)
	}
	z, b, err := server.Round2(rand.Reader, a, leakedPasswords, salt)
	if err != nil {
		log.Fatalf("round2: %v", err)
	}
	ciphertext, err := client.Round3(rand.Reader, server.PaillierPublicKey(), z, b)
	if err != nil {
		log.Fatalf("round3: %v", err)
	}
	breached, err := client.Decrypt(ciphertext)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}

	fmt.Printf("%d of %d passwords appear on the breach list\n", breached, len(clientPasswords))
	pass("password checkup matches expected count", breached == 1)
}
