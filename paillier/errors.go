package paillier

import "fmt"

// MessageTooLargeError reports that a plaintext or scalar does not fit the
// modulus n, or that a batch slot value is negative or exceeds the slot
// capacity.
type MessageTooLargeError struct {
	Bound string
}

func (e MessageTooLargeError) Error() string {
	return fmt.Sprintf("paillier: message out of range: %s", e.Bound)
}

// CiphertextMalformedError reports that a ciphertext is outside [0, n²) or
// is not coprime to n², either of which makes it impossible to have come
// from a valid encryption under this key.
type CiphertextMalformedError struct {
	Reason string
}

func (e CiphertextMalformedError) Error() string {
	return fmt.Sprintf("paillier: ciphertext malformed: %s", e.Reason)
}

// KeyGenerationError wraps a failure to draw random values: the two large
// primes keygen needs, or the blinding factor an encryption needs. It is
// usually caused by a failed entropy source.
type KeyGenerationError struct {
	Err error
}

func (e KeyGenerationError) Error() string {
	return fmt.Sprintf("paillier: key generation failed: %s", e.Err)
}

func (e KeyGenerationError) Unwrap() error {
	return e.Err
}
