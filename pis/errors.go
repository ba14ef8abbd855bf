package pis

import "fmt"

// ProtocolStateError reports a round invoked out of sequence — before init,
// or a second time after the session already consumed it.
type ProtocolStateError struct {
	Reason string
}

func (e ProtocolStateError) Error() string {
	return fmt.Sprintf("pis: protocol state: %s", e.Reason)
}

// ProtocolInputError reports malformed round input: a duplicate identifier
// in the server's set, or a Paillier public key that does not match the
// session's.
type ProtocolInputError struct {
	Reason string
}

func (e ProtocolInputError) Error() string {
	return fmt.Sprintf("pis: protocol input: %s", e.Reason)
}
