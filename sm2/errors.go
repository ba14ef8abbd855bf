package sm2

import "fmt"

// InvalidScalarError reports a scalar outside its required range, e.g. a
// private key or nonce not in [1, N-1].
type InvalidScalarError struct {
	Reason string
}

func (e InvalidScalarError) Error() string {
	return fmt.Sprintf("sm2: invalid scalar: %s", e.Reason)
}

// InvalidPointError reports a point that is off-curve or an arithmetic step
// that produced an impossible state.
type InvalidPointError struct {
	Reason string
}

func (e InvalidPointError) Error() string {
	return fmt.Sprintf("sm2: invalid point: %s", e.Reason)
}

// SignatureMalformedError reports an (r, s) pair outside [1, N-1].
type SignatureMalformedError struct{}

func (e SignatureMalformedError) Error() string {
	return "sm2: signature malformed: r or s out of range"
}

// EntropyError reports that the system RNG could not be read.
type EntropyError struct {
	Err error
}

func (e EntropyError) Error() string {
	return fmt.Sprintf("sm2: entropy source failed: %v", e.Err)
}

// RetryBudgetExceededError reports that Sign exhausted its nonce-retry
// budget without producing a valid (r, s).
type RetryBudgetExceededError struct {
	Attempts int
}

func (e RetryBudgetExceededError) Error() string {
	return fmt.Sprintf("sm2: sign exceeded retry budget after %d attempts", e.Attempts)
}
