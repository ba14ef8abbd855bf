package paillier

import "math/big"

// SlotBits is the width of one batch-packing slot. 40 bits comfortably
// holds the small non-negative counters this protocol sums (password-list
// lengths, breach counts) while leaving headroom below a 2048-bit modulus
// for dozens of slots without overflowing into a neighbour during the
// homomorphic sum.
const SlotBits = 40

// MaxSlotValue is the exclusive upper bound on a single slot's value:
// PackValues rejects any value at or above it, leaving 8 bits of headroom
// against carry into the next slot once several packed plaintexts are
// summed homomorphically.
var MaxSlotValue = new(big.Int).Lsh(big.NewInt(1), SlotBits-8)

// PackValues packs up to n small non-negative values into a single Paillier
// plaintext, one per 40-bit slot, values[0] occupying the low bits. It
// exists for batched PIS sessions that want to sum several independent
// tallies in one ciphertext instead of one Paillier operation per tally;
// ordinary single-value sessions should just encrypt the value directly.
func PackValues(values []int64) (*big.Int, error) {
	packed := new(big.Int)
	slot := new(big.Int)
	for i, v := range values {
		if v < 0 {
			return nil, MessageTooLargeError{Bound: "batch slot values must be non-negative"}
		}
		slot.SetInt64(v)
		if slot.Cmp(MaxSlotValue) >= 0 {
			return nil, MessageTooLargeError{Bound: "batch slot value exceeds slot capacity"}
		}
		packed.Or(packed, new(big.Int).Lsh(slot, uint(i*SlotBits)))
	}
	return packed, nil
}

// UnpackValues reverses PackValues, extracting count slots of SlotBits bits
// each from a decrypted plaintext. It does not detect slot-overflow carry
// from upstream homomorphic additions — callers summing many packed
// plaintexts must keep totals under MaxSlotValue per slot.
func UnpackValues(packed *big.Int, count int) []int64 {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), SlotBits), one)
	out := make([]int64, count)
	for i := 0; i < count; i++ {
		slot := new(big.Int).And(new(big.Int).Rsh(packed, uint(i*SlotBits)), mask)
		out[i] = slot.Int64()
	}
	return out
}
