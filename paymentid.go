// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

var (
	paymentIDLimit = new(big.Int).Lsh(big.NewInt(1), 256)
	shortIDLimit   = new(big.Int).Lsh(big.NewInt(1), 64)
)

// PaymentID is a short (8-byte) or long (32-byte) payment identifier. The
// class is a function of the value alone: anything below 2^64 is short.
// Rendering is always left-zero-padded to the canonical width — 16 hex
// characters for short IDs, 64 for long ones — and that string form is what
// crosses the wallet-RPC boundary.
type PaymentID struct {
	value *big.Int
}

// ParsePaymentID builds a PaymentID from up to 64 hex characters.
func ParsePaymentID(s string) (PaymentID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || len(s) > 64 {
		return PaymentID{}, fmt.Errorf("%w: hex must be 1 to 64 characters", ErrInvalidPaymentID)
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok || v.Sign() < 0 {
		return PaymentID{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidPaymentID, s)
	}
	return PaymentID{value: v}, nil
}

// PaymentIDFromUint64 wraps an integer value as a short payment ID.
func PaymentIDFromUint64(v uint64) PaymentID {
	return PaymentID{value: new(big.Int).SetUint64(v)}
}

// PaymentIDFromInt wraps an arbitrary-precision value. Values outside
// [0, 2^256) are rejected.
func PaymentIDFromInt(v *big.Int) (PaymentID, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(paymentIDLimit) >= 0 {
		return PaymentID{}, fmt.Errorf("%w: value outside [0, 2^256)", ErrInvalidPaymentID)
	}
	return PaymentID{value: new(big.Int).Set(v)}, nil
}

// NewRandomPaymentID returns a uniformly random short payment ID.
func NewRandomPaymentID() (PaymentID, error) {
	v, err := rand.Int(rand.Reader, shortIDLimit)
	if err != nil {
		return PaymentID{}, fmt.Errorf("could not gather randomness: %w", err)
	}
	return PaymentID{value: v}, nil
}

func (p PaymentID) int() *big.Int {
	if p.value == nil {
		return new(big.Int)
	}
	return p.value
}

// IsShort reports whether the value fits in 64 bits.
func (p PaymentID) IsShort() bool { return p.int().Cmp(shortIDLimit) < 0 }

// String renders the canonical zero-padded hex form.
func (p PaymentID) String() string {
	if p.IsShort() {
		return fmt.Sprintf("%016x", p.int())
	}
	return fmt.Sprintf("%064x", p.int())
}

// Equal compares the underlying values; the class follows from the value, so
// no separate comparison is needed.
func (p PaymentID) Equal(o PaymentID) bool { return p.int().Cmp(o.int()) == 0 }
