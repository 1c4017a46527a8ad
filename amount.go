// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package uplexa

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// CoinDigits is the number of decimal digits between one coin and one atomic
// unit: 1 coin = 10^12 atomic units. Atomic units are the only representation
// that crosses the wallet-RPC boundary.
const CoinDigits = 12

var maxAtomic = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// ToAtomic converts a coin amount to atomic units. Anything past the 12th
// fractional digit is rounded half away from zero, not truncated and not
// rejected. Negative amounts and amounts that overflow 64 bits are errors.
func ToAtomic(amount decimal.Decimal) (uint64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: negative amount %s", ErrInvalidAmount, amount)
	}
	atomic := amount.Shift(CoinDigits).Round(0)
	if atomic.Cmp(maxAtomic) > 0 {
		return 0, fmt.Errorf("%w: %s overflows 64 bits of atomic units", ErrInvalidAmount, amount)
	}
	return atomic.BigInt().Uint64(), nil
}

// FromAtomic converts atomic units to a coin amount. The division by 10^12 is
// exact; no rounding happens here.
func FromAtomic(atomic uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(atomic), -CoinDigits)
}

// AsCoin normalizes an amount to the chain's 12-digit precision by rounding
// through atomic units.
func AsCoin(amount decimal.Decimal) (decimal.Decimal, error) {
	atomic, err := ToAtomic(amount)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return FromAtomic(atomic), nil
}
