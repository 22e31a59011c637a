package settlement

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToAtomic converts a decimal unit amount into base units of a token with the
// given decimals, rounding half away from zero.
func ToAtomic(amount string, decimals uint8) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %s: %w", amount, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("negative amount %s", amount)
	}

	return d.Shift(int32(decimals)).Round(0).BigInt(), nil
}

// FromAtomic converts base units back into a decimal unit amount.
func FromAtomic(amount *big.Int, decimals uint8) string {
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// SplitFee converts amount and the flat fee into base units and returns the
// amount left after the fee. Amounts that do not exceed the fee are rejected.
func SplitFee(amount string, fee decimal.Decimal, decimals uint8) (total *big.Int, feeAtomic *big.Int, net *big.Int, err error) {
	total, err = ToAtomic(amount, decimals)
	if err != nil {
		return nil, nil, nil, err
	}

	feeAtomic = fee.Shift(int32(decimals)).Round(0).BigInt()
	if total.Cmp(feeAtomic) <= 0 {
		return nil, nil, nil, fmt.Errorf("amount %s does not cover the %s fee", amount, fee.String())
	}

	return total, feeAtomic, new(big.Int).Sub(total, feeAtomic), nil
}
