package wallet

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// LamportsPerSOL 1 SOL = 1,000,000,000 lamports
const LamportsPerSOL = 1_000_000_000

const solDecimals = 9

// LamportsToSOL converts lamports to SOL without float rounding.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -solDecimals)
}

// TokenAmount renders raw token amount with given mint decimals.
func TokenAmount(amount uint64, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals))
}
