package wallet

import "github.com/rxbryan/galoy/pkg/money"

// OnChainDepositFee computes the deposit fee charged on an incoming on-chain
// transfer, in the same base unit as amount. The fee is amount * ratio rounded
// half away from zero.
func OnChainDepositFee(amount int64, ratio float64) int64 {
	return money.ApplyRatio(amount, ratio)
}
