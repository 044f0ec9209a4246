package history

import (
	"sort"

	"github.com/google/uuid"

	"github.com/rxbryan/galoy/internal/onchain"
	"github.com/rxbryan/galoy/internal/wallet"
)

// PendingIncomingArgs carries one consistent snapshot of the data needed to
// synthesize pending deposits: observed unconfirmed transfers, each wallet's
// known receiving addresses and metadata, and the current display price.
type PendingIncomingArgs struct {
	PendingIncoming         []*onchain.IncomingTx
	AddressesByWalletID     map[uuid.UUID][]string
	WalletDetailsByWalletID map[uuid.UUID]*wallet.Wallet
	DisplayCurrencyPerSat   float64
}

// FilterPendingIncoming matches unconfirmed transaction outputs against each
// wallet's known addresses and synthesizes one pending wallet transaction per
// (output, matching wallet) pair. An address shared across wallets yields one
// entry per wallet, each fee-adjusted by that wallet's own deposit ratio.
// Valuation uses the supplied spot price: there is no stored snapshot yet for
// an unsettled transfer.
func FilterPendingIncoming(args PendingIncomingArgs) []*WalletTransaction {
	walletIDs := make([]uuid.UUID, 0, len(args.AddressesByWalletID))
	for walletID := range args.AddressesByWalletID {
		walletIDs = append(walletIDs, walletID)
	}
	// Stable output order across map iterations
	sort.Slice(walletIDs, func(i, j int) bool {
		return walletIDs[i].String() < walletIDs[j].String()
	})

	walletTxns := []*WalletTransaction{}
	for _, tx := range args.PendingIncoming {
		for _, out := range tx.Outs {
			if out.Address == "" {
				continue
			}
			for _, walletID := range walletIDs {
				if !containsAddress(args.AddressesByWalletID[walletID], out.Address) {
					continue
				}
				details, ok := args.WalletDetailsByWalletID[walletID]
				if !ok {
					continue
				}

				fee := wallet.OnChainDepositFee(out.Sats, details.DepositFeeRatio)
				walletTxns = append(walletTxns, &WalletTransaction{
					ID:                 tx.TxHash,
					WalletID:           walletID,
					SettlementAmount:   out.Sats - fee,
					SettlementFee:      fee,
					SettlementCurrency: details.Currency,
					DisplayCurrencyPerSettlementCurrencyUnit: args.DisplayCurrencyPerSat,
					Status:    TxStatusPending,
					Memo:      nil, // pending on-chain deposits carry no memo
					CreatedAt: tx.CreatedAt,
					InitiationVia: InitiatedViaOnChain{
						Address: out.Address,
					},
					SettlementVia: SettledViaOnChain{
						TransactionHash: tx.TxHash,
					},
				})
			}
		}
	}
	return walletTxns
}

func containsAddress(addresses []string, address string) bool {
	for _, a := range addresses {
		if a == address {
			return true
		}
	}
	return false
}
