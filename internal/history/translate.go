package history

import (
	"github.com/shopspring/decimal"

	"github.com/rxbryan/galoy/internal/ledger"
	"github.com/rxbryan/galoy/internal/wallet"
	"github.com/rxbryan/galoy/pkg/money"
)

// TranslateLedgerTransactions maps confirmed ledger entries to wallet
// transactions, preserving input order.
func TranslateLedgerTransactions(cfg MemoConfig, txns []*ledger.Transaction) []*WalletTransaction {
	result := make([]*WalletTransaction, 0, len(txns))
	for _, txn := range txns {
		result = append(result, TranslateLedgerTransaction(cfg, txn))
	}
	return result
}

// TranslateLedgerTransaction maps one confirmed ledger entry to exactly one
// wallet transaction. It is total: every input, including entries of unknown
// type, produces an output.
func TranslateLedgerTransaction(cfg MemoConfig, txn *ledger.Transaction) *WalletTransaction {
	isAdmin := txn.Type.IsAdmin()

	var displayAmount, displayFee, satsFee, centsFee int64
	if isAdmin {
		displayAmount, displayFee, satsFee, centsFee = legacyAdminAmounts(txn)
	} else {
		displayAmount = txn.DisplayAmount
		displayFee = txn.DisplayFee
		satsFee = txn.SatsFee
		centsFee = txn.CentsFee
	}

	settlementAmount := txn.Credit - txn.Debit

	settlementFee := centsFee
	if txn.Currency == wallet.CurrencyBtc {
		settlementFee = satsFee
	}

	// DisplayAmount is pre-fee. The total display-side cost of a send includes
	// the fee; receives and admin rows are the amount alone.
	isSend := settlementAmount < 0
	displayTotal := displayAmount
	if isSend && !isAdmin {
		displayTotal += displayFee
	}

	status := TxStatusSuccess
	if txn.PendingConfirmation {
		status = TxStatusPending
	}

	walletTxn := &WalletTransaction{
		ID:                 txn.ID.String(),
		WalletID:           txn.WalletID,
		SettlementAmount:   settlementAmount,
		SettlementFee:      settlementFee,
		SettlementCurrency: txn.Currency,
		DisplayCurrencyPerSettlementCurrencyUnit: displayCurrencyPerBaseUnit(displayTotal, settlementAmount),
		Status:    status,
		Memo:      Memo(cfg, txn.MemoFromPayer, txn.LnMemo, txn.Credit, txn.Currency),
		CreatedAt: txn.Timestamp,
	}

	// An internal transfer carrying a payment hash settled a Lightning
	// invoice instantly; reclassify before dispatch.
	txType := txn.Type
	if txType == ledger.TypeIntraLedger && txn.PaymentHash != nil {
		txType = ledger.TypeLnIntraLedger
	}

	switch txType {
	case ledger.TypeIntraLedger, ledger.TypeWalletIdTradeIntraAccount:
		walletTxn.InitiationVia = InitiatedViaIntraLedger{
			CounterPartyWalletID: txn.RecipientWalletID,
			CounterPartyUsername: txn.Username,
		}
		walletTxn.SettlementVia = SettledViaIntraLedger{
			CounterPartyWalletID: txn.RecipientWalletID,
			CounterPartyUsername: txn.Username,
		}

	case ledger.TypeOnchainIntraLedger, ledger.TypeOnChainTradeIntraAccount:
		walletTxn.InitiationVia = InitiatedViaOnChain{
			Address: addressOrDefault(txn.Address),
		}
		walletTxn.SettlementVia = SettledViaIntraLedger{
			CounterPartyWalletID: txn.RecipientWalletID,
			CounterPartyUsername: firstNonEmpty(txn.Username),
		}

	case ledger.TypeOnchainPayment, ledger.TypeOnchainReceipt:
		walletTxn.InitiationVia = InitiatedViaOnChain{
			Address: addressOrDefault(txn.Address),
		}
		walletTxn.SettlementVia = SettledViaOnChain{
			TransactionHash: stringOrEmpty(txn.TxHash),
		}

	case ledger.TypeLnIntraLedger, ledger.TypeLnTradeIntraAccount:
		walletTxn.InitiationVia = InitiatedViaLightning{
			PaymentHash: txn.PaymentHash,
			Pubkey:      txn.Pubkey,
		}
		walletTxn.SettlementVia = SettledViaIntraLedger{
			CounterPartyWalletID: txn.RecipientWalletID,
			CounterPartyUsername: firstNonEmpty(txn.Username),
		}

	case ledger.TypePayment, ledger.TypeInvoice:
		walletTxn.InitiationVia = InitiatedViaLightning{
			PaymentHash: txn.PaymentHash,
			Pubkey:      txn.Pubkey,
		}
		// RevealedPreImage is resolved by a batched lookup downstream
		walletTxn.SettlementVia = SettledViaLightning{}

	default:
		// Unrecognized types degrade to a plain internal transfer. The raw
		// username on the initiation side matches historical API output; do
		// not normalize it like the sibling branches.
		walletTxn.InitiationVia = InitiatedViaIntraLedger{
			CounterPartyWalletID: txn.RecipientWalletID,
			CounterPartyUsername: txn.Username,
		}
		walletTxn.SettlementVia = SettledViaIntraLedger{
			CounterPartyWalletID: txn.RecipientWalletID,
			CounterPartyUsername: firstNonEmpty(txn.Username),
		}
	}

	return walletTxn
}

// legacyAdminAmounts sources amounts from the usd/fee_usd/fee columns of
// administratively-created rows. Bridges records written before the per-unit
// fee fields existed; delete once upstream data is migrated.
func legacyAdminAmounts(txn *ledger.Transaction) (displayAmount, displayFee, satsFee, centsFee int64) {
	if txn.Usd != nil {
		displayAmount = money.MajorToMinor(*txn.Usd)
	}
	if txn.FeeUsd != nil {
		displayFee = money.MajorToMinor(*txn.FeeUsd)
	}
	if txn.Fee != nil {
		satsFee = *txn.Fee
	}
	centsFee = displayFee
	return displayAmount, displayFee, satsFee, centsFee
}

// displayCurrencyPerBaseUnit infers the exchange rate at transaction time
// from the stored display snapshot: the minor-unit display total converted to
// major units (2 decimal places) over the absolute settlement amount. Defined
// as 0 when the settlement amount is 0.
func displayCurrencyPerBaseUnit(displayTotalMinor, settlementAmount int64) float64 {
	if settlementAmount == 0 {
		return 0
	}

	major := money.MinorToMajor(displayTotalMinor)
	return major.Div(decimal.NewFromInt(settlementAmount)).Abs().InexactFloat64()
}

func addressOrDefault(address *string) string {
	if address == nil || *address == "" {
		return NoAddress
	}
	return *address
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
