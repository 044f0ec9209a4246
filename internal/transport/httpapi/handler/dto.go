package handler

import (
	"time"

	"github.com/rxbryan/galoy/internal/history"
)

// WalletTransactionResponse is the JSON shape of one wallet transaction
type WalletTransactionResponse struct {
	ID                 string    `json:"id"`
	WalletID           string    `json:"wallet_id"`
	SettlementAmount   int64     `json:"settlement_amount"`
	SettlementFee      int64     `json:"settlement_fee"`
	SettlementCurrency string    `json:"settlement_currency"`
	SettlementRate     float64   `json:"display_currency_per_settlement_unit"`
	Status             string    `json:"status"`
	Memo               *string   `json:"memo,omitempty"`
	CreatedAt          time.Time `json:"created_at"`

	InitiationVia InitiationViaResponse `json:"initiation_via"`
	SettlementVia SettlementViaResponse `json:"settlement_via"`
}

// InitiationViaResponse flattens the initiation variants behind a type tag
type InitiationViaResponse struct {
	Type                 string  `json:"type"`
	Address              string  `json:"address,omitempty"`
	CounterPartyWalletID *string `json:"counterparty_wallet_id,omitempty"`
	CounterPartyUsername *string `json:"counterparty_username,omitempty"`
	PaymentHash          *string `json:"payment_hash,omitempty"`
	Pubkey               *string `json:"pubkey,omitempty"`
}

// SettlementViaResponse flattens the settlement variants behind a type tag
type SettlementViaResponse struct {
	Type                 string  `json:"type"`
	TransactionHash      string  `json:"transaction_hash,omitempty"`
	CounterPartyWalletID *string `json:"counterparty_wallet_id,omitempty"`
	CounterPartyUsername *string `json:"counterparty_username,omitempty"`
	RevealedPreImage     *string `json:"revealed_preimage,omitempty"`
}

// TransactionListResponse wraps the transaction collection
type TransactionListResponse struct {
	Transactions []WalletTransactionResponse `json:"transactions"`
	Count        int                         `json:"count"`
}

func toWalletTransactionResponse(txn *history.WalletTransaction) WalletTransactionResponse {
	return WalletTransactionResponse{
		ID:                 txn.ID,
		WalletID:           txn.WalletID.String(),
		SettlementAmount:   txn.SettlementAmount,
		SettlementFee:      txn.SettlementFee,
		SettlementCurrency: string(txn.SettlementCurrency),
		SettlementRate:     txn.DisplayCurrencyPerSettlementCurrencyUnit,
		Status:             string(txn.Status),
		Memo:               txn.Memo,
		CreatedAt:          txn.CreatedAt,
		InitiationVia:      toInitiationViaResponse(txn.InitiationVia),
		SettlementVia:      toSettlementViaResponse(txn.SettlementVia),
	}
}

func toInitiationViaResponse(via history.InitiationVia) InitiationViaResponse {
	switch v := via.(type) {
	case history.InitiatedViaOnChain:
		return InitiationViaResponse{
			Type:    "onchain",
			Address: v.Address,
		}
	case history.InitiatedViaIntraLedger:
		resp := InitiationViaResponse{
			Type:                 "intraledger",
			CounterPartyUsername: v.CounterPartyUsername,
		}
		if v.CounterPartyWalletID != nil {
			id := v.CounterPartyWalletID.String()
			resp.CounterPartyWalletID = &id
		}
		return resp
	case history.InitiatedViaLightning:
		return InitiationViaResponse{
			Type:        "lightning",
			PaymentHash: v.PaymentHash,
			Pubkey:      v.Pubkey,
		}
	default:
		return InitiationViaResponse{Type: "unknown"}
	}
}

func toSettlementViaResponse(via history.SettlementVia) SettlementViaResponse {
	switch v := via.(type) {
	case history.SettledViaOnChain:
		return SettlementViaResponse{
			Type:            "onchain",
			TransactionHash: v.TransactionHash,
		}
	case history.SettledViaIntraLedger:
		resp := SettlementViaResponse{
			Type:                 "intraledger",
			CounterPartyUsername: v.CounterPartyUsername,
		}
		if v.CounterPartyWalletID != nil {
			id := v.CounterPartyWalletID.String()
			resp.CounterPartyWalletID = &id
		}
		return resp
	case history.SettledViaLightning:
		return SettlementViaResponse{
			Type:             "lightning",
			RevealedPreImage: v.RevealedPreImage,
		}
	default:
		return SettlementViaResponse{Type: "unknown"}
	}
}

func toTransactionListResponse(txns []*history.WalletTransaction) TransactionListResponse {
	out := make([]WalletTransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, toWalletTransactionResponse(txn))
	}
	return TransactionListResponse{
		Transactions: out,
		Count:        len(out),
	}
}
