package history

import "github.com/rxbryan/galoy/internal/wallet"

// Memo returns the memo that may be disclosed for a transaction, or nil.
// The payer-supplied memo wins over the invoice memo. Disclosure is
// unconditional for onboarding-reward memos and for zero-credit entries;
// otherwise the credited amount must meet the per-currency threshold.
// Below threshold the memo is suppressed entirely, never truncated or
// replaced: small spam transfers must not leak payer-supplied free text.
func Memo(cfg MemoConfig, memoFromPayer, lnMemo *string, credit int64, currency wallet.Currency) *string {
	memo := firstNonEmpty(memoFromPayer, lnMemo)

	if shouldShareMemo(cfg, memo, credit, currency) {
		return memo
	}

	return nil
}

func shouldShareMemo(cfg MemoConfig, memo *string, credit int64, currency wallet.Currency) bool {
	if isOnboardingMemo(cfg, memo) || credit == 0 {
		return true
	}

	if currency == wallet.CurrencyBtc {
		return credit >= cfg.SharingSatsThreshold
	}

	return credit >= cfg.SharingCentsThreshold
}

func isOnboardingMemo(cfg MemoConfig, memo *string) bool {
	if memo == nil {
		return false
	}
	_, ok := cfg.OnboardingRewards[*memo]
	return ok
}

func firstNonEmpty(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			return v
		}
	}
	return nil
}
