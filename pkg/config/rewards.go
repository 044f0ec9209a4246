package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Reward is one onboarding reward definition. Transactions whose memo matches
// the ID are system-generated rewards and their memos are always shared.
type Reward struct {
	ID     string `yaml:"id"`
	Amount int64  `yaml:"amount"`
}

// RewardsConfig holds the onboarding reward definitions
type RewardsConfig struct {
	Rewards []Reward `yaml:"rewards"`
}

// defaultRewards are the built-in onboarding rewards, used when no override
// file is configured.
var defaultRewards = []Reward{
	{ID: "walletDownloaded", Amount: 1},
	{ID: "walletActivated", Amount: 1},
	{ID: "whatIsBitcoin", Amount: 1},
	{ID: "sat", Amount: 2},
	{ID: "whereBitcoinExist", Amount: 5},
	{ID: "whoControlsBitcoin", Amount: 5},
	{ID: "copyBitcoin", Amount: 5},
	{ID: "moneyImportantGovernement", Amount: 10},
	{ID: "moneyIsImportant", Amount: 10},
	{ID: "whyStonesShellGold", Amount: 10},
	{ID: "moneyEvolution", Amount: 10},
	{ID: "coincidenceOfWants", Amount: 10},
	{ID: "moneySocialAgreement", Amount: 10},
	{ID: "WhatIsFiat", Amount: 10},
	{ID: "whyCareAboutFiatMoney", Amount: 10},
	{ID: "GovernementCanPrintMoney", Amount: 10},
	{ID: "FiatLosesValueOverTime", Amount: 10},
	{ID: "OtherIssues", Amount: 10},
	{ID: "LimitedSupply", Amount: 20},
	{ID: "Decentralized", Amount: 20},
	{ID: "NoCounterfeitMoney", Amount: 20},
	{ID: "HighlyDivisible", Amount: 20},
	{ID: "securePartOne", Amount: 20},
	{ID: "securePartTwo", Amount: 20},
}

// LoadRewardsConfig loads the onboarding rewards. When path is empty the
// built-in defaults are returned.
func LoadRewardsConfig(path string) (*RewardsConfig, error) {
	if path == "" {
		return &RewardsConfig{Rewards: defaultRewards}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rewards config: %w", err)
	}

	var cfg RewardsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rewards config: %w", err)
	}

	if len(cfg.Rewards) == 0 {
		return nil, fmt.Errorf("rewards config %s defines no rewards", path)
	}

	for _, r := range cfg.Rewards {
		if r.ID == "" {
			return nil, fmt.Errorf("rewards config %s contains a reward without an id", path)
		}
		if r.Amount <= 0 {
			return nil, fmt.Errorf("reward %s has non-positive amount %d", r.ID, r.Amount)
		}
	}

	return &cfg, nil
}

// AmountsByID returns the rewards as a memo-to-amount lookup map
func (c *RewardsConfig) AmountsByID() map[string]int64 {
	out := make(map[string]int64, len(c.Rewards))
	for _, r := range c.Rewards {
		out[r.ID] = r.Amount
	}
	return out
}
