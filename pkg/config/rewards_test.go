package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRewardsConfig_Defaults(t *testing.T) {
	cfg, err := LoadRewardsConfig("")
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Rewards)

	amounts := cfg.AmountsByID()
	assert.Equal(t, int64(1), amounts["walletDownloaded"])
	assert.Equal(t, int64(5), amounts["whereBitcoinExist"])
}

func TestLoadRewardsConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.yaml")
	content := `rewards:
  - id: walletDownloaded
    amount: 10
  - id: firstPayment
    amount: 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadRewardsConfig(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"walletDownloaded": 10,
		"firstPayment":     100,
	}, cfg.AmountsByID())
}

func TestLoadRewardsConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty rewards", "rewards: []\n"},
		{"missing id", "rewards:\n  - amount: 10\n"},
		{"non-positive amount", "rewards:\n  - id: x\n    amount: 0\n"},
		{"bad yaml", "rewards: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rewards.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadRewardsConfig(path)
			assert.Error(t, err)
		})
	}
}
