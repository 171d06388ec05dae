package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "0.15", cfg.TaxRate.String())
	assert.Equal(t, "0.01", cfg.BalanceTolerance.String())
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, DriverREST, cfg.BackendDriver)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.Equal(t, accounting.DefaultPostingRules(), cfg.PostingRules)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "8080", cfg.Port)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"TAX_RATE":             "0.16",
		"BALANCE_TOLERANCE":    "0",
		"BACKEND_DRIVER":       "BOLT",
		"BOLT_PATH":            "/tmp/ledger.db",
		"BACKEND_TIMEOUT":      "not-a-duration",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
	}))
	require.NoError(t, err)

	assert.Equal(t, "0.16", cfg.TaxRate.String())
	assert.True(t, cfg.BalanceTolerance.IsZero())
	assert.Equal(t, DriverBolt, cfg.BackendDriver)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := map[string]map[string]any{
		"negative tax":       {"TAX_RATE": "-0.1"},
		"bad tolerance":      {"BALANCE_TOLERANCE": "0.001"},
		"unknown driver":     {"BACKEND_DRIVER": "mongo"},
		"pgsql without url":  {"BACKEND_DRIVER": "pgsql", "PGSQL_URL": ""},
		"short jwt secret":   {"JWT_SECRET": "short"},
		"non numeric port":   {"PORT": "http"},
		"rest with bad url":  {"BACKEND_URL": "::not a url"},
		"missing rules file": {"POSTING_RULES_FILE": "/does/not/exist.yaml"},
	}
	for name, overrides := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := fromViper(newTestViper(overrides))
			assert.Error(t, err)
		})
	}
}

func TestLoadPostingRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sales: Ventas\nvat_payable: IVA Trasladado\nbank: Bancos\n"), 0o600))

	rules, err := LoadPostingRules(path)
	require.NoError(t, err)
	assert.Equal(t, "Ventas", rules.Sales)
	assert.Equal(t, "IVA Trasladado", rules.VATPayable)
	assert.Equal(t, "Bancos", rules.Bank)
	assert.Equal(t, accounting.DefaultPostingRules().AccountsPayable, rules.AccountsPayable)

	cfg, err := fromViper(newTestViper(map[string]any{"POSTING_RULES_FILE": path}))
	require.NoError(t, err)
	assert.Equal(t, rules, cfg.PostingRules)
}

func TestLoadPostingRules_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sales: [unterminated"), 0o600))

	_, err := LoadPostingRules(path)
	assert.ErrorContains(t, err, "failed to parse posting rules file")
}
