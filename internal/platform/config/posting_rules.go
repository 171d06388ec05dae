package config

import (
	"fmt"
	"os"

	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"gopkg.in/yaml.v3"
)

// LoadPostingRules reads account names from a YAML file such as:
//
//	sales: "Ventas"
//	vat_payable: "IVA Trasladado"
//	bank: "Bancos"
//
// Accounts the file leaves out keep their default names.
func LoadPostingRules(path string) (accounting.PostingRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return accounting.PostingRules{}, fmt.Errorf("failed to read posting rules file: %w", err)
	}

	var rules accounting.PostingRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return accounting.PostingRules{}, fmt.Errorf("failed to parse posting rules file: %w", err)
	}
	return rules.WithDefaults(), nil
}
