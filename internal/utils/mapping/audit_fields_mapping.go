package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

// ToDomainMoney converts a NUMERIC(18,2) column value. Such values always fit
// the minor-unit range, so extra digits are rounded away rather than reported.
func ToDomainMoney(d decimal.Decimal) domain.Money {
	m, err := domain.NewMoneyFromDecimal(d.Round(domain.MinorUnitExponent))
	if err != nil {
		return domain.Zero
	}
	return m
}
