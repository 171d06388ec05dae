package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OvertimeHoursPerDay is the divisor that turns a base salary into the hourly
// rate paid for overtime: overtime pay = hours x base / 8.
const OvertimeHoursPerDay = 8

// PayrollTotals are the derived amounts of a payroll receipt.
type PayrollTotals struct {
	Gross Money `json:"gross"`
	Net   Money `json:"net"`
}

// PayrollReceipt is a payroll receipt draft together with the values derived from it.
type PayrollReceipt struct {
	ID            string          `json:"id,omitempty"`
	Folio         string          `json:"folio,omitempty"`
	Date          time.Time       `json:"date"`
	EmployeeID    int64           `json:"employeeID"`
	PeriodStart   time.Time       `json:"periodStart"`
	PeriodEnd     time.Time       `json:"periodEnd"`
	BaseSalary    Money           `json:"baseSalary"`
	OvertimeHours decimal.Decimal `json:"overtimeHours"`
	Bonus         Money           `json:"bonus"`
	Deductions    Money           `json:"deductions"`
	Totals        PayrollTotals   `json:"totals"`
	Entry         JournalEntry    `json:"entry"`
	AuditFields
}
