package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollReceipt is a row of payroll_receipts.
type PayrollReceipt struct {
	ReceiptID     string          `json:"receiptID" db:"receipt_id"`
	Folio         string          `json:"folio" db:"folio"`
	ReceiptDate   time.Time       `json:"receiptDate" db:"receipt_date"`
	EmployeeID    int64           `json:"employeeID" db:"employee_id"`
	PeriodStart   time.Time       `json:"periodStart" db:"period_start"`
	PeriodEnd     time.Time       `json:"periodEnd" db:"period_end"`
	BaseSalary    decimal.Decimal `json:"baseSalary" db:"base_salary"`
	OvertimeHours decimal.Decimal `json:"overtimeHours" db:"overtime_hours"`
	Bonus         decimal.Decimal `json:"bonus" db:"bonus"`
	Deductions    decimal.Decimal `json:"deductions" db:"deductions"`
	Gross         decimal.Decimal `json:"gross" db:"gross"`
	Net           decimal.Decimal `json:"net" db:"net"`
	EntryID       string          `json:"entryID" db:"entry_id"`
	AuditFields
}
