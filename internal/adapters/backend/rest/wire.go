package rest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Backend paths.
const (
	pathJournalEntries   = "/api/asientos-contables"
	pathJournalPeriods   = "/api/asientos-contables/periodos"
	pathSaleInvoices     = "/api/facturas-venta"
	pathPurchaseInvoices = "/api/facturas-compra"
	pathPayrollReceipts  = "/api/recibos-nomina"
	pathReceipts         = "/api/recibos"
	pathPayments         = "/api/pagos"
	pathCounts           = "/api/counts"
)

const wireDateLayout = "2006-01-02"

// The backend stores creation times without a zone.
const wireDateTimeLayout = "2006-01-02T15:04:05"

var journalStatusToWire = map[domain.JournalStatus]string{
	domain.Draft:     "Borrador",
	domain.Posted:    "Aplicado",
	domain.Cancelled: "Cancelado",
}

var invoiceStatusToWire = map[domain.InvoiceStatus]string{
	domain.InvoicePending:   "Pendiente",
	domain.InvoicePaid:      "Pagada",
	domain.InvoiceCancelled: "Cancelada",
}

var methodToWire = map[domain.PaymentMethod]string{
	domain.MethodCash:     "Efectivo",
	domain.MethodTransfer: "Transferencia",
	domain.MethodCheque:   "Cheque",
}

func journalStatusFromWire(s string) domain.JournalStatus {
	for k, v := range journalStatusToWire {
		if v == s {
			return k
		}
	}
	return domain.JournalStatus(s)
}

// amount renders Money as a JSON number without going through float64.
func amount(m domain.Money) json.Number {
	return json.Number(m.String())
}

type movementPayload struct {
	Cuenta   string      `json:"cuenta"`
	Debe     json.Number `json:"debe"`
	Haber    json.Number `json:"haber"`
	Concepto string      `json:"concepto,omitempty"`
}

type journalEntryPayload struct {
	Fecha       string            `json:"fecha"`
	Concepto    string            `json:"concepto"`
	Estado      string            `json:"estado"`
	Movimientos []movementPayload `json:"movimientos"`
}

func toJournalEntryPayload(e domain.JournalEntry) journalEntryPayload {
	movements := make([]movementPayload, len(e.Movements))
	for i, m := range e.Movements {
		movements[i] = movementPayload{Cuenta: m.Account, Debe: amount(m.Debit), Haber: amount(m.Credit), Concepto: m.Memo}
	}
	return journalEntryPayload{
		Fecha:       e.Date.Format(wireDateLayout),
		Concepto:    e.Memo,
		Estado:      journalStatusToWire[e.Status],
		Movimientos: movements,
	}
}

type invoiceLinePayload struct {
	ArticuloID     int64       `json:"articulo_id"`
	Cantidad       json.Number `json:"cantidad"`
	PrecioUnitario json.Number `json:"precio_unitario"`
}

type invoicePayload struct {
	Fecha       string               `json:"fecha"`
	ClienteID   int64                `json:"cliente_id,omitempty"`
	ProveedorID int64                `json:"proveedor_id,omitempty"`
	Detalles    []invoiceLinePayload `json:"detalles"`
	Estado      string               `json:"estado"`
}

func toInvoicePayload(inv domain.Invoice) invoicePayload {
	lines := make([]invoiceLinePayload, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = invoiceLinePayload{
			ArticuloID:     l.ArticleID,
			Cantidad:       json.Number(l.Quantity.String()),
			PrecioUnitario: amount(l.UnitPrice),
		}
	}
	p := invoicePayload{
		Fecha:    inv.Date.Format(wireDateLayout),
		Detalles: lines,
		Estado:   invoiceStatusToWire[inv.Status],
	}
	if inv.Kind == domain.PurchaseInvoice {
		p.ProveedorID = inv.CounterpartyID
	} else {
		p.ClienteID = inv.CounterpartyID
	}
	return p
}

type payrollPayload struct {
	Fecha         string      `json:"fecha"`
	EmpleadoID    int64       `json:"empleado_id"`
	PeriodoInicio string      `json:"periodo_inicio"`
	PeriodoFin    string      `json:"periodo_fin"`
	SalarioBase   json.Number `json:"salario_base"`
	HorasExtra    json.Number `json:"horas_extra"`
	Bonos         json.Number `json:"bonos"`
	Deducciones   json.Number `json:"deducciones"`
}

func toPayrollPayload(r domain.PayrollReceipt) payrollPayload {
	return payrollPayload{
		Fecha:         r.Date.Format(wireDateLayout),
		EmpleadoID:    r.EmployeeID,
		PeriodoInicio: r.PeriodStart.Format(wireDateLayout),
		PeriodoFin:    r.PeriodEnd.Format(wireDateLayout),
		SalarioBase:   amount(r.BaseSalary),
		HorasExtra:    json.Number(r.OvertimeHours.String()),
		Bonos:         amount(r.Bonus),
		Deducciones:   amount(r.Deductions),
	}
}

type cashMovementPayload struct {
	Fecha            string      `json:"fecha"`
	ClienteID        int64       `json:"cliente_id,omitempty"`
	ProveedorID      int64       `json:"proveedor_id,omitempty"`
	FacturaVentaID   *int64      `json:"factura_venta_id,omitempty"`
	FacturaCompraID  *int64      `json:"factura_compra_id,omitempty"`
	CuentaBancariaID int64       `json:"cuenta_bancaria_id"`
	Monto            json.Number `json:"monto"`
	Concepto         string      `json:"concepto,omitempty"`
	MetodoPago       string      `json:"metodo_pago"`
}

func toCashMovementPayload(m domain.CashMovement) cashMovementPayload {
	p := cashMovementPayload{
		Fecha:            m.Date.Format(wireDateLayout),
		CuentaBancariaID: m.BankAccountID,
		Monto:            amount(m.Amount),
		Concepto:         m.Concept,
		MetodoPago:       methodToWire[m.Method],
	}
	if m.Kind == domain.SupplierPayment {
		p.ProveedorID = m.CounterpartyID
		p.FacturaCompraID = m.InvoiceID
	} else {
		p.ClienteID = m.CounterpartyID
		p.FacturaVentaID = m.InvoiceID
	}
	return p
}

// createdReply is the backend's answer to every accepted POST.
type createdReply struct {
	ID        json.Number `json:"id"`
	Folio     string      `json:"folio"`
	Message   string      `json:"message"`
	AsientoID json.Number `json:"asiento_id"`
}

func (r createdReply) toSubmission(kind domain.DocumentKind, at time.Time) domain.Submission {
	return domain.Submission{
		Kind:        kind,
		ID:          r.ID.String(),
		Folio:       r.Folio,
		JournalID:   r.AsientoID.String(),
		SubmittedAt: at,
	}
}

type errorReply struct {
	Error string `json:"error"`
}

type countsReply struct {
	FacturasVenta     int64 `json:"facturas_venta"`
	FacturasCompra    int64 `json:"facturas_compra"`
	Recibos           int64 `json:"recibos"`
	Pagos             int64 `json:"pagos"`
	RecibosNomina     int64 `json:"recibos_nomina"`
	AsientosContables int64 `json:"asientos_contables"`
}

func (r countsReply) toDomain() domain.Counts {
	return domain.Counts{
		JournalEntries:   r.AsientosContables,
		SaleInvoices:     r.FacturasVenta,
		PurchaseInvoices: r.FacturasCompra,
		PayrollReceipts:  r.RecibosNomina,
		Receipts:         r.Recibos,
		Payments:         r.Pagos,
	}
}

type movementReply struct {
	ID       json.Number `json:"id"`
	Cuenta   string      `json:"cuenta"`
	Debe     json.Number `json:"debe"`
	Haber    json.Number `json:"haber"`
	Concepto *string     `json:"concepto"`
}

type journalEntryReply struct {
	ID            json.Number     `json:"id"`
	Folio         string          `json:"folio"`
	Fecha         string          `json:"fecha"`
	Concepto      string          `json:"concepto"`
	TotalDebe     json.Number     `json:"total_debe"`
	TotalHaber    json.Number     `json:"total_haber"`
	Estado        string          `json:"estado"`
	FechaCreacion string          `json:"fecha_creacion"`
	Movimientos   []movementReply `json:"movimientos"`
}

// moneyFromWire reads an amount the backend serialised as a float, e.g. 0.30000000000000004.
func moneyFromWire(n json.Number) (domain.Money, error) {
	if n == "" {
		return domain.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return domain.Zero, fmt.Errorf("decode amount %q: %w", n, err)
	}
	return domain.NewMoneyFromDecimal(d.Round(domain.MinorUnitExponent))
}

func (r journalEntryReply) toDomain() (domain.JournalEntry, error) {
	date, err := time.Parse(wireDateLayout, r.Fecha)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("decode fecha of %s: %w", r.Folio, err)
	}
	var createdAt time.Time
	if r.FechaCreacion != "" {
		createdAt, err = time.Parse(wireDateTimeLayout, r.FechaCreacion)
		if err != nil {
			return domain.JournalEntry{}, fmt.Errorf("decode fecha_creacion of %s: %w", r.Folio, err)
		}
	}
	debit, err := moneyFromWire(r.TotalDebe)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	credit, err := moneyFromWire(r.TotalHaber)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	movements := make([]domain.Movement, len(r.Movimientos))
	for i, m := range r.Movimientos {
		d, err := moneyFromWire(m.Debe)
		if err != nil {
			return domain.JournalEntry{}, err
		}
		c, err := moneyFromWire(m.Haber)
		if err != nil {
			return domain.JournalEntry{}, err
		}
		movements[i] = domain.Movement{Account: m.Cuenta, Debit: d, Credit: c}
		if m.Concepto != nil {
			movements[i].Memo = *m.Concepto
		}
	}

	return domain.JournalEntry{
		ID:          r.ID.String(),
		Folio:       r.Folio,
		Date:        date,
		Memo:        r.Concepto,
		Status:      journalStatusFromWire(r.Estado),
		Movements:   movements,
		Totals:      domain.JournalTotals{TotalDebit: debit, TotalCredit: credit},
		AuditFields: domain.AuditFields{CreatedAt: createdAt},
	}, nil
}

type periodReply struct {
	Anio     int   `json:"anio"`
	Mes      int   `json:"mes"`
	Cantidad int64 `json:"cantidad"`
}
