package folio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// Folio prefixes per document kind.
const (
	PrefixJournalEntry    = "AC"
	PrefixSaleInvoice     = "FV"
	PrefixPurchaseInvoice = "FC"
	PrefixPayrollReceipt  = "RN"
	PrefixReceipt         = "RC"
	PrefixPayment         = "PG"
)

const dateLayout = "20060102"

// PrefixFor returns the folio prefix used for kind.
func PrefixFor(kind domain.DocumentKind) (string, error) {
	switch kind {
	case domain.KindJournalEntry:
		return PrefixJournalEntry, nil
	case domain.KindSaleInvoice:
		return PrefixSaleInvoice, nil
	case domain.KindPurchaseInvoice:
		return PrefixPurchaseInvoice, nil
	case domain.KindPayrollReceipt:
		return PrefixPayrollReceipt, nil
	case domain.KindReceipt:
		return PrefixReceipt, nil
	case domain.KindPayment:
		return PrefixPayment, nil
	}
	return "", fmt.Errorf("no folio prefix for document kind %q", kind)
}

// Format builds a folio such as FV20250314001. seq is the 1-based sequence of the
// document within its day and is padded to three digits.
func Format(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s%s%03d", prefix, date.Format(dateLayout), seq)
}

// DayPrefix returns the part of a folio shared by every document of a kind on date.
func DayPrefix(prefix string, date time.Time) string {
	return prefix + date.Format(dateLayout)
}

// Sequence extracts the sequence number from a folio built by Format.
func Sequence(prefix, folio string) (int, error) {
	rest, ok := strings.CutPrefix(folio, prefix)
	if !ok || len(rest) <= len(dateLayout) {
		return 0, fmt.Errorf("folio %q does not match prefix %q", folio, prefix)
	}
	seq, err := strconv.Atoi(rest[len(dateLayout):])
	if err != nil {
		return 0, fmt.Errorf("folio %q has an invalid sequence: %w", folio, err)
	}
	return seq, nil
}
