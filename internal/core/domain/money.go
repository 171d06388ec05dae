package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of fractional digits carried by Money.
const MinorUnitExponent = 2

var minorUnitsPerUnit = decimal.New(1, MinorUnitExponent)

// MaxMinorUnits bounds the magnitude of any Money value. The range is symmetric
// so Neg and Abs never overflow.
const MaxMinorUnits = math.MaxInt64

// Money is a signed amount held as an integer number of minor units (cents).
// The zero value is 0.00. Values are immutable; arithmetic returns new values.
type Money struct {
	minor int64
}

// Zero is 0.00.
var Zero = Money{}

// NewMoneyFromMinor creates Money from a count of minor units. minor must lie within ±MaxMinorUnits.
func NewMoneyFromMinor(minor int64) Money {
	return Money{minor: minor}
}

// NewMoneyFromInt creates Money from a whole number of currency units.
func NewMoneyFromInt(units int64) Money {
	return Money{minor: units * 100}
}

// NewMoneyFromDecimal converts a decimal amount to Money. Amounts with more than
// two fractional digits or outside the int64 minor-unit range are rejected.
func NewMoneyFromDecimal(d decimal.Decimal) (Money, error) {
	scaled := d.Mul(minorUnitsPerUnit)
	if !scaled.IsInteger() {
		return Zero, fmt.Errorf("%w: %s has more than %d fractional digits", apperrors.ErrInvalidAmount, d.String(), MinorUnitExponent)
	}
	bi := scaled.BigInt()
	if !bi.IsInt64() || bi.Int64() < -MaxMinorUnits {
		return Zero, fmt.Errorf("%w: %s is out of range", apperrors.ErrInvalidAmount, d.String())
	}
	return Money{minor: bi.Int64()}, nil
}

// NewMoneyFromString parses a decimal string such as "250", "250.5" or "-20.00".
func NewMoneyFromString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty value", apperrors.ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q is not a decimal number", apperrors.ErrInvalidAmount, s)
	}
	return NewMoneyFromDecimal(d)
}

// MustMoney is like NewMoneyFromString but panics on error. Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 { return m.minor }

// Decimal returns the amount as a decimal in currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.minor, -MinorUnitExponent)
}

// Add returns m + o, failing when the sum leaves the minor-unit range.
func (m Money) Add(o Money) (Money, error) {
	if (o.minor > 0 && m.minor > MaxMinorUnits-o.minor) || (o.minor < 0 && m.minor < -MaxMinorUnits-o.minor) {
		return Zero, fmt.Errorf("%w: %s + %s overflows", apperrors.ErrInvalidAmount, m, o)
	}
	return Money{minor: m.minor + o.minor}, nil
}

// Sub returns m - o, failing when the difference leaves the minor-unit range.
func (m Money) Sub(o Money) (Money, error) {
	if (o.minor < 0 && m.minor > MaxMinorUnits+o.minor) || (o.minor > 0 && m.minor < -MaxMinorUnits+o.minor) {
		return Zero, fmt.Errorf("%w: %s - %s overflows", apperrors.ErrInvalidAmount, m, o)
	}
	return Money{minor: m.minor - o.minor}, nil
}

// Neg returns -m.
func (m Money) Neg() Money { return Money{minor: -m.minor} }

// Abs returns |m|.
func (m Money) Abs() Money {
	if m.minor < 0 {
		return m.Neg()
	}
	return m
}

// MulInt returns m * q exactly, failing when the product overflows the minor-unit range.
func (m Money) MulInt(q int64) (Money, error) {
	if m.minor == 0 || q == 0 {
		return Zero, nil
	}
	product := m.minor * q
	if product/q != m.minor || product == math.MinInt64 || (m.minor == -1 && q == math.MinInt64) || (q == -1 && m.minor == math.MinInt64) {
		return Zero, fmt.Errorf("%w: %s x %d overflows", apperrors.ErrInvalidAmount, m.String(), q)
	}
	return Money{minor: product}, nil
}

// MulRate returns m * rate rounded to the nearest minor unit, halves rounded up
// (away from zero for negative amounts).
func (m Money) MulRate(rate decimal.Decimal) (Money, error) {
	product := decimal.NewFromInt(m.minor).Mul(rate).Round(0)
	bi := product.BigInt()
	if !bi.IsInt64() || bi.Int64() < -MaxMinorUnits {
		return Zero, fmt.Errorf("%w: %s x %s overflows", apperrors.ErrInvalidAmount, m, rate)
	}
	return Money{minor: bi.Int64()}, nil
}

// Cmp compares m and o, returning -1, 0 or +1.
func (m Money) Cmp(o Money) int {
	switch {
	case m.minor < o.minor:
		return -1
	case m.minor > o.minor:
		return 1
	default:
		return 0
	}
}

// Equal reports whether m and o hold the same number of minor units.
func (m Money) Equal(o Money) bool { return m.minor == o.minor }

// LessThan reports whether m < o.
func (m Money) LessThan(o Money) bool { return m.minor < o.minor }

// LessThanOrEqual reports whether m <= o.
func (m Money) LessThanOrEqual(o Money) bool { return m.minor <= o.minor }

// IsZero reports whether m is 0.00.
func (m Money) IsZero() bool { return m.minor == 0 }

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool { return m.minor < 0 }

// String formats the amount with exactly two fractional digits, e.g. "1234.50".
func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitExponent)
}

// MarshalJSON encodes Money as a quoted fixed-point string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON string ("12.50") or a JSON number (12.5).
// Numbers are parsed from their literal text, never through float64.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Zero
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidAmount, err)
		}
	}
	parsed, err := NewMoneyFromString(text)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
