// internal/models/money.go
package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

const moneyScale = 2

// Money is a fixed-point amount with two fraction digits. It is persisted and
// serialized as a string ("299.00") and never passes through float64.
type Money struct {
	decimal.Decimal
}

func NewMoney(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", value, err)
	}
	if d.Exponent() < -moneyScale && !d.Equal(d.Round(moneyScale)) {
		return Money{}, fmt.Errorf("money amount %q has more than %d fraction digits", value, moneyScale)
	}
	return Money{Decimal: d.Round(moneyScale)}, nil
}

func MustMoney(value string) Money {
	m, err := NewMoney(value)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string {
	return m.Decimal.StringFixed(moneyScale)
}

// Times returns the amount multiplied by an integer quantity.
func (m Money) Times(quantity int) Money {
	return Money{Decimal: m.Decimal.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

func (m Money) Add(other Money) Money {
	return Money{Decimal: m.Decimal.Add(other.Decimal)}
}

func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

func (m *Money) Scan(value interface{}) error {
	if value == nil {
		m.Decimal = decimal.Zero
		return nil
	}
	if err := m.Decimal.Scan(value); err != nil {
		return fmt.Errorf("scan money: %w", err)
	}
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Decimal = d.Round(moneyScale)
	return nil
}
