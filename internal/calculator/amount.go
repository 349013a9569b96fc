package calculator

import (
	"github.com/shopspring/decimal"
)

// Amount is a rental charge.
//
// Besides the decimal value it remembers whether any fractional operand took
// part in producing it. Statements print integral amounts as plain integers
// ("9") and fractional ones with at least one decimal digit ("3.0", "3.5"),
// so two amounts with the same value may render differently.
type Amount struct {
	value      decimal.Decimal
	fractional bool
}

// Int returns an integral amount.
func Int(n int) Amount {
	return Amount{value: decimal.NewFromInt(int64(n))}
}

// Frac returns a fractional amount, e.g. Frac(1.5).
func Frac(f float64) Amount {
	return Amount{value: decimal.NewFromFloat(f), fractional: true}
}

// Add returns a + b. The result is fractional if either operand is.
func (a Amount) Add(b Amount) Amount {
	return Amount{
		value:      a.value.Add(b.value),
		fractional: a.fractional || b.fractional,
	}
}

// Mul returns a * b. The result is fractional if either operand is.
func (a Amount) Mul(b Amount) Amount {
	return Amount{
		value:      a.value.Mul(b.value),
		fractional: a.fractional || b.fractional,
	}
}

// Decimal returns the exact value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Fractional reports whether the amount renders with a decimal point.
func (a Amount) Fractional() bool {
	return a.fractional
}

// Float64 returns the nearest float64 value.
func (a Amount) Float64() float64 {
	return a.value.InexactFloat64()
}

// Equal compares values only; provenance is ignored.
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value)
}

// String renders the amount as it appears on a statement.
func (a Amount) String() string {
	if !a.fractional {
		return a.value.String()
	}
	if a.value.IsInteger() {
		return a.value.StringFixed(1)
	}
	return a.value.String()
}
