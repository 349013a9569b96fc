// Package calculator holds the pricing rules for movie rentals and the
// arithmetic used to total them.
package calculator

// PriceScheme computes the charge and frequent renter points for renting a
// movie of one category for a number of days.
//
// Implementations must be pure. Day counts are not validated: zero and
// negative values go through the same formulas as any other.
type PriceScheme interface {
	Charge(days int) Amount
	Points(days int) int
}

// Shared scheme instances. Schemes are stateless, so one value may back any
// number of movies.
var (
	RegularPrice    PriceScheme = Regular{}
	NewReleasePrice PriceScheme = NewRelease{}
	ChildrensPrice  PriceScheme = Children{}
)

// Compile-time interface checks.
var (
	_ PriceScheme = Regular{}
	_ PriceScheme = NewRelease{}
	_ PriceScheme = Children{}
)

// Regular prices a regular movie: 2 for the first two days, 1.5 for each
// day after that.
type Regular struct{}

// Charge returns 2, plus 1.5 per day beyond the second.
func (Regular) Charge(days int) Amount {
	amount := Int(2)
	if days > 2 {
		amount = amount.Add(Int(days - 2).Mul(Frac(1.5)))
	}
	return amount
}

// Points always awards one point.
func (Regular) Points(int) int {
	return 1
}

// NewRelease prices a new release at 3 per day.
type NewRelease struct{}

// Charge returns days * 3.
func (NewRelease) Charge(days int) Amount {
	return Int(days).Mul(Int(3))
}

// Points awards a bonus point for rentals longer than one day.
func (NewRelease) Points(days int) int {
	if days > 1 {
		return 2
	}
	return 1
}

// Children prices a children's movie: 1.5 for the first three days, 1.5 for
// each day after that.
type Children struct{}

// Charge returns 1.5, plus 1.5 per day beyond the third.
func (Children) Charge(days int) Amount {
	amount := Frac(1.5)
	if days > 3 {
		amount = amount.Add(Int(days - 3).Mul(Frac(1.5)))
	}
	return amount
}

// Points always awards one point.
func (Children) Points(int) int {
	return 1
}
