package calculator

// Priced is anything that carries a charge and a points award, typically a
// rental.
type Priced interface {
	Charge() Amount
	Points() int
}

// Totals aggregates charges and points across several priced items.
type Totals struct {
	Charge Amount
	Points int
}

// Plus returns t with p's charge and points added.
func (t Totals) Plus(p Priced) Totals {
	return Totals{
		Charge: t.Charge.Add(p.Charge()),
		Points: t.Points + p.Points(),
	}
}

// Total folds items into their combined charge and points, in slice order.
// An empty slice totals to an integral zero.
func Total[T Priced](items []T) Totals {
	return Fold(items, Totals{Charge: Int(0)}, Totals.Plus)
}

// Fold reduces items left to right starting from init.
func Fold[T Priced, A any](items []T, init A, step func(A, Priced) A) A {
	acc := init
	for _, item := range items {
		acc = step(acc, item)
	}
	return acc
}
