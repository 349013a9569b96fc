package models

import (
	"github.com/mmynk/videostore/internal/calculator"
	"github.com/mmynk/videostore/internal/statement"
)

// Customer holds the rentals of one customer for a billing cycle.
//
// A Customer is not safe for concurrent use.
type Customer struct {
	name    string
	rentals []Rental
}

// NewCustomer creates a customer with no rentals.
func NewCustomer(name string) *Customer {
	return &Customer{name: name}
}

// Name returns the customer name.
func (c *Customer) Name() string {
	return c.name
}

// AddRental appends a rental. Rentals are listed on statements in the order
// they were added.
func (c *Customer) AddRental(r Rental) {
	c.rentals = append(c.rentals, r)
}

// Rentals returns a copy of the customer's rentals in insertion order.
func (c *Customer) Rentals() []Rental {
	out := make([]Rental, len(c.rentals))
	copy(out, c.rentals)
	return out
}

// Totals returns the combined charge and points of all rentals.
func (c *Customer) Totals() calculator.Totals {
	return calculator.Total(c.rentals)
}

// TotalCharge returns the sum of all rental charges, unrounded.
func (c *Customer) TotalCharge() calculator.Amount {
	return c.Totals().Charge
}

// TotalPoints returns the sum of all frequent renter points.
func (c *Customer) TotalPoints() int {
	return c.Totals().Points
}

// Statement renders the plain text statement.
func (c *Customer) Statement() string {
	return statement.Render(c.name, c.rentals, statement.Plain)
}

// MarkupStatement renders the HTML statement.
func (c *Customer) MarkupStatement() string {
	return statement.Render(c.name, c.rentals, statement.Markup)
}
