// Package models defines the rental domain: movies, rentals and customers.
//
// # Ownership
//
// Movies are created once per title and shared by pointer between all of
// their rentals. A Movie holds the price scheme of its category; many movies
// may share one scheme value. Rentals are small immutable values appended to
// exactly one Customer.
//
// # Pricing
//
// Nothing in this package knows about movie categories. A Rental asks its
// Movie, and the Movie asks its calculator.PriceScheme. Adding a category
// means adding a PriceScheme implementation; no code here changes.
//
// # Statements
//
// Customer.Statement and Customer.MarkupStatement both go through
// statement.Render and differ only in the statement.Format they pass.
package models
