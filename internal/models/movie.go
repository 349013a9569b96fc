package models

import "github.com/mmynk/videostore/internal/calculator"

// Movie is a title paired with the price scheme of its category.
// Movies are immutable and are shared by every rental of the title.
type Movie struct {
	title  string
	scheme calculator.PriceScheme
}

// NewMovie creates a movie. The title is stored as given.
func NewMovie(title string, scheme calculator.PriceScheme) *Movie {
	return &Movie{title: title, scheme: scheme}
}

// Title returns the movie title.
func (m *Movie) Title() string {
	return m.title
}

// Scheme returns the price scheme the movie was created with.
func (m *Movie) Scheme() calculator.PriceScheme {
	return m.scheme
}

// Charge returns the charge for renting the movie for days.
func (m *Movie) Charge(days int) calculator.Amount {
	return m.scheme.Charge(days)
}

// Points returns the frequent renter points for renting the movie for days.
func (m *Movie) Points(days int) int {
	return m.scheme.Points(days)
}
