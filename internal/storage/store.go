// Package storage describes where rental sheets come from.
//
// A rental sheet is the input of one statement run: the customer name, the
// movies rented with their category, and the rentals in order. Sheets are
// read-only; nothing is ever written back.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownMovie is returned when a rental references a movie id that the
// sheet does not define.
var ErrUnknownMovie = errors.New("unknown movie")

// Source loads a rental sheet.
// This abstraction allows reading sheets from files, stdin or fixtures
// without changing the service layer.
type Source interface {
	// Load returns the sheet, validated.
	Load(ctx context.Context) (*Sheet, error)
}

// Sheet is one customer's rentals for a billing cycle.
type Sheet struct {
	// Customer is the name printed on the statement. Any string is accepted.
	Customer string `yaml:"customer"`

	// Movies lists each rented title once, with its price category.
	Movies []MovieEntry `yaml:"movies" validate:"dive"`

	// Rentals are listed on the statement in this order.
	Rentals []RentalEntry `yaml:"rentals" validate:"dive"`
}

// MovieEntry pairs a title with its price category.
type MovieEntry struct {
	// ID is the key rentals use to reference the movie.
	ID string `yaml:"id" validate:"required"`

	// Title is printed as-is on the statement, even when empty.
	Title string `yaml:"title"`

	// Category selects the price scheme (regular, new_release, childrens).
	Category string `yaml:"category" validate:"required"`
}

// RentalEntry is one rental of a movie for a number of days.
type RentalEntry struct {
	// Movie is the ID of a MovieEntry.
	Movie string `yaml:"movie" validate:"required"`

	// Days is the rental duration. It is not range checked.
	Days int `yaml:"days"`
}

// Movie returns the movie entry with the given id.
func (s *Sheet) Movie(id string) (MovieEntry, error) {
	for _, m := range s.Movies {
		if m.ID == id {
			return m, nil
		}
	}
	return MovieEntry{}, fmt.Errorf("%w: %q", ErrUnknownMovie, id)
}
