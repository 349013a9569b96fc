package models

import "github.com/mmynk/videostore/internal/calculator"

// Rental is one movie rented for a number of days.
//
// The rental only knows its Movie, never the price scheme behind it, so it
// works unchanged for any movie category.
type Rental struct {
	movie      *Movie
	daysRented int
}

// NewRental creates a rental. daysRented is not validated.
func NewRental(movie *Movie, daysRented int) Rental {
	return Rental{movie: movie, daysRented: daysRented}
}

// Movie returns the rented movie.
func (r Rental) Movie() *Movie {
	return r.movie
}

// DaysRented returns the rental duration in days.
func (r Rental) DaysRented() int {
	return r.daysRented
}

// Title returns the title of the rented movie.
func (r Rental) Title() string {
	return r.movie.Title()
}

// Charge returns what the rental costs. It is computed on every call.
func (r Rental) Charge() calculator.Amount {
	return r.movie.Charge(r.daysRented)
}

// Points returns the frequent renter points the rental earns.
func (r Rental) Points() int {
	return r.movie.Points(r.daysRented)
}
