package service

import (
	"errors"
	"fmt"

	"github.com/mmynk/videostore/internal/calculator"
)

// ErrUnknownCategory is returned when a sheet names a category with no price
// scheme.
var ErrUnknownCategory = errors.New("unknown movie category")

// Categories maps sheet category names to their shared price schemes.
// Supporting a new category means implementing calculator.PriceScheme and
// adding it here.
var Categories = map[string]calculator.PriceScheme{
	"regular":     calculator.RegularPrice,
	"new_release": calculator.NewReleasePrice,
	"childrens":   calculator.ChildrensPrice,
}

// schemeFor resolves a category name.
func schemeFor(category string) (calculator.PriceScheme, error) {
	scheme, ok := Categories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return scheme, nil
}
