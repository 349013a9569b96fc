package calculator

import (
	"testing"
)

func TestSchemeCharge(t *testing.T) {
	tests := []struct {
		name   string
		scheme PriceScheme
		days   int
		want   string
	}{
		{name: "regular one day", scheme: Regular{}, days: 1, want: "2"},
		{name: "regular two days stays flat", scheme: Regular{}, days: 2, want: "2"},
		{name: "regular three days", scheme: Regular{}, days: 3, want: "3.5"},
		{name: "regular four days", scheme: Regular{}, days: 4, want: "5.0"},
		{name: "regular zero days", scheme: Regular{}, days: 0, want: "2"},
		{name: "regular negative days", scheme: Regular{}, days: -4, want: "2"},
		{name: "new release one day", scheme: NewRelease{}, days: 1, want: "3"},
		{name: "new release two days", scheme: NewRelease{}, days: 2, want: "6"},
		{name: "new release three days", scheme: NewRelease{}, days: 3, want: "9"},
		{name: "new release zero days", scheme: NewRelease{}, days: 0, want: "0"},
		{name: "new release negative days", scheme: NewRelease{}, days: -1, want: "-3"},
		{name: "children one day", scheme: Children{}, days: 1, want: "1.5"},
		{name: "children three days stays flat", scheme: Children{}, days: 3, want: "1.5"},
		{name: "children four days", scheme: Children{}, days: 4, want: "3.0"},
		{name: "children six days", scheme: Children{}, days: 6, want: "6.0"},
		{name: "children negative days", scheme: Children{}, days: -2, want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.scheme.Charge(tt.days).String()
			if got != tt.want {
				t.Errorf("Charge(%d) = %q, want %q", tt.days, got, tt.want)
			}
		})
	}
}

func TestSchemeChargeFormulas(t *testing.T) {
	// Numeric check against the closed-form tiers over a range of durations.
	for days := -3; days <= 30; days++ {
		regular := 2.0
		if days > 2 {
			regular += float64(days-2) * 1.5
		}
		children := 1.5
		if days > 3 {
			children += float64(days-3) * 1.5
		}

		if got := RegularPrice.Charge(days).Float64(); got != regular {
			t.Errorf("Regular.Charge(%d) = %v, want %v", days, got, regular)
		}
		if got := NewReleasePrice.Charge(days).Float64(); got != float64(days)*3.0 {
			t.Errorf("NewRelease.Charge(%d) = %v, want %v", days, got, float64(days)*3.0)
		}
		if got := ChildrensPrice.Charge(days).Float64(); got != children {
			t.Errorf("Children.Charge(%d) = %v, want %v", days, got, children)
		}
	}
}

func TestSchemePoints(t *testing.T) {
	tests := []struct {
		name   string
		scheme PriceScheme
		days   int
		want   int
	}{
		{name: "regular", scheme: Regular{}, days: 5, want: 1},
		{name: "children", scheme: Children{}, days: 5, want: 1},
		{name: "new release one day", scheme: NewRelease{}, days: 1, want: 1},
		{name: "new release two days earns bonus", scheme: NewRelease{}, days: 2, want: 2},
		{name: "new release long rental", scheme: NewRelease{}, days: 10, want: 2},
		{name: "new release zero days", scheme: NewRelease{}, days: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scheme.Points(tt.days); got != tt.want {
				t.Errorf("Points(%d) = %d, want %d", tt.days, got, tt.want)
			}
		})
	}
}

func TestSchemesArePure(t *testing.T) {
	for _, s := range []PriceScheme{RegularPrice, NewReleasePrice, ChildrensPrice} {
		first, second := s.Charge(7), s.Charge(7)
		if first.String() != second.String() || s.Points(7) != s.Points(7) {
			t.Errorf("%T is not deterministic", s)
		}
	}
}
