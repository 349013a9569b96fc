package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/videostore/internal/calculator"
	"github.com/mmynk/videostore/internal/metrics"
	"github.com/mmynk/videostore/internal/models"
	"github.com/mmynk/videostore/internal/statement"
	"github.com/mmynk/videostore/internal/storage"
)

// Result is the outcome of one statement run.
type Result struct {
	Customer string

	// Statements holds the rendered text keyed by format name, e.g. "plain".
	Statements map[string]string

	AmountOwed calculator.Amount
	Points     int
}

// StatementService turns a rental sheet into customer statements.
type StatementService struct {
	source  storage.Source
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewStatementService creates a StatementService reading from source.
// recorder may be nil to skip metrics.
func NewStatementService(source storage.Source, recorder *metrics.Recorder, logger *slog.Logger) *StatementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatementService{source: source, metrics: recorder, logger: logger}
}

// Produce loads the sheet and renders it in each requested format.
// Formats are statement format names ("plain", "markup"); with none given the
// plain statement is rendered.
func (s *StatementService) Produce(ctx context.Context, formats ...string) (*Result, error) {
	if len(formats) == 0 {
		formats = []string{statement.Plain.Name}
	}
	// Reject bad formats before doing any work.
	resolved := make([]statement.Format, 0, len(formats))
	for _, name := range formats {
		f, ok := statement.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unsupported statement format %q", name)
		}
		resolved = append(resolved, f)
	}

	sheet, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rental sheet: %w", err)
	}

	customer, err := s.buildCustomer(sheet)
	if err != nil {
		return nil, err
	}

	totals := customer.Totals()
	result := &Result{
		Customer:   customer.Name(),
		Statements: make(map[string]string, len(resolved)),
		AmountOwed: totals.Charge,
		Points:     totals.Points,
	}
	for _, f := range resolved {
		result.Statements[f.Name] = statement.Render(customer.Name(), customer.Rentals(), f)
		if s.metrics != nil {
			s.metrics.ObserveStatement(f.Name)
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveTotals(totals)
	}

	s.logger.Info("Statement rendered",
		"customer", customer.Name(),
		"rentals", len(sheet.Rentals),
		"amount_owed", totals.Charge.String(),
		"points", totals.Points,
		"formats", formats,
	)
	return result, nil
}

// buildCustomer creates one shared Movie per sheet movie and appends the
// rentals in sheet order.
func (s *StatementService) buildCustomer(sheet *storage.Sheet) (*models.Customer, error) {
	movies := make(map[string]*models.Movie, len(sheet.Movies))
	for _, entry := range sheet.Movies {
		if _, dup := movies[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate movie id %q", entry.ID)
		}
		scheme, err := schemeFor(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("movie %q: %w", entry.ID, err)
		}
		movies[entry.ID] = models.NewMovie(entry.Title, scheme)
	}

	customer := models.NewCustomer(sheet.Customer)
	for i, entry := range sheet.Rentals {
		movieEntry, err := sheet.Movie(entry.Movie)
		if err != nil {
			return nil, fmt.Errorf("rental %d: %w", i, err)
		}
		if entry.Days <= 0 {
			s.logger.Warn("Rental has a non-positive duration",
				"customer", sheet.Customer,
				"movie", entry.Movie,
				"days", entry.Days,
			)
		}
		customer.AddRental(models.NewRental(movies[movieEntry.ID], entry.Days))
		if s.metrics != nil {
			s.metrics.ObserveRental(movieEntry.Category)
		}
	}
	return customer, nil
}
