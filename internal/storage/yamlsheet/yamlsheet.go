// Package yamlsheet reads rental sheets from YAML documents.
package yamlsheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/videostore/internal/storage"
)

// StdinPath makes a Source read from standard input.
const StdinPath = "-"

// Ensure Source implements storage.Source
var _ storage.Source = (*Source)(nil)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Source reads a sheet from a YAML file.
type Source struct {
	path  string
	stdin io.Reader
}

// New creates a Source for the file at path, or for stdin when path is "-".
func New(path string) *Source {
	return &Source{path: path, stdin: os.Stdin}
}

// Load opens, decodes and validates the sheet.
func (s *Source) Load(ctx context.Context) (*storage.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.path == StdinPath {
		return Decode(s.stdin)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rental sheet: %w", err)
	}
	defer f.Close()

	sheet, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return sheet, nil
}

// Decode reads one YAML sheet from r. Unknown fields are rejected.
func Decode(r io.Reader) (*storage.Sheet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sheet storage.Sheet
	if err := dec.Decode(&sheet); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse rental sheet: empty document")
		}
		return nil, fmt.Errorf("failed to parse rental sheet: %w", err)
	}

	if err := validate.Struct(&sheet); err != nil {
		return nil, fmt.Errorf("invalid rental sheet: %w", describe(err))
	}
	return &sheet, nil
}

// describe flattens validator errors into one readable error.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Namespace(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
