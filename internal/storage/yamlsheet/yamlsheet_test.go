package yamlsheet

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/videostore/internal/storage"
)

func TestLoadFile(t *testing.T) {
	sheet, err := New("testdata/smith.yaml").Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Smith", sheet.Customer)
	require.Len(t, sheet.Movies, 3)
	assert.Equal(t, storage.MovieEntry{ID: "newton", Title: "Newton", Category: "new_release"}, sheet.Movies[1])

	require.Len(t, sheet.Rentals, 6)
	assert.Equal(t, storage.RentalEntry{Movie: "regent", Days: 2}, sheet.Rentals[0])
	assert.Equal(t, storage.RentalEntry{Movie: "chills", Days: 4}, sheet.Rentals[5])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml")).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("testdata/smith.yaml").Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadStdin(t *testing.T) {
	src := New(StdinPath)
	src.stdin = strings.NewReader("customer: Jones\nrentals: []\n")

	sheet, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jones", sheet.Customer)
	assert.Empty(t, sheet.Rentals)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "permissive values are accepted",
			doc: `
customer: ""
movies:
  - id: x
    title: ""
    category: regular
rentals:
  - movie: x
    days: -2
  - movie: x
    days: 0
`,
		},
		{
			name:    "empty document",
			doc:     "",
			wantErr: "empty document",
		},
		{
			name:    "malformed yaml",
			doc:     "customer: [",
			wantErr: "failed to parse rental sheet",
		},
		{
			name:    "unknown field",
			doc:     "customer: Smith\nstore: downtown\n",
			wantErr: "field store not found",
		},
		{
			name: "movie without id",
			doc: `
movies:
  - title: Regent
    category: regular
`,
			wantErr: "Sheet.Movies[0].ID is required",
		},
		{
			name: "movie without category",
			doc: `
movies:
  - id: regent
    title: Regent
`,
			wantErr: "Sheet.Movies[0].Category is required",
		},
		{
			name: "rental without movie",
			doc: `
rentals:
  - days: 2
`,
			wantErr: "Sheet.Rentals[0].Movie is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSheetMovie(t *testing.T) {
	sheet, err := Decode(strings.NewReader("movies:\n  - id: regent\n    title: Regent\n    category: regular\n"))
	require.NoError(t, err)

	m, err := sheet.Movie("regent")
	require.NoError(t, err)
	assert.Equal(t, "Regent", m.Title)

	_, err = sheet.Movie("newton")
	assert.ErrorIs(t, err, storage.ErrUnknownMovie)
}
