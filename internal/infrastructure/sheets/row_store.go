// Package sheets stores the ledger in a Google Sheets worksheet.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-logr/logr"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"slotbot/internal/ports/output"
)

var _ output.RowStore = (*RowStore)(nil)

const (
	valueInputRaw   = "RAW"
	insertRows      = "INSERT_ROWS"
	defaultMaxTries = 4
)

type Config struct {
	SpreadsheetID string
	SheetName     string
	// CredentialsJSON is a service-account key. Nil leaves authentication to
	// the client options passed to New.
	CredentialsJSON []byte
	// Width is the number of columns rewritten by ReplaceAll.
	Width    int
	MaxTries uint
}

// RowStore implements output.RowStore on one worksheet. Reads and
// idempotent writes are retried on rate limiting and server errors; Append
// is not, a retried append could duplicate the row.
type RowStore struct {
	values *gsheets.SpreadsheetsValuesService
	cfg    Config
	logger logr.Logger
}

func New(ctx context.Context, cfg Config, logger logr.Logger, opts ...option.ClientOption) (*RowStore, error) {
	if cfg.SpreadsheetID == "" || cfg.SheetName == "" {
		return nil, errors.New("sheets: spreadsheet id and sheet name are required")
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = defaultMaxTries
	}
	if cfg.CredentialsJSON != nil {
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	}
	opts = append(opts, option.WithScopes(gsheets.SpreadsheetsScope))
	srv, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	return &RowStore{
		values: srv.Spreadsheets.Values,
		cfg:    cfg,
		logger: logger.WithName("sheets"),
	}, nil
}

func (r *RowStore) ReadAll(ctx context.Context) ([][]string, error) {
	resp, err := retry(ctx, r, "read", func() (*gsheets.ValueRange, error) {
		return r.values.Get(r.cfg.SpreadsheetID, sheetRange(r.cfg.SheetName, "")).Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("sheets: read %q: %w", r.cfg.SheetName, err)
	}
	return fromValues(resp.Values), nil
}

func (r *RowStore) Append(ctx context.Context, row []string) error {
	_, err := r.values.Append(r.cfg.SpreadsheetID, sheetRange(r.cfg.SheetName, "A1"), &gsheets.ValueRange{
		Values: toValues([][]string{row}, 0),
	}).ValueInputOption(valueInputRaw).InsertDataOption(insertRows).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: append: %w", err)
	}
	return nil
}

func (r *RowStore) UpdateField(ctx context.Context, rowIndex, fieldIndex int, value string) error {
	if rowIndex < 0 || fieldIndex < 0 {
		return fmt.Errorf("sheets: update (%d,%d): negative index", rowIndex, fieldIndex)
	}
	cell := sheetRange(r.cfg.SheetName, cellRef(rowIndex, fieldIndex))
	_, err := retry(ctx, r, "update", func() (*gsheets.UpdateValuesResponse, error) {
		return r.values.Update(r.cfg.SpreadsheetID, cell, &gsheets.ValueRange{
			Values: [][]any{{value}},
		}).ValueInputOption(valueInputRaw).Context(ctx).Do()
	})
	if err != nil {
		return fmt.Errorf("sheets: update %s: %w", cell, err)
	}
	return nil
}

// ReplaceAll rewrites the sheet in a single update from A1. Rows the old
// table had below the new content are sent blank in the same request, so a
// failed call leaves the table as it was.
func (r *RowStore) ReplaceAll(ctx context.Context, rows [][]string) error {
	current, err := r.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("sheets: rewrite: %w", err)
	}
	width := r.cfg.Width
	for _, row := range current {
		width = max(width, len(row))
	}
	padded := make([][]string, max(len(rows), len(current)))
	copy(padded, rows)

	_, err = retry(ctx, r, "replace", func() (*gsheets.UpdateValuesResponse, error) {
		return r.values.Update(r.cfg.SpreadsheetID, sheetRange(r.cfg.SheetName, "A1"), &gsheets.ValueRange{
			Values: toValues(padded, width),
		}).ValueInputOption(valueInputRaw).Context(ctx).Do()
	})
	if err != nil {
		return fmt.Errorf("sheets: rewrite: %w", err)
	}
	return nil
}

func retry[T any](ctx context.Context, r *RowStore, op string, call func() (T, error)) (T, error) {
	return backoff.Retry(ctx, func() (T, error) {
		res, err := call()
		if err != nil && !isTransient(err) {
			return res, backoff.Permanent(err)
		}
		return res, err
	},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(r.cfg.MaxTries),
		backoff.WithNotify(func(err error, wait time.Duration) {
			r.logger.Info("⚠️ Google Sheets indisponible, nouvel essai", "op", op, "wait", wait, "error", err.Error())
		}),
	)
}

// isTransient reports rate limiting and server-side failures.
func isTransient(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == 429 || gerr.Code >= 500
}
