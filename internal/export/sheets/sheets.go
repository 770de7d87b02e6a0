// Package sheets appends monthly report rows to a Google spreadsheet.
// The export is optional; the worker only constructs a client when the
// spreadsheet configuration is present.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"finmate/internal/derive"
)

type Options struct {
	SpreadsheetID string
	SheetName     string

	// OAuth client credentials, inline JSON or a file path.
	ClientJSON string
	ClientFile string

	// Previously obtained OAuth token, inline JSON or a file path.
	TokenJSON string
	TokenFile string
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.SpreadsheetID == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if opts.SheetName == "" {
		return nil, errors.New("missing sheet name")
	}

	clientJSON, err := readInlineOrFile(opts.ClientJSON, opts.ClientFile)
	if err != nil {
		return nil, fmt.Errorf("oauth client credentials: %w", err)
	}
	tokenJSON, err := readInlineOrFile(opts.TokenJSON, opts.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("oauth token: %w", err)
	}

	conf, err := google.ConfigFromJSON(clientJSON, gsheet.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse oauth client credentials: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(tokenJSON, &token); err != nil {
		return nil, fmt.Errorf("parse oauth token: %w", err)
	}

	svc, err := gsheet.NewService(ctx, goption.WithHTTPClient(conf.Client(ctx, &token)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: opts.SpreadsheetID,
		sheetName:     opts.SheetName,
	}, nil
}

func readInlineOrFile(inline, path string) ([]byte, error) {
	if inline = strings.TrimSpace(inline); inline != "" {
		return []byte(inline), nil
	}
	if path = strings.TrimSpace(path); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return data, nil
	}
	return nil, errors.New("no credentials provided")
}

// AppendMonthlySummary appends one row per export run: the month, the
// headline totals as plain decimals, and the highest-spend category.
func (c *Client) AppendMonthlySummary(ctx context.Context, month time.Time, sum derive.MonthlySummary) error {
	topCategory := "N/A"
	if len(sum.TopCategories) > 0 {
		topCategory = sum.TopCategories[0].Name
	}

	row := []any{
		month.Format("2006-01"),
		sum.TotalIncome.Units(),
		sum.TotalExpenses.Units(),
		sum.GoalContributions.Units(),
		sum.TotalSavings.Units(),
		topCategory,
	}

	rng := fmt.Sprintf("%s!A:F", c.sheetName)
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, &gsheet.ValueRange{Values: [][]any{row}}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to sheet %s: %w", c.sheetName, err)
	}
	return nil
}
