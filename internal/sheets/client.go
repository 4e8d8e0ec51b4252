// Package sheets provides a client for fetching worksheet data from a remote
// spreadsheet source as CSV, plus parsing of the raw table into typed
// holding records.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// Client fetches worksheets from a remote spreadsheet source over HTTP.
// It wraps an HTTP client and knows how to translate a (sheet URL,
// worksheet identifier) pair into a CSV export request.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new spreadsheet client with default HTTP settings.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// googleSheetID extracts the spreadsheet ID from a Google Sheets URL
// (the segment after /d/).
var googleSheetID = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// csvURL builds the CSV export URL for a worksheet.
//
// Google Sheets URLs are rewritten to the gviz CSV export endpoint with the
// worksheet name as the sheet parameter. Any other URL is assumed to serve
// CSV directly and gets the worksheet appended as a sheet query parameter.
func csvURL(sheetURL, worksheet string) (string, error) {
	if m := googleSheetID.FindStringSubmatch(sheetURL); m != nil {
		return fmt.Sprintf(
			"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
			m[1],
			url.QueryEscape(worksheet),
		), nil
	}

	u, err := url.Parse(sheetURL)
	if err != nil {
		return "", fmt.Errorf("invalid sheet URL: %w", err)
	}
	if worksheet != "" {
		q := u.Query()
		q.Set("sheet", worksheet)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// FetchWorksheet fetches one worksheet as CSV and returns it as a raw Table.
// The first CSV record becomes the header row; remaining records become data
// rows, padded or truncated to the header width so downstream column lookups
// stay in bounds.
func (c *Client) FetchWorksheet(ctx context.Context, sheetURL, worksheet string) (Table, error) {
	target, err := csvURL(sheetURL, worksheet)
	if err != nil {
		return Table{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Table{}, err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Table{}, fmt.Errorf("failed to fetch worksheet %q: %w", worksheet, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Table{}, fmt.Errorf("worksheet %q fetch returned status %d", worksheet, resp.StatusCode)
	}

	table, err := parseCSV(resp.Body)
	if err != nil {
		return Table{}, fmt.Errorf("failed to parse worksheet %q: %w", worksheet, err)
	}

	table.SheetURL = sheetURL
	table.Worksheet = worksheet
	table.FetchedAt = time.Now().UTC()
	return table, nil
}

// parseCSV reads CSV data into a Table. Rows with fewer fields than the
// header are padded with empty strings; extra fields are dropped.
func parseCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("worksheet is empty")
	}

	headers := records[0]
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]string, len(headers))
		copy(row, record)
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}, nil
}
