package feed

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads collections straight from the spreadsheet with the
// Google Sheets API. Each collection is a sheet whose first row holds the
// column headers. Access is read-only with an API key; the spreadsheet must
// be link-visible.
type SheetsSource struct {
	spreadsheetId string
	service       *sheets.Service
}

func NewSheetsSource(ctx context.Context, spreadsheetId string, apiKey string) (*SheetsSource, error) {
	service, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &SheetsSource{
		spreadsheetId: spreadsheetId,
		service:       service,
	}, nil
}

func (s *SheetsSource) Fetch(ctx context.Context, collection Collection) ([]Row, error) {
	resp, err := s.service.Spreadsheets.Values.
		Get(s.spreadsheetId, string(collection)).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		log.Errorf("Failed to read sheet %s: %v", collection, err)
		return nil, err
	}

	if len(resp.Values) < 2 {
		// Header only or empty sheet.
		return []Row{}, nil
	}

	headers := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		headers = append(headers, fmt.Sprintf("%v", cell))
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, cells := range resp.Values[1:] {
		row := make(Row, len(headers))
		for i, cell := range cells {
			if i >= len(headers) || cell == nil {
				continue
			}
			switch v := cell.(type) {
			case string:
				row[headers[i]] = v
			case bool:
				if v {
					row[headers[i]] = "true"
				} else {
					row[headers[i]] = "false"
				}
			case float64:
				row[headers[i]] = formatNumber(v)
			default:
				row[headers[i]] = fmt.Sprintf("%v", v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
