package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"
)

// AppsScriptSource fetches collections from a Google Apps Script web app
// deployment. The script answers GET <url>?sheet=<name> with
// {"data": [...], "error": "..."} where data is an array of flat objects.
type AppsScriptSource struct {
	scriptURL string
	client    *http.Client
}

func NewAppsScriptSource(scriptURL string) *AppsScriptSource {
	return &AppsScriptSource{
		scriptURL: scriptURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *AppsScriptSource) Fetch(ctx context.Context, collection Collection) ([]Row, error) {
	reqURL := fmt.Sprintf("%s?sheet=%s", s.scriptURL, url.QueryEscape(string(collection)))
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		log.Errorf("Failed to create request: %v", err)
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Errorf("Failed to execute request: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("feed returned non-OK status %d for sheet %s", resp.StatusCode, collection)
		log.Error(err)
		return nil, err
	}

	var response struct {
		Data  []map[string]any `json:"data"`
		Error string           `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Errorf("Failed to decode response: %v", err)
		return nil, err
	}
	if response.Error != "" {
		return nil, fmt.Errorf("feed error for sheet %s: %s", collection, response.Error)
	}

	rows := make([]Row, 0, len(response.Data))
	for _, raw := range response.Data {
		rows = append(rows, coerceRow(raw))
	}
	return rows, nil
}

// coerceRow flattens the script's loosely typed JSON values into strings.
// The sheet backend emits booleans and numbers for some columns depending on
// cell formatting; everything downstream works on strings.
func coerceRow(raw map[string]any) Row {
	row := make(Row, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			row[key] = v
		case bool:
			if v {
				row[key] = "true"
			} else {
				row[key] = "false"
			}
		case float64:
			row[key] = formatNumber(v)
		case nil:
			// leave absent
		default:
			row[key] = fmt.Sprintf("%v", v)
		}
	}
	return row
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
