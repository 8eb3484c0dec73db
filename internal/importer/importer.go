// Package importer loads company data from a JSON file, a field/value CSV
// file or a JSON HTTP endpoint.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"proprofile/internal/domain"
)

// Options tune a single import.
type Options struct {
	// DataPath is a dot-separated path to the company object inside a JSON
	// document, e.g. "data.company". Ignored for CSV.
	DataPath string
	Client   *http.Client
}

// IsRemote reports whether location is fetched over HTTP rather than read
// from disk.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load reads company data from location. Unknown JSON fields are ignored
// and missing ones stay empty.
func Load(ctx context.Context, location string, opts Options) (domain.CompanyData, error) {
	switch {
	case location == "":
		return domain.CompanyData{}, fmt.Errorf("location is required")
	case IsRemote(location):
		data, err := fetch(ctx, location, opts.Client)
		if err != nil {
			return domain.CompanyData{}, err
		}
		return decodeJSON(data, opts.DataPath)
	case strings.EqualFold(filepath.Ext(location), ".csv"):
		f, err := os.Open(location)
		if err != nil {
			return domain.CompanyData{}, fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		data, err := os.ReadFile(location)
		if err != nil {
			return domain.CompanyData{}, fmt.Errorf("read file: %w", err)
		}
		return decodeJSON(data, opts.DataPath)
	}
}

func fetch(ctx context.Context, url string, client *http.Client) ([]byte, error) {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

func decodeJSON(data []byte, dataPath string) (domain.CompanyData, error) {
	var c domain.CompanyData
	if dataPath != "" {
		var raw any
		if err := json.Unmarshal(data, &raw); err != nil {
			return c, fmt.Errorf("parse json: %w", err)
		}
		for _, part := range strings.Split(dataPath, ".") {
			m, ok := raw.(map[string]any)
			if !ok {
				return c, fmt.Errorf("invalid data path: %q not found", part)
			}
			if raw, ok = m[part]; !ok {
				return c, fmt.Errorf("invalid data path: %q not found", part)
			}
		}
		var err error
		if data, err = json.Marshal(raw); err != nil {
			return c, err
		}
	}
	if err := Validate(data); err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse company json: %w", err)
	}
	return c, nil
}
