// Package source contains the per-source adapters that translate World
// Bank, IMF and Data Commons responses into the canonical table.
//
// All adapters share one failure policy: transport failures, error
// statuses and undecodable bodies are absorbed locally, reported through
// the notifier, and answered with an empty correctly-shaped table. Nothing
// is raised across the fetch boundary and no retries are performed.
package source

import (
	"bytes"
	"encoding/json"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"fairdex/domain/core"
)

// Doer abstracts the HTTP client so tests can inject a transport.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

func getJSON(ctx context.Context, doer Doer, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.NewTransportError(url, err)
	}
	return decodeResponse(doer, req, out)
}

func postJSON(ctx context.Context, doer Doer, url string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return core.NewTransportError(url, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return core.NewTransportError(url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return decodeResponse(doer, req, out)
}

func decodeResponse(doer Doer, req *http.Request, out interface{}) error {
	resp, err := doer.Do(req)
	if err != nil {
		return core.NewTransportError(req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return core.NewStatusError(req.URL.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.NewTransportError(req.URL.Host, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return core.NewDecodeError(req.URL.Host, err)
	}
	return nil
}

// sentinels are the IMF DataMapper placeholders for missing observations.
var sentinels = map[string]bool{
	"--":  true,
	"NA":  true,
	"n/a": true,
	"":    true,
}

// parseValue coerces a raw JSON value into a float64. Strings may use a
// decimal comma; sentinel and unparsable values report ok=false and are
// skipped per data point.
func parseValue(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(v)
		if sentinels[s] {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// parseYear coerces a raw year into an int, tolerating string years and
// date strings with a leading calendar year ("2020", "2020-06").
func parseYear(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		s := strings.TrimSpace(v)
		if len(s) > 4 {
			s = s[:4]
		}
		y, err := strconv.Atoi(s)
		return y, err == nil
	default:
		return 0, false
	}
}
