// Package registry is the HTTP client for the remote tribunal backend. All
// envelope detection and error shaping happens here, once, so callers only
// ever see decoded values and plain error strings.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// TokenFunc supplies the current bearer token, or "" when unauthenticated.
type TokenFunc func() string

// Client wraps HTTP access to the registry backend
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   TokenFunc
}

// NewClient creates a registry client for the given base URL. tokenFn may
// be nil for unauthenticated use.
func NewClient(baseURL string, tokenFn TokenFunc) *Client {
	if tokenFn == nil {
		tokenFn = func() string { return "" }
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		Token:   tokenFn,
	}
}

// do performs one request against the backend. A nil out skips decoding.
// Empty and 204 responses are an empty success, not an error; a success
// body that fails to parse is likewise treated as empty.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	zap.S().Debugw("registry call", "method", method, "path", path)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return shapeError(resp, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		zap.S().Warnw("could not parse registry response, treating as empty", "path", path, "error", err)
	}
	return nil
}

// shapeError builds one human-readable error out of the backend's three
// error conventions: {errors: []string}, {errors: {field: msgs}}, and
// {message|title}. Unparseable bodies fall back to the HTTP status.
func shapeError(resp *http.Response, raw []byte) error {
	generic := fmt.Errorf("erreur %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return generic
	}

	if errs, ok := payload["errors"]; ok {
		if msg := joinErrors(errs); msg != "" {
			return fmt.Errorf("erreur de validation:\n%s", msg)
		}
	}
	for _, key := range []string{"message", "title"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return fmt.Errorf("%s", s)
		}
	}
	return generic
}

func joinErrors(errs interface{}) string {
	switch v := errs.(type) {
	case []interface{}:
		var lines []string
		for _, e := range v {
			if s, ok := e.(string); ok {
				lines = append(lines, s)
			}
		}
		return strings.Join(lines, "\n")
	case map[string]interface{}:
		var lines []string
		for field, msgs := range v {
			switch m := msgs.(type) {
			case []interface{}:
				var parts []string
				for _, e := range m {
					if s, ok := e.(string); ok {
						parts = append(parts, s)
					}
				}
				lines = append(lines, fmt.Sprintf("%s: %s", field, strings.Join(parts, ", ")))
			case string:
				lines = append(lines, fmt.Sprintf("%s: %s", field, m))
			}
		}
		sort.Strings(lines)
		return strings.Join(lines, "\n")
	}
	return ""
}

// decodeListEnvelope extracts the record array from any of the list
// envelope shapes the backend is known to produce: {data:{items:[…]}},
// a bare array, {data:[…]}, and {isSuccess, value:[…]}.
func decodeListEnvelope(body json.RawMessage) []map[string]interface{} {
	var bare []map[string]interface{}
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare
	}

	var envelope struct {
		Data      json.RawMessage `json:"data"`
		IsSuccess bool            `json:"isSuccess"`
		Value     json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	if len(envelope.Data) > 0 {
		var data []map[string]interface{}
		if err := json.Unmarshal(envelope.Data, &data); err == nil {
			return data
		}
		var nested struct {
			Items []map[string]interface{} `json:"items"`
		}
		if err := json.Unmarshal(envelope.Data, &nested); err == nil && nested.Items != nil {
			return nested.Items
		}
	}

	if envelope.IsSuccess && len(envelope.Value) > 0 {
		var value []map[string]interface{}
		if err := json.Unmarshal(envelope.Value, &value); err == nil {
			return value
		}
	}
	return nil
}

// decodeObjectEnvelope extracts a single record from either a bare object
// or a {data: …} / {value: …} envelope.
func decodeObjectEnvelope(body json.RawMessage) map[string]interface{} {
	var envelope struct {
		Data  map[string]interface{} `json:"data"`
		Value map[string]interface{} `json:"value"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Data != nil {
			return envelope.Data
		}
		if envelope.Value != nil {
			return envelope.Value
		}
	}
	var bare map[string]interface{}
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare
	}
	return nil
}

// requestBody is the {request: …} wrapper the write endpoints expect.
type requestBody struct {
	Request interface{} `json:"request"`
}
