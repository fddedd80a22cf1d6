package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"studytrack/internal/domain"
)

// Client speaks PostgREST to a Supabase-style tabular store: CRUD against
// {baseURL}/rest/v1/{table} authenticated by an API key. It never retries;
// transport failures and unexpected response shapes surface to the caller
// wrapping domain.ErrStorageUnavailable.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Eq formats an equality predicate for a filter value.
func Eq(value string) string {
	return "eq." + value
}

// Select fetches all rows matching the filters into out (a pointer to a
// slice of row models).
func (c *Client) Select(ctx context.Context, table string, filters url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, table, filters, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(table, resp, out)
}

// SelectRange fetches one page of rows plus the exact total count of all
// rows matching the filters. PostgREST answers both in a single request:
// offset/limit bound the page and the Content-Range header carries the
// total when Prefer: count=exact is set.
func (c *Client) SelectRange(ctx context.Context, table string, filters url.Values, offset, limit int, out any) (int, error) {
	q := cloneValues(filters)
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))

	headers := http.Header{}
	headers.Set("Prefer", "count=exact")

	resp, err := c.do(ctx, http.MethodGet, table, q, nil, headers)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	total, err := parseContentRange(resp.Header.Get("Content-Range"))
	if err != nil {
		return 0, domain.StorageError("select "+table, err)
	}
	if err := c.decode(table, resp, out); err != nil {
		return 0, err
	}
	return total, nil
}

// Insert posts one row and reads the stored representation back into out.
func (c *Client) Insert(ctx context.Context, table string, payload any, out any) error {
	headers := http.Header{}
	headers.Set("Prefer", "return=representation")

	resp, err := c.do(ctx, http.MethodPost, table, nil, payload, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(table, resp, out)
}

// Upsert posts one row resolving conflicts on the given column list.
func (c *Client) Upsert(ctx context.Context, table, onConflict string, payload any, out any) error {
	q := url.Values{}
	q.Set("on_conflict", onConflict)

	headers := http.Header{}
	headers.Set("Prefer", "return=representation,resolution=merge-duplicates")

	resp, err := c.do(ctx, http.MethodPost, table, q, payload, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(table, resp, out)
}

// Update patches the rows matching the filters and reads the affected rows
// back into out (a pointer to a slice). The slice length is the affected
// row count, which is how conditional updates report a lost race.
func (c *Client) Update(ctx context.Context, table string, filters url.Values, payload any, out any) error {
	headers := http.Header{}
	headers.Set("Prefer", "return=representation")

	resp, err := c.do(ctx, http.MethodPatch, table, filters, payload, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.decode(table, resp, out)
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, payload any, headers http.Header) (*http.Response, error) {
	endpoint := c.baseURL + "/rest/v1/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, domain.StorageError(method+" "+table, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, domain.StorageError(method+" "+table, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domain.StorageError(method+" "+table, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, domain.StorageError(method+" "+table,
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	return resp, nil
}

func (c *Client) decode(table string, resp *http.Response, out any) error {
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.StorageError("decode "+table, err)
	}
	return nil
}

// parseContentRange extracts the total from a PostgREST Content-Range
// header, e.g. "0-9/25" or "*/0".
func parseContentRange(header string) (int, error) {
	_, totalPart, found := strings.Cut(header, "/")
	if !found {
		return 0, fmt.Errorf("malformed Content-Range %q", header)
	}
	if totalPart == "*" {
		return 0, fmt.Errorf("store did not report an exact count in %q", header)
	}
	total, err := strconv.Atoi(totalPart)
	if err != nil {
		return 0, fmt.Errorf("malformed Content-Range %q", header)
	}
	return total, nil
}

func cloneValues(values url.Values) url.Values {
	cloned := url.Values{}
	for key, vs := range values {
		for _, v := range vs {
			cloned.Add(key, v)
		}
	}
	return cloned
}
