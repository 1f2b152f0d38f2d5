// SPDX-License-Identifier: MPL-2.0

package genesys

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-cleanhttp"
)

const (
	// UserSearchPageSize is the page size of a user name search.
	UserSearchPageSize = 50
	// QueueSearchPageSize is the page size of a queue name search.
	QueueSearchPageSize = 100

	// maxJSONResponseBytes is the upper bound on JSON API response size (10 MB).
	maxJSONResponseBytes = 10 << 20
	// maxErrorBodyBytes caps how much of an error body is read for its message.
	maxErrorBodyBytes = 64 << 10
)

type (
	// Client talks to one Genesys Cloud region.
	Client struct {
		httpClient *http.Client
		loginURL   string // OAuth base URL (default: https://login.<region>)
		apiURL     string // API base URL (default: https://api.<region>)
		userAgent  string
		token      string
		logger     *log.Logger
	}

	// ClientOption configures a Client during construction.
	ClientOption func(*Client)
)

// WithHTTPClient sets a custom HTTP client, useful for tests or proxy configurations.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the HTTP client in use. Apply it after
// WithHTTPClient when both are given.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLoginBaseURL overrides the OAuth base URL, primarily for test servers.
func WithLoginBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.loginURL = strings.TrimRight(base, "/")
	}
}

// WithAPIBaseURL overrides the API base URL, primarily for test servers.
func WithAPIBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.apiURL = strings.TrimRight(base, "/")
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithAccessToken skips Authenticate and uses an existing token.
func WithAccessToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sets the logger used for request tracing at debug level.
func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client for region (e.g. "usw2.pure.cloud").
// Defaults: a pooled go-cleanhttp client, userAgent="gclookup/dev".
func NewClient(region string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: cleanhttp.DefaultPooledClient(),
		loginURL:   "https://login." + region,
		apiURL:     "https://api." + region,
		userAgent:  "gclookup/dev",
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate exchanges client credentials for an access token and keeps
// it for subsequent calls.
func (c *Client) Authenticate(ctx context.Context, clientID, clientSecret string) (*Token, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
	}
	tokenURL := c.loginURL + "/oauth/token"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	var tok Token
	if err := c.do(req, &tok); err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("authenticating: response carried no access_token")
	}

	c.token = tok.AccessToken
	return &tok, nil
}

// GetUser fetches a user by id.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodGet, "/api/v2/users/"+url.PathEscape(id), nil, nil, &u); err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}
	return &u, nil
}

// SearchUsers returns the first page of users whose name contains text.
func (c *Client) SearchUsers(ctx context.Context, text string) ([]User, error) {
	body := userSearchRequest{
		Query: []searchCriteria{{
			Type:   "CONTAINS",
			Fields: []string{"name"},
			Value:  text,
		}},
		PageSize: UserSearchPageSize,
	}

	var res userSearchResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v2/users/search", nil, body, &res); err != nil {
		return nil, fmt.Errorf("searching users %q: %w", text, err)
	}
	return res.Results, nil
}

// GetQueue fetches a routing queue by id.
func (c *Client) GetQueue(ctx context.Context, id string) (*Queue, error) {
	var q Queue
	if err := c.doJSON(ctx, http.MethodGet, "/api/v2/routing/queues/"+url.PathEscape(id), nil, nil, &q); err != nil {
		return nil, fmt.Errorf("getting queue %s: %w", id, err)
	}
	return &q, nil
}

// SearchQueues returns the first page of queues whose name matches *text*.
func (c *Client) SearchQueues(ctx context.Context, text string) ([]Queue, error) {
	query := url.Values{
		"pageSize": {fmt.Sprint(QueueSearchPageSize)},
		"name":     {"*" + text + "*"},
	}

	var res queueEntityListing
	if err := c.doJSON(ctx, http.MethodGet, "/api/v2/routing/queues", query, nil, &res); err != nil {
		return nil, fmt.Errorf("searching queues %q: %w", text, err)
	}
	return res.Entities, nil
}

// GetConversation fetches a conversation with its participants.
func (c *Client) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	var conv Conversation
	if err := c.doJSON(ctx, http.MethodGet, "/api/v2/conversations/"+url.PathEscape(id), nil, nil, &conv); err != nil {
		return nil, fmt.Errorf("getting conversation %s: %w", id, err)
	}
	return &conv, nil
}

// doJSON sends an authenticated API request. in, when non-nil, is encoded
// as the JSON body; the response is decoded into out.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c.token == "" {
		return ErrNotAuthenticated
	}

	reqURL := c.apiURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader = http.NoBody
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do executes req and decodes a 2xx JSON body into out. Any other status
// becomes an *APIError.
func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }() // read-only response body

	c.logger.Debug("genesys request", "method", req.Method, "url", redactURL(req.URL), "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(req, resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func newAPIError(req *http.Request, resp *http.Response) *APIError {
	apiErr := &APIError{
		Method:     req.Method,
		URL:        redactURL(req.URL),
		StatusCode: resp.StatusCode,
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var eb errorBody
	if json.Unmarshal(data, &eb) == nil {
		apiErr.Message = eb.message()
	}
	return apiErr
}

// redactURL strips query parameters and fragments for safe inclusion in
// logs and errors.
func redactURL(u *url.URL) string {
	clean := *u
	clean.RawQuery = ""
	clean.Fragment = ""
	clean.User = nil
	return clean.String()
}
