package zabbix

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 10 * time.Second
	rpcEndpoint    = "api_jsonrpc.php"
)

// Client is a typed client for the Zabbix JSON-RPC API. A session token
// obtained by Login is attached to every subsequent call; the session lives
// for a single invocation.
type Client struct {
	endpoint   *url.URL
	username   string
	password   string
	auth       string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: skip},
		}
	}
}

// WithLogger attaches a logger for per-call debug logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient builds a client for the given server URL. The JSON-RPC endpoint
// path is appended when the URL does not already carry it.
func NewClient(rawURL, username, password string, opts ...Option) (*Client, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("zabbix server URL is required")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid zabbix server URL: %w", err)
	}
	if !strings.HasSuffix(parsed.Path, rpcEndpoint) {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/") + "/" + rpcEndpoint
	}
	client := &Client{
		endpoint: parsed,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	Auth    string `json:"auth,omitempty"`
	ID      string `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *APIError       `json:"error"`
}

// Login opens an API session and stores the token for later calls.
func (c *Client) Login(ctx context.Context) error {
	if c.username == "" || c.password == "" {
		return fmt.Errorf("zabbix username and password are required")
	}
	var token string
	params := map[string]string{"user": c.username, "password": c.password}
	if err := c.Call(ctx, "user.login", params, &token); err != nil {
		return fmt.Errorf("zabbix login failed: %w", err)
	}
	c.auth = token
	return nil
}

// Logout closes the API session. Errors are returned but safe to ignore:
// unreleased sessions expire server-side.
func (c *Client) Logout(ctx context.Context) error {
	if c.auth == "" {
		return nil
	}
	err := c.Call(ctx, "user.logout", []string{}, nil)
	c.auth = ""
	return err
}

// Call performs a single JSON-RPC request. No retries: any failure is
// terminal for the invocation.
func (c *Client) Call(ctx context.Context, method string, params, out any) error {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		Auth:    c.callAuth(method),
		ID:      uuid.NewString(),
	})
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json-rpc")
	req.Header.Set("User-Agent", "zabbix-hostctl/1.0")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("zabbix %s failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("zabbix %s failed: status %d", method, resp.StatusCode)
	}

	var rpc rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpc); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	c.log.Debug().
		Str("method", method).
		Dur("duration", time.Since(started)).
		Msg("zabbix api call")
	if rpc.Error != nil {
		rpc.Error.Method = method
		return rpc.Error
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rpc.Result, out); err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}
	return nil
}

// callAuth returns the session token for methods that require one.
// user.login and apiinfo.version are unauthenticated.
func (c *Client) callAuth(method string) string {
	if method == "user.login" || method == "apiinfo.version" {
		return ""
	}
	return c.auth
}

// Version reports the API version of the remote server.
func (c *Client) Version(ctx context.Context) (string, error) {
	var version string
	if err := c.Call(ctx, "apiinfo.version", []string{}, &version); err != nil {
		return "", err
	}
	return version, nil
}
