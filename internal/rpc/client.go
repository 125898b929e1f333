// Package rpc talks to transmission-daemon over its JSON-RPC interface.
package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"traxor/internal/config"
)

// SessionHeader carries the daemon's CSRF token
const SessionHeader = "X-Transmission-Session-Id"

// ErrUnauthorized is returned when the daemon rejects the credentials
var ErrUnauthorized = errors.New("rpc: unauthorized")

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Error is a request the daemon answered with a result other than "success"
type Error struct {
	Method string
	Result string
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc %s: %s", e.Method, e.Result)
}

// Client is a transmission RPC client. It is safe for concurrent use.
type Client struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
	HTTP     HTTPClient

	mu        sync.Mutex
	sessionID string
}

// New creates a client from the rpc config section
func New(cfg config.RPCConfig) *Client {
	return &Client{
		URL:      cfg.URL,
		Username: cfg.Username,
		Password: cfg.Password,
		Timeout:  cfg.Timeout(),
		HTTP:     &http.Client{},
	}
}

// call sends one request and returns the "arguments" object of the reply.
// args is a JSON object or empty.
func (c *Client) call(ctx context.Context, method, args string) (gjson.Result, error) {
	body, err := sjson.Set(`{}`, "method", method)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("building %s request: %w", method, err)
	}
	if args != "" {
		if body, err = sjson.SetRaw(body, "arguments", args); err != nil {
			return gjson.Result{}, fmt.Errorf("building %s request: %w", method, err)
		}
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	// The first request of a session is answered with 409 and a token
	for attempt := 0; attempt < 2; attempt++ {
		resp, err := c.post(ctx, body)
		if err != nil {
			return gjson.Result{}, fmt.Errorf("rpc %s: %w", method, err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return gjson.Result{}, fmt.Errorf("rpc %s: reading response: %w", method, err)
		}

		switch resp.StatusCode {
		case http.StatusConflict:
			c.setSession(resp.Header.Get(SessionHeader))
			log.WithField("method", method).Debug("rpc: refreshed session id")
			continue
		case http.StatusUnauthorized:
			return gjson.Result{}, ErrUnauthorized
		case http.StatusOK:
		default:
			return gjson.Result{}, fmt.Errorf("rpc %s: daemon returned status %d", method, resp.StatusCode)
		}

		if !gjson.ValidBytes(data) {
			return gjson.Result{}, fmt.Errorf("rpc %s: invalid JSON response", method)
		}
		if result := gjson.GetBytes(data, "result").String(); result != "success" {
			return gjson.Result{}, &Error{Method: method, Result: result}
		}
		return gjson.GetBytes(data, "arguments"), nil
	}
	return gjson.Result{}, fmt.Errorf("rpc %s: session id rejected", method)
}

func (c *Client) post(ctx context.Context, body string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewBufferString(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := c.session(); id != "" {
		req.Header.Set(SessionHeader, id)
	}
	if c.Username != "" || c.Password != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}
	return c.HTTP.Do(req)
}

func (c *Client) session() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

func (c *Client) setSession(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = id
}

// args builds a JSON object from alternating key, value pairs
func args(kv ...interface{}) (string, error) {
	obj := `{}`
	for i := 0; i+1 < len(kv); i += 2 {
		var err error
		if obj, err = sjson.Set(obj, kv[i].(string), kv[i+1]); err != nil {
			return "", err
		}
	}
	return obj, nil
}
