package ntfyclient

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"ntfyclient/internal/logging"
)

// DefaultBaseURL is the public ntfy.sh service root used when no override is
// configured.
const DefaultBaseURL = "https://ntfy.sh"

const userAgent = "NtfyClient-Go/0.1.0"

// ErrNoTopic is returned when an operation cannot resolve a topic from either
// its explicit argument or the client's default.
var ErrNoTopic = errors.New("no topic configured")

// HTTPDoer describes the HTTP client used for all service calls.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one ntfy-compatible service.
type Client struct {
	baseURL      string
	defaultTopic string
	client       HTTPDoer
	logger       *slog.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithBaseURL points the client at a self-hosted service root. Trailing
// slashes are trimmed.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// WithDefaultTopic sets the topic used when an operation is called without an
// explicit one.
func WithDefaultTopic(topic string) Option {
	return func(c *Client) {
		c.defaultTopic = strings.TrimSpace(topic)
	}
}

// WithHTTPClient replaces the HTTP transport. The default transport carries
// no timeout so that subscriptions can block indefinitely; a replacement used
// for subscriptions should do the same.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger attaches a logger for failure reporting. Without one the client
// is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New builds a Client for the public ntfy.sh service unless options say
// otherwise.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		// No timeout - subscriptions block waiting for messages until the
		// caller cancels.
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	c.logger = logging.NewComponentLogger(c.logger, "ntfy")
	return c
}

// resolveTopic applies the explicit-argument-first rule. It never touches the
// network; callers rely on it failing before any request is built.
func (c *Client) resolveTopic(topic string) (string, error) {
	if t := strings.TrimSpace(topic); t != "" {
		return t, nil
	}
	if c.defaultTopic != "" {
		return c.defaultTopic, nil
	}
	return "", ErrNoTopic
}
