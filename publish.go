package ntfyclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"ntfyclient/internal/logging"
)

// DefaultPriority is sent when no priority is configured. The service
// convention treats 3 as "default"; the client does not validate the range.
const DefaultPriority = 3

// PublishOptions carries optional notification metadata. The zero value plus
// defaults matches a plain message send.
type PublishOptions struct {
	// Priority is the ntfy priority header value. Values outside the
	// service's 1-5 convention are passed through unvalidated.
	Priority int
	// Title is set as the notification title when non-empty.
	Title string
	// Tags is a caller-formatted comma-separated tag list, forwarded
	// verbatim when non-empty.
	Tags string
}

// PublishOption configures a single publish call.
type PublishOption func(*PublishOptions)

// WithPriority overrides the default priority of 3.
func WithPriority(priority int) PublishOption {
	return func(o *PublishOptions) { o.Priority = priority }
}

// WithTitle sets the notification title.
func WithTitle(title string) PublishOption {
	return func(o *PublishOptions) { o.Title = title }
}

// WithTags sets the comma-separated tag list.
func WithTags(tags string) PublishOption {
	return func(o *PublishOptions) { o.Tags = tags }
}

// Receipt is the server's answer to a successful publish.
type Receipt struct {
	StatusCode int
	Body       []byte
}

// Publish sends one notification to topic, falling back to the client's
// default topic when topic is empty. Transport failures and non-2xx statuses
// surface through the returned error alike; no retry is attempted.
func (c *Client) Publish(ctx context.Context, topic, message string, opts ...PublishOption) (*Receipt, error) {
	resolved, err := c.resolveTopic(topic)
	if err != nil {
		return nil, err
	}

	options := PublishOptions{Priority: DefaultPriority}
	for _, opt := range opts {
		opt(&options)
	}

	endpoint := c.baseURL + "/" + resolved
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(message))
	if err != nil {
		return nil, fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Priority", strconv.Itoa(options.Priority))
	if options.Title != "" {
		req.Header.Set("Title", options.Title)
	}
	if options.Tags != "" {
		req.Header.Set("Tags", options.Tags)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read notification response: %w", err)
	}
	c.logger.Debug("notification sent",
		logging.String("topic", resolved),
		logging.Int("status", resp.StatusCode))
	return &Receipt{StatusCode: resp.StatusCode, Body: body}, nil
}
