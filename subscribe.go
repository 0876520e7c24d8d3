package ntfyclient

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"
	"net/http"
	"strings"

	"ntfyclient/internal/logging"
)

// Subscribe returns a lazy sequence of message lines from the topic's
// streaming endpoint. The connection is opened on first pull and released as
// soon as the consumer stops pulling, whether by exhausting the stream or
// breaking out of the loop. Empty keep-alive lines are skipped; everything
// else is yielded verbatim without JSON decoding.
//
// A topic that cannot be resolved fails here, before any connection is made.
// Transport or HTTP failures after that are reported on the client's logger
// and end the sequence; the sequence is not restartable.
func (c *Client) Subscribe(ctx context.Context, topic string) (iter.Seq[string], error) {
	resolved, err := c.resolveTopic(topic)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/" + resolved + "/json"
	logger := c.logger.With(logging.String("topic", resolved))

	return func(yield func(string) bool) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			logger.Error("build subscribe request", logging.Error(err))
			return
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			logger.Error("open subscription stream", logging.Error(err))
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			logger.Error("subscription rejected",
				logging.Int("status", resp.StatusCode),
				logging.String("body", strings.TrimSpace(string(body))))
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if !yield(line) {
				return
			}
		}
		if err := scanner.Err(); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("subscription stream ended", logging.Error(err))
		}
	}, nil
}
