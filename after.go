package ntfyclient

import (
	"context"

	"ntfyclient/internal/logging"
)

// After wraps fn so that a notification with the given message fires once fn
// returns successfully. The topic is resolved at wrap time, so a client with
// no usable topic fails here rather than when the wrapped function runs.
//
// The wrapped function's value and error pass through unchanged: when fn
// fails, no notification is sent and its error is returned as-is. A failed
// notification send never replaces fn's result; it is reported on the
// client's logger instead.
func After[T any](c *Client, topic, message string, fn func(context.Context) (T, error), opts ...PublishOption) (func(context.Context) (T, error), error) {
	resolved, err := c.resolveTopic(topic)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) (T, error) {
		value, err := fn(ctx)
		if err != nil {
			return value, err
		}
		if _, sendErr := c.Publish(ctx, resolved, message, opts...); sendErr != nil {
			c.logger.Warn("completion notification failed",
				logging.String("topic", resolved),
				logging.Error(sendErr))
		}
		return value, nil
	}, nil
}
