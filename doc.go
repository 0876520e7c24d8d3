// Package ntfyclient is a small client for ntfy-compatible push-notification
// services.
//
// A Client owns a base service URL, an optional default topic, and a shared
// HTTP transport. It publishes one-shot notifications, streams message lines
// from a topic's subscription endpoint, and can wrap a function so that a
// completion notification fires after it returns. Topic strings themselves
// are produced by the topic subpackage.
//
// The client performs no retries and imposes no timeout of its own; pass a
// context with a deadline when one is needed. A Client may be reused for
// sequential calls but is not synchronized for concurrent use.
package ntfyclient
