// Package topic produces channel identifiers for push-notification services.
//
// Four strategies are available, trading predictability against
// unlinkability: HMAC derives the same topic for the same key/identifier
// pair, which suits stable per-device channels; random, uuid, and compound
// produce a fresh unguessable topic per call. Strategies can be invoked
// directly or dispatched by name through Generate.
package topic
