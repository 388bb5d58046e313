// Package twitcherr defines the error kind hierarchy (spec §7). The helix
// driver returns these; the webhook handler reports failures as HTTP
// statuses and pubsub defines its own UnknownTopicError, so neither
// returns these types. Every kind carries the context a caller needs to
// classify and, if appropriate, retry.
package twitcherr

import "fmt"

// URIError reports a malformed base URL or query that could not be turned
// into a request. This is always a caller bug.
type URIError struct {
	URI string
	Err error
}

func (e *URIError) Error() string {
	return fmt.Sprintf("twitch: invalid request URI %q: %v", e.URI, e.Err)
}

func (e *URIError) Unwrap() error { return e.Err }

// SerializeError reports a request body or query value that could not be
// encoded (e.g. a nested struct where a scalar was required).
type SerializeError struct {
	Value interface{}
	Err   error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("twitch: failed to serialize %T: %v", e.Value, e.Err)
}

func (e *SerializeError) Unwrap() error { return e.Err }

// TransportError wraps a failure from the underlying HTTP/WebSocket
// collaborator. The core never retries; it always surfaces this verbatim.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("twitch: transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError reports Helix's own `{error, status, message}` error document,
// which may disagree with the transport status code.
type HTTPError struct {
	URI     string
	Status  int
	Error_  string // Twitch's short error label, e.g. "Bad Request"
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("twitch: %s (status %d) for %s: %s", e.Error_, e.Status, e.URI, e.Message)
}

// DeserializeError reports a response body that does not match the
// endpoint's declared response shape.
type DeserializeError struct {
	URI    string
	Status int
	Body   []byte
	Err    error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("twitch: failed to decode response from %s (status %d): %v", e.URI, e.Status, e.Err)
}

func (e *DeserializeError) Unwrap() error { return e.Err }

// InvalidResponseError reports a successful HTTP status with a body shape
// the declared response mode rejects (e.g. empty `data` on a
// single-required response).
type InvalidResponseError struct {
	URI    string
	Reason string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("twitch: invalid response from %s: %s", e.URI, e.Reason)
}

// MissingScopeError reports that the bearer token lacks a scope the
// request statically declares as required. The driver refuses before
// transport; no HTTP round trip ever happens for this error.
type MissingScopeError struct {
	Required string // human-readable rendering of the scope expression
	Have     []string
}

func (e *MissingScopeError) Error() string {
	return fmt.Sprintf("twitch: missing required scope(s) %s (have %v)", e.Required, e.Have)
}

// SignatureError reports a webhook HMAC mismatch. Callers must respond
// 400 and must not leak why the signature failed.
type SignatureError struct{}

func (e *SignatureError) Error() string { return "twitch: webhook signature verification failed" }

// BodyTooLargeError reports a webhook delivery that exceeded the
// configured body-size ceiling before it was buffered.
type BodyTooLargeError struct {
	Limit int64
}

func (e *BodyTooLargeError) Error() string {
	return fmt.Sprintf("twitch: webhook body exceeds %d byte limit", e.Limit)
}

// UnknownTopicError reports a PubSub topic prefix or field arity the
// registry does not recognize.
type UnknownTopicError struct {
	Raw string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("twitch: unrecognized pubsub topic %q", e.Raw)
}

// UnknownPayloadTagError reports a PubSub MESSAGE whose inner `type` tag
// has no registered decoder for the given topic kind.
type UnknownPayloadTagError struct {
	Topic string
	Tag   string
}

func (e *UnknownPayloadTagError) Error() string {
	return fmt.Sprintf("twitch: unrecognized payload tag %q for topic %q", e.Tag, e.Topic)
}
