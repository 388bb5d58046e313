package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// EventSubTransport describes how a subscription's notifications are
// delivered: webhook (with a callback URL and shared secret) or
// websocket (bound to a live session id). Only one of the two shapes
// is populated per the Method tag, mirroring Twitch's own union.
type EventSubTransport struct {
	Method    string `json:"method"` // "webhook" or "websocket"
	Callback  string `json:"callback,omitempty"`
	Secret    string `json:"secret,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// EventSubSubscription is the Create/Get EventSub Subscription response
// record. Condition is left as a raw map since its shape is keyed by
// (Type, Version) and the eventsub package owns the typed condition
// values.
type EventSubSubscription struct {
	ID        ids.SubscriptionID     `json:"id"`
	Status    string                 `json:"status"`
	Type      string                 `json:"type"`
	Version   string                 `json:"version"`
	Condition map[string]interface{} `json:"condition"`
	CreatedAt string                 `json:"created_at"`
	Transport EventSubTransport      `json:"transport"`
	Cost      int                    `json:"cost"`
}

// CreateEventSubSubscriptionBody is the request body for Create EventSub
// Subscription.
type CreateEventSubSubscriptionBody struct {
	Type      string                  `json:"type"`
	Version   string                  `json:"version"`
	Condition map[string]interface{}  `json:"condition"`
	Transport EventSubTransport       `json:"transport"`
}

// CreateEventSubSubscriptionRequest is POST /eventsub/subscriptions.
type CreateEventSubSubscriptionRequest struct {
	Body CreateEventSubSubscriptionBody
}

func (r CreateEventSubSubscriptionRequest) HTTPMethod() string { return "POST" }
func (r CreateEventSubSubscriptionRequest) Path() string       { return "eventsub/subscriptions" }
func (r CreateEventSubSubscriptionRequest) RequiredScope() ScopeRequirement { return NoScope{} }
func (r CreateEventSubSubscriptionRequest) QueryValue() interface{}        { return nil }
func (r CreateEventSubSubscriptionRequest) BodyValue() (interface{}, bool) { return r.Body, true }

// CreateEventSubSubscription registers a new EventSub subscription.
// The request declares NoScope: this driver method is type-agnostic and
// does not check the scopes individual subscription types need.
func (c *Client) CreateEventSubSubscription(ctx context.Context, req CreateEventSubSubscriptionRequest) (EventSubSubscription, error) {
	return ExecuteSingle[EventSubSubscription](ctx, c, req)
}

// GetEventSubSubscriptionsRequest is GET /eventsub/subscriptions
// (paginated).
type GetEventSubSubscriptionsRequest struct {
	Status *string     `query:"status"`
	Type   *string     `query:"type"`
	After  *ids.Cursor `query:"after"`
}

func (r GetEventSubSubscriptionsRequest) HTTPMethod() string { return "GET" }
func (r GetEventSubSubscriptionsRequest) Path() string       { return "eventsub/subscriptions" }
func (r GetEventSubSubscriptionsRequest) RequiredScope() ScopeRequirement { return NoScope{} }
func (r GetEventSubSubscriptionsRequest) QueryValue() interface{}        { return r }
func (r GetEventSubSubscriptionsRequest) BodyValue() (interface{}, bool) { return nil, false }
func (r *GetEventSubSubscriptionsRequest) SetAfter(c ids.Cursor)         { r.After = &c }

// EventSubSubscriptionsPaginator walks every page of the app's current
// EventSub subscriptions.
func (c *Client) EventSubSubscriptionsPaginator(req *GetEventSubSubscriptionsRequest) *Paginator[EventSubSubscription] {
	return NewPaginator[EventSubSubscription](c, req)
}

// DeleteEventSubSubscriptionRequest is DELETE /eventsub/subscriptions.
type DeleteEventSubSubscriptionRequest struct {
	ID ids.SubscriptionID `query:"id"`
}

func (r DeleteEventSubSubscriptionRequest) HTTPMethod() string { return "DELETE" }
func (r DeleteEventSubSubscriptionRequest) Path() string       { return "eventsub/subscriptions" }
func (r DeleteEventSubSubscriptionRequest) RequiredScope() ScopeRequirement { return NoScope{} }
func (r DeleteEventSubSubscriptionRequest) QueryValue() interface{}        { return r }
func (r DeleteEventSubSubscriptionRequest) BodyValue() (interface{}, bool) { return nil, false }

// DeleteEventSubSubscription cancels a subscription. Success is a 204.
func (c *Client) DeleteEventSubSubscription(ctx context.Context, req DeleteEventSubSubscriptionRequest) (StatusResult, error) {
	return ExecuteStatus(ctx, c, req)
}
