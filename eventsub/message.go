package eventsub

import (
	"encoding/json"
	"fmt"
)

// MessageType enumerates the EventSub WebSocket frame kinds (spec §4.5
// "Message classification").
type MessageType string

const (
	MessageWelcome    MessageType = "session_welcome"
	MessageKeepalive  MessageType = "session_keepalive"
	MessageNotification MessageType = "notification"
	MessageReconnect  MessageType = "session_reconnect"
	MessageRevocation MessageType = "revocation"
)

// Metadata is the `metadata` object common to every WebSocket frame.
type Metadata struct {
	MessageID            string      `json:"message_id"`
	MessageType          MessageType `json:"message_type"`
	MessageTimestamp     string      `json:"message_timestamp"`
	SubscriptionType     string      `json:"subscription_type,omitempty"`
	SubscriptionVersion  string      `json:"subscription_version,omitempty"`
}

// Frame is a raw EventSub WebSocket text frame before its payload is
// interpreted per MessageType.
type Frame struct {
	Metadata Metadata        `json:"metadata"`
	Payload  json.RawMessage `json:"payload"`
}

// WelcomePayload is the `payload` of a session_welcome frame.
type WelcomePayload struct {
	Session struct {
		ID                      string `json:"id"`
		Status                  string `json:"status"`
		KeepaliveTimeoutSeconds int    `json:"keepalive_timeout_seconds"`
		ReconnectURL            string `json:"reconnect_url"`
	} `json:"session"`
}

// ReconnectPayload is the `payload` of a session_reconnect frame.
type ReconnectPayload struct {
	Session struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		ReconnectURL string `json:"reconnect_url"`
	} `json:"session"`
}

// ParseFrame unmarshals a raw WebSocket text message into a Frame.
func ParseFrame(raw []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return Frame{}, fmt.Errorf("eventsub: parse frame: %w", err)
	}
	return f, nil
}

// AsWelcome decodes f's payload as a session_welcome. Callers should
// check f.Metadata.MessageType == MessageWelcome first.
func (f Frame) AsWelcome() (WelcomePayload, error) {
	var p WelcomePayload
	err := json.Unmarshal(f.Payload, &p)
	return p, err
}

// AsReconnect decodes f's payload as a session_reconnect.
func (f Frame) AsReconnect() (ReconnectPayload, error) {
	var p ReconnectPayload
	err := json.Unmarshal(f.Payload, &p)
	return p, err
}

// AsNotification decodes f's payload as a notification, dispatching to
// the declared variant per (type, version) from Metadata. The payload
// itself is the same `{subscription, event}` envelope the webhook
// transport carries (spec §4.5 "Envelope structure"); only the `event`
// field holds the fields the variant's JSON tags match.
func (f Frame) AsNotification() (Decoded, error) {
	var env NotificationEnvelope
	if err := json.Unmarshal(f.Payload, &env); err != nil {
		return Decoded{}, fmt.Errorf("eventsub: parse notification payload: %w", err)
	}
	payload, err := DecodePayload(f.Metadata.SubscriptionType, f.Metadata.SubscriptionVersion, env.Event)
	if err != nil {
		return Decoded{}, err
	}
	return Decoded{Subscription: env.Subscription, Event: payload}, nil
}

// AsRevocation decodes f's payload as a revocation. The WebSocket
// transport carries the same subscription+payload shape as the webhook
// transport's revocation body.
func (f Frame) AsRevocation() (RevocationEnvelope, error) {
	var rev RevocationEnvelope
	err := json.Unmarshal(f.Payload, &rev)
	return rev, err
}
