// Package eventsub implements the EventSub event taxonomy (spec §4.5):
// envelope types, the (type, version)-discriminated event sum, delivery
// record metadata, and WebSocket message classification. Dispatch to
// the correct payload variant happens before decode, not after — a raw
// envelope never gets parsed twice.
package eventsub

import "github.com/twitch-rs/twitch-api-sub001/ids"

// Condition is the free-form keyed condition a subscription is created
// with (e.g. {broadcaster_user_id}). Concrete subscription types narrow
// it with their own constructor instead of exposing the map directly.
type Condition map[string]interface{}

// BroadcasterCondition is the condition shape shared by most
// broadcaster-scoped subscription types.
func BroadcasterCondition(broadcasterID ids.BroadcasterID) Condition {
	return Condition{"broadcaster_user_id": string(broadcasterID)}
}

// FollowCondition is channel.follow's condition: it requires a
// moderator id in addition to the broadcaster, per Twitch's v2 design.
func FollowCondition(broadcasterID ids.BroadcasterID, moderatorID ids.ModeratorID) Condition {
	return Condition{
		"broadcaster_user_id": string(broadcasterID),
		"moderator_user_id":   string(moderatorID),
	}
}

// RaidCondition is channel.raid's condition, keyed by the destination
// channel rather than the source.
func RaidCondition(toBroadcasterID ids.BroadcasterID) Condition {
	return Condition{"to_broadcaster_user_id": string(toBroadcasterID)}
}

// Transport describes how notifications for a subscription are
// delivered, mirroring helix.EventSubTransport but kept separate so
// neither package imports the other.
type Transport struct {
	Method    string
	Callback  string
	Secret    string
	SessionID string
}

// WebhookTransport builds a webhook delivery transport.
func WebhookTransport(callbackURL, secret string) Transport {
	return Transport{Method: "webhook", Callback: callbackURL, Secret: secret}
}

// WebSocketTransport builds a websocket delivery transport bound to a
// live session id, obtained from a prior session_welcome message.
func WebSocketTransport(sessionID string) Transport {
	return Transport{Method: "websocket", SessionID: sessionID}
}

// SubscriptionMetadata is the envelope's `subscription` object, common
// to every delivery regardless of payload kind (spec §3 "EventSub
// subscription descriptor").
type SubscriptionMetadata struct {
	ID        ids.SubscriptionID `json:"id"`
	Status    string             `json:"status"`
	Type      string             `json:"type"`
	Version   string             `json:"version"`
	Condition Condition          `json:"condition"`
	Transport struct {
		Method   string `json:"method"`
		Callback string `json:"callback,omitempty"`
	} `json:"transport"`
	CreatedAt string `json:"created_at"`
	Cost      int    `json:"cost"`
}
