package eventsub

import (
	"encoding/json"
	"fmt"
)

// NotificationEnvelope is the webhook/WebSocket body for a `notification`
// delivery: subscription metadata plus the raw event, decoded only
// after the (type, version) pair is known (spec §3 "given a raw
// envelope, the deserializer must select the variant by type+version
// before parsing the payload").
type NotificationEnvelope struct {
	Subscription SubscriptionMetadata `json:"subscription"`
	Event        json.RawMessage      `json:"event"`
}

// ChallengeEnvelope is the webhook body for
// `webhook_callback_verification`.
type ChallengeEnvelope struct {
	Challenge    string               `json:"challenge"`
	Subscription SubscriptionMetadata `json:"subscription"`
}

// RevocationEnvelope is the webhook/WebSocket body for `revocation`.
type RevocationEnvelope struct {
	Subscription SubscriptionMetadata `json:"subscription"`
}

// Decoded is a notification that has passed through DecodePayload: the
// concrete payload type lives in Event, either one of the declared
// variants in events.go or an Unknown.
type Decoded struct {
	Subscription SubscriptionMetadata
	Event        interface{}
}

// DecodeNotification parses body as a NotificationEnvelope and decodes
// its event into the variant named by the subscription's (type, version).
func DecodeNotification(body []byte) (Decoded, error) {
	var env NotificationEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Decoded{}, fmt.Errorf("eventsub: decode notification envelope: %w", err)
	}
	payload, err := DecodePayload(env.Subscription.Type, env.Subscription.Version, env.Event)
	if err != nil {
		return Decoded{}, err
	}
	return Decoded{Subscription: env.Subscription, Event: payload}, nil
}
