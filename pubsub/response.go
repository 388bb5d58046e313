package pubsub

import (
	"encoding/json"
	"fmt"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// frameEnvelope is the outer shape every inbound PubSub frame shares
// before its `type` selects how the rest is interpreted (spec §4.7
// "Inbound frame classification").
type frameEnvelope struct {
	Type  string          `json:"type"`
	Nonce string          `json:"nonce,omitempty"`
	Error string          `json:"error,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ResponseFrame acknowledges a LISTEN command.
type ResponseFrame struct {
	Nonce string
	Error string // empty means success
}

// Success reports whether the LISTEN this frame acknowledges succeeded.
func (r ResponseFrame) Success() bool { return r.Error == "" }

// MessageFrame carries one topic payload.
type MessageFrame struct {
	Topic   Topic
	Payload interface{} // one of the payload variants below, or Unknown
}

// Unknown is the fallthrough variant for an inner `type` tag this
// package does not recognize, naming the offending topic and tag.
// ParseFrame returns it as the MessageFrame's Payload with a nil error;
// an unknown tag is not reported as an error.
type Unknown struct {
	Topic string
	Tag   string
	Raw   json.RawMessage
}

// RewardRedeemed is the payload for inner type "reward-redeemed",
// grounded on original_source/src/pubsub/channel_points.rs's
// Redemption/Reward shapes.
type RewardRedeemed struct {
	Timestamp  string `json:"timestamp"`
	Redemption struct {
		ID         ids.RedemptionID `json:"id"`
		UserID     ids.UserID       `json:"user_id"`
		ChannelID  ids.BroadcasterID `json:"channel_id"`
		RedeemedAt string           `json:"redeemed_at"`
		Reward     struct {
			ID    ids.RewardID `json:"id"`
			Title string       `json:"title"`
			Cost  int          `json:"cost"`
		} `json:"reward"`
		UserInput string `json:"user_input"`
		Status    string `json:"status"`
	} `json:"redemption"`
}

// CustomRewardUpdated is the payload for inner type
// "custom-reward-updated".
type CustomRewardUpdated struct {
	Timestamp    string `json:"timestamp"`
	UpdatedReward struct {
		ID        ids.RewardID `json:"id"`
		ChannelID ids.BroadcasterID `json:"channel_id"`
		IsPaused  bool         `json:"is_paused"`
		IsEnabled bool         `json:"is_enabled"`
	} `json:"updated_reward"`
}

// ModerationAction is the payload for inner type "moderation_action".
type ModerationAction struct {
	Type            string   `json:"type"`
	ModerationAction string  `json:"moderation_action"`
	Args            []string `json:"args"`
	CreatedBy       string   `json:"created_by"`
	TargetUserID    ids.UserID `json:"target_user_id"`
}

// HypeTrainStart is the payload for inner type "hype-train-start".
type HypeTrainStart struct {
	ChannelID ids.BroadcasterID `json:"channel_id"`
	Config    struct {
		Level int `json:"level"`
	} `json:"config"`
}

type taggedDecoder func(raw json.RawMessage) (interface{}, error)

var innerRegistry = map[string]taggedDecoder{
	"reward-redeemed": decodeInnerAs[RewardRedeemed],
	"custom-reward-updated": decodeInnerAs[CustomRewardUpdated],
	"moderation_action":     decodeInnerAs[ModerationAction],
	"hype-train-start":      decodeInnerAs[HypeTrainStart],
}

func decodeInnerAs[T any](raw json.RawMessage) (interface{}, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("pubsub: decode %T: %w", v, err)
	}
	return v, nil
}

// messageData is the `data` object of a MESSAGE frame: the rendered
// topic plus the inner message, itself a JSON string (spec §3 "PubSub
// response").
type messageData struct {
	Topic   string `json:"topic"`
	Message string `json:"message"`
}

// innerEnvelope is the inner message's own `{type, data}` wrapper (spec
// §4.7 "inner tagged message"; confirmed by original_source's
// `#[serde(tag = "type", content = "data")]` on the payload enums in
// pubsub/channel_points.rs, moderation.rs, hypetrain.rs) — the payload
// fields live under `data`, not at the inner message's top level.
type innerEnvelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ParseFrame classifies a raw inbound PubSub frame into exactly one of
// ResponseFrame, MessageFrame, PongFrame, or ReconnectFrame.
func ParseFrame(raw []byte) (interface{}, error) {
	var env frameEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("pubsub: parse frame: %w", err)
	}

	switch env.Type {
	case "RESPONSE":
		return ResponseFrame{Nonce: env.Nonce, Error: env.Error}, nil
	case "PONG":
		return PongFrame{}, nil
	case "RECONNECT":
		return ReconnectFrame{}, nil
	case "MESSAGE":
		var md messageData
		if err := json.Unmarshal(env.Data, &md); err != nil {
			return nil, fmt.Errorf("pubsub: parse message data: %w", err)
		}
		topic, err := ParseTopic(md.Topic)
		if err != nil {
			return nil, err
		}
		var inner innerEnvelope
		if err := json.Unmarshal([]byte(md.Message), &inner); err != nil {
			return nil, fmt.Errorf("pubsub: parse inner message: %w", err)
		}
		dec, ok := innerRegistry[inner.Type]
		if !ok {
			return MessageFrame{Topic: topic, Payload: Unknown{
				Topic: md.Topic, Tag: inner.Type, Raw: json.RawMessage(md.Message),
			}}, nil
		}
		payload, err := dec(inner.Data)
		if err != nil {
			return nil, err
		}
		return MessageFrame{Topic: topic, Payload: payload}, nil
	default:
		return nil, fmt.Errorf("pubsub: unrecognized frame type %q", env.Type)
	}
}

// PongFrame is a server heartbeat acknowledgment.
type PongFrame struct{}

// ReconnectFrame instructs the client to reconnect and re-issue LISTEN.
type ReconnectFrame struct{}
