// Package pubsub implements the legacy PubSub topic registry and
// response dispatcher (spec §4.7): a bijective topic codec, the LISTEN
// command builder, and typed inbound frame dispatch. Grounded on the
// Rust original_source/src/pubsub topic family (ChannelPointsChannelV1,
// ChannelBitsEventsV2, ChannelBitsBadgeUnlocks, ChatModeratorActions,
// ChannelSubscribeEventsV1), expressed here as Go structs implementing
// a shared Topic interface instead of a derive-macro'd enum.
package pubsub

import (
	"fmt"
	"strings"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// Topic is one parameterized PubSub subscription identity (spec §3
// "PubSub topic"). Render and Parse must round-trip: parsing a
// rendered topic of the same kind reproduces an equal value.
type Topic interface {
	// Prefix is the topic's dot-delimited name, e.g.
	// "channel-points-channel-v1".
	Prefix() string
	// Render produces the full "prefix.field.field…" topic string.
	Render() string
	// Scope is the OAuth scope this topic's LISTEN requires.
	Scope() string
}

// ChannelPointsChannelV1 tracks channel points redemptions for one
// channel.
type ChannelPointsChannelV1 struct{ ChannelID ids.BroadcasterID }

func (t ChannelPointsChannelV1) Prefix() string { return "channel-points-channel-v1" }
func (t ChannelPointsChannelV1) Render() string { return t.Prefix() + "." + string(t.ChannelID) }
func (t ChannelPointsChannelV1) Scope() string  { return "channel:read:redemptions" }

// ChannelBitsEventsV2 tracks cheers in one channel.
type ChannelBitsEventsV2 struct{ ChannelID ids.BroadcasterID }

func (t ChannelBitsEventsV2) Prefix() string { return "channel-bits-events-v2" }
func (t ChannelBitsEventsV2) Render() string { return t.Prefix() + "." + string(t.ChannelID) }
func (t ChannelBitsEventsV2) Scope() string  { return "bits:read" }

// ChannelBitsBadgeUnlocks tracks bit-badge unlock shares in one channel.
type ChannelBitsBadgeUnlocks struct{ ChannelID ids.BroadcasterID }

func (t ChannelBitsBadgeUnlocks) Prefix() string { return "channel-bits-badge-unlocks" }
func (t ChannelBitsBadgeUnlocks) Render() string { return t.Prefix() + "." + string(t.ChannelID) }
func (t ChannelBitsBadgeUnlocks) Scope() string  { return "bits:read" }

// ChatModeratorActions tracks moderator actions taken by userID in
// channelID — the two-field topic shape distinguishing it from the
// single-field topics above.
type ChatModeratorActions struct {
	UserID    ids.UserID
	ChannelID ids.BroadcasterID
}

func (t ChatModeratorActions) Prefix() string { return "chat_moderator_actions" }
func (t ChatModeratorActions) Render() string {
	return t.Prefix() + "." + string(t.UserID) + "." + string(t.ChannelID)
}
func (t ChatModeratorActions) Scope() string { return "channel:moderate" }

// ChannelSubscribeEventsV1 tracks new subscriptions in one channel.
type ChannelSubscribeEventsV1 struct{ ChannelID ids.BroadcasterID }

func (t ChannelSubscribeEventsV1) Prefix() string { return "channel-subscribe-events-v1" }
func (t ChannelSubscribeEventsV1) Render() string { return t.Prefix() + "." + string(t.ChannelID) }
func (t ChannelSubscribeEventsV1) Scope() string  { return "channel_subscriptions" }

// parser builds a Topic from the fields following a recognized prefix.
type parser func(fields []string) (Topic, error)

var parsers = map[string]parser{
	"channel-points-channel-v1": func(f []string) (Topic, error) {
		if len(f) != 1 {
			return nil, arityError("channel-points-channel-v1", 1, len(f))
		}
		return ChannelPointsChannelV1{ChannelID: ids.BroadcasterID(f[0])}, nil
	},
	"channel-bits-events-v2": func(f []string) (Topic, error) {
		if len(f) != 1 {
			return nil, arityError("channel-bits-events-v2", 1, len(f))
		}
		return ChannelBitsEventsV2{ChannelID: ids.BroadcasterID(f[0])}, nil
	},
	"channel-bits-badge-unlocks": func(f []string) (Topic, error) {
		if len(f) != 1 {
			return nil, arityError("channel-bits-badge-unlocks", 1, len(f))
		}
		return ChannelBitsBadgeUnlocks{ChannelID: ids.BroadcasterID(f[0])}, nil
	},
	"chat_moderator_actions": func(f []string) (Topic, error) {
		if len(f) != 2 {
			return nil, arityError("chat_moderator_actions", 2, len(f))
		}
		return ChatModeratorActions{UserID: ids.UserID(f[0]), ChannelID: ids.BroadcasterID(f[1])}, nil
	},
	"channel-subscribe-events-v1": func(f []string) (Topic, error) {
		if len(f) != 1 {
			return nil, arityError("channel-subscribe-events-v1", 1, len(f))
		}
		return ChannelSubscribeEventsV1{ChannelID: ids.BroadcasterID(f[0])}, nil
	},
}

func arityError(prefix string, want, got int) error {
	return fmt.Errorf("pubsub: topic %q expects %d field(s), got %d", prefix, want, got)
}

// UnknownTopicError is returned by Parse for a prefix with no
// registered parser.
type UnknownTopicError struct{ Raw string }

func (e *UnknownTopicError) Error() string { return fmt.Sprintf("pubsub: unknown topic %q", e.Raw) }

// ParseTopic splits a rendered topic string and dispatches to the
// parser registered for its prefix. The codec is total and bijective
// over the topics this package knows: Parse(Render(t)) == t.
func ParseTopic(raw string) (Topic, error) {
	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return nil, &UnknownTopicError{Raw: raw}
	}
	prefix := parts[0]
	p, ok := parsers[prefix]
	if !ok {
		return nil, &UnknownTopicError{Raw: raw}
	}
	return p(parts[1:])
}
