package eventsub

import (
	"encoding/json"
	"fmt"
)

// key discriminates the event sum by (type, version), per spec §4.5.
type key struct {
	Type    string
	Version string
}

// decoder unmarshals a raw event payload into its declared variant.
type decoder func(raw []byte) (interface{}, error)

var registry = map[key]decoder{
	{"channel.follow", "2"}: decodeAs[ChannelFollowEvent],
	{"channel.raid", "1"}:   decodeAs[ChannelRaidEvent],
	{"channel.subscribe", "1"}:             decodeAs[ChannelSubscribeEvent],
	{"channel.subscription.gift", "1"}:     decodeAs[ChannelSubscriptionGiftEvent],
	{"channel.subscription.message", "1"}:  decodeAs[ChannelSubscriptionMessageEvent],
	{"channel.cheer", "1"}:                 decodeAs[ChannelCheerEvent],
	{"channel.ban", "1"}:                   decodeAs[ChannelBanEvent],
	{"channel.unban", "1"}:                 decodeAs[ChannelUnbanEvent],
	{"channel.chat.message", "1"}:          decodeAs[ChannelChatMessageEvent],
	{"channel.chat.notification", "1"}:     decodeAs[ChannelChatNotificationEvent],
	{"automod.message.hold", "1"}:          decodeAs[AutomodMessageHoldEvent],
	{"automod.message.hold", "2"}:          decodeAs[AutomodMessageHoldV2Event],
	{"stream.online", "1"}:                 decodeAs[StreamOnlineEvent],
	{"stream.offline", "1"}:                decodeAs[StreamOfflineEvent],
}

func decodeAs[T any](raw []byte) (interface{}, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("eventsub: decode %T: %w", v, err)
	}
	return v, nil
}

// DecodePayload selects the variant for (eventType, version) and decodes
// raw into it. An unrecognized pair decodes into Unknown rather than
// failing, so old builds keep running against new server-side types
// (spec §9 "open sums").
func DecodePayload(eventType, version string, raw []byte) (interface{}, error) {
	dec, ok := registry[key{eventType, version}]
	if !ok {
		return Unknown{Type: eventType, Version: version, Raw: raw}, nil
	}
	v, err := dec(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Registered reports whether (eventType, version) has a known payload
// variant, without decoding anything.
func Registered(eventType, version string) bool {
	_, ok := registry[key{eventType, version}]
	return ok
}
