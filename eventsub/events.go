package eventsub

import "github.com/twitch-rs/twitch-api-sub001/ids"

// ChannelFollowEvent is the payload for channel.follow v2.
type ChannelFollowEvent struct {
	UserID               ids.UserID        `json:"user_id"`
	UserLogin            ids.Login         `json:"user_login"`
	UserName             ids.DisplayName   `json:"user_name"`
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
	FollowedAt           string            `json:"followed_at"`
}

// ChannelRaidEvent is the payload for channel.raid v1.
type ChannelRaidEvent struct {
	FromBroadcasterUserID    ids.BroadcasterID `json:"from_broadcaster_user_id"`
	FromBroadcasterUserLogin ids.Login         `json:"from_broadcaster_user_login"`
	FromBroadcasterUserName  ids.DisplayName   `json:"from_broadcaster_user_name"`
	ToBroadcasterUserID      ids.BroadcasterID `json:"to_broadcaster_user_id"`
	ToBroadcasterUserLogin   ids.Login         `json:"to_broadcaster_user_login"`
	ToBroadcasterUserName    ids.DisplayName   `json:"to_broadcaster_user_name"`
	Viewers                  int               `json:"viewers"`
}

// ChannelSubscribeEvent is the payload for channel.subscribe v1.
type ChannelSubscribeEvent struct {
	UserID               ids.UserID        `json:"user_id"`
	UserLogin            ids.Login         `json:"user_login"`
	UserName             ids.DisplayName   `json:"user_name"`
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
	Tier                 string            `json:"tier"`
	IsGift               bool              `json:"is_gift"`
}

// ChannelSubscriptionGiftEvent is the payload for
// channel.subscription.gift v1. UserID/UserLogin/UserName are empty
// when IsAnonymous is true.
type ChannelSubscriptionGiftEvent struct {
	UserID               ids.UserID        `json:"user_id"`
	UserLogin            ids.Login         `json:"user_login"`
	UserName             ids.DisplayName   `json:"user_name"`
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
	Total                int               `json:"total"`
	Tier                 string            `json:"tier"`
	IsAnonymous          bool              `json:"is_anonymous"`
}

// ChannelSubscriptionMessageEvent is the payload for
// channel.subscription.message v1.
type ChannelSubscriptionMessageEvent struct {
	UserID               ids.UserID        `json:"user_id"`
	UserLogin            ids.Login         `json:"user_login"`
	UserName             ids.DisplayName   `json:"user_name"`
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
	Tier                 string            `json:"tier"`
	Message              struct {
		Text string `json:"text"`
	} `json:"message"`
	CumulativeMonths int `json:"cumulative_months"`
	StreakMonths     int `json:"streak_months"`
	DurationMonths   int `json:"duration_months"`
}

// ChannelCheerEvent is the payload for channel.cheer v1.
type ChannelCheerEvent struct {
	IsAnonymous          bool              `json:"is_anonymous"`
	UserID               ids.UserID        `json:"user_id"`
	UserLogin            ids.Login         `json:"user_login"`
	UserName             ids.DisplayName   `json:"user_name"`
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
	Message              string            `json:"message"`
	Bits                 int               `json:"bits"`
}

// ChannelBanEvent is the payload for channel.ban v1.
type ChannelBanEvent struct {
	UserID               ids.UserID        `json:"user_id"`
	UserLogin            ids.Login         `json:"user_login"`
	UserName             ids.DisplayName   `json:"user_name"`
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
	ModeratorUserID      ids.ModeratorID   `json:"moderator_user_id"`
	Reason               string            `json:"reason"`
	EndsAt               string            `json:"ends_at"`
	IsPermanent          bool              `json:"is_permanent"`
}

// ChannelUnbanEvent is the payload for channel.unban v1.
type ChannelUnbanEvent struct {
	UserID               ids.UserID        `json:"user_id"`
	UserLogin            ids.Login         `json:"user_login"`
	UserName             ids.DisplayName   `json:"user_name"`
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
	ModeratorUserID      ids.ModeratorID   `json:"moderator_user_id"`
}

// ChannelChatMessageEvent is the payload for channel.chat.message v1.
type ChannelChatMessageEvent struct {
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	ChatterUserID        ids.UserID        `json:"chatter_user_id"`
	ChatterUserLogin     ids.Login         `json:"chatter_user_login"`
	ChatterUserName      ids.DisplayName   `json:"chatter_user_name"`
	MessageID            ids.MessageID     `json:"message_id"`
	Message              struct {
		Text string `json:"text"`
	} `json:"message"`
	MessageType string `json:"message_type"`
}

// ChannelChatNotificationEvent is the payload for
// channel.chat.notification v1 — covers resubs, raids, gifted subs,
// etc. surfaced directly in chat rather than as separate event types.
type ChannelChatNotificationEvent struct {
	BroadcasterUserID ids.BroadcasterID `json:"broadcaster_user_id"`
	ChatterUserID     ids.UserID        `json:"chatter_user_id"`
	ChatterUserName   ids.DisplayName   `json:"chatter_user_name"`
	NoticeType        string            `json:"notice_type"`
	SystemMessage     string            `json:"system_message"`
}

// AutomodMessageHoldEvent is the payload for automod.message.hold v1.
type AutomodMessageHoldEvent struct {
	BroadcasterUserID ids.BroadcasterID `json:"broadcaster_user_id"`
	UserID            ids.UserID        `json:"user_id"`
	UserLogin         ids.Login         `json:"user_login"`
	MessageID         ids.MessageID     `json:"message_id"`
	Message           struct {
		Text string `json:"text"`
	} `json:"message"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

// AutomodMessageHoldV2Event is the payload for automod.message.hold v2,
// which replaces the single category/level pair with a boundary list —
// a distinct payload shape from v1, per spec §4.5's "two versions of
// the same type are distinct variants."
type AutomodMessageHoldV2Event struct {
	BroadcasterUserID ids.BroadcasterID `json:"broadcaster_user_id"`
	UserID            ids.UserID        `json:"user_id"`
	UserLogin         ids.Login         `json:"user_login"`
	MessageID         ids.MessageID     `json:"message_id"`
	Message           struct {
		Text string `json:"text"`
	} `json:"message"`
	Reason  string `json:"reason"`
	Boundaries []struct {
		StartPos int    `json:"start_pos"`
		EndPos   int    `json:"end_pos"`
		Category string `json:"category"`
	} `json:"boundaries"`
}

// StreamOnlineEvent is the payload for stream.online v1.
type StreamOnlineEvent struct {
	ID                   ids.StreamID      `json:"id"`
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
	Type                 string            `json:"type"`
	StartedAt            string            `json:"started_at"`
}

// StreamOfflineEvent is the payload for stream.offline v1.
type StreamOfflineEvent struct {
	BroadcasterUserID    ids.BroadcasterID `json:"broadcaster_user_id"`
	BroadcasterUserLogin ids.Login         `json:"broadcaster_user_login"`
	BroadcasterUserName  ids.DisplayName   `json:"broadcaster_user_name"`
}

// Unknown is the forward-compatibility fallthrough variant (spec §9
// "open sums"): any (type, version) pair the registry does not
// recognize decodes into this instead of failing outright.
type Unknown struct {
	Type    string
	Version string
	Raw     []byte
}
