// Package ids provides nominally distinct string identifiers for every
// categorical entity Helix, EventSub and PubSub hand around, so that the
// compiler rejects passing a VideoID where a UserID is expected.
package ids

// ID is implemented by every identifier type in this package. It carries
// no validation beyond "is a string" — Twitch owns the wire format.
type ID interface {
	~string
	String() string
}

// Each identifier kind below is a distinct thin string wrapper. Go has
// no macro system, so each type is spelled out by hand; this keeps
// the family open to per-kind methods later without touching callers.

// UserID identifies a Twitch account, in whatever role it plays in a
// given request (viewer, chatter, gifter, …).
type UserID string

func (id UserID) String() string { return string(id) }

// MarshalText implements encoding.TextMarshaler for transparent round-trip
// through JSON object fields and query values.
func (id UserID) MarshalText() ([]byte, error) { return []byte(id), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *UserID) UnmarshalText(b []byte) error { *id = UserID(b); return nil }

// BroadcasterID identifies the channel owner a request or condition is
// scoped to. Kept distinct from UserID so a function signature like
// Timeout(channel BroadcasterID, user UserID, d time.Duration) rejects
// argument swaps at compile time.
type BroadcasterID string

func (id BroadcasterID) String() string                { return string(id) }
func (id BroadcasterID) MarshalText() ([]byte, error)   { return []byte(id), nil }
func (id *BroadcasterID) UnmarshalText(b []byte) error  { *id = BroadcasterID(b); return nil }

// ModeratorID identifies the moderator account performing or required by
// a moderation-scoped request.
type ModeratorID string

func (id ModeratorID) String() string              { return string(id) }
func (id ModeratorID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *ModeratorID) UnmarshalText(b []byte) error { *id = ModeratorID(b); return nil }

// Login is a user's lowercase handle, distinct from DisplayName and UserID.
type Login string

func (l Login) String() string                 { return string(l) }
func (l Login) MarshalText() ([]byte, error)    { return []byte(l), nil }
func (l *Login) UnmarshalText(b []byte) error   { *l = Login(b); return nil }

// DisplayName is a user's cased, possibly localized, display handle.
type DisplayName string

func (d DisplayName) String() string               { return string(d) }
func (d DisplayName) MarshalText() ([]byte, error) { return []byte(d), nil }
func (d *DisplayName) UnmarshalText(b []byte) error { *d = DisplayName(b); return nil }

// CategoryID identifies a game/category.
type CategoryID string

func (id CategoryID) String() string               { return string(id) }
func (id CategoryID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *CategoryID) UnmarshalText(b []byte) error { *id = CategoryID(b); return nil }

// VideoID identifies a VOD or highlight.
type VideoID string

func (id VideoID) String() string               { return string(id) }
func (id VideoID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *VideoID) UnmarshalText(b []byte) error { *id = VideoID(b); return nil }

// StreamID identifies a single live broadcast session.
type StreamID string

func (id StreamID) String() string               { return string(id) }
func (id StreamID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *StreamID) UnmarshalText(b []byte) error { *id = StreamID(b); return nil }

// MessageID identifies a chat message.
type MessageID string

func (id MessageID) String() string               { return string(id) }
func (id MessageID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *MessageID) UnmarshalText(b []byte) error { *id = MessageID(b); return nil }

// RewardID identifies a channel-points custom reward.
type RewardID string

func (id RewardID) String() string               { return string(id) }
func (id RewardID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *RewardID) UnmarshalText(b []byte) error { *id = RewardID(b); return nil }

// RedemptionID identifies a single channel-points redemption.
type RedemptionID string

func (id RedemptionID) String() string               { return string(id) }
func (id RedemptionID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *RedemptionID) UnmarshalText(b []byte) error { *id = RedemptionID(b); return nil }

// PollID identifies a channel poll.
type PollID string

func (id PollID) String() string               { return string(id) }
func (id PollID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *PollID) UnmarshalText(b []byte) error { *id = PollID(b); return nil }

// PollChoiceID identifies one choice within a poll.
type PollChoiceID string

func (id PollChoiceID) String() string               { return string(id) }
func (id PollChoiceID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *PollChoiceID) UnmarshalText(b []byte) error { *id = PollChoiceID(b); return nil }

// PredictionID identifies a channel points prediction.
type PredictionID string

func (id PredictionID) String() string               { return string(id) }
func (id PredictionID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *PredictionID) UnmarshalText(b []byte) error { *id = PredictionID(b); return nil }

// PredictionOutcomeID identifies one outcome within a prediction.
type PredictionOutcomeID string

func (id PredictionOutcomeID) String() string               { return string(id) }
func (id PredictionOutcomeID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *PredictionOutcomeID) UnmarshalText(b []byte) error {
	*id = PredictionOutcomeID(b)
	return nil
}

// TeamID identifies a Twitch team.
type TeamID string

func (id TeamID) String() string               { return string(id) }
func (id TeamID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *TeamID) UnmarshalText(b []byte) error { *id = TeamID(b); return nil }

// TagID identifies a stream tag.
type TagID string

func (id TagID) String() string               { return string(id) }
func (id TagID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *TagID) UnmarshalText(b []byte) error { *id = TagID(b); return nil }

// ClipID identifies a clip.
type ClipID string

func (id ClipID) String() string               { return string(id) }
func (id ClipID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *ClipID) UnmarshalText(b []byte) error { *id = ClipID(b); return nil }

// EmoteID identifies a single emote.
type EmoteID string

func (id EmoteID) String() string               { return string(id) }
func (id EmoteID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *EmoteID) UnmarshalText(b []byte) error { *id = EmoteID(b); return nil }

// EmoteSetID identifies a group of emotes.
type EmoteSetID string

func (id EmoteSetID) String() string               { return string(id) }
func (id EmoteSetID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *EmoteSetID) UnmarshalText(b []byte) error { *id = EmoteSetID(b); return nil }

// BadgeSetID identifies a badge family (e.g. "subscriber").
type BadgeSetID string

func (id BadgeSetID) String() string               { return string(id) }
func (id BadgeSetID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *BadgeSetID) UnmarshalText(b []byte) error { *id = BadgeSetID(b); return nil }

// ChatBadgeID identifies one version within a badge set.
type ChatBadgeID string

func (id ChatBadgeID) String() string               { return string(id) }
func (id ChatBadgeID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *ChatBadgeID) UnmarshalText(b []byte) error { *id = ChatBadgeID(b); return nil }

// ExtensionID identifies a Twitch extension.
type ExtensionID string

func (id ExtensionID) String() string               { return string(id) }
func (id ExtensionID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *ExtensionID) UnmarshalText(b []byte) error { *id = ExtensionID(b); return nil }

// SubscriptionID identifies an EventSub subscription.
type SubscriptionID string

func (id SubscriptionID) String() string               { return string(id) }
func (id SubscriptionID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *SubscriptionID) UnmarshalText(b []byte) error { *id = SubscriptionID(b); return nil }

// StreamMarkerID identifies a stream marker.
type StreamMarkerID string

func (id StreamMarkerID) String() string               { return string(id) }
func (id StreamMarkerID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *StreamMarkerID) UnmarshalText(b []byte) error { *id = StreamMarkerID(b); return nil }

// CommunityGiftID identifies a batch of gifted subscriptions.
type CommunityGiftID string

func (id CommunityGiftID) String() string               { return string(id) }
func (id CommunityGiftID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *CommunityGiftID) UnmarshalText(b []byte) error { *id = CommunityGiftID(b); return nil }

// UnbanRequestID identifies a moderator unban request.
type UnbanRequestID string

func (id UnbanRequestID) String() string               { return string(id) }
func (id UnbanRequestID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *UnbanRequestID) UnmarshalText(b []byte) error { *id = UnbanRequestID(b); return nil }

// StreamSegmentID identifies a scheduled broadcast segment.
type StreamSegmentID string

func (id StreamSegmentID) String() string               { return string(id) }
func (id StreamSegmentID) MarshalText() ([]byte, error) { return []byte(id), nil }
func (id *StreamSegmentID) UnmarshalText(b []byte) error { *id = StreamSegmentID(b); return nil }

// Cursor is an opaque pagination position.
type Cursor string

func (c Cursor) String() string               { return string(c) }
func (c Cursor) MarshalText() ([]byte, error) { return []byte(c), nil }
func (c *Cursor) UnmarshalText(b []byte) error { *c = Cursor(b); return nil }

// Empty reports whether the ID carries no value (the empty string).
func Empty[T ~string](id T) bool { return string(id) == "" }
