package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// SendChatMessageBody is the request body for Send Chat Message.
type SendChatMessageBody struct {
	BroadcasterID   ids.BroadcasterID `json:"broadcaster_id"`
	SenderID        ids.UserID        `json:"sender_id"`
	Message         string            `json:"message"`
	ReplyParentMessageID ids.MessageID `json:"reply_parent_message_id,omitempty"`
}

// SentMessage is the Send Chat Message response record.
type SentMessage struct {
	MessageID  ids.MessageID `json:"message_id"`
	IsSent     bool          `json:"is_sent"`
	DropReason *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"drop_reason,omitempty"`
}

// SendChatMessageRequest is POST /chat/messages. Unlike most write
// endpoints, Twitch's chat-message body is a bare object rather than a
// {"data": [...]} envelope, so BodyValue returns Body unwrapped (spec
// §4.3's body shape is a per-request contract, not a blanket rule).
type SendChatMessageRequest struct {
	Body SendChatMessageBody
}

func (r SendChatMessageRequest) HTTPMethod() string              { return "POST" }
func (r SendChatMessageRequest) Path() string                    { return "chat/messages" }
func (r SendChatMessageRequest) RequiredScope() ScopeRequirement { return Scope("user:write:chat") }
func (r SendChatMessageRequest) QueryValue() interface{}         { return nil }
func (r SendChatMessageRequest) BodyValue() (interface{}, bool)  { return r.Body, true }

// SendChatMessage sends a chat message as SenderID into BroadcasterID's
// channel.
func (c *Client) SendChatMessage(ctx context.Context, req SendChatMessageRequest) (SentMessage, error) {
	return ExecuteSingle[SentMessage](ctx, c, req)
}

// ChatBadgeVersion mirrors Get Channel Chat Badges / Get Global Chat Badges
// version entries.
type ChatBadgeVersion struct {
	ID       ids.ChatBadgeID `json:"id"`
	ImageURL1x string        `json:"image_url_1x"`
	ImageURL2x string        `json:"image_url_2x"`
	ImageURL4x string        `json:"image_url_4x"`
}

// ChatBadgeSet is one badge family (e.g. "subscriber") and its versions.
type ChatBadgeSet struct {
	SetID    ids.BadgeSetID     `json:"set_id"`
	Versions []ChatBadgeVersion `json:"versions"`
}

// GetChannelChatBadgesRequest is GET /chat/badges.
type GetChannelChatBadgesRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
}

func (r GetChannelChatBadgesRequest) HTTPMethod() string              { return "GET" }
func (r GetChannelChatBadgesRequest) Path() string                    { return "chat/badges" }
func (r GetChannelChatBadgesRequest) RequiredScope() ScopeRequirement { return NoScope{} }
func (r GetChannelChatBadgesRequest) QueryValue() interface{}         { return r }
func (r GetChannelChatBadgesRequest) BodyValue() (interface{}, bool)  { return nil, false }

// GetChannelChatBadges lists a channel's custom chat badges.
func (c *Client) GetChannelChatBadges(ctx context.Context, req GetChannelChatBadgesRequest) ([]ChatBadgeSet, error) {
	items, _, err := ExecuteList[ChatBadgeSet](ctx, c, req)
	return items, err
}
