package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// BanUserBody is the nested "data" body Twitch requires for Ban User.
type BanUserBody struct {
	UserID   ids.UserID `json:"user_id"`
	Duration *int       `json:"duration,omitempty"` // omitted => permanent ban
	Reason   string     `json:"reason,omitempty"`
}

// banUserEnvelope wraps a single-item body as `{"data":[...]}`, the
// shape several POST endpoints (including this one) require even for a
// single logical record (spec §4.3 "Body type").
type banUserEnvelope struct {
	Data [1]BanUserBody `json:"data"`
}

// BanResponse is the Ban User / Timeout response record.
type BanResponse struct {
	BroadcasterID ids.BroadcasterID `json:"broadcaster_id"`
	ModeratorID   ids.ModeratorID   `json:"moderator_id"`
	UserID        ids.UserID        `json:"user_id"`
	CreatedAt     string            `json:"created_at"`
	EndTime       string            `json:"end_time"`
}

// BanUserRequest is POST /moderation/bans. A nil Duration permanently
// bans the user; a non-nil Duration times them out for that many
// seconds — the same endpoint serves both per Twitch's own design.
type BanUserRequest struct {
	BroadcasterID ids.BroadcasterID
	ModeratorID   ids.ModeratorID
	Body          BanUserBody
}

func (r BanUserRequest) HTTPMethod() string              { return "POST" }
func (r BanUserRequest) Path() string                    { return "moderation/bans" }
func (r BanUserRequest) RequiredScope() ScopeRequirement { return Scope("moderator:manage:banned_users") }
func (r BanUserRequest) QueryValue() interface{} {
	return struct {
		BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
		ModeratorID   ids.ModeratorID   `query:"moderator_id"`
	}{r.BroadcasterID, r.ModeratorID}
}
func (r BanUserRequest) BodyValue() (interface{}, bool) {
	return banUserEnvelope{Data: [1]BanUserBody{r.Body}}, true
}

// BanUser bans or times out a user. The request's distinct
// ids.BroadcasterID/ids.UserID field types reject mixing the two at
// compile time (spec §4.1).
func (c *Client) BanUser(ctx context.Context, req BanUserRequest) (BanResponse, error) {
	return ExecuteSingle[BanResponse](ctx, c, req)
}

// UnbanUserRequest is DELETE /moderation/bans.
type UnbanUserRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	ModeratorID   ids.ModeratorID   `query:"moderator_id"`
	UserID        ids.UserID        `query:"user_id"`
}

func (r UnbanUserRequest) HTTPMethod() string              { return "DELETE" }
func (r UnbanUserRequest) Path() string                    { return "moderation/bans" }
func (r UnbanUserRequest) RequiredScope() ScopeRequirement { return Scope("moderator:manage:banned_users") }
func (r UnbanUserRequest) QueryValue() interface{}         { return r }
func (r UnbanUserRequest) BodyValue() (interface{}, bool)  { return nil, false }

// UnbanUser lifts a ban or timeout early. Success is a 204.
func (c *Client) UnbanUser(ctx context.Context, req UnbanUserRequest) (StatusResult, error) {
	return ExecuteStatus(ctx, c, req)
}

// Moderator is a Get Moderators response record.
type Moderator struct {
	UserID    ids.UserID      `json:"user_id"`
	UserLogin ids.Login       `json:"user_login"`
	UserName  ids.DisplayName `json:"user_name"`
}

// GetModeratorsRequest is GET /moderation/moderators (paginated).
type GetModeratorsRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	UserIDs       []ids.UserID      `query:"user_id"`
	First         *int              `query:"first"`
	After         *ids.Cursor       `query:"after"`
}

func (r GetModeratorsRequest) HTTPMethod() string              { return "GET" }
func (r GetModeratorsRequest) Path() string                    { return "moderation/moderators" }
func (r GetModeratorsRequest) RequiredScope() ScopeRequirement { return Scope("moderation:read") }
func (r GetModeratorsRequest) QueryValue() interface{}          { return r }
func (r GetModeratorsRequest) BodyValue() (interface{}, bool)   { return nil, false }
func (r *GetModeratorsRequest) SetAfter(c ids.Cursor)            { r.After = &c }

// ModeratorsPaginator walks every page of a channel's moderators.
func (c *Client) ModeratorsPaginator(req *GetModeratorsRequest) *Paginator[Moderator] {
	return NewPaginator[Moderator](c, req)
}
