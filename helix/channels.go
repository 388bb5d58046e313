package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// ChannelInformation is the Get Channel Information response record.
type ChannelInformation struct {
	BroadcasterID       ids.BroadcasterID  `json:"broadcaster_id"`
	BroadcasterLogin    ids.Login          `json:"broadcaster_login"`
	BroadcasterName     ids.DisplayName    `json:"broadcaster_name"`
	BroadcasterLanguage string             `json:"broadcaster_language"`
	GameID              ids.CategoryID     `json:"game_id"`
	GameName            string             `json:"game_name"`
	Title               string             `json:"title"`
	Delay               int                `json:"delay"`
	Tags                []string           `json:"tags"`
}

// GetChannelInformationRequest is GET /channels.
type GetChannelInformationRequest struct {
	BroadcasterIDs []ids.BroadcasterID `query:"broadcaster_id"`
}

func (r GetChannelInformationRequest) HTTPMethod() string              { return "GET" }
func (r GetChannelInformationRequest) Path() string                    { return "channels" }
func (r GetChannelInformationRequest) RequiredScope() ScopeRequirement { return NoScope{} }
func (r GetChannelInformationRequest) QueryValue() interface{}         { return r }
func (r GetChannelInformationRequest) BodyValue() (interface{}, bool)  { return nil, false }

// GetChannelInformation fetches channel information for up to 100 channels.
func (c *Client) GetChannelInformation(ctx context.Context, req GetChannelInformationRequest) ([]ChannelInformation, error) {
	items, _, err := ExecuteList[ChannelInformation](ctx, c, req)
	return items, err
}

// ModifyChannelInformationBody is the request body for PATCH /channels.
type ModifyChannelInformationBody struct {
	GameID              *ids.CategoryID `json:"game_id,omitempty"`
	BroadcasterLanguage *string         `json:"broadcaster_language,omitempty"`
	Title               *string         `json:"title,omitempty"`
	Delay               *int            `json:"delay,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
}

// ModifyChannelInformationRequest is PATCH /channels (spec §8 scenario 2:
// 204 classifies to Success, 400 classifies to an HTTPError the caller
// can match on Status == 400).
type ModifyChannelInformationRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	Body          ModifyChannelInformationBody
}

func (r ModifyChannelInformationRequest) HTTPMethod() string { return "PATCH" }
func (r ModifyChannelInformationRequest) Path() string       { return "channels" }
func (r ModifyChannelInformationRequest) RequiredScope() ScopeRequirement {
	return Scope("channel:manage:broadcast")
}
func (r ModifyChannelInformationRequest) QueryValue() interface{} {
	return struct {
		BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	}{r.BroadcasterID}
}
func (r ModifyChannelInformationRequest) BodyValue() (interface{}, bool) { return r.Body, true }

// ModifyChannelInformation updates one or more channel fields. The
// returned StatusResult.Success() is true for any 2xx status (Twitch
// answers 204).
func (c *Client) ModifyChannelInformation(ctx context.Context, req ModifyChannelInformationRequest) (StatusResult, error) {
	return ExecuteStatus(ctx, c, req)
}
