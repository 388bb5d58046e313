package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// Stream is the Get Streams response record.
type Stream struct {
	ID           ids.StreamID      `json:"id"`
	UserID       ids.UserID        `json:"user_id"`
	UserLogin    ids.Login         `json:"user_login"`
	UserName     ids.DisplayName   `json:"user_name"`
	GameID       ids.CategoryID    `json:"game_id"`
	GameName     string            `json:"game_name"`
	Type         string            `json:"type"`
	Title        string            `json:"title"`
	ViewerCount  int               `json:"viewer_count"`
	StartedAt    string            `json:"started_at"`
	Language     string            `json:"language"`
	ThumbnailURL string            `json:"thumbnail_url"`
	Tags         []string          `json:"tags"`
	IsMature     bool              `json:"is_mature"`
}

// GetStreamsRequest is GET /streams, the canonical paginated request
// (spec §8 scenario 3).
type GetStreamsRequest struct {
	UserIDs    []ids.UserID   `query:"user_id"`
	UserLogins []ids.Login    `query:"user_login"`
	GameIDs    []ids.CategoryID `query:"game_id"`
	First      *int           `query:"first"`
	After      *ids.Cursor    `query:"after"`
}

func (r GetStreamsRequest) HTTPMethod() string              { return "GET" }
func (r GetStreamsRequest) Path() string                    { return "streams" }
func (r GetStreamsRequest) RequiredScope() ScopeRequirement { return NoScope{} }
func (r GetStreamsRequest) QueryValue() interface{}          { return r }
func (r GetStreamsRequest) BodyValue() (interface{}, bool)   { return nil, false }
func (r *GetStreamsRequest) SetAfter(c ids.Cursor)           { r.After = &c }

// GetStreams fetches one page of live streams.
func (c *Client) GetStreams(ctx context.Context, req GetStreamsRequest) ([]Stream, *Pagination, error) {
	return ExecuteList[Stream](ctx, c, req)
}

// StreamsPaginator returns a Paginator walking every page of live streams
// matching req, stopping when a response carries no cursor (spec §4.4
// step 6, §8 scenario 3).
func (c *Client) StreamsPaginator(req *GetStreamsRequest) *Paginator[Stream] {
	return NewPaginator[Stream](c, req)
}
