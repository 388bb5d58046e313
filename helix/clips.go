package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// Clip is the Get Clips response record.
type Clip struct {
	ID              ids.ClipID        `json:"id"`
	URL             string            `json:"url"`
	EmbedURL        string            `json:"embed_url"`
	BroadcasterID   ids.BroadcasterID `json:"broadcaster_id"`
	CreatorID       ids.UserID        `json:"creator_id"`
	VideoID         ids.VideoID       `json:"video_id"`
	GameID          ids.CategoryID    `json:"game_id"`
	Title           string            `json:"title"`
	ViewCount       int               `json:"view_count"`
	CreatedAt       string            `json:"created_at"`
	ThumbnailURL    string            `json:"thumbnail_url"`
	Duration        float64           `json:"duration"`
}

// GetClipsRequest is GET /clips (paginated).
type GetClipsRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	GameID        ids.CategoryID    `query:"game_id"`
	IDs           []ids.ClipID      `query:"id"`
	First         *int              `query:"first"`
	After         *ids.Cursor       `query:"after"`
}

func (r GetClipsRequest) HTTPMethod() string              { return "GET" }
func (r GetClipsRequest) Path() string                    { return "clips" }
func (r GetClipsRequest) RequiredScope() ScopeRequirement { return NoScope{} }
func (r GetClipsRequest) QueryValue() interface{}          { return r }
func (r GetClipsRequest) BodyValue() (interface{}, bool)   { return nil, false }
func (r *GetClipsRequest) SetAfter(c ids.Cursor)           { r.After = &c }

// ClipsPaginator walks every page of clips matching req.
func (c *Client) ClipsPaginator(req *GetClipsRequest) *Paginator[Clip] {
	return NewPaginator[Clip](c, req)
}

// CreatedClip is the Create Clip response record: Twitch returns an
// edit URL immediately and renders the clip asynchronously.
type CreatedClip struct {
	ID      ids.ClipID `json:"id"`
	EditURL string     `json:"edit_url"`
}

// CreateClipRequest is POST /clips.
type CreateClipRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	HasDelay      *bool             `query:"has_delay"`
}

func (r CreateClipRequest) HTTPMethod() string              { return "POST" }
func (r CreateClipRequest) Path() string                    { return "clips" }
func (r CreateClipRequest) RequiredScope() ScopeRequirement { return Scope("clips:edit") }
func (r CreateClipRequest) QueryValue() interface{}         { return r }
func (r CreateClipRequest) BodyValue() (interface{}, bool)  { return nil, false }

// CreateClip starts clip creation for the given broadcaster's stream.
func (c *Client) CreateClip(ctx context.Context, req CreateClipRequest) (CreatedClip, error) {
	return ExecuteSingle[CreatedClip](ctx, c, req)
}
