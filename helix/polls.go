package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// PollChoice is one answer option of a Poll, with live vote counts once
// the poll is running or ended.
type PollChoice struct {
	ID                 ids.PollChoiceID `json:"id"`
	Title              string           `json:"title"`
	Votes              int              `json:"votes"`
	ChannelPointsVotes int              `json:"channel_points_votes"`
}

// Poll is the Get Polls / Create Poll / End Poll response record.
type Poll struct {
	ID                   ids.PollID        `json:"id"`
	BroadcasterID        ids.BroadcasterID `json:"broadcaster_id"`
	Title                string            `json:"title"`
	Choices              []PollChoice      `json:"choices"`
	Status               string            `json:"status"`
	Duration             int               `json:"duration"`
	StartedAt            string            `json:"started_at"`
	EndedAt              string            `json:"ended_at"`
}

// GetPollsRequest is GET /polls (paginated).
type GetPollsRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	IDs           []ids.PollID      `query:"id"`
	First         *int              `query:"first"`
	After         *ids.Cursor       `query:"after"`
}

func (r GetPollsRequest) HTTPMethod() string              { return "GET" }
func (r GetPollsRequest) Path() string                    { return "polls" }
func (r GetPollsRequest) RequiredScope() ScopeRequirement { return Scope("channel:read:polls") }
func (r GetPollsRequest) QueryValue() interface{}          { return r }
func (r GetPollsRequest) BodyValue() (interface{}, bool)   { return nil, false }
func (r *GetPollsRequest) SetAfter(c ids.Cursor)           { r.After = &c }

// PollsPaginator walks every page of a channel's polls.
func (c *Client) PollsPaginator(req *GetPollsRequest) *Paginator[Poll] {
	return NewPaginator[Poll](c, req)
}

// CreatePollBody is the request body for Create Poll.
type CreatePollBody struct {
	BroadcasterID ids.BroadcasterID `json:"broadcaster_id"`
	Title         string            `json:"title"`
	Choices       []struct {
		Title string `json:"title"`
	} `json:"choices"`
	Duration int `json:"duration"`
}

// CreatePollRequest is POST /polls.
type CreatePollRequest struct {
	Body CreatePollBody
}

func (r CreatePollRequest) HTTPMethod() string              { return "POST" }
func (r CreatePollRequest) Path() string                    { return "polls" }
func (r CreatePollRequest) RequiredScope() ScopeRequirement { return Scope("channel:manage:polls") }
func (r CreatePollRequest) QueryValue() interface{}         { return nil }
func (r CreatePollRequest) BodyValue() (interface{}, bool)  { return r.Body, true }

// CreatePoll starts a new channel poll.
func (c *Client) CreatePoll(ctx context.Context, req CreatePollRequest) (Poll, error) {
	return ExecuteSingle[Poll](ctx, c, req)
}

// EndPollBody is the request body for End Poll.
type EndPollBody struct {
	BroadcasterID ids.BroadcasterID `json:"broadcaster_id"`
	ID            ids.PollID        `json:"id"`
	Status        string            `json:"status"` // TERMINATED or ARCHIVED
}

// EndPollRequest is PATCH /polls.
type EndPollRequest struct {
	Body EndPollBody
}

func (r EndPollRequest) HTTPMethod() string              { return "PATCH" }
func (r EndPollRequest) Path() string                    { return "polls" }
func (r EndPollRequest) RequiredScope() ScopeRequirement { return Scope("channel:manage:polls") }
func (r EndPollRequest) QueryValue() interface{}         { return nil }
func (r EndPollRequest) BodyValue() (interface{}, bool)  { return r.Body, true }

// EndPoll terminates or archives a running poll early.
func (c *Client) EndPoll(ctx context.Context, req EndPollRequest) (Poll, error) {
	return ExecuteSingle[Poll](ctx, c, req)
}
