package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// PredictionOutcome is one possible outcome of a Prediction, with live
// point totals once the prediction is locked or resolved.
type PredictionOutcome struct {
	ID            ids.PredictionOutcomeID `json:"id"`
	Title         string                  `json:"title"`
	Users         int                     `json:"users"`
	ChannelPoints int                     `json:"channel_points"`
	Color         string                  `json:"color"`
}

// Prediction is the Get/Create/End Predictions response record.
type Prediction struct {
	ID                   ids.PredictionID  `json:"id"`
	BroadcasterID        ids.BroadcasterID `json:"broadcaster_id"`
	Title                string            `json:"title"`
	WinningOutcomeID     ids.PredictionOutcomeID `json:"winning_outcome_id"`
	Outcomes             []PredictionOutcome `json:"outcomes"`
	PredictionWindow     int               `json:"prediction_window"`
	Status               string            `json:"status"`
	CreatedAt            string            `json:"created_at"`
	EndedAt              string            `json:"ended_at"`
}

// GetPredictionsRequest is GET /predictions (paginated).
type GetPredictionsRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	IDs           []ids.PredictionID `query:"id"`
	First         *int              `query:"first"`
	After         *ids.Cursor       `query:"after"`
}

func (r GetPredictionsRequest) HTTPMethod() string { return "GET" }
func (r GetPredictionsRequest) Path() string       { return "predictions" }
func (r GetPredictionsRequest) RequiredScope() ScopeRequirement {
	return Scope("channel:read:predictions")
}
func (r GetPredictionsRequest) QueryValue() interface{}        { return r }
func (r GetPredictionsRequest) BodyValue() (interface{}, bool) { return nil, false }
func (r *GetPredictionsRequest) SetAfter(c ids.Cursor)          { r.After = &c }

// PredictionsPaginator walks every page of a channel's predictions.
func (c *Client) PredictionsPaginator(req *GetPredictionsRequest) *Paginator[Prediction] {
	return NewPaginator[Prediction](c, req)
}

// CreatePredictionBody is the request body for Create Prediction.
type CreatePredictionBody struct {
	BroadcasterID ids.BroadcasterID `json:"broadcaster_id"`
	Title         string            `json:"title"`
	Outcomes      []struct {
		Title string `json:"title"`
	} `json:"outcomes"`
	PredictionWindow int `json:"prediction_window"`
}

// CreatePredictionRequest is POST /predictions.
type CreatePredictionRequest struct {
	Body CreatePredictionBody
}

func (r CreatePredictionRequest) HTTPMethod() string { return "POST" }
func (r CreatePredictionRequest) Path() string       { return "predictions" }
func (r CreatePredictionRequest) RequiredScope() ScopeRequirement {
	return Scope("channel:manage:predictions")
}
func (r CreatePredictionRequest) QueryValue() interface{}        { return nil }
func (r CreatePredictionRequest) BodyValue() (interface{}, bool) { return r.Body, true }

// CreatePrediction starts a new channel points prediction.
func (c *Client) CreatePrediction(ctx context.Context, req CreatePredictionRequest) (Prediction, error) {
	return ExecuteSingle[Prediction](ctx, c, req)
}

// EndPredictionBody is the request body for End Prediction.
type EndPredictionBody struct {
	BroadcasterID    ids.BroadcasterID       `json:"broadcaster_id"`
	ID               ids.PredictionID        `json:"id"`
	Status           string                  `json:"status"` // RESOLVED, CANCELED, or LOCKED
	WinningOutcomeID ids.PredictionOutcomeID `json:"winning_outcome_id,omitempty"`
}

// EndPredictionRequest is PATCH /predictions.
type EndPredictionRequest struct {
	Body EndPredictionBody
}

func (r EndPredictionRequest) HTTPMethod() string { return "PATCH" }
func (r EndPredictionRequest) Path() string       { return "predictions" }
func (r EndPredictionRequest) RequiredScope() ScopeRequirement {
	return Scope("channel:manage:predictions")
}
func (r EndPredictionRequest) QueryValue() interface{}        { return nil }
func (r EndPredictionRequest) BodyValue() (interface{}, bool) { return r.Body, true }

// EndPrediction locks, resolves, or cancels a running prediction.
func (c *Client) EndPrediction(ctx context.Context, req EndPredictionRequest) (Prediction, error) {
	return ExecuteSingle[Prediction](ctx, c, req)
}
