package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// CustomReward is the Channel Points custom reward response record.
type CustomReward struct {
	BroadcasterID       ids.BroadcasterID `json:"broadcaster_id"`
	ID                  ids.RewardID      `json:"id"`
	Title               string            `json:"title"`
	Prompt              string            `json:"prompt"`
	Cost                int               `json:"cost"`
	IsEnabled           bool              `json:"is_enabled"`
	IsPaused            bool              `json:"is_paused"`
	IsInStock           bool              `json:"is_in_stock"`
	ShouldRedemptionsSkipRequestQueue bool `json:"should_redemptions_skip_request_queue"`
}

// GetCustomRewardsRequest is GET /channel_points/custom_rewards.
type GetCustomRewardsRequest struct {
	BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	IDs           []ids.RewardID    `query:"id"`
	OnlyManageableRewards *bool     `query:"only_manageable_rewards"`
}

func (r GetCustomRewardsRequest) HTTPMethod() string { return "GET" }
func (r GetCustomRewardsRequest) Path() string       { return "channel_points/custom_rewards" }
func (r GetCustomRewardsRequest) RequiredScope() ScopeRequirement {
	return AnyScope{"channel:read:redemptions", "channel:manage:redemptions"}
}
func (r GetCustomRewardsRequest) QueryValue() interface{}        { return r }
func (r GetCustomRewardsRequest) BodyValue() (interface{}, bool) { return nil, false }

// GetCustomRewards lists a broadcaster's custom rewards.
func (c *Client) GetCustomRewards(ctx context.Context, req GetCustomRewardsRequest) ([]CustomReward, error) {
	items, _, err := ExecuteList[CustomReward](ctx, c, req)
	return items, err
}

// CreateCustomRewardBody is the request body for Create Custom Rewards.
type CreateCustomRewardBody struct {
	Title  string `json:"title"`
	Cost   int    `json:"cost"`
	Prompt string `json:"prompt,omitempty"`
}

// CreateCustomRewardRequest is POST /channel_points/custom_rewards.
type CreateCustomRewardRequest struct {
	BroadcasterID ids.BroadcasterID
	Body          CreateCustomRewardBody
}

func (r CreateCustomRewardRequest) HTTPMethod() string { return "POST" }
func (r CreateCustomRewardRequest) Path() string       { return "channel_points/custom_rewards" }
func (r CreateCustomRewardRequest) RequiredScope() ScopeRequirement {
	return Scope("channel:manage:redemptions")
}
func (r CreateCustomRewardRequest) QueryValue() interface{} {
	return struct {
		BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
	}{r.BroadcasterID}
}
func (r CreateCustomRewardRequest) BodyValue() (interface{}, bool) { return r.Body, true }

// CreateCustomReward creates a new channel points reward.
func (c *Client) CreateCustomReward(ctx context.Context, req CreateCustomRewardRequest) (CustomReward, error) {
	return ExecuteSingle[CustomReward](ctx, c, req)
}

// Redemption is a Channel Points redemption response record.
type Redemption struct {
	BroadcasterID ids.BroadcasterID  `json:"broadcaster_id"`
	ID            ids.RedemptionID   `json:"id"`
	UserID        ids.UserID         `json:"user_id"`
	UserLogin     ids.Login          `json:"user_login"`
	UserInput     string             `json:"user_input"`
	Status        string             `json:"status"`
	RewardID      ids.RewardID       `json:"reward"`
	RedeemedAt    string             `json:"redeemed_at"`
}

// UpdateRedemptionStatusBody is the request body for Update Redemption Status.
type UpdateRedemptionStatusBody struct {
	Status string `json:"status"` // FULFILLED or CANCELED
}

// UpdateRedemptionStatusRequest is PATCH
// /channel_points/custom_rewards/redemptions.
type UpdateRedemptionStatusRequest struct {
	ID            ids.RedemptionID
	BroadcasterID ids.BroadcasterID
	RewardID      ids.RewardID
	Body          UpdateRedemptionStatusBody
}

func (r UpdateRedemptionStatusRequest) HTTPMethod() string { return "PATCH" }
func (r UpdateRedemptionStatusRequest) Path() string {
	return "channel_points/custom_rewards/redemptions"
}
func (r UpdateRedemptionStatusRequest) RequiredScope() ScopeRequirement {
	return Scope("channel:manage:redemptions")
}
func (r UpdateRedemptionStatusRequest) QueryValue() interface{} {
	return struct {
		ID            ids.RedemptionID  `query:"id"`
		BroadcasterID ids.BroadcasterID `query:"broadcaster_id"`
		RewardID      ids.RewardID      `query:"reward_id"`
	}{r.ID, r.BroadcasterID, r.RewardID}
}
func (r UpdateRedemptionStatusRequest) BodyValue() (interface{}, bool) { return r.Body, true }

// UpdateRedemptionStatus fulfills or cancels a channel points redemption.
func (c *Client) UpdateRedemptionStatus(ctx context.Context, req UpdateRedemptionStatusRequest) (Redemption, error) {
	return ExecuteSingle[Redemption](ctx, c, req)
}
