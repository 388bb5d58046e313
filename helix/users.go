package helix

import (
	"context"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

// User is the Get Users response record.
type User struct {
	ID              ids.UserID      `json:"id"`
	Login           ids.Login       `json:"login"`
	DisplayName     ids.DisplayName `json:"display_name"`
	Type             string         `json:"type"`
	BroadcasterType  string         `json:"broadcaster_type"`
	Description      string         `json:"description"`
	ProfileImageURL  string         `json:"profile_image_url"`
	OfflineImageURL  string         `json:"offline_image_url"`
	CreatedAt        string         `json:"created_at"`
}

// GetUsersRequest is GET /users (spec §8 scenario 1).
type GetUsersRequest struct {
	IDs    []ids.UserID `query:"id"`
	Logins []ids.Login  `query:"login"`
}

func (r GetUsersRequest) HTTPMethod() string          { return "GET" }
func (r GetUsersRequest) Path() string                { return "users" }
func (r GetUsersRequest) RequiredScope() ScopeRequirement { return NoScope{} }
func (r GetUsersRequest) QueryValue() interface{}     { return r }
func (r GetUsersRequest) BodyValue() (interface{}, bool) { return nil, false }

// GetUsers fetches one or more users by id and/or login.
func (c *Client) GetUsers(ctx context.Context, req GetUsersRequest) ([]User, error) {
	items, _, err := ExecuteList[User](ctx, c, req)
	return items, err
}

// UpdateUserRequest is PUT /users (update the authenticated user's description).
type UpdateUserRequest struct {
	Description *string `query:"description"`
}

func (r UpdateUserRequest) HTTPMethod() string              { return "PUT" }
func (r UpdateUserRequest) Path() string                    { return "users" }
func (r UpdateUserRequest) RequiredScope() ScopeRequirement { return Scope("user:edit") }
func (r UpdateUserRequest) QueryValue() interface{}          { return r }
func (r UpdateUserRequest) BodyValue() (interface{}, bool)   { return nil, false }

// UpdateUser updates the authenticated user's profile description.
func (c *Client) UpdateUser(ctx context.Context, req UpdateUserRequest) (User, error) {
	return ExecuteSingle[User](ctx, c, req)
}
