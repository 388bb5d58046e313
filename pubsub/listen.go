package pubsub

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ListenData is the `data` object of a LISTEN command.
type ListenData struct {
	Topics    []string `json:"topics"`
	AuthToken string   `json:"auth_token"`
}

// ListenCommand is the outbound `{"type":"LISTEN", ...}` frame (spec
// §4.7 "LISTEN command").
type ListenCommand struct {
	Type  string     `json:"type"`
	Nonce string     `json:"nonce,omitempty"`
	Data  ListenData `json:"data"`
}

// Listen builds a LISTEN command for topics, authenticated with token,
// generating a fresh nonce (via google/uuid, the same library the
// retrieval pack's agent repos use for correlation IDs) so the caller
// can match the eventual RESPONSE frame.
func Listen(token string, topics ...Topic) ListenCommand {
	rendered := make([]string, len(topics))
	for i, t := range topics {
		rendered[i] = t.Render()
	}
	return ListenCommand{
		Type:  "LISTEN",
		Nonce: uuid.NewString(),
		Data: ListenData{
			Topics:    rendered,
			AuthToken: token,
		},
	}
}

// Marshal serializes the command to the wire JSON form.
func (c ListenCommand) Marshal() ([]byte, error) { return json.Marshal(c) }

// RequiredScopes returns the distinct OAuth scopes every topic in
// topics declares, for pre-flight enforcement before the LISTEN is sent
// (spec §4.7 "Scope requirement").
func RequiredScopes(topics ...Topic) []string {
	seen := make(map[string]bool)
	var scopes []string
	for _, t := range topics {
		s := t.Scope()
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		scopes = append(scopes, s)
	}
	return scopes
}
