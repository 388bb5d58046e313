package twitcherr

import (
	"errors"
	"testing"
)

func TestHTTPErrorMessage(t *testing.T) {
	err := &HTTPError{URI: "https://api.twitch.tv/helix/channels", Status: 400, Error_: "Bad Request", Message: "Missing required parameter \"broadcaster_id\""}
	want := `twitch: Bad Request (status 400) for https://api.twitch.tv/helix/channels: Missing required parameter "broadcaster_id"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrapChain(t *testing.T) {
	cause := errors.New("boom")
	err := &TransportError{Op: "POST /helix/channels", Err: cause}

	if !errors.Is(err, cause) {
		t.Errorf("expected errors.Is to find the wrapped cause")
	}

	var target *TransportError
	if !errors.As(err, &target) {
		t.Errorf("expected errors.As to find *TransportError")
	}
}

func TestMissingScopeErrorFormatting(t *testing.T) {
	err := &MissingScopeError{Required: "ANY(channel:read:redemptions, channel:manage:redemptions)", Have: []string{"chat:read"}}
	if err.Error() == "" {
		t.Error("expected non-empty message")
	}
}
