package pubsub

import (
	"encoding/json"
	"testing"

	"github.com/twitch-rs/twitch-api-sub001/ids"
)

func TestTopicRoundTrip(t *testing.T) {
	cases := []Topic{
		ChannelPointsChannelV1{ChannelID: "27620241"},
		ChannelBitsEventsV2{ChannelID: "44322889"},
		ChannelBitsBadgeUnlocks{ChannelID: "44322889"},
		ChatModeratorActions{UserID: "1", ChannelID: "2"},
		ChannelSubscribeEventsV1{ChannelID: "44322889"},
	}
	for _, tc := range cases {
		rendered := tc.Render()
		parsed, err := ParseTopic(rendered)
		if err != nil {
			t.Fatalf("ParseTopic(%q): %v", rendered, err)
		}
		if parsed != tc {
			t.Fatalf("round trip mismatch: got %+v want %+v", parsed, tc)
		}
	}
}

func TestParseTopicUnknownPrefix(t *testing.T) {
	_, err := ParseTopic("not-a-real-topic.123")
	var unknown *UnknownTopicError
	if !asUnknownTopic(err, &unknown) {
		t.Fatalf("expected *UnknownTopicError, got %v (%T)", err, err)
	}
}

func TestParseTopicWrongArity(t *testing.T) {
	_, err := ParseTopic("channel-points-channel-v1.1.2")
	if err == nil {
		t.Fatal("expected arity error")
	}
}

func TestListenCommand(t *testing.T) {
	cmd := Listen("TOK", ChannelPointsChannelV1{ChannelID: "27620241"})
	if cmd.Type != "LISTEN" {
		t.Fatalf("unexpected type %q", cmd.Type)
	}
	if cmd.Nonce == "" {
		t.Fatal("expected a generated nonce")
	}
	if len(cmd.Data.Topics) != 1 || cmd.Data.Topics[0] != "channel-points-channel-v1.27620241" {
		t.Fatalf("unexpected topics: %v", cmd.Data.Topics)
	}
	if cmd.Data.AuthToken != "TOK" {
		t.Fatalf("unexpected auth token: %q", cmd.Data.AuthToken)
	}
}

func TestRequiredScopesDeduplicates(t *testing.T) {
	scopes := RequiredScopes(
		ChannelBitsEventsV2{ChannelID: "1"},
		ChannelBitsBadgeUnlocks{ChannelID: "1"},
	)
	if len(scopes) != 1 || scopes[0] != "bits:read" {
		t.Fatalf("expected deduplicated [bits:read], got %v", scopes)
	}
}

// TestListenAndMessageDispatch covers spec §8 scenario 6.
func TestListenAndMessageDispatch(t *testing.T) {
	cmd := Listen("TOK", ChannelPointsChannelV1{ChannelID: "27620241"})
	if cmd.Data.Topics[0] != "channel-points-channel-v1.27620241" {
		t.Fatalf("unexpected rendered topic: %s", cmd.Data.Topics[0])
	}

	respRaw, _ := json.Marshal(map[string]string{"type": "RESPONSE", "nonce": cmd.Nonce, "error": ""})
	frame, err := ParseFrame(respRaw)
	if err != nil {
		t.Fatalf("ParseFrame(RESPONSE): %v", err)
	}
	resp, ok := frame.(ResponseFrame)
	if !ok || !resp.Success() || resp.Nonce != cmd.Nonce {
		t.Fatalf("unexpected response frame: %+v", frame)
	}

	inner := `{"type":"reward-redeemed","data":{"timestamp":"2023-01-01T00:00:00Z","redemption":{"id":"r1","user_id":"u1","channel_id":"27620241","redeemed_at":"2023-01-01T00:00:00Z","reward":{"id":"rw1","title":"Hydrate","cost":100},"user_input":"","status":"UNFULFILLED"}}}`
	msgRaw, _ := json.Marshal(map[string]interface{}{
		"type": "MESSAGE",
		"data": map[string]string{
			"topic":   "channel-points-channel-v1.27620241",
			"message": inner,
		},
	})
	frame2, err := ParseFrame(msgRaw)
	if err != nil {
		t.Fatalf("ParseFrame(MESSAGE): %v", err)
	}
	msg, ok := frame2.(MessageFrame)
	if !ok {
		t.Fatalf("expected MessageFrame, got %T", frame2)
	}
	topic, ok := msg.Topic.(ChannelPointsChannelV1)
	if !ok || topic.ChannelID != ids.BroadcasterID("27620241") {
		t.Fatalf("unexpected topic: %+v", msg.Topic)
	}
	redeemed, ok := msg.Payload.(RewardRedeemed)
	if !ok {
		t.Fatalf("expected RewardRedeemed payload, got %T", msg.Payload)
	}
	if redeemed.Redemption.Reward.Title != "Hydrate" {
		t.Fatalf("unexpected reward title: %s", redeemed.Redemption.Reward.Title)
	}
}

func TestUnknownInnerTag(t *testing.T) {
	inner := `{"type":"some-future-tag","data":{}}`
	msgRaw, _ := json.Marshal(map[string]interface{}{
		"type": "MESSAGE",
		"data": map[string]string{
			"topic":   "channel-bits-events-v2.1",
			"message": inner,
		},
	})
	frame, err := ParseFrame(msgRaw)
	if err != nil {
		t.Fatalf("ParseFrame: %v", err)
	}
	msg := frame.(MessageFrame)
	unknown, ok := msg.Payload.(Unknown)
	if !ok || unknown.Tag != "some-future-tag" {
		t.Fatalf("expected Unknown payload naming the tag, got %+v", msg.Payload)
	}
}

func asUnknownTopic(err error, target **UnknownTopicError) bool {
	u, ok := err.(*UnknownTopicError)
	if !ok {
		return false
	}
	*target = u
	return true
}
