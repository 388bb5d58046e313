package eventsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeNotificationKnownType exercises spec §8's universal
// property "for every supported (type, version), a representative
// sample payload deserializes into the declared variant."
func TestDecodeNotificationKnownType(t *testing.T) {
	body := []byte(`{
		"subscription": {"id":"sub1","type":"channel.follow","version":"2","status":"enabled"},
		"event": {"user_id":"1","user_login":"viewer","user_name":"Viewer","broadcaster_user_id":"2","broadcaster_user_login":"streamer","broadcaster_user_name":"Streamer","followed_at":"2023-01-01T00:00:00Z"}
	}`)

	decoded, err := DecodeNotification(body)
	require.NoError(t, err)

	follow, ok := decoded.Event.(ChannelFollowEvent)
	require.True(t, ok, "expected ChannelFollowEvent, got %T", decoded.Event)
	assert.EqualValues(t, "1", follow.UserID)
	assert.EqualValues(t, "streamer", follow.BroadcasterUserLogin)
}

// TestDecodeNotificationUnknownType exercises the Unknown fallthrough
// (spec §9 "open sums").
func TestDecodeNotificationUnknownType(t *testing.T) {
	body := []byte(`{
		"subscription": {"id":"sub2","type":"channel.some_future_event","version":"7","status":"enabled"},
		"event": {"foo":"bar"}
	}`)

	decoded, err := DecodeNotification(body)
	require.NoError(t, err)

	unknown, ok := decoded.Event.(Unknown)
	require.True(t, ok, "expected Unknown, got %T", decoded.Event)
	assert.Equal(t, "channel.some_future_event", unknown.Type)
	assert.Equal(t, "7", unknown.Version)
}

// TestAutomodHoldVersionsAreDistinctVariants covers spec §4.5 "two
// versions of the same type are distinct variants with distinct
// payload records."
func TestAutomodHoldVersionsAreDistinctVariants(t *testing.T) {
	v1, err := DecodePayload("automod.message.hold", "1", []byte(`{"broadcaster_user_id":"1","user_id":"2","category":"profanity","level":2}`))
	require.NoError(t, err)
	_, isV1 := v1.(AutomodMessageHoldEvent)
	assert.True(t, isV1)

	v2, err := DecodePayload("automod.message.hold", "2", []byte(`{"broadcaster_user_id":"1","user_id":"2","reason":"blocked_term","boundaries":[{"start_pos":0,"end_pos":3,"category":"profanity"}]}`))
	require.NoError(t, err)
	typed2, isV2 := v2.(AutomodMessageHoldV2Event)
	require.True(t, isV2)
	assert.Len(t, typed2.Boundaries, 1)
}

func TestParseFrameClassifiesWelcome(t *testing.T) {
	raw := []byte(`{"metadata":{"message_id":"m1","message_type":"session_welcome","message_timestamp":"2023-01-01T00:00:00Z"},"payload":{"session":{"id":"sess1","status":"connected","keepalive_timeout_seconds":10,"reconnect_url":""}}}`)
	frame, err := ParseFrame(raw)
	require.NoError(t, err)
	assert.Equal(t, MessageWelcome, frame.Metadata.MessageType)

	welcome, err := frame.AsWelcome()
	require.NoError(t, err)
	assert.Equal(t, "sess1", welcome.Session.ID)
}

func TestRegistered(t *testing.T) {
	assert.True(t, Registered("stream.online", "1"))
	assert.False(t, Registered("stream.online", "99"))
}

// TestFrameAsNotification covers the WebSocket transport's notification
// path, which carries the same {subscription, event} envelope as the
// webhook transport (spec §4.5 "Envelope structure") — the fields of
// the declared event variant live under `payload.event`, not directly
// under `payload`.
func TestFrameAsNotification(t *testing.T) {
	raw := []byte(`{
		"metadata": {"message_id":"m2","message_type":"notification","message_timestamp":"2023-01-01T00:00:00Z","subscription_type":"channel.follow","subscription_version":"2"},
		"payload": {
			"subscription": {"id":"sub3","type":"channel.follow","version":"2","status":"enabled"},
			"event": {"user_id":"1","user_login":"viewer","user_name":"Viewer","broadcaster_user_id":"2","broadcaster_user_login":"streamer","broadcaster_user_name":"Streamer","followed_at":"2023-01-01T00:00:00Z"}
		}
	}`)

	frame, err := ParseFrame(raw)
	require.NoError(t, err)
	assert.Equal(t, MessageNotification, frame.Metadata.MessageType)

	decoded, err := frame.AsNotification()
	require.NoError(t, err)

	follow, ok := decoded.Event.(ChannelFollowEvent)
	require.True(t, ok, "expected ChannelFollowEvent, got %T", decoded.Event)
	assert.EqualValues(t, "1", follow.UserID)
	assert.EqualValues(t, "streamer", follow.BroadcasterUserLogin)
}
