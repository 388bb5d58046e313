package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/twitch-rs/twitch-api-sub001/eventsub"
)

const testSecret = "s3cr3t"

func sign(messageID, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func deliver(t *testing.T, h http.Handler, messageID, messageType string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/twitch", strings.NewReader(body))
	req.Header.Set(HeaderMessageID, messageID)
	req.Header.Set(HeaderTimestamp, "2023-01-01T00:00:00Z")
	req.Header.Set(HeaderSignature, sign(messageID, "2023-01-01T00:00:00Z", []byte(body)))
	req.Header.Set(HeaderMessageType, messageType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// TestWebhookSignatureAndDedup covers spec §8 scenario 4: the first
// delivery dispatches, an immediate duplicate does not.
func TestWebhookSignatureAndDedup(t *testing.T) {
	var dispatched []eventsub.Decoded
	h := NewHandler(testSecret, func(d eventsub.Decoded) {
		dispatched = append(dispatched, d)
	}, nil)

	body := `{"subscription":{"type":"stream.online","version":"1"},"event":{"broadcaster_user_id":"XYZ","id":"1","type":"live","started_at":"2023-01-01T00:00:00Z"}}`

	rec := deliver(t, h, "M1", TypeNotification, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("first delivery: expected 200, got %d", rec.Code)
	}
	if len(dispatched) != 1 {
		t.Fatalf("expected 1 dispatch, got %d", len(dispatched))
	}
	online, ok := dispatched[0].Event.(eventsub.StreamOnlineEvent)
	if !ok {
		t.Fatalf("expected StreamOnlineEvent, got %T", dispatched[0].Event)
	}
	if online.BroadcasterUserID != "XYZ" {
		t.Fatalf("unexpected broadcaster id: %s", online.BroadcasterUserID)
	}

	rec2 := deliver(t, h, "M1", TypeNotification, body)
	if rec2.Code != http.StatusOK {
		t.Fatalf("duplicate delivery: expected 200, got %d", rec2.Code)
	}
	if len(dispatched) != 1 {
		t.Fatalf("duplicate delivery must not dispatch again, got %d dispatches", len(dispatched))
	}
}

// TestWebhookBadSignature covers spec §4.6 step 2: a tampered body must
// fail verification and never reach dispatch.
func TestWebhookBadSignature(t *testing.T) {
	called := false
	h := NewHandler(testSecret, func(eventsub.Decoded) { called = true }, nil)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/twitch", strings.NewReader(`{}`))
	req.Header.Set(HeaderMessageID, "M2")
	req.Header.Set(HeaderTimestamp, "2023-01-01T00:00:00Z")
	req.Header.Set(HeaderSignature, "sha256=deadbeef")
	req.Header.Set(HeaderMessageType, TypeNotification)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Fatal("dispatch must not run on signature failure")
	}
}

// TestWebhookChallenge covers spec §8 scenario 5.
func TestWebhookChallenge(t *testing.T) {
	h := NewHandler(testSecret, nil, nil)
	body := `{"challenge":"abc123","subscription":{"type":"stream.online","version":"1"}}`
	rec := deliver(t, h, "M3", TypeChallengeVerification, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "abc123" {
		t.Fatalf("expected echoed challenge, got %q", rec.Body.String())
	}
}

// TestWebhookRevocation exercises spec §7's revocation-is-not-an-error
// bubble path.
func TestWebhookRevocation(t *testing.T) {
	var revoked eventsub.RevocationEnvelope
	h := NewHandler(testSecret, nil, func(r eventsub.RevocationEnvelope) { revoked = r })
	body := `{"subscription":{"id":"sub-1","status":"authorization_revoked","type":"channel.follow","version":"2"}}`
	rec := deliver(t, h, "M4", TypeRevocation, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked.Subscription.ID != "sub-1" {
		t.Fatalf("expected revocation callback with subscription id, got %+v", revoked)
	}
}

// TestWebhookBodyTooLarge covers spec §4.6 step 1.
func TestWebhookBodyTooLarge(t *testing.T) {
	h := NewHandler(testSecret, nil, nil)
	h.MaxBodyBytes = 8
	req := httptest.NewRequest(http.MethodPost, "/webhooks/twitch", strings.NewReader(`{"too":"big"}`))
	req.Header.Set(HeaderMessageID, "M5")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}
