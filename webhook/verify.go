// Package webhook implements the EventSub webhook verification and
// delivery pipeline (spec §4.6): body-size guard, HMAC-SHA256 signature
// verification, message-ID deduplication, and dispatch by message type.
// It is grounded on the teacher's internal/twitch/eventsub.go
// HandleEventSubCallback and verifyEventSubSignature, generalized from
// a single hardwired secret/hub pair into a reusable Handler.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
)

// HeaderMessageID, HeaderTimestamp, HeaderSignature, and HeaderMessageType
// name the Twitch-Eventsub-* headers carried on every webhook delivery
// (spec §6).
const (
	HeaderMessageID   = "Twitch-Eventsub-Message-Id"
	HeaderTimestamp   = "Twitch-Eventsub-Message-Timestamp"
	HeaderSignature   = "Twitch-Eventsub-Message-Signature"
	HeaderMessageType = "Twitch-Eventsub-Message-Type"
)

// Message type values carried by HeaderMessageType.
const (
	TypeChallengeVerification = "webhook_callback_verification"
	TypeNotification          = "notification"
	TypeRevocation            = "revocation"
)

// VerifySignature checks messageID||timestamp||body against secret
// using constant-time comparison (spec §4.6 step 2). signature is the
// raw header value, expected in the form "sha256=<hex>".
func VerifySignature(secret, messageID, timestamp string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	expected := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}

// VerifyRequest extracts the three signature-relevant headers from r
// and body, and checks them against secret.
func VerifyRequest(r *http.Request, body []byte, secret string) bool {
	return VerifySignature(
		secret,
		r.Header.Get(HeaderMessageID),
		r.Header.Get(HeaderTimestamp),
		body,
		r.Header.Get(HeaderSignature),
	)
}
