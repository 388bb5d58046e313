package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/twitch-rs/twitch-api-sub001/eventsub"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes is the body-size guard ceiling (spec §4.6 step 1).
const DefaultMaxBodyBytes = 64 * 1024

// NotificationFunc is invoked once per deduplicated notification.
type NotificationFunc func(eventsub.Decoded)

// RevocationFunc is invoked once per revocation delivery. Per spec §7
// "Revocation | Subscription revoked by server | Bubble as a distinct
// event, not an error", this is a plain callback, not an error path.
type RevocationFunc func(eventsub.RevocationEnvelope)

// Handler is the EventSub webhook HTTP entrypoint: a plain
// http.Handler so it can be mounted on any router or mux without
// forcing a framework choice on the embedding application (a teacher
// dependency — gin-gonic, seen elsewhere in the retrieval pack — was
// deliberately not adopted here for exactly this reason).
type Handler struct {
	Secret        string
	Dedup         DedupCache
	MaxBodyBytes  int64
	OnNotification NotificationFunc
	OnRevocation  RevocationFunc
	Logger        *zap.Logger
}

// NewHandler builds a Handler with DefaultDedupTTL deduplication and
// DefaultMaxBodyBytes guard.
func NewHandler(secret string, onNotification NotificationFunc, onRevocation RevocationFunc) *Handler {
	return &Handler{
		Secret:         secret,
		Dedup:          NewGoCacheDedup(DefaultDedupTTL),
		MaxBodyBytes:   DefaultMaxBodyBytes,
		OnNotification: onNotification,
		OnRevocation:   onRevocation,
		Logger:         zap.NewNop(),
	}
}

// ServeHTTP implements the full pipeline of spec §4.6.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if int64(len(body)) > limit {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	if !VerifyRequest(r, body, h.Secret) {
		h.Logger.Warn("eventsub webhook signature mismatch", zap.String("remote", r.RemoteAddr))
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	messageID := r.Header.Get(HeaderMessageID)
	if h.Dedup != nil && h.Dedup.SeenBefore(messageID) {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch r.Header.Get(HeaderMessageType) {
	case TypeChallengeVerification:
		var challenge eventsub.ChallengeEnvelope
		if err := json.Unmarshal(body, &challenge); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, challenge.Challenge)

	case TypeRevocation:
		var rev eventsub.RevocationEnvelope
		if err := json.Unmarshal(body, &rev); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if h.OnRevocation != nil {
			h.OnRevocation(rev)
		}
		w.WriteHeader(http.StatusOK)

	case TypeNotification:
		decoded, err := eventsub.DecodeNotification(body)
		if err != nil {
			h.Logger.Warn("eventsub notification decode failed", zap.Error(err))
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if h.OnNotification != nil {
			h.OnNotification(decoded)
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
