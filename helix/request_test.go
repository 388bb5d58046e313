package helix

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/twitch-rs/twitch-api-sub001/ids"
	"github.com/twitch-rs/twitch-api-sub001/twitcherr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := NewTokenSource("abc123", []string{"user:edit", "channel:manage:broadcast"})
	return NewClient("client-id", tokens, WithBaseURL(srv.URL+"/"))
}

// TestGetUsers covers spec §8 scenario 1.
func TestGetUsers(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query()["login"]; len(got) != 1 || got[0] != "ozzingo" {
			t.Fatalf("unexpected login query: %v", got)
		}
		fmt.Fprint(w, `{"data":[{"id":"123","login":"ozzingo","display_name":"Ozzingo"}]}`)
	})

	users, err := c.GetUsers(context.Background(), GetUsersRequest{Logins: []ids.Login{"ozzingo"}})
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 1 || users[0].ID != ids.UserID("123") {
		t.Fatalf("unexpected users: %+v", users)
	}
}

// TestModifyChannelInformation covers spec §8 scenario 2: 204 classifies
// to Success, 400 classifies to an HTTPError with Status == 400.
func TestModifyChannelInformation(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		title := "new title"
		res, err := c.ModifyChannelInformation(context.Background(), ModifyChannelInformationRequest{
			BroadcasterID: "44322889",
			Body:          ModifyChannelInformationBody{Title: &title},
		})
		if err != nil {
			t.Fatalf("ModifyChannelInformation: %v", err)
		}
		if !res.Success() || res.Status != http.StatusNoContent {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("bad request", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"Bad Request","status":400,"message":"title too long"}`)
		})
		title := "x"
		_, err := c.ModifyChannelInformation(context.Background(), ModifyChannelInformationRequest{
			BroadcasterID: "44322889",
			Body:          ModifyChannelInformationBody{Title: &title},
		})
		var httpErr *twitcherr.HTTPError
		if !asHTTPError(err, &httpErr) {
			t.Fatalf("expected *twitcherr.HTTPError, got %v (%T)", err, err)
		}
		if httpErr.Status != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", httpErr.Status)
		}
	})
}

// TestStreamsPaginator covers spec §8 scenario 3: two pages, the second
// fetched with after=C, terminating once the response carries no cursor.
func TestStreamsPaginator(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch calls {
		case 1:
			if after := r.URL.Query().Get("after"); after != "" {
				t.Fatalf("expected no after on first call, got %q", after)
			}
			fmt.Fprint(w, `{"data":[{"id":"1"},{"id":"2"}],"pagination":{"cursor":"C"}}`)
		case 2:
			if after := r.URL.Query().Get("after"); after != "C" {
				t.Fatalf("expected after=C on second call, got %q", after)
			}
			fmt.Fprint(w, `{"data":[{"id":"3"}],"pagination":{}}`)
		default:
			t.Fatalf("unexpected third call")
		}
	})

	req := &GetStreamsRequest{}
	p := c.StreamsPaginator(req)

	var all []Stream
	for p.Next(context.Background()) {
		all = append(all, p.Page()...)
	}
	if err := p.Err(); err != nil {
		t.Fatalf("paginator error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 streams total, got %d", len(all))
	}
}

// TestMissingScopeRefusesBeforeTransport covers spec §7: a request
// requiring an ungranted scope must never reach the network.
func TestMissingScopeRefusesBeforeTransport(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	c.tokens.Set("abc123", []string{}) // no scopes granted

	_, err := c.ModifyChannelInformation(context.Background(), ModifyChannelInformationRequest{
		BroadcasterID: "1",
		Body:          ModifyChannelInformationBody{},
	})
	if err == nil {
		t.Fatal("expected missing scope error")
	}
	var missing *twitcherr.MissingScopeError
	if !asMissingScope(err, &missing) {
		t.Fatalf("expected *twitcherr.MissingScopeError, got %v (%T)", err, err)
	}
	if called {
		t.Fatal("transport must not be invoked when a required scope is missing")
	}
}

// TestErrorShapeWinsOverTransportStatus covers spec §4.4 step 5: when
// Twitch's own error document is present, it always wins, even on a 2xx.
func TestErrorShapeWinsOverTransportStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"error":"Unauthorized","status":401,"message":"token expired"}`)
	})

	_, err := c.GetUsers(context.Background(), GetUsersRequest{IDs: []ids.UserID{"1"}})
	var httpErr *twitcherr.HTTPError
	if !asHTTPError(err, &httpErr) {
		t.Fatalf("expected *twitcherr.HTTPError, got %v (%T)", err, err)
	}
	if httpErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected status 401 from error body, got %d", httpErr.Status)
	}
}

// TestQueryEncodingRepeatsIDs exercises the real driver end to end to
// confirm internal/query.Encode produces Twitch's repeated-key form.
func TestQueryEncodingRepeatsIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got := r.URL.Query()["id"]
		want := []string{"1", "2", "3"}
		if len(got) != len(want) {
			t.Fatalf("got %v want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v want %v", got, want)
			}
		}
		fmt.Fprint(w, `{"data":[]}`)
	})
	_, err := c.GetUsers(context.Background(), GetUsersRequest{
		IDs: []ids.UserID{"1", "2", "3"},
	})
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
}

func asHTTPError(err error, target **twitcherr.HTTPError) bool {
	he, ok := err.(*twitcherr.HTTPError)
	if !ok {
		return false
	}
	*target = he
	return true
}

func asMissingScope(err error, target **twitcherr.MissingScopeError) bool {
	me, ok := err.(*twitcherr.MissingScopeError)
	if !ok {
		return false
	}
	*target = me
	return true
}
