package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/liftloop/coach/internal/ai"
	"github.com/liftloop/coach/internal/coach"
	"github.com/liftloop/coach/internal/config"
	"github.com/liftloop/coach/internal/store"
	"github.com/liftloop/coach/internal/tools"
)

type staticProvider struct {
	text string
}

func (p *staticProvider) ID() string { return "static" }

func (p *staticProvider) Complete(_ context.Context, _ *ai.ChatRequest) (*ai.Completion, error) {
	return &ai.Completion{Text: p.text}, nil
}

func newTestServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	c := coach.New(cfg, &staticProvider{text: reply}, tools.NewDefaultRegistry(), store.Open(cfg.DataDir))
	ts := httptest.NewServer(New(cfg, c).router())
	t.Cleanup(ts.Close)
	return ts
}

// client returns an http client that keeps the session cookie between
// requests, like a browser would.
func client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{Jar: jar}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, "hi")

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
}

func TestIndexServesChatPage(t *testing.T) {
	ts := newTestServer(t, "hi")

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q, want html", ct)
	}
	if !hasCookie(res, sessionCookie) {
		t.Error("first visit should issue a session cookie")
	}
}

func TestChatRendersMarkdown(t *testing.T) {
	ts := newTestServer(t, "Try **heavy squats** on Monday.")
	cl := client(t)

	res, err := cl.Post(ts.URL+"/api/chat", "application/json",
		strings.NewReader(`{"message": "what should I do Monday"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	var body struct {
		Reply string `json:"reply"`
		HTML  string `json:"html"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Reply != "Try **heavy squats** on Monday." {
		t.Errorf("reply = %q", body.Reply)
	}
	if !strings.Contains(body.HTML, "<strong>heavy squats</strong>") {
		t.Errorf("html = %q, want rendered markdown", body.HTML)
	}
}

func TestChatRejectsBadBody(t *testing.T) {
	ts := newTestServer(t, "hi")

	res, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader("{broken"))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", res.StatusCode)
	}
}

func TestHistoryFollowsSession(t *testing.T) {
	ts := newTestServer(t, "Bench, rows, and a lot of patience.")
	cl := client(t)

	if _, err := cl.Post(ts.URL+"/api/chat", "application/json",
		strings.NewReader(`{"message": "upper body ideas"}`)); err != nil {
		t.Fatal(err)
	}

	res, err := cl.Get(ts.URL + "/api/history")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	var entries []struct {
		Role string `json:"role"`
		Text string `json:"text"`
		HTML string `json:"html"`
	}
	if err := json.NewDecoder(res.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}
	if entries[0].Role != "human" || entries[0].HTML != "" {
		t.Errorf("human entry = %+v, should not carry HTML", entries[0])
	}
	if entries[1].Role != "assistant" || entries[1].HTML == "" {
		t.Errorf("assistant entry = %+v, should carry rendered HTML", entries[1])
	}
}

func TestResetClearsHistoryAndRotatesCookie(t *testing.T) {
	ts := newTestServer(t, "Deadlifts build character.")
	cl := client(t)

	if _, err := cl.Post(ts.URL+"/api/chat", "application/json",
		strings.NewReader(`{"message": "what builds character"}`)); err != nil {
		t.Fatal(err)
	}

	res, err := cl.Post(ts.URL+"/api/reset", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if !hasCookie(res, sessionCookie) {
		t.Error("reset should rotate the session cookie")
	}

	histRes, err := cl.Get(ts.URL + "/api/history")
	if err != nil {
		t.Fatal(err)
	}
	defer histRes.Body.Close()

	var entries []json.RawMessage
	if err := json.NewDecoder(histRes.Body).Decode(&entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("history has %d entries after reset, want 0", len(entries))
	}
}

func TestStatsEmptySession(t *testing.T) {
	ts := newTestServer(t, "hi")

	res, err := http.Get(ts.URL + "/api/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	var body map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["total_requests"] != float64(0) {
		t.Errorf("total_requests = %v, want 0", body["total_requests"])
	}
}

func hasCookie(res *http.Response, name string) bool {
	for _, c := range res.Cookies() {
		if c.Name == name && c.Value != "" {
			return true
		}
	}
	return false
}
