package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joestump/replydraft/internal/api"
	"github.com/joestump/replydraft/internal/llm"
	"github.com/joestump/replydraft/internal/reply"
	"github.com/joestump/replydraft/internal/scenario"
)

// fakeCompleter counts calls and returns a canned answer.
type fakeCompleter struct {
	calls int
	user  string
	text  string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, _, user string) (string, error) {
	f.calls++
	f.user = user
	return f.text, f.err
}

type testEnv struct {
	Router    http.Handler
	Completer *fakeCompleter
}

// newTestEnv wires the API router to a Generator backed by a fake completer.
// A nil completer yields an unconfigured Generator.
func newTestEnv(t *testing.T, c *fakeCompleter) *testEnv {
	t.Helper()
	var gen *reply.Generator
	if c == nil {
		gen = reply.NewGenerator(nil, nil, "groq")
	} else {
		gen = reply.NewGenerator(c, nil, "groq")
	}
	return &testEnv{Router: api.NewAPIRouter(api.Deps{Generator: gen}), Completer: c}
}

func (e *testEnv) post(t *testing.T, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/replies", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

func TestCreateReply_Success(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{text: "Dear Jane, we will arrange a pickup."})

	w := env.post(t, api.CreateReplyRequest{
		Scenario:     "exchange",
		CustomerName: "Jane Doe",
		OrderID:      "ORD-1001",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
	var resp api.ReplyResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Reply != "Dear Jane, we will arrange a pickup." {
		t.Errorf("reply = %q", resp.Reply)
	}
	if resp.Scenario != "exchange" || resp.RequestID == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !strings.Contains(env.Completer.user, "Exchange Request") {
		t.Errorf("prompt missing label: %q", env.Completer.user)
	}
}

func TestCreateReply_TrackingDroppedForOtherScenarios(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{text: "ok"})

	w := env.post(t, api.CreateReplyRequest{
		Scenario:     "return_fitting",
		CustomerName: "Jane",
		OrderID:      "1",
		TrackingID:   "TRK-1",
		CourierURL:   "https://c.example",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if strings.Contains(env.Completer.user, "TRK-1") {
		t.Errorf("tracking id leaked into return prompt: %q", env.Completer.user)
	}
	if !strings.Contains(env.Completer.user, scenario.ReturnAddress) {
		t.Errorf("return address missing from prompt")
	}
}

func TestCreateReply_ValidationNoCall(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{text: "unused"})

	w := env.post(t, api.CreateReplyRequest{Scenario: "order_status", OrderID: "1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decodeError(t, w).Code; got != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", got)
	}
	if env.Completer.calls != 0 {
		t.Errorf("completer called %d times, want 0", env.Completer.calls)
	}
}

func TestCreateReply_BadInput(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{text: "unused"})

	req := httptest.NewRequest(http.MethodPost, "/replies", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status = %d, want 400", w.Code)
	}

	w = env.post(t, api.CreateReplyRequest{Scenario: "refund", CustomerName: "A", OrderID: "1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown scenario: status = %d, want 400", w.Code)
	}
	if got := decodeError(t, w).Code; got != "INVALID_SCENARIO" {
		t.Errorf("code = %q, want INVALID_SCENARIO", got)
	}
}

func TestCreateReply_NotConfigured(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.post(t, api.CreateReplyRequest{Scenario: "other", CustomerName: "A", OrderID: "1"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Code != "LLM_NOT_CONFIGURED" {
		t.Errorf("code = %q, want LLM_NOT_CONFIGURED", resp.Code)
	}
	if !strings.Contains(resp.Error, llm.ErrNotConfigured.Error()) {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestCreateReply_APIError(t *testing.T) {
	env := newTestEnv(t, &fakeCompleter{err: errors.New("quota exceeded")})

	w := env.post(t, api.CreateReplyRequest{Scenario: "order_delayed", CustomerName: "A", OrderID: "1"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	resp := decodeError(t, w)
	if resp.Code != "LLM_ERROR" || !strings.Contains(resp.Error, "quota exceeded") {
		t.Errorf("unexpected error body: %+v", resp)
	}
}

func TestCreateReply_DryRun(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.post(t, api.CreateReplyRequest{
		Scenario:     "Order Status Inquiry",
		CustomerName: "Jane",
		OrderID:      "9",
		Notes:        "call back",
		DryRun:       true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	var resp api.ReplyResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Prompt == nil {
		t.Fatal("prompt missing from dry-run response")
	}
	if !strings.Contains(resp.Prompt.User, "Additional Notes: call back") {
		t.Errorf("user prompt = %q", resp.Prompt.User)
	}
	if resp.Reply != "" {
		t.Errorf("dry run returned a reply: %q", resp.Reply)
	}
}

func TestListScenarios(t *testing.T) {
	env := newTestEnv(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/scenarios", nil)
	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var resp api.ScenarioListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Scenarios) != len(scenario.All()) {
		t.Fatalf("got %d scenarios, want %d", len(resp.Scenarios), len(scenario.All()))
	}
	first := resp.Scenarios[0]
	if first.Slug != "order_status" || first.Label != "Order Status Inquiry" || !first.AcceptsTracking {
		t.Errorf("first scenario = %+v", first)
	}
}
