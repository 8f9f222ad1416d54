package http_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	controller "github.com/m-mizutani/cutter/pkg/controller/http"
	"github.com/m-mizutani/cutter/pkg/domain/model"
	"github.com/m-mizutani/cutter/pkg/usecase"
)

// generateSignature generates HMAC-SHA256 signature for testing
func generateSignature(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// stubReleaseUC records release requests from dispatched webhook runs
type stubReleaseUC struct {
	mu       sync.Mutex
	requests []*model.ReleaseRequest
	done     chan struct{}
}

func newStubReleaseUC() *stubReleaseUC {
	return &stubReleaseUC{done: make(chan struct{}, 8)}
}

func (s *stubReleaseUC) Execute(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseResult, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	s.done <- struct{}{}
	return &model.ReleaseResult{TagName: "v1.0.0"}, nil
}

func (s *stubReleaseUC) wait(t *testing.T) *model.ReleaseRequest {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for release run")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func mergedPRPayload(headBranch string) []byte {
	payload := map[string]any{
		"action": "closed",
		"pull_request": map[string]any{
			"number": 1234,
			"merged": true,
			"head": map[string]any{
				"ref": headBranch,
			},
		},
		"repository": map[string]any{
			"full_name": "tardis-sn/tardis",
		},
		"sender": map[string]any{
			"login": "tardis-bot",
		},
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestWebhookHandler_SignatureVerification(t *testing.T) {
	secret := "test-secret"
	uc := usecase.NewWebhook(nil, "pre-release")
	handler := controller.NewWebhookHandler(secret, uc)

	tests := []struct {
		name           string
		payload        []byte
		signature      string
		wantStatusCode int
	}{
		{
			name:           "Valid signature",
			payload:        mergedPRPayload("pre-release-2024.8.4"),
			signature:      "", // Will be generated
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "Invalid signature",
			payload:        []byte(`{"action":"opened"}`),
			signature:      "sha256=invalid",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "Missing signature",
			payload:        []byte(`{"action":"opened"}`),
			signature:      "",
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signature := tt.signature
			if signature == "" && tt.wantStatusCode == http.StatusOK {
				signature = generateSignature(secret, tt.payload)
			}

			req := httptest.NewRequest(http.MethodPost, "/hooks/github/app", bytes.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-GitHub-Event", "pull_request")
			req.Header.Set("X-GitHub-Delivery", "test-delivery")
			req.Header.Set("X-Hub-Signature-256", signature)

			w := httptest.NewRecorder()
			handler.Handle(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("Handle() status = %v, want %v", w.Code, tt.wantStatusCode)
			}
		})
	}
}

func TestWebhookHandler_DispatchesReleaseRun(t *testing.T) {
	secret := "test-secret"
	releaseUC := newStubReleaseUC()
	uc := usecase.NewWebhook(releaseUC, "pre-release")
	handler := controller.NewWebhookHandler(secret, uc)

	payload := mergedPRPayload("pre-release-2024.8.4")
	signature := generateSignature(secret, payload)

	req := httptest.NewRequest(http.MethodPost, "/hooks/github/app", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", "pull_request")
	req.Header.Set("X-GitHub-Delivery", "test-delivery")
	req.Header.Set("X-Hub-Signature-256", signature)

	w := httptest.NewRecorder()
	handler.Handle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Handle() status = %v, want %v, body = %s", w.Code, http.StatusOK, w.Body.String())
	}

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Errorf("Failed to decode response: %v", err)
	}
	if response["status"] != "accepted" {
		t.Errorf("Response status = %v, want accepted", response["status"])
	}

	got := releaseUC.wait(t)
	if got.Trigger != model.TriggerWebhook {
		t.Errorf("Trigger = %v, want webhook", got.Trigger)
	}
	if got.Owner != "tardis-sn" || got.Repo != "tardis" {
		t.Errorf("Target = %s/%s, want tardis-sn/tardis", got.Owner, got.Repo)
	}
	if got.HeadBranch != "pre-release-2024.8.4" {
		t.Errorf("HeadBranch = %v", got.HeadBranch)
	}
	if got.PRNumber != 1234 {
		t.Errorf("PRNumber = %v", got.PRNumber)
	}
}

func TestWebhookHandler_IgnoresNonTriggerEvents(t *testing.T) {
	secret := "test-secret"
	releaseUC := newStubReleaseUC()
	uc := usecase.NewWebhook(releaseUC, "pre-release")
	handler := controller.NewWebhookHandler(secret, uc)

	tests := []struct {
		name      string
		eventType string
		payload   []byte
	}{
		{
			name:      "merged PR from an ordinary branch",
			eventType: "pull_request",
			payload:   mergedPRPayload("feature/new-widget"),
		},
		{
			name:      "release event",
			eventType: "release",
			payload: func() []byte {
				body, _ := json.Marshal(map[string]any{
					"action":     "released",
					"release":    map[string]any{"id": 1},
					"repository": map[string]any{"full_name": "tardis-sn/tardis"},
					"sender":     map[string]any{"login": "tardis-bot"},
				})
				return body
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signature := generateSignature(secret, tt.payload)

			req := httptest.NewRequest(http.MethodPost, "/hooks/github/app", bytes.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-GitHub-Event", tt.eventType)
			req.Header.Set("X-GitHub-Delivery", "test-delivery")
			req.Header.Set("X-Hub-Signature-256", signature)

			w := httptest.NewRecorder()
			handler.Handle(w, req)

			// Non-trigger events are still acknowledged
			if w.Code != http.StatusOK {
				t.Errorf("Handle() status = %v, want %v, body = %s", w.Code, http.StatusOK, w.Body.String())
			}
		})
	}

	select {
	case <-releaseUC.done:
		t.Error("release run started for a non-trigger event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWebhookHandler_Integration(t *testing.T) {
	ctx := context.Background()
	secret := "integration-test-secret"
	releaseUC := newStubReleaseUC()
	uc := usecase.NewWebhook(releaseUC, "pre-release")

	server, err := controller.NewServer(
		ctx,
		uc,
		controller.WithAddr("localhost:0"),
		controller.WithWebhookSecret(secret),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	payload := mergedPRPayload("pre-release-2024.8.4")
	signature := generateSignature(secret, payload)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/hooks/github/app", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", "pull_request")
	req.Header.Set("X-GitHub-Delivery", "integration-test")
	req.Header.Set("X-Hub-Signature-256", signature)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}
	defer func() {
		_ = resp.Body.Close() // Error ignored in test
	}()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status code = %v, want %v", resp.StatusCode, http.StatusOK)
	}

	got := releaseUC.wait(t)
	if got.HeadBranch != "pre-release-2024.8.4" {
		t.Errorf("HeadBranch = %v", got.HeadBranch)
	}
}
