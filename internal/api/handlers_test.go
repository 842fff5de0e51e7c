package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/noshahi-devs/notification-service/internal/config"
	"github.com/noshahi-devs/notification-service/internal/engine"
	"github.com/noshahi-devs/notification-service/internal/models"
	"github.com/noshahi-devs/notification-service/internal/monitor"
	"github.com/noshahi-devs/notification-service/internal/templates"
)

type stubTransport struct {
	fail bool
}

func (s *stubTransport) Send(context.Context, models.SendRequest) (string, error) {
	if s.fail {
		return "", io.ErrUnexpectedEOF
	}
	return "<stub@noshahi.edu.pk>", nil
}

type stubLogStore struct {
	count int
}

func (s *stubLogStore) InsertDeliveryLog(context.Context, models.DeliveryLog) error {
	s.count++
	return nil
}

func newTestServer(t *testing.T, policy models.NotificationPolicy, transport engine.Transport) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := config.Config{}
	cfg.API.BasePath = "/api/v0"
	emailCfg := config.EmailConfig{
		SMTPHost:         "smtp.noshahi.edu.pk",
		SenderEmail:      "noreply@noshahi.edu.pk",
		MaxRetryAttempts: 1,
		RetryDelay:       time.Millisecond,
		EnableLogging:    true,
	}

	store := templates.NewStore(t.TempDir())
	renderer := templates.NewRenderer(store, models.InstituteInfo{Name: "Noshahi Institute"})
	eng := engine.New(emailCfg, logger, renderer, transport, &stubLogStore{}, engine.StaticPolicyStore{P: policy})
	hub := monitor.NewHub(logger)

	router := NewRouter(nil, logger, cfg, eng, hub)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestSendNotificationEndpoint(t *testing.T) {
	server := newTestServer(t, models.DefaultPolicy(), &stubTransport{})

	resp := postJSON(t, server.URL+"/api/v0/notifications/send", map[string]any{
		"event":           "ExamSchedulePublished",
		"recipient_email": "student@example.com",
		"recipient_name":  "Student",
		"data":            map[string]string{"ExamName": "Mid-Term"},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res models.SendResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if !res.Success || res.SentAt == nil {
		t.Fatalf("expected successful result, got %+v", res)
	}
}

func TestSendNotificationEndpointDisabled(t *testing.T) {
	policy := models.DefaultPolicy()
	policy.EnableNotifications = false
	server := newTestServer(t, policy, &stubTransport{})

	resp := postJSON(t, server.URL+"/api/v0/notifications/send", map[string]any{
		"event":           "LoginAlert",
		"recipient_email": "student@example.com",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for disabled notification, got %d", resp.StatusCode)
	}

	var res models.SendResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Message, "disabled") {
		t.Fatalf("expected disabled message, got %q", res.Message)
	}
}

func TestSendNotificationEndpointUnknownEvent(t *testing.T) {
	server := newTestServer(t, models.DefaultPolicy(), &stubTransport{})

	resp := postJSON(t, server.URL+"/api/v0/notifications/send", map[string]any{
		"event":           "NoSuchEvent",
		"recipient_email": "student@example.com",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown event, got %d", resp.StatusCode)
	}
}

func TestSendCustomEndpoint(t *testing.T) {
	server := newTestServer(t, models.DefaultPolicy(), &stubTransport{})

	resp := postJSON(t, server.URL+"/api/v0/notifications/send-custom", models.SendRequest{
		To:       "admin@example.com",
		Subject:  "Hello",
		HTMLBody: "<p>Hello</p>",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestSendBulkEndpoint(t *testing.T) {
	server := newTestServer(t, models.DefaultPolicy(), &stubTransport{})

	resp := postJSON(t, server.URL+"/api/v0/notifications/send-bulk", []models.SendRequest{
		{To: "a@example.com", Subject: "a", HTMLBody: "<p>a</p>"},
		{To: "b@example.com", Subject: "b", HTMLBody: "<p>b</p>"},
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		AllSucceeded bool `json:"all_succeeded"`
		Count        int  `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.AllSucceeded || body.Count != 2 {
		t.Fatalf("unexpected bulk response: %+v", body)
	}
}

func TestTestConnectionEndpoint(t *testing.T) {
	server := newTestServer(t, models.DefaultPolicy(), &stubTransport{fail: true})

	resp := postJSON(t, server.URL+"/api/v0/notifications/test-connection", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var res models.SendResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.Success {
		t.Fatal("expected failure result from unreachable transport")
	}
}
