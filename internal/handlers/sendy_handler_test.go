package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"kemisemail/internal/config"
	"kemisemail/internal/services"
)

func newSendyTestStack(sendyURL string, smtp services.EmailSender) *chi.Mux {
	sendy := services.NewSendyClient(&config.Config{
		SendyBaseURL:  sendyURL,
		SendyAPIKey:   "test-api-key",
		SendyBrandID:  "1",
		FromName:      "KemisEmail",
		FromEmail:     "hello@example.com",
		ReplyTo:       "hello@example.com",
		SubmitTimeout: 5 * time.Second,
	})
	service := services.NewTemplateService(
		&fakeDrafter{},
		&fakeImageDrafter{},
		services.NewImageOptimizer(),
		&fakeStore{},
		services.NewTemplateBuilder(),
		sendy,
		"",
	)
	h := NewSendyHandler(service, sendy, smtp)
	r := chi.NewRouter()
	r.Post("/send-to-sendy", h.SendToSendy)
	r.Get("/get-sendy-lists", h.GetSendyLists)
	r.Get("/verify-email-config", h.VerifyEmailConfig)
	r.Post("/send-test-email", h.SendTestEmail)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const submitBody = `{
	"content": {"subject_line": "Summer Sale", "main_content": "Shop now."},
	"html_template": "<html><body>Summer Sale</body></html>",
	"list_ids": "abc123",
	"send_option": "draft"
}`

func TestSendToSendySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Campaign created"))
	}))
	defer server.Close()

	r := newSendyTestStack(server.URL, nil)
	w := postJSON(r, "/send-to-sendy", submitBody)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["response"] != "Campaign created" {
		t.Fatalf("expected remote ack, got %v", resp)
	}
}

func TestSendToSendyMissingListIDs(t *testing.T) {
	r := newSendyTestStack("http://localhost:1", nil)

	body := `{"content": {"subject_line": "Summer Sale"}, "html_template": "<html></html>", "list_ids": ""}`
	w := postJSON(r, "/send-to-sendy", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Please select at least one mailing list" {
		t.Fatalf("unexpected message: %v", resp)
	}
}

func TestSendToSendyRemoteRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Invalid API key"))
	}))
	defer server.Close()

	r := newSendyTestStack(server.URL, nil)
	w := postJSON(r, "/send-to-sendy", submitBody)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["response"] != "Invalid API key" {
		t.Fatalf("expected remote text carried through, got %v", resp)
	}
}

func TestGetSendyLists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list1":{"id":"abc","name":"Newsletter"}}`))
	}))
	defer server.Close()

	r := newSendyTestStack(server.URL, nil)

	req := httptest.NewRequest(http.MethodGet, "/get-sendy-lists", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Lists   []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"lists"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Lists) != 1 || resp.Lists[0].Name != "Newsletter" {
		t.Fatalf("unexpected lists: %+v", resp.Lists)
	}
}

func TestVerifyEmailConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	r := newSendyTestStack(server.URL, nil)

	req := httptest.NewRequest(http.MethodGet, "/verify-email-config", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Config map[string]any `json:"config"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Config["sendy_accessible"] != true {
		t.Fatalf("expected sendy_accessible true, got %v", resp.Config)
	}
	if resp.Config["api_key_masked"] != "test-api..." {
		t.Fatalf("expected masked key, got %v", resp.Config["api_key_masked"])
	}
}

func TestSendTestEmailInvalidAddress(t *testing.T) {
	r := newSendyTestStack("http://localhost:1", nil)

	w := postJSON(r, "/send-test-email", `{"email": "not-an-email"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Invalid email address format" {
		t.Fatalf("unexpected message: %v", resp)
	}
}

func TestSendTestEmailViaSendy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("bad form: %v", err)
		}
		if got := r.PostForm.Get("test_email"); got != "tester@example.com" {
			t.Errorf("expected test_email, got %q", got)
		}
		w.Write([]byte("Campaign created"))
	}))
	defer server.Close()

	r := newSendyTestStack(server.URL, nil)
	w := postJSON(r, "/send-test-email", `{"email": "tester@example.com", "subject": "Hello", "body": "Delivery check."}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
}

type recordingSender struct {
	to      string
	subject string
	err     error
}

func (s *recordingSender) Send(to, subject, htmlBody, textBody string) error {
	s.to = to
	s.subject = subject
	return s.err
}

func TestSendTestEmailViaSMTP(t *testing.T) {
	sender := &recordingSender{}
	r := newSendyTestStack("http://localhost:1", sender)

	w := postJSON(r, "/send-test-email", `{"email": "tester@example.com", "subject": "Hello"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	if sender.to != "tester@example.com" {
		t.Fatalf("expected smtp delivery, got %q", sender.to)
	}
	if sender.subject != "[TEST] Hello" {
		t.Fatalf("unexpected subject %q", sender.subject)
	}
}
