package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutclear/scout/internal/brand"
	"github.com/scoutclear/scout/internal/config"
	"github.com/scoutclear/scout/internal/logging"
	"github.com/scoutclear/scout/internal/mail"
)

type fakeSender struct {
	mu     sync.Mutex
	sent   []mail.Message
	sendFn func(ctx context.Context, msg mail.Message) (string, error)
}

func (f *fakeSender) Name() string { return "Resend" }

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) (string, error) {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	if f.sendFn != nil {
		return f.sendFn(ctx, msg)
	}
	return "email_123", nil
}

func (f *fakeSender) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func configuredMail() config.Mail {
	return config.Mail{
		Provider:     config.ProviderResend,
		ResendAPIKey: "re_test",
		ToAddress:    "hello@scoutclear.com",
		FromAddress:  "site@scoutclear.com",
	}
}

func newTestServer(t *testing.T, sender mail.Sender, m config.Mail) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "development",
		Port:        "0",
		Mail:        m,
	}
	s, err := NewServer(cfg, logging.Nop(), Deps{Sender: sender, Brand: brand.Default()})
	require.NoError(t, err)
	require.NoError(t, s.Init())
	return s.Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://scoutclear.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestContactSuccess(t *testing.T) {
	sender := &fakeSender{}
	h := newTestServer(t, sender, configuredMail())

	rec := do(h, http.MethodPost, "/api/contact", `{"name":"Jane Doe","email":"jane@x.com","message":"Need quote"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	require.Equal(t, 1, sender.calls())

	msg := sender.sent[0]
	assert.Contains(t, msg.Subject, "Jane Doe")
	assert.Equal(t, "New SCOUT inquiry — Jane Doe", msg.Subject)
	assert.Equal(t, "jane@x.com", msg.ReplyTo)
	assert.Equal(t, "hello@scoutclear.com", msg.To)
	assert.Equal(t, "site@scoutclear.com", msg.From)
	assert.NotContains(t, msg.HTML, "Phone:")
	assert.Equal(t, "https://scoutclear.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestContactHoneypot(t *testing.T) {
	sender := &fakeSender{}
	h := newTestServer(t, sender, configuredMail())

	rec := do(h, http.MethodPost, "/api/contact",
		`{"name":"Jane Doe","email":"jane@x.com","message":"Need quote","website":"http://spam.example"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, 0, sender.calls())
}

func TestContactHoneypotBeforeRequiredAndConfig(t *testing.T) {
	sender := &fakeSender{}
	h := newTestServer(t, sender, config.Mail{Provider: config.ProviderResend})

	rec := do(h, http.MethodPost, "/api/contact", `{"website":"x"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, 0, sender.calls())
}

func TestContactHoneypotAnyFilledValue(t *testing.T) {
	for _, website := range []string{`1`, `true`, `{"a":1}`, `[]`, `"x"`} {
		sender := &fakeSender{}
		h := newTestServer(t, sender, configuredMail())

		rec := do(h, http.MethodPost, "/api/contact",
			`{"name":"Jane Doe","email":"jane@x.com","message":"Need quote","website":`+website+`}`)

		assert.Equal(t, http.StatusOK, rec.Code, website)
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
		assert.Equal(t, 0, sender.calls(), website)
	}
}

func TestContactEmptyHoneypotValuesAreNotSpam(t *testing.T) {
	for _, website := range []string{`0`, `false`, `""`, `null`} {
		sender := &fakeSender{}
		h := newTestServer(t, sender, configuredMail())

		rec := do(h, http.MethodPost, "/api/contact",
			`{"name":"Jane Doe","email":"jane@x.com","message":"Need quote","website":`+website+`}`)

		assert.Equal(t, http.StatusOK, rec.Code, website)
		assert.Equal(t, 1, sender.calls(), website)
	}
}

func TestContactCoercesScalars(t *testing.T) {
	sender := &fakeSender{}
	h := newTestServer(t, sender, configuredMail())

	rec := do(h, http.MethodPost, "/api/contact",
		`{"name":12345,"email":"jane@x.com","phone":6143219845,"company":true,"message":"Need quote"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	require.Equal(t, 1, sender.calls())

	msg := sender.sent[0]
	assert.Equal(t, "New SCOUT inquiry — 12345", msg.Subject)
	assert.Contains(t, msg.HTML, "<strong>Name:</strong> 12345")
	assert.Contains(t, msg.HTML, "<strong>Phone:</strong> 6143219845")
	assert.Contains(t, msg.HTML, "<strong>Company / HOA:</strong> true")
}

func TestContactMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no name", `{"email":"jane@x.com","message":"Need quote"}`},
		{"no email", `{"name":"Jane","message":"Need quote"}`},
		{"empty message", `{"name":"Jane","email":"jane@x.com","message":""}`},
		{"empty object", `{}`},
		{"empty body", ``},
		{"null", `null`},
		{"array body", `[1,2]`},
		{"string body", `"hello"`},
		{"zero name", `{"name":0,"email":"jane@x.com","message":"hi"}`},
		{"false email", `{"name":"Jane","email":false,"message":"hi"}`},
		{"null message", `{"name":"Jane","email":"jane@x.com","message":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			h := newTestServer(t, sender, configuredMail())

			rec := do(h, http.MethodPost, "/api/contact", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
			assert.Equal(t, 0, sender.calls())
		})
	}
}

func TestContactMalformedBody(t *testing.T) {
	for _, body := range []string{`{"name":`, `not json`, `{"name":"Jane"}}`} {
		sender := &fakeSender{}
		h := newTestServer(t, sender, configuredMail())

		rec := do(h, http.MethodPost, "/api/contact", body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.JSONEq(t, `{"error":"Failed to send message"}`, rec.Body.String())
		assert.Equal(t, 0, sender.calls())
	}
}

func TestContactNotConfigured(t *testing.T) {
	sender := &fakeSender{}
	h := newTestServer(t, sender, config.Mail{Provider: config.ProviderResend, ToAddress: "hello@scoutclear.com"})

	rec := do(h, http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@x.com","message":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t,
		"Server is not configured (missing RESEND_API_KEY / CONTACT_TO_EMAIL / CONTACT_FROM_EMAIL)",
		decode(t, rec)["error"])
	assert.Equal(t, 0, sender.calls())
}

func TestContactProviderError(t *testing.T) {
	sender := &fakeSender{sendFn: func(context.Context, mail.Message) (string, error) {
		return "", &mail.ProviderError{Provider: "resend", StatusCode: 422, Message: "Invalid `from` field"}
	}}
	h := newTestServer(t, sender, configuredMail())

	rec := do(h, http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@x.com","message":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t,
		`{"error":"Resend failed","details":{"provider":"resend","statusCode":422,"message":"Invalid `+"`from`"+` field"}}`,
		rec.Body.String())
}

func TestContactPanicIsGeneric(t *testing.T) {
	sender := &fakeSender{sendFn: func(context.Context, mail.Message) (string, error) {
		panic("provider client blew up")
	}}
	h := newTestServer(t, sender, configuredMail())

	rec := do(h, http.MethodPost, "/api/contact", `{"name":"Jane","email":"jane@x.com","message":"hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send message"}`, rec.Body.String())
}

func TestContactEscapesAndTrims(t *testing.T) {
	sender := &fakeSender{}
	h := newTestServer(t, sender, configuredMail())

	rec := do(h, http.MethodPost, "/api/contact",
		`{"name":"  <b>Jane</b>  ","email":"jane@x.com","phone":"(614) 321-9845","message":"Tom & \"Jerry\" 'quote'"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, sender.calls())

	msg := sender.sent[0]
	assert.Equal(t, "New SCOUT inquiry — &lt;b&gt;Jane&lt;/b&gt;", msg.Subject)
	assert.Contains(t, msg.HTML, "Tom &amp; &quot;Jerry&quot; &#039;quote&#039;")
	assert.Contains(t, msg.HTML, "<strong>Phone:</strong> (614) 321-9845")
	assert.NotContains(t, msg.HTML, "<b>Jane</b>")
}

func TestContactWhitespaceOnlyPassesRequiredCheck(t *testing.T) {
	sender := &fakeSender{}
	h := newTestServer(t, sender, configuredMail())

	rec := do(h, http.MethodPost, "/api/contact", `{"name":"   ","email":"jane@x.com","message":"hi"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, sender.calls())
	assert.Equal(t, "New SCOUT inquiry — ", sender.sent[0].Subject)
}

func TestContactPreflight(t *testing.T) {
	h := newTestServer(t, &fakeSender{}, configuredMail())

	rec := do(h, http.MethodOptions, "/api/contact", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestContactMethodNotAllowed(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		sender := &fakeSender{}
		h := newTestServer(t, sender, configuredMail())

		rec := do(h, method, "/api/contact", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
		assert.Equal(t, 0, sender.calls())
	}
}

func TestHealthAndSite(t *testing.T) {
	h := newTestServer(t, &fakeSender{}, configuredMail())

	rec := do(h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["ok"])

	rec = do(h, http.MethodGet, "/api/site", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "tel:6143219845", body["telHref"])
	assert.Equal(t, "SCOUT", body["brand"].(map[string]any)["name"])
}

func TestNewServerRequiresSender(t *testing.T) {
	_, err := NewServer(&config.Config{}, logging.Nop(), Deps{})
	assert.Error(t, err)
}
