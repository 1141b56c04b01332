package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutclear/scout/internal/api/constants"
	"github.com/scoutclear/scout/internal/api/dto/v1/contact"
	"github.com/scoutclear/scout/internal/logging"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/contact", handlers...)
	r.OPTIONS("/api/contact", handlers...)
	return r
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		cfg        CORSConfig
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{"dev echoes any origin", CORSConfig{}, "http://localhost:5173", http.StatusOK, "http://localhost:5173"},
		{"dev without origin", CORSConfig{}, "", http.StatusOK, "*"},
		{"prod listed origin", CORSConfig{Production: true, AllowedOrigins: []string{"https://scoutclear.com"}}, "https://scoutclear.com", http.StatusOK, "https://scoutclear.com"},
		{"prod wildcard", CORSConfig{Production: true, AllowedOrigins: []string{"*"}}, "https://a.example", http.StatusOK, "https://a.example"},
		{"prod unlisted origin", CORSConfig{Production: true, AllowedOrigins: []string{"https://scoutclear.com"}}, "https://evil.example", http.StatusOK, ""},
		{"prod no origin header", CORSConfig{Production: true, AllowedOrigins: []string{"https://scoutclear.com"}}, "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(CORS(tt.cfg), ok)
			req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	reached := false
	r := newRouter(CORS(CORSConfig{}), func(c *gin.Context) { reached = true })

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://scoutclear.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, reached)
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORSUnlistedOriginPreflight(t *testing.T) {
	cfg := CORSConfig{Production: true, AllowedOrigins: []string{"https://scoutclear.com"}}
	r := newRouter(CORS(cfg), ok)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	var seen string
	r := newRouter(RequestID(), func(c *gin.Context) { seen = GetRequestID(c) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
}

func TestBindContactRequest(t *testing.T) {
	var got *contact.ContactRequest
	r := newRouter(NewValidationMiddleware().BindContactRequest(), func(c *gin.Context) {
		v, _ := c.Get(constants.ContextKeyContact)
		got = v.(*contact.ContactRequest)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Jane","propertyAddress":"1 Main St","extra":true}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Jane", got.Name.String())
	assert.Equal(t, "1 Main St", got.PropertyAddress.String())

	got = nil
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &contact.ContactRequest{}, got)

	for _, body := range []string{`null`, `[1,2]`, `"text"`, `42`} {
		got = nil
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code, body)
		assert.Equal(t, &contact.ContactRequest{}, got, body)
	}

	got = nil
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":12345,"website":true}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12345", got.Name.String())
	assert.True(t, got.IsSpam())

	for _, body := range []string{`not json`, `{"name":`, `{"name":"Jane"} trailing`} {
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.JSONEq(t, `{"error":"Failed to send message"}`, rec.Body.String())
	}
}

func TestRecovery(t *testing.T) {
	r := newRouter(Recovery(logging.Nop(), "Failed to send message"), func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to send message"}`, rec.Body.String())
}

func TestRequestLoggerSetsLogger(t *testing.T) {
	var sb strings.Builder
	logger := logging.New(&sb, logging.LevelInfo)
	logger.SetLogRequests(true)

	r := newRouter(RequestLogger(logger), func(c *gin.Context) {
		_, exists := c.Get(constants.ContextKeyLogger)
		assert.True(t, exists)
		c.Status(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

	assert.Contains(t, sb.String(), "/api/contact")
}
