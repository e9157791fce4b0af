package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func okHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"app error passthrough", apperror.Forbidden("nope"), http.StatusForbidden},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"email in use", fmt.Errorf("create: %w", domain.ErrEmailInUse), http.StatusConflict},
		{"already applied", domain.ErrAlreadyApplied, http.StatusConflict},
		{"no account", domain.ErrNoAccount, http.StatusNotFound},
		{"not found", fmt.Errorf("job x: %w", domain.ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, toAppError(tt.err).Code)
		})
	}
}

func TestErrorHandlerHidesInternalErrors(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		c.Error(errors.New("database password is hunter2"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.Contains(t, w.Body.String(), `"request_id"`)
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "0b6f3f0e-8a44-4a3b-9c55-6f8e1c2b9d11")
	w := serve(r, req)
	assert.Equal(t, "0b6f3f0e-8a44-4a3b-9c55-6f8e1c2b9d11", w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w = serve(r, req)
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequireRole(t *testing.T) {
	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(string(domain.KeyUserRole), role)
			c.Next()
		}
	}

	for role, code := range map[string]int{
		domain.RoleEmployer:  http.StatusOK,
		domain.RoleJobSeeker: http.StatusForbidden,
		"":                   http.StatusForbidden,
	} {
		r := gin.New()
		r.GET("/", withRole(role), RequireRole(domain.RoleEmployer), okHandler)
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, code, w.Code, "role %q", role)
	}
}

func TestRateLimitInMemory(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(GlobalRateLimitConfig(2, time.Minute)))
	r.GET("/", okHandler)

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := AuthRateLimitConfig(1, time.Minute)
	cfg.Client = client

	r := gin.New()
	r.Use(RateLimitMiddleware(cfg))
	r.POST("/login", okHandler)

	w := serve(r, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusOK, w.Code)
	w = serve(r, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	mr.FastForward(2 * time.Minute)
	w = serve(r, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Auth limits fail closed when Redis is down
	mr.Close()
	w = serve(r, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCSRF(t *testing.T) {
	r := gin.New()
	r.Use(CSRFMiddleware(false))
	r.POST("/mutate", okHandler)
	r.GET("/read", okHandler)

	cookieReq := func(method, path, csrfCookie, csrfHeader string) *http.Request {
		req := httptest.NewRequest(method, path, nil)
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "token"})
		if csrfCookie != "" {
			req.AddCookie(&http.Cookie{Name: CSRFTokenCookieName, Value: csrfCookie})
		}
		if csrfHeader != "" {
			req.Header.Set(CSRFTokenHeaderName, csrfHeader)
		}
		return req
	}

	t.Run("safe methods pass and receive a token", func(t *testing.T) {
		w := serve(r, cookieReq(http.MethodGet, "/read", "", ""))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), CSRFTokenCookieName+"=")
	})

	t.Run("cookie session without header", func(t *testing.T) {
		w := serve(r, cookieReq(http.MethodPost, "/mutate", "abc", ""))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("mismatched header", func(t *testing.T) {
		w := serve(r, cookieReq(http.MethodPost, "/mutate", "abc", "xyz"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("matching header", func(t *testing.T) {
		w := serve(r, cookieReq(http.MethodPost, "/mutate", "abc", "abc"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bearer clients are exempt", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/mutate", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := serve(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCORSAllowsDevOrigin(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil, false))
	r.GET("/", okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := serve(r, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	r = gin.New()
	r.Use(CORSMiddleware([]string{"https://jobs.example.com"}, true))
	r.GET("/", okHandler)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
