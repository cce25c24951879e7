package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"broadcast-srv/config"
	"broadcast-srv/pkg/scope"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Info(ctx context.Context, arg ...any)                    {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Error(ctx context.Context, arg ...any)                   {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type mockScopeManager struct {
	mock.Mock
}

func (m *mockScopeManager) CreateToken(p scope.Payload) (string, error) {
	args := m.Called(p)
	return args.String(0), args.Error(1)
}

func (m *mockScopeManager) Verify(token string) (scope.Payload, error) {
	args := m.Called(token)
	return args.Get(0).(scope.Payload), args.Error(1)
}

func testRouter(mw Middleware, authed gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api", mw.Auth(), authed)
	r.GET("/page", mw.AuthRedirect("/login"), authed)
	return r
}

func payloadEcho(c *gin.Context) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": payload.UserID})
}

func newMiddleware(mgr scope.Manager) Middleware {
	return New(noopLogger{}, mgr, config.CookieConfig{Name: "broadcast_auth_token"})
}

func TestAuthAcceptsCookie(t *testing.T) {
	mgr := &mockScopeManager{}
	mgr.On("Verify", "good-token").Return(scope.Payload{UserID: 1, Name: "Alice"}, nil)

	r := testRouter(newMiddleware(mgr), payloadEcho)

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.AddCookie(&http.Cookie{Name: "broadcast_auth_token", Value: "good-token"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":1`)
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	mgr := &mockScopeManager{}
	mgr.On("Verify", "good-token").Return(scope.Payload{UserID: 2, Name: "Bob"}, nil)

	r := testRouter(newMiddleware(mgr), payloadEcho)

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := testRouter(newMiddleware(&mockScopeManager{}), payloadEcho)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	mgr := &mockScopeManager{}
	mgr.On("Verify", "bad-token").Return(scope.Payload{}, errors.New("expired"))

	r := testRouter(newMiddleware(mgr), payloadEcho)

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.AddCookie(&http.Cookie{Name: "broadcast_auth_token", Value: "bad-token"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRedirectSendsToLogin(t *testing.T) {
	r := testRouter(newMiddleware(&mockScopeManager{}), payloadEcho)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthRedirectPassesValidSession(t *testing.T) {
	mgr := &mockScopeManager{}
	mgr.On("Verify", "good-token").Return(scope.Payload{UserID: 1, Name: "Alice"}, nil)

	r := testRouter(newMiddleware(mgr), payloadEcho)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: "broadcast_auth_token", Value: "good-token"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
