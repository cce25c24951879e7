package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"broadcast-srv/internal/demo"
	"broadcast-srv/internal/model"
	"broadcast-srv/internal/post"
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

type mockDemoUC struct {
	mock.Mock
}

func (m *mockDemoUC) Login(ctx context.Context) (demo.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(demo.Session), args.Error(1)
}

func (m *mockDemoUC) SwitchUser(ctx context.Context, userID int64) (demo.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(demo.Session), args.Error(1)
}

func (m *mockDemoUC) Index(ctx context.Context, sc model.Scope) (demo.IndexOutput, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).(demo.IndexOutput), args.Error(1)
}

func (m *mockDemoUC) TriggerPublicEvent(ctx context.Context, sc model.Scope) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *mockDemoUC) TriggerPrivateEvent(ctx context.Context, sc model.Scope) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *mockDemoUC) TriggerPresenceEvent(ctx context.Context, sc model.Scope) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *mockDemoUC) TriggerModelEvent(ctx context.Context, sc model.Scope) error {
	return m.Called(ctx, sc).Error(0)
}

func (m *mockDemoUC) TriggerNotification(ctx context.Context, sc model.Scope) error {
	return m.Called(ctx, sc).Error(0)
}

func testCookieConfig() CookieConfig {
	return CookieConfig{Name: "broadcast_auth_token", MaxAge: 7200, HttpOnly: true}
}

func testContext(w *httptest.ResponseRecorder, req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func authedContext(w *httptest.ResponseRecorder, req *http.Request, userID int64, name string) *gin.Context {
	ctx := scope.SetPayloadToContext(req.Context(), scope.Payload{UserID: userID, Name: name})
	return testContext(w, req.WithContext(ctx))
}

func TestLoginSetsCookieAndRedirects(t *testing.T) {
	uc := &mockDemoUC{}
	uc.On("Login", mock.Anything).Return(demo.Session{
		Token: "token-1",
		User:  model.User{ID: 1, Name: "Alice"},
	}, nil)

	h := New(noopLogger{}, uc, testCookieConfig())

	w := httptest.NewRecorder()
	h.Login(testContext(w, httptest.NewRequest(http.MethodGet, "/login", nil)))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, "broadcast_auth_token=token-1")
	assert.Contains(t, cookie, "HttpOnly")
}

func TestSwitchUserIssuesFreshSession(t *testing.T) {
	uc := &mockDemoUC{}
	uc.On("SwitchUser", mock.Anything, int64(2)).Return(demo.Session{
		Token: "token-2",
		User:  model.User{ID: 2, Name: "Bob"},
	}, nil)

	h := New(noopLogger{}, uc, testCookieConfig())

	body := strings.NewReader(`{"user_id": 2}`)
	req := httptest.NewRequest(http.MethodPost, "/switch-user", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c := authedContext(w, req, 1, "Alice")
	h.SwitchUser(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "broadcast_auth_token=token-2")
}

func TestIndexReturnsDataBag(t *testing.T) {
	uc := &mockDemoUC{}
	uc.On("Index", mock.Anything, model.Scope{UserID: 1, Name: "Alice"}).Return(demo.IndexOutput{
		Current: model.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
		Users:   []model.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}},
		Post:    model.Post{ID: 3, UserID: 1, Title: "First", Body: "Body"},
	}, nil)

	h := New(noopLogger{}, uc, testCookieConfig())

	w := httptest.NewRecorder()
	h.Index(authedContext(w, httptest.NewRequest(http.MethodGet, "/", nil), 1, "Alice"))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data indexResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Data.Current.ID)
	assert.Equal(t, "alice@example.com", resp.Data.Current.Email)
	assert.Len(t, resp.Data.Users, 2)
	assert.Equal(t, "First", resp.Data.Post.Title)
}

func TestIndexWithoutPrincipal(t *testing.T) {
	h := New(noopLogger{}, &mockDemoUC{}, testCookieConfig())

	w := httptest.NewRecorder()
	h.Index(testContext(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestModelEventWithoutPostIs404(t *testing.T) {
	uc := &mockDemoUC{}
	uc.On("TriggerModelEvent", mock.Anything, model.Scope{UserID: 1, Name: "Alice"}).Return(post.ErrPostNotFound)

	h := New(noopLogger{}, uc, testCookieConfig())

	w := httptest.NewRecorder()
	h.ModelEvent(authedContext(w, httptest.NewRequest(http.MethodPost, "/model-event", nil), 1, "Alice"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTriggersRedirectBack(t *testing.T) {
	sc := model.Scope{UserID: 1, Name: "Alice"}

	tests := []struct {
		name    string
		op      string
		handler func(h *Handler, c *gin.Context)
	}{
		{"public event", "TriggerPublicEvent", func(h *Handler, c *gin.Context) { h.PublicEvent(c) }},
		{"private event", "TriggerPrivateEvent", func(h *Handler, c *gin.Context) { h.PrivateEvent(c) }},
		{"presence event", "TriggerPresenceEvent", func(h *Handler, c *gin.Context) { h.PresenceEvent(c) }},
		{"model event", "TriggerModelEvent", func(h *Handler, c *gin.Context) { h.ModelEvent(c) }},
		{"notification", "TriggerNotification", func(h *Handler, c *gin.Context) { h.Notification(c) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockDemoUC{}
			uc.On(tt.op, mock.Anything, sc).Return(nil)

			h := New(noopLogger{}, uc, testCookieConfig())

			w := httptest.NewRecorder()
			c := authedContext(w, httptest.NewRequest(http.MethodPost, "/", nil), 1, "Alice")
			tt.handler(h, c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))
			uc.AssertExpectations(t)
		})
	}
}
