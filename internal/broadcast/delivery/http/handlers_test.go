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

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/model"
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

type mockAuthorizer struct {
	mock.Mock
}

func (m *mockAuthorizer) Authorize(ctx context.Context, principal *model.Scope, channel string) (broadcast.Decision, error) {
	args := m.Called(ctx, principal, channel)
	return args.Get(0).(broadcast.Decision), args.Error(1)
}

func authRequest(t *testing.T, channelName string, userID int64, name string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body := strings.NewReader(`{"channel_name": "` + channelName + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/broadcasting/auth", body)
	req.Header.Set("Content-Type", "application/json")

	ctx := scope.SetPayloadToContext(req.Context(), scope.Payload{UserID: userID, Name: name})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req.WithContext(ctx)
	return w, c
}

func TestAuthorizeChannelPrivateAllow(t *testing.T) {
	authz := &mockAuthorizer{}
	authz.On("Authorize", mock.Anything, &model.Scope{UserID: 5, Name: "Alice"}, "orders.5").
		Return(broadcast.Allow(), nil)

	h := New(noopLogger{}, authz)

	w, c := authRequest(t, "private-orders.5", 5, "Alice")
	h.AuthorizeChannel(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestAuthorizeChannelPresenceAllow(t *testing.T) {
	authz := &mockAuthorizer{}
	authz.On("Authorize", mock.Anything, mock.Anything, "chat-room").
		Return(broadcast.AllowWithPresence(broadcast.PresenceMember{ID: 1, Name: "Alice"}), nil)

	h := New(noopLogger{}, authz)

	w, c := authRequest(t, "presence-chat-room", 1, "Alice")
	h.AuthorizeChannel(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ChannelData *broadcast.PresenceMember `json:"channel_data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ChannelData)
	assert.Equal(t, broadcast.PresenceMember{ID: 1, Name: "Alice"}, *resp.ChannelData)
}

func TestAuthorizeChannelDeny(t *testing.T) {
	authz := &mockAuthorizer{}
	authz.On("Authorize", mock.Anything, mock.Anything, "orders.5").
		Return(broadcast.Deny(), nil)

	h := New(noopLogger{}, authz)

	w, c := authRequest(t, "private-orders.5", 7, "Bob")
	h.AuthorizeChannel(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorizeChannelWithoutPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := New(noopLogger{}, &mockAuthorizer{})

	req := httptest.NewRequest(http.MethodPost, "/broadcasting/auth", strings.NewReader(`{"channel_name":"private-orders.5"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	h.AuthorizeChannel(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
