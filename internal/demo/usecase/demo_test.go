package usecase

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/demo"
	"broadcast-srv/internal/model"
	"broadcast-srv/internal/post"
	"broadcast-srv/internal/user"
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

// fakeSink records every publish and notify synchronously.
type fakeSink struct {
	published []publishedEvent
	notified  []notifiedPayload
}

type publishedEvent struct {
	channel broadcast.Channel
	kind    string
	payload map[string]any
}

type notifiedPayload struct {
	principalID int64
	payload     map[string]any
}

func (s *fakeSink) Publish(ctx context.Context, channel broadcast.Channel, kind string, payload map[string]any) error {
	s.published = append(s.published, publishedEvent{channel: channel, kind: kind, payload: payload})
	return nil
}

func (s *fakeSink) Notify(ctx context.Context, principalID int64, payload map[string]any) error {
	s.notified = append(s.notified, notifiedPayload{principalID: principalID, payload: payload})
	return nil
}

type mockUserUC struct {
	mock.Mock
}

func (m *mockUserUC) First(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserUC) Detail(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserUC) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

type mockPostUC struct {
	mock.Mock
}

func (m *mockPostUC) DetailOwned(ctx context.Context, sc model.Scope) (model.Post, error) {
	args := m.Called(ctx, sc)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockPostUC) Update(ctx context.Context, sc model.Scope, ip post.UpdateInput) (model.Post, error) {
	args := m.Called(ctx, sc, ip)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *mockPostUC) IsOwned(ctx context.Context, postID, ownerID int64) (bool, error) {
	args := m.Called(ctx, postID, ownerID)
	return args.Bool(0), args.Error(1)
}

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

var testTime = time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

func newTestUsecase(users *mockUserUC, posts *mockPostUC, sink *fakeSink, mgr *mockScopeManager) *usecase {
	uc := New(noopLogger{}, users, posts, sink, mgr).(*usecase)
	uc.clock = func() time.Time { return testTime }
	uc.rng = rand.New(rand.NewSource(1))
	return uc
}

func alice() model.Scope { return model.Scope{UserID: 1, Name: "Alice"} }

func TestLogin(t *testing.T) {
	users := &mockUserUC{}
	users.On("First", mock.Anything).Return(model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

	mgr := &mockScopeManager{}
	mgr.On("CreateToken", scope.Payload{UserID: 1, Name: "Alice", Email: "alice@example.com"}).Return("token-1", nil)

	uc := newTestUsecase(users, &mockPostUC{}, &fakeSink{}, mgr)
	sess, err := uc.Login(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "token-1", sess.Token)
	assert.Equal(t, int64(1), sess.User.ID)
}

func TestLoginNoUsers(t *testing.T) {
	users := &mockUserUC{}
	users.On("First", mock.Anything).Return(model.User{}, user.ErrUserNotFound)

	uc := newTestUsecase(users, &mockPostUC{}, &fakeSink{}, &mockScopeManager{})
	_, err := uc.Login(context.Background())

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestSwitchUser(t *testing.T) {
	users := &mockUserUC{}
	users.On("Detail", mock.Anything, int64(2)).Return(model.User{ID: 2, Name: "Bob", Email: "bob@example.com"}, nil)

	mgr := &mockScopeManager{}
	mgr.On("CreateToken", scope.Payload{UserID: 2, Name: "Bob", Email: "bob@example.com"}).Return("token-2", nil)

	uc := newTestUsecase(users, &mockPostUC{}, &fakeSink{}, mgr)
	sess, err := uc.SwitchUser(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, "token-2", sess.Token)
	assert.Equal(t, "Bob", sess.User.Name)
}

func TestIndex(t *testing.T) {
	users := &mockUserUC{}
	users.On("Detail", mock.Anything, int64(1)).Return(model.User{ID: 1, Name: "Alice"}, nil)
	users.On("List", mock.Anything).Return([]model.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, nil)

	posts := &mockPostUC{}
	posts.On("DetailOwned", mock.Anything, alice()).Return(model.Post{ID: 3, UserID: 1, Title: "First"}, nil)

	uc := newTestUsecase(users, posts, &fakeSink{}, &mockScopeManager{})
	out, err := uc.Index(context.Background(), alice())

	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Current.ID)
	assert.Len(t, out.Users, 2)
	assert.Equal(t, int64(3), out.Post.ID)
}

func TestIndexNoPost(t *testing.T) {
	users := &mockUserUC{}
	users.On("Detail", mock.Anything, int64(1)).Return(model.User{ID: 1, Name: "Alice"}, nil)
	users.On("List", mock.Anything).Return([]model.User{{ID: 1, Name: "Alice"}}, nil)

	posts := &mockPostUC{}
	posts.On("DetailOwned", mock.Anything, alice()).Return(model.Post{}, post.ErrPostNotFound)

	uc := newTestUsecase(users, posts, &fakeSink{}, &mockScopeManager{})
	_, err := uc.Index(context.Background(), alice())

	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestTriggerPublicEvent(t *testing.T) {
	sink := &fakeSink{}
	uc := newTestUsecase(&mockUserUC{}, &mockPostUC{}, sink, &mockScopeManager{})

	err := uc.TriggerPublicEvent(context.Background(), alice())

	assert.NoError(t, err)
	assert.Len(t, sink.published, 1)
	assert.Equal(t, broadcast.Announcements(), sink.published[0].channel)
	assert.Equal(t, broadcast.KindPublicAnnouncement, sink.published[0].kind)
	assert.Equal(t, demo.PublicMessage, sink.published[0].payload["message"])
}

func TestTriggerPrivateEvent(t *testing.T) {
	sink := &fakeSink{}
	uc := newTestUsecase(&mockUserUC{}, &mockPostUC{}, sink, &mockScopeManager{})

	err := uc.TriggerPrivateEvent(context.Background(), alice())

	assert.NoError(t, err)
	assert.Len(t, sink.published, 1)
	assert.Equal(t, broadcast.Orders(1), sink.published[0].channel)
	assert.Equal(t, int64(1), sink.published[0].payload["orderId"])
	assert.Contains(t, demo.OrderStatuses, sink.published[0].payload["status"])
}

func TestTriggerPresenceEvent(t *testing.T) {
	sink := &fakeSink{}
	uc := newTestUsecase(&mockUserUC{}, &mockPostUC{}, sink, &mockScopeManager{})

	err := uc.TriggerPresenceEvent(context.Background(), alice())

	assert.NoError(t, err)
	assert.Len(t, sink.published, 1)
	assert.Equal(t, broadcast.ChatRoom(), sink.published[0].channel)
	assert.Equal(t, "Alice", sink.published[0].payload["userName"])
	assert.Contains(t, demo.ChatMessages, sink.published[0].payload["message"])
}

func TestTriggerModelEvent(t *testing.T) {
	posts := &mockPostUC{}
	posts.On("Update", mock.Anything, alice(), mock.MatchedBy(func(ip post.UpdateInput) bool {
		return strings.HasPrefix(ip.Title, "Updated at ") && ip.Body != ""
	})).Return(model.Post{ID: 3, UserID: 1}, nil)

	sink := &fakeSink{}
	uc := newTestUsecase(&mockUserUC{}, posts, sink, &mockScopeManager{})

	err := uc.TriggerModelEvent(context.Background(), alice())

	assert.NoError(t, err)
	posts.AssertExpectations(t)
	// The post use case owns the broadcast; the demo trigger publishes
	// nothing itself.
	assert.Empty(t, sink.published)
}

func TestTriggerModelEventNoPost(t *testing.T) {
	posts := &mockPostUC{}
	posts.On("Update", mock.Anything, alice(), mock.Anything).Return(model.Post{}, post.ErrPostNotFound)

	uc := newTestUsecase(&mockUserUC{}, posts, &fakeSink{}, &mockScopeManager{})
	err := uc.TriggerModelEvent(context.Background(), alice())

	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestTriggerNotification(t *testing.T) {
	sink := &fakeSink{}
	uc := newTestUsecase(&mockUserUC{}, &mockPostUC{}, sink, &mockScopeManager{})

	err := uc.TriggerNotification(context.Background(), alice())

	assert.NoError(t, err)
	assert.Len(t, sink.notified, 1)
	assert.Equal(t, int64(1), sink.notified[0].principalID)
	assert.Equal(t, demo.NotificationTitle, sink.notified[0].payload["title"])
	assert.Equal(t, "You received a broadcast notification at 12:30:00", sink.notified[0].payload["body"])
	assert.Empty(t, sink.published)
}

// The same seed must produce the same sequence of picks.
func TestSeededPicksAreReproducible(t *testing.T) {
	run := func() []string {
		sink := &fakeSink{}
		uc := newTestUsecase(&mockUserUC{}, &mockPostUC{}, sink, &mockScopeManager{})

		var picks []string
		for i := 0; i < 5; i++ {
			_ = uc.TriggerPrivateEvent(context.Background(), alice())
			picks = append(picks, sink.published[i].payload["status"].(string))
		}
		return picks
	}

	assert.Equal(t, run(), run())
}
