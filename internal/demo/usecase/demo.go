package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/demo"
	"broadcast-srv/internal/model"
	"broadcast-srv/internal/post"
	"broadcast-srv/pkg/scope"
)

func (uc *usecase) Login(ctx context.Context) (demo.Session, error) {
	usr, err := uc.userUC.First(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.demo.usecase.Login: %v", err)
		return demo.Session{}, err
	}

	return uc.issueSession(ctx, usr)
}

func (uc *usecase) SwitchUser(ctx context.Context, userID int64) (demo.Session, error) {
	usr, err := uc.userUC.Detail(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.demo.usecase.SwitchUser: %v", err)
		return demo.Session{}, err
	}

	return uc.issueSession(ctx, usr)
}

func (uc *usecase) issueSession(ctx context.Context, usr model.User) (demo.Session, error) {
	token, err := uc.scopeMgr.CreateToken(scope.Payload{
		UserID: usr.ID,
		Name:   usr.Name,
		Email:  usr.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.demo.usecase.issueSession: %v", err)
		return demo.Session{}, err
	}

	return demo.Session{Token: token, User: usr}, nil
}

func (uc *usecase) Index(ctx context.Context, sc model.Scope) (demo.IndexOutput, error) {
	cur, err := uc.userUC.Detail(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.demo.usecase.Index: %v", err)
		return demo.IndexOutput{}, err
	}

	users, err := uc.userUC.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.demo.usecase.Index: %v", err)
		return demo.IndexOutput{}, err
	}

	// No owned post fails the whole request; nothing renders partially.
	p, err := uc.postUC.DetailOwned(ctx, sc)
	if err != nil {
		if err != post.ErrPostNotFound {
			uc.l.Errorf(ctx, "internal.demo.usecase.Index: %v", err)
		}
		return demo.IndexOutput{}, err
	}

	return demo.IndexOutput{Current: cur, Users: users, Post: p}, nil
}

func (uc *usecase) TriggerPublicEvent(ctx context.Context, sc model.Scope) error {
	evt := broadcast.NewPublicAnnouncement(demo.PublicMessage, uc.clock())
	return uc.publish(ctx, "TriggerPublicEvent", evt)
}

func (uc *usecase) TriggerPrivateEvent(ctx context.Context, sc model.Scope) error {
	// The demo treats the principal's id as the order id, so the update
	// lands on that principal's orders channel.
	evt := broadcast.NewOrderStatusUpdate(sc.UserID, uc.pick(demo.OrderStatuses), uc.clock())
	return uc.publish(ctx, "TriggerPrivateEvent", evt)
}

func (uc *usecase) TriggerPresenceEvent(ctx context.Context, sc model.Scope) error {
	evt := broadcast.NewChatMessage(sc.Name, uc.pick(demo.ChatMessages), uc.clock())
	return uc.publish(ctx, "TriggerPresenceEvent", evt)
}

func (uc *usecase) TriggerModelEvent(ctx context.Context, sc model.Scope) error {
	now := uc.clock()
	_, err := uc.postUC.Update(ctx, sc, post.UpdateInput{
		Title: fmt.Sprintf("Updated at %s", now.Format(time.TimeOnly)),
		Body:  uc.fillerBody(),
	})
	if err != nil {
		if err != post.ErrPostNotFound {
			uc.l.Errorf(ctx, "internal.demo.usecase.TriggerModelEvent: %v", err)
		}
		return err
	}

	return nil
}

func (uc *usecase) TriggerNotification(ctx context.Context, sc model.Scope) error {
	now := uc.clock()
	n := broadcast.NewNotification(
		demo.NotificationTitle,
		fmt.Sprintf("You received a broadcast notification at %s", now.Format(time.TimeOnly)),
		now,
	)

	if err := uc.sink.Notify(ctx, sc.UserID, n.Payload()); err != nil {
		uc.l.Errorf(ctx, "internal.demo.usecase.TriggerNotification: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) publish(ctx context.Context, op string, evt broadcast.Event) error {
	if err := uc.sink.Publish(ctx, evt.Channel(), evt.Kind(), evt.Payload()); err != nil {
		uc.l.Errorf(ctx, "internal.demo.usecase.%s: %v", op, err)
		return err
	}
	return nil
}

var fillerWords = []string{
	"broadcast", "channel", "presence", "socket", "event", "payload",
	"realtime", "message", "update", "demo", "server", "signal",
}

// fillerBody generates throwaway body text for the model event.
func (uc *usecase) fillerBody() string {
	words := make([]string, 12)
	for i := range words {
		words[i] = uc.pick(fillerWords)
	}
	s := strings.Join(words, " ") + "."
	return strings.ToUpper(s[:1]) + s[1:]
}
