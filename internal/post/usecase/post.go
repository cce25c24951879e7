package usecase

import (
	"context"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/model"
	"broadcast-srv/internal/post"
	"broadcast-srv/internal/post/repository"
)

func (uc *usecase) DetailOwned(ctx context.Context, sc model.Scope) (model.Post, error) {
	p, err := uc.repo.GetByOwner(ctx, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Post{}, post.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "internal.post.usecase.DetailOwned: %v", err)
		return model.Post{}, err
	}

	return p, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip post.UpdateInput) (model.Post, error) {
	cur, err := uc.repo.GetByOwner(ctx, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Post{}, post.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "internal.post.usecase.Update: %v", err)
		return model.Post{}, err
	}

	updated, err := uc.repo.Update(ctx, cur.ID, repository.UpdateOptions{
		Title: ip.Title,
		Body:  ip.Body,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Post{}, post.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "internal.post.usecase.Update: %v", err)
		return model.Post{}, err
	}

	evt := broadcast.NewPostUpdated(updated.ID, updated.Title, updated.Body, uc.clock())
	if err := uc.sink.Publish(ctx, evt.Channel(), evt.Kind(), evt.Payload()); err != nil {
		uc.l.Errorf(ctx, "internal.post.usecase.Update: %v", err)
		return model.Post{}, err
	}

	return updated, nil
}

func (uc *usecase) IsOwned(ctx context.Context, postID, ownerID int64) (bool, error) {
	owned, err := uc.repo.ExistsOwned(ctx, postID, ownerID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.post.usecase.IsOwned: %v", err)
		return false, err
	}

	return owned, nil
}
