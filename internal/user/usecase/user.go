package usecase

import (
	"context"

	"broadcast-srv/internal/model"
	"broadcast-srv/internal/user"
	"broadcast-srv/internal/user/repository"
)

func (uc *usecase) First(ctx context.Context) (model.User, error) {
	usr, err := uc.repo.First(ctx)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.First: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) Detail(ctx context.Context, id int64) (model.User, error) {
	usr, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) List(ctx context.Context) ([]model.User, error) {
	usrs, err := uc.repo.List(ctx, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.List: %v", err)
		return nil, err
	}

	return usrs, nil
}
