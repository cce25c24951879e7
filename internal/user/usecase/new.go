package usecase

import (
	"broadcast-srv/internal/user"
	"broadcast-srv/internal/user/repository"
	pkgLog "broadcast-srv/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) user.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
