package usecase

import (
	"time"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/post"
	"broadcast-srv/internal/post/repository"
	pkgLog "broadcast-srv/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	sink  broadcast.Sink
	clock func() time.Time
}

func New(l pkgLog.Logger, repo repository.Repository, sink broadcast.Sink) post.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		sink:  sink,
		clock: time.Now,
	}
}
