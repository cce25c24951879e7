package usecase

import (
	"broadcast-srv/internal/broadcast"
	pkgLog "broadcast-srv/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	posts broadcast.PostChecker
}

func New(l pkgLog.Logger, posts broadcast.PostChecker) broadcast.Authorizer {
	return &usecase{
		l:     l,
		posts: posts,
	}
}
