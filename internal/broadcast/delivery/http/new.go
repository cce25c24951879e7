package http

import (
	"broadcast-srv/internal/broadcast"
	pkgLog "broadcast-srv/pkg/log"
)

type Handler struct {
	l     pkgLog.Logger
	authz broadcast.Authorizer
}

func New(l pkgLog.Logger, authz broadcast.Authorizer) *Handler {
	return &Handler{
		l:     l,
		authz: authz,
	}
}
