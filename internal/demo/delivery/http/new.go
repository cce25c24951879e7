package http

import (
	"broadcast-srv/internal/demo"
	pkgLog "broadcast-srv/pkg/log"
)

// CookieConfig tells the handler how to write the session cookie.
type CookieConfig struct {
	Name     string
	Domain   string
	MaxAge   int
	Secure   bool
	HttpOnly bool
}

type Handler struct {
	l      pkgLog.Logger
	uc     demo.UseCase
	cookie CookieConfig
}

func New(l pkgLog.Logger, uc demo.UseCase, cookie CookieConfig) *Handler {
	return &Handler{
		l:      l,
		uc:     uc,
		cookie: cookie,
	}
}
