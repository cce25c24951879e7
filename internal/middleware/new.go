package middleware

import (
	"broadcast-srv/config"
	pkgLog "broadcast-srv/pkg/log"
	"broadcast-srv/pkg/scope"
)

type Middleware struct {
	l            pkgLog.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
}

func New(l pkgLog.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
	}
}
