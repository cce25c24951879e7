package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"broadcast-srv/config"
	"broadcast-srv/internal/realtime"
	"broadcast-srv/pkg/discord"
	pkgLog "broadcast-srv/pkg/log"
	pkgRedis "broadcast-srv/pkg/redis"
	"broadcast-srv/pkg/scope"
)

// HTTPServer wires the demo service. New only validates dependencies;
// Run (httpserver.go) starts the hub, subscriber and HTTP listener.
type HTTPServer struct {
	gin  *gin.Engine
	l    pkgLog.Logger
	port int
	mode string

	wsConfig config.WebSocketConfig

	jwtMgr    scope.Manager
	cookieCfg config.CookieConfig

	db      *sql.DB
	redis   *pkgRedis.Client
	discord discord.IDiscord

	// Built by mapHandlers.
	hub        *realtime.Hub
	subscriber *realtime.Subscriber
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Port int
	Mode string

	WSConfig config.WebSocketConfig

	JWTManager scope.Manager
	Cookie     config.CookieConfig

	DB      *sql.DB
	Redis   *pkgRedis.Client
	Discord discord.IDiscord
}

// New creates an HTTPServer. It starts no goroutines; call Run.
func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		gin:       gin.New(),
		l:         l,
		port:      cfg.Port,
		mode:      cfg.Mode,
		wsConfig:  cfg.WSConfig,
		jwtMgr:    cfg.JWTManager,
		cookieCfg: cfg.Cookie,
		db:        cfg.DB,
		redis:     cfg.Redis,
		discord:   cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtMgr == nil {
		return errors.New("JWT manager is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.redis == nil {
		return errors.New("redis client is required")
	}

	return nil
}
