package httpserver

import (
	"broadcast-srv/internal/middleware"
	"broadcast-srv/internal/realtime"

	broadcastHTTP "broadcast-srv/internal/broadcast/delivery/http"
	sinkRedis "broadcast-srv/internal/broadcast/delivery/redis"
	broadcastUC "broadcast-srv/internal/broadcast/usecase"
	demoHTTP "broadcast-srv/internal/demo/delivery/http"
	demoUC "broadcast-srv/internal/demo/usecase"
	postPostgre "broadcast-srv/internal/post/repository/postgre"
	postUC "broadcast-srv/internal/post/usecase"
	userPostgre "broadcast-srv/internal/user/repository/postgre"
	userUC "broadcast-srv/internal/user/usecase"

	// Import this to execute the init function in docs.go which sets up the Swagger docs.
	_ "broadcast-srv/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Repositories and use cases
	userRepo := userPostgre.New(srv.l, srv.db)
	userUseCase := userUC.New(srv.l, userRepo)

	sink := sinkRedis.NewSink(srv.l, srv.redis)

	postRepo := postPostgre.New(srv.l, srv.db)
	postUseCase := postUC.New(srv.l, postRepo, sink)

	authorizer := broadcastUC.New(srv.l, postUseCase)
	demoUseCase := demoUC.New(srv.l, userUseCase, postUseCase, sink, srv.jwtMgr)

	mw := middleware.New(srv.l, srv.jwtMgr, srv.cookieCfg)

	// HTTP routes
	root := srv.gin.Group("")
	broadcastHTTP.New(srv.l, authorizer).RegisterRoutes(root, mw)
	demoHTTP.New(srv.l, demoUseCase, demoHTTP.CookieConfig{
		Name:     srv.cookieCfg.Name,
		Domain:   srv.cookieCfg.Domain,
		MaxAge:   srv.cookieCfg.MaxAge,
		Secure:   srv.cookieCfg.Secure,
		HttpOnly: srv.cookieCfg.HttpOnly,
	}).RegisterRoutes(root, mw)

	// Realtime
	srv.hub = realtime.NewHub(srv.l, srv.wsConfig.MaxConnections)
	srv.subscriber = realtime.NewSubscriber(srv.redis, srv.hub, srv.l)
	realtime.NewHandler(srv.hub, srv.jwtMgr, authorizer, srv.l, realtime.HandlerConfig{
		ConnConfig: realtime.ConnConfig{
			PongWait:       srv.wsConfig.PongWait,
			PingPeriod:     srv.wsConfig.PingInterval,
			WriteWait:      srv.wsConfig.WriteWait,
			MaxMessageSize: srv.wsConfig.MaxMessageSize,
		},
		ReadBufferSize:  srv.wsConfig.ReadBufferSize,
		WriteBufferSize: srv.wsConfig.WriteBufferSize,
		CookieName:      srv.cookieCfg.Name,
	}).RegisterRoutes(srv.gin)

	return nil
}
