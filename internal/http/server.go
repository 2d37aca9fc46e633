// README: API gateway; registers HTTP routes and delegates to module services.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sofia/internal/http/handlers"
	"sofia/internal/http/middleware"
	"sofia/internal/modules/chat"
	"sofia/internal/modules/session"
	"sofia/internal/modules/stats"
)

type ServerDeps struct {
	Chat          *chat.Service
	Sessions      *session.Service
	Stats         *stats.Recorder
	Logger        *zap.Logger
	MaxMessageLen int
}

type Server struct {
	engine *gin.Engine
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logging(log))

	chatHandler := handlers.NewChatHandler(deps.Chat, deps.MaxMessageLen)
	r.POST("/api/chat", chatHandler.Chat)

	sessionHandler := handlers.NewSessionHandler(deps.Sessions, deps.Stats)
	r.GET("/api/sessions/:id", sessionHandler.Get)
	r.DELETE("/api/sessions/:id", sessionHandler.Delete)
	r.GET("/api/stats", sessionHandler.Stats)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return &Server{engine: r}
}

func (s *Server) Routes() http.Handler {
	return s.engine
}
