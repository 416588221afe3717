// README: API gateway; builds the Gin engine, middleware chain, and routes.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tripsmith/internal/http/handlers"
	"tripsmith/internal/http/middleware"
)

type ServerDeps struct {
	Planner handlers.TripGenerator
	Log     zerolog.Logger
}

type Server struct {
	planner handlers.TripGenerator
	log     zerolog.Logger
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		planner: deps.Planner,
		log:     deps.Log,
	}
}

// Routes assembles the middleware chain and registers all endpoints.
func (s *Server) Routes() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(s.log))
	r.Use(middleware.Recovery(s.log))
	r.Use(cors.Default())

	tripHandler := handlers.NewTripHandler(s.planner)
	r.POST("/api/trips", tripHandler.Create)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
