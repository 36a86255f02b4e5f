// Package server declares the REST API: one router per entity, each route an
// ordered validation chain in front of a terminal handler.
package server

import (
	"net/http"

	"github.com/fritterapp/fritter/server/middlewares"
	"github.com/fritterapp/fritter/session"
	"github.com/fritterapp/fritter/store"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	store    *store.Store
	sessions session.Store
}

func New(st *store.Store, sessions session.Store) *Server {
	return &Server{store: st, sessions: sessions}
}

// Router builds the gin engine with all API routes attached.
func (s *Server) Router() *gin.Engine {
	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middlewares.CurrentUser(s.sessions))

	api := router.Group("/api")
	s.addUserRoutes(api.Group("/users"))
	s.addFreetRoutes(api.Group("/freets"))
	s.addCircleRoutes(api.Group("/circles"))
	s.addFollowRoutes(api.Group("/follows"))
	s.addLikeRoutes(api.Group("/likes"))
	s.addSubscribeRoutes(api.Group("/subscribes"))

	return router
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
