package server

import (
	"net/http"

	"github.com/fritterapp/fritter/server/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type likeFields struct {
	FreetID string `json:"freetId"`
}

func (s *Server) addLikeRoutes(rg *gin.RouterGroup) {
	// GET /api/likes?freetId=id lists the likes on a freet; ?author=username
	// lists the likes a user has given. One of the two is required.
	rg.GET("", dispatchByQuery(
		nil,
		queryBranch{param: "freetId", handlers: gin.HandlersChain{
			middlewares.IsQueryFreetExists(s.store),
			s.listLikesByFreet,
		}},
		queryBranch{param: "author", handlers: gin.HandlersChain{
			middlewares.IsAuthorExists(s.store),
			s.listLikesByAuthor,
		}},
	))

	rg.POST("",
		middlewares.IsUserLoggedIn,
		middlewares.IsBodyFreetExists(s.store),
		middlewares.IsNewLike(s.store),
		s.createLike)
	rg.DELETE("/:freetId",
		middlewares.IsUserLoggedIn,
		middlewares.IsFreetExists(s.store),
		middlewares.IsLikeExists(s.store),
		s.deleteLike)
}

func (s *Server) listLikesByFreet(c *gin.Context) {
	likes, err := s.store.FindLikesByFreet(c.Query("freetId"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []LikeResponse{}
	for i := range likes {
		response = append(response, ConstructLikeResponse(&likes[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) listLikesByAuthor(c *gin.Context) {
	likes, err := s.store.FindLikesByUsername(c.Query("author"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []LikeResponse{}
	for i := range likes {
		response = append(response, ConstructLikeResponse(&likes[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) createLike(c *gin.Context) {
	var body likeFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	like, err := s.store.AddLike(middlewares.UserID(c), body.FreetID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your like was created successfully.",
		"like":    ConstructLikeResponse(like),
	})
}

func (s *Server) deleteLike(c *gin.Context) {
	if _, err := s.store.DeleteLike(middlewares.UserID(c), c.Param("freetId")); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your like was deleted successfully.",
	})
}
