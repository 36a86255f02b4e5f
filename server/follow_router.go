package server

import (
	"net/http"

	"github.com/fritterapp/fritter/server/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type followFields struct {
	User string `json:"user"`
}

func (s *Server) addFollowRoutes(rg *gin.RouterGroup) {
	// GET /api/follows?following=username lists who a user follows;
	// ?followers=username lists who follows them. One of the two is required.
	rg.GET("", dispatchByQuery(
		nil,
		queryBranch{param: "following", handlers: gin.HandlersChain{
			middlewares.IsFollowingExists(s.store),
			s.listFollowing,
		}},
		queryBranch{param: "followers", handlers: gin.HandlersChain{
			middlewares.IsFollowersExists(s.store),
			s.listFollowers,
		}},
	))

	rg.POST("",
		middlewares.IsUserLoggedIn,
		middlewares.IsBodyUserExists(s.store),
		middlewares.IsNewFollow(s.store),
		s.createFollow)
	rg.DELETE("/:user",
		middlewares.IsUserLoggedIn,
		middlewares.IsParamUserExists(s.store),
		middlewares.IsFollowExists(s.store),
		s.deleteFollow)
}

func (s *Server) listFollowing(c *gin.Context) {
	follows, err := s.store.FindFollowingByUsername(c.Query("following"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []FollowResponse{}
	for i := range follows {
		response = append(response, ConstructFollowResponse(&follows[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) listFollowers(c *gin.Context) {
	follows, err := s.store.FindFollowersByUsername(c.Query("followers"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []FollowResponse{}
	for i := range follows {
		response = append(response, ConstructFollowResponse(&follows[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) createFollow(c *gin.Context) {
	var body followFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	follow, err := s.store.AddFollow(middlewares.UserID(c), body.User)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your follow was created successfully.",
		"follow":  ConstructFollowResponse(follow),
	})
}

func (s *Server) deleteFollow(c *gin.Context) {
	if _, err := s.store.DeleteFollow(middlewares.UserID(c), c.Param("user")); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your follow was deleted successfully.",
	})
}
