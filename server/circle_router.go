package server

import (
	"net/http"

	"github.com/fritterapp/fritter/server/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type circleFields struct {
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Category string `json:"category"`
}

func (s *Server) addCircleRoutes(rg *gin.RouterGroup) {
	// GET /api/circles returns all circles; ?author=username and
	// ?category=category each return a filtered view. Author wins when both
	// are given.
	rg.GET("", dispatchByQuery(
		gin.HandlersChain{s.listCircles},
		queryBranch{param: "author", allowEmpty: true, handlers: gin.HandlersChain{
			middlewares.IsAuthorExists(s.store),
			s.listCirclesByAuthor,
		}},
		queryBranch{param: "category", allowEmpty: true, handlers: gin.HandlersChain{
			middlewares.IsCategoryExists(s.store),
			s.listCirclesByCategory,
		}},
	))

	rg.POST("",
		middlewares.IsUserLoggedIn,
		middlewares.IsCircleTitleNotAlreadyInUse(s.store),
		s.createCircle)
	rg.PUT("/:circleId",
		middlewares.IsUserLoggedIn,
		middlewares.IsCircleExists(s.store),
		middlewares.IsValidCircleModifier(s.store),
		s.updateCircle)
	rg.DELETE("/:circleId",
		middlewares.IsUserLoggedIn,
		middlewares.IsCircleExists(s.store),
		middlewares.IsValidCircleModifier(s.store),
		s.deleteCircle)
}

func (s *Server) listCircles(c *gin.Context) {
	circles, err := s.store.FindAllCircles()
	if err != nil {
		internalError(c, err)
		return
	}

	response := []CircleResponse{}
	for i := range circles {
		response = append(response, ConstructCircleResponse(&circles[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) listCirclesByAuthor(c *gin.Context) {
	circles, err := s.store.FindCirclesByUsername(c.Query("author"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []CircleResponse{}
	for i := range circles {
		response = append(response, ConstructCircleResponse(&circles[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) listCirclesByCategory(c *gin.Context) {
	circles, err := s.store.FindCirclesByCategory(c.Query("category"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []CircleResponse{}
	for i := range circles {
		response = append(response, ConstructCircleResponse(&circles[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) createCircle(c *gin.Context) {
	var body circleFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	circle, err := s.store.AddCircle(body.Title, body.Bio, body.Category, middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your circle was created successfully.",
		"circle":  ConstructCircleResponse(circle),
	})
}

func (s *Server) updateCircle(c *gin.Context) {
	var body circleFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	circle, err := s.store.UpdateCircleBio(c.Param("circleId"), body.Bio)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your circle was updated successfully.",
		"circle":  ConstructCircleResponse(circle),
	})
}

func (s *Server) deleteCircle(c *gin.Context) {
	if _, err := s.store.DeleteCircle(c.Param("circleId")); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your circle was deleted successfully.",
	})
}
