package server

import (
	"net/http"

	"github.com/fritterapp/fritter/server/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type freetFields struct {
	Content string   `json:"content"`
	Circles []string `json:"circles"`
}

func (s *Server) addFreetRoutes(rg *gin.RouterGroup) {
	// GET /api/freets returns all freets; GET /api/freets?author=username
	// returns the freets of one author.
	rg.GET("", dispatchByQuery(
		gin.HandlersChain{s.listFreets},
		queryBranch{param: "author", allowEmpty: true, handlers: gin.HandlersChain{
			middlewares.IsAuthorExists(s.store),
			s.listFreetsByAuthor,
		}},
	))

	rg.POST("",
		middlewares.IsUserLoggedIn,
		middlewares.IsValidFreetContent,
		s.createFreet)
	rg.PUT("/:freetId",
		middlewares.IsUserLoggedIn,
		middlewares.IsFreetExists(s.store),
		middlewares.IsValidFreetModifier(s.store),
		s.updateFreet)
	rg.DELETE("/:freetId",
		middlewares.IsUserLoggedIn,
		middlewares.IsFreetExists(s.store),
		middlewares.IsValidFreetModifier(s.store),
		s.deleteFreet)
}

func (s *Server) listFreets(c *gin.Context) {
	freets, err := s.store.FindAllFreets()
	if err != nil {
		internalError(c, err)
		return
	}

	response := []FreetResponse{}
	for i := range freets {
		response = append(response, ConstructFreetResponse(&freets[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) listFreetsByAuthor(c *gin.Context) {
	freets, err := s.store.FindFreetsByUsername(c.Query("author"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []FreetResponse{}
	for i := range freets {
		response = append(response, ConstructFreetResponse(&freets[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) createFreet(c *gin.Context) {
	var body freetFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	freet, err := s.store.AddFreet(body.Content, middlewares.UserID(c), body.Circles)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your freet was created successfully.",
		"freet":   ConstructFreetResponse(freet),
	})
}

func (s *Server) updateFreet(c *gin.Context) {
	var body freetFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	freet, err := s.store.UpdateFreetCircles(c.Param("freetId"), body.Circles)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your freet was updated successfully.",
		"freet":   ConstructFreetResponse(freet),
	})
}

func (s *Server) deleteFreet(c *gin.Context) {
	if _, err := s.store.DeleteFreet(c.Param("freetId")); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your freet was deleted successfully.",
	})
}
