package middlewares

import (
	"fmt"
	"net/http"

	"github.com/fritterapp/fritter/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type circleBodyFields struct {
	CircleID string `json:"circleId"`
	Title    string `json:"title"`
}

// IsCircleExists checks that the circle with circleId in the path exists.
func IsCircleExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		circleNotFound(c, s, c.Param("circleId"))
	}
}

// IsBodyCircleExists checks that the circle with circleId in the body exists.
func IsBodyCircleExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body circleBodyFields
		c.ShouldBindBodyWith(&body, binding.JSON)
		circleNotFound(c, s, body.CircleID)
	}
}

// IsQueryCircleExists checks that the circle with circleId in the query exists.
func IsQueryCircleExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		circleNotFound(c, s, c.Query("circleId"))
	}
}

func circleNotFound(c *gin.Context, s *store.Store, circleID string) {
	circle, err := s.FindCircleByID(circleID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	if circle == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": gin.H{"circleNotFound": fmt.Sprintf("Circle with circle ID %s does not exist.", circleID)},
		})
	}
}

// IsCircleTitleNotAlreadyInUse checks that the circle title in the body is
// not taken. Circle titles are unique across the whole system.
func IsCircleTitleNotAlreadyInUse(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body circleBodyFields
		c.ShouldBindBodyWith(&body, binding.JSON)

		circle, err := s.FindCircleByTitle(body.Title)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if circle != nil {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": gin.H{"title": "A circle with this name already exists."},
			})
		}
	}
}

// IsCategoryExists checks that the category in the query names at least one
// circle. A missing category parameter passes through untouched.
func IsCategoryExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, present := c.GetQuery("category")
		if !present {
			return
		}
		if category == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Provided category must be nonempty.",
			})
			return
		}

		circles, err := s.FindCirclesByCategory(category)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if len(circles) == 0 {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("Category %s does not exist.", category),
			})
		}
	}
}

// IsValidCircleModifier checks that the logged-in user authored the circle
// with circleId in the path.
func IsValidCircleModifier(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		circle, err := s.FindCircleByID(c.Param("circleId"))
		if err != nil {
			abortInternal(c, err)
			return
		}
		if circle == nil || circle.AuthorID != UserID(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Cannot modify other users' circles.",
			})
		}
	}
}
