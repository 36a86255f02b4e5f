package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/fritterapp/fritter/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const maxFreetLength = 140

type freetBodyFields struct {
	FreetID string `json:"freetId"`
	Content string `json:"content"`
}

// IsFreetExists checks that the freet with freetId in the path exists.
func IsFreetExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		freetNotFound(c, s, c.Param("freetId"))
	}
}

// IsBodyFreetExists checks that the freet with freetId in the body exists.
func IsBodyFreetExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body freetBodyFields
		c.ShouldBindBodyWith(&body, binding.JSON)
		freetNotFound(c, s, body.FreetID)
	}
}

// IsQueryFreetExists checks that the freet with freetId in the query exists.
func IsQueryFreetExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		freetNotFound(c, s, c.Query("freetId"))
	}
}

func freetNotFound(c *gin.Context, s *store.Store, freetID string) {
	freet, err := s.FindFreetByID(freetID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	if freet == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": gin.H{"freetNotFound": fmt.Sprintf("Freet with freet ID %s does not exist.", freetID)},
		})
	}
}

// IsValidFreetContent checks that the freet content in the body is nonempty
// and at most 140 characters.
func IsValidFreetContent(c *gin.Context) {
	var body freetBodyFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	content := strings.TrimSpace(body.Content)
	if content == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "Freet content must be at least one character.",
		})
		return
	}
	if len([]rune(body.Content)) > maxFreetLength {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "Freet content must be no more than 140 characters.",
		})
	}
}

// IsValidFreetModifier checks that the logged-in user authored the freet with
// freetId in the path.
func IsValidFreetModifier(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		freet, err := s.FindFreetByID(c.Param("freetId"))
		if err != nil {
			abortInternal(c, err)
			return
		}
		if freet == nil || freet.AuthorID != UserID(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Cannot modify other users' freets.",
			})
		}
	}
}
