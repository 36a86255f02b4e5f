package middlewares

import (
	"fmt"
	"net/http"

	"github.com/fritterapp/fritter/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// IsNewLike checks that the logged-in user has not already liked the freet
// named in the body.
func IsNewLike(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body freetBodyFields
		c.ShouldBindBodyWith(&body, binding.JSON)

		like, err := s.FindLike(UserID(c), body.FreetID)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if like != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"error": "Can not like an already liked freet."},
			})
		}
	}
}

// IsLikeExists checks that the logged-in user likes the freet with freetId in
// the path.
func IsLikeExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		like, err := s.FindLike(UserID(c), c.Param("freetId"))
		if err != nil {
			abortInternal(c, err)
			return
		}
		if like == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": gin.H{"likeNotFound": fmt.Sprintf("Like from user ID %s on freet %s does not exist.", UserID(c), c.Param("freetId"))},
			})
		}
	}
}
