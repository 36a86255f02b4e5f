package middlewares

import (
	"fmt"
	"net/http"

	"github.com/fritterapp/fritter/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// IsNewFollow checks that the logged-in user does not already follow the user
// named in the body.
func IsNewFollow(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body bodyUserField
		c.ShouldBindBodyWith(&body, binding.JSON)

		follow, err := s.FindFollow(UserID(c), body.User)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if follow != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"error": "Can not follow an already followed user."},
			})
		}
	}
}

// IsFollowExists checks that the logged-in user follows the user named in the
// path.
func IsFollowExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		follow, err := s.FindFollow(UserID(c), c.Param("user"))
		if err != nil {
			abortInternal(c, err)
			return
		}
		if follow == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": gin.H{"followNotFound": fmt.Sprintf("Follow from user ID %s to user %s does not exist.", UserID(c), c.Param("user"))},
			})
		}
	}
}
