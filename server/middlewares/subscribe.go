package middlewares

import (
	"fmt"
	"net/http"

	"github.com/fritterapp/fritter/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// IsNewSubscribe checks that the logged-in user is not already subscribed to
// the circle named in the body.
func IsNewSubscribe(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body circleBodyFields
		c.ShouldBindBodyWith(&body, binding.JSON)

		subscribe, err := s.FindSubscribe(UserID(c), body.CircleID)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if subscribe != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"error": "Can not subscribe to an already subscribed circle."},
			})
		}
	}
}

// IsSubscribeExists checks that the logged-in user is subscribed to the
// circle with circleId in the path.
func IsSubscribeExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		subscribe, err := s.FindSubscribe(UserID(c), c.Param("circleId"))
		if err != nil {
			abortInternal(c, err)
			return
		}
		if subscribe == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": gin.H{"subscribeNotFound": fmt.Sprintf("Subscription from user ID %s to circle %s does not exist.", UserID(c), c.Param("circleId"))},
			})
		}
	}
}
