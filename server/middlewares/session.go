package middlewares

import (
	"net/http"

	"github.com/fritterapp/fritter/model"
	"github.com/fritterapp/fritter/session"
	Logger "github.com/fritterapp/fritter/utils/log"
	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the cookie carrying the opaque session id.
	CookieName = "fritter_session"

	userIDKey  = "userID"
	accountKey = "account"
)

// CurrentUser resolves the session cookie to a user id and stashes it in the
// request context. It never rejects a request; IsUserLoggedIn does that.
func CurrentUser(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(CookieName)
		if err == nil && sid != "" {
			userID, err := sessions.Get(c.Request.Context(), sid)
			if err != nil {
				Logger.Log.WithError(err).Warn("session lookup failed")
			} else if userID != "" {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}

// UserID returns the logged-in user's id, or an empty string when the request
// carries no valid session.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// Account returns the user resolved by IsAccountExists during login.
func Account(c *gin.Context) *model.User {
	if user, ok := c.Get(accountKey); ok {
		return user.(*model.User)
	}
	return nil
}

func setAccount(c *gin.Context, user *model.User) {
	c.Set(accountKey, user)
}

// IsUserLoggedIn rejects requests that carry no valid session.
func IsUserLoggedIn(c *gin.Context) {
	if UserID(c) == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "You must be logged in to complete this action.",
		})
	}
}

// IsUserLoggedOut rejects requests from an already signed-in user.
func IsUserLoggedOut(c *gin.Context) {
	if UserID(c) != "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "You are already signed in.",
		})
	}
}
