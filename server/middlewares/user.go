package middlewares

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/fritterapp/fritter/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	usernameRegex = regexp.MustCompile(`^\w+$`)
	passwordRegex = regexp.MustCompile(`^\S+$`)
)

type credentialFields struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type bodyUserField struct {
	User string `json:"user"`
}

// IsValidUsername checks that the username in the request body is a nonempty
// alphanumeric string.
func IsValidUsername(c *gin.Context) {
	var body credentialFields
	c.ShouldBindBodyWith(&body, binding.JSON)
	if !usernameRegex.MatchString(body.Username) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"username": "Username must be a nonempty alphanumeric string."},
		})
	}
}

// IsValidPassword checks that the password in the request body is a nonempty
// string without whitespace.
func IsValidPassword(c *gin.Context) {
	var body credentialFields
	c.ShouldBindBodyWith(&body, binding.JSON)
	if !passwordRegex.MatchString(body.Password) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"password": "Password must be a nonempty string."},
		})
	}
}

// IsUsernameNotAlreadyInUse checks that the username in the request body is
// not taken by another account.
func IsUsernameNotAlreadyInUse(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body credentialFields
		c.ShouldBindBodyWith(&body, binding.JSON)

		user, err := s.FindUserByUsername(body.Username)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if user != nil && user.Id != UserID(c) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": gin.H{"username": "An account with this username already exists."},
			})
		}
	}
}

// IsAccountExists checks the login credentials in the request body and, when
// they match an account, makes it available to the handler via Account.
func IsAccountExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body credentialFields
		c.ShouldBindBodyWith(&body, binding.JSON)

		if body.Username == "" || body.Password == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Missing username or password credentials.",
			})
			return
		}

		user, err := s.FindUserByCredentials(body.Username, body.Password)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid user login credentials provided.",
			})
			return
		}
		setAccount(c, user)
	}
}

// IsAuthorExists checks that the author username in the query exists.
func IsAuthorExists(s *store.Store) gin.HandlerFunc {
	return queryUserExists(s, "author")
}

// IsFollowingExists checks that the following username in the query exists.
func IsFollowingExists(s *store.Store) gin.HandlerFunc {
	return queryUserExists(s, "following")
}

// IsFollowersExists checks that the followers username in the query exists.
func IsFollowersExists(s *store.Store) gin.HandlerFunc {
	return queryUserExists(s, "followers")
}

// IsQueryUserExists checks that the user username in the query exists.
func IsQueryUserExists(s *store.Store) gin.HandlerFunc {
	return queryUserExists(s, "user")
}

func queryUserExists(s *store.Store, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Query(param)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Provided %s username must be nonempty.", param),
			})
			return
		}

		user, err := s.FindUserByUsername(username)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("A user with username %s does not exist.", username),
			})
		}
	}
}

// IsBodyUserExists checks that the user named in the request body exists.
func IsBodyUserExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body bodyUserField
		c.ShouldBindBodyWith(&body, binding.JSON)

		user, err := s.FindUserByUsername(body.User)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": gin.H{"userNotFound": fmt.Sprintf("A user with username %s does not exist.", body.User)},
			})
		}
	}
}

// IsParamUserExists checks that the user named in the path exists.
func IsParamUserExists(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("user")

		user, err := s.FindUserByUsername(username)
		if err != nil {
			abortInternal(c, err)
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error": gin.H{"userNotFound": fmt.Sprintf("A user with username %s does not exist.", username)},
			})
		}
	}
}

func abortInternal(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
