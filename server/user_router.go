package server

import (
	"net/http"

	"github.com/fritterapp/fritter/server/middlewares"
	"github.com/fritterapp/fritter/session"
	"github.com/fritterapp/fritter/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type createUserFields struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type updateUserFields struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	Bio       *string `json:"bio"`
	Password  *string `json:"password"`
}

func (s *Server) addUserRoutes(rg *gin.RouterGroup) {
	rg.GET("/session", s.getSession)
	rg.POST("/session",
		middlewares.IsUserLoggedOut,
		middlewares.IsAccountExists(s.store),
		s.login)
	rg.DELETE("/session",
		middlewares.IsUserLoggedIn,
		s.logout)

	rg.POST("",
		middlewares.IsUserLoggedOut,
		middlewares.IsValidUsername,
		middlewares.IsValidPassword,
		middlewares.IsUsernameNotAlreadyInUse(s.store),
		s.createUser)
	rg.PUT("",
		middlewares.IsUserLoggedIn,
		s.updateUser)
	rg.DELETE("",
		middlewares.IsUserLoggedIn,
		s.deleteUser)
}

// startSession issues a fresh session id for the user and hands it to the
// browser as a cookie.
func (s *Server) startSession(c *gin.Context, userID string) error {
	sid := uuid.New().String()
	if err := s.sessions.Set(c.Request.Context(), sid, userID, session.DefaultTTL); err != nil {
		return err
	}
	c.SetCookie(middlewares.CookieName, sid, int(session.DefaultTTL.Seconds()), "/", "", false, true)
	return nil
}

func (s *Server) endSession(c *gin.Context) {
	if sid, err := c.Cookie(middlewares.CookieName); err == nil && sid != "" {
		s.sessions.Delete(c.Request.Context(), sid)
	}
	c.SetCookie(middlewares.CookieName, "", -1, "/", "", false, true)
}

// getSession reports the logged-in user, if any.
func (s *Server) getSession(c *gin.Context) {
	userID := middlewares.UserID(c)
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{
			"message": "You are not logged in.",
			"user":    nil,
		})
		return
	}

	user, err := s.store.FindUserByID(userID)
	if err != nil {
		internalError(c, err)
		return
	}
	if user == nil {
		// Session points at a deleted account.
		s.endSession(c)
		c.JSON(http.StatusOK, gin.H{
			"message": "You are not logged in.",
			"user":    nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You have an active session.",
		"user":    ConstructUserResponse(user),
	})
}

func (s *Server) login(c *gin.Context) {
	user := middlewares.Account(c)
	if err := s.startSession(c, user.Id); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "You have logged in successfully.",
		"user":    ConstructUserResponse(user),
	})
}

func (s *Server) logout(c *gin.Context) {
	s.endSession(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "You have been logged out successfully.",
	})
}

func (s *Server) createUser(c *gin.Context) {
	var body createUserFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	user, err := s.store.AddUser(body.FirstName, body.LastName, body.Email, body.Username, body.Password)
	if err != nil {
		internalError(c, err)
		return
	}
	if err := s.startSession(c, user.Id); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Your account was created successfully. You have been logged in.",
		"user":    ConstructUserResponse(user),
	})
}

func (s *Server) updateUser(c *gin.Context) {
	var body updateUserFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	userID := middlewares.UserID(c)
	if body.Username != nil {
		existing, err := s.store.FindUserByUsername(*body.Username)
		if err != nil {
			internalError(c, err)
			return
		}
		if existing != nil && existing.Id != userID {
			c.JSON(http.StatusConflict, gin.H{
				"error": gin.H{"username": "An account with this username already exists."},
			})
			return
		}
	}

	user, err := s.store.UpdateUser(userID, store.UserUpdate{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Username:  body.Username,
		Bio:       body.Bio,
		Password:  body.Password,
	})
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your profile was updated successfully.",
		"user":    ConstructUserResponse(user),
	})
}

func (s *Server) deleteUser(c *gin.Context) {
	if _, err := s.store.DeleteUser(middlewares.UserID(c)); err != nil {
		internalError(c, err)
		return
	}
	s.endSession(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Your account has been deleted successfully.",
	})
}
