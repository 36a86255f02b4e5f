package server

import (
	"net/http"

	"github.com/fritterapp/fritter/server/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type subscribeFields struct {
	CircleID string `json:"circleId"`
}

func (s *Server) addSubscribeRoutes(rg *gin.RouterGroup) {
	// GET /api/subscribes?user=username lists a user's subscriptions;
	// ?circleId=id lists a circle's subscribers. One of the two is required.
	rg.GET("", dispatchByQuery(
		nil,
		queryBranch{param: "user", handlers: gin.HandlersChain{
			middlewares.IsQueryUserExists(s.store),
			s.listSubscriptionsByUser,
		}},
		queryBranch{param: "circleId", handlers: gin.HandlersChain{
			middlewares.IsQueryCircleExists(s.store),
			s.listSubscribersByCircle,
		}},
	))

	rg.POST("",
		middlewares.IsUserLoggedIn,
		middlewares.IsBodyCircleExists(s.store),
		middlewares.IsNewSubscribe(s.store),
		s.createSubscribe)
	rg.DELETE("/:circleId",
		middlewares.IsUserLoggedIn,
		middlewares.IsCircleExists(s.store),
		middlewares.IsSubscribeExists(s.store),
		s.deleteSubscribe)
}

func (s *Server) listSubscriptionsByUser(c *gin.Context) {
	subscribes, err := s.store.FindSubscriptionsByUsername(c.Query("user"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []SubscribeResponse{}
	for i := range subscribes {
		response = append(response, ConstructSubscribeResponse(&subscribes[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) listSubscribersByCircle(c *gin.Context) {
	subscribes, err := s.store.FindSubscribersByCircle(c.Query("circleId"))
	if err != nil {
		internalError(c, err)
		return
	}

	response := []SubscribeResponse{}
	for i := range subscribes {
		response = append(response, ConstructSubscribeResponse(&subscribes[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (s *Server) createSubscribe(c *gin.Context) {
	var body subscribeFields
	c.ShouldBindBodyWith(&body, binding.JSON)

	subscribe, err := s.store.AddSubscribe(middlewares.UserID(c), body.CircleID)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Your subscription was created successfully.",
		"subscribe": ConstructSubscribeResponse(subscribe),
	})
}

func (s *Server) deleteSubscribe(c *gin.Context) {
	if _, err := s.store.DeleteSubscribe(middlewares.UserID(c), c.Param("circleId")); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Your subscription was deleted successfully.",
	})
}
