package main

import (
	"net/http"

	"github.com/fritterapp/fritter/server"
	"github.com/fritterapp/fritter/session"
	"github.com/fritterapp/fritter/store"
	"github.com/fritterapp/fritter/utils"
	"github.com/fritterapp/fritter/utils/dotenv"
	Flag "github.com/fritterapp/fritter/utils/flag"
	Logger "github.com/fritterapp/fritter/utils/log"
	"github.com/gin-gonic/gin"
)

func main() {
	Flag.ParseFlags()
	Logger.InitLogger()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Logger.Log.Fatal("fail to connect to database: ", err)
	}
	utils.DatabaseSetupAndMigration(db)

	srv := server.New(store.New(db), session.NewRedisStore())
	router := srv.Router()

	// Debug route for health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	Logger.Log.Info("api server starts up")
	router.Run(":8080")
}
