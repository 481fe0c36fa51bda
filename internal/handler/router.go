package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/accountd/internal/middleware"
)

type RouterDeps struct {
	Auth          *AuthHandler
	Users         *UserHandler
	JWTSecret     []byte
	TokenTTL      time.Duration
	LoginThrottle *middleware.Throttle
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	login := api.Group("")
	if deps.LoginThrottle != nil {
		login.Use(deps.LoginThrottle.Handle)
	}
	login.POST("/auth/login", deps.Auth.Login)

	api.POST("/users/register", deps.Users.Register)

	authGroup := api.Group("")
	authGroup.Use(middleware.JWTAuth(deps.JWTSecret, deps.TokenTTL))
	authGroup.GET("/users/profile", deps.Users.Profile)
	authGroup.PUT("/users/profile", deps.Users.UpdateProfile)
}
