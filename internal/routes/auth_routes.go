package routes

import (
	"github.com/gin-gonic/gin"

	"luxride/internal/controllers"
	"luxride/internal/middleware"
	"luxride/internal/models"
)

func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, auth *middleware.Auth) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", ac.SignupUser)
		authGroup.POST("/login", ac.LoginUser)
	}

	profile := r.Group("/profile")
	profile.Use(auth.RequireAuth())
	{
		profile.GET("", ac.GetProfile)
		profile.PUT("", ac.UpdateProfile)
	}

	driver := r.Group("/driver")
	driver.Use(auth.RequireUserType(models.UserTypeDriver))
	{
		driver.GET("/profile", ac.GetDriverProfile)
	}
}
