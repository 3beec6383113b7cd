package api

import (
	"net/http"

	authdelivery "userhub-backend/internal/auth/delivery"
	authusecase "userhub-backend/internal/auth/usecase"
	"userhub-backend/internal/user/delivery"
	userusecase "userhub-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, userUsecase userusecase.UserUsecase, authUsecase authusecase.AuthUsecase) {
	userHandler := delivery.NewUserHandler(userUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes
		users := api.Group("/users")
		{
			users.POST("/signup", userHandler.Signup)
			users.POST("/signin", userHandler.Signin)
			users.GET("", authdelivery.AuthMiddleware(authUsecase), userHandler.List)
		}
	}
}
