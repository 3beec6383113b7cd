package main

import (
	"log"

	api "userhub-backend/cmd/api"
	authUsecase "userhub-backend/internal/auth/usecase"
	userdomain "userhub-backend/internal/user/domain"
	userRepo "userhub-backend/internal/user/repository"
	userUsecase "userhub-backend/internal/user/usecase"
	"userhub-backend/pkg/config"
	"userhub-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&userdomain.User{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories and use cases (dependency injection)
	repo := userRepo.NewUserRepository(db)
	authUsecaseInstance := authUsecase.NewAuthUsecase(repo, cfg)
	userUsecaseInstance := userUsecase.NewUserUsecase(repo, authUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(userUsecaseInstance, authUsecaseInstance)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
