package config

import (
	"os"
	"time"

	"plateful/internal/api/handlers"
	"plateful/internal/api/routes"
	"plateful/internal/middleware"
	"plateful/internal/utils"
	"plateful/internal/utils/storage"
	"plateful/pkg/engagement"
	"plateful/pkg/follow"
	"plateful/pkg/jwt"
	"plateful/pkg/recipe"
	"plateful/pkg/search"
	"plateful/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	followRepository := follow.NewFollowRepository(db)
	engagementRepository := engagement.NewEngagementRepository(db)
	searchRepository := search.NewSearchRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	followService := follow.NewFollowService(followRepository, userRepository)
	engagementService := engagement.NewEngagementService(engagementRepository, recipeRepository)
	searchService := search.NewSearchService(searchRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	followHandler := handlers.NewFollowHandler(followService, validator)
	engagementHandler := handlers.NewEngagementHandler(engagementService, validator)
	searchHandler := handlers.NewSearchHandler(searchService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		FollowHandler:     followHandler,
		EngagementHandler: engagementHandler,
		SearchHandler:     searchHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
