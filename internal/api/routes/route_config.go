package routes

import (
	"plateful/internal/api/handlers"
	"plateful/internal/middleware"
	"plateful/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	FollowHandler     handlers.FollowHandler
	EngagementHandler handlers.EngagementHandler
	SearchHandler     handlers.SearchHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Follows()
	c.Engagement()
	c.Search()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Get("/search", c.UserHandler.SearchUsers)
		user.Get("/popular", c.UserHandler.GetPopularUsers)
		user.Get("/:id/followers", c.FollowHandler.GetFollowers)
		user.Get("/:id/following", c.FollowHandler.GetFollowing)
		user.Get("/:id/follow-stats", c.FollowHandler.GetFollowStats)
		user.Get("/:id/is-following", c.Middleware.AuthMiddleware(c.JWTService), c.FollowHandler.IsFollowing)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	{
		// saved before :id so the static segment wins
		recipes.Get("/saved", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.GetSavedRecipes)
		recipes.Post("/", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
		recipes.Get("/", c.RecipeHandler.GetRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeByID)
		recipes.Get("/:id/comments", c.EngagementHandler.GetComments)
		recipes.Get("/:id/like-status", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.GetLikeStatus)
		recipes.Get("/:id/save-status", c.Middleware.AuthMiddleware(c.JWTService), c.EngagementHandler.GetSaveStatus)
	}
}

func (c *Config) Follows() {
	follows := c.App.Group("/api/v1/follows", c.Middleware.AuthMiddleware(c.JWTService))
	{
		follows.Post("/toggle", c.FollowHandler.ToggleFollow)
	}
}

func (c *Config) Engagement() {
	likes := c.App.Group("/api/v1/likes", c.Middleware.AuthMiddleware(c.JWTService))
	likes.Post("/toggle", c.EngagementHandler.ToggleLike)

	saves := c.App.Group("/api/v1/saves", c.Middleware.AuthMiddleware(c.JWTService))
	saves.Post("/toggle", c.EngagementHandler.ToggleSave)

	comments := c.App.Group("/api/v1/comments", c.Middleware.AuthMiddleware(c.JWTService))
	comments.Post("/", c.EngagementHandler.AddComment)
	comments.Delete("/:id", c.EngagementHandler.DeleteComment)
}

func (c *Config) Search() {
	search := c.App.Group("/api/v1/search")
	{
		search.Get("/recipes", c.SearchHandler.SearchRecipes)
		search.Get("/ingredient", c.SearchHandler.SearchRecipesByIngredient)
		search.Get("/trending", c.SearchHandler.GetTrendingRecipes)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
