package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/yunqiuxu/unswtalk/internal/config"
	"github.com/yunqiuxu/unswtalk/internal/handlers"
	"github.com/yunqiuxu/unswtalk/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	postHandler *handlers.PostHandler,
	friendHandler *handlers.FriendHandler,
	searchHandler *handlers.SearchHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/confirm", authHandler.Confirm)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware to individual
	// routes so it never affects the public ones
	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, authHandler.Logout)

	// Profiles
	api.Get("/students/:zid", jwt, profileHandler.GetProfile)
	api.Put("/me/profile", jwt, profileHandler.EditProfile)
	api.Post("/me/avatar", jwt, profileHandler.UploadAvatar)
	api.Post("/me/suspend", jwt, profileHandler.Suspend)
	api.Post("/me/activate", jwt, profileHandler.Activate)
	api.Delete("/me", jwt, profileHandler.DeleteAccount)

	// Posts, comments, replies
	api.Get("/students/:zid/feed", jwt, postHandler.Feed)
	api.Post("/posts", jwt, postHandler.CreatePost)
	api.Get("/posts/:post_id", jwt, postHandler.PostDetail)
	api.Delete("/posts/:post_id", jwt, postHandler.DeletePost)
	api.Post("/posts/:post_id/comments", jwt, postHandler.CreateComment)
	api.Delete("/comments/:comment_id", jwt, postHandler.DeleteComment)
	api.Post("/comments/:comment_id/replies", jwt, postHandler.CreateReply)
	api.Delete("/replies/:reply_id", jwt, postHandler.DeleteReply)

	// Friends and suggestions
	api.Get("/students/:zid/friends", jwt, friendHandler.ListFriends)
	api.Get("/me/suggestions", jwt, friendHandler.Suggestions)
	api.Post("/me/friends/:zid", jwt, friendHandler.AddFriend)
	api.Delete("/me/friends/:zid", jwt, friendHandler.RemoveFriend)

	// Search
	api.Get("/search", jwt, searchHandler.Search)
}
