package routes

import (
	"dishcovery/auth"
	"dishcovery/collections"
	"dishcovery/export"
	"dishcovery/favorites"
	"dishcovery/middleware"
	"dishcovery/profile"
	"dishcovery/provider"
	"dishcovery/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddAuthRoutes(router, rateLimiter)
	AddFavoritesRoutes(router, rateLimiter)
	AddCollectionRoutes(router, rateLimiter)
	AddExploreRoutes(router, rateLimiter)
	AddRecipeRoutes(router, rateLimiter)
	AddProfileRoutes(router, rateLimiter)
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.RegisterHandler))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.LoginHandler))
	router.POST("/api/auth/logout", auth.LogoutHandler)
	router.POST("/api/auth/refresh", rateLimiter.Limit(auth.RefreshTokenHandler))
}

func AddFavoritesRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	// OptionalAuth: anonymous users get the guest bucket
	router.GET("/api/favorites", middleware.OptionalAuth(favorites.GetFavorites))
	router.POST("/api/favorites/toggle", middleware.OptionalAuth(favorites.ToggleFavorite))
	router.DELETE("/api/favorites/:id", middleware.OptionalAuth(favorites.RemoveFavorite))
}

func AddCollectionRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/collections", middleware.Authenticate(collections.GetCollections))
	router.POST("/api/collections", middleware.Authenticate(collections.CreateCollectionHandler))
	router.GET("/api/collections/:id", middleware.Authenticate(collections.GetOneCollection))
	router.PUT("/api/collections/:id", middleware.Authenticate(collections.UpdateCollectionHandler))
	router.DELETE("/api/collections/:id", middleware.Authenticate(collections.DeleteCollectionHandler))

	router.GET("/api/collections/:id/recipes", middleware.Authenticate(collections.GetRecipesInCollection))
	router.POST("/api/collections/:id/recipes", middleware.Authenticate(collections.AddRecipeHandler))
	router.DELETE("/api/collections/:id/recipes/:recipeId", middleware.Authenticate(collections.RemoveRecipeHandler))
	router.POST("/api/collections/:id/bulkremove", middleware.Authenticate(collections.BulkRemoveRecipes))

	router.PUT("/api/collections/:id/cover", middleware.Authenticate(collections.UploadCover))
	router.GET("/api/collections/:id/qr", middleware.Authenticate(collections.ShareQR))

	router.POST("/api/batch/add-to-collections", middleware.Authenticate(collections.AddRecipeToCollections))
}

func AddExploreRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/explore/search", rateLimiter.Limit(provider.SearchRecipes))
	router.GET("/api/explore/random", rateLimiter.Limit(provider.RandomRecipes))
	router.GET("/api/explore/autocomplete", rateLimiter.Limit(provider.AutocompleteRecipes))
	router.GET("/api/explore/fridge", rateLimiter.Limit(provider.FridgeSearch))
}

func AddRecipeRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/recipes/:id", rateLimiter.Limit(provider.GetRecipeDetail))
	router.GET("/api/recipes/:id/nutrition", rateLimiter.Limit(provider.GetRecipeNutrition))
	router.GET("/api/recipes/:id/pdf", rateLimiter.Limit(export.RecipePDF))
}

func AddProfileRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(profile.EditProfile))
	router.PUT("/api/profile/avatar", middleware.Authenticate(profile.EditAvatar))
	router.DELETE("/api/profile", middleware.Authenticate(profile.DeleteProfile))
}
