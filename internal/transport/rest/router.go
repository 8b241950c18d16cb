package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/whiskerlog/catcare-backend/internal/config"
	"github.com/whiskerlog/catcare-backend/internal/transport/middleware"
)

// tokenValidator resolves a bearer token to a user ID.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps bundles everything NewRouter needs to assemble the HTTP API.
type RouterDeps struct {
	Auth      *AuthHandler
	User      *UserHandler
	Cat       *CatHandler
	Food      *FoodHandler
	Diary     *DiaryHandler
	Nutrition *NutritionHandler
	Health    *HealthHandler

	Validator   tokenValidator
	Logger      *slog.Logger
	RateLimiter *middleware.RateLimiter
	Idempotency *middleware.IdempotencyGuard

	ServerCfg config.ServerConfig
	CORSCfg   config.CORSConfig
}

// NewRouter builds the full route table with the middleware chain applied
// to every /api route. Health probes stay outside the chain so they are
// never rate limited or blocked by auth failures.
func NewRouter(deps RouterDeps) http.Handler {
	api := http.NewServeMux()

	// Auth.
	api.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	api.HandleFunc("POST /api/auth/login", deps.Auth.Login)
	api.HandleFunc("POST /api/auth/refresh", deps.Auth.Refresh)
	api.HandleFunc("POST /api/auth/logout", deps.Auth.Logout)

	// Profile and settings.
	api.HandleFunc("GET /api/users/me", deps.User.GetProfile)
	api.HandleFunc("PATCH /api/users/me", deps.User.UpdateProfile)
	api.HandleFunc("GET /api/users/me/settings", deps.User.GetSettings)
	api.HandleFunc("PUT /api/users/me/settings", deps.User.UpdateSettings)

	// Cats.
	api.HandleFunc("POST /api/cats", deps.Cat.CreateCat)
	api.HandleFunc("GET /api/cats", deps.Cat.ListCats)
	api.HandleFunc("GET /api/cats/{id}", deps.Cat.GetCat)
	api.HandleFunc("PUT /api/cats/{id}", deps.Cat.UpdateCat)
	api.HandleFunc("DELETE /api/cats/{id}", deps.Cat.DeleteCat)

	// Food catalog and calculator.
	api.HandleFunc("POST /api/foods", deps.Food.CreateProduct)
	api.HandleFunc("GET /api/foods", deps.Food.ListProducts)
	api.HandleFunc("GET /api/foods/{id}", deps.Food.GetProduct)
	api.HandleFunc("PUT /api/foods/{id}", deps.Food.UpdateProduct)
	api.HandleFunc("DELETE /api/foods/{id}", deps.Food.DeleteProduct)
	api.HandleFunc("POST /api/nutrition/calculate", deps.Nutrition.Calculate)

	// Diary.
	api.HandleFunc("POST /api/cats/{id}/feedings", deps.Diary.CreateFeeding)
	api.HandleFunc("GET /api/cats/{id}/feedings", deps.Diary.ListFeedings)
	api.HandleFunc("PUT /api/cats/{id}/feedings/{recordId}", deps.Diary.UpdateFeeding)
	api.HandleFunc("DELETE /api/cats/{id}/feedings/{recordId}", deps.Diary.DeleteFeeding)

	api.HandleFunc("POST /api/cats/{id}/water", deps.Diary.CreateWater)
	api.HandleFunc("GET /api/cats/{id}/water", deps.Diary.ListWater)
	api.HandleFunc("PUT /api/cats/{id}/water/{recordId}", deps.Diary.UpdateWater)
	api.HandleFunc("DELETE /api/cats/{id}/water/{recordId}", deps.Diary.DeleteWater)

	api.HandleFunc("POST /api/cats/{id}/supplements", deps.Diary.CreateCare)
	api.HandleFunc("GET /api/cats/{id}/supplements", deps.Diary.ListCare)
	api.HandleFunc("PUT /api/cats/{id}/supplements/{recordId}", deps.Diary.UpdateCare)
	api.HandleFunc("DELETE /api/cats/{id}/supplements/{recordId}", deps.Diary.DeleteCare)

	// Summaries and trends.
	api.HandleFunc("GET /api/cats/{id}/nutrition-summary", deps.Nutrition.DailySummary)
	api.HandleFunc("GET /api/cats/{id}/nutrition-trends", deps.Nutrition.Trends)

	chain := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORSCfg),
		deps.RateLimiter.Limit(deps.ServerCfg.RatePerMinute),
		deps.Idempotency.Guard(),
		middleware.Auth(deps.Validator),
	)

	root := http.NewServeMux()
	root.Handle("/api/", chain(api))

	root.HandleFunc("GET /live", deps.Health.Live)
	root.HandleFunc("GET /ready", deps.Health.Ready)
	root.HandleFunc("GET /health", deps.Health.Health)

	return root
}
