//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/whiskerlog/catcare-backend/internal/adapter/postgres"
	auditrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/audit"
	authmethodrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/authmethod"
	carerepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/care"
	catrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/cat"
	feedingrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/feeding"
	foodrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/food"
	summaryrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/summary"
	"github.com/whiskerlog/catcare-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/token"
	userrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/user"
	waterrepo "github.com/whiskerlog/catcare-backend/internal/adapter/postgres/water"
	jwtauth "github.com/whiskerlog/catcare-backend/internal/auth"
	"github.com/whiskerlog/catcare-backend/internal/config"
	authsvc "github.com/whiskerlog/catcare-backend/internal/service/auth"
	catsvc "github.com/whiskerlog/catcare-backend/internal/service/cat"
	diarysvc "github.com/whiskerlog/catcare-backend/internal/service/diary"
	foodsvc "github.com/whiskerlog/catcare-backend/internal/service/food"
	nutritionsvc "github.com/whiskerlog/catcare-backend/internal/service/nutrition"
	usersvc "github.com/whiskerlog/catcare-backend/internal/service/user"
	"github.com/whiskerlog/catcare-backend/internal/transport/middleware"
	"github.com/whiskerlog/catcare-backend/internal/transport/rest"
)

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// newTestServer wires the full application stack against a containerized
// database and returns an httptest server for it.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.Default()

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret",
		JWTIssuer:        "whiskerlog-e2e",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  30 * 24 * time.Hour,
		PasswordHashCost: 4,
	}
	diaryCfg := config.DiaryConfig{
		MaxCatsPerUser:    20,
		MaxFoodsPerUser:   500,
		MaxRecordsPerDay:  50,
		MaxTrendRangeDays: 366,
		DefaultListLimit:  50,
		MaxListLimit:      200,
	}
	serverCfg := config.ServerConfig{
		RatePerMinute:  10000,
		IdempotencyTTL: 30 * time.Second,
	}

	users := userrepo.New(pool)
	audits := auditrepo.New(pool)
	tokens := tokenrepo.New(pool)
	authMethods := authmethodrepo.New(pool)
	cats := catrepo.New(pool)
	foods := foodrepo.New(pool)
	feedings := feedingrepo.New(pool)
	waters := waterrepo.New(pool)
	cares := carerepo.New(pool)
	summaries := summaryrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtMgr := jwtauth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, users, tokens, authMethods, tx, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users, users, audits, tx)
	catService := catsvc.NewService(logger, cats, diaryCfg)
	foodService := foodsvc.NewService(logger, foods, diaryCfg)
	nutritionService := nutritionsvc.NewService(
		logger, cats, feedings, waters, cares, summaries, users, tx, diaryCfg.MaxTrendRangeDays,
	)
	diaryService := diarysvc.NewService(logger, cats, feedings, waters, cares, nutritionService, diaryCfg)

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rateLimiter.Stop)

	idemGuard := middleware.NewIdempotencyGuard(serverCfg.IdempotencyTTL)
	t.Cleanup(idemGuard.Stop)

	router := rest.NewRouter(rest.RouterDeps{
		Auth:      rest.NewAuthHandler(authService, logger),
		User:      rest.NewUserHandler(userService, logger),
		Cat:       rest.NewCatHandler(catService, logger),
		Food:      rest.NewFoodHandler(foodService, logger),
		Diary:     rest.NewDiaryHandler(diaryService, logger),
		Nutrition: rest.NewNutritionHandler(nutritionService, logger),
		Health:    rest.NewHealthHandler(pool, "e2e-test"),

		Validator:   authService,
		Logger:      logger,
		RateLimiter: rateLimiter,
		Idempotency: idemGuard,

		ServerCfg: serverCfg,
		CORSCfg: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,X-Idempotency-Key",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON sends a request with an optional JSON body and bearer token, and
// returns the status code plus the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()
	return ts.doJSONWithHeaders(t, method, path, body, token, nil)
}

// doJSONWithHeaders is doJSON with extra request headers.
func (ts *testServer) doJSONWithHeaders(t *testing.T, method, path string, body any, token string, headers map[string]string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response body %q: %v", raw, err)
		}
	}

	return resp.StatusCode, decoded
}

// registerUser registers a fresh account and returns its access token.
func (ts *testServer) registerUser(t *testing.T, email, username string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    email,
		"username": username,
		"password": "s3cretpass",
	}, "")
	if status != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d: %v", status, body)
	}

	token, _ := body["accessToken"].(string)
	if token == "" {
		t.Fatal("register: empty access token")
	}
	return token
}

// createCat creates a cat for the authenticated user and returns its id.
func (ts *testServer) createCat(t *testing.T, token, name string) string {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/api/cats", map[string]any{
		"name":     name,
		"weightKg": 4.0,
	}, token)
	if status != http.StatusCreated {
		t.Fatalf("create cat: expected status 201, got %d: %v", status, body)
	}

	id, _ := body["id"].(string)
	if id == "" {
		t.Fatal("create cat: empty id")
	}
	return id
}
