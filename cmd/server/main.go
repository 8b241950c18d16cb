// Command server runs the catcare HTTP API.
//
// Usage:
//
//	server
//
// Configuration is read from CONFIG_PATH (YAML) and environment variables;
// see internal/config for the full list. DATABASE_DSN and AUTH_JWT_SECRET
// are required.
package main

import (
	"context"
	"log"

	"github.com/whiskerlog/catcare-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
