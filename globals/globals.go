package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(getenv("JWT_SECRET", "dev_secret_change_me"))

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
