package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(Getenv("JWT_SECRET", "voyago_dev_secret"))

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"
const RequestIDKey ContextKey = "requestId"

var Ctx = context.Background()

// Getenv returns the value of key or fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
