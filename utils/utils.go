package utils

import (
	rndm "math/rand"
	"net/http"
	"slices"

	"voyago/globals"
)

// --- Random String Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")
var digitRunes = []rune("0123456789")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// --- Request Helpers ---

// GetUserIDFromRequest returns the authenticated user id stored in the
// request context by middleware.Authenticate, or "".
func GetUserIDFromRequest(r *http.Request) string {
	if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
		return id
	}
	return ""
}

// --- Slice Helpers ---

func Contains(slice []string, value string) bool {
	return slices.Contains(slice, value)
}
