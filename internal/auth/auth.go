package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	CookieName    = "claymaster_session"
	SessionExpiry = 24 * time.Hour
)

// Clay-themed words for password generation
var clayWords = []string{
	"kiln", "glaze", "slip", "wheel", "coil",
	"pinch", "slab", "score", "wedge", "fire",
	"bisque", "terra", "potter", "sculpt", "mold",
	"earthen", "stone", "amber",
}

// Sessions tracks logged-in admin browser sessions. Credential checks live
// in the registry service; this only manages tokens.
type Sessions struct {
	tokens map[string]time.Time
	mu     sync.RWMutex
}

// New creates an empty session store
func New() *Sessions {
	return &Sessions{tokens: make(map[string]time.Time)}
}

// GeneratePassword creates a random 3-word password
func GeneratePassword() string {
	words := make([]string, 3)
	for i := range words {
		idx := randomInt(len(clayWords))
		words[i] = clayWords[idx]
	}
	return strings.Join(words, "-")
}

// Create mints a new session token
func (s *Sessions) Create() string {
	token := generateToken()
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(SessionExpiry)
	s.mu.Unlock()
	return token
}

// Revoke invalidates a session token
func (s *Sessions) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Validate checks if a session token is valid
func (s *Sessions) Validate(token string) bool {
	s.mu.RLock()
	expiry, exists := s.tokens[token]
	s.mu.RUnlock()

	if !exists {
		return false
	}

	if time.Now().After(expiry) {
		s.mu.Lock()
		delete(s.tokens, token)
		s.mu.Unlock()
		return false
	}

	return true
}

// FromRequest extracts and validates the session from a request
func (s *Sessions) FromRequest(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return s.Validate(cookie.Value)
}

// RequireAuthAPI middleware for admin API endpoints (returns 401)
func (s *Sessions) RequireAuthAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.FromRequest(r) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
	})
}

// SetSessionCookie sets the session cookie on the response
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionExpiry.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateToken creates a random session token
func generateToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// randomInt returns a random int in [0, max)
func randomInt(max int) int {
	bytes := make([]byte, 1)
	rand.Read(bytes)
	return int(bytes[0]) % max
}
