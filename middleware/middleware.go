package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"nextshop/globals"
	"nextshop/rdx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string   `json:"username"`
	UserID   string   `json:"userId"`
	Role     []string `json:"role"`
	jwt.RegisteredClaims
}

// SessionData is what the session-cookie exchange stores in Redis,
// keyed by the opaque cookie value.
type SessionData struct {
	UserID   string   `json:"userId"`
	Username string   `json:"username"`
	Role     []string `json:"role"`
}

const SessionCookieName = "__session"

// Authenticate resolves the caller from either a Bearer JWT or the
// HTTP-only session cookie, and stores the user id and roles in the
// request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := identify(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

// AdminOnly is Authenticate plus an admin-role check.
func AdminOnly(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := identify(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if !hasRole(claims.Role, "admin") {
			http.Error(w, "Admin privileges required", http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

// OptionalAuth attaches identity when present but never rejects.
func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if claims, err := identify(r); err == nil {
			ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
			r = r.WithContext(ctx)
		}
		next(w, r, ps)
	}
}

func identify(r *http.Request) (*Claims, error) {
	if tokenString := r.Header.Get("Authorization"); tokenString != "" {
		return ValidateJWT(tokenString)
	}
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, fmt.Errorf("no credentials")
	}
	return sessionClaims(cookie.Value)
}

func sessionClaims(sessionID string) (*Claims, error) {
	raw, err := rdx.RdxGet("session:" + sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session")
	}
	var data SessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("corrupt session")
	}
	return &Claims{Username: data.Username, UserID: data.UserID, Role: data.Role}, nil
}

func ValidateJWT(tokenString string) (*Claims, error) {
	if len(tokenString) < 8 || tokenString[:7] != "Bearer " {
		return nil, fmt.Errorf("invalid token format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
