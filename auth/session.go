package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nextshop/middleware"
	"nextshop/rdx"
	"nextshop/utils"

	"github.com/julienschmidt/httprouter"
)

const sessionTTL = 14 * 24 * time.Hour

// CreateSession exchanges a bearer access token for an HTTP-only
// session cookie. The cookie value is an opaque id; the identity lives
// in Redis under it.
func CreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tokenString := r.Header.Get("Authorization")
	claims, err := middleware.ValidateJWT(tokenString)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid ID token")
		return
	}

	sessionID := utils.GenerateRandomString(32)
	data, err := json.Marshal(middleware.SessionData{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if err := rdx.RdxSetWithTTL("session:"+sessionID, string(data), sessionTTL); err != nil {
		log.Printf("Redis session storage failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// RevokeSession deletes the Redis session entry and clears the cookie.
// The cookie is cleared even when revocation fails so the client always
// signs out.
func RevokeSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if _, err := rdx.RdxDel("session:" + cookie.Value); err != nil {
			log.Printf("Failed to revoke session: %v", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}
