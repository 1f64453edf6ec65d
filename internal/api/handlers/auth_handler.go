package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/routeburn/product-flow/internal/api/middleware"
	"github.com/routeburn/product-flow/internal/api/types"
	"github.com/routeburn/product-flow/internal/services"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login checks the email against the studio member roster and, on success,
// sets the signed session cookie. There is no password; membership is the
// credential.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" {
		writeErrorStr(w, http.StatusBadRequest, "email is required")
		return
	}

	token, sess, err := h.auth.Login(r.Context(), req.Email)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"email":         sess.Email,
			"studioId":      sess.StudioID,
			"portfolioCode": sess.PortfolioCode,
			"expiresAt":     sess.ExpiresAt,
		},
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}

// Me returns the current session for the logged-in caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess == nil {
		writeErrorStr(w, http.StatusUnauthorized, "not logged in")
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"email":         sess.Email,
			"studioId":      sess.StudioID,
			"portfolioCode": sess.PortfolioCode,
			"expiresAt":     sess.ExpiresAt,
		},
	})
}
