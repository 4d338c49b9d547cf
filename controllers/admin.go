package controllers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/store"
	"go-storefront/utils"
)

// AdminController handles the panel login
type AdminController struct {
	Sessions     *store.SessionStore
	Email        string
	PasswordHash string
}

// NewAdminController creates a new AdminController for the configured account
func NewAdminController(sessions *store.SessionStore, email, passwordHash string) *AdminController {
	return &AdminController{Sessions: sessions, Email: email, PasswordHash: passwordHash}
}

// Login checks the panel credentials and opens a new session
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if !strings.EqualFold(strings.TrimSpace(creds.Email), ac.Email) || !utils.CheckPassword(ac.PasswordHash, creds.Password) {
		zap.S().Warnf("Failed admin login for %q", creds.Email)
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	sessionID := utils.NewSessionID()
	token, err := utils.GenerateJWT(ac.Email, utils.RoleAdmin, sessionID)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	ctx, cancel := withTimeout(r)
	defer cancel()
	if err := ac.Sessions.Start(ctx, sessionID, ac.Email); err != nil {
		storeError(w, err, "Error starting session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout closes the current session; its token stops working
func (ac *AdminController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := withTimeout(r)
	defer cancel()

	if err := ac.Sessions.End(ctx); err != nil {
		storeError(w, err, "Error closing session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the logged in admin
func (ac *AdminController) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r)
	if !ok {
		http.Error(w, "Could not parse user from context", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, models.Admin{Email: claims.Email, Role: claims.Role})
}
