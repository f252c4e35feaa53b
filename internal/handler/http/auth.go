package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/serenus-health/wellness-admin-go/internal/domain/auth"
	"github.com/serenus-health/wellness-admin-go/internal/domain/checkup"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/handler/http/response"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	SaveCheckup(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in successfully", "user_id", tokenResponse.User.ID)
	response.Created(w, "User logged in successfully", tokenResponse)
}

// Logout implements AuthHandler. Always succeeds, even without a session.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	accessToken := bearerToken(r)
	a.authService.Logout(r.Context(), accessToken)

	// Clear the refresh token cookie
	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, clearedCookie)
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	current, err := a.authService.CurrentUser()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.ToResponse(current))
}

// UpdateProfile implements AuthHandler.
func (a *AuthHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profileReq auth.UpdateProfileRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&profileReq); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := profileReq.Validate(); err != nil {
		slog.Error("UpdateProfile validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := a.authService.UpdateProfile(r.Context(), profileReq)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile updated successfully", "user_id", updated.ID)
	response.SuccessWithMessage(w, "Profile updated successfully", updated)
}

// SaveCheckup implements AuthHandler.
func (a *AuthHandlerImpl) SaveCheckup(w http.ResponseWriter, r *http.Request) {
	var result checkup.Result

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&result); err != nil {
		slog.Error("SaveCheckup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	if err := a.authService.SaveCheckupResult(r.Context(), result); err != nil {
		slog.Error("SaveCheckup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	current, err := a.authService.CurrentUser()
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Checkup result saved", "user_id", current.ID)
	response.Created(w, "Checkup result saved", user.ToResponse(current))
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}
