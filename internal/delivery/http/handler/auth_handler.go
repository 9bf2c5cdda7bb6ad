package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/jwt"
	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	jwtService  *jwt.JWTService
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, jwtService *jwt.JWTService) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		jwtService:  jwtService,
	}
}

// Login exchanges username and password for a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid username or password")
	case err != nil:
		response.InternalServerError(w, "Failed to login")
	default:
		response.Success(w, http.StatusOK, "Login successful", tokens)
	}
}

// Logout ends the current session. A refresh token in the body is revoked with it.
// @Tags Auth
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, okUser := middleware.GetUserIDFromContext(r.Context())
	tokenID, okToken := middleware.GetTokenIDFromContext(r.Context())
	if !okUser || !okToken {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var body dto.RefreshTokenRequest
	_ = json.NewDecoder(r.Body).Decode(&body)

	var refreshTokenID string
	if body.RefreshToken != "" {
		// Only the caller's own refresh token may be revoked here.
		if claims, err := h.jwtService.ValidateToken(body.RefreshToken); err == nil && claims.UserID == userID {
			refreshTokenID = claims.TokenID
		}
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID, refreshTokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}
	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// RefreshToken rotates the token pair. A refresh token is accepted once.
// @Tags Auth
// @Accept json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if !bind(w, r, h.validator, &req) {
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	switch {
	case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrTokenRevoked):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, usecase.ErrUserNotFound):
		response.Unauthorized(w, "User no longer exists")
	case err != nil:
		response.InternalServerError(w, "Failed to refresh token")
	default:
		response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
	}
}

// GetCurrentUser returns the signed-in account.
// @Tags Auth
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case err != nil:
		response.InternalServerError(w, "Failed to get user info")
	default:
		response.Success(w, http.StatusOK, "User retrieved successfully", user)
	}
}
