package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/service"
	"hospital-admin/pkg/jwt"
	"hospital-admin/pkg/response"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	UserTypeKey contextKey = "user_type"
	TokenIDKey  contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	sessions   service.SessionStore
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessions service.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// Revoked tokens are gone from the session store even before they expire
		valid, err := m.sessions.IsAccessValid(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !valid {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, UserTypeKey, claims.UserType)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUserType allows the request through only for the listed account types.
// It must run after Authenticate.
func RequireUserType(allowed ...entity.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userType, ok := GetUserTypeFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User type not found")
				return
			}

			for _, t := range allowed {
				if userType == t {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireUserType(entity.UserTypeDoctor)(next)
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

func GetUserTypeFromContext(ctx context.Context) (entity.UserType, bool) {
	userType, ok := ctx.Value(UserTypeKey).(entity.UserType)
	return userType, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
