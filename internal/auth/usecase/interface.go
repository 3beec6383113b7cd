package usecase

import (
	"net/http"

	userdomain "userhub-backend/internal/user/domain"
)

// AuthUsecase defines the interface for token operations
type AuthUsecase interface {
	// Mint a signed access token for the given account
	CreateAccessToken(userID string) (string, error)
	// Verify signature and expiry, returning the decoded claims
	ParseToken(tokenString string) (*AccessClaims, error)
	// Resolve verified claims to an existing account
	ValidateUser(claims *AccessClaims) (*userdomain.User, error)
	// Pull the bearer token out of the Authorization header
	ExtractTokenFromRequest(r *http.Request) (string, error)
}
