package usecase

import (
	"net/http"
	"strings"
	"time"

	userdomain "userhub-backend/internal/user/domain"
	"userhub-backend/internal/user/repository"
	"userhub-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the payload carried by an access token: the standard
// registered claims (exp, iat) plus the account identifier.
type AccessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userID"`
}

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) CreateAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(u.config.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

// ParseToken verifies the token signature and expiry and returns the
// decoded claims. Callers must not trust a payload that did not come
// through here.
func (u *authUsecase) ParseToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, userdomain.ErrInvalidToken
	}

	return claims, nil
}

// ValidateUser resolves already-verified claims to a live account. A token
// for a deleted account fails here even though its signature still checks
// out, which is what makes outstanding tokens inert after deletion.
func (u *authUsecase) ValidateUser(claims *AccessClaims) (*userdomain.User, error) {
	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, userdomain.ErrUserGone
	}

	return user, nil
}

func (u *authUsecase) ExtractTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", userdomain.ErrNoToken
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", userdomain.ErrMalformedAuthHeader
	}

	return parts[1], nil
}
