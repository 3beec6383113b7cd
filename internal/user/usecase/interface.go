package usecase

import (
	userdomain "userhub-backend/internal/user/domain"
	userdto "userhub-backend/internal/user/dto"
)

// UserUsecase defines the interface for user use cases
type UserUsecase interface {
	SignUp(req *userdto.SignupRequest) (*userdomain.User, error)
	SignIn(req *userdto.SigninRequest) (*userdto.SigninResponse, error)
	List(limit, offset int) ([]*userdomain.User, int64, error)
}

// TokenIssuer mints access tokens for signed-in users
type TokenIssuer interface {
	CreateAccessToken(userID string) (string, error)
}
