package usecase

import (
	userdomain "userhub-backend/internal/user/domain"
	userdto "userhub-backend/internal/user/dto"
	"userhub-backend/internal/user/repository"
)

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, tokens TokenIssuer) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *userUsecase) SignUp(req *userdto.SignupRequest) (*userdomain.User, error) {
	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &userdomain.User{
		Email:    req.Email,
		Password: hashedPassword,
		Name:     req.Name,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *userUsecase) SignIn(req *userdto.SigninRequest) (*userdto.SigninResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, userdomain.ErrEmailNotFound
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, userdomain.ErrPasswordMismatch
	}

	token, err := u.tokens.CreateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &userdto.SigninResponse{
		Name:     user.Name,
		JWTToken: token,
		Email:    user.Email,
	}, nil
}

func (u *userUsecase) List(limit, offset int) ([]*userdomain.User, int64, error) {
	return u.userRepo.FindAll(limit, offset)
}
