package dto

import userdomain "userhub-backend/internal/user/domain"

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=10"`
	Name     string `json:"name" binding:"required"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SigninResponse struct {
	Name     string `json:"name"`
	JWTToken string `json:"jwtToken"`
	Email    string `json:"email"`
}

type UsersResponse struct {
	Users  []*userdomain.User `json:"users"`
	Limit  int                `json:"limit,omitempty"`
	Offset int                `json:"offset,omitempty"`
	Total  int64              `json:"total"`
}
