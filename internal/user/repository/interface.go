package repository

import userdomain "userhub-backend/internal/user/domain"

// UserRepository defines the interface for user storage operations
type UserRepository interface {
	Create(user *userdomain.User) error
	FindByEmail(email string) (*userdomain.User, error)
	FindByID(id string) (*userdomain.User, error)
	FindAll(limit, offset int) ([]*userdomain.User, int64, error)
	Delete(id string) error
}
