package service

import (
	"errors"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/jwt"

	"gorm.io/gorm"
)

// DefaultRoles is the role list embedded in every issued token. Roles are not
// persisted per user; every account that can log in acts as an admin.
var DefaultRoles = []string{"admin"}

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
	Roles []string `json:"roles"`
}

// UserInfo carries the public user fields returned on login.
type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// 1. Find user by email. An unknown email is an authorization failure,
	// not an infrastructure one.
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUnauthorized
		}
		return nil, err
	}

	// 2. Verify password against the stored hash
	if !user.CheckPassword(password) {
		return nil, apperr.ErrUnauthorized
	}

	// 3. Issue a signed, time-limited token with role claims
	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, DefaultRoles)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User: UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Roles: DefaultRoles,
	}, nil
}
