package service

import (
	"errors"
	"fmt"

	"go-shop-api/internal/apperr"
	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"
	"go-shop-api/pkg/jwt"
	"go-shop-api/pkg/validator"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *RegisterRequest, role model.Role) (*model.User, error)
	Login(email, password string) (*LoginResponse, error)
}

type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Address     string `json:"address"`
}

type LoginResponse struct {
	Message     string     `json:"message"`
	AccessToken string     `json:"access_token"`
	ID          string     `json:"id"`
	Role        model.Role `json:"role"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req *RegisterRequest, role model.Role) (*model.User, error) {
	// 1. Validasi Input
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, apperr.BadRequest(fmt.Sprintf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag))
	}

	// 2. Cek Duplikasi Email
	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, apperr.ErrEmailTaken
	}

	user := &model.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		Role:        role,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	if email == "" || password == "" {
		return nil, apperr.ErrEmailPasswordEmpty
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEmailPasswordInvalid
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, apperr.ErrEmailPasswordInvalid
	}

	token, err := jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Message:     "Success to login",
		AccessToken: token,
		ID:          user.ID.String(),
		Role:        user.Role,
	}, nil
}
