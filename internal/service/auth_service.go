package service

import (
	"errors"

	"go-stockme/internal/authz"
	"go-stockme/internal/model"
	"go-stockme/internal/repository"
	"go-stockme/pkg/apperror"
	"go-stockme/pkg/jwt"
	"go-stockme/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(input *RegisterInput) (*LoginResponse, error)
	Login(email, password string) (*LoginResponse, error)
	Me(userID uuid.UUID) (*model.UserResponse, error)
}

type RegisterInput struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"required,min=6"`
	Role     authz.Role `json:"role" validate:"omitempty,oneof=staff admin"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(input *RegisterInput) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, apperror.Validation(validator.Message(errs))
	}

	if existing, _ := s.userRepo.FindByEmail(input.Email); existing != nil {
		return nil, apperror.Conflict("Email already registered")
	}

	role := input.Role
	if role == "" {
		role = authz.RoleStaff
	}

	// The admin role is self-grantable only while no admin exists; that
	// bootstraps the first account, after which admins are seeded or promoted
	// out of band.
	if role == authz.RoleAdmin {
		adminExists, err := s.userRepo.ExistsAdmin()
		if err != nil {
			return nil, err
		}
		if adminExists {
			return nil, apperror.Forbidden("Admin role cannot be self-granted")
		}
	}

	user := &model.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  role,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, apperror.Internal("failed to hash password")
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	return s.issueToken(user)
}

func (s *authService) Me(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) issueToken(user *model.User) (*LoginResponse, error) {
	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, apperror.Internal("failed to generate token")
	}
	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
