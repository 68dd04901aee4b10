package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	userRepo      repositories.UserRepository
	employerRepo  repositories.EmployerProfileRepository
	candidateRepo repositories.CandidateProfileRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	employerRepo repositories.EmployerProfileRepository,
	candidateRepo repositories.CandidateProfileRepository,
) AuthService {
	return &authService{
		userRepo:      userRepo,
		employerRepo:  employerRepo,
		candidateRepo: candidateRepo,
	}
}

func (s *authService) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists(errors.New("email already registered"))
	}

	if req.Role == models.UserRoleEmployer && req.CompanyName == "" {
		return nil, apperrors.NewBadRequestError("company_name is required for employer accounts")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Профиль ровно один, по роли
	switch req.Role {
	case models.UserRoleEmployer:
		profile := &models.EmployerProfile{
			UserID:         user.ID,
			CompanyName:    req.CompanyName,
			ContactPerson:  req.Name,
			IsPrimaryOwner: true,
			Permissions:    models.FullPermissions(),
		}
		if err := s.employerRepo.Create(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case models.UserRoleCandidate:
		profile := &models.CandidateProfile{UserID: user.ID}
		if err := s.candidateRepo.Create(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	return &dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		// одинаковый ответ для "нет пользователя" и "не тот пароль"
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", 401)
	}

	if user.Status == models.UserStatusSuspended || user.Status == models.UserStatusBanned {
		return nil, apperrors.NewForbiddenError("Account is not active")
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	}, nil
}

func (s *authService) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Current password is incorrect", 401)
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	return s.userRepo.Update(user)
}
