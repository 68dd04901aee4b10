package services

import (
	"testing"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeEmployerRepo, *fakeCandidateRepo) {
	t.Helper()
	if config.AppConfig == nil {
		cfg := &config.Config{}
		cfg.JWT.Secret = "test-secret"
		cfg.JWT.TTL = 60
		config.AppConfig = cfg
	}

	userRepo := newFakeUserRepo()
	employerRepo := newFakeEmployerRepo()
	candidateRepo := newFakeCandidateRepo()
	return NewAuthService(userRepo, employerRepo, candidateRepo), userRepo, employerRepo, candidateRepo
}

func TestRegister_EmployerGetsPrimaryOwnerProfile(t *testing.T) {
	service, _, employerRepo, _ := newAuthFixture(t)

	resp, err := service.Register(&dto.RegisterRequest{
		Email:       "owner@acme.com",
		Password:    "s3cret-pass",
		Name:        "Owner",
		Role:        models.UserRoleEmployer,
		CompanyName: "Acme Corp",
	})
	require.NoError(t, err)

	profile, err := employerRepo.FindEmployerProfileByUserID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", profile.CompanyName)
	assert.True(t, profile.IsPrimaryOwner)
	assert.Equal(t, models.FullPermissions(), profile.Permissions)
}

func TestRegister_CandidateGetsEmptyProfile(t *testing.T) {
	service, userRepo, _, candidateRepo := newAuthFixture(t)

	resp, err := service.Register(&dto.RegisterRequest{
		Email:    "jane@mail.com",
		Password: "s3cret-pass",
		Name:     "Jane",
		Role:     models.UserRoleCandidate,
	})
	require.NoError(t, err)

	_, err = candidateRepo.FindByUserID(resp.ID)
	assert.NoError(t, err)

	// пароль хранится только хэшем
	user, err := userRepo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("s3cret-pass", user.PasswordHash))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, _, _, _ := newAuthFixture(t)
	_, err := service.Register(&dto.RegisterRequest{
		Email: "jane@mail.com", Password: "s3cret-pass", Name: "Jane", Role: models.UserRoleCandidate,
	})
	require.NoError(t, err)

	_, err = service.Register(&dto.RegisterRequest{
		Email: "jane@mail.com", Password: "other-pass", Name: "Jane 2", Role: models.UserRoleCandidate,
	})
	assert.Equal(t, apperrors.CodeAlreadyExists, errCode(t, err))
}

func TestRegister_EmployerRequiresCompanyName(t *testing.T) {
	service, _, _, _ := newAuthFixture(t)

	_, err := service.Register(&dto.RegisterRequest{
		Email: "owner@acme.com", Password: "s3cret-pass", Name: "Owner", Role: models.UserRoleEmployer,
	})
	assert.Equal(t, apperrors.CodeValidationFailed, errCode(t, err))
}

// Неизвестный email и неверный пароль неразличимы для клиента.
func TestLogin_InvalidCredentials(t *testing.T) {
	service, _, _, _ := newAuthFixture(t)
	_, err := service.Register(&dto.RegisterRequest{
		Email: "jane@mail.com", Password: "s3cret-pass", Name: "Jane", Role: models.UserRoleCandidate,
	})
	require.NoError(t, err)

	_, wrongPass := service.Login(&dto.LoginRequest{Email: "jane@mail.com", Password: "nope"})
	_, noUser := service.Login(&dto.LoginRequest{Email: "ghost@mail.com", Password: "nope"})

	assert.Equal(t, apperrors.CodeInvalidCredentials, errCode(t, wrongPass))
	assert.Equal(t, apperrors.CodeInvalidCredentials, errCode(t, noUser))
	assert.Equal(t, wrongPass.Error(), noUser.Error())
}

func TestLogin_IssuesToken(t *testing.T) {
	service, _, _, _ := newAuthFixture(t)
	registered, err := service.Register(&dto.RegisterRequest{
		Email: "jane@mail.com", Password: "s3cret-pass", Name: "Jane", Role: models.UserRoleCandidate,
	})
	require.NoError(t, err)

	resp, err := service.Login(&dto.LoginRequest{Email: "jane@mail.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, models.UserRoleCandidate, claims.Role)
}

func TestChangePassword(t *testing.T) {
	service, _, _, _ := newAuthFixture(t)
	registered, err := service.Register(&dto.RegisterRequest{
		Email: "jane@mail.com", Password: "s3cret-pass", Name: "Jane", Role: models.UserRoleCandidate,
	})
	require.NoError(t, err)

	err = service.ChangePassword(registered.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-s3cret-pass",
	})
	assert.Equal(t, apperrors.CodeInvalidCredentials, errCode(t, err))

	err = service.ChangePassword(registered.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "s3cret-pass",
		NewPassword:     "new-s3cret-pass",
	})
	require.NoError(t, err)

	_, err = service.Login(&dto.LoginRequest{Email: "jane@mail.com", Password: "new-s3cret-pass"})
	assert.NoError(t, err)
}
