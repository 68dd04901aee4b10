package services

import (
	"testing"
	"time"

	"jobboard_backend/internal/authz"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

type teamFixture struct {
	service   TeamService
	userRepo  *fakeUserRepo
	teamRepo  *fakeTeamRepo
	auditRepo *fakeAuditLogRepo
	emails    *fakeEmailProvider
}

// Компания company-1 с владельцем owner-user (role employer)
// и активным recruiter'ом recruiter-user (без can_manage_team).
func newTeamFixture() *teamFixture {
	owner := &models.User{BaseModel: models.BaseModel{ID: "owner-user"}, Email: "owner@acme.com", Role: models.UserRoleEmployer}
	recruiterUser := &models.User{BaseModel: models.BaseModel{ID: "recruiter-user"}, Email: "recruiter@acme.com", Role: models.UserRoleTeamMember}
	adminUser := &models.User{BaseModel: models.BaseModel{ID: "admin-user"}, Email: "admin@acme.com", Role: models.UserRoleTeamMember}

	userRepo := newFakeUserRepo(owner, recruiterUser, adminUser)
	employerRepo := newFakeEmployerRepo(&models.EmployerProfile{
		BaseModel:   models.BaseModel{ID: "company-1"},
		UserID:      "owner-user",
		CompanyName: "Acme Corp",
	})

	recruiterID := "recruiter-user"
	adminID := "admin-user"
	teamRepo := newFakeTeamRepo(
		&models.TeamMember{
			BaseModel:         models.BaseModel{ID: "member-recruiter"},
			EmployerProfileID: "company-1",
			UserID:            &recruiterID,
			Email:             "recruiter@acme.com",
			Role:              models.TeamRoleRecruiter,
			Permissions:       models.DefaultPermissionsForRole(models.TeamRoleRecruiter),
			InvitationStatus:  models.InvitationStatusAccepted,
			IsActive:          true,
		},
		&models.TeamMember{
			BaseModel:         models.BaseModel{ID: "member-admin"},
			EmployerProfileID: "company-1",
			UserID:            &adminID,
			Email:             "admin@acme.com",
			Role:              models.TeamRoleAdmin,
			Permissions:       models.FullPermissions(),
			InvitationStatus:  models.InvitationStatusAccepted,
			IsActive:          true,
		},
	)

	auditRepo := &fakeAuditLogRepo{}
	emails := &fakeEmailProvider{}
	evaluator := authz.NewEvaluator(authz.NewResolver(employerRepo, teamRepo))

	return &teamFixture{
		service:   NewTeamService(teamRepo, userRepo, employerRepo, auditRepo, evaluator, emails, "https://app.example.com", 7),
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		auditRepo: auditRepo,
		emails:    emails,
	}
}

func TestInviteMember_ByOwner(t *testing.T) {
	fx := newTeamFixture()

	resp, err := fx.service.InviteMember("owner-user", "company-1", &dto.InviteTeamMemberRequest{
		Email: "new@acme.com",
		Name:  "New Hire",
		Role:  models.TeamRoleRecruiter,
	})
	require.NoError(t, err)

	assert.Equal(t, models.InvitationStatusPending, resp.InvitationStatus)
	assert.Equal(t, models.DefaultPermissionsForRole(models.TeamRoleRecruiter), resp.Permissions)

	member, err := fx.teamRepo.FindByEmailAndCompany("new@acme.com", "company-1")
	require.NoError(t, err)
	assert.NotEmpty(t, member.InvitationToken)
	require.NotNil(t, member.InvitationExpires)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *member.InvitationExpires, time.Minute)

	require.Len(t, fx.emails.invitations, 1)
	assert.Equal(t, "new@acme.com", fx.emails.invitations[0].To)
	assert.Contains(t, fx.emails.invitations[0].AcceptURL, member.InvitationToken)

	require.Len(t, fx.auditRepo.entries, 1)
	assert.Equal(t, models.AuditActionTeamInvite, fx.auditRepo.entries[0].ActionType)
}

func TestInviteMember_CustomPermissionsOverrideDefaults(t *testing.T) {
	fx := newTeamFixture()

	perms := models.PermissionSet{CanViewApplications: true}
	resp, err := fx.service.InviteMember("owner-user", "company-1", &dto.InviteTeamMemberRequest{
		Email:       "limited@acme.com",
		Role:        models.TeamRoleRecruiter,
		Permissions: &perms,
	})
	require.NoError(t, err)
	assert.Equal(t, perms, resp.Permissions)
}

// Флаг can_manage_team обязателен: recruiter приглашать не может.
func TestInviteMember_RequiresManageTeam(t *testing.T) {
	fx := newTeamFixture()

	_, err := fx.service.InviteMember("recruiter-user", "company-1", &dto.InviteTeamMemberRequest{
		Email: "new@acme.com",
		Role:  models.TeamRoleInterviewer,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
	assert.Empty(t, fx.emails.invitations)
}

func TestInviteMember_PrimaryOwnerRoleRejected(t *testing.T) {
	fx := newTeamFixture()

	_, err := fx.service.InviteMember("owner-user", "company-1", &dto.InviteTeamMemberRequest{
		Email: "second-owner@acme.com",
		Role:  models.TeamRolePrimaryOwner,
	})
	assert.Equal(t, apperrors.CodeInvalidOperation, errCode(t, err))
}

func TestInviteMember_DuplicateEmail(t *testing.T) {
	fx := newTeamFixture()

	_, err := fx.service.InviteMember("owner-user", "company-1", &dto.InviteTeamMemberRequest{
		Email: "recruiter@acme.com",
		Role:  models.TeamRoleInterviewer,
	})
	assert.Equal(t, apperrors.CodeAlreadyExists, errCode(t, err))
}

// Протухшее приглашение не блокирует повторное.
func TestInviteMember_ReinviteAfterExpiry(t *testing.T) {
	fx := newTeamFixture()
	expired := time.Now().Add(-time.Hour)
	require.NoError(t, fx.teamRepo.Create(&models.TeamMember{
		EmployerProfileID: "company-1",
		Email:             "stale@acme.com",
		Role:              models.TeamRoleInterviewer,
		InvitationStatus:  models.InvitationStatusExpired,
		InvitationExpires: &expired,
	}))

	_, err := fx.service.InviteMember("owner-user", "company-1", &dto.InviteTeamMemberRequest{
		Email: "stale@acme.com",
		Role:  models.TeamRoleInterviewer,
	})
	assert.NoError(t, err)
}

func TestAcceptInvitation(t *testing.T) {
	fx := newTeamFixture()
	resp, err := fx.service.InviteMember("owner-user", "company-1", &dto.InviteTeamMemberRequest{
		Email: "new@acme.com",
		Role:  models.TeamRoleRecruiter,
	})
	require.NoError(t, err)
	member, err := fx.teamRepo.FindByID(resp.ID)
	require.NoError(t, err)
	token := member.InvitationToken

	accepted, err := fx.service.AcceptInvitation(&dto.AcceptInvitationRequest{
		Token:    token,
		Name:     "New Hire",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusAccepted, accepted.InvitationStatus)
	assert.NotNil(t, accepted.AcceptedAt)

	user, err := fx.userRepo.FindByEmail("new@acme.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleTeamMember, user.Role)
	assert.True(t, user.IsVerified)

	// токен обнулен, участник привязан к созданному пользователю
	member, err = fx.teamRepo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Empty(t, member.InvitationToken)
	require.NotNil(t, member.UserID)
	assert.Equal(t, user.ID, *member.UserID)

	// повторное использование токена невозможно
	_, err = fx.service.AcceptInvitation(&dto.AcceptInvitationRequest{
		Token:    token,
		Name:     "Replay",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvitationInvalid)
}

func TestAcceptInvitation_Expired(t *testing.T) {
	fx := newTeamFixture()
	expires := time.Now().Add(-time.Minute)
	member := &models.TeamMember{
		EmployerProfileID: "company-1",
		Email:             "late@acme.com",
		Role:              models.TeamRoleInterviewer,
		InvitationStatus:  models.InvitationStatusPending,
		InvitationToken:   "expired-token",
		InvitationExpires: &expires,
	}
	require.NoError(t, fx.teamRepo.Create(member))

	_, err := fx.service.AcceptInvitation(&dto.AcceptInvitationRequest{
		Token:    "expired-token",
		Name:     "Late",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvitationExpired)

	// запись переведена в expired
	stored, err := fx.teamRepo.FindByID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusExpired, stored.InvitationStatus)
}

func TestAcceptInvitation_UnknownToken(t *testing.T) {
	fx := newTeamFixture()

	_, err := fx.service.AcceptInvitation(&dto.AcceptInvitationRequest{
		Token:    "no-such-token",
		Name:     "Ghost",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvitationInvalid)
}

func TestUpdateMember_PrimaryOwnerImmutable(t *testing.T) {
	fx := newTeamFixture()
	ownerID := "po-user"
	require.NoError(t, fx.teamRepo.Create(&models.TeamMember{
		BaseModel:         models.BaseModel{ID: "member-po"},
		EmployerProfileID: "company-1",
		UserID:            &ownerID,
		Email:             "po@acme.com",
		Role:              models.TeamRolePrimaryOwner,
		InvitationStatus:  models.InvitationStatusAccepted,
		IsActive:          true,
	}))

	newRole := models.TeamRoleInterviewer
	_, err := fx.service.UpdateMember("owner-user", "company-1", "member-po", &dto.UpdateTeamMemberRequest{Role: &newRole})
	assert.Equal(t, apperrors.CodeInvalidOperation, errCode(t, err))
}

// Удаление - разрушающая операция: полного набора флагов недостаточно,
// нужен primary owner.
func TestRemoveMember_RequiresPrimaryOwner(t *testing.T) {
	fx := newTeamFixture()

	err := fx.service.RemoveMember("admin-user", "company-1", "member-recruiter")
	assert.ErrorIs(t, err, apperrors.ErrPrimaryOwnerOnly)

	// владелец компании может
	err = fx.service.RemoveMember("owner-user", "company-1", "member-recruiter")
	require.NoError(t, err)
	_, err = fx.teamRepo.FindByID("member-recruiter")
	assert.Error(t, err)
}

// Чужой участник выглядит как несуществующий.
func TestRemoveMember_CrossCompanyNotFound(t *testing.T) {
	fx := newTeamFixture()
	require.NoError(t, fx.teamRepo.Create(&models.TeamMember{
		BaseModel:         models.BaseModel{ID: "member-foreign"},
		EmployerProfileID: "company-2",
		Email:             "other@corp.com",
		Role:              models.TeamRoleRecruiter,
	}))

	err := fx.service.RemoveMember("owner-user", "company-1", "member-foreign")
	assert.Equal(t, apperrors.CodeNotFound, errCode(t, err))

	// запись не тронута
	_, findErr := fx.teamRepo.FindByID("member-foreign")
	assert.NoError(t, findErr)
}

func TestDeactivateMember(t *testing.T) {
	fx := newTeamFixture()

	require.NoError(t, fx.service.DeactivateMember("owner-user", "company-1", "member-recruiter"))

	member, err := fx.teamRepo.FindByID("member-recruiter")
	require.NoError(t, err)
	assert.False(t, member.IsActive)

	// деактивированный участник теряет права немедленно
	_, err = fx.service.InviteMember("recruiter-user", "company-1", &dto.InviteTeamMemberRequest{
		Email: "x@acme.com",
		Role:  models.TeamRoleInterviewer,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestListMembers_MarksExpiredLazily(t *testing.T) {
	fx := newTeamFixture()
	expires := time.Now().Add(-time.Hour)
	require.NoError(t, fx.teamRepo.Create(&models.TeamMember{
		BaseModel:         models.BaseModel{ID: "member-stale"},
		EmployerProfileID: "company-1",
		Email:             "stale@acme.com",
		Role:              models.TeamRoleInterviewer,
		InvitationStatus:  models.InvitationStatusPending,
		InvitationToken:   "stale-token",
		InvitationExpires: &expires,
	}))

	resp, err := fx.service.ListMembers("owner-user", "company-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)

	stored, err := fx.teamRepo.FindByID("member-stale")
	require.NoError(t, err)
	assert.Equal(t, models.InvitationStatusExpired, stored.InvitationStatus)
}
