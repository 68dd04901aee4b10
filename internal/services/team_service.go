package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/authz"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/pkg/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/telemetry"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TeamService interface {
	InviteMember(actorUserID, employerProfileID string, req *dto.InviteTeamMemberRequest) (*dto.TeamMemberResponse, error)
	AcceptInvitation(req *dto.AcceptInvitationRequest) (*dto.TeamMemberResponse, error)
	ListMembers(actorUserID, employerProfileID string) (*dto.TeamListResponse, error)
	UpdateMember(actorUserID, employerProfileID, memberID string, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	DeactivateMember(actorUserID, employerProfileID, memberID string) error
	RemoveMember(actorUserID, employerProfileID, memberID string) error
}

type teamService struct {
	teamRepo      repositories.TeamMemberRepository
	userRepo      repositories.UserRepository
	employerRepo  repositories.EmployerProfileRepository
	auditRepo     repositories.AuditLogRepository
	evaluator     *authz.Evaluator
	emailSender   email.Provider
	baseURL       string
	invitationTTL time.Duration
}

func NewTeamService(
	teamRepo repositories.TeamMemberRepository,
	userRepo repositories.UserRepository,
	employerRepo repositories.EmployerProfileRepository,
	auditRepo repositories.AuditLogRepository,
	evaluator *authz.Evaluator,
	emailSender email.Provider,
	baseURL string,
	invitationTTLDays int,
) TeamService {
	if invitationTTLDays <= 0 {
		invitationTTLDays = 7
	}
	return &teamService{
		teamRepo:      teamRepo,
		userRepo:      userRepo,
		employerRepo:  employerRepo,
		auditRepo:     auditRepo,
		evaluator:     evaluator,
		emailSender:   emailSender,
		baseURL:       baseURL,
		invitationTTL: time.Duration(invitationTTLDays) * 24 * time.Hour,
	}
}

func (s *teamService) InviteMember(actorUserID, employerProfileID string, req *dto.InviteTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerform(actor, employerProfileID, models.CapManageTeam)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Role == models.TeamRolePrimaryOwner {
		return nil, apperrors.ErrInvalidOperation("team", "Primary owner cannot be invited")
	}

	if existing, err := s.teamRepo.FindByEmailAndCompany(req.Email, employerProfileID); err == nil {
		if existing.InvitationStatus != models.InvitationStatusExpired {
			return nil, apperrors.ErrAlreadyExists(errors.New("team member with this email already exists"))
		}
	}

	perms := models.DefaultPermissionsForRole(req.Role)
	if req.Permissions != nil {
		perms = *req.Permissions
	}

	expires := time.Now().Add(s.invitationTTL)
	member := &models.TeamMember{
		EmployerProfileID: employerProfileID,
		Email:             req.Email,
		Name:              req.Name,
		Role:              req.Role,
		Permissions:       perms,
		InvitationStatus:  models.InvitationStatusPending,
		InvitationToken:   uuid.NewString(),
		InvitationExpires: &expires,
		IsActive:          true,
	}
	if err := s.teamRepo.Create(member); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.auditTeamAction(actorUserID, member, models.AuditActionTeamInvite)

	// Письмо fire-and-forget: приглашение создано в любом случае
	telemetry.BestEffort("team.invitation_email", func() error {
		company, err := s.employerRepo.FindByID(employerProfileID)
		if err != nil {
			return err
		}
		acceptURL := fmt.Sprintf("%s/team/accept?token=%s", s.baseURL, member.InvitationToken)
		return s.emailSender.SendTeamInvitation(member.Email, company.CompanyName, acceptURL)
	})

	logger.Info("team member invited", "employer_profile_id", employerProfileID, "member_id", member.ID)
	return buildTeamMemberResponse(member), nil
}

func (s *teamService) AcceptInvitation(req *dto.AcceptInvitationRequest) (*dto.TeamMemberResponse, error) {
	member, err := s.teamRepo.FindByInvitationToken(req.Token)
	if err != nil {
		// токен уже использован (обнулен) или не существовал
		return nil, apperrors.ErrInvitationInvalid
	}

	if member.InvitationStatus != models.InvitationStatusPending {
		return nil, apperrors.ErrInvitationInvalid
	}
	if member.InvitationExpires == nil || !member.InvitationExpires.After(time.Now()) {
		member.InvitationStatus = models.InvitationStatusExpired
		_ = s.teamRepo.Update(member)
		return nil, apperrors.ErrInvitationExpired
	}

	if _, err := s.userRepo.FindByEmail(member.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists(errors.New("a user with this email already exists"))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	user := &models.User{
		Email:        member.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.UserRoleTeamMember,
		Status:       models.UserStatusActive,
		IsVerified:   true, // ссылка из письма подтверждает адрес
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	member.UserID = &user.ID
	member.Name = req.Name
	member.InvitationStatus = models.InvitationStatusAccepted
	member.InvitationToken = "" // повторное использование невозможно
	member.AcceptedAt = &now
	if err := s.teamRepo.Update(member); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("team invitation accepted", "member_id", member.ID, "user_id", user.ID)
	return buildTeamMemberResponse(member), nil
}

func (s *teamService) ListMembers(actorUserID, employerProfileID string) (*dto.TeamListResponse, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerform(actor, employerProfileID, models.CapManageTeam)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}

	// ленивое протухание pending-приглашений
	telemetry.BestEffort("team.mark_expired", func() error {
		return s.teamRepo.MarkExpiredInvitations(employerProfileID, time.Now())
	})

	members, total, err := s.teamRepo.ListByCompany(employerProfileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.TeamListResponse{Total: total}
	for i := range members {
		resp.Members = append(resp.Members, *buildTeamMemberResponse(&members[i]))
	}
	return resp, nil
}

func (s *teamService) UpdateMember(actorUserID, employerProfileID, memberID string, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := s.authorizeTeamChange(actorUserID, employerProfileID, memberID)
	if err != nil {
		return nil, err
	}

	if member.Role == models.TeamRolePrimaryOwner {
		return nil, apperrors.ErrInvalidOperation("team", "Primary owner cannot be modified")
	}

	if req.Role != nil {
		if err := models.ValidateTeamRole(*req.Role); err != nil {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		member.Role = *req.Role
	}
	if req.Permissions != nil {
		member.Permissions = *req.Permissions
	}

	if err := s.teamRepo.Update(member); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.auditTeamAction(actorUserID, member, models.AuditActionPermissionGrant)
	return buildTeamMemberResponse(member), nil
}

func (s *teamService) DeactivateMember(actorUserID, employerProfileID, memberID string) error {
	member, err := s.authorizeTeamChange(actorUserID, employerProfileID, memberID)
	if err != nil {
		return err
	}

	if member.Role == models.TeamRolePrimaryOwner {
		return apperrors.ErrInvalidOperation("team", "Primary owner cannot be deactivated")
	}

	member.IsActive = false
	if err := s.teamRepo.Update(member); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("team member deactivated", "member_id", member.ID)
	return nil
}

// RemoveMember - разрушающая операция: только primary owner,
// флаги can_manage_team недостаточны.
func (s *teamService) RemoveMember(actorUserID, employerProfileID, memberID string) error {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerformDestructive(actor, employerProfileID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !allowed {
		return apperrors.ErrPrimaryOwnerOnly
	}

	member, err := s.teamRepo.FindByID(memberID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if member.EmployerProfileID != employerProfileID {
		// не подтверждаем существование чужих записей
		return apperrors.ErrNotFound(repositories.ErrNotFound)
	}
	if member.Role == models.TeamRolePrimaryOwner {
		return apperrors.ErrInvalidOperation("team", "Primary owner cannot be removed")
	}

	if err := s.teamRepo.Delete(memberID); err != nil {
		return apperrors.InternalError(err)
	}

	s.auditTeamAction(actorUserID, member, models.AuditActionTeamRemove)
	return nil
}

// authorizeTeamChange - общая проверка для правок участников команды.
func (s *teamService) authorizeTeamChange(actorUserID, employerProfileID, memberID string) (*models.TeamMember, error) {
	actor, err := s.userRepo.FindByID(actorUserID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	allowed, err := s.evaluator.CanPerform(actor, employerProfileID, models.CapManageTeam)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !allowed {
		return nil, apperrors.ErrInsufficientPermissions
	}

	member, err := s.teamRepo.FindByID(memberID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if member.EmployerProfileID != employerProfileID {
		return nil, apperrors.ErrNotFound(repositories.ErrNotFound)
	}
	return member, nil
}

func (s *teamService) auditTeamAction(actorUserID string, member *models.TeamMember, action models.AuditAction) {
	telemetry.BestEffort("team.audit", func() error {
		metadata, err := json.Marshal(map[string]string{
			"memberId":    member.ID,
			"memberEmail": member.Email,
			"memberRole":  string(member.Role),
		})
		if err != nil {
			return err
		}
		target := ""
		if member.UserID != nil {
			target = *member.UserID
		}
		return s.auditRepo.Create(&models.AuditLog{
			ActorID:      actorUserID,
			TargetUserID: target,
			ActionType:   action,
			Category:     models.AuditCategoryTeam,
			Metadata:     datatypes.JSON(metadata),
		})
	})
}

func buildTeamMemberResponse(member *models.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		ID:               member.ID,
		Email:            member.Email,
		Name:             member.Name,
		Role:             member.Role,
		Permissions:      member.Permissions,
		InvitationStatus: member.InvitationStatus,
		IsActive:         member.IsActive,
		AcceptedAt:       member.AcceptedAt,
		CreatedAt:        member.CreatedAt,
	}
}
