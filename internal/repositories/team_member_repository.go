package repositories

import (
	"errors"
	"time"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInvitationNotFound = errors.New("invitation not found")

type TeamMemberRepository interface {
	Create(member *models.TeamMember) error
	FindByID(id string) (*models.TeamMember, error)
	// FindActiveTeamMember - участник, привязанный к user_id и компании,
	// только is_active=true. Используется резолвером прав.
	FindActiveTeamMember(userID, employerProfileID string) (*models.TeamMember, error)
	FindByInvitationToken(token string) (*models.TeamMember, error)
	FindByEmailAndCompany(email, employerProfileID string) (*models.TeamMember, error)
	ListByCompany(employerProfileID string) ([]models.TeamMember, int64, error)
	Update(member *models.TeamMember) error
	Delete(id string) error
	// MarkExpiredInvitations переводит протухшие pending-приглашения
	// в expired. Вызывается лениво при листинге команды.
	MarkExpiredInvitations(employerProfileID string, now time.Time) error
}

type TeamMemberRepositoryImpl struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &TeamMemberRepositoryImpl{db: db}
}

func (r *TeamMemberRepositoryImpl) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

func (r *TeamMemberRepositoryImpl) FindByID(id string) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.Where("id = ?", id).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepositoryImpl) FindActiveTeamMember(userID, employerProfileID string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.
		Where("user_id = ? AND employer_profile_id = ? AND is_active = ?", userID, employerProfileID, true).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepositoryImpl) FindByInvitationToken(token string) (*models.TeamMember, error) {
	if token == "" {
		return nil, ErrInvitationNotFound
	}
	var member models.TeamMember
	if err := r.db.Where("invitation_token = ?", token).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepositoryImpl) FindByEmailAndCompany(email, employerProfileID string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.
		Where("email = ? AND employer_profile_id = ?", email, employerProfileID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *TeamMemberRepositoryImpl) ListByCompany(employerProfileID string) ([]models.TeamMember, int64, error) {
	var members []models.TeamMember
	var total int64

	query := r.db.Model(&models.TeamMember{}).Where("employer_profile_id = ?", employerProfileID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("created_at ASC").Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *TeamMemberRepositoryImpl) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

func (r *TeamMemberRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.TeamMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepositoryImpl) MarkExpiredInvitations(employerProfileID string, now time.Time) error {
	return r.db.Model(&models.TeamMember{}).
		Where("employer_profile_id = ? AND invitation_status = ? AND invitation_expires < ?",
			employerProfileID, models.InvitationStatusPending, now).
		Update("invitation_status", models.InvitationStatusExpired).Error
}
