package authz

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

// EmployerProfileFinder - доступ к профилям компаний.
type EmployerProfileFinder interface {
	FindEmployerProfileByUserID(userID string) (*models.EmployerProfile, error)
}

// TeamMemberFinder - доступ к активным участникам команды.
type TeamMemberFinder interface {
	FindActiveTeamMember(userID, employerProfileID string) (*models.TeamMember, error)
}

// Resolver определяет принципала относительно компании-владельца ресурса.
// Кэширования нет: данные могут меняться между запросами,
// каждая проверка читает свежие записи.
type Resolver struct {
	employers EmployerProfileFinder
	members   TeamMemberFinder
}

func NewResolver(employers EmployerProfileFinder, members TeamMemberFinder) *Resolver {
	return &Resolver{
		employers: employers,
		members:   members,
	}
}

// Resolve - (пользователь, employer_profile_id ресурса) -> Principal.
//
// Для роли employer обязательна проверка совпадения id компании:
// "является работодателем" и "владеет этой компанией" - разные вещи,
// работодатель не действует от имени чужой компании.
func (r *Resolver) Resolve(user *models.User, employerProfileID string) (Principal, error) {
	none := Principal{Kind: NoAccess, UserID: user.ID}

	switch user.Role {
	case models.UserRoleEmployer:
		profile, err := r.employers.FindEmployerProfileByUserID(user.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return none, nil
			}
			return none, err
		}
		if profile.ID != employerProfileID {
			return none, nil
		}
		return Principal{Kind: EmployerOwner, UserID: user.ID}, nil

	case models.UserRoleTeamMember:
		member, err := r.members.FindActiveTeamMember(user.ID, employerProfileID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return none, nil
			}
			return none, err
		}
		return Principal{
			Kind:        TeamMemberPrincipal,
			UserID:      user.ID,
			TeamRole:    member.Role,
			Permissions: member.Permissions,
		}, nil

	default:
		return none, nil
	}
}
