// Package authz - разрешение ролей и проверка прав доступа
// внутри компании: владелец, участники команды, гейт подписки.
package authz

import "jobboard_backend/internal/models"

// PrincipalKind - вид действующего принципала относительно компании.
type PrincipalKind int

const (
	// NoAccess - пользователь не имеет отношения к компании.
	NoAccess PrincipalKind = iota
	// EmployerOwner - владелец профиля компании (полный доступ).
	EmployerOwner
	// TeamMemberPrincipal - активный участник команды компании.
	TeamMemberPrincipal
)

func (k PrincipalKind) String() string {
	switch k {
	case EmployerOwner:
		return "employer_owner"
	case TeamMemberPrincipal:
		return "team_member"
	default:
		return "no_access"
	}
}

// Principal - результат разрешения роли для конкретной компании.
// Поля TeamRole/Permissions заполнены только для TeamMemberPrincipal.
type Principal struct {
	Kind        PrincipalKind
	UserID      string
	TeamRole    models.TeamRole
	Permissions models.PermissionSet
}

// IsPrimaryOwner - владелец компании либо участник с ролью primary_owner.
func (p Principal) IsPrimaryOwner() bool {
	if p.Kind == EmployerOwner {
		return true
	}
	return p.Kind == TeamMemberPrincipal && p.TeamRole == models.TeamRolePrimaryOwner
}
