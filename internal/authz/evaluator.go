package authz

import (
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
)

// Evaluator - чистая проверка (принципал, компания, capability) -> allow/deny.
type Evaluator struct {
	resolver *Resolver
}

func NewEvaluator(resolver *Resolver) *Evaluator {
	return &Evaluator{resolver: resolver}
}

// CanPerform проверяет право пользователя на действие в рамках компании.
//
//   - EmployerOwner: всегда true, владелец обходит по-флаговые проверки
//     для своей компании (и только своей - резолвер сверяет id).
//   - TeamMember: true для primary_owner, иначе по флагу. Fail closed.
//   - NoAccess: false.
func (e *Evaluator) CanPerform(user *models.User, employerProfileID string, capability models.Capability) (bool, error) {
	principal, err := e.resolver.Resolve(user, employerProfileID)
	if err != nil {
		return false, err
	}

	allowed := Allows(principal, capability)
	logger.AccessDecisionLog(user.ID, employerProfileID, string(capability), allowed)
	return allowed, nil
}

// Allows - решение по уже разрешенному принципалу.
func Allows(p Principal, capability models.Capability) bool {
	switch p.Kind {
	case EmployerOwner:
		return true
	case TeamMemberPrincipal:
		if p.TeamRole == models.TeamRolePrimaryOwner {
			return true
		}
		return p.Permissions.Allows(capability)
	default:
		return false
	}
}

// CanPerformDestructive - для разрушающих/массовых операций
// (удаление участников, массовое удаление данных): требуется
// primary owner независимо от выставленных флагов.
func (e *Evaluator) CanPerformDestructive(user *models.User, employerProfileID string) (bool, error) {
	principal, err := e.resolver.Resolve(user, employerProfileID)
	if err != nil {
		return false, err
	}
	return principal.IsPrimaryOwner(), nil
}

// ResolvePrincipal отдает принципала вызывающему коду, которому нужны
// детали (роль, email компании для телеметрии).
func (e *Evaluator) ResolvePrincipal(user *models.User, employerProfileID string) (Principal, error) {
	return e.resolver.Resolve(user, employerProfileID)
}
