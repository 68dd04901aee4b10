package authz

import (
	"testing"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllows_TableDriven(t *testing.T) {
	tests := []struct {
		name       string
		principal  Principal
		capability models.Capability
		want       bool
	}{
		{
			name:       "владелец компании проходит любую проверку",
			principal:  Principal{Kind: EmployerOwner},
			capability: models.CapManageTeam,
			want:       true,
		},
		{
			name: "primary_owner участник обходит флаги",
			principal: Principal{
				Kind:     TeamMemberPrincipal,
				TeamRole: models.TeamRolePrimaryOwner,
				// флаги пустые, но роль решает
			},
			capability: models.CapExportData,
			want:       true,
		},
		{
			name: "рекрутер с нужным флагом",
			principal: Principal{
				Kind:        TeamMemberPrincipal,
				TeamRole:    models.TeamRoleRecruiter,
				Permissions: models.PermissionSet{CanPostJobs: true},
			},
			capability: models.CapPostJobs,
			want:       true,
		},
		{
			name: "рекрутер без флага управления командой",
			principal: Principal{
				Kind:        TeamMemberPrincipal,
				TeamRole:    models.TeamRoleRecruiter,
				Permissions: models.DefaultPermissionsForRole(models.TeamRoleRecruiter),
			},
			capability: models.CapManageTeam,
			want:       false,
		},
		{
			name: "интервьюер не публикует вакансии",
			principal: Principal{
				Kind:        TeamMemberPrincipal,
				TeamRole:    models.TeamRoleInterviewer,
				Permissions: models.DefaultPermissionsForRole(models.TeamRoleInterviewer),
			},
			capability: models.CapPostJobs,
			want:       false,
		},
		{
			name:       "нет доступа - нет прав",
			principal:  Principal{Kind: NoAccess},
			capability: models.CapViewApplications,
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allows(tt.principal, tt.capability))
		})
	}
}

func TestEvaluator_CanPerform(t *testing.T) {
	employers := &fakeEmployerFinder{profiles: map[string]*models.EmployerProfile{
		"owner-1": employerProfile("company-1", "owner-1"),
	}}
	members := &fakeTeamMemberFinder{members: map[string]*models.TeamMember{
		"recruiter-1/company-1": {
			Role:        models.TeamRoleRecruiter,
			Permissions: models.DefaultPermissionsForRole(models.TeamRoleRecruiter),
			IsActive:    true,
		},
	}}
	e := NewEvaluator(NewResolver(employers, members))

	owner := &models.User{Role: models.UserRoleEmployer}
	owner.ID = "owner-1"
	recruiter := &models.User{Role: models.UserRoleTeamMember}
	recruiter.ID = "recruiter-1"

	allowed, err := e.CanPerform(owner, "company-1", models.CapManageTeam)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = e.CanPerform(recruiter, "company-1", models.CapPostJobs)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = e.CanPerform(recruiter, "company-1", models.CapManageTeam)
	require.NoError(t, err)
	assert.False(t, allowed)

	// владелец чужой компании
	allowed, err = e.CanPerform(owner, "company-2", models.CapPostJobs)
	require.NoError(t, err)
	assert.False(t, allowed)
}

// Полный набор флагов не заменяет роль primary owner
// для разрушающих операций.
func TestEvaluator_CanPerformDestructive(t *testing.T) {
	employers := &fakeEmployerFinder{profiles: map[string]*models.EmployerProfile{
		"owner-1": employerProfile("company-1", "owner-1"),
	}}
	members := &fakeTeamMemberFinder{members: map[string]*models.TeamMember{
		"admin-1/company-1": {
			Role:        models.TeamRoleAdmin,
			Permissions: models.FullPermissions(),
			IsActive:    true,
		},
		"po-1/company-1": {
			Role:     models.TeamRolePrimaryOwner,
			IsActive: true,
		},
	}}
	e := NewEvaluator(NewResolver(employers, members))

	owner := &models.User{Role: models.UserRoleEmployer}
	owner.ID = "owner-1"
	admin := &models.User{Role: models.UserRoleTeamMember}
	admin.ID = "admin-1"
	po := &models.User{Role: models.UserRoleTeamMember}
	po.ID = "po-1"

	allowed, err := e.CanPerformDestructive(owner, "company-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = e.CanPerformDestructive(po, "company-1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = e.CanPerformDestructive(admin, "company-1")
	require.NoError(t, err)
	assert.False(t, allowed, "admin с полными флагами не primary owner")
}
