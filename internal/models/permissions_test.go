package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionSet_AllowsFailClosed(t *testing.T) {
	p := PermissionSet{CanPostJobs: true}

	assert.True(t, p.Allows(CapPostJobs))
	assert.False(t, p.Allows(CapManageTeam))
	// неизвестный флаг из данных не открывает доступ
	assert.False(t, p.Allows(Capability("can_do_anything")))
	assert.False(t, PermissionSet{}.Allows(CapPostJobs))
}

func TestDefaultPermissionsForRole(t *testing.T) {
	assert.Equal(t, FullPermissions(), DefaultPermissionsForRole(TeamRolePrimaryOwner))
	assert.Equal(t, FullPermissions(), DefaultPermissionsForRole(TeamRoleAdmin))

	hr := DefaultPermissionsForRole(TeamRoleHRManager)
	assert.True(t, hr.CanManageTeam)
	assert.False(t, hr.CanExportData)

	recruiter := DefaultPermissionsForRole(TeamRoleRecruiter)
	assert.True(t, recruiter.CanPostJobs)
	assert.False(t, recruiter.CanManageTeam)

	interviewer := DefaultPermissionsForRole(TeamRoleInterviewer)
	assert.True(t, interviewer.CanViewApplications)
	assert.True(t, interviewer.CanInterviewCandidates)
	assert.False(t, interviewer.CanPostJobs)

	// неизвестная роль - пустой набор
	assert.Equal(t, PermissionSet{}, DefaultPermissionsForRole(TeamRole("auditor")))
}

func TestPermissionSet_Scan(t *testing.T) {
	var p PermissionSet
	require.NoError(t, p.Scan([]byte(`{"can_post_jobs": true, "can_unknown": true}`)))
	assert.True(t, p.CanPostJobs)
	assert.False(t, p.CanManageTeam)

	// nil и пустое значение читаются как пустой набор
	require.NoError(t, p.Scan(nil))
	assert.Equal(t, PermissionSet{}, p)

	require.NoError(t, p.Scan(""))
	assert.Equal(t, PermissionSet{}, p)

	assert.Error(t, p.Scan(42))
}

func TestValidateTeamRole(t *testing.T) {
	for _, role := range []TeamRole{TeamRolePrimaryOwner, TeamRoleHRManager, TeamRoleRecruiter, TeamRoleInterviewer, TeamRoleAdmin} {
		assert.NoError(t, ValidateTeamRole(role))
	}
	assert.Error(t, ValidateTeamRole(TeamRole("ceo")))
}
