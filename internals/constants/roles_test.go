package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, IsValidRole(r), r)
	}
	assert.False(t, IsValidRole("owner"))
	assert.False(t, IsValidRole(""))
	assert.False(t, IsValidRole("Admin"))
}

func TestRoleGroups(t *testing.T) {
	assert.Equal(t, []string{RoleAdmin}, AdminOnly)
	assert.Contains(t, StaffAndAbove, RoleHOD)
	assert.Contains(t, StaffAndAbove, RoleHeadmaster)
	assert.NotContains(t, StaffAndAbove, RoleTeacher)
	assert.Contains(t, TeacherAndAbove, RoleAdmin)
	assert.NotContains(t, TeacherAndAbove, RoleStudent)
	assert.Len(t, AllRoles, 6)
}
