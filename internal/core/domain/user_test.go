package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := map[string]Role{
		"admin":      RoleAdmin,
		"ADMIN":      RoleAdmin,
		"ROLE_ADMIN": RoleAdmin,
		" mod ":      RoleModerator,
		"moderator":  RoleModerator,
		"user":       RoleUser,
		"superuser":  RoleUser,
		"":           RoleUser,
	}

	for name, want := range tests {
		assert.Equal(t, want, ParseRole(name), name)
	}
}

func TestResolveRoles(t *testing.T) {
	assert.Equal(t, []Role{RoleUser}, ResolveRoles(nil))
	assert.Equal(t, []Role{RoleAdmin}, ResolveRoles([]string{"admin"}))
	assert.Equal(t, []Role{RoleAdmin, RoleModerator}, ResolveRoles([]string{"admin", "mod", "ADMIN"}))
	assert.Equal(t, []Role{RoleUser}, ResolveRoles([]string{"unknown", "user"}))
}

func TestRoleLookups(t *testing.T) {
	r, ok := RoleFromName("MODERATOR")
	assert.True(t, ok)
	assert.Equal(t, RoleModerator, r)

	_, ok = RoleFromName("moderator")
	assert.False(t, ok)

	r, ok = RoleFromID(3)
	assert.True(t, ok)
	assert.Equal(t, "ADMIN", r.String())

	_, ok = RoleFromID(4)
	assert.False(t, ok)

	assert.Equal(t, []string{"USER", "ADMIN"}, RoleNames([]Role{RoleUser, RoleAdmin}))
}

func TestIdentity_HasAnyRole(t *testing.T) {
	id := Identity{UserID: 1, Username: "ana", Roles: []Role{RoleUser, RoleModerator}}

	assert.True(t, id.HasRole(RoleModerator))
	assert.False(t, id.HasRole(RoleAdmin))
	assert.True(t, id.HasAnyRole(RoleAdmin, RoleUser))
	assert.False(t, id.HasAnyRole(RoleAdmin))
}

func TestNewUser(t *testing.T) {
	u := NewUser("ana", "ana@example.com", "hash", []Role{RoleUser})

	assert.True(t, u.Enabled)
	assert.False(t, u.CreatedAt.IsZero())
	assert.Equal(t, "UTC", u.CreatedAt.Location().String())
}
