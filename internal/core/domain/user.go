package domain

import (
	"strings"
	"time"
)

type Role int

const (
	RoleUser Role = iota + 1
	RoleModerator
	RoleAdmin
)

// AllRoles is the closed role set in identity order.
var AllRoles = []Role{RoleUser, RoleModerator, RoleAdmin}

func (r Role) String() string {
	switch r {
	case RoleModerator:
		return "MODERATOR"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "USER"
	}
}

func (r Role) ID() int { return int(r) }

// ParseRole maps any accepted alias to a role. Unknown names resolve to
// RoleUser, so the mapping is total.
func ParseRole(name string) Role {
	n := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "role_")
	switch n {
	case "admin":
		return RoleAdmin
	case "mod", "moderator":
		return RoleModerator
	default:
		return RoleUser
	}
}

// RoleFromName is the strict lookup used for names this service issued
// itself, such as token claims.
func RoleFromName(name string) (Role, bool) {
	for _, r := range AllRoles {
		if r.String() == name {
			return r, true
		}
	}
	return 0, false
}

// RoleFromID returns false for identities outside the closed set.
func RoleFromID(id int) (Role, bool) {
	r := Role(id)
	if r < RoleUser || r > RoleAdmin {
		return 0, false
	}
	return r, true
}

// ResolveRoles turns requested role names into a deduplicated role set,
// defaulting to RoleUser when nothing was requested.
func ResolveRoles(names []string) []Role {
	if len(names) == 0 {
		return []Role{RoleUser}
	}

	seen := make(map[Role]bool, len(names))
	roles := make([]Role, 0, len(names))
	for _, n := range names {
		r := ParseRole(n)
		if seen[r] {
			continue
		}
		seen[r] = true
		roles = append(roles, r)
	}
	return roles
}

func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return names
}

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Enabled      bool      `json:"enabled"`
	Roles        []Role    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewUser(username, email, passwordHash string, roles []Role) *User {
	if len(roles) == 0 {
		roles = []Role{RoleUser}
	}
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Enabled:      true,
		Roles:        roles,
		CreatedAt:    time.Now().UTC(),
	}
}

// Identity is what a validated access token resolves to.
type Identity struct {
	UserID   int64
	Username string
	Roles    []Role
}

func (i Identity) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (i Identity) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if i.HasRole(r) {
			return true
		}
	}
	return false
}
