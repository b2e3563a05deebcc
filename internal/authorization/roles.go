package authorization

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleAgent  UserRole = "agent"
	RoleViewer UserRole = "viewer"
)

var validRoles = map[UserRole]struct{}{
	RoleAdmin:  {},
	RoleAgent:  {},
	RoleViewer: {},
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := validRoles[r]
	return ok
}

// CanManageProperties reports whether the role may create or edit property
// records and their brochure templates.
func (r UserRole) CanManageProperties() bool {
	return r == RoleAdmin || r == RoleAgent
}

func (r UserRole) Value() (driver.Value, error) {
	if r == "" {
		return string(RoleAgent), nil
	}
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid user role: %q", r)
	}
	return string(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = RoleAgent
		return nil
	}

	switch v := value.(type) {
	case string:
		role := UserRole(strings.ToLower(strings.TrimSpace(v)))
		if !role.IsValid() {
			return fmt.Errorf("invalid user role: %q", v)
		}
		*r = role
		return nil
	case []byte:
		role := UserRole(strings.ToLower(strings.TrimSpace(string(v))))
		if !role.IsValid() {
			return fmt.Errorf("invalid user role: %q", v)
		}
		*r = role
		return nil
	default:
		return fmt.Errorf("unsupported type for UserRole: %T", value)
	}
}
