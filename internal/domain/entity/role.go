package entity

import "slices"

// Role represents the type of role a caller can have.
type Role string

const (
	// RoleCustomer is a signed-in shopper.
	RoleCustomer Role = "customer"
	// RoleAdmin manages catalog media and loyalty adjustments.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, dropping empty values.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if s != "" {
			result = append(result, Role(s))
		}
	}

	return result
}
