package controllers

// Role IDs as seeded in the roles table.
const (
	RoleFaculty = 1
	RoleDean    = 2
	RoleAdmin   = 3
)
