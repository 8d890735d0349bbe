package constants

import "fmt"

// Role names stored in users.role and carried in the JWT "role" claim.
const (
	RoleLearner = "learner"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// Role error message templates
const (
	ErrOnlyMentorsCanAccess = "Only mentors or admins may access %s."
	ErrOnlyAdminsCanAccess  = "Only admins may access %s."
)

func RoleErrorMentor(feature string) string {
	return fmt.Sprintf(ErrOnlyMentorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleLearner,
		RoleMentor,
		RoleAdmin,
	}

	MentorAndAbove = []string{
		RoleMentor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
