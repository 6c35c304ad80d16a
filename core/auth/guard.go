package auth

import "github.com/curaedu/cura/core"

// Roles
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// The three canonical role sets. Handlers declare one of these instead of
// scattering role literals per call site.
var (
	TeacherOnly = []string{RoleTeacher}
	StudentOnly = []string{RoleStudent}
	AnyRole     = []string{RoleTeacher, RoleStudent}
)

// Authorize checks that the principal's role is a member of the allowed
// set and returns a core.AuthorizationError naming the denied role and
// the allowed set otherwise. Pure, synchronous, no I/O.
func Authorize(p Principal, allowed ...string) error {
	for _, role := range allowed {
		if p.Role == role {
			return nil
		}
	}
	return core.NewAuthorizationError(p.Role, allowed)
}
