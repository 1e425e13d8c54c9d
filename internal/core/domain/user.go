package domain

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// User models an authenticated actor in the system. Accounts are provisioned
// out of band (seed data); the API never creates or deletes them.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}
