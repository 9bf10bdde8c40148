package domain

// Role is the access level attached to a profile. Only admins pass the login
// gate; everyone else is signed straight back out.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User represents an application profile in the domain.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	AuditFields
}
