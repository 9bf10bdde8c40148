package models

// User represents a member profile row.
// PasswordHash is empty for profiles created through Google sign-in.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	AuditFields
}
