package models

// Category represents a cash book category row.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	AuditFields
}
