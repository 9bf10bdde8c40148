package models

// Business represents a community business venture row.
type Business struct {
	BusinessID  string `db:"business_id"`
	Name        string `db:"name"`
	Owner       string `db:"owner"`
	Description string `db:"description"`
	Contact     string `db:"contact"`
	AuditFields
}
