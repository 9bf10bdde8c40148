package domain

// Category is a user-defined label grouping cash book entries.
// Deletion is refused while any entry still references it.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	AuditFields
}
