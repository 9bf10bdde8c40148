package domain

// Business represents a community business (usaha) owning its own ledger of
// transactions. Deleting a business deletes its transactions with it.
type Business struct {
	BusinessID  string `json:"businessID"`
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	AuditFields
}
