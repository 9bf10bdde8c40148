package models

// Treasurer represents the singleton treasurer profile row that signs reports.
type Treasurer struct {
	TreasurerID     string `db:"treasurer_id"`
	Name            string `db:"name"`
	SignatureObject string `db:"signature_object"` // Nullable, bucket object key
	AuditFields
}
