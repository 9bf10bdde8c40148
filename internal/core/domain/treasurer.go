package domain

// Treasurer is the singleton treasurer profile stamped onto generated
// reports. SignatureObject is the object-store key of the signature image;
// empty means no signature has been uploaded.
type Treasurer struct {
	TreasurerID     string `json:"treasurerID"`
	Name            string `json:"name"`
	SignatureObject string `json:"signatureObject,omitempty"`
	AuditFields
}
