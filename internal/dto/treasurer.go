package dto

import (
	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// UpdateTreasurerRequest defines the editable treasurer profile fields.
type UpdateTreasurerRequest struct {
	Name string `json:"name" binding:"required"`
}

// TreasurerResponse defines the data returned for the treasurer profile.
type TreasurerResponse struct {
	Name         string `json:"name"`
	HasSignature bool   `json:"hasSignature"`
}

// ToTreasurerResponse converts a domain.Treasurer to TreasurerResponse.
func ToTreasurerResponse(t *domain.Treasurer) TreasurerResponse {
	return TreasurerResponse{
		Name:         t.Name,
		HasSignature: t.SignatureObject != "",
	}
}
