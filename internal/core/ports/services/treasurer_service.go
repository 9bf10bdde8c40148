package services

import (
	"context"

	"github.com/kelompok16/kas-backend/internal/core/domain"
)

// TreasurerService manages the singleton treasurer profile that signs reports.
type TreasurerService interface {
	// GetTreasurer retrieves the treasurer profile.
	GetTreasurer(ctx context.Context) (*domain.Treasurer, error)

	// UpdateTreasurer updates the treasurer's name and, when signaturePNG is
	// non-empty, replaces the stored signature image.
	UpdateTreasurer(ctx context.Context, name string, signaturePNG []byte) (*domain.Treasurer, error)

	// DeleteSignature clears the stored signature image, if any.
	DeleteSignature(ctx context.Context) (*domain.Treasurer, error)
}
