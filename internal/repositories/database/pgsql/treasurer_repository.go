package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
	"github.com/kelompok16/kas-backend/internal/models"
)

type PgxTreasurerRepository struct {
	pool *pgxpool.Pool
}

// newPgxTreasurerRepository creates a new repository for the treasurer profile.
func newPgxTreasurerRepository(pool *pgxpool.Pool) portsrepo.TreasurerRepositoryFacade {
	return &PgxTreasurerRepository{pool: pool}
}

var _ portsrepo.TreasurerRepositoryFacade = (*PgxTreasurerRepository)(nil)

// GetTreasurer retrieves the singleton treasurer profile. The migrations seed
// exactly one row, so ErrNoRows here means the database was set up by hand.
func (r *PgxTreasurerRepository) GetTreasurer(ctx context.Context) (*domain.Treasurer, error) {
	query := `
		SELECT treasurer_id, name, signature_object, created_at, created_by, last_updated_at, last_updated_by
		FROM treasurer_profile
		LIMIT 1;
	`
	var modelTr models.Treasurer
	var signatureObject sql.NullString

	err := r.pool.QueryRow(ctx, query).Scan(
		&modelTr.TreasurerID,
		&modelTr.Name,
		&signatureObject,
		&modelTr.CreatedAt,
		&modelTr.CreatedBy,
		&modelTr.LastUpdatedAt,
		&modelTr.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find treasurer profile: %w", err)
	}

	if signatureObject.Valid {
		modelTr.SignatureObject = signatureObject.String
	}

	domainTr := domain.Treasurer{
		TreasurerID:     modelTr.TreasurerID,
		Name:            modelTr.Name,
		SignatureObject: modelTr.SignatureObject,
		AuditFields: domain.AuditFields{
			CreatedAt:     modelTr.CreatedAt,
			CreatedBy:     modelTr.CreatedBy,
			LastUpdatedAt: modelTr.LastUpdatedAt,
			LastUpdatedBy: modelTr.LastUpdatedBy,
		},
	}
	return &domainTr, nil
}

// UpdateTreasurer updates the singleton treasurer profile.
func (r *PgxTreasurerRepository) UpdateTreasurer(ctx context.Context, treasurer domain.Treasurer) error {
	query := `
		UPDATE treasurer_profile
		SET name = $2, signature_object = $3, last_updated_at = $4, last_updated_by = $5
		WHERE treasurer_id = $1;
	`
	var signatureObject sql.NullString
	if treasurer.SignatureObject != "" {
		signatureObject = sql.NullString{String: treasurer.SignatureObject, Valid: true}
	}

	cmdTag, err := r.pool.Exec(ctx, query,
		treasurer.TreasurerID,
		treasurer.Name,
		signatureObject,
		treasurer.LastUpdatedAt,
		treasurer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update treasurer profile %s: %w", treasurer.TreasurerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
