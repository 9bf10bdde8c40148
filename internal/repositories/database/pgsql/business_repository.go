package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelompok16/kas-backend/internal/apperrors"
	"github.com/kelompok16/kas-backend/internal/core/domain"
	portsrepo "github.com/kelompok16/kas-backend/internal/core/ports/repositories"
	"github.com/kelompok16/kas-backend/internal/models"
)

type PgxBusinessRepository struct {
	pool *pgxpool.Pool
}

// newPgxBusinessRepository creates a new repository for business data.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{pool: pool}
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

func toModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:  d.BusinessID,
		Name:        d.Name,
		Owner:       d.Owner,
		Description: d.Description,
		Contact:     d.Contact,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Owner:       m.Owner,
		Description: m.Description,
		Contact:     m.Contact,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveBusiness inserts a new business.
func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	modelBiz := toModelBusiness(business)

	query := `
		INSERT INTO businesses (business_id, name, owner, description, contact, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		modelBiz.BusinessID,
		modelBiz.Name,
		modelBiz.Owner,
		modelBiz.Description,
		modelBiz.Contact,
		modelBiz.CreatedAt,
		modelBiz.CreatedBy,
		modelBiz.LastUpdatedAt,
		modelBiz.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: business with ID %s already exists", apperrors.ErrDuplicate, modelBiz.BusinessID)
		}
		return fmt.Errorf("failed to save business %s: %w", modelBiz.BusinessID, err)
	}
	return nil
}

// FindBusinessByID retrieves a business by its ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT business_id, name, owner, description, contact, created_at, created_by, last_updated_at, last_updated_by
		FROM businesses
		WHERE business_id = $1;
	`
	var modelBiz models.Business
	err := r.pool.QueryRow(ctx, query, businessID).Scan(
		&modelBiz.BusinessID,
		&modelBiz.Name,
		&modelBiz.Owner,
		&modelBiz.Description,
		&modelBiz.Contact,
		&modelBiz.CreatedAt,
		&modelBiz.CreatedBy,
		&modelBiz.LastUpdatedAt,
		&modelBiz.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business by ID %s: %w", businessID, err)
	}

	domainBiz := toDomainBusiness(modelBiz)
	return &domainBiz, nil
}

// ListBusinesses retrieves a paginated list of businesses ordered by name.
func (r *PgxBusinessRepository) ListBusinesses(ctx context.Context, limit int, offset int) ([]domain.Business, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT business_id, name, owner, description, contact, created_at, created_by, last_updated_at, last_updated_by
		FROM businesses
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	businesses := []domain.Business{}
	for rows.Next() {
		var modelBiz models.Business
		err := rows.Scan(
			&modelBiz.BusinessID,
			&modelBiz.Name,
			&modelBiz.Owner,
			&modelBiz.Description,
			&modelBiz.Contact,
			&modelBiz.CreatedAt,
			&modelBiz.CreatedBy,
			&modelBiz.LastUpdatedAt,
			&modelBiz.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, toDomainBusiness(modelBiz))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", rows.Err())
	}
	return businesses, nil
}

// UpdateBusiness updates an existing business's details.
func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	modelBiz := toModelBusiness(business)

	query := `
		UPDATE businesses
		SET name = $2, owner = $3, description = $4, contact = $5, last_updated_at = $6, last_updated_by = $7
		WHERE business_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelBiz.BusinessID,
		modelBiz.Name,
		modelBiz.Owner,
		modelBiz.Description,
		modelBiz.Contact,
		modelBiz.LastUpdatedAt,
		modelBiz.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update business %s: %w", modelBiz.BusinessID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBusiness removes a business. Its transactions cascade via the FK.
func (r *PgxBusinessRepository) DeleteBusiness(ctx context.Context, businessID string) error {
	query := `DELETE FROM businesses WHERE business_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete business %s: %w", businessID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
