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
	"github.com/shopspring/decimal"
)

type PgxCashbookRepository struct {
	pool *pgxpool.Pool
}

// newPgxCashbookRepository creates a new repository for cash book entries.
func newPgxCashbookRepository(pool *pgxpool.Pool) portsrepo.CashbookRepositoryFacade {
	return &PgxCashbookRepository{pool: pool}
}

var _ portsrepo.CashbookRepositoryFacade = (*PgxCashbookRepository)(nil)

func toModelEntry(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		CategoryID:     d.CategoryID,
		Kind:           models.TransactionKind(d.Kind),
		Amount:         d.Amount,
		ExpectedAmount: d.ExpectedAmount,
		Note:           d.Note,
		Date:           d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEntry(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		CategoryID:     m.CategoryID,
		Kind:           domain.TransactionKind(m.Kind),
		Amount:         m.Amount,
		ExpectedAmount: m.ExpectedAmount,
		Note:           m.Note,
		Date:           m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveEntry inserts a new cash book entry. A zero expected amount is stored
// as NULL so dues tracking stays opt-in.
func (r *PgxCashbookRepository) SaveEntry(ctx context.Context, entry domain.Transaction) error {
	modelEntry := toModelEntry(entry)

	query := `
		INSERT INTO cashbook_entries (entry_id, category_id, kind, amount, expected_amount, note, entry_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	var expected decimal.NullDecimal
	if modelEntry.ExpectedAmount.IsPositive() {
		expected = decimal.NullDecimal{Decimal: modelEntry.ExpectedAmount, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		modelEntry.TransactionID,
		modelEntry.CategoryID,
		modelEntry.Kind,
		modelEntry.Amount,
		expected,
		modelEntry.Note,
		modelEntry.Date,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: entry with ID %s already exists", apperrors.ErrDuplicate, modelEntry.TransactionID)
			case "23503": // FK violation, unknown category
				return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, modelEntry.CategoryID)
			}
		}
		return fmt.Errorf("failed to save entry %s: %w", modelEntry.TransactionID, err)
	}
	return nil
}

// FindEntryByID retrieves an entry by its ID.
func (r *PgxCashbookRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Transaction, error) {
	query := `
		SELECT entry_id, category_id, kind, amount, expected_amount, note, entry_date, created_at, created_by, last_updated_at, last_updated_by
		FROM cashbook_entries
		WHERE entry_id = $1;
	`
	var modelEntry models.Transaction
	var expected decimal.NullDecimal

	err := r.pool.QueryRow(ctx, query, entryID).Scan(
		&modelEntry.TransactionID,
		&modelEntry.CategoryID,
		&modelEntry.Kind,
		&modelEntry.Amount,
		&expected,
		&modelEntry.Note,
		&modelEntry.Date,
		&modelEntry.CreatedAt,
		&modelEntry.CreatedBy,
		&modelEntry.LastUpdatedAt,
		&modelEntry.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	if expected.Valid {
		modelEntry.ExpectedAmount = expected.Decimal
	}
	domainEntry := toDomainEntry(modelEntry)
	return &domainEntry, nil
}

// ListEntries retrieves all cash book entries, newest first. Category and
// date filtering happen in the service layer so the aggregation sees one
// consistent snapshot.
func (r *PgxCashbookRepository) ListEntries(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT entry_id, category_id, kind, amount, expected_amount, note, entry_date, created_at, created_by, last_updated_at, last_updated_by
		FROM cashbook_entries
		ORDER BY entry_date DESC, entry_id DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash book entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Transaction{}
	for rows.Next() {
		var modelEntry models.Transaction
		var expected decimal.NullDecimal
		err := rows.Scan(
			&modelEntry.TransactionID,
			&modelEntry.CategoryID,
			&modelEntry.Kind,
			&modelEntry.Amount,
			&expected,
			&modelEntry.Note,
			&modelEntry.Date,
			&modelEntry.CreatedAt,
			&modelEntry.CreatedBy,
			&modelEntry.LastUpdatedAt,
			&modelEntry.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		if expected.Valid {
			modelEntry.ExpectedAmount = expected.Decimal
		}
		entries = append(entries, toDomainEntry(modelEntry))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}
	return entries, nil
}

// UpdateEntry updates an existing entry.
func (r *PgxCashbookRepository) UpdateEntry(ctx context.Context, entry domain.Transaction) error {
	modelEntry := toModelEntry(entry)

	query := `
		UPDATE cashbook_entries
		SET category_id = $2, kind = $3, amount = $4, expected_amount = $5, note = $6, entry_date = $7, last_updated_at = $8, last_updated_by = $9
		WHERE entry_id = $1;
	`
	var expected decimal.NullDecimal
	if modelEntry.ExpectedAmount.IsPositive() {
		expected = decimal.NullDecimal{Decimal: modelEntry.ExpectedAmount, Valid: true}
	}

	cmdTag, err := r.pool.Exec(ctx, query,
		modelEntry.TransactionID,
		modelEntry.CategoryID,
		modelEntry.Kind,
		modelEntry.Amount,
		expected,
		modelEntry.Note,
		modelEntry.Date,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("%w: category %s", apperrors.ErrNotFound, modelEntry.CategoryID)
		}
		return fmt.Errorf("failed to execute update entry %s: %w", modelEntry.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry.
func (r *PgxCashbookRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM cashbook_entries WHERE entry_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
