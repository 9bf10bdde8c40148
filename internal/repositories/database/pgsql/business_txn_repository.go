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

type PgxBusinessTxnRepository struct {
	pool *pgxpool.Pool
}

// newPgxBusinessTxnRepository creates a new repository for business ledger data.
func newPgxBusinessTxnRepository(pool *pgxpool.Pool) portsrepo.BusinessTxnRepositoryFacade {
	return &PgxBusinessTxnRepository{pool: pool}
}

var _ portsrepo.BusinessTxnRepositoryFacade = (*PgxBusinessTxnRepository)(nil)

func toModelBusinessTxn(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		BusinessID:    d.BusinessID,
		Kind:          models.TransactionKind(d.Kind),
		Amount:        d.Amount,
		Note:          d.Note,
		Date:          d.Date,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBusinessTxn(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		BusinessID:    m.BusinessID,
		Kind:          domain.TransactionKind(m.Kind),
		Amount:        m.Amount,
		Note:          m.Note,
		Date:          m.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveTransaction inserts a new business transaction.
func (r *PgxBusinessTxnRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelBusinessTxn(txn)

	query := `
		INSERT INTO business_transactions (transaction_id, business_id, kind, amount, note, transaction_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.BusinessID,
		modelTxn.Kind,
		modelTxn.Amount,
		modelTxn.Note,
		modelTxn.Date,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation
				return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
			case "23503": // FK violation, the business is gone
				return fmt.Errorf("%w: business %s", apperrors.ErrNotFound, modelTxn.BusinessID)
			}
		}
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxBusinessTxnRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, business_id, kind, amount, note, transaction_date, created_at, created_by, last_updated_at, last_updated_by
		FROM business_transactions
		WHERE transaction_id = $1;
	`
	var modelTxn models.Transaction
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID,
		&modelTxn.BusinessID,
		&modelTxn.Kind,
		&modelTxn.Amount,
		&modelTxn.Note,
		&modelTxn.Date,
		&modelTxn.CreatedAt,
		&modelTxn.CreatedBy,
		&modelTxn.LastUpdatedAt,
		&modelTxn.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := toDomainBusinessTxn(modelTxn)
	return &domainTxn, nil
}

// ListTransactionsByBusiness retrieves all of a business's transactions,
// newest first.
func (r *PgxBusinessTxnRepository) ListTransactionsByBusiness(ctx context.Context, businessID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, business_id, kind, amount, note, transaction_date, created_at, created_by, last_updated_at, last_updated_by
		FROM business_transactions
		WHERE business_id = $1
		ORDER BY transaction_date DESC, transaction_id DESC;
	`
	rows, err := r.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for business %s: %w", businessID, err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.BusinessID,
			&modelTxn.Kind,
			&modelTxn.Amount,
			&modelTxn.Note,
			&modelTxn.Date,
			&modelTxn.CreatedAt,
			&modelTxn.CreatedBy,
			&modelTxn.LastUpdatedAt,
			&modelTxn.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for business %s: %w", businessID, err)
		}
		txns = append(txns, toDomainBusinessTxn(modelTxn))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for business %s: %w", businessID, rows.Err())
	}
	return txns, nil
}

// UpdateTransaction updates an existing transaction.
func (r *PgxBusinessTxnRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := toModelBusinessTxn(txn)

	query := `
		UPDATE business_transactions
		SET kind = $2, amount = $3, note = $4, transaction_date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.Kind,
		modelTxn.Amount,
		modelTxn.Note,
		modelTxn.Date,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction %s: %w", modelTxn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction.
func (r *PgxBusinessTxnRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM business_transactions WHERE transaction_id = $1;`

	cmdTag, err := r.pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
