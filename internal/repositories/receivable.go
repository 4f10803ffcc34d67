package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-receivables/internal/models"
)

const receivableColumns = `id, description, amount, due_date, removed, user_id, created_at, updated_at`

const selectReceivableWithOwner = `
	SELECT r.id, r.description, r.amount, r.due_date, r.removed, r.user_id, r.created_at, r.updated_at,
	       u.name AS owner_name, u.email AS owner_email, u.is_admin AS owner_is_admin
	FROM receivable_accounts r
	JOIN users u ON u.id = r.user_id
	WHERE r.removed = FALSE`

// ReceivableReadRepository reads receivables that have not been removed.
type ReceivableReadRepository struct {
	db *sqlx.DB
}

func NewReceivableReadRepository(db *sqlx.DB) *ReceivableReadRepository {
	return &ReceivableReadRepository{db: db}
}

// List returns every receivable that has not been removed, oldest first, joined with its owner.
func (r *ReceivableReadRepository) List(ctx context.Context) ([]models.ReceivableWithOwnerDB, error) {
	const query = selectReceivableWithOwner + ` ORDER BY r.created_at, r.id`

	receivables := []models.ReceivableWithOwnerDB{}
	err := r.db.SelectContext(ctx, &receivables, query)

	logQuery(query, nil, len(receivables), err)

	if err != nil {
		return nil, err
	}
	return receivables, nil
}

// GetByID returns the receivable with the given id, or nil when it does not exist or was removed.
func (r *ReceivableReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ReceivableWithOwnerDB, error) {
	const query = selectReceivableWithOwner + ` AND r.id = $1`

	var receivable models.ReceivableWithOwnerDB
	err := r.db.GetContext(ctx, &receivable, query, id)

	logQuery(query, []any{id}, receivable.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receivable, nil
}

// ReceivableWriteRepository handles receivable write operations.
// It runs on the request transaction when one is present in the context.
type ReceivableWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReceivableWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReceivableWriteRepository {
	return &ReceivableWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a receivable owned by ownerID.
func (r *ReceivableWriteRepository) Save(ctx context.Context, description string, amount models.Amount, dueDate models.Date, ownerID uuid.UUID) (*models.ReceivableDB, error) {
	const query = `
		INSERT INTO receivable_accounts (id, description, amount, due_date, removed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, $5, NOW(), NOW())
		RETURNING ` + receivableColumns

	id := uuid.New()
	args := []any{id, description, amount, dueDate, ownerID}

	var receivable models.ReceivableDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &receivable, query, args...)

	logQuery(query, args, receivable.ID, err)

	if err != nil {
		return nil, err
	}
	return &receivable, nil
}

// LockByID loads a receivable that has not been removed and locks its row until the transaction ends.
// Returns nil when there is no such row.
func (r *ReceivableWriteRepository) LockByID(ctx context.Context, id uuid.UUID) (*models.ReceivableDB, error) {
	const query = `
		SELECT ` + receivableColumns + `
		FROM receivable_accounts
		WHERE id = $1 AND removed = FALSE
		FOR UPDATE`

	var receivable models.ReceivableDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &receivable, query, id)

	logQuery(query, []any{id}, receivable.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receivable, nil
}

// Update overwrites the mutable fields of a receivable that has not been removed.
// Returns nil when there is no such row.
func (r *ReceivableWriteRepository) Update(ctx context.Context, id uuid.UUID, description string, amount models.Amount, dueDate models.Date) (*models.ReceivableDB, error) {
	const query = `
		UPDATE receivable_accounts
		SET description = $2, amount = $3, due_date = $4, updated_at = NOW()
		WHERE id = $1 AND removed = FALSE
		RETURNING ` + receivableColumns

	args := []any{id, description, amount, dueDate}

	var receivable models.ReceivableDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &receivable, query, args...)

	logQuery(query, args, receivable.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receivable, nil
}

// SoftDelete flags a receivable as removed. The row stays in the table.
// Reports false when there was no receivable to remove.
func (r *ReceivableWriteRepository) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `
		UPDATE receivable_accounts
		SET removed = TRUE, updated_at = NOW()
		WHERE id = $1 AND removed = FALSE`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
