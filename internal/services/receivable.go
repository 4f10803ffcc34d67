package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-receivables/internal/logger"
	"github.com/sbilibin2017/gw-receivables/internal/models"
)

//go:generate mockgen -source=receivable.go -destination=mock_receivable.go -package=services

// ErrReceivableNotFound is returned when a receivable does not exist or was removed.
var ErrReceivableNotFound = errors.New("receivable not found")

// ReceivableReader reads receivables that have not been removed.
type ReceivableReader interface {
	List(ctx context.Context) ([]models.ReceivableWithOwnerDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ReceivableWithOwnerDB, error)
}

// ReceivableWriter writes receivables.
type ReceivableWriter interface {
	Save(ctx context.Context, description string, amount models.Amount, dueDate models.Date, ownerID uuid.UUID) (*models.ReceivableDB, error)
	LockByID(ctx context.Context, id uuid.UUID) (*models.ReceivableDB, error)
	Update(ctx context.Context, id uuid.UUID, description string, amount models.Amount, dueDate models.Date) (*models.ReceivableDB, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ReceivableService manages receivable accounts.
type ReceivableService struct {
	reader ReceivableReader
	writer ReceivableWriter
}

// NewReceivableService creates a new ReceivableService.
func NewReceivableService(reader ReceivableReader, writer ReceivableWriter) *ReceivableService {
	return &ReceivableService{reader: reader, writer: writer}
}

// List returns all receivables that have not been removed, each with its owner.
func (s *ReceivableService) List(ctx context.Context) ([]*models.Receivable, error) {
	rows, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list receivables", "error", err)
		return nil, err
	}

	receivables := make([]*models.Receivable, 0, len(rows))
	for i := range rows {
		receivables = append(receivables, rows[i].View())
	}
	return receivables, nil
}

// Get returns one receivable with its owner.
func (s *ReceivableService) Get(ctx context.Context, id uuid.UUID) (*models.Receivable, error) {
	row, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get receivable", "id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrReceivableNotFound
	}
	return row.View(), nil
}

// Create stores a receivable owned by ownerID.
// Amount and due date are stored as given.
func (s *ReceivableService) Create(ctx context.Context, ownerID uuid.UUID, description string, amount models.Amount, dueDate models.Date) (*models.Receivable, error) {
	row, err := s.writer.Save(ctx, description, amount, dueDate, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to create receivable", "ownerID", ownerID, "error", err)
		return nil, err
	}
	return row.View(), nil
}

// Update applies changes to a receivable; nil fields keep their stored value.
// There is no ownership check: any caller allowed to reach this may edit any receivable.
func (s *ReceivableService) Update(ctx context.Context, id uuid.UUID, changes models.ReceivableChanges) (*models.Receivable, error) {
	current, err := s.writer.LockByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load receivable for update", "id", id, "error", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrReceivableNotFound
	}

	description, amount, dueDate := current.Description, current.Amount, current.DueDate
	if changes.Description != nil {
		description = *changes.Description
	}
	if changes.Amount != nil {
		amount = *changes.Amount
	}
	if changes.DueDate != nil {
		dueDate = *changes.DueDate
	}

	row, err := s.writer.Update(ctx, id, description, amount, dueDate)
	if err != nil {
		logger.Log.Errorw("failed to update receivable", "id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, ErrReceivableNotFound
	}
	return row.View(), nil
}

// Delete soft-deletes a receivable.
func (s *ReceivableService) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := s.writer.SoftDelete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete receivable", "id", id, "error", err)
		return err
	}
	if !removed {
		return ErrReceivableNotFound
	}
	return nil
}
