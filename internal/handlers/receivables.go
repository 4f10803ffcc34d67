package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-receivables/internal/middlewares"
	"github.com/sbilibin2017/gw-receivables/internal/models"
	"github.com/sbilibin2017/gw-receivables/internal/services"
)

//go:generate mockgen -source=receivables.go -destination=mock_receivables.go -package=handlers

// ReceivableLister lists receivables.
type ReceivableLister interface {
	List(ctx context.Context) ([]*models.Receivable, error)
}

// ReceivableGetter reads one receivable.
type ReceivableGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Receivable, error)
}

// ReceivableCreator creates receivables.
type ReceivableCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, description string, amount models.Amount, dueDate models.Date) (*models.Receivable, error)
}

// ReceivableUpdater updates receivables.
type ReceivableUpdater interface {
	Update(ctx context.Context, id uuid.UUID, changes models.ReceivableChanges) (*models.Receivable, error)
}

// ReceivableDeleter soft-deletes receivables.
type ReceivableDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewListReceivablesHandler returns an HTTP handler listing receivables.
// @Summary List receivables
// @Description Returns every receivable that has not been removed, with its owner
// @Tags receivables
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Receivable
// @Failure 401 {object} models.MessageResponse "Unauthorized"
// @Failure 500 {object} models.MessageResponse "Error fetching receivables"
// @Router /receivables [get]
func NewListReceivablesHandler(svc ReceivableLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		receivables, err := svc.List(r.Context())
		if err != nil {
			logError(r, "failed to list receivables", "err", err)
			writeMessage(w, http.StatusInternalServerError, "Error fetching receivables")
			return
		}
		writeJSON(w, http.StatusOK, receivables)
	}
}

// NewGetReceivableHandler returns an HTTP handler reading one receivable.
// @Summary Get receivable
// @Tags receivables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Receivable ID"
// @Success 200 {object} models.Receivable
// @Failure 401 {object} models.MessageResponse "Unauthorized"
// @Failure 404 {object} models.MessageResponse "Receivable not found"
// @Failure 500 {object} models.MessageResponse "Error fetching receivable"
// @Router /receivables/{id} [get]
func NewGetReceivableHandler(svc ReceivableGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := receivableID(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, "Receivable not found")
			return
		}

		receivable, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReceivableNotFound):
				writeMessage(w, http.StatusNotFound, "Receivable not found")
			default:
				logError(r, "failed to get receivable", "id", id, "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error fetching receivable")
			}
			return
		}
		writeJSON(w, http.StatusOK, receivable)
	}
}

// NewCreateReceivableHandler returns an HTTP handler creating a receivable owned by the caller.
// @Summary Create receivable
// @Tags receivables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateReceivableRequest true "Receivable"
// @Success 201 {object} models.Receivable
// @Failure 400 {object} models.MessageResponse "Invalid request body"
// @Failure 401 {object} models.MessageResponse "Unauthorized"
// @Failure 500 {object} models.MessageResponse "Error creating receivable"
// @Router /receivables [post]
func NewCreateReceivableHandler(svc ReceivableCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		var req models.CreateReceivableRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.DueDate.IsZero() {
			writeMessage(w, http.StatusBadRequest, "dueDate is required")
			return
		}

		receivable, err := svc.Create(r.Context(), ownerID, req.Description, req.Amount, req.DueDate)
		if err != nil {
			logError(r, "failed to create receivable", "ownerID", ownerID, "err", err)
			writeMessage(w, http.StatusInternalServerError, "Error creating receivable")
			return
		}
		writeJSON(w, http.StatusCreated, receivable)
	}
}

// NewUpdateReceivableHandler returns an HTTP handler updating a receivable. Admin only.
// @Summary Update receivable
// @Description Omitted fields keep their stored value
// @Tags receivables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Receivable ID"
// @Param request body models.UpdateReceivableRequest true "Changes"
// @Success 200 {object} models.Receivable
// @Failure 400 {object} models.MessageResponse "Invalid request body"
// @Failure 401 {object} models.MessageResponse "Unauthorized"
// @Failure 403 {object} models.MessageResponse "Access denied"
// @Failure 404 {object} models.MessageResponse "Receivable not found"
// @Failure 500 {object} models.MessageResponse "Error updating receivable"
// @Router /receivables/{id} [put]
func NewUpdateReceivableHandler(svc ReceivableUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := receivableID(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, "Receivable not found")
			return
		}

		var req models.UpdateReceivableRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		receivable, err := svc.Update(r.Context(), id, models.ReceivableChanges{
			Description: req.Description,
			Amount:      req.Amount,
			DueDate:     req.DueDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrReceivableNotFound):
				writeMessage(w, http.StatusNotFound, "Receivable not found")
			default:
				logError(r, "failed to update receivable", "id", id, "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error updating receivable")
			}
			return
		}
		writeJSON(w, http.StatusOK, receivable)
	}
}

// NewDeleteReceivableHandler returns an HTTP handler soft-deleting a receivable. Admin only.
// @Summary Delete receivable
// @Tags receivables
// @Produce json
// @Security BearerAuth
// @Param id path string true "Receivable ID"
// @Success 200 {object} models.MessageResponse "Receivable deleted successfully"
// @Failure 401 {object} models.MessageResponse "Unauthorized"
// @Failure 403 {object} models.MessageResponse "Access denied"
// @Failure 404 {object} models.MessageResponse "Receivable not found"
// @Failure 500 {object} models.MessageResponse "Error deleting receivable"
// @Router /receivables/{id} [delete]
func NewDeleteReceivableHandler(svc ReceivableDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := receivableID(r)
		if !ok {
			writeMessage(w, http.StatusNotFound, "Receivable not found")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrReceivableNotFound):
				writeMessage(w, http.StatusNotFound, "Receivable not found")
			default:
				logError(r, "failed to delete receivable", "id", id, "err", err)
				writeMessage(w, http.StatusInternalServerError, "Error deleting receivable")
			}
			return
		}
		writeMessage(w, http.StatusOK, "Receivable deleted successfully")
	}
}
