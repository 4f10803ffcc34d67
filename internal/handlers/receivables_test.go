package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-receivables/internal/middlewares"
	"github.com/sbilibin2017/gw-receivables/internal/models"
	"github.com/sbilibin2017/gw-receivables/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAmount(t *testing.T, s string) models.Amount {
	t.Helper()
	a, err := models.AmountFromString(s)
	require.NoError(t, err)
	return a
}

func sampleReceivable(t *testing.T, ownerID uuid.UUID) *models.Receivable {
	return &models.Receivable{
		ID:          uuid.New(),
		Description: "Invoice 1",
		Amount:      mustAmount(t, "150.00"),
		DueDate:     models.NewDate(2025, time.January, 1),
		OwnerUserID: ownerID,
	}
}

func serve(method, pattern, target string, h http.HandlerFunc, body string, userID uuid.UUID) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if userID != uuid.Nil {
		req = req.WithContext(middlewares.WithUserID(req.Context(), userID))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body.Message
}

func TestListReceivablesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("empty list encodes as array", func(t *testing.T) {
		svc := NewMockReceivableLister(ctrl)
		svc.EXPECT().List(gomock.Any()).Return([]*models.Receivable{}, nil)

		w := serve(http.MethodGet, "/receivables", "/receivables", NewListReceivablesHandler(svc), "", uuid.Nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("receivable fields", func(t *testing.T) {
		ownerID := uuid.New()
		rec := sampleReceivable(t, ownerID)
		rec.User = &models.User{ID: ownerID, Name: "Ana Silva", Email: "ana@x.com"}

		svc := NewMockReceivableLister(ctrl)
		svc.EXPECT().List(gomock.Any()).Return([]*models.Receivable{rec}, nil)

		w := serve(http.MethodGet, "/receivables", "/receivables", NewListReceivablesHandler(svc), "", uuid.Nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "Invoice 1", body[0]["description"])
		assert.Equal(t, 150.0, body[0]["amount"])
		assert.Equal(t, "2025-01-01", body[0]["dueDate"])
		assert.Equal(t, false, body[0]["removed"])
		assert.Equal(t, ownerID.String(), body[0]["ownerUserId"])
		assert.Equal(t, "Ana Silva", body[0]["user"].(map[string]any)["name"])
	})

	t.Run("service error", func(t *testing.T) {
		svc := NewMockReceivableLister(ctrl)
		svc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		w := serve(http.MethodGet, "/receivables", "/receivables", NewListReceivablesHandler(svc), "", uuid.Nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error fetching receivables", messageOf(t, w))
	})
}

func TestGetReceivableHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockReceivableGetter)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:   "found",
			target: "/receivables/" + id.String(),
			mockSetup: func(m *MockReceivableGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(&models.Receivable{ID: id}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/receivables/" + id.String(),
			mockSetup: func(m *MockReceivableGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, services.ErrReceivableNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Receivable not found",
		},
		{
			name:         "malformed id",
			target:       "/receivables/abc",
			mockSetup:    func(m *MockReceivableGetter) {},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Receivable not found",
		},
		{
			name:   "service error",
			target: "/receivables/" + id.String(),
			mockSetup: func(m *MockReceivableGetter) {
				m.EXPECT().Get(gomock.Any(), id).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Error fetching receivable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockReceivableGetter(ctrl)
			tt.mockSetup(svc)

			w := serve(http.MethodGet, "/receivables/{id}", tt.target, NewGetReceivableHandler(svc), "", uuid.Nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, messageOf(t, w))
			}
		})
	}
}

func TestCreateReceivableHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	amount := mustAmount(t, "150.00")
	due := models.NewDate(2025, time.January, 1)

	t.Run("created with caller as owner", func(t *testing.T) {
		svc := NewMockReceivableCreator(ctrl)
		svc.EXPECT().Create(gomock.Any(), ownerID, "Invoice 1", amount, due).
			Return(sampleReceivable(t, ownerID), nil)

		w := serve(http.MethodPost, "/receivables", "/receivables", NewCreateReceivableHandler(svc),
			`{"description":"Invoice 1","amount":150.00,"dueDate":"2025-01-01"}`, ownerID)

		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, ownerID.String(), body["ownerUserId"])
		assert.Equal(t, false, body["removed"])
		assert.NotContains(t, body, "user")
	})

	tests := []struct {
		name         string
		body         string
		userID       uuid.UUID
		mockSetup    func(m *MockReceivableCreator)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "no identity in context",
			body:         `{"description":"Invoice 1","amount":150.00,"dueDate":"2025-01-01"}`,
			mockSetup:    func(m *MockReceivableCreator) {},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "User not authenticated",
		},
		{
			name:         "invalid json",
			body:         `{"description":`,
			userID:       ownerID,
			mockSetup:    func(m *MockReceivableCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name:         "bad date",
			body:         `{"description":"Invoice 1","amount":150.00,"dueDate":"01/01/2025"}`,
			userID:       ownerID,
			mockSetup:    func(m *MockReceivableCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name:         "missing description",
			body:         `{"amount":150.00,"dueDate":"2025-01-01"}`,
			userID:       ownerID,
			mockSetup:    func(m *MockReceivableCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "description is required",
		},
		{
			name:         "missing due date",
			body:         `{"description":"Invoice 1","amount":150.00}`,
			userID:       ownerID,
			mockSetup:    func(m *MockReceivableCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "dueDate is required",
		},
		{
			name:   "service error",
			body:   `{"description":"Invoice 1","amount":150.00,"dueDate":"2025-01-01"}`,
			userID: ownerID,
			mockSetup: func(m *MockReceivableCreator) {
				m.EXPECT().Create(gomock.Any(), ownerID, "Invoice 1", amount, due).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Error creating receivable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockReceivableCreator(ctrl)
			tt.mockSetup(svc)

			w := serve(http.MethodPost, "/receivables", "/receivables", NewCreateReceivableHandler(svc), tt.body, tt.userID)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedMsg, messageOf(t, w))
		})
	}
}

func TestUpdateReceivableHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	target := "/receivables/" + id.String()

	t.Run("partial body", func(t *testing.T) {
		svc := NewMockReceivableUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, changes models.ReceivableChanges) (*models.Receivable, error) {
				assert.Nil(t, changes.Description)
				assert.Nil(t, changes.DueDate)
				require.NotNil(t, changes.Amount)
				assert.Equal(t, "175.50", changes.Amount.StringFixed(2))
				return &models.Receivable{ID: id, Amount: *changes.Amount}, nil
			})

		w := serve(http.MethodPut, "/receivables/{id}", target, NewUpdateReceivableHandler(svc), `{"amount":175.5}`, uuid.Nil)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, 175.5, body["amount"])
	})

	t.Run("full body", func(t *testing.T) {
		svc := NewMockReceivableUpdater(ctrl)
		svc.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, changes models.ReceivableChanges) (*models.Receivable, error) {
				require.NotNil(t, changes.Description)
				require.NotNil(t, changes.DueDate)
				assert.Equal(t, "Invoice 1b", *changes.Description)
				assert.Equal(t, "2025-02-01", changes.DueDate.String())
				return &models.Receivable{ID: id}, nil
			})

		w := serve(http.MethodPut, "/receivables/{id}", target, NewUpdateReceivableHandler(svc),
			`{"description":"Invoice 1b","amount":"10.00","dueDate":"2025-02-01"}`, uuid.Nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	tests := []struct {
		name         string
		target       string
		body         string
		mockSetup    func(m *MockReceivableUpdater)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:   "not found",
			target: target,
			body:   `{"description":"x"}`,
			mockSetup: func(m *MockReceivableUpdater) {
				m.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, services.ErrReceivableNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Receivable not found",
		},
		{
			name:         "malformed id",
			target:       "/receivables/42",
			body:         `{"description":"x"}`,
			mockSetup:    func(m *MockReceivableUpdater) {},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Receivable not found",
		},
		{
			name:         "invalid json",
			target:       target,
			body:         `[`,
			mockSetup:    func(m *MockReceivableUpdater) {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Invalid request body",
		},
		{
			name:   "service error",
			target: target,
			body:   `{}`,
			mockSetup: func(m *MockReceivableUpdater) {
				m.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Error updating receivable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockReceivableUpdater(ctrl)
			tt.mockSetup(svc)

			w := serve(http.MethodPut, "/receivables/{id}", tt.target, NewUpdateReceivableHandler(svc), tt.body, uuid.Nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedMsg, messageOf(t, w))
		})
	}
}

func TestDeleteReceivableHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockReceivableDeleter)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:   "deleted",
			target: "/receivables/" + id.String(),
			mockSetup: func(m *MockReceivableDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Receivable deleted successfully",
		},
		{
			name:   "not found",
			target: "/receivables/" + id.String(),
			mockSetup: func(m *MockReceivableDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(services.ErrReceivableNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Receivable not found",
		},
		{
			name:         "malformed id",
			target:       "/receivables/not-a-uuid",
			mockSetup:    func(m *MockReceivableDeleter) {},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Receivable not found",
		},
		{
			name:   "service error",
			target: "/receivables/" + id.String(),
			mockSetup: func(m *MockReceivableDeleter) {
				m.EXPECT().Delete(gomock.Any(), id).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedMsg:  "Error deleting receivable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockReceivableDeleter(ctrl)
			tt.mockSetup(svc)

			w := serve(http.MethodDelete, "/receivables/{id}", tt.target, NewDeleteReceivableHandler(svc), "", uuid.Nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedMsg, messageOf(t, w))
		})
	}
}
