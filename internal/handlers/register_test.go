package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-receivables/internal/logger"
	"github.com/sbilibin2017/gw-receivables/internal/middlewares"
	"github.com/sbilibin2017/gw-receivables/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"name":"Ana Silva","email":"ana@x.com","password":"secret1"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Ana Silva", "ana@x.com", "secret1", false).
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": "User created successfully"},
		},
		{
			name: "admin flag passed through",
			body: `{"name":"Boss","email":"boss@x.com","password":"secret1","isAdmin":true}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Boss", "boss@x.com", "secret1", true).
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": "User created successfully"},
		},
		{
			name: "user already exists",
			body: `{"name":"Ana Silva","email":"ana@x.com","password":"other"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Ana Silva", "ana@x.com", "other", false).
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "User already exists"},
		},
		{
			name: "internal server error",
			body: `{"name":"Bob Smith","email":"bob@x.com","password":"pass"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Bob Smith", "bob@x.com", "pass", false).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"message": "Error creating user"},
		},
		{
			name:         "invalid json",
			body:         `{"name":`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "Invalid request body"},
		},
		{
			name:         "name too short",
			body:         `{"name":"Al","email":"al@x.com","password":"secret1"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "name must be between 3 and 100 characters"},
		},
		{
			name:         "bad email",
			body:         `{"name":"Ana Silva","email":"not-an-email","password":"secret1"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "Invalid email"},
		},
		{
			name:         "missing password",
			body:         `{"name":"Ana Silva","email":"ana@x.com"}`,
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"message": "password is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var body map[string]string
			err := json.NewDecoder(w.Body).Decode(&body)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestRegisterHandler_ErrorLogCarriesRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Capture log entries in memory
	core, logs := observer.New(zapcore.ErrorLevel)
	originalLog := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = originalLog }()

	svc := NewMockRegisterer(ctrl)
	svc.EXPECT().
		Register(gomock.Any(), "Ana Silva", "ana@x.com", "secret1", false).
		Return(errors.New("db down"))

	handler := middlewares.LoggingMiddleware(NewRegisterHandler(svc))
	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		bytes.NewBufferString(`{"name":"Ana Silva","email":"ana@x.com","password":"secret1"}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	// Error entry is tagged with the id returned to the client
	entries := logs.FilterMessage("internal server error").AllUntimed()
	require.Len(t, entries, 1)
	reqID := rr.Header().Get("X-Request-ID")
	assert.NotEmpty(t, reqID)
	assert.Equal(t, reqID, entries[0].ContextMap()["request_id"])
	assert.Equal(t, "db down", entries[0].ContextMap()["err"])
}
