package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name             string
		authenticated    bool
		mockSetup        func(m *MockAdminChecker)
		expectedStatus   int
		expectedMessage  string
		expectNextCalled bool
	}{
		{
			name:            "not authenticated",
			mockSetup:       func(m *MockAdminChecker) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "User not authenticated",
		},
		{
			name:          "not admin",
			authenticated: true,
			mockSetup: func(m *MockAdminChecker) {
				m.EXPECT().IsAdmin(gomock.Any(), userID).Return(false, nil)
			},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "Access denied",
		},
		{
			name:          "role lookup error",
			authenticated: true,
			mockSetup: func(m *MockAdminChecker) {
				m.EXPECT().IsAdmin(gomock.Any(), userID).Return(false, errors.New("db error"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
		{
			name:          "admin",
			authenticated: true,
			mockSetup: func(m *MockAdminChecker) {
				m.EXPECT().IsAdmin(gomock.Any(), userID).Return(true, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			checker := NewMockAdminChecker(ctrl)
			tt.mockSetup(checker)

			nextCalled := false
			handler := AdminMiddleware(checker)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			}))

			req := httptest.NewRequest(http.MethodDelete, "/receivables/"+uuid.NewString(), nil)
			if tt.authenticated {
				req = req.WithContext(WithUserID(req.Context(), userID))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeMessage(t, rr))
			}
		})
	}
}
