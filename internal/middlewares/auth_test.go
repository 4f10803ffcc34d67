package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-receivables/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body messageResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body.Message
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name             string
		mockSetup        func(m *MockTokener)
		expectedStatus   int
		expectedMessage  string
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrNoToken)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "No token provided",
		},
		{
			name: "WrongPartCount",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrTokenError)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token error",
		},
		{
			name: "WrongScheme",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", jwt.ErrTokenMalformatted)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token malformatted",
		},
		{
			name: "InvalidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				m.EXPECT().GetUserID(gomock.Any(), "sometoken").
					Return(uuid.Nil, errors.New("invalid token"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Token invalid",
		},
		{
			name: "ValidToken",
			mockSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				m.EXPECT().GetUserID(gomock.Any(), "validtoken").
					Return(userID, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.mockSetup(mockTokener)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				got, ok := UserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, got)
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/receivables", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedMessage != "" {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.Equal(t, tt.expectedMessage, decodeMessage(t, rr))
			}
		})
	}
}

func TestAuthMiddleware_RealTokens(t *testing.T) {
	j := jwt.New(jwt.WithSecretKey("secret"))
	userID := uuid.New()
	token, err := j.Generate(context.Background(), userID)
	require.NoError(t, err)

	tests := []struct {
		name            string
		header          string
		expectedStatus  int
		expectedMessage string
	}{
		{name: "no header", expectedStatus: http.StatusUnauthorized, expectedMessage: "No token provided"},
		{name: "single part", header: "Bearer", expectedStatus: http.StatusUnauthorized, expectedMessage: "Token error"},
		{name: "three parts", header: "Bearer a b", expectedStatus: http.StatusUnauthorized, expectedMessage: "Token error"},
		{name: "wrong scheme", header: "Token " + token, expectedStatus: http.StatusUnauthorized, expectedMessage: "Token malformatted"},
		{name: "garbage token", header: "Bearer garbage", expectedStatus: http.StatusUnauthorized, expectedMessage: "Token invalid"},
		{name: "lowercase scheme", header: "bearer " + token, expectedStatus: http.StatusOK},
		{name: "valid", header: "Bearer " + token, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok := UserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, got)
			}))

			req := httptest.NewRequest(http.MethodGet, "/receivables", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeMessage(t, rr))
			}
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserIDFromContext(WithUserID(context.Background(), uuid.Nil))
	assert.False(t, ok)

	id := uuid.New()
	got, ok := UserIDFromContext(WithUserID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
