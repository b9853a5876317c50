package balance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/dto"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newSessionRequest(method, url, body, sessionID string) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.SessionIDKey, sessionID)
	return req.WithContext(ctx)
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), "A").
					Return(&domain.Balance{SessionID: "A", Current: 60, Withdrawn: 40}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Current: 60, Withdrawn: 40},
		},
		{
			name: "Unknown session",
			prepareMock: func() {
				service.EXPECT().
					GetBalance(gomock.Any(), "A").
					Return(nil, domain.ErrInvalidSession)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid session ID.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.GetBalance(rr, newSessionRequest(http.MethodGet, "/balance/", "", "A"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.BalanceResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name               string
		body               string
		prepareMock        func()
		expectedCode       int
		expectedError      string
		expectedNewBalance float64
	}{
		{
			name: "Successful withdrawal",
			body: `{"amount":40}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), "A", 40.0).Return(&domain.Balance{Current: 60, Withdrawn: 40}, nil)
			},
			expectedCode:       http.StatusOK,
			expectedNewBalance: 60,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":1000}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), "A", 1000.0).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Insufficient balance.",
		},
		{
			name: "Invalid amount",
			body: `{"amount":-5}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), "A", -5.0).Return(nil, domain.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid withdrawal amount.",
		},
		{
			name:          "Missing amount",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":"lots"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"amount":1}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), "A", 1.0).Return(nil, errors.New("journal unavailable"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Withdraw(rr, newSessionRequest(http.MethodPost, "/withdraw/", tt.body, "A"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.NewBalanceResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedNewBalance, resp.NewBalance)
		})
	}
}

func TestConvertReferralToMoneyHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Converted", func(t *testing.T) {
		service.EXPECT().ConvertReferralToMoney(gomock.Any(), "A").Return(&domain.Balance{Current: 100}, nil)

		rr := httptest.NewRecorder()
		handler.ConvertReferralToMoney(rr, newSessionRequest(http.MethodPost, "/convert-referral-to-money/", "", "A"))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"new_balance":100}`, rr.Body.String())
	})

	t.Run("Unknown session", func(t *testing.T) {
		service.EXPECT().ConvertReferralToMoney(gomock.Any(), "A").Return(nil, domain.ErrInvalidSession)

		rr := httptest.NewRecorder()
		handler.ConvertReferralToMoney(rr, newSessionRequest(http.MethodPost, "/convert-referral-to-money/", "", "A"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Invalid session ID."}`, rr.Body.String())
	})
}

func TestGetWithdrawalsHandler(t *testing.T) {
	handler, service := NewMock(t)
	processedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.GetWithdrawalsResponseDTO
	}{
		{
			name: "Withdrawals found",
			prepareMock: func() {
				service.EXPECT().GetWithdrawals(gomock.Any(), "A").Return([]domain.Withdrawal{
					{ID: 1, SessionID: "A", Amount: 40, ProcessedAt: processedAt},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.GetWithdrawalsResponseDTO{
				{Amount: 40, ProcessedAt: processedAt},
			},
		},
		{
			name: "No withdrawals",
			prepareMock: func() {
				service.EXPECT().GetWithdrawals(gomock.Any(), "A").Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Unknown session",
			prepareMock: func() {
				service.EXPECT().GetWithdrawals(gomock.Any(), "A").Return(nil, domain.ErrInvalidSession)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.GetWithdrawals(rr, newSessionRequest(http.MethodGet, "/withdrawals/", "", "A"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp []dto.GetWithdrawalsResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, len(tt.expectedBody), len(resp))
				assert.Equal(t, tt.expectedBody[0].Amount, resp[0].Amount)
				assert.True(t, tt.expectedBody[0].ProcessedAt.Equal(resp[0].ProcessedAt))
			}
		})
	}
}
