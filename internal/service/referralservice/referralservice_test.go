package referralservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestOpenLedger(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Open(gomock.Any(), "A").Return(nil)
	assert.NoError(t, service.OpenLedger(context.Background(), "A"))

	repo.EXPECT().Open(gomock.Any(), "B").Return(errors.New("ledger error"))
	assert.EqualError(t, service.OpenLedger(context.Background(), "B"), "ledger error")
}

func TestAddReferral(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Referral added",
			prepareMock: func() {
				repo.EXPECT().Add(gomock.Any(), "A", "X").Return(nil)
			},
		},
		{
			name: "Unknown session",
			prepareMock: func() {
				repo.EXPECT().Add(gomock.Any(), "A", "X").Return(domain.ErrInvalidSession)
			},
			expectedError: domain.ErrInvalidSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.AddReferral(context.Background(), "A", "X")
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestRedeemReferral(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Own code redeemed",
			prepareMock: func() {
				repo.EXPECT().Redeem(gomock.Any(), "A", "X").Return("A", nil)
			},
		},
		{
			name: "Code from another session redeemed",
			prepareMock: func() {
				repo.EXPECT().Redeem(gomock.Any(), "A", "X").Return("B", nil)
			},
		},
		{
			name: "Code not found",
			prepareMock: func() {
				repo.EXPECT().Redeem(gomock.Any(), "A", "X").Return("", domain.ErrReferralCodeNotFound)
			},
			expectedError: domain.ErrReferralCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.RedeemReferral(context.Background(), "A", "X")
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestGetReferrals(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().Get(gomock.Any(), "A").Return(&domain.Referrals{SessionID: "A", Score: 1}, nil)
	referrals, err := service.GetReferrals(context.Background(), "A")
	assert.NoError(t, err)
	assert.Equal(t, 1, referrals.Score)

	repo.EXPECT().Get(gomock.Any(), "B").Return(nil, domain.ErrInvalidSession)
	referrals, err = service.GetReferrals(context.Background(), "B")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
	assert.Nil(t, referrals)
}
