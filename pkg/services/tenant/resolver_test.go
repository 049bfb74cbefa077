package tenant

import (
	"context"
	"errors"
	"testing"

	"github.com/boerenkompas/dashboard/pkg/models/domain"
	sqlstore "github.com/boerenkompas/dashboard/pkg/store/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMembershipStore struct {
	mock.Mock
}

func (m *mockMembershipStore) ActiveTenantID(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func TestResolver_ResolveTenant(t *testing.T) {
	storeErr := errors.New("connection refused")

	tests := []struct {
		name        string
		userID      string
		setupMock   func(*mockMembershipStore)
		expected    domain.Tenant
		expectedErr error
	}{
		{
			name:   "active tenant",
			userID: "user-1",
			setupMock: func(m *mockMembershipStore) {
				m.On("ActiveTenantID", mock.Anything, "user-1").Return("tenant-1", nil)
			},
			expected: domain.Tenant{ID: "tenant-1", UserID: "user-1"},
		},
		{
			name:        "no user",
			userID:      "",
			setupMock:   func(m *mockMembershipStore) {},
			expectedErr: ErrUnauthenticated,
		},
		{
			name:   "no membership",
			userID: "user-2",
			setupMock: func(m *mockMembershipStore) {
				m.On("ActiveTenantID", mock.Anything, "user-2").Return("", sqlstore.ErrNoMembership)
			},
			expectedErr: ErrNoActiveTenant,
		},
		{
			name:   "empty tenant id",
			userID: "user-3",
			setupMock: func(m *mockMembershipStore) {
				m.On("ActiveTenantID", mock.Anything, "user-3").Return("", nil)
			},
			expectedErr: ErrNoActiveTenant,
		},
		{
			name:   "store failure",
			userID: "user-4",
			setupMock: func(m *mockMembershipStore) {
				m.On("ActiveTenantID", mock.Anything, "user-4").Return("", storeErr)
			},
			expectedErr: storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memberships := new(mockMembershipStore)
			tt.setupMock(memberships)

			got, err := NewResolver(memberships).ResolveTenant(context.Background(), tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, domain.Tenant{}, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			memberships.AssertExpectations(t)
		})
	}
}
