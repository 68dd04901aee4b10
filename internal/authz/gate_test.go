package authz

import (
	"errors"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriptionFinder struct {
	subs map[string]*models.Subscription
	err  error
}

func (f *fakeSubscriptionFinder) FindSubscriptionByUserID(userID string) (*models.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	sub, ok := f.subs[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return sub, nil
}

func TestSubscriptionGate_StatusMatrix(t *testing.T) {
	tests := []struct {
		status models.SubscriptionStatus
		want   bool
	}{
		{models.SubscriptionStatusActive, true},
		{models.SubscriptionStatusTrialing, true},
		// просрочка платежа - grace period, доступ сохраняется
		{models.SubscriptionStatusPastDue, true},
		{models.SubscriptionStatusCancelled, false},
		{models.SubscriptionStatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			gate := NewSubscriptionGate(&fakeSubscriptionFinder{subs: map[string]*models.Subscription{
				"user-1": {Status: tt.status},
			}})

			ok, err := gate.HasGatedAccess("user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

// Отсутствие подписки - не ошибка, а отказ в доступе.
func TestSubscriptionGate_NoSubscription(t *testing.T) {
	gate := NewSubscriptionGate(&fakeSubscriptionFinder{})

	ok, err := gate.HasGatedAccess("user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubscriptionGate_StorageError(t *testing.T) {
	dbErr := errors.New("connection refused")
	gate := NewSubscriptionGate(&fakeSubscriptionFinder{err: dbErr})

	ok, err := gate.HasGatedAccess("user-1")
	assert.ErrorIs(t, err, dbErr)
	assert.False(t, ok)
}
