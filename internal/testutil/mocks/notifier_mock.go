package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/keydrill/internal/progression"
)

// MockNotifier is a mock implementation of progression.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, payload progression.Payload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
