package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/keydrill/internal/events"
)

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ev events.Event) {
	m.Called(ev)
}
