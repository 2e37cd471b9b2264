package identity_test

import (
	"context"

	identity "github.com/goliatone/go-identity"
	"github.com/stretchr/testify/mock"
)

// MockUserStore implements identity.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*identity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) FindByID(ctx context.Context, id string) (*identity.User, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*identity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// Create passes the given record through when the expectation returns no
// explicit value, mirroring what a real store insert does.
func (m *MockUserStore) Create(ctx context.Context, user *identity.User) (*identity.User, error) {
	args := m.Called(ctx, user)
	if v := args.Get(0); v != nil {
		return v.(*identity.User), args.Error(1)
	}
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return user, nil
}

func (m *MockUserStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLogger implements identity.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}
