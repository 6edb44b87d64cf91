package handlers

import (
	"context"

	istore "github.com/dishu-studio/studio-backend/internal/store"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/stretchr/testify/mock"
)

// MockBookingStore implements istore.BookingStore for handler tests.
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) CreateBooking(ctx context.Context, booking *types.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingStore) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *MockBookingStore) ListBookings(ctx context.Context) ([]*types.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateBooking(ctx context.Context, id string, update *types.BookingUpdate) (*types.Booking, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *MockBookingStore) DeleteBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ istore.BookingStore = (*MockBookingStore)(nil)

// MockContactStore implements istore.ContactStore for handler tests.
type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) CreateContact(ctx context.Context, contact *types.Contact) (string, error) {
	args := m.Called(ctx, contact)
	return args.String(0), args.Error(1)
}

func (m *MockContactStore) ListContacts(ctx context.Context) ([]*types.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Contact), args.Error(1)
}

func (m *MockContactStore) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ istore.ContactStore = (*MockContactStore)(nil)

// MockEmailService implements types.EmailService for handler tests.
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingNotification(ctx context.Context, booking *types.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, booking *types.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

var _ types.EmailService = (*MockEmailService)(nil)
