package store

import (
	"context"

	"github.com/dishu-studio/studio-backend/types"
)

// BookingStore handles booking persistence.
type BookingStore interface {
	CreateBooking(ctx context.Context, booking *types.Booking) (string, error)
	GetBooking(ctx context.Context, id string) (*types.Booking, error)
	ListBookings(ctx context.Context) ([]*types.Booking, error)
	UpdateBooking(ctx context.Context, id string, update *types.BookingUpdate) (*types.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// ContactStore handles contact message persistence. Contact messages are
// never updated, only created, listed and deleted.
type ContactStore interface {
	CreateContact(ctx context.Context, contact *types.Contact) (string, error)
	ListContacts(ctx context.Context) ([]*types.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}
