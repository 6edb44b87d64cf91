package postgres

import (
	"context"
	"errors"

	"github.com/dishu-studio/studio-backend/internal/store"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/jackc/pgx/v5"
)

// Ensure BookingStore implements store.BookingStore.
var _ store.BookingStore = (*BookingStore)(nil)

// BookingStore implements the store.BookingStore interface using PostgreSQL.
type BookingStore struct {
	db DB
}

// NewBookingStore creates a new BookingStore instance.
func NewBookingStore(db DB) *BookingStore {
	return &BookingStore{db: db}
}

const bookingColumns = "id, name, email, phone, service_type, message, preferred_date, status, created_at"

// CreateBooking inserts a new booking and returns its server-assigned ID.
// Status defaults to pending and created_at to the insertion time.
func (s *BookingStore) CreateBooking(ctx context.Context, booking *types.Booking) (string, error) {
	query := `
		INSERT INTO bookings (name, email, phone, service_type, message, preferred_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at`

	row := s.db.QueryRow(ctx, query,
		booking.Name,
		booking.Email,
		booking.Phone,
		string(booking.ServiceType),
		booking.Message,
		booking.PreferredDate,
	)

	err := row.Scan(&booking.ID, &booking.Status, &booking.CreatedAt)
	if err != nil {
		return "", err
	}

	return booking.ID, nil
}

// GetBooking retrieves a booking by its ID.
func (s *BookingStore) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1`

	booking := &types.Booking{}
	row := s.db.QueryRow(ctx, query, id)

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.ServiceType,
		&booking.Message,
		&booking.PreferredDate,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	return booking, nil
}

// ListBookings retrieves all bookings, newest first.
func (s *BookingStore) ListBookings(ctx context.Context) ([]*types.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*types.Booking
	for rows.Next() {
		booking := &types.Booking{}
		err := rows.Scan(
			&booking.ID,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.ServiceType,
			&booking.Message,
			&booking.PreferredDate,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateBooking applies a partial update and returns the updated record.
// Nil fields keep their current value. An update with no fields set is
// rejected with ErrNoUpdateFields before touching the database.
func (s *BookingStore) UpdateBooking(ctx context.Context, id string, update *types.BookingUpdate) (*types.Booking, error) {
	if update.IsEmpty() {
		return nil, store.ErrNoUpdateFields
	}

	query := `
		UPDATE bookings
		SET name = COALESCE($1, name),
			email = COALESCE($2, email),
			phone = COALESCE($3, phone),
			service_type = COALESCE($4, service_type),
			message = COALESCE($5, message),
			preferred_date = COALESCE($6, preferred_date),
			status = COALESCE($7, status)
		WHERE id = $8
		RETURNING ` + bookingColumns

	booking := &types.Booking{}
	row := s.db.QueryRow(ctx, query,
		update.Name,
		update.Email,
		update.Phone,
		serviceTypePtr(update.ServiceType),
		update.Message,
		update.PreferredDate,
		statusPtr(update.Status),
		id,
	)

	err := row.Scan(
		&booking.ID,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.ServiceType,
		&booking.Message,
		&booking.PreferredDate,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	return booking, nil
}

// DeleteBooking removes a booking from the database.
func (s *BookingStore) DeleteBooking(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}

// serviceTypePtr converts a typed pointer to *string so pgx encodes a NULL
// for absent values.
func serviceTypePtr(t *types.ServiceType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

func statusPtr(st *types.BookingStatus) *string {
	if st == nil {
		return nil
	}
	s := string(*st)
	return &s
}
