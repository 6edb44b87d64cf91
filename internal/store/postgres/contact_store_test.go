package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dishu-studio/studio-backend/internal/store"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactStore(t *testing.T) (*ContactStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)
	return NewContactStore(mockPool), mockPool
}

func TestContactStore_CreateContact(t *testing.T) {
	t.Run("assigns id and created_at", func(t *testing.T) {
		s, mock := setupContactStore(t)
		now := time.Now().UTC()
		contact := &types.Contact{
			Name:    "Ravi Shah",
			Email:   "ravi@example.com",
			Phone:   "+91 98111 22222",
			Message: "Do you cover destination weddings?",
		}

		mock.ExpectQuery("INSERT INTO contacts").
			WithArgs(contact.Name, contact.Email, contact.Phone, contact.Message).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("c-1", now))

		id, err := s.CreateContact(context.Background(), contact)
		require.NoError(t, err)
		assert.Equal(t, "c-1", id)
		assert.Equal(t, now, contact.CreatedAt)
	})

	t.Run("propagates database error", func(t *testing.T) {
		s, mock := setupContactStore(t)
		contact := &types.Contact{Name: "Ravi Shah", Email: "r@example.com", Phone: "1", Message: "hi"}

		mock.ExpectQuery("INSERT INTO contacts").
			WithArgs(contact.Name, contact.Email, contact.Phone, contact.Message).
			WillReturnError(errors.New("connection refused"))

		_, err := s.CreateContact(context.Background(), contact)
		assert.Error(t, err)
	})
}

func TestContactStore_ListContacts(t *testing.T) {
	cols := []string{"id", "name", "email", "phone", "message", "created_at"}

	t.Run("returns all rows", func(t *testing.T) {
		s, mock := setupContactStore(t)
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT (.+) FROM contacts ORDER BY created_at DESC").
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow("c-2", "Meera Patel", "meera@example.com", "+91 2", "availability?", now).
				AddRow("c-1", "Ravi Shah", "ravi@example.com", "+91 1", "pricing?", now.Add(-time.Hour)))

		got, err := s.ListContacts(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Meera Patel", got[0].Name)
	})

	t.Run("empty table yields nil slice", func(t *testing.T) {
		s, mock := setupContactStore(t)

		mock.ExpectQuery("SELECT (.+) FROM contacts ORDER BY created_at DESC").
			WillReturnRows(pgxmock.NewRows(cols))

		got, err := s.ListContacts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestContactStore_DeleteContact(t *testing.T) {
	t.Run("deletes existing row", func(t *testing.T) {
		s, mock := setupContactStore(t)

		mock.ExpectExec("DELETE FROM contacts").
			WithArgs("c-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, s.DeleteContact(context.Background(), "c-1"))
	})

	t.Run("zero rows affected maps to ErrNotFound", func(t *testing.T) {
		s, mock := setupContactStore(t)

		mock.ExpectExec("DELETE FROM contacts").
			WithArgs("nope").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, s.DeleteContact(context.Background(), "nope"), store.ErrNotFound)
	})
}
