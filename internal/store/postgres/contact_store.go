package postgres

import (
	"context"

	"github.com/dishu-studio/studio-backend/internal/store"
	"github.com/dishu-studio/studio-backend/types"
)

// Ensure ContactStore implements store.ContactStore.
var _ store.ContactStore = (*ContactStore)(nil)

// ContactStore implements the store.ContactStore interface using PostgreSQL.
type ContactStore struct {
	db DB
}

// NewContactStore creates a new ContactStore instance.
func NewContactStore(db DB) *ContactStore {
	return &ContactStore{db: db}
}

// CreateContact inserts a new contact message and returns its server-assigned ID.
func (s *ContactStore) CreateContact(ctx context.Context, contact *types.Contact) (string, error) {
	query := `
		INSERT INTO contacts (name, email, phone, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	row := s.db.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Message,
	)

	err := row.Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return "", err
	}

	return contact.ID, nil
}

// ListContacts retrieves all contact messages, newest first.
func (s *ContactStore) ListContacts(ctx context.Context) ([]*types.Contact, error) {
	query := `
		SELECT id, name, email, phone, message, created_at
		FROM contacts
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*types.Contact
	for rows.Next() {
		contact := &types.Contact{}
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Phone,
			&contact.Message,
			&contact.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

// DeleteContact removes a contact message from the database.
func (s *ContactStore) DeleteContact(ctx context.Context, id string) error {
	query := `DELETE FROM contacts WHERE id = $1`

	result, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}
