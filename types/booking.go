package types

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is one of the four lifecycle values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) Ptr() *BookingStatus {
	return &s
}

type ServiceType string

const (
	ServiceTypeWedding ServiceType = "wedding"
	ServiceTypeBaby    ServiceType = "baby"
)

func (t ServiceType) IsValid() bool {
	return t == ServiceTypeWedding || t == ServiceTypeBaby
}

// Booking is a session request submitted through one of the public booking
// forms. PreferredDate is a "2006-01-02" string, empty when no date was
// chosen at submission.
type Booking struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	ServiceType   ServiceType   `json:"service_type"`
	Message       string        `json:"message"`
	PreferredDate string        `json:"preferred_date"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// BookingCreate is the request body for the public booking form.
type BookingCreate struct {
	Name          string      `json:"name" binding:"required"`
	Email         string      `json:"email" binding:"required"`
	Phone         string      `json:"phone" binding:"required"`
	ServiceType   ServiceType `json:"service_type" binding:"required"`
	Message       string      `json:"message"`
	PreferredDate string      `json:"preferred_date"`
}

// BookingUpdate carries the admin edit payload. Nil fields are left
// untouched; an update with no fields set is rejected.
type BookingUpdate struct {
	Name          *string        `json:"name,omitempty"`
	Email         *string        `json:"email,omitempty"`
	Phone         *string        `json:"phone,omitempty"`
	ServiceType   *ServiceType   `json:"service_type,omitempty"`
	Message       *string        `json:"message,omitempty"`
	PreferredDate *string        `json:"preferred_date,omitempty"`
	Status        *BookingStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u *BookingUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil &&
		u.ServiceType == nil && u.Message == nil && u.PreferredDate == nil && u.Status == nil
}
