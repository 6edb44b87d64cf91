package types

import "context"

// EmailService sends the booking notification pair: an alert to the studio
// inbox and a confirmation back to the client.
type EmailService interface {
	SendBookingNotification(ctx context.Context, booking *Booking) error
	SendBookingConfirmation(ctx context.Context, booking *Booking) error
}

type EmailData struct {
	To           string
	Subject      string
	TemplateData map[string]interface{}
}
