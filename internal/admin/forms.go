package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dishu-studio/studio-backend/pkg/studioapi"
	"github.com/dishu-studio/studio-backend/types"
)

const dateLayout = "2006-01-02"

// SubmitBookingForm collects a booking draft and submits it. A successful
// submission clears the draft; a failed one preserves it so re-entering the
// flow starts from the previous values.
func (c *Console) SubmitBookingForm(ctx context.Context) {
	if c.bookingDraft == nil {
		c.bookingDraft = &types.BookingCreate{}
	}
	draft := c.bookingDraft

	draft.Name = c.promptDefault("Name", draft.Name)
	draft.Email = c.promptDefault("Email", draft.Email)
	draft.Phone = c.promptDefault("Phone", draft.Phone)
	draft.ServiceType = types.ServiceType(c.promptDefault("Service (wedding/baby)", string(draft.ServiceType)))
	draft.Message = c.promptDefault("Message", draft.Message)

	date, ok := c.promptDate(draft.PreferredDate)
	if !ok {
		fmt.Fprintln(c.out, "Past dates cannot be booked")
		return
	}
	draft.PreferredDate = date

	booking, err := c.client.CreateBooking(ctx, draft)
	if err != nil {
		var verr *studioapi.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(c.out, "Missing field: %s\n", verr.Error())
		} else {
			c.log.Warnw("Failed to submit booking", "error", err)
			fmt.Fprintln(c.out, "Submission failed, draft kept")
		}
		return
	}

	c.bookingDraft = nil
	fmt.Fprintf(c.out, "Booking received, id %s\n", booking.ID)
	c.RefreshBookings(ctx)
	c.RenderBookings()
}

// SubmitContactForm collects and submits a contact message draft with the
// same clear-on-success, keep-on-failure behavior as bookings.
func (c *Console) SubmitContactForm(ctx context.Context) {
	if c.contactDraft == nil {
		c.contactDraft = &types.ContactCreate{}
	}
	draft := c.contactDraft

	draft.Name = c.promptDefault("Name", draft.Name)
	draft.Email = c.promptDefault("Email", draft.Email)
	draft.Phone = c.promptDefault("Phone", draft.Phone)
	draft.Message = c.promptDefault("Message", draft.Message)

	contact, err := c.client.CreateContact(ctx, draft)
	if err != nil {
		var verr *studioapi.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(c.out, "Missing field: %s\n", verr.Error())
		} else {
			c.log.Warnw("Failed to submit contact message", "error", err)
			fmt.Fprintln(c.out, "Submission failed, draft kept")
		}
		return
	}

	c.contactDraft = nil
	fmt.Fprintf(c.out, "Message sent, id %s\n", contact.ID)
	c.RefreshContacts(ctx)
	c.RenderContacts()
}

// promptDate asks for an optional preferred date. Empty input means no date.
// Past dates are rejected at selection, before any request is built.
func (c *Console) promptDate(current string) (string, bool) {
	raw, ok := c.prompt(fmt.Sprintf("Preferred date YYYY-MM-DD, empty for none [%s]: ", current))
	if !ok {
		return current, true
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if current != "" {
			return current, true
		}
		return "", true
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		fmt.Fprintln(c.out, "Unrecognized date, leaving it empty")
		return "", true
	}

	today := c.now().Truncate(24 * time.Hour)
	if parsed.Before(today) {
		return current, false
	}
	return raw, true
}
