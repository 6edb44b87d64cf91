package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/dishu-studio/studio-backend/types"
)

// EditBooking walks through the admin edit flow: pick a row, adjust the
// editable fields with the current values pre-filled, then save. A failed
// save keeps the draft so the save can be retried.
func (c *Console) EditBooking(ctx context.Context) {
	if len(c.bookings) == 0 {
		fmt.Fprintln(c.out, "No bookings yet")
		return
	}

	idx := c.promptIndex("Edit row: ", len(c.bookings))
	if idx < 0 {
		return
	}
	target := c.bookings[idx]

	name := c.promptDefault("Name", target.Name)
	email := c.promptDefault("Email", target.Email)
	phone := c.promptDefault("Phone", target.Phone)
	service := types.ServiceType(c.promptDefault("Service (wedding/baby)", string(target.ServiceType)))
	status := types.BookingStatus(c.promptDefault("Status (pending/confirmed/completed/cancelled)", string(target.Status)))

	if !service.IsValid() {
		fmt.Fprintln(c.out, "Invalid service type, edit discarded")
		return
	}
	if !status.IsValid() {
		fmt.Fprintln(c.out, "Invalid status, edit discarded")
		return
	}

	update := &types.BookingUpdate{
		Name:        &name,
		Email:       &email,
		Phone:       &phone,
		ServiceType: &service,
		Status:      &status,
	}

	// A failed save keeps the edited values so the admin can retry without
	// retyping them.
	for {
		_, err := c.client.UpdateBooking(ctx, target.ID, update)
		if err == nil {
			break
		}
		c.log.Warnw("Failed to update booking", "bookingId", target.ID, "error", err)
		fmt.Fprintln(c.out, "Save failed")
		if !c.confirm("Retry save?") {
			return
		}
	}

	fmt.Fprintln(c.out, "Booking updated")
	c.RefreshBookings(ctx)
	c.RenderBookings()
}

// DeleteBooking asks for confirmation showing the record's name before any
// request goes out.
func (c *Console) DeleteBooking(ctx context.Context) {
	if len(c.bookings) == 0 {
		fmt.Fprintln(c.out, "No bookings yet")
		return
	}

	idx := c.promptIndex("Delete row: ", len(c.bookings))
	if idx < 0 {
		return
	}
	target := c.bookings[idx]

	if !c.confirm(fmt.Sprintf("Delete booking from %s?", target.Name)) {
		fmt.Fprintln(c.out, "Cancelled")
		return
	}

	if err := c.client.DeleteBooking(ctx, target.ID); err != nil {
		c.log.Warnw("Failed to delete booking", "bookingId", target.ID, "error", err)
		fmt.Fprintln(c.out, "Delete failed")
		return
	}

	fmt.Fprintln(c.out, "Booking deleted")
	c.RefreshBookings(ctx)
	c.RenderBookings()
}

// DeleteContact mirrors DeleteBooking for contact messages.
func (c *Console) DeleteContact(ctx context.Context) {
	if len(c.contacts) == 0 {
		fmt.Fprintln(c.out, "No messages yet")
		return
	}

	idx := c.promptIndex("Delete row: ", len(c.contacts))
	if idx < 0 {
		return
	}
	target := c.contacts[idx]

	if !c.confirm(fmt.Sprintf("Delete message from %s?", target.Name)) {
		fmt.Fprintln(c.out, "Cancelled")
		return
	}

	if err := c.client.DeleteContact(ctx, target.ID); err != nil {
		c.log.Warnw("Failed to delete contact", "contactId", target.ID, "error", err)
		fmt.Fprintln(c.out, "Delete failed")
		return
	}

	fmt.Fprintln(c.out, "Message deleted")
	c.RefreshContacts(ctx)
	c.RenderContacts()
}

// promptDefault asks for a field value, keeping the current one when the
// admin just presses enter.
func (c *Console) promptDefault(label, current string) string {
	raw, ok := c.prompt(fmt.Sprintf("%s [%s]: ", label, current))
	if !ok {
		return current
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return current
	}
	return raw
}
