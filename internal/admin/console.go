// Package admin implements the terminal console the studio uses to review
// bookings and contact messages. It talks to the backend exclusively through
// the studioapi client and keeps a transient local copy of both lists.
package admin

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dishu-studio/studio-backend/logger"
	"github.com/dishu-studio/studio-backend/pkg/studioapi"
	"github.com/dishu-studio/studio-backend/types"
	"go.uber.org/zap"
)

const introBanner = `Dishu Studio admin console
Capturing love stories and little moments.`

type Console struct {
	client studioapi.ClientInterface
	in     *bufio.Scanner
	out    io.Writer
	log    *zap.SugaredLogger
	now    func() time.Time

	bookings []*types.Booking
	contacts []*types.Contact

	introShown   bool
	bookingDraft *types.BookingCreate
	contactDraft *types.ContactCreate
}

func NewConsole(client studioapi.ClientInterface, in io.Reader, out io.Writer) *Console {
	return &Console{
		client: client,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    logger.GetLogger(),
		now:    time.Now,
	}
}

// Run drives the interactive loop until the input ends or the user quits.
func (c *Console) Run(ctx context.Context) error {
	c.ShowIntro()
	c.RefreshBookings(ctx)
	c.RefreshContacts(ctx)
	c.RenderBookings()
	c.RenderContacts()

	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "[1] refresh  [2] bookings  [3] contacts  [4] edit booking")
		fmt.Fprintln(c.out, "[5] delete booking  [6] delete contact  [7] new booking  [8] new contact  [q] quit")
		choice, ok := c.prompt("> ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.RefreshBookings(ctx)
			c.RefreshContacts(ctx)
			c.RenderBookings()
			c.RenderContacts()
		case "2":
			c.RenderBookings()
		case "3":
			c.RenderContacts()
		case "4":
			c.EditBooking(ctx)
		case "5":
			c.DeleteBooking(ctx)
		case "6":
			c.DeleteContact(ctx)
		case "7":
			c.SubmitBookingForm(ctx)
		case "8":
			c.SubmitContactForm(ctx)
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option")
		}
	}
}

// ShowIntro prints the banner the first time only. The flag lives for the
// process session and is never persisted.
func (c *Console) ShowIntro() {
	if c.introShown {
		return
	}
	fmt.Fprintln(c.out, introBanner)
	c.introShown = true
}

// RefreshBookings reloads the booking list. On failure the previous list is
// kept and the failure is reported.
func (c *Console) RefreshBookings(ctx context.Context) {
	bookings, err := c.client.ListBookings(ctx)
	if err != nil {
		c.log.Warnw("Failed to fetch bookings", "error", err)
		fmt.Fprintln(c.out, "Could not load bookings, showing last known list")
		return
	}
	c.bookings = bookings
}

// RefreshContacts reloads the contact list, independently of bookings.
func (c *Console) RefreshContacts(ctx context.Context) {
	contacts, err := c.client.ListContacts(ctx)
	if err != nil {
		c.log.Warnw("Failed to fetch contacts", "error", err)
		fmt.Fprintln(c.out, "Could not load messages, showing last known list")
		return
	}
	c.contacts = contacts
}

// Bookings returns the current local copy of the booking list.
func (c *Console) Bookings() []*types.Booking {
	return c.bookings
}

// Contacts returns the current local copy of the contact list.
func (c *Console) Contacts() []*types.Contact {
	return c.contacts
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// promptIndex asks for a 1-based row number and resolves it against a list
// length. Returns -1 when the input is missing or out of range.
func (c *Console) promptIndex(label string, length int) int {
	raw, ok := c.prompt(label)
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > length {
		fmt.Fprintln(c.out, "No such row")
		return -1
	}
	return n - 1
}

// confirm asks a yes/no question, defaulting to no.
func (c *Console) confirm(question string) bool {
	answer, ok := c.prompt(question + " [y/N] ")
	if !ok {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
