package admin

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dishu-studio/studio-backend/logger"
	"github.com/dishu-studio/studio-backend/pkg/studioapi"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.IsTest = true
}

// mockAPIClient implements studioapi.ClientInterface for console tests.
type mockAPIClient struct {
	mock.Mock
}

func (m *mockAPIClient) CreateBooking(ctx context.Context, req *types.BookingCreate) (*types.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *mockAPIClient) ListBookings(ctx context.Context) ([]*types.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Booking), args.Error(1)
}

func (m *mockAPIClient) GetBooking(ctx context.Context, id string) (*types.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *mockAPIClient) UpdateBooking(ctx context.Context, id string, update *types.BookingUpdate) (*types.Booking, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Booking), args.Error(1)
}

func (m *mockAPIClient) DeleteBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAPIClient) CreateContact(ctx context.Context, req *types.ContactCreate) (*types.Contact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Contact), args.Error(1)
}

func (m *mockAPIClient) ListContacts(ctx context.Context) ([]*types.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.Contact), args.Error(1)
}

func (m *mockAPIClient) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ studioapi.ClientInterface = (*mockAPIClient)(nil)

func newTestConsole(input string) (*Console, *mockAPIClient, *bytes.Buffer) {
	client := new(mockAPIClient)
	out := &bytes.Buffer{}
	console := NewConsole(client, strings.NewReader(input), out)
	return console, client, out
}

func TestShowIntroOncePerSession(t *testing.T) {
	console, _, out := newTestConsole("")

	console.ShowIntro()
	console.ShowIntro()

	assert.Equal(t, 1, strings.Count(out.String(), "Dishu Studio admin console"))
}

func TestRenderPlaceholderRows(t *testing.T) {
	t.Run("empty lists render exactly one placeholder row each", func(t *testing.T) {
		console, _, out := newTestConsole("")

		console.RenderBookings()
		console.RenderContacts()

		assert.Equal(t, 1, strings.Count(out.String(), "No bookings yet"))
		assert.Equal(t, 1, strings.Count(out.String(), "No messages yet"))
	})

	t.Run("placeholder disappears once records exist", func(t *testing.T) {
		console, _, out := newTestConsole("")
		console.bookings = []*types.Booking{{Name: "Asha Rao", Status: types.BookingStatusPending}}

		console.RenderBookings()

		assert.NotContains(t, out.String(), "No bookings yet")
		assert.Contains(t, out.String(), "Asha Rao")
	})
}

func TestRefreshKeepsPreviousListOnFailure(t *testing.T) {
	console, client, out := newTestConsole("")
	ctx := context.Background()

	client.On("ListBookings", ctx).Return([]*types.Booking{{ID: "b-1", Name: "Asha Rao"}}, nil).Once()
	console.RefreshBookings(ctx)
	assert.Len(t, console.Bookings(), 1)

	client.On("ListBookings", ctx).Return(nil, errors.New("backend down")).Once()
	console.RefreshBookings(ctx)

	assert.Len(t, console.Bookings(), 1)
	assert.Contains(t, out.String(), "last known list")
}

func TestRefreshIsIndependentPerList(t *testing.T) {
	console, client, _ := newTestConsole("")
	ctx := context.Background()

	client.On("ListBookings", ctx).Return(nil, errors.New("backend down"))
	client.On("ListContacts", ctx).Return([]*types.Contact{{ID: "c-1", Name: "Ravi Shah"}}, nil)

	console.RefreshBookings(ctx)
	console.RefreshContacts(ctx)

	assert.Empty(t, console.Bookings())
	assert.Len(t, console.Contacts(), 1)
}

func TestDeleteBookingConfirmation(t *testing.T) {
	booking := &types.Booking{ID: "b-1", Name: "Asha Rao"}

	t.Run("declining issues no request", func(t *testing.T) {
		console, client, out := newTestConsole("1\nn\n")
		console.bookings = []*types.Booking{booking}

		console.DeleteBooking(context.Background())

		assert.Contains(t, out.String(), "Delete booking from Asha Rao?")
		client.AssertNotCalled(t, "DeleteBooking", mock.Anything, mock.Anything)
	})

	t.Run("confirming deletes and re-fetches", func(t *testing.T) {
		console, client, _ := newTestConsole("1\ny\n")
		console.bookings = []*types.Booking{booking}
		ctx := context.Background()

		client.On("DeleteBooking", ctx, "b-1").Return(nil).Once()
		client.On("ListBookings", ctx).Return([]*types.Booking{}, nil).Once()

		console.DeleteBooking(ctx)

		client.AssertExpectations(t)
		assert.Empty(t, console.Bookings())
	})
}

func TestDeleteContactConfirmation(t *testing.T) {
	console, client, out := newTestConsole("1\n\n")
	console.contacts = []*types.Contact{{ID: "c-1", Name: "Ravi Shah"}}

	// An empty answer counts as a decline.
	console.DeleteContact(context.Background())

	assert.Contains(t, out.String(), "Delete message from Ravi Shah?")
	client.AssertNotCalled(t, "DeleteContact", mock.Anything, mock.Anything)
}

func TestSubmitBookingFormDraftSemantics(t *testing.T) {
	const input = "Asha Rao\nasha@example.com\n+91 98200 12345\nwedding\nEngagement shoot\n2030-01-02\n"

	t.Run("failed submission preserves the draft", func(t *testing.T) {
		console, client, out := newTestConsole(input)
		client.On("CreateBooking", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))

		console.SubmitBookingForm(context.Background())

		assert.Contains(t, out.String(), "draft kept")
		if assert.NotNil(t, console.bookingDraft) {
			assert.Equal(t, "Asha Rao", console.bookingDraft.Name)
			assert.Equal(t, "2030-01-02", console.bookingDraft.PreferredDate)
		}
	})

	t.Run("successful submission clears the draft", func(t *testing.T) {
		console, client, _ := newTestConsole(input)
		ctx := context.Background()
		client.On("CreateBooking", ctx, mock.MatchedBy(func(req *types.BookingCreate) bool {
			return req.Name == "Asha Rao" && req.ServiceType == types.ServiceTypeWedding
		})).Return(&types.Booking{ID: "b-1"}, nil)
		client.On("ListBookings", ctx).Return([]*types.Booking{{ID: "b-1"}}, nil)

		console.SubmitBookingForm(ctx)

		assert.Nil(t, console.bookingDraft)
	})

	t.Run("validation failure issues no request", func(t *testing.T) {
		// Missing email, everything else filled in.
		console, client, out := newTestConsole("Asha Rao\n\n+91 98200 12345\nwedding\nhello\n\n")
		client.On("CreateBooking", mock.Anything, mock.Anything).
			Return(nil, &studioapi.ValidationError{Field: "email", Reason: "is required"})

		console.SubmitBookingForm(context.Background())

		assert.Contains(t, out.String(), "Missing field")
		assert.NotNil(t, console.bookingDraft)
	})
}

func TestSubmitBookingFormRejectsPastDate(t *testing.T) {
	console, client, out := newTestConsole("Asha Rao\nasha@example.com\n+91 1\nwedding\nhi\n2020-01-01\n")
	console.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}

	console.SubmitBookingForm(context.Background())

	assert.Contains(t, out.String(), "Past dates cannot be booked")
	client.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestSubmitContactFormDraftSemantics(t *testing.T) {
	const input = "Ravi Shah\nravi@example.com\n+91 98111 22222\nDo you cover destination weddings?\n"

	t.Run("failed submission preserves the draft", func(t *testing.T) {
		console, client, _ := newTestConsole(input)
		client.On("CreateContact", mock.Anything, mock.Anything).Return(nil, errors.New("backend down"))

		console.SubmitContactForm(context.Background())

		if assert.NotNil(t, console.contactDraft) {
			assert.Equal(t, "Ravi Shah", console.contactDraft.Name)
		}
	})

	t.Run("successful submission clears the draft", func(t *testing.T) {
		console, client, _ := newTestConsole(input)
		ctx := context.Background()
		client.On("CreateContact", ctx, mock.Anything).Return(&types.Contact{ID: "c-1"}, nil)
		client.On("ListContacts", ctx).Return([]*types.Contact{{ID: "c-1"}}, nil)

		console.SubmitContactForm(ctx)

		assert.Nil(t, console.contactDraft)
	})
}

func TestEditBookingRoundTrip(t *testing.T) {
	// Keep all fields, change only the status.
	console, client, _ := newTestConsole("1\n\n\n\n\nconfirmed\n")
	console.bookings = []*types.Booking{{
		ID:          "b-1",
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		Phone:       "+91 98200 12345",
		ServiceType: types.ServiceTypeWedding,
		Status:      types.BookingStatusPending,
	}}
	ctx := context.Background()

	client.On("UpdateBooking", ctx, "b-1", mock.MatchedBy(func(u *types.BookingUpdate) bool {
		return u.Name != nil && *u.Name == "Asha Rao" &&
			u.Status != nil && *u.Status == types.BookingStatusConfirmed &&
			u.ServiceType != nil && *u.ServiceType == types.ServiceTypeWedding
	})).Return(&types.Booking{ID: "b-1", Status: types.BookingStatusConfirmed}, nil).Once()
	client.On("ListBookings", ctx).Return([]*types.Booking{{
		ID:     "b-1",
		Name:   "Asha Rao",
		Status: types.BookingStatusConfirmed,
	}}, nil).Once()

	console.EditBooking(ctx)

	client.AssertExpectations(t)
	assert.Equal(t, types.BookingStatusConfirmed, console.Bookings()[0].Status)
}

func TestEditBookingInvalidStatusDiscarded(t *testing.T) {
	console, client, out := newTestConsole("1\n\n\n\n\narchived\n")
	console.bookings = []*types.Booking{{ID: "b-1", Name: "Asha Rao", ServiceType: types.ServiceTypeWedding, Status: types.BookingStatusPending}}

	console.EditBooking(context.Background())

	assert.Contains(t, out.String(), "Invalid status")
	client.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
}
