package handlers

import (
	"net/http"
	"strings"

	"github.com/dishu-studio/studio-backend/errors"
	"github.com/dishu-studio/studio-backend/internal/store"
	"github.com/dishu-studio/studio-backend/logger"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/gin-gonic/gin"
)

// BookingHandler handles the booking endpoints: public form submission plus
// the admin list/edit/delete operations.
type BookingHandler struct {
	bookingStore store.BookingStore
	emailService types.EmailService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingStore store.BookingStore, emailService types.EmailService) *BookingHandler {
	return &BookingHandler{
		bookingStore: bookingStore,
		emailService: emailService,
	}
}

// CreateBookingHandler godoc
// @Summary      Submit a booking request
// @Description  Creates a booking from the public wedding/baby shoot form
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      types.BookingCreate  true  "Booking payload"
// @Success      201   {object}  types.Booking
// @Failure      400   {object}  types.ErrorResponse
// @Failure      429   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /bookings [post]
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	log := logger.GetLogger()

	var req types.BookingCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	// Trim whitespace and re-validate
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		_ = c.Error(errors.ValidationFailed("validation_failed", "name, email and phone must not be blank"))
		return
	}
	if !req.ServiceType.IsValid() {
		_ = c.Error(errors.ValidationFailed("validation_failed", "service_type must be one of: wedding, baby"))
		return
	}

	booking := &types.Booking{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ServiceType:   req.ServiceType,
		Message:       req.Message,
		PreferredDate: req.PreferredDate,
	}

	if _, err := h.bookingStore.CreateBooking(c.Request.Context(), booking); err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	// Notification failures never fail the booking; the record is already
	// persisted and the admin dashboard will show it either way.
	if err := h.emailService.SendBookingNotification(c.Request.Context(), booking); err != nil {
		log.Errorw("Failed to send booking notification",
			"bookingId", booking.ID, "error", err)
	}
	if err := h.emailService.SendBookingConfirmation(c.Request.Context(), booking); err != nil {
		log.Errorw("Failed to send booking confirmation",
			"bookingId", booking.ID,
			"email", logger.MaskEmail(booking.Email),
			"error", err)
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookingsHandler godoc
// @Summary      List all bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   types.Booking
// @Failure      500  {object}  types.ErrorResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.bookingStore.ListBookings(c.Request.Context())
	if err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	// An empty table is an empty JSON array, never null.
	if bookings == nil {
		bookings = []*types.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler godoc
// @Summary      Get a booking by ID
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  types.Booking
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /bookings/{id} [get]
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")

	booking, err := h.bookingStore.GetBooking(c.Request.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.BookingNotFound(id))
			return
		}
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBookingHandler godoc
// @Summary      Update a booking
// @Description  Applies a partial update from the admin edit dialog. Fields
// @Description  left out of the body keep their stored value.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Booking ID"
// @Param        body  body      types.BookingUpdate  true  "Fields to update"
// @Success      200   {object}  types.Booking
// @Failure      400   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /bookings/{id} [put]
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id := c.Param("id")

	var update types.BookingUpdate
	if !bindJSONOrError(c, &update) {
		return
	}

	if update.IsEmpty() {
		_ = c.Error(errors.ValidationFailed("No update data provided", "at least one field is required"))
		return
	}
	if update.Status != nil && !update.Status.IsValid() {
		_ = c.Error(errors.ValidationFailed("validation_failed", "status must be one of: pending, confirmed, completed, cancelled"))
		return
	}
	if update.ServiceType != nil && !update.ServiceType.IsValid() {
		_ = c.Error(errors.ValidationFailed("validation_failed", "service_type must be one of: wedding, baby"))
		return
	}

	booking, err := h.bookingStore.UpdateBooking(c.Request.Context(), id, &update)
	if err != nil {
		switch err {
		case store.ErrNotFound:
			_ = c.Error(errors.BookingNotFound(id))
		case store.ErrNoUpdateFields:
			_ = c.Error(errors.ValidationFailed("No update data provided", "at least one field is required"))
		default:
			_ = c.Error(errors.NewDatabaseError(err))
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DeleteBookingHandler godoc
// @Summary      Delete a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking ID"
// @Success      200  {object}  types.MessageResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.bookingStore.DeleteBooking(c.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.BookingNotFound(id))
			return
		}
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Booking deleted successfully"})
}

// bindJSONOrError binds JSON request body and sets validation error if
// binding fails. Returns true if binding succeeded, false if error was set
// (caller should return).
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(errors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}
