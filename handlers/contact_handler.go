package handlers

import (
	"net/http"
	"strings"

	"github.com/dishu-studio/studio-backend/errors"
	"github.com/dishu-studio/studio-backend/internal/store"
	"github.com/dishu-studio/studio-backend/types"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact message endpoints. Contact messages can be
// created from the public form and listed or deleted from the admin
// dashboard; there is no update operation.
type ContactHandler struct {
	contactStore store.ContactStore
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactStore store.ContactStore) *ContactHandler {
	return &ContactHandler{contactStore: contactStore}
}

// CreateContactHandler godoc
// @Summary      Submit a contact message
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactCreate  true  "Contact payload"
// @Success      201   {object}  types.Contact
// @Failure      400   {object}  types.ErrorResponse
// @Failure      429   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) CreateContactHandler(c *gin.Context) {
	var req types.ContactCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Message == "" {
		_ = c.Error(errors.ValidationFailed("validation_failed", "name, email, phone and message must not be blank"))
		return
	}

	contact := &types.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if _, err := h.contactStore.CreateContact(c.Request.Context(), contact); err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// ListContactsHandler godoc
// @Summary      List all contact messages
// @Tags         contacts
// @Produce      json
// @Success      200  {array}   types.Contact
// @Failure      500  {object}  types.ErrorResponse
// @Router       /contacts [get]
func (h *ContactHandler) ListContactsHandler(c *gin.Context) {
	contacts, err := h.contactStore.ListContacts(c.Request.Context())
	if err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	if contacts == nil {
		contacts = []*types.Contact{}
	}

	c.JSON(http.StatusOK, contacts)
}

// DeleteContactHandler godoc
// @Summary      Delete a contact message
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  types.MessageResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) DeleteContactHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.contactStore.DeleteContact(c.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.ContactNotFound(id))
			return
		}
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Contact deleted successfully"})
}
