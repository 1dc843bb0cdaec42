package v1

import (
	"errors"
	"net/http"

	"fluxcapital-backend/internal/delivery/http/response"
	"fluxcapital-backend/internal/domain"
	"fluxcapital-backend/internal/usecase"
	"fluxcapital-backend/pkg/apperror"
	"fluxcapital-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required).
// The rate limiter runs before the handler so rejected requests never touch
// the body or trigger an email.
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, rateLimit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", rateLimit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.SuccessResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      429      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please check your form data and try again."))
		return
	}

	err := h.contactUC.SendContactMessage(c.Request.Context(), &req)

	var fieldErrs validation.Errors
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, "Thank you for your message! We'll get back to you within 24 hours.")
	case errors.As(err, &fieldErrs):
		c.Error(apperror.Validation("Please check your form data and try again.", fieldErrs))
	case errors.Is(err, usecase.ErrEmailNotConfigured):
		c.Error(apperror.Unavailable("Contact service temporarily unavailable.", err))
	default:
		c.Error(apperror.Internal("Failed to send email. Please try again or contact us directly.", err))
	}
}
