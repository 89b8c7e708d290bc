package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/api/metrics"
	"github.com/photosbyzee/studio-portal/internal/infrastructure/mail"
)

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// ContactSender delivers a contact-form submission to the studio.
type ContactSender interface {
	SendContact(msg mail.ContactMessage) error
}

// ContactHandler serves the public contact form.
type ContactHandler struct {
	sender ContactSender
	log    zerolog.Logger
}

func NewContactHandler(sender ContactSender, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{sender: sender, log: log}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.sender.SendContact(mail.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		metrics.ContactMessagesTotal.WithLabelValues("failed").Inc()
		h.log.Error().Err(err).Msg("contact message delivery failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message")
	}

	metrics.ContactMessagesTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
