package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smsdispatch/notification-svc/internal/domain"
	"github.com/smsdispatch/notification-svc/internal/observability"
	"github.com/smsdispatch/notification-svc/internal/service"
)

type SMSService interface {
	SendSMS(ctx context.Context, req service.SMSRequest) (string, error)
	ListActive(ctx context.Context, userID string) ([]domain.Notification, error)
	SoftDeleteAll(ctx context.Context, userID string) error
}

type SMSHandler struct {
	service SMSService
}

func NewSMSHandler(service SMSService) (*SMSHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("sms service is required")
	}
	return &SMSHandler{service: service}, nil
}

func RegisterSMSRoutes(router fiber.Router, service SMSService) error {
	h, err := NewSMSHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/api/v1")
	v1.Post("/sms", h.SendSMS)
	v1.Get("/sms", h.ListSMS)
	v1.Delete("/sms", h.DeleteSMS)

	return nil
}

type sendSMSRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
	SenderID    string `json:"senderId"`
}

type notificationResponse struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	ContactInfo string    `json:"contactInfo"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status"`
	UserID      string    `json:"userId"`
	IsDeleted   bool      `json:"isDeleted"`
}

func (h *SMSHandler) SendSMS(c *fiber.Ctx) error {
	var req sendSMSRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	confirmation, err := h.service.SendSMS(requestContext(c), service.SMSRequest{
		PhoneNumber: req.PhoneNumber,
		Message:     req.Message,
		SenderID:    req.SenderID,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).SendString(confirmation)
}

func (h *SMSHandler) ListSMS(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Query("userId"))

	notifications, err := h.service.ListActive(requestContext(c), userID)
	if err != nil {
		return toHTTPError(err)
	}

	responses := make([]notificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, toNotificationResponse(&notifications[i]))
	}

	return c.Status(fiber.StatusOK).JSON(responses)
}

func (h *SMSHandler) DeleteSMS(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Query("userId"))

	if err := h.service.SoftDeleteAll(requestContext(c), userID); err != nil {
		return toHTTPError(err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	if n == nil {
		return notificationResponse{}
	}

	return notificationResponse{
		ID:          n.ID,
		Message:     n.Message,
		ContactInfo: n.ContactInfo,
		CreatedAt:   n.CreatedAt,
		Status:      n.Status.String(),
		UserID:      n.UserID,
		IsDeleted:   n.IsDeleted,
	}
}

func requestContext(c *fiber.Ctx) context.Context {
	correlationID := strings.TrimSpace(c.Get(fiber.HeaderXRequestID))
	if correlationID == "" {
		return c.Context()
	}
	return observability.WithCorrelationID(c.Context(), correlationID)
}

func toHTTPError(err error) error {
	var dispatchErr *domain.DispatchError
	switch {
	case errors.As(err, &dispatchErr):
		if dispatchErr.ClientFault {
			return fiber.NewError(fiber.StatusBadRequest, dispatchErr.Message)
		}
		return fiber.NewError(fiber.StatusInternalServerError, dispatchErr.Message)
	case errors.Is(err, domain.ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}
