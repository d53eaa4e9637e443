package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smsdispatch/notification-svc/internal/domain"
	"github.com/smsdispatch/notification-svc/internal/observability"
	"github.com/smsdispatch/notification-svc/internal/provider"
	"github.com/smsdispatch/notification-svc/internal/repository"
	"go.uber.org/zap"
)

// SMSRequest carries one dispatch request from the boundary layer.
type SMSRequest struct {
	PhoneNumber string
	Message     string
	SenderID    string
}

type NotificationService struct {
	notifications repository.NotificationRepository
	provider      provider.Provider
	logger        *zap.Logger
	metrics       *observability.Metrics
	now           func() time.Time
}

func NewNotificationService(
	notifications repository.NotificationRepository,
	deliveryProvider provider.Provider,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*NotificationService, error) {
	if notifications == nil {
		return nil, fmt.Errorf("notification repository is required")
	}
	if deliveryProvider == nil {
		return nil, fmt.Errorf("delivery provider is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NotificationService{
		notifications: notifications,
		provider:      deliveryProvider,
		logger:        logger,
		metrics:       metrics,
		now:           time.Now,
	}, nil
}

// SendSMS dispatches one message and records its outcome. Exactly one
// persistence call happens per invocation regardless of the delivery
// result; there is no transaction spanning the provider call and the
// write, so a crash in between leaves no record at all.
func (s *NotificationService) SendSMS(ctx context.Context, req SMSRequest) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := normalizeSMSRequest(req)
	if err != nil {
		return "", err
	}

	logger := observability.WithContextLogger(s.logger, ctx)

	notification := &domain.Notification{
		ID:          uuid.NewString(),
		Message:     req.Message,
		ContactInfo: req.PhoneNumber,
		CreatedAt:   s.now().UTC(),
		Status:      domain.StatusSucceeded,
		UserID:      req.SenderID,
		IsDeleted:   false,
	}

	sendStart := s.now()
	sendErr := s.provider.Send(ctx, req.PhoneNumber, req.Message)
	if s.metrics != nil {
		s.metrics.ObserveSMSSendDuration(s.now().Sub(sendStart))
	}

	if sendErr == nil {
		if err := s.notifications.Save(ctx, notification); err != nil {
			return "", fmt.Errorf("failed to persist notification: %w", err)
		}
		if s.metrics != nil {
			s.metrics.IncSMSSent()
		}
		logger.Info("sms dispatched",
			zap.String("notificationId", notification.ID),
			zap.String("userId", notification.UserID),
		)
		return fmt.Sprintf("SMS sent to %s", req.PhoneNumber), nil
	}

	notification.Status = domain.StatusFailed
	if err := s.notifications.Save(ctx, notification); err != nil {
		return "", fmt.Errorf("failed to persist failed notification: %w", err)
	}

	if provider.IsRejected(sendErr) {
		logger.Error("provider rejected sms",
			zap.String("notificationId", notification.ID),
			zap.Error(sendErr),
		)
		if s.metrics != nil {
			s.metrics.IncSMSFailed("rejected")
		}
		return "", &domain.DispatchError{
			ClientFault: true,
			Message:     fmt.Sprintf("Failed to send SMS to %s: %s", req.PhoneNumber, sendErr.Error()),
			Cause:       sendErr,
		}
	}

	logger.Error("sms delivery failed",
		zap.String("notificationId", notification.ID),
		zap.Error(sendErr),
	)
	if s.metrics != nil {
		s.metrics.IncSMSFailed("transport")
	}
	return "", &domain.DispatchError{
		Message: fmt.Sprintf("Internal error while sending SMS to %s: %s", req.PhoneNumber, sendErr.Error()),
		Cause:   sendErr,
	}
}

// ListActive returns the sender's notifications that have not been soft
// deleted. Order carries no meaning.
func (s *NotificationService) ListActive(ctx context.Context, userID string) ([]domain.Notification, error) {
	normalized, err := normalizeUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.notifications.FindActiveByUser(ctx, normalized)
}

// SoftDeleteAll hides every active notification owned by userID. Records
// are persisted one at a time; a failure mid-batch leaves earlier records
// deleted and later ones untouched.
func (s *NotificationService) SoftDeleteAll(ctx context.Context, userID string) error {
	normalized, err := normalizeUserID(userID)
	if err != nil {
		return err
	}

	notifications, err := s.notifications.FindActiveByUser(ctx, normalized)
	if err != nil {
		return err
	}

	for i := range notifications {
		notifications[i].IsDeleted = true
		if err := s.notifications.Save(ctx, &notifications[i]); err != nil {
			return fmt.Errorf("failed to soft delete notification %s: %w", notifications[i].ID, err)
		}
	}

	observability.WithContextLogger(s.logger, ctx).Info("notifications soft deleted",
		zap.String("userId", normalized),
		zap.Int("count", len(notifications)),
	)
	return nil
}

func normalizeSMSRequest(req SMSRequest) (SMSRequest, error) {
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Message = strings.TrimSpace(req.Message)

	if req.PhoneNumber == "" {
		return SMSRequest{}, fmt.Errorf("%w: phone number is required", domain.ErrValidation)
	}
	if req.Message == "" {
		return SMSRequest{}, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	senderID, err := normalizeUserID(req.SenderID)
	if err != nil {
		return SMSRequest{}, err
	}
	req.SenderID = senderID

	return req, nil
}

func normalizeUserID(userID string) (string, error) {
	trimmed := strings.TrimSpace(userID)
	if trimmed == "" {
		return "", fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: user id must be a UUID", domain.ErrValidation)
	}

	return parsed.String(), nil
}
