package repository

import (
	"time"

	"github.com/smsdispatch/notification-svc/internal/domain"
)

// NotificationModel is the persistence model for the notifications table.
type NotificationModel struct {
	ID          string        `gorm:"type:uuid;primaryKey"`
	Message     string        `gorm:"type:text;not null"`
	ContactInfo string        `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time     `gorm:"type:timestamptz;not null"`
	Status      domain.Status `gorm:"type:varchar(20);not null"`
	UserID      string        `gorm:"type:uuid;not null"`
	IsDeleted   bool          `gorm:"not null;default:false"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func notificationModelFromDomain(n *domain.Notification) *NotificationModel {
	if n == nil {
		return nil
	}

	return &NotificationModel{
		ID:          n.ID,
		Message:     n.Message,
		ContactInfo: n.ContactInfo,
		CreatedAt:   n.CreatedAt,
		Status:      n.Status,
		UserID:      n.UserID,
		IsDeleted:   n.IsDeleted,
	}
}

func notificationModelToDomain(m *NotificationModel) *domain.Notification {
	if m == nil {
		return nil
	}

	return &domain.Notification{
		ID:          m.ID,
		Message:     m.Message,
		ContactInfo: m.ContactInfo,
		CreatedAt:   m.CreatedAt,
		Status:      m.Status,
		UserID:      m.UserID,
		IsDeleted:   m.IsDeleted,
	}
}
