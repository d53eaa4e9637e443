package domain

import (
	"fmt"
	"time"
)

// Status represents the recorded outcome of a send attempt.
type Status string

const (
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusSucceeded, StatusFailed:
		return true
	}
	return false
}

// Notification is the durable record of a single SMS send attempt.
// Once created it never changes except for the one-time Status decision
// made during dispatch and the one-way IsDeleted flip.
type Notification struct {
	ID          string
	Message     string
	ContactInfo string
	CreatedAt   time.Time
	Status      Status
	UserID      string
	IsDeleted   bool
}

func (n *Notification) Validate() error {
	if n.Message == "" {
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	if n.ContactInfo == "" {
		return fmt.Errorf("%w: contact info is required", ErrValidation)
	}
	if n.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if !n.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, n.Status)
	}
	return nil
}
