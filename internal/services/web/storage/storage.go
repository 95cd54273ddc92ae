package storage

import (
	"context"
	"time"
)

// ContactMessage is one contact form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Company   string
	Message   string
	CreatedAt time.Time
}

// ContactStore persists contact form submissions.
type ContactStore interface {
	SaveContactMessage(ctx context.Context, msg ContactMessage) (ContactMessage, error)
	ListContactMessages(ctx context.Context, limit int) ([]ContactMessage, error)
}
