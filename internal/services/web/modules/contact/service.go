package contact

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/louisbranch/aicopilot/internal/services/web/platform/errors"
	"github.com/louisbranch/aicopilot/internal/services/web/storage"
)

// Field limits in characters.
const (
	maxNameLength    = 200
	maxEmailLength   = 254
	maxCompanyLength = 200
	maxMessageLength = 5000
)

// Submission is the raw form input.
type Submission struct {
	Name    string
	Email   string
	Company string
	Message string
}

func (s Submission) normalized() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Company: strings.TrimSpace(s.Company),
		Message: strings.TrimSpace(s.Message),
	}
}

type service struct {
	store storage.ContactStore
	now   func() time.Time
}

func newService(store storage.ContactStore, now func() time.Time) service {
	if now == nil {
		now = time.Now
	}
	return service{store: store, now: now}
}

// validate returns one field-keyed invalid_input error per failing field.
func validate(s Submission) []error {
	var errs []error
	switch {
	case s.Name == "":
		errs = append(errs, apperrors.EK(apperrors.KindInvalidInput, "name", "Name is required."))
	case utf8.RuneCountInString(s.Name) > maxNameLength:
		errs = append(errs, apperrors.EK(apperrors.KindInvalidInput, "name", fmt.Sprintf("Name must be at most %d characters.", maxNameLength)))
	}
	switch {
	case s.Email == "":
		errs = append(errs, apperrors.EK(apperrors.KindInvalidInput, "email", "Email is required."))
	case utf8.RuneCountInString(s.Email) > maxEmailLength || !isEmail(s.Email):
		errs = append(errs, apperrors.EK(apperrors.KindInvalidInput, "email", "Enter a valid email address."))
	}
	if utf8.RuneCountInString(s.Company) > maxCompanyLength {
		errs = append(errs, apperrors.EK(apperrors.KindInvalidInput, "company", fmt.Sprintf("Company must be at most %d characters.", maxCompanyLength)))
	}
	switch {
	case s.Message == "":
		errs = append(errs, apperrors.EK(apperrors.KindInvalidInput, "message", "Message is required."))
	case utf8.RuneCountInString(s.Message) > maxMessageLength:
		errs = append(errs, apperrors.EK(apperrors.KindInvalidInput, "message", fmt.Sprintf("Message must be at most %d characters.", maxMessageLength)))
	}
	return errs
}

// isEmail accepts a bare address, not a display-name form.
func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	return addr.Address == value && strings.Contains(value, ".")
}

// submit validates and stores s. Validation failures come back as field
// errors; storage failures as a single unavailable error.
func (s service) submit(ctx context.Context, sub Submission) (storage.ContactMessage, []error) {
	sub = sub.normalized()
	if errs := validate(sub); len(errs) > 0 {
		return storage.ContactMessage{}, errs
	}
	if s.store == nil {
		return storage.ContactMessage{}, []error{apperrors.E(apperrors.KindUnavailable, "Contact form is temporarily unavailable.")}
	}
	saved, err := s.store.SaveContactMessage(ctx, storage.ContactMessage{
		Name:      sub.Name,
		Email:     sub.Email,
		Company:   sub.Company,
		Message:   sub.Message,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return storage.ContactMessage{}, []error{fmt.Errorf("save contact message: %w", err)}
	}
	return saved, nil
}
