// Package contacts validates and manages registrant contacts.
package contacts

import (
	"brandkit/pkg/domain"
	"brandkit/pkg/logger"
	"brandkit/pkg/registrar"
	"brandkit/pkg/serrors"
	"context"
	"strings"

	"go.uber.org/zap"
)

var errContactIDRequired = serrors.With(serrors.ErrBadRequest, "Contact ID is required") //nolint: gochecknoglobals

type service struct {
	client registrar.Client
}

// New creates a contacts Service backed by client.
func New(client registrar.Client) Service {
	return &service{client: client}
}

// Create validates the contact and creates it at the registrar. The trimmed
// contact is what gets sent.
func (s *service) Create(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	if err := s.client.Ready(); err != nil {
		return domain.Contact{}, err //nolint: wrapcheck
	}

	contact = Trim(contact)
	contact.ID = ""
	if err := Validate(contact); err != nil {
		return domain.Contact{}, err
	}

	created, err := s.client.CreateContact(ctx, contact)
	if err != nil {
		return domain.Contact{}, registrar.WrapError(err, "Failed to create contact")
	}
	logger.Info(ctx, "contact created", zap.String("contactId", created.ID))

	return created, nil
}

// Get fetches a contact by ID.
func (s *service) Get(ctx context.Context, contactID string) (domain.Contact, error) {
	if err := s.client.Ready(); err != nil {
		return domain.Contact{}, err //nolint: wrapcheck
	}

	contactID = strings.TrimSpace(contactID)
	if contactID == "" {
		return domain.Contact{}, errContactIDRequired
	}

	contact, err := s.client.GetContact(ctx, contactID)
	if err != nil {
		return domain.Contact{}, registrar.WrapError(err, "Failed to get contact")
	}

	return contact, nil
}
