package events

import (
	"context"
	"errors"
	"slices"

	"lab-admin/core/docstore"
	"lab-admin/core/ident"
	"lab-admin/core/utils"

	"go.uber.org/zap"
)

// ErrNotFound indicates no event has the requested id.
var ErrNotFound = errors.New("event not found")

// EventInput is the body of create and update requests.
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

// ToModel sanitizes the free-text fields and builds the event.
func (in EventInput) ToModel() Event {
	return Event{
		Title:       utils.SanitizeText(in.Title),
		Date:        utils.SanitizeText(in.Date),
		DateDisplay: utils.SanitizeText(in.DateDisplay),
		Photo:       utils.SanitizeText(in.Photo),
		Description: utils.SanitizeText(in.Description),
	}
}

// Service manages the events document.
type Service struct {
	store  docstore.Store
	logger *zap.Logger
}

// NewService creates a new events service.
func NewService(store docstore.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Document returns the whole events document.
func (s *Service) Document(ctx context.Context) (*Document, error) {
	var doc Document
	if err := docstore.LoadJSON(ctx, s.store, DocumentName, &doc); err != nil {
		return nil, err
	}
	if doc.Events == nil {
		doc.Events = []Event{}
	}
	return &doc, nil
}

// Create appends the event with the next e### id.
func (s *Service) Create(ctx context.Context, e Event) (Event, error) {
	err := s.update(ctx, func(doc *Document) error {
		existing := make([]string, len(doc.Events))
		for i, ev := range doc.Events {
			existing[i] = ev.ID
		}
		e.ID = ident.Next(existing, ident.EventPrefix, ident.PaddedWidth)
		doc.Events = append(doc.Events, e)
		return nil
	})
	return e, err
}

// Update replaces the event with the given id.
func (s *Service) Update(ctx context.Context, id string, e Event) (Event, error) {
	e.ID = id
	err := s.update(ctx, func(doc *Document) error {
		i := slices.IndexFunc(doc.Events, func(ev Event) bool { return ev.ID == id })
		if i < 0 {
			return ErrNotFound
		}
		doc.Events[i] = e
		return nil
	})
	return e, err
}

// Delete removes the event with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.update(ctx, func(doc *Document) error {
		i := slices.IndexFunc(doc.Events, func(ev Event) bool { return ev.ID == id })
		if i < 0 {
			return ErrNotFound
		}
		doc.Events = slices.Delete(doc.Events, i, i+1)
		return nil
	})
}

func (s *Service) update(ctx context.Context, fn func(doc *Document) error) error {
	return docstore.UpdateJSON(ctx, s.store, DocumentName, func(doc *Document) error {
		if err := fn(doc); err != nil {
			return err
		}
		if doc.Events == nil {
			doc.Events = []Event{}
		}
		return nil
	})
}
