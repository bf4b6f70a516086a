package members

import (
	"context"
	"errors"
	"slices"

	"lab-admin/core/docstore"
	"lab-admin/core/ident"

	"go.uber.org/zap"
)

// ErrNotFound indicates no member has the requested id.
var ErrNotFound = errors.New("member not found")

// Service manages the members document.
type Service struct {
	store  docstore.Store
	logger *zap.Logger
}

// NewService creates a new members service.
func NewService(store docstore.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Document returns the whole members document.
func (s *Service) Document(ctx context.Context) (*Document, error) {
	var doc Document
	if err := docstore.LoadJSON(ctx, s.store, DocumentName, &doc); err != nil {
		return nil, err
	}
	if doc.Members == nil {
		doc.Members = []Member{}
	}
	return &doc, nil
}

// Create assigns the next m### id and places the member right after the last
// member of the same year, or at the end when there is none.
func (s *Service) Create(ctx context.Context, m Member) (Member, error) {
	err := s.update(ctx, func(doc *Document) error {
		m.ID = ident.Next(doc.ids(), ident.MemberPrefix, ident.PaddedWidth)

		at := len(doc.Members)
		for i := len(doc.Members) - 1; i >= 0; i-- {
			if doc.Members[i].Year == m.Year {
				at = i + 1
				break
			}
		}
		doc.Members = slices.Insert(doc.Members, at, m)
		return nil
	})
	return m, err
}

// Update replaces the member with the given id.
func (s *Service) Update(ctx context.Context, id string, m Member) (Member, error) {
	m.ID = id
	err := s.update(ctx, func(doc *Document) error {
		i := doc.index(id)
		if i < 0 {
			return ErrNotFound
		}
		s.warnIfContact(doc, doc.Members[i], "updated")
		doc.Members[i] = m
		return nil
	})
	return m, err
}

// Delete removes the member with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.update(ctx, func(doc *Document) error {
		i := doc.index(id)
		if i < 0 {
			return ErrNotFound
		}
		s.warnIfContact(doc, doc.Members[i], "deleted")
		doc.Members = slices.Delete(doc.Members, i, i+1)
		return nil
	})
}

// SetContactPerson copies the member's name, email and photo into contact_person.
func (s *Service) SetContactPerson(ctx context.Context, memberID string) (ContactPerson, error) {
	var cp ContactPerson
	err := s.update(ctx, func(doc *Document) error {
		i := doc.index(memberID)
		if i < 0 {
			return ErrNotFound
		}
		m := doc.Members[i]
		cp = ContactPerson{MemberID: m.ID, Name: m.Name, Email: m.Email, Photo: m.Photo}
		doc.ContactPerson = &cp
		return nil
	})
	return cp, err
}

// warnIfContact flags a contact person that will be stale after this change.
func (s *Service) warnIfContact(doc *Document, m Member, action string) {
	if doc.references(m) {
		s.logger.Warn("Contact person refers to a changed member and was not refreshed",
			zap.String("member_id", m.ID),
			zap.String("action", action),
		)
	}
}

func (s *Service) update(ctx context.Context, fn func(doc *Document) error) error {
	return docstore.UpdateJSON(ctx, s.store, DocumentName, func(doc *Document) error {
		if err := fn(doc); err != nil {
			return err
		}
		if doc.Members == nil {
			doc.Members = []Member{}
		}
		return nil
	})
}
