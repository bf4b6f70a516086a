package dashboard

import (
	"context"
	"errors"

	"lab-admin/core/docstore"
	"lab-admin/feature/events"
	"lab-admin/feature/members"
	"lab-admin/feature/publications/models"

	"go.uber.org/zap"
)

// Stats are the dashboard counters.
type Stats struct {
	Publications int `json:"publications"`
	Members      int `json:"members"`
	Events       int `json:"events"`
	Graduated    int `json:"graduated"`
}

// Service computes dashboard counters from the three documents.
type Service struct {
	store  docstore.Store
	logger *zap.Logger
}

// NewService creates a new dashboard service.
func NewService(store docstore.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Stats counts records. A missing document counts as empty.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		pubs models.Document
		mems members.Document
		evs  events.Document
	)
	if err := s.load(ctx, models.DocumentName, &pubs); err != nil {
		return nil, err
	}
	if err := s.load(ctx, members.DocumentName, &mems); err != nil {
		return nil, err
	}
	if err := s.load(ctx, events.DocumentName, &evs); err != nil {
		return nil, err
	}

	stats := &Stats{
		Publications: len(pubs.Publications),
		Members:      len(mems.Members),
		Events:       len(evs.Events),
	}
	for _, m := range mems.Members {
		if m.Status == members.StatusGraduated {
			stats.Graduated++
		}
	}
	return stats, nil
}

func (s *Service) load(ctx context.Context, name string, v any) error {
	err := docstore.LoadJSON(ctx, s.store, name, v)
	if errors.Is(err, docstore.ErrNotFound) {
		s.logger.Warn("Document missing, counted as empty", zap.String("document", name))
		return nil
	}
	return err
}
