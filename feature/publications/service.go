package publications

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"lab-admin/core/docstore"
	"lab-admin/core/ident"
	"lab-admin/core/reconcile"
	"lab-admin/feature/publications/dblp"
	"lab-admin/feature/publications/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNotFound indicates no publication has the requested id.
	ErrNotFound = errors.New("publication not found")

	// ErrEmptyOrder indicates a reorder request without ids.
	ErrEmptyOrder = errors.New("no order provided")
)

// Scraper is the source of scraped records.
type Scraper interface {
	Listing(ctx context.Context) ([]dblp.Record, error)
	FetchDetail(ctx context.Context, href string) (dblp.Detail, error)
}

// CrawlResult reports a crawl's reconciliation counters.
type CrawlResult struct {
	reconcile.Summary
	DryRun bool `json:"dry_run"`
}

// Service manages the publications document.
type Service struct {
	store   docstore.Store
	scraper Scraper
	logger  *zap.Logger
	crawls  singleflight.Group
}

// NewService creates a new publications service.
func NewService(store docstore.Store, scraper Scraper, logger *zap.Logger) *Service {
	return &Service{store: store, scraper: scraper, logger: logger}
}

// Document returns the whole publications document.
func (s *Service) Document(ctx context.Context) (*models.Document, error) {
	var doc models.Document
	if err := docstore.LoadJSON(ctx, s.store, models.DocumentName, &doc); err != nil {
		return nil, err
	}
	if doc.Publications == nil {
		doc.Publications = []models.Publication{}
	}
	return &doc, nil
}

// Create appends an operator-entered publication. Its id is the type initial,
// the z marker and the next number for that prefix (jz1, cz4).
func (s *Service) Create(ctx context.Context, pub models.Publication) (models.Publication, error) {
	pub.Normalize()
	err := s.update(ctx, func(doc *models.Document) error {
		pub.ID = ident.Next(doc.IDs(), manualPrefix(pub.Type), 0)
		doc.Publications = append(doc.Publications, pub)
		return nil
	})
	return pub, err
}

// Update replaces the publication with the given id. The stored id always wins.
func (s *Service) Update(ctx context.Context, id string, pub models.Publication) (models.Publication, error) {
	pub.ID = id
	pub.Normalize()
	err := s.update(ctx, func(doc *models.Document) error {
		i := doc.Index(id)
		if i < 0 {
			return ErrNotFound
		}
		doc.Publications[i] = pub
		return nil
	})
	return pub, err
}

// Delete removes the publication with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.update(ctx, func(doc *models.Document) error {
		i := doc.Index(id)
		if i < 0 {
			return ErrNotFound
		}
		doc.Publications = slices.Delete(doc.Publications, i, i+1)
		return nil
	})
}

// Reorder puts the listed ids first, in the given order. Unknown and repeated
// ids are ignored; unlisted publications follow in their current order.
func (s *Service) Reorder(ctx context.Context, order []string) error {
	if len(order) == 0 {
		return ErrEmptyOrder
	}
	return s.update(ctx, func(doc *models.Document) error {
		doc.Publications = reorder(doc.Publications, order)
		return nil
	})
}

// Sort applies SortPublications and persists the result.
func (s *Service) Sort(ctx context.Context) (int, error) {
	var n int
	err := s.update(ctx, func(doc *models.Document) error {
		doc.Publications = SortPublications(doc.Publications)
		n = len(doc.Publications)
		return nil
	})
	return n, err
}

// Crawl scrapes the listing, fills in conference details and merges the result
// into the stored collection. Concurrent crawls with the same mode share one run.
func (s *Service) Crawl(ctx context.Context, opts reconcile.Options) (*CrawlResult, error) {
	key := "crawl"
	if opts.DryRun {
		key = "crawl:dry-run"
	}
	v, err, shared := s.crawls.Do(key, func() (any, error) {
		return s.crawl(ctx, opts)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Joined running crawl", zap.String("key", key))
	}
	return v.(*CrawlResult), nil
}

func (s *Service) crawl(ctx context.Context, opts reconcile.Options) (*CrawlResult, error) {
	records, err := s.scraper.Listing(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching listing: %w", err)
	}

	current, err := s.Document(ctx)
	if err != nil {
		return nil, err
	}

	incoming, err := s.withDetails(ctx, records, current.Publications)
	if err != nil {
		return nil, err
	}

	adapter := Adapter{}
	var plan *reconcile.Plan[models.Publication]
	if opts.DryRun {
		plan = reconcile.BuildPlan[models.Publication](adapter, current.Publications, incoming)
	} else {
		// Plan against the document as it is under the write lock.
		err = s.update(ctx, func(doc *models.Document) error {
			plan = reconcile.BuildPlan[models.Publication](adapter, doc.Publications, incoming)
			doc.Publications = reconcile.Apply(adapter, plan, doc.Publications)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("Crawl reconciled",
		zap.Int("total", plan.Summary.Total),
		zap.Int("added", plan.Summary.Added),
		zap.Int("updated", plan.Summary.Updated),
		zap.Int("skipped", plan.Summary.Skipped),
		zap.Bool("dry_run", opts.DryRun),
	)
	return &CrawlResult{Summary: plan.Summary, DryRun: opts.DryRun}, nil
}

// withDetails fills conference location and date. A stored location is copied
// forward without a request; a failed detail fetch leaves both empty.
func (s *Service) withDetails(ctx context.Context, records []dblp.Record, stored []models.Publication) ([]models.Publication, error) {
	byID := make(map[string]models.Publication, len(stored))
	for _, p := range stored {
		byID[p.ID] = p
	}

	out := make([]models.Publication, 0, len(records))
	for _, rec := range records {
		pub := rec.Publication
		if pub.Type == models.TypeConference {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if prev, ok := byID[pub.ID]; ok && prev.Location != "" {
				pub.Location, pub.Date = prev.Location, prev.Date
			} else if rec.DetailURL != "" {
				detail, err := s.scraper.FetchDetail(ctx, rec.DetailURL)
				if err != nil {
					s.logger.Warn("Conference detail fetch failed",
						zap.String("id", pub.ID),
						zap.String("url", rec.DetailURL),
						zap.Error(err),
					)
				} else {
					pub.Location, pub.Date = detail.Location, detail.Date
				}
			}
		}
		pub.Normalize()
		out = append(out, pub)
	}
	return out, nil
}

func (s *Service) update(ctx context.Context, fn func(doc *models.Document) error) error {
	return docstore.UpdateJSON(ctx, s.store, models.DocumentName, func(doc *models.Document) error {
		if err := fn(doc); err != nil {
			return err
		}
		if doc.Publications == nil {
			doc.Publications = []models.Publication{}
		}
		return nil
	})
}

func manualPrefix(pubType string) string {
	if pubType == "" {
		return "jz"
	}
	return pubType[:1] + "z"
}

func reorder(pubs []models.Publication, order []string) []models.Publication {
	byID := make(map[string]models.Publication, len(pubs))
	for _, p := range pubs {
		byID[p.ID] = p
	}

	placed := make(map[string]bool, len(order))
	out := make([]models.Publication, 0, len(pubs))
	for _, id := range order {
		p, ok := byID[id]
		if !ok || placed[id] {
			continue
		}
		placed[id] = true
		out = append(out, p)
	}
	for _, p := range pubs {
		if !placed[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
