package publications

import (
	"lab-admin/core/reconcile"
	"lab-admin/feature/publications/models"
)

// Adapter holds the merge rules for scraped publications.
// A stored journal is never replaced, and neither is a conference that already
// has a location. A conference without one is replaced once a scrape brings it.
type Adapter struct{}

var _ reconcile.Adapter[models.Publication] = Adapter{}

// Name implements reconcile.Adapter.
func (Adapter) Name() string { return "publications" }

// Key implements reconcile.Adapter.
func (Adapter) Key(p models.Publication) string { return p.ID }

// ShouldReplace implements reconcile.Adapter.
func (Adapter) ShouldReplace(stored, incoming models.Publication) (bool, string) {
	switch {
	case incoming.Type != models.TypeConference:
		return false, "journal already stored"
	case stored.Location != "":
		return false, "location already known"
	case incoming.Location == "":
		return false, "no location fetched"
	default:
		return true, "location filled in"
	}
}
