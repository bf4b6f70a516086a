// Package publications implements the publications feature.
//
// It keeps the publications document (dataset/publications.json) and feeds it
// from DBLP:
//  1. Scrape: dblp.Client fetches the author listing and parses records.
//  2. Detail: conferences without a known location get their proceedings page
//     fetched. A location already stored is copied forward instead.
//  3. Reconcile: the core/reconcile engine plans insert / update / skip with
//     Adapter, and applies the plan under the document's write lock.
//
// # Components
//
//   - Service: CRUD, reorder, sort and crawl over the document store.
//   - Adapter: the publication merge rules.
//   - SortPublications: manual entries first, then newest id first.
//   - Handler: HTTP endpoints.
//   - Feature: registers the routes with the loader.
//
// # HTTP Endpoints
//
//   - GET    /api/publications
//   - POST   /api/publications
//   - PUT    /api/publications/:id
//   - DELETE /api/publications/:id
//   - POST   /api/publications/reorder
//   - POST   /api/publications/crawl?dry_run=true
//   - POST   /api/publications/sort
package publications
