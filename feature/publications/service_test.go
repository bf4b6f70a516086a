package publications

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"lab-admin/core/docstore"
	"lab-admin/core/reconcile"
	"lab-admin/feature/publications/dblp"
	"lab-admin/feature/publications/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockScraper struct {
	mock.Mock
}

func (m *mockScraper) Listing(ctx context.Context) ([]dblp.Record, error) {
	args := m.Called(ctx)
	if recs, ok := args.Get(0).([]dblp.Record); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScraper) FetchDetail(ctx context.Context, href string) (dblp.Detail, error) {
	args := m.Called(ctx, href)
	return args.Get(0).(dblp.Detail), args.Error(1)
}

const seedDocument = `{
  "publications": [
    {"id": "jz1", "type": "journal", "title": "Manual", "authors": "A", "venue": "V", "year": "2020", "highlight_author": "A"},
    {"id": "j1", "type": "journal", "title": "Old", "authors": "A", "venue": "V", "year": 2021, "highlight_author": "A", "volume": "1", "pages": "2"},
    {"id": "c1", "type": "conference", "title": "Talk", "authors": "A", "venue": "C", "year": 2022, "highlight_author": "A"},
    {"id": "c2", "type": "conference", "title": "Done", "authors": "A", "venue": "C", "year": 2023, "highlight_author": "A", "location": "Paris", "date": "May 1, 2023"}
  ]
}
`

func setupService(t *testing.T) (*Service, *mockScraper, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, models.DocumentName), []byte(seedDocument), 0o644))

	store, err := docstore.NewFileStore(dir)
	require.NoError(t, err)

	scraper := new(mockScraper)
	return NewService(store, scraper, zap.NewNop()), scraper, dir
}

func TestService_CreateUpdateDelete(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Publication{Type: models.TypeJournal, Title: "New", Location: "x"})
	require.NoError(t, err)
	assert.Equal(t, "jz2", created.ID)
	assert.Empty(t, created.Location)

	conf, err := svc.Create(ctx, models.Publication{Type: models.TypeConference, Title: "C"})
	require.NoError(t, err)
	assert.Equal(t, "cz1", conf.ID)

	updated, err := svc.Update(ctx, "j1", models.Publication{ID: "other", Type: models.TypeJournal, Title: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "j1", updated.ID)

	_, err = svc.Update(ctx, "nope", models.Publication{Type: models.TypeJournal})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "c2"))
	assert.ErrorIs(t, svc.Delete(ctx, "c2"), ErrNotFound)

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"jz1", "j1", "c1", "jz2", "cz1"}, doc.IDs())
	assert.Equal(t, "Renamed", doc.Publications[1].Title)
	assert.Equal(t, 2020, doc.Publications[0].Year.Int())
}

func TestService_Reorder(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Reorder(ctx, nil), ErrEmptyOrder)

	require.NoError(t, svc.Reorder(ctx, []string{"c2", "missing", "j1", "c2"}))
	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2", "j1", "jz1", "c1"}, doc.IDs())
}

func TestService_Sort(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	n, err := svc.Sort(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"jz1", "c2", "j1", "c1"}, doc.IDs())
}

func TestService_Crawl(t *testing.T) {
	svc, scraper, _ := setupService(t)
	ctx := context.Background()

	scraper.On("Listing", mock.Anything).Return([]dblp.Record{
		{Publication: models.Publication{ID: "j2", Type: models.TypeJournal, Title: "Fresh"}},
		{Publication: models.Publication{ID: "j1", Type: models.TypeJournal, Title: "Changed"}},
		{Publication: models.Publication{ID: "c1", Type: models.TypeConference, Title: "Talk"}, DetailURL: "/db/conf/c1.html"},
		{Publication: models.Publication{ID: "c2", Type: models.TypeConference, Title: "Done"}, DetailURL: "/db/conf/c2.html"},
		{Publication: models.Publication{ID: "c3", Type: models.TypeConference, Title: "Broken"}, DetailURL: "/db/conf/c3.html"},
	}, nil)
	scraper.On("FetchDetail", mock.Anything, "/db/conf/c1.html").
		Return(dblp.Detail{Location: "Rome, Italy", Date: "June 3-5, 2022"}, nil)
	scraper.On("FetchDetail", mock.Anything, "/db/conf/c3.html").
		Return(dblp.Detail{}, errors.New("timeout"))

	result, err := svc.Crawl(ctx, reconcile.Options{})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Summary{Total: 5, Added: 2, Updated: 1, Skipped: 2}, result.Summary)

	scraper.AssertNotCalled(t, "FetchDetail", mock.Anything, "/db/conf/c2.html")

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "j2", "jz1", "j1", "c1", "c2"}, doc.IDs())
	assert.Equal(t, "Old", doc.Publications[3].Title)
	assert.Equal(t, "Rome, Italy", doc.Publications[4].Location)
	assert.Equal(t, "June 3-5, 2022", doc.Publications[4].Date)
	assert.Empty(t, doc.Publications[0].Location)
}

func TestService_CrawlDryRun(t *testing.T) {
	svc, scraper, dir := setupService(t)
	before, err := os.ReadFile(filepath.Join(dir, models.DocumentName))
	require.NoError(t, err)

	scraper.On("Listing", mock.Anything).Return([]dblp.Record{
		{Publication: models.Publication{ID: "j9", Type: models.TypeJournal, Title: "Fresh"}},
	}, nil)

	result, err := svc.Crawl(context.Background(), reconcile.Options{DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Added)

	after, err := os.ReadFile(filepath.Join(dir, models.DocumentName))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_CrawlListingFailure(t *testing.T) {
	svc, scraper, _ := setupService(t)
	scraper.On("Listing", mock.Anything).Return(nil, dblp.ErrUpstream)

	_, err := svc.Crawl(context.Background(), reconcile.Options{})
	assert.ErrorIs(t, err, dblp.ErrUpstream)
}

func TestService_CrawlConcurrent(t *testing.T) {
	svc, scraper, _ := setupService(t)

	release := make(chan struct{})
	scraper.On("Listing", mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return([]dblp.Record{{Publication: models.Publication{ID: "j5", Type: models.TypeJournal, Title: "T"}}}, nil)

	var wg sync.WaitGroup
	results := make([]*CrawlResult, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.Crawl(context.Background(), reconcile.Options{})
			assert.NoError(t, err)
			results[i] = r
		}(i)
	}
	close(release)
	wg.Wait()

	doc, err := svc.Document(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "j5", doc.Publications[0].ID)
	assert.Equal(t, 5, len(doc.Publications), "j5 inserted once")
}

func TestService_MissingDocument(t *testing.T) {
	store, err := docstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	svc := NewService(store, new(mockScraper), zap.NewNop())

	_, err = svc.Document(context.Background())
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	_, err = svc.Create(context.Background(), models.Publication{Type: models.TypeBook, Title: "B"})
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}
