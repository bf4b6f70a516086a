package publications

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lab-admin/feature/publications/dblp"
	"lab-admin/feature/publications/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) (*fiber.App, *mockScraper) {
	t.Helper()
	svc, scraper, _ := setupService(t)
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, scraper
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandler_List(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/publications", "")
	assert.Equal(t, 200, status)
	assert.Len(t, body["publications"], 4)
}

func TestHandler_Create(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/publications",
		`{"type":"book","title":"A <b>Bold</b> Book<script>x()</script>","authors":"A","year":"2024","publisher":"P"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])

	pub := body["publication"].(map[string]any)
	assert.Equal(t, "bz1", pub["id"])
	assert.Equal(t, "A <b>Bold</b> Book", pub["title"])
	assert.Equal(t, float64(2024), pub["year"])
}

func TestHandler_CreateValidation(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/publications", `{"type":"poster"}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, map[string]any{"type": "oneof", "title": "required"}, body["fields"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/publications", `{not json`)
	assert.Equal(t, 400, status)
}

func TestHandler_UpdateDelete(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodPut, "/api/publications/j1", `{"id":"x","type":"journal","title":"T"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "j1", body["publication"].(map[string]any)["id"])

	status, body = doJSON(t, app, http.MethodPut, "/api/publications/zz", `{"type":"journal","title":"T"}`)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Publication not found", body["error"])

	status, _ = doJSON(t, app, http.MethodDelete, "/api/publications/j1", "")
	assert.Equal(t, 200, status)

	status, _ = doJSON(t, app, http.MethodDelete, "/api/publications/j1", "")
	assert.Equal(t, 404, status)
}

func TestHandler_Reorder(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/publications/reorder", `{"order":[]}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "No order provided", body["error"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/publications/reorder", `{"order":["c1"]}`)
	assert.Equal(t, 200, status)

	_, body = doJSON(t, app, http.MethodGet, "/api/publications", "")
	first := body["publications"].([]any)[0].(map[string]any)
	assert.Equal(t, "c1", first["id"])
}

func TestHandler_Crawl(t *testing.T) {
	app, scraper := setupApp(t)
	scraper.On("Listing", mock.Anything).Return([]dblp.Record{
		{Publication: models.Publication{ID: "j7", Type: models.TypeJournal, Title: "T"}},
	}, nil)

	status, body := doJSON(t, app, http.MethodPost, "/api/publications/crawl?dry_run=true", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(1), body["added"])
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, true, body["dry_run"])
}

func TestHandler_CrawlUpstreamFailure(t *testing.T) {
	app, scraper := setupApp(t)
	scraper.On("Listing", mock.Anything).Return(nil, dblp.ErrUpstream)

	status, body := doJSON(t, app, http.MethodPost, "/api/publications/crawl", "")
	assert.Equal(t, 502, status)
	assert.Contains(t, body["error"], "upstream request failed")
}

func TestHandler_CrawlWrappedUpstreamFailure(t *testing.T) {
	app, scraper := setupApp(t)
	wrapped := fmt.Errorf("%w: parsing listing: %w", dblp.ErrUpstream, errors.New("unexpected EOF"))
	scraper.On("Listing", mock.Anything).Return(nil, wrapped)

	status, _ := doJSON(t, app, http.MethodPost, "/api/publications/crawl", "")
	assert.Equal(t, 502, status)
}

func TestHandler_Sort(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/publications/sort", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, float64(4), body["count"])
}
