package dashboard

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"lab-admin/core/docstore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStore(t *testing.T, files map[string]string) docstore.Store {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	store, err := docstore.NewFileStore(dir)
	require.NoError(t, err)
	return store
}

func TestService_Stats(t *testing.T) {
	store := setupStore(t, map[string]string{
		"publications.json": `{"publications":[{"id":"j1"},{"id":"c1"},{"id":"jz1"}]}`,
		"members.json":      `{"members":[{"id":"m001","status":"graduated"},{"id":"m002","status":"current"}]}`,
	})

	stats, err := NewService(store, zap.NewNop()).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Stats{Publications: 3, Members: 2, Events: 0, Graduated: 1}, stats)
}

func TestService_StatsMalformed(t *testing.T) {
	store := setupStore(t, map[string]string{"events.json": `{"events":`})

	_, err := NewService(store, zap.NewNop()).Stats(context.Background())
	assert.Error(t, err)
}

func TestHandler_Stats(t *testing.T) {
	store := setupStore(t, map[string]string{"events.json": `{"events":[{"id":"e001"}]}`})
	app := fiber.New()
	NewHandler(NewService(store, zap.NewNop())).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Success bool  `json:"success"`
		Stats   Stats `json:"stats"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Stats.Events)
}
