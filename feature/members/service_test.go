package members

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lab-admin/core/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const seedDocument = `{
  "members": [
    {"id": "m001", "name": "Ann", "year": 2020, "email": "ann@lab.org", "photo": "asset/member/ann.jpg", "status": "graduated"},
    {"id": "m002", "name": "Bob", "year": 2021, "photo": "asset/member/bob.jpg", "status": "current"},
    {"id": "m005", "name": "Cid", "year": "2020", "photo": "asset/member/cid.jpg", "status": "graduated"},
    {"id": "m003", "name": "Dee", "year": 2022, "photo": "asset/member/dee.jpg", "status": "current"}
  ],
  "contact_person": {"name": "Ann", "email": "ann@lab.org", "photo": "asset/member/ann.jpg"},
  "lab_info": {"room": "R<101>", "phones": ["1", "2"]}
}
`

func setupService(t *testing.T) (*Service, *observer.ObservedLogs, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentName), []byte(seedDocument), 0o644))

	store, err := docstore.NewFileStore(dir)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.WarnLevel)
	return NewService(store, zap.New(core)), logs, dir
}

func namesOf(doc *Document) []string {
	out := make([]string, len(doc.Members))
	for i, m := range doc.Members {
		out[i] = m.Name
	}
	return out
}

func TestService_CreatePlacement(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, Member{Name: "Eve", Year: 2020})
	require.NoError(t, err)
	assert.Equal(t, "m006", m.ID)

	_, err = svc.Create(ctx, Member{Name: "Fay", Year: 2030})
	require.NoError(t, err)

	_, err = svc.Create(ctx, Member{Name: "Gus", Year: 2021})
	require.NoError(t, err)

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob", "Gus", "Cid", "Eve", "Dee", "Fay"}, namesOf(doc))
	assert.Equal(t, "m008", doc.Members[2].ID)
}

func TestService_UpdateDelete(t *testing.T) {
	svc, logs, _ := setupService(t)
	ctx := context.Background()

	m, err := svc.Update(ctx, "m002", Member{ID: "m999", Name: "Robert", Year: 2021})
	require.NoError(t, err)
	assert.Equal(t, "m002", m.ID)
	assert.Equal(t, 0, logs.Len())

	_, err = svc.Update(ctx, "m404", Member{Name: "X"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "m003"))
	assert.ErrorIs(t, svc.Delete(ctx, "m003"), ErrNotFound)

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Robert", "Cid"}, namesOf(doc))
}

func TestService_ContactPerson(t *testing.T) {
	svc, logs, dir := setupService(t)
	ctx := context.Background()

	cp, err := svc.SetContactPerson(ctx, "m002")
	require.NoError(t, err)
	assert.Equal(t, ContactPerson{MemberID: "m002", Name: "Bob", Photo: "asset/member/bob.jpg"}, cp)

	_, err = svc.SetContactPerson(ctx, "m404")
	assert.ErrorIs(t, err, ErrNotFound)

	raw, err := os.ReadFile(filepath.Join(dir, DocumentName))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"room": "R<101>"`)

	_, err = svc.Update(ctx, "m002", Member{Name: "Bobby"})
	require.NoError(t, err)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "updated", entry.ContextMap()["action"])

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bob", doc.ContactPerson.Name, "contact person is not refreshed")
}

func TestService_LegacyContactMatchedByName(t *testing.T) {
	svc, logs, _ := setupService(t)

	require.NoError(t, svc.Delete(context.Background(), "m001"))
	assert.Equal(t, 1, logs.FilterMessageSnippet("Contact person").Len())
}
