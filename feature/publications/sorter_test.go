package publications

import (
	"testing"

	"lab-admin/feature/publications/models"

	"github.com/stretchr/testify/assert"
)

func pubs(ids ...string) []models.Publication {
	out := make([]models.Publication, len(ids))
	for i, id := range ids {
		out[i] = models.Publication{ID: id}
	}
	return out
}

func ids(list []models.Publication) []string {
	out := make([]string, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

func TestSortPublications(t *testing.T) {
	in := pubs("j3", "cz1", "c10", "jz2", "bz7", "j11", "x")

	got := SortPublications(in)

	assert.Equal(t, []string{"bz7", "jz2", "cz1", "j11", "c10", "j3", "x"}, ids(got))
	assert.Equal(t, "j3", in[0].ID, "input is not reordered in place")
}

func TestSortPublications_Idempotent(t *testing.T) {
	once := SortPublications(pubs("c2", "jz1", "j2", "cz3", "j100", "dz3"))
	twice := SortPublications(once)
	assert.Equal(t, ids(once), ids(twice))
}

func TestSortPublications_StableTies(t *testing.T) {
	got := SortPublications(pubs("c5", "j5", "cz2", "jz2"))
	assert.Equal(t, []string{"cz2", "jz2", "c5", "j5"}, ids(got))
}

func TestSortPublications_GroupOrdering(t *testing.T) {
	got := SortPublications(pubs("j1", "jz9", "c40", "cz12", "j7", "bz1"))

	seenAuto := false
	var prevManual, prevAuto uint64 = ^uint64(0), ^uint64(0)
	for _, p := range got {
		n := idNumber(p.ID)
		if p.IsManual() {
			assert.False(t, seenAuto, "manual %s after automatic entries", p.ID)
			assert.LessOrEqual(t, n, prevManual)
			prevManual = n
			continue
		}
		seenAuto = true
		assert.LessOrEqual(t, n, prevAuto)
		prevAuto = n
	}
}

func TestIdNumber(t *testing.T) {
	assert.Equal(t, uint64(900), idNumber("j900"))
	assert.Equal(t, uint64(12), idNumber("cz12"))
	assert.Equal(t, uint64(0), idNumber("manual"))
	assert.Equal(t, uint64(0), idNumber("j99999999999999999999999"))
}
