package publications

import (
	"testing"

	"lab-admin/core/reconcile"
	"lab-admin/feature/publications/models"

	"github.com/stretchr/testify/assert"
)

func TestAdapter_ShouldReplace(t *testing.T) {
	a := Adapter{}

	tests := []struct {
		name     string
		stored   models.Publication
		incoming models.Publication
		want     bool
	}{
		{
			name:     "JournalNeverReplaced",
			stored:   models.Publication{ID: "j1", Type: models.TypeJournal},
			incoming: models.Publication{ID: "j1", Type: models.TypeJournal, Volume: "9", Title: "New"},
		},
		{
			name:     "CompleteConferenceKept",
			stored:   models.Publication{ID: "c1", Type: models.TypeConference, Location: "Paris"},
			incoming: models.Publication{ID: "c1", Type: models.TypeConference, Location: "Rome"},
		},
		{
			name:     "NothingFetched",
			stored:   models.Publication{ID: "c1", Type: models.TypeConference},
			incoming: models.Publication{ID: "c1", Type: models.TypeConference},
		},
		{
			name:     "LocationFilledIn",
			stored:   models.Publication{ID: "c1", Type: models.TypeConference},
			incoming: models.Publication{ID: "c1", Type: models.TypeConference, Location: "Rome"},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := a.ShouldReplace(tt.stored, tt.incoming)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestAdapter_Plan(t *testing.T) {
	stored := []models.Publication{
		{ID: "jz1", Type: models.TypeJournal},
		{ID: "j1", Type: models.TypeJournal, Title: "Old"},
		{ID: "c1", Type: models.TypeConference},
		{ID: "c2", Type: models.TypeConference, Location: "Paris"},
	}
	incoming := []models.Publication{
		{ID: "j2", Type: models.TypeJournal},
		{ID: "j1", Type: models.TypeJournal, Title: "New"},
		{ID: "c1", Type: models.TypeConference, Location: "Rome", Date: "May 1, 2024"},
		{ID: "c2", Type: models.TypeConference, Location: "Oslo"},
		{ID: "c3", Type: models.TypeConference},
	}

	plan := reconcile.BuildPlan[models.Publication](Adapter{}, stored, incoming)
	assert.Equal(t, reconcile.Summary{Total: 5, Added: 2, Updated: 1, Skipped: 2}, plan.Summary)

	out := reconcile.Apply[models.Publication](Adapter{}, plan, stored)
	assert.Equal(t, []string{"c3", "j2", "jz1", "j1", "c1", "c2"}, ids(out))
	assert.Equal(t, "Old", out[3].Title)
	assert.Equal(t, incoming[2], out[4])
	assert.Equal(t, "Paris", out[5].Location)
}
