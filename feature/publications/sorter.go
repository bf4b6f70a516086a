package publications

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"

	"lab-admin/feature/publications/models"
)

var reFirstDigits = regexp.MustCompile(`\d+`)

// SortPublications returns manual entries first, then scraped ones, each group
// ordered by the number in its id, highest first. Ties keep their relative order.
func SortPublications(pubs []models.Publication) []models.Publication {
	manual := make([]models.Publication, 0, len(pubs))
	auto := make([]models.Publication, 0, len(pubs))
	for _, p := range pubs {
		if p.IsManual() {
			manual = append(manual, p)
		} else {
			auto = append(auto, p)
		}
	}

	byNumberDesc := func(a, b models.Publication) int {
		return cmp.Compare(idNumber(b.ID), idNumber(a.ID))
	}
	slices.SortStableFunc(manual, byNumberDesc)
	slices.SortStableFunc(auto, byNumberDesc)

	return append(manual, auto...)
}

// idNumber is the first run of digits in id, 0 when there is none.
func idNumber(id string) uint64 {
	digits := reFirstDigits.FindString(id)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
