package dblp

import (
	"regexp"
	"strconv"

	"lab-admin/feature/publications/models"
)

// match is what an extractor recovers from the citation remainder.
type match struct {
	Venue  string
	Volume string
	Pages  string
	Year   int
}

// extractor tries one citation shape. ok is false when the shape does not apply.
type extractor func(remainder string) (m match, ok bool)

var (
	// Neurocomputing 35(3): 1-10 (2024)
	reJournalIssue = regexp.MustCompile(`^(.+?)\s+([^\s(]+)\s*\(([^)]+)\):\s*(\S+)\s*\((\d{4})\)$`)
	// Neurocomputing 647: 130485 (2025)
	reJournalVolume = regexp.MustCompile(`^(.+?)\s+(\S+):\s*(\S+)\s*\((\d{4})\)$`)
	// Neurocomputing (2025)
	reJournalYear = regexp.MustCompile(`^(.+?)\s*\((\d{4})\)$`)
	// Neurocomputing 647: 1 - 9, inside a venue matched by reJournalYear
	reVenueVolume = regexp.MustCompile(`^(.+?)\s+(\S+):\s*(.+)$`)

	// IEEE Big Data 2024: 1558-1565
	reConferencePages = regexp.MustCompile(`^(.+?)\s+(\d{4}):\s*(\S+)$`)
	// IEEE Big Data 2024
	reConferenceYear = regexp.MustCompile(`^(.+?)\s+(\d{4})$`)

	reParenYear = regexp.MustCompile(`\((\d{4})\)`)
)

var journalExtractors = []extractor{
	journalWithIssue,
	journalWithVolume,
	journalVenueYear,
}

var conferenceExtractors = []extractor{
	conferenceWithPages,
	conferenceVenueYear,
}

// extract runs the cascade for pubType. The first extractor that matches wins.
// A parenthesized year anywhere in the remainder fills Year when nothing else did.
func extract(pubType, remainder string) match {
	cascade := journalExtractors
	if pubType == models.TypeConference {
		cascade = conferenceExtractors
	}

	var m match
	for _, ex := range cascade {
		if got, ok := ex(remainder); ok {
			m = got
			break
		}
	}
	if m.Year == 0 {
		if sub := reParenYear.FindStringSubmatch(remainder); sub != nil {
			m.Year = atoi(sub[1])
		}
	}
	return m
}

func journalWithIssue(s string) (match, bool) {
	sub := reJournalIssue.FindStringSubmatch(s)
	if sub == nil {
		return match{}, false
	}
	return match{
		Venue:  sub[1],
		Volume: sub[2] + "(" + sub[3] + ")",
		Pages:  sub[4],
		Year:   atoi(sub[5]),
	}, true
}

func journalWithVolume(s string) (match, bool) {
	sub := reJournalVolume.FindStringSubmatch(s)
	if sub == nil {
		return match{}, false
	}
	return match{Venue: sub[1], Volume: sub[2], Pages: sub[3], Year: atoi(sub[4])}, true
}

func journalVenueYear(s string) (match, bool) {
	sub := reJournalYear.FindStringSubmatch(s)
	if sub == nil {
		return match{}, false
	}
	m := match{Venue: sub[1], Year: atoi(sub[2])}
	if vv := reVenueVolume.FindStringSubmatch(m.Venue); vv != nil {
		m.Venue, m.Volume, m.Pages = vv[1], vv[2], vv[3]
	}
	return m, true
}

func conferenceWithPages(s string) (match, bool) {
	sub := reConferencePages.FindStringSubmatch(s)
	if sub == nil {
		return match{}, false
	}
	return match{Venue: sub[1], Year: atoi(sub[2]), Pages: sub[3]}, true
}

func conferenceVenueYear(s string) (match, bool) {
	sub := reConferenceYear.FindStringSubmatch(s)
	if sub == nil {
		return match{}, false
	}
	return match{Venue: sub[1], Year: atoi(sub[2])}, true
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
