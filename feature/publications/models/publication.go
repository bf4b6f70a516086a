package models

import (
	"lab-admin/core/utils"
)

// Publication types.
const (
	TypeJournal      = "journal"
	TypeConference   = "conference"
	TypeBook         = "book"
	TypeDissertation = "dissertation"
)

// DocumentName is the store key of the publications collection.
const DocumentName = "publications.json"

// Publication is one bibliography entry as rendered by the public site.
// Scraped ids are j<n>/c<n>, operator-entered ids carry a z marker (jz3, cz1).
type Publication struct {
	ID              string        `json:"id"`
	Type            string        `json:"type"`
	Authors         string        `json:"authors"`
	Title           string        `json:"title"`
	Venue           string        `json:"venue"`
	Year            utils.FlexInt `json:"year"`
	HighlightAuthor string        `json:"highlight_author"`

	// Journal.
	Volume string `json:"volume,omitempty"`
	Pages  string `json:"pages,omitempty"`

	// Conference.
	Location string `json:"location,omitempty"`
	Date     string `json:"date,omitempty"`

	// Book and dissertation.
	Editors   string `json:"editors,omitempty"`
	Publisher string `json:"publisher,omitempty"`
}

// IsManual reports whether the record was entered by an operator.
func (p Publication) IsManual() bool {
	return len(p.ID) > 1 && p.ID[1] == 'z'
}

// Normalize clears the fields that do not belong to the record's type.
// Conferences keep Pages since DBLP citations carry a page range for them.
func (p *Publication) Normalize() {
	switch p.Type {
	case TypeJournal:
		p.Location = ""
		p.Date = ""
	case TypeConference:
		p.Volume = ""
	}
}

// Document is the on-disk shape of publications.json.
type Document struct {
	Publications []Publication `json:"publications"`
}

// IDs returns the ids in document order.
func (d *Document) IDs() []string {
	ids := make([]string, len(d.Publications))
	for i, p := range d.Publications {
		ids[i] = p.ID
	}
	return ids
}

// Index returns the position of id, or -1.
func (d *Document) Index(id string) int {
	for i, p := range d.Publications {
		if p.ID == id {
			return i
		}
	}
	return -1
}
