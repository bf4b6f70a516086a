package dblp

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// December 15-18, 2024
var reEventDate = regexp.MustCompile(`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:\s*[-–]\s*\d{1,2})?,\s*\d{4}`)

// Detail is what a proceedings page says about the conference.
type Detail struct {
	Name     string
	Location string
	Date     string
}

// ParseDetail reads a DBLP proceedings page. The h1 reads "<name>: <location>";
// the date comes from the proceedings citation, or from anywhere on the page.
func ParseDetail(r io.Reader) (Detail, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Detail{}, fmt.Errorf("parsing detail page: %w", err)
	}

	heading := collapse(doc.Find("h1").First().Text())
	if heading == "" {
		return Detail{}, fmt.Errorf("%w: h1 heading", ErrMissingMarkup)
	}

	name, location, _ := strings.Cut(heading, ":")
	d := Detail{
		Name:     strings.TrimSpace(name),
		Location: strings.TrimSpace(location),
	}

	cited := collapse(doc.Find("li.entry.editor span.title").First().Text())
	d.Date = reEventDate.FindString(cited)
	if d.Date == "" {
		d.Date = reEventDate.FindString(collapse(doc.Find("body").Text()))
	}
	return d, nil
}
