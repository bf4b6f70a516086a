package dblp

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"lab-admin/core/utils"
	"lab-admin/feature/publications/models"

	"github.com/PuerkitoBio/goquery"
)

var reIDToken = regexp.MustCompile(`\[([a-z]+)(\d+)\]`)

// Record is a scraped publication plus the venue link used for the detail fetch.
type Record struct {
	Publication models.Publication
	DetailURL   string
}

// ParseListing extracts journal and conference records from a DBLP author page,
// in document order. Entries without a j/c id token or without a title are skipped.
func ParseListing(r io.Reader, highlightAuthor string) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing listing: %w", err)
	}

	var records []Record
	doc.Find("li.entry").Each(func(_ int, entry *goquery.Selection) {
		if rec, ok := parseEntry(entry, highlightAuthor); ok {
			records = append(records, rec)
		}
	})
	return records, nil
}

func parseEntry(entry *goquery.Selection, highlightAuthor string) (Record, bool) {
	prefix, id := idToken(entry)
	var pubType string
	switch prefix {
	case "j":
		pubType = models.TypeJournal
	case "c":
		pubType = models.TypeConference
	default:
		return Record{}, false
	}

	cite := entry.Find("cite").First()
	if cite.Length() == 0 {
		cite = entry
	}

	rawTitle := collapse(cite.Find("span.title").First().Text())
	title := utils.SanitizeText(strings.TrimSuffix(rawTitle, "."))
	if title == "" {
		return Record{}, false
	}

	var authors []string
	cite.Find("span[itemprop=author]").Each(func(_ int, a *goquery.Selection) {
		name := collapse(a.Find("[itemprop=name]").First().Text())
		if name == "" {
			name = collapse(a.Text())
		}
		if name != "" {
			authors = append(authors, utils.SanitizeText(name))
		}
	})

	m := extract(pubType, remainder(collapse(cite.Text()), rawTitle))

	pub := models.Publication{
		ID:              id,
		Type:            pubType,
		Authors:         strings.Join(authors, ", "),
		Title:           title,
		Venue:           utils.SanitizeText(m.Venue),
		Year:            utils.FlexInt(m.Year),
		HighlightAuthor: highlightAuthor,
		Pages:           m.Pages,
	}
	if pubType == models.TypeJournal {
		pub.Volume = m.Volume
	}

	return Record{Publication: pub, DetailURL: detailLink(cite)}, true
}

// idToken reads [j123] from the .nr marker, or from the entry text as a fallback.
func idToken(entry *goquery.Selection) (prefix, id string) {
	sub := reIDToken.FindStringSubmatch(entry.Find(".nr").First().Text())
	if sub == nil {
		sub = reIDToken.FindStringSubmatch(entry.Text())
	}
	if sub == nil {
		return "", ""
	}
	return sub[1], sub[1] + sub[2]
}

// remainder is the citation text after the title, without the closing period.
func remainder(citeText, rawTitle string) string {
	idx := strings.Index(citeText, rawTitle)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimSpace(citeText[idx+len(rawTitle):])
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "."))
	return strings.TrimSpace(strings.TrimSuffix(rest, "."))
}

// detailLink is the first link in the citation that does not belong to an author.
func detailLink(cite *goquery.Selection) string {
	link := cite.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return a.ParentsFiltered("span[itemprop=author]").Length() == 0
	}).First()
	href, _ := link.Attr("href")
	return strings.TrimSpace(href)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
