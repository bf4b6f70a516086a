package events

// DocumentName is the store key of the events collection.
const DocumentName = "events.json"

// Event is one lab event shown on the site.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	DateDisplay string `json:"date_display,omitempty"`
	Photo       string `json:"photo"`
	Description string `json:"description,omitempty"`
}

// Document is the on-disk shape of events.json.
type Document struct {
	Events []Event `json:"events"`
}
