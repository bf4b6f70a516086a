package publications

import (
	"lab-admin/core/utils"
	"lab-admin/feature/publications/models"
)

// PublicationInput is the body of create and update requests.
type PublicationInput struct {
	Type            string        `json:"type" validate:"required,oneof=journal conference book dissertation"`
	Authors         string        `json:"authors"`
	Title           string        `json:"title" validate:"required"`
	Venue           string        `json:"venue"`
	Year            utils.FlexInt `json:"year" validate:"gte=0"`
	HighlightAuthor string        `json:"highlight_author"`
	Volume          string        `json:"volume"`
	Pages           string        `json:"pages"`
	Location        string        `json:"location"`
	Date            string        `json:"date"`
	Editors         string        `json:"editors"`
	Publisher       string        `json:"publisher"`
}

// ToModel sanitizes the free-text fields and builds the record.
func (in PublicationInput) ToModel() models.Publication {
	return models.Publication{
		Type:            in.Type,
		Authors:         utils.SanitizeText(in.Authors),
		Title:           utils.SanitizeText(in.Title),
		Venue:           utils.SanitizeText(in.Venue),
		Year:            in.Year,
		HighlightAuthor: utils.SanitizeText(in.HighlightAuthor),
		Volume:          utils.SanitizeText(in.Volume),
		Pages:           utils.SanitizeText(in.Pages),
		Location:        utils.SanitizeText(in.Location),
		Date:            utils.SanitizeText(in.Date),
		Editors:         utils.SanitizeText(in.Editors),
		Publisher:       utils.SanitizeText(in.Publisher),
	}
}

// ReorderInput is the body of the reorder request.
type ReorderInput struct {
	Order []string `json:"order"`
}
