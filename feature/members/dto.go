package members

import (
	"lab-admin/core/utils"
)

// MemberInput is the body of create and update requests.
type MemberInput struct {
	Name   string        `json:"name" validate:"required"`
	NameZh string        `json:"name_zh"`
	Degree string        `json:"degree"`
	Year   utils.FlexInt `json:"year" validate:"gte=0"`
	Email  string        `json:"email" validate:"omitempty,email"`
	Photo  string        `json:"photo"`
	Status string        `json:"status"`
}

// ToModel sanitizes the text fields and builds the member.
func (in MemberInput) ToModel() Member {
	return Member{
		Name:   utils.SanitizeText(in.Name),
		NameZh: utils.SanitizeText(in.NameZh),
		Degree: utils.SanitizeText(in.Degree),
		Year:   in.Year,
		Email:  in.Email,
		Photo:  utils.SanitizeText(in.Photo),
		Status: utils.SanitizeText(in.Status),
	}
}

// ContactPersonInput selects the member to copy into contact_person.
type ContactPersonInput struct {
	MemberID string `json:"member_id" validate:"required"`
}
