package members

import (
	"encoding/json"

	"lab-admin/core/utils"
)

// DocumentName is the store key of the members collection.
const DocumentName = "members.json"

// StatusGraduated marks alumni.
const StatusGraduated = "graduated"

// Member is one lab member. The public site groups members by Year in
// document order, so position matters.
type Member struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	NameZh string        `json:"name_zh,omitempty"`
	Degree string        `json:"degree,omitempty"`
	Year   utils.FlexInt `json:"year"`
	Email  string        `json:"email,omitempty"`
	Photo  string        `json:"photo"`
	Status string        `json:"status"`
}

// ContactPerson is a copy of one member's contact fields. It is not kept in
// sync when that member changes.
type ContactPerson struct {
	MemberID string `json:"member_id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Photo    string `json:"photo"`
}

// Document is the on-disk shape of members.json. LabInfo is carried through untouched.
type Document struct {
	Members       []Member        `json:"members"`
	ContactPerson *ContactPerson  `json:"contact_person,omitempty"`
	LabInfo       json.RawMessage `json:"lab_info,omitempty"`
}

func (d *Document) index(id string) int {
	for i, m := range d.Members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) ids() []string {
	out := make([]string, len(d.Members))
	for i, m := range d.Members {
		out[i] = m.ID
	}
	return out
}

// references reports whether the contact person was copied from m.
// Documents written before member_id existed are matched by name.
func (d *Document) references(m Member) bool {
	cp := d.ContactPerson
	if cp == nil {
		return false
	}
	if cp.MemberID != "" {
		return cp.MemberID == m.ID
	}
	return cp.Name != "" && cp.Name == m.Name
}
