// Package members manages dataset/members.json: the member list, the
// contact person shown on the site, and the opaque lab_info block.
//
// New members get the next m### id and are placed after the last member of
// the same year. The contact person is a copy taken when PUT /api/contact-person
// is called; editing or deleting that member later only logs a warning.
package members
